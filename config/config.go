package config

import "os"

type Config struct {
	Port        string
	Driver      string
	DatabaseURL string
	BoltPath    string
}

// Load reads the runtime configuration from the environment. The document
// store driver defaults to the embedded Bolt file so a fresh checkout
// starts without any external database.
func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		Driver:      getenv("DOCSTORE_DRIVER", "bolt"),
		DatabaseURL: os.Getenv("DB_URL"),
		BoltPath:    getenv("BOLT_PATH", "salonsync.db"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
