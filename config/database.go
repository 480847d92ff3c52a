package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"salonsync-backend/docstore"
	"salonsync-backend/models"
)

// OpenDocStore builds the document store for the configured driver.
// Startup cannot proceed without a store, so failures panic here the same
// way a failed database connection always has.
func OpenDocStore(cfg Config) docstore.Store {
	switch cfg.Driver {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			panic("Failed to connect database: " + err.Error())
		}
		store, err := docstore.OpenPostgres(db, cfg.DatabaseURL)
		if err != nil {
			panic("Failed to prepare document store: " + err.Error())
		}
		return store
	case "bolt":
		store, err := docstore.OpenBolt(cfg.BoltPath,
			models.CollectionCustomers,
			models.CollectionTemplates,
			models.CollectionBillings,
			models.CollectionSalonServices,
			models.CollectionMemberships,
			models.CollectionMembershipPlans,
			models.CollectionAppointments,
			models.CollectionMessageLogs,
		)
		if err != nil {
			panic("Failed to open document store: " + err.Error())
		}
		return store
	default:
		panic("Unknown DOCSTORE_DRIVER: " + cfg.Driver)
	}
}
