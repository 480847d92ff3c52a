package main

import (
	"context"
	"fmt"
	"log"

	"salonsync-backend/appstore"
	"salonsync-backend/config"
	"salonsync-backend/controllers"
	"salonsync-backend/routes"
	"salonsync-backend/services"
	appsync "salonsync-backend/sync"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	ds := config.OpenDocStore(cfg)
	defer ds.Close()

	app := appstore.New(ds)

	syncer := appsync.New(ds, app)
	syncer.Start(context.Background())
	defer syncer.Stop()

	outreach := services.NewOutreachService(app, ds, services.NewTwilioSender())
	outreach.StartScheduler()
	defer outreach.StopScheduler()

	api := controllers.NewAPI(app, outreach)
	r := routes.SetupRouter(api)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
