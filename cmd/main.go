package main

import (
	"PantryChef/cmd/config"
	migration "PantryChef/cmd/database/migrate"
	"PantryChef/internal/utils"
	"flag"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	flag.Parse()

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migrating database: %v", err)
	}
	if *migrateOnly {
		return
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("building app: %v", err)
	}

	port := utils.GetConfigOrDefault("APP_PORT", "8080")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
