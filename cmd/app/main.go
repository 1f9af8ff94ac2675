package main

import (
	"context"
	"log"

	"recipe-catalog-api/cmd/config"
	migration "recipe-catalog-api/cmd/database/migrate"
	"recipe-catalog-api/internal/logger"
	"recipe-catalog-api/internal/utils"
	"recipe-catalog-api/pkg/token"
	"recipe-catalog-api/pkg/user"
)

func main() {
	utils.LoadConfig()

	level := utils.GetConfig("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	if err := logger.Initialize(level); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Seed the superuser when configured.
	if adminEmail := utils.GetConfig("ADMIN_EMAIL"); adminEmail != "" {
		userService := user.NewUserService(user.NewUserRepository(db), token.NewTokenService())
		if err := userService.CreateSuperuser(context.Background(), adminEmail, utils.GetConfig("ADMIN_PASSWORD"), "Admin"); err != nil {
			logger.Log.Warnw("superuser not created", "err", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
