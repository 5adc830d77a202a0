package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"restaurant/internal/config"
	"restaurant/internal/db"
	"restaurant/internal/repository"
	"restaurant/internal/seed"
	"restaurant/internal/service"
)

func main() {
	menuFile := flag.String("menu", "", "optional .xlsx workbook of menu items to import")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	log.Info("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Info("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations completed")

	ctx := context.Background()
	repos := repository.New(gormDB)

	res, err := seed.Run(ctx, repos, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to seed access control: %v", err)
	}
	log.Info("Seed completed successfully!")
	log.Infof("  - Roles created: %d", res.Roles)
	log.Infof("  - Permissions created: %d", res.Permissions)
	log.Infof("  - Role bindings created: %d", res.Bindings)
	switch {
	case res.AdminCreated:
		log.Infof("  - Admin account created: %s", cfg.AdminEmail)
	case res.AdminUpdated:
		log.Infof("  - Existing account promoted to admin: %s", cfg.AdminEmail)
	}

	if *menuFile == "" {
		return
	}
	f, err := os.Open(*menuFile)
	if err != nil {
		log.Fatalf("Failed to open menu workbook: %v", err)
	}
	defer f.Close()

	menuService := service.NewMenuService(repos.Menu, repos.Categories, nil, nil, cfg.UploadMaxBytes)
	imported, err := menuService.Import(ctx, f)
	if err != nil {
		log.Fatalf("Failed to import menu: %v", err)
	}
	log.Infof("  - Menu items imported: %d", imported.Imported)
	if len(imported.Skipped) > 0 {
		log.Warnf("  - Skipped workbook rows: %v", imported.Skipped)
	}
}
