package main

import (
	"log"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.InitDB(cfg.DB)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Invoice{},
		&models.Revenue{},
		&models.InvoiceAuditLog{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("seed complete")
}
