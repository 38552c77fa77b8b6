// Package seed populates the baseline dataset: users, customers,
// invoices and the monthly revenue reference table. Every insert is an
// upsert keyed by primary key or unique column, so reseeding is a no-op.
package seed

import (
	"fmt"
	"log"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const bcryptCost = 10

// Run seeds the whole dataset, aborting on the first failure.
func Run(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedCustomers(db); err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}
	if err := seedInvoices(db); err != nil {
		return fmt.Errorf("seed invoices: %w", err)
	}
	if err := seedRevenue(db); err != nil {
		return fmt.Errorf("seed revenue: %w", err)
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcryptCost)
		if err != nil {
			return err
		}
		user := models.User{
			ID:       uuid.MustParse(u.ID),
			Name:     u.Name,
			Email:    u.Email,
			Password: string(hash),
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&user).Error
		if err != nil {
			return err
		}
	}
	log.Printf("seeded %d users", len(users))
	return nil
}

func seedCustomers(db *gorm.DB) error {
	for _, c := range customers {
		customer := models.Customer{
			ID:       uuid.MustParse(c.ID),
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&customer).Error
		if err != nil {
			return err
		}
	}
	log.Printf("seeded %d customers", len(customers))
	return nil
}

func seedInvoices(db *gorm.DB) error {
	for _, inv := range invoices {
		date, err := time.Parse("2006-01-02", inv.Date)
		if err != nil {
			return err
		}
		invoice := models.Invoice{
			ID:         uuid.MustParse(inv.ID),
			CustomerID: uuid.MustParse(inv.CustomerID),
			Amount:     inv.Amount,
			Status:     inv.Status,
			Date:       date,
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&invoice).Error
		if err != nil {
			return err
		}
	}
	log.Printf("seeded %d invoices", len(invoices))
	return nil
}

func seedRevenue(db *gorm.DB) error {
	for _, rev := range revenue {
		row := models.Revenue{Month: rev.Month, Revenue: rev.Revenue}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "month"}},
			DoNothing: true,
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	log.Printf("seeded %d revenue months", len(revenue))
	return nil
}
