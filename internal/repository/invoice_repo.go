package repository

import (
	"context"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

// Update rewrites customer, amount and status of an existing invoice.
// The issue date is never touched on update.
func (r *InvoiceRepository) Update(ctx context.Context, id uuid.UUID, customerID uuid.UUID, amount int64, status string) error {
	res := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amount,
			"status":      status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID fetch a single invoice by ID
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Latest returns the most recent invoices with their customer rows preloaded.
func (r *InvoiceRepository) Latest(ctx context.Context, limit int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("date DESC").
		Limit(limit).
		Find(&invoices).Error
	return invoices, err
}

// Filtered returns one page of invoices whose customer name, customer email
// or status contains the query, case-insensitively.
func (r *InvoiceRepository) Filtered(ctx context.Context, query string, offset, limit int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := filterByQuery(r.db.WithContext(ctx), query).
		Order("invoices.date DESC").
		Offset(offset).
		Limit(limit).
		Find(&invoices).Error
	return invoices, err
}

// CountFiltered counts rows matching the same predicate as Filtered.
func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	var count int64
	err := filterByQuery(r.db.WithContext(ctx).Model(&models.Invoice{}), query).
		Count(&count).Error
	return count, err
}

func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).Count(&count).Error
	return count, err
}

// SumAmountByStatus totals invoice amounts (cents) for one status.
// A sum over zero rows comes back as 0, not NULL.
func (r *InvoiceRepository) SumAmountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", status).
		Scan(&total).Error
	return total, err
}

func filterByQuery(db *gorm.DB, query string) *gorm.DB {
	pattern := "%" + query + "%"
	return db.
		Joins("Customer").
		Where(`"Customer".name ILIKE ? OR "Customer".email ILIKE ? OR invoices.status ILIKE ?`,
			pattern, pattern, pattern)
}
