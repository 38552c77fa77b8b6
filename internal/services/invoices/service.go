package invoices

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
)

// ViewInvalidator marks cached dashboard views stale after a mutation.
type ViewInvalidator interface {
	InvalidateViews(ctx context.Context) error
}

// Service is the validation and mutation layer for invoices.
type Service struct {
	invoiceRepo *repository.InvoiceRepository
	auditRepo   *repository.AuditLogRepository
	views       ViewInvalidator
}

// NewService creates the mutation service. views may be nil, in which
// case no cache invalidation happens.
func NewService(invoiceRepo *repository.InvoiceRepository, auditRepo *repository.AuditLogRepository, views ViewInvalidator) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		auditRepo:   auditRepo,
		views:       views,
	}
}

// Create validates the form and inserts a new invoice dated now.
func (s *Service) Create(ctx context.Context, form Form) State {
	parsed, fieldErrs := validateForm(form)
	if fieldErrs != nil {
		return State{Errors: fieldErrs, Message: MsgCreateMissingFields}
	}

	invoice := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: parsed.CustomerID,
		Amount:     parsed.AmountCents,
		Status:     parsed.Status,
		Date:       time.Now().UTC(),
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		log.Printf("create invoice: %v", err)
		return State{Message: MsgCreateFailed}
	}

	s.audit(ctx, invoice.ID, "create", invoice)
	s.invalidate(ctx)
	return State{}
}

// Update validates the form and rewrites customer, amount and status of
// the invoice with the given id. The issue date is left untouched.
func (s *Service) Update(ctx context.Context, id uuid.UUID, form Form) State {
	parsed, fieldErrs := validateForm(form)
	if fieldErrs != nil {
		return State{Errors: fieldErrs, Message: MsgUpdateMissingFields}
	}

	if err := s.invoiceRepo.Update(ctx, id, parsed.CustomerID, parsed.AmountCents, parsed.Status); err != nil {
		log.Printf("update invoice %s: %v", id, err)
		return State{Message: MsgUpdateFailed}
	}

	s.audit(ctx, id, "update", map[string]interface{}{
		"customer_id": parsed.CustomerID,
		"amount":      parsed.AmountCents,
		"status":      parsed.Status,
	})
	s.invalidate(ctx)
	return State{}
}

// Delete removes the invoice with the given id. A missing row and a
// store failure both come back as the generic delete message; no error
// ever escapes.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) State {
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		log.Printf("delete invoice %s: %v", id, err)
		return State{Message: MsgDeleteFailed}
	}

	s.audit(ctx, id, "delete", nil)
	s.invalidate(ctx)
	return State{Message: MsgDeleted}
}

// AuditTrail returns the mutation history of one invoice, newest first.
func (s *Service) AuditTrail(ctx context.Context, id uuid.UUID) ([]models.InvoiceAuditLog, error) {
	return s.auditRepo.ListByInvoice(ctx, id)
}

// audit records the mutation; failures are logged and swallowed so a
// broken trail never fails the mutation itself.
func (s *Service) audit(ctx context.Context, invoiceID uuid.UUID, action string, details interface{}) {
	entry := &models.InvoiceAuditLog{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			entry.Details = b
		}
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("audit %s invoice %s: %v", action, invoiceID, err)
	}
}

func (s *Service) invalidate(ctx context.Context) {
	if s.views == nil {
		return
	}
	if err := s.views.InvalidateViews(ctx); err != nil {
		log.Printf("invalidate views: %v", err)
	}
}
