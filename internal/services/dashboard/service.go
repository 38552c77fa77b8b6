package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"invoice-dashboard-backend/internal/currency"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// ItemsPerPage is the fixed page size of the invoice table.
const ItemsPerPage = 6

const (
	cacheKeyLatest = "latest-invoices"
	cacheKeyCards  = "cards"
)

// ViewCache keeps marshaled dashboard views between requests.
type ViewCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, b []byte) error
}

// LatestInvoice is an invoice row joined with its customer for the
// dashboard's recent-activity panel. Amount is preformatted for display.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   string    `json:"amount"`
}

// CardData aggregates the four dashboard summary cards.
type CardData struct {
	NumberOfInvoices     int64  `json:"numberOfInvoices"`
	NumberOfCustomers    int64  `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

// InvoiceRow is one row of the filtered invoice table.
type InvoiceRow struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   string    `json:"amount"`
	Status   string    `json:"status"`
	Date     time.Time `json:"date"`
}

// InvoiceForm is the shape used to prefill the edit form. Amount is
// converted back from cents to a decimal dollar value.
type InvoiceForm struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}

// Service is the read-only query layer behind the dashboard pages.
type Service struct {
	invoiceRepo  *repository.InvoiceRepository
	customerRepo *repository.CustomerRepository
	revenueRepo  *repository.RevenueRepository
	userRepo     *repository.UserRepository
	views        ViewCache
	demoDelay    time.Duration
	sf           singleflight.Group
}

// NewService creates the query service. views may be nil, which disables
// view caching. demoDelay artificially slows the revenue and
// latest-invoice queries; pass 0 for production behavior.
func NewService(
	invoiceRepo *repository.InvoiceRepository,
	customerRepo *repository.CustomerRepository,
	revenueRepo *repository.RevenueRepository,
	userRepo *repository.UserRepository,
	views ViewCache,
	demoDelay time.Duration,
) *Service {
	return &Service{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		revenueRepo:  revenueRepo,
		userRepo:     userRepo,
		views:        views,
		demoDelay:    demoDelay,
	}
}

// UserByEmail is a point lookup used by the sign-in flow. Returns nil
// when no user has the email.
func (s *Service) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapStore("Failed to fetch user.", err)
	}
	return user, nil
}

// Revenue returns the full revenue reference table.
func (s *Service) Revenue(ctx context.Context) ([]models.Revenue, error) {
	s.sleep(ctx)
	rows, err := s.revenueRepo.List(ctx)
	if err != nil {
		return nil, wrapStore("Failed to fetch revenue data.", err)
	}
	return rows, nil
}

// LatestInvoices returns the five most recent invoices joined with
// their customers, read through the view cache when one is configured.
func (s *Service) LatestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	if s.views == nil {
		return s.latestInvoices(ctx)
	}
	v, err, _ := s.sf.Do(cacheKeyLatest, func() (interface{}, error) {
		if b, err := s.views.Get(ctx, cacheKeyLatest); err == nil && b != nil {
			var cached []LatestInvoice
			if err := json.Unmarshal(b, &cached); err == nil {
				return cached, nil
			}
		}
		latest, err := s.latestInvoices(ctx)
		if err != nil {
			return nil, err
		}
		if b, err := json.Marshal(latest); err == nil {
			_ = s.views.Set(ctx, cacheKeyLatest, b)
		}
		return latest, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]LatestInvoice), nil
}

func (s *Service) latestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	s.sleep(ctx)
	rows, err := s.invoiceRepo.Latest(ctx, 5)
	if err != nil {
		return nil, wrapStore("Failed to fetch the latest invoices.", err)
	}
	latest := make([]LatestInvoice, 0, len(rows))
	for _, inv := range rows {
		latest = append(latest, LatestInvoice{
			ID:       inv.ID,
			Name:     inv.Customer.Name,
			Email:    inv.Customer.Email,
			ImageURL: inv.Customer.ImageURL,
			Amount:   currency.Format(inv.Amount),
		})
	}
	return latest, nil
}

// CardData runs the four summary aggregates concurrently and combines
// them once all settle. The first failure cancels the rest and is the
// only error surfaced.
func (s *Service) CardData(ctx context.Context) (CardData, error) {
	if s.views == nil {
		return s.cardData(ctx)
	}
	v, err, _ := s.sf.Do(cacheKeyCards, func() (interface{}, error) {
		if b, err := s.views.Get(ctx, cacheKeyCards); err == nil && b != nil {
			var cached CardData
			if err := json.Unmarshal(b, &cached); err == nil {
				return cached, nil
			}
		}
		cards, err := s.cardData(ctx)
		if err != nil {
			return CardData{}, err
		}
		if b, err := json.Marshal(cards); err == nil {
			_ = s.views.Set(ctx, cacheKeyCards, b)
		}
		return cards, nil
	})
	if err != nil {
		return CardData{}, err
	}
	return v.(CardData), nil
}

func (s *Service) cardData(ctx context.Context) (CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		paidCents     int64
		pendingCents  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoiceRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customerRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		paidCents, err = s.invoiceRepo.SumAmountByStatus(gctx, models.InvoiceStatusPaid)
		return err
	})
	g.Go(func() error {
		var err error
		pendingCents, err = s.invoiceRepo.SumAmountByStatus(gctx, models.InvoiceStatusPending)
		return err
	})
	if err := g.Wait(); err != nil {
		return CardData{}, wrapStore("Failed to fetch card data.", err)
	}

	return CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    currency.Format(paidCents),
		TotalPendingInvoices: currency.Format(pendingCents),
	}, nil
}

// FilteredInvoices returns one page of the invoice table matching the
// query. page is 1-based; the page size is fixed at ItemsPerPage.
func (s *Service) FilteredInvoices(ctx context.Context, query string, page int) ([]InvoiceRow, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ItemsPerPage
	rows, err := s.invoiceRepo.Filtered(ctx, query, offset, ItemsPerPage)
	if err != nil {
		return nil, wrapStore("Failed to fetch invoices.", err)
	}
	table := make([]InvoiceRow, 0, len(rows))
	for _, inv := range rows {
		table = append(table, InvoiceRow{
			ID:       inv.ID,
			Name:     inv.Customer.Name,
			Email:    inv.Customer.Email,
			ImageURL: inv.Customer.ImageURL,
			Amount:   currency.Format(inv.Amount),
			Status:   inv.Status,
			Date:     inv.Date,
		})
	}
	return table, nil
}

// InvoicePages returns the number of pages the filtered table spans.
func (s *Service) InvoicePages(ctx context.Context, query string) (int, error) {
	count, err := s.invoiceRepo.CountFiltered(ctx, query)
	if err != nil {
		return 0, wrapStore("Failed to fetch total number of invoices.", err)
	}
	return int(math.Ceil(float64(count) / float64(ItemsPerPage))), nil
}

// InvoiceByID returns the invoice in form-prefill shape, or nil when no
// invoice has the id.
func (s *Service) InvoiceByID(ctx context.Context, id uuid.UUID) (*InvoiceForm, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapStore("Failed to fetch invoice.", err)
	}
	return &InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     currency.ToDollars(invoice.Amount),
		Status:     invoice.Status,
	}, nil
}

// Customers returns every customer ordered by name.
func (s *Service) Customers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customerRepo.ListByName(ctx)
	if err != nil {
		return nil, wrapStore("Failed to fetch all customers.", err)
	}
	return customers, nil
}

// sleep applies the configured demonstration delay, honoring cancellation.
func (s *Service) sleep(ctx context.Context) {
	if s.demoDelay <= 0 {
		return
	}
	t := time.NewTimer(s.demoDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
