package dashboard

import (
	"context"
	"testing"
	"time"

	"invoice-dashboard-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newTestService(db *gorm.DB) *Service {
	return NewService(
		repository.NewInvoiceRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewRevenueRepository(db),
		repository.NewUserRepository(db),
		nil,
		0,
	)
}

func TestCardData(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newTestService(db)

	// The four aggregates run concurrently, so arrival order is unknown.
	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "invoices" WHERE status = \$1`).
		WithArgs("paid").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(6000))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "invoices" WHERE status = \$1`).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(2000))

	cards, err := svc.CardData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), cards.NumberOfInvoices)
	assert.Equal(t, int64(10), cards.NumberOfCustomers)
	assert.Equal(t, "$60.00", cards.TotalPaidInvoices)
	assert.Equal(t, "$20.00", cards.TotalPendingInvoices)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardDataStoreFailure(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newTestService(db)

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices"`).
		WillReturnError(assert.AnError)

	_, err := svc.CardData(context.Background())
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "Failed to fetch card data.", storeErr.Message)
}

func TestInvoicePages(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newTestService(db)

	// 13 matching rows over a page size of 6 spans 3 pages.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices" LEFT JOIN "customers" "Customer" .* ILIKE`).
		WithArgs("%ste%", "%ste%", "%ste%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(13))

	pages, err := svc.InvoicePages(context.Background(), "ste")
	require.NoError(t, err)
	assert.Equal(t, 3, pages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The filter predicate is case-insensitive at the store: both casings
// reach the same ILIKE query, only the bound pattern differs.
func TestInvoicePagesCaseInsensitiveFilter(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newTestService(db)

	mock.ExpectQuery(`ILIKE`).
		WithArgs("%STE%", "%STE%", "%STE%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`ILIKE`).
		WithArgs("%ste%", "%ste%", "%ste%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	upper, err := svc.InvoicePages(context.Background(), "STE")
	require.NoError(t, err)
	lower, err := svc.InvoicePages(context.Background(), "ste")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoicePagesEmpty(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newTestService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	pages, err := svc.InvoicePages(context.Background(), "no such customer")
	require.NoError(t, err)
	assert.Equal(t, 0, pages)
}

func TestInvoiceByID(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newTestService(db)

	id := uuid.New()
	customerID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
			AddRow(id.String(), customerID.String(), 6666, "pending", time.Now()))

	form, err := svc.InvoiceByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, id, form.ID)
	assert.Equal(t, customerID, form.CustomerID)
	// cents converted back to decimal dollars for the form
	assert.Equal(t, 66.66, form.Amount)
	assert.Equal(t, "pending", form.Status)
}

func TestInvoiceByIDNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newTestService(db)

	mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}))

	form, err := svc.InvoiceByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, form)
}

func TestUserByEmailNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newTestService(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}))

	user, err := svc.UserByEmail(context.Background(), "nobody@nextmail.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newTestService(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}).
			AddRow(id.String(), "User", "user@nextmail.com", "hash"))

	user, err := svc.UserByEmail(context.Background(), "user@nextmail.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user@nextmail.com", user.Email)
}

func TestLatestInvoices(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newTestService(db)

	invoiceID := uuid.New()
	customerID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "invoices" ORDER BY date DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
			AddRow(invoiceID.String(), customerID.String(), 15795, "pending", time.Now()))
	mock.ExpectQuery(`SELECT \* FROM "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "image_url"}).
			AddRow(customerID.String(), "Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"))

	latest, err := svc.LatestInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, invoiceID, latest[0].ID)
	assert.Equal(t, "Delba de Oliveira", latest[0].Name)
	assert.Equal(t, "delba@oliveira.com", latest[0].Email)
	assert.Equal(t, "$157.95", latest[0].Amount)
}

func TestRevenue(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newTestService(db)

	rows := sqlmock.NewRows([]string{"month", "revenue"}).
		AddRow("Jan", 2000).
		AddRow("Feb", 1800)
	mock.ExpectQuery(`SELECT \* FROM "revenue"`).WillReturnRows(rows)

	revenue, err := svc.Revenue(context.Background())
	require.NoError(t, err)
	require.Len(t, revenue, 2)
	assert.Equal(t, "Jan", revenue[0].Month)
	assert.Equal(t, int64(2000), revenue[0].Revenue)
}

func TestCustomers(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newTestService(db)

	mock.ExpectQuery(`SELECT \* FROM "customers" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "image_url"}).
			AddRow(uuid.New().String(), "Amy Burns", "amy@burns.com", "/customers/amy-burns.png").
			AddRow(uuid.New().String(), "Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"))

	customers, err := svc.Customers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Amy Burns", customers[0].Name)
}
