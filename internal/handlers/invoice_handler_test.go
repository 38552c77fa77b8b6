package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"invoice-dashboard-backend/internal/repository"
	invoicesvc "invoice-dashboard-backend/internal/services/invoices"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	svc := invoicesvc.NewService(
		repository.NewInvoiceRepository(db),
		repository.NewAuditLogRepository(db),
		nil,
	)
	h := NewInvoiceHandler(svc, nil)

	r := gin.New()
	r.POST("/api/invoices", h.Create)
	r.DELETE("/api/invoices/:id", h.Delete)
	return r, mock
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateInvoiceValidationErrors(t *testing.T) {
	r, mock := newTestRouter(t)

	w := postForm(r, "/api/invoices", url.Values{
		"customerId": {""},
		"amount":     {"-10"},
		"status":     {"overdue"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Please select a customer.")
	assert.Contains(t, body, "Please enter an amount greater than $0.")
	assert.Contains(t, body, "Please select an invoice status.")
	assert.Contains(t, body, "Missing Fields. Failed to Create Invoice.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteInvoiceBadID(t *testing.T) {
	r, mock := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/invoices/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteInvoiceMissingRow(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec(`DELETE FROM "invoices" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest(http.MethodDelete, "/api/invoices/8f0d2c6f-3d14-4c2c-9b36-1f3a1f3a0001", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Database Error: Failed to Delete Invoice.")
	assert.NoError(t, mock.ExpectationsWereMet())
}
