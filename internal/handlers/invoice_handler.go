package handler

import (
	"net/http"
	"strconv"

	dashboard "invoice-dashboard-backend/internal/services/dashboard"
	invoices "invoice-dashboard-backend/internal/services/invoices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	mutations *invoices.Service
	queries   *dashboard.Service
}

func NewInvoiceHandler(mutations *invoices.Service, queries *dashboard.Service) *InvoiceHandler {
	return &InvoiceHandler{mutations: mutations, queries: queries}
}

// List returns one page of the invoice table, filtered by ?query= and
// paginated by ?page= (1-based, fixed page size).
func (h *InvoiceHandler) List(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	rows, err := h.queries.FilteredInvoices(c.Request.Context(), query, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": rows, "page": page})
}

func (h *InvoiceHandler) Pages(c *gin.Context) {
	pages, err := h.queries.InvoicePages(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalPages": pages})
}

func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	invoice, err := h.queries.InvoiceByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if invoice == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Audit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	trail, err := h.mutations.AuditTrail(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch audit trail"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"audit": trail})
}

// Create accepts the invoice form and answers with the validation state:
// 422 with field errors, 500 on a store failure, 201 on success.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var form invoices.Form
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	state := h.mutations.Create(c.Request.Context(), form)
	if len(state.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, state)
		return
	}
	if state.Message != "" {
		c.JSON(http.StatusInternalServerError, state)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "invoice created"})
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}
	var form invoices.Form
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	state := h.mutations.Update(c.Request.Context(), id, form)
	if len(state.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, state)
		return
	}
	if state.Message != "" {
		c.JSON(http.StatusInternalServerError, state)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "invoice updated"})
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	state := h.mutations.Delete(c.Request.Context(), id)
	if state.Message != invoices.MsgDeleted {
		c.JSON(http.StatusInternalServerError, state)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": state.Message})
}
