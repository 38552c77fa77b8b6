package handler

import (
	"net/http"

	service "invoice-dashboard-backend/internal/services/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *service.Service
}

func NewDashboardHandler(s *service.Service) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) Cards(c *gin.Context) {
	cards, err := h.service.CardData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *DashboardHandler) Revenue(c *gin.Context) {
	rows, err := h.service.Revenue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": rows})
}

func (h *DashboardHandler) LatestInvoices(c *gin.Context) {
	latest, err := h.service.LatestInvoices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": latest})
}

func (h *DashboardHandler) Customers(c *gin.Context) {
	customers, err := h.service.Customers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
