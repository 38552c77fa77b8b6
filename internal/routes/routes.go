package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/auth"
	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/config"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
	dashboardsvc "invoice-dashboard-backend/internal/services/dashboard"
	invoicesvc "invoice-dashboard-backend/internal/services/invoices"
)

func RegisterRoutes(r *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	views := cache.NewViewCache(rdb, cfg.Redis.CacheTTL)
	sessions := auth.NewStore(rdb, cfg.Redis.SessionTTL)
	authenticator := auth.NewAuthenticator(userRepo)

	dashboardService := dashboardsvc.NewService(
		invoiceRepo,
		customerRepo,
		revenueRepo,
		userRepo,
		views,
		cfg.DB.DemoDelay,
	)
	invoiceService := invoicesvc.NewService(invoiceRepo, auditRepo, views)

	authHandler := handler.NewAuthHandler(authenticator, sessions)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, dashboardService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	protected := api.Group("", auth.RequireSession(sessions))

	protected.GET("/auth/me", authHandler.Me)

	dash := protected.Group("/dashboard")
	dash.GET("/cards", dashboardHandler.Cards)
	dash.GET("/revenue", dashboardHandler.Revenue)
	dash.GET("/latest-invoices", dashboardHandler.LatestInvoices)

	invoices := protected.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/pages", invoiceHandler.Pages)
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.GET("/:id/audit", invoiceHandler.Audit)
		invoices.POST("", invoiceHandler.Create)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	protected.GET("/customers", dashboardHandler.Customers)
}
