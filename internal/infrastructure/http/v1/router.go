// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"vendorledger/internal/domain/brand"
	"vendorledger/internal/domain/invoice"
	"vendorledger/internal/domain/issue"
	"vendorledger/internal/domain/snapshot"
	"vendorledger/internal/domain/vendor"
	"vendorledger/internal/infrastructure/http/v1/handlers"
	"vendorledger/internal/infrastructure/http/v1/middleware"
	"vendorledger/internal/infrastructure/storage"
	"vendorledger/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Backend names the active storage backend, reported by /health
	Backend storage.Backend

	// Stores is the repository bundle of the active backend
	Stores storage.Stores

	// Logger for request logging
	Logger *logger.Logger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	base := handlers.NewBaseHandler()

	vendorHandler := handlers.NewVendorHandler(base, vendor.NewService(cfg.Stores.Vendors))
	brandHandler := handlers.NewBrandHandler(base, brand.NewService(cfg.Stores.Brands))
	issueHandler := handlers.NewIssueHandler(base, issue.NewService(cfg.Stores.Issues))
	invoiceHandler := handlers.NewInvoiceHandler(base, invoice.NewService(cfg.Stores.Invoices))

	snapshotService := snapshot.NewService(cfg.Stores.Snapshots)
	snapshotHandler := handlers.NewSnapshotHandler(base, snapshotService)
	healthHandler := handlers.NewHealthHandler(cfg.Backend, snapshotService)

	router.GET("/health", healthHandler.Check)

	api := router.Group("/api")
	{
		api.GET("/data", snapshotHandler.Data)
		api.GET("/backup", snapshotHandler.Backup)

		api.GET("/vendors", vendorHandler.List)
		api.POST("/vendors", vendorHandler.Create)
		api.DELETE("/vendors/:id", vendorHandler.Delete)

		api.GET("/brands", brandHandler.List)
		api.POST("/brands", brandHandler.Create)
		api.DELETE("/brands/:id", brandHandler.Delete)

		api.GET("/issues", issueHandler.List)
		api.POST("/issues", issueHandler.Create)
		api.PUT("/issues/:id", issueHandler.Update)

		api.GET("/invoices", invoiceHandler.List)
		api.POST("/invoices", invoiceHandler.Upsert)
		api.DELETE("/invoices/:id", invoiceHandler.Delete)
		api.GET("/invoices-complete", invoiceHandler.ListComplete)

		api.POST("/payments", invoiceHandler.RecordPayment)
		api.POST("/credit-notes", invoiceHandler.RecordCreditNote)
	}

	return router
}
