package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"kasirpos/internal/ai"
	"kasirpos/internal/auth"
	"kasirpos/internal/catalog"
	"kasirpos/internal/config"
	"kasirpos/internal/handlers"
	"kasirpos/internal/middleware"
	"kasirpos/internal/receipt"
	"kasirpos/internal/services"
	"kasirpos/internal/settings"
	"kasirpos/internal/storage"
	"kasirpos/internal/uploader"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}
	cfg := config.Load()
	auth.Init(cfg.JWTSecret)

	medium, err := storage.Open(cfg.StorageDriver, cfg.StorageDSN)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}
	log.Printf("Storage ready (%s)", cfg.StorageDriver)

	ctx := context.Background()

	productSvc := services.NewProductService(medium, cfg.Keys.Products)
	categorySvc := services.NewCategoryService(medium, cfg.Keys.Categories)
	sizeSvc := services.NewSizeService(medium, cfg.Keys.Sizes)
	supplierSvc := services.NewSupplierService(medium, cfg.Keys.Suppliers)
	cardSvc := services.NewPaymentCardService(medium, cfg.Keys.PaymentCards)
	profileSvc := services.NewCompanyProfileService(medium, cfg.Keys.CompanyProfile)
	userSvc := services.NewUserService(medium, cfg.Keys.Users)

	cat := catalog.New(productSvc, categorySvc, sizeSvc, supplierSvc)
	if err := cat.Refresh(ctx); err != nil {
		log.Println("Warning: initial catalog load failed:", err)
	}

	txSvc := services.NewTransactionService(medium, cfg.Keys.Transactions, cfg.Keys.TransactionItems, cat)
	reportSvc := services.NewReportService(txSvc, cat)

	settingSvc := settings.NewService(medium, cfg.Keys.Settings)
	if err := settingSvc.Load(ctx); err != nil {
		log.Println("Warning: failed to load settings, using defaults:", err)
	}
	receiptSvc := receipt.NewService(medium, cfg.Keys.ReceiptTemplate, settingSvc)

	if err := userSvc.Seed(ctx); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	h := &handlers.Handler{
		Cfg:          cfg,
		Catalog:      cat,
		Cards:        cardSvc,
		Profile:      profileSvc,
		Transactions: txSvc,
		Reports:      reportSvc,
		Users:        userSvc,
		Settings:     settingSvc,
		Receipts:     receiptSvc,
		StoragePing:  func() error { return medium.Ping(context.Background()) },
	}
	if cfg.UploadAPIBase != "" {
		h.Uploader = uploader.New(cfg.UploadAPIBase, cfg.UploadAPIToken)
	}
	if cfg.GeminiAPIKey != "" {
		h.Agent = ai.New(cat, reportSvc, cfg.GeminiAPIKey)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", h.Login)
	r.GET("/api/system/status", h.GetSystemStatus)
	r.Static("/uploads", cfg.UploadDir)

	if cfg.AllowRegistration {
		r.POST("/register", h.Register)
		log.Println("WARNING: Registration route is OPEN. Disable this in production!")
	} else {
		log.Println("Registration route is disabled.")
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// staff and admin
		api.GET("/products", h.GetProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/products/scan/:barcode", h.ScanProduct)
		api.POST("/checkout", h.Checkout)
		api.POST("/catalog/refresh", h.RefreshCatalog)
		api.GET("/categories", h.GetCategories)
		api.GET("/sizes", h.GetSizes)
		api.GET("/suppliers", h.GetSuppliers)
		api.GET("/payment-cards", h.GetPaymentCards)
		api.GET("/company-profile", h.GetCompanyProfile)
		api.GET("/settings", h.GetSettings)
		api.GET("/transactions", h.GetTransactions)
		api.GET("/transactions/:id", h.GetTransaction)
		api.GET("/transactions/:id/receipt", h.RenderReceipt)

		// admin only
		admin := api.Group("/")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("/ask", h.AskAI)
			admin.POST("/upload", h.UploadImage)

			admin.POST("/products", h.AddProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)
			admin.PUT("/products/:id/stock", h.AdjustStock)

			admin.POST("/categories", h.AddCategory)
			admin.PUT("/categories/:id", h.UpdateCategory)
			admin.DELETE("/categories/:id", h.DeleteCategory)

			admin.POST("/sizes", h.AddSize)
			admin.PUT("/sizes/:id", h.UpdateSize)
			admin.DELETE("/sizes/:id", h.DeleteSize)

			admin.POST("/suppliers", h.AddSupplier)
			admin.PUT("/suppliers/:id", h.UpdateSupplier)
			admin.DELETE("/suppliers/:id", h.DeleteSupplier)

			admin.POST("/payment-cards", h.AddPaymentCard)
			admin.PUT("/payment-cards/:id", h.UpdatePaymentCard)
			admin.DELETE("/payment-cards/:id", h.DeletePaymentCard)

			admin.POST("/company-profile", h.SaveCompanyProfile)
			admin.PUT("/company-profile", h.UpdateCompanyProfile)
			admin.PUT("/settings", h.UpdateSettings)

			admin.PUT("/transactions/:id/status", h.UpdateTransactionStatus)
			admin.DELETE("/transactions/:id", h.DeleteTransaction)

			admin.GET("/receipt-template", h.GetReceiptTemplate)
			admin.PUT("/receipt-template", h.SaveReceiptTemplate)

			admin.GET("/reports", h.GetSalesReport)
			admin.GET("/reports/range", h.GetSalesRange)
			admin.GET("/reports/valuation", h.GetStockValuation)
			admin.GET("/reports/low-stock", h.GetLowStockReport)
		}
	}

	log.Println("Server starting on " + cfg.BaseURL)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
