package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fragrance-tracker/internal/config"
	"fragrance-tracker/internal/handlers"
	"fragrance-tracker/internal/middleware"
	"fragrance-tracker/internal/models"
	"fragrance-tracker/internal/repository"
	"fragrance-tracker/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.Fragrance{},
		&models.Customer{},
		&models.Sale{},
		&models.Supply{},
		&models.Oil{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize logrus logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize repositories
	fragranceRepo := repository.NewFragranceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplyRepo := repository.NewSupplyRepository(db)
	oilRepo := repository.NewOilRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// Initialize services
	catalogService := services.NewCatalogService(fragranceRepo)
	saleService := services.NewSaleService(saleRepo, fragranceRepo, customerRepo, logger)

	// Initialize handlers
	fragranceHandler := handlers.NewFragranceHandler(fragranceRepo, catalogService)
	customerHandler := handlers.NewCustomerHandler(customerRepo)
	supplyHandler := handlers.NewSupplyHandler(supplyRepo)
	oilHandler := handlers.NewOilHandler(oilRepo)
	saleHandler := handlers.NewSaleHandler(saleService)
	importHandler := handlers.NewImportHandler(fragranceRepo, supplyRepo, oilRepo)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	// Health check endpoint
	router.GET("/health", handlers.HealthCheck(db))

	api := router.Group("/api/v1")

	// Fragrance routes
	fragrances := api.Group("/fragrances")
	{
		fragrances.POST("", fragranceHandler.CreateFragrance)
		fragrances.GET("", fragranceHandler.ListFragrances)
		fragrances.GET("/low-stock", fragranceHandler.GetLowStock)
		fragrances.GET("/:id", fragranceHandler.GetFragrance)
		fragrances.PUT("/:id", fragranceHandler.UpdateFragrance)
		fragrances.DELETE("/:id", fragranceHandler.DeleteFragrance)
		fragrances.PATCH("/:id/quantity", fragranceHandler.UpdateFragranceQuantity)

		// Import/Export
		fragrances.GET("/import/template", importHandler.GetFragranceImportTemplate)
		fragrances.POST("/import", importHandler.ImportFragrances)
	}

	// Customer routes
	customers := api.Group("/customers")
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	// Supply routes
	supplies := api.Group("/supplies")
	{
		supplies.POST("", supplyHandler.CreateSupply)
		supplies.GET("", supplyHandler.ListSupplies)
		supplies.GET("/:id", supplyHandler.GetSupply)
		supplies.PUT("/:id", supplyHandler.UpdateSupply)
		supplies.DELETE("/:id", supplyHandler.DeleteSupply)
		supplies.PATCH("/:id/quantity", supplyHandler.UpdateSupplyQuantity)

		// Import/Export
		supplies.GET("/import/template", importHandler.GetSupplyImportTemplate)
		supplies.POST("/import", importHandler.ImportSupplies)
	}

	// Oil routes
	oils := api.Group("/oils")
	{
		oils.POST("", oilHandler.CreateOil)
		oils.GET("", oilHandler.ListOils)
		oils.GET("/:id", oilHandler.GetOil)
		oils.PUT("/:id", oilHandler.UpdateOil)
		oils.DELETE("/:id", oilHandler.DeleteOil)
		oils.PATCH("/:id/quantity", oilHandler.UpdateOilQuantity)

		// Import/Export
		oils.GET("/import/template", importHandler.GetOilImportTemplate)
		oils.POST("/import", importHandler.ImportOils)
	}

	// Sales ledger routes
	sales := api.Group("/sales")
	{
		sales.POST("", saleHandler.RecordSale)
		sales.GET("", saleHandler.ListSales)
		sales.GET("/summary", saleHandler.GetSalesSummary)
	}

	addr := net.JoinHostPort(cfg.Host, cfg.Port)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Fragrance tracker starting on %s", addr)
		if err := router.Run(addr); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	log.Println("Shutting down fragrance-tracker...")

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	log.Println("Fragrance tracker stopped")
}
