package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"crackershop/internal/cache"
	"crackershop/internal/config"
	"crackershop/internal/database"
	"crackershop/internal/domain/activity"
	"crackershop/internal/domain/catalog"
	"crackershop/internal/domain/compliance"
	"crackershop/internal/domain/customer"
	"crackershop/internal/domain/inventory"
	"crackershop/internal/domain/lead"
	"crackershop/internal/domain/order"
	"crackershop/internal/domain/pos"
	"crackershop/internal/domain/report"
	"crackershop/internal/domain/whatsapp"
	"crackershop/internal/middleware"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db,
		&lead.Lead{},
		&order.Order{},
		&catalog.Product{},
		&inventory.StockItem{},
		&inventory.StockAdjustment{},
		&customer.Customer{},
		&compliance.Certificate{},
		&activity.Event{},
	); err != nil {
		log.Fatal(err)
	}

	rdb := cache.NewClient(cfg.Redis)

	// repositories
	leadRepo := lead.NewRepository(db)
	orderRepo := order.NewRepository(db)
	if err := orderRepo.EnsureIndexes(); err != nil {
		log.Fatal(err)
	}
	productRepo := catalog.NewRepository(db)
	stockRepo := inventory.NewRepository(db)
	customerRepo := customer.NewRepository(db)
	certRepo := compliance.NewRepository(db)
	activityRepo := activity.NewRepository(db)

	// services
	hub := activity.NewHub()
	activityService := activity.NewService(activityRepo, hub)
	customerService := customer.NewService(customerRepo)
	orderService := order.NewService(orderRepo, customerService, activityService)
	leadService := lead.NewService(leadRepo, orderService, activityService)
	catalogService := catalog.NewService(productRepo, rdb)
	inventoryService := inventory.NewService(stockRepo)
	complianceService := compliance.NewService(certRepo)
	posService := pos.NewService(catalogService, orderService, inventoryService)
	reportService := report.NewService(orderRepo, leadRepo, stockRepo)
	waClient := whatsapp.NewClient(cfg.WhatsApp)

	// handlers
	leadHandler := lead.NewHandler(leadService)
	orderHandler := order.NewHandler(orderService)
	catalogHandler := catalog.NewHandler(catalogService)
	inventoryHandler := inventory.NewHandler(inventoryService)
	customerHandler := customer.NewHandler(customerService)
	complianceHandler := compliance.NewHandler(complianceService)
	posHandler := pos.NewHandler(posService)
	reportHandler := report.NewHandler(reportService)
	waHandler := whatsapp.NewHandler(waClient, activityService)
	activityHandler := activity.NewHandler(activityService, hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	// public storefront surface, legacy wire shapes, rate limited
	public := r.Group("/api")
	public.Use(middleware.RateLimit("60-M"))
	{
		lead.RegisterPublicRoutes(public, leadHandler)
		whatsapp.RegisterRoutes(public, waHandler)
	}

	// back-office API
	v1 := r.Group("/api/v1")
	{
		lead.RegisterRoutes(v1, leadHandler)
		order.RegisterRoutes(v1, orderHandler)
		catalog.RegisterRoutes(v1, catalogHandler)
		inventory.RegisterRoutes(v1, inventoryHandler)
		customer.RegisterRoutes(v1, customerHandler)
		compliance.RegisterRoutes(v1, complianceHandler)
		pos.RegisterRoutes(v1, posHandler)
		report.RegisterRoutes(v1, reportHandler)
		activity.RegisterRoutes(v1, activityHandler)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
