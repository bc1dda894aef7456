package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"crackershop/internal/config"
	"crackershop/internal/database"
	"crackershop/internal/domain/activity"
	"crackershop/internal/domain/catalog"
	"crackershop/internal/domain/compliance"
	"crackershop/internal/domain/customer"
	"crackershop/internal/domain/inventory"
	"crackershop/internal/domain/lead"
	"crackershop/internal/domain/order"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
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
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM activity_events")
	db.Exec("DELETE FROM stock_adjustments")
	db.Exec("DELETE FROM stock_items")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM certificates")
	db.Exec("DELETE FROM products")

	ctx := context.Background()
	now := time.Now()

	// ================== PRODUCTS ==================
	log.Println("Creating products...")

	products := []catalog.Product{
		{
			Name: "Sparkler Gold 30cm", ShortDescription: "Classic gold sparklers, pack of 10",
			Category: "Sparklers", Brand: "Standard", SKU: "SPK-G30",
			MRP: 60, SellingPrice: 45, CostPrice: 28, GSTPercentage: 18,
			PESOCertificationNo: "PESO/SIV/2025/1101", GreenCracker: true, Active: true,
		},
		{
			Name: "Flower Pot Big", ShortDescription: "Large fountain, 5 pieces",
			Category: "Fountains", Brand: "Standard", SKU: "FP-BIG",
			MRP: 250, SellingPrice: 190, CostPrice: 120, GSTPercentage: 18,
			PESOCertificationNo: "PESO/SIV/2025/1102", GreenCracker: true, Active: true,
		},
		{
			Name: "Sky Shot 30", ShortDescription: "30-shot aerial cake",
			Category: "Aerial", Brand: "Premium", SKU: "SKY-30",
			MRP: 1800, SellingPrice: 1450, CostPrice: 900, GSTPercentage: 18,
			PESOCertificationNo: "PESO/SIV/2025/1103", RequiresLicense: true, Active: true,
		},
		{
			Name: "Ground Chakkar Deluxe", ShortDescription: "Spinning wheels, pack of 10",
			Category: "Ground", Brand: "Standard", SKU: "GC-DLX",
			MRP: 120, SellingPrice: 95, CostPrice: 55, GSTPercentage: 18,
			PESOCertificationNo: "PESO/SIV/2025/1104", GreenCracker: true, Active: true,
		},
	}
	for i := range products {
		products[i].ID = uuid.NewString()
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
		db.Create(&products[i])
	}

	// ================== STOCK ==================
	log.Println("Creating stock...")

	for i, p := range products {
		item := inventory.StockItem{
			ID:              uuid.NewString(),
			ProductID:       p.ID,
			ProductName:     p.Name,
			SKU:             p.SKU,
			CurrentStock:    200 - i*40,
			MinAllowedStock: 30,
			MaxAllowedStock: 500,
			LegalLimit:      400,
			ReorderLevel:    20,
			Location:        "Godown A",
			LastUpdated:     now,
		}
		item.Status = item.ComputeStatus()
		db.Create(&item)
	}

	// ================== LEADS ==================
	log.Println("Creating leads...")

	leadRepo := lead.NewRepository(db)
	samples := []lead.Lead{
		{
			CustomerName: "Ravi Kumar", Phone: "+91 98765 11111", City: "Sivakasi",
			InterestedProduct: "Sky Shot 30", Quantity: "10 boxes",
			LeadSource: lead.SourceWebsite, LeadStatus: lead.StageNew,
		},
		{
			CustomerName: "Meena Traders", Phone: "+91 98765 22222", City: "Madurai",
			InterestedProduct: "Sparkler Gold 30cm", Quantity: "500 packs",
			LeadSource: lead.SourceWhatsApp, LeadStatus: lead.StageContacted,
			Notes: "Bulk pricing requested",
		},
		{
			CustomerName: "Arun Stores", Phone: "+91 98765 33333", City: "Chennai",
			InterestedProduct: "Flower Pot Big", Quantity: "200 pieces",
			LeadSource: lead.SourcePhone, LeadStatus: lead.StageConfirmed,
		},
	}
	for i := range samples {
		samples[i].ID = uuid.NewString()
		samples[i].CreatedAt = now.Add(time.Duration(i) * time.Minute)
		samples[i].UpdatedAt = samples[i].CreatedAt
		if err := leadRepo.Create(ctx, &samples[i]); err != nil {
			log.Fatal("lead seed failed:", err)
		}
	}

	// ================== CERTIFICATES ==================
	log.Println("Creating certificates...")

	certs := []compliance.Certificate{
		{
			CertificateType: "PESO License", CertificateNo: "PESO/LIC/2024/001",
			Issuer:     "Petroleum and Explosives Safety Organisation",
			IssuedDate: now.AddDate(-1, 0, 0), ExpiryDate: now.AddDate(1, 0, 0),
		},
		{
			CertificateType: "Fire Safety Certificate", CertificateNo: "FSC/2025/104",
			Issuer:     "Tamil Nadu Fire and Rescue Services",
			IssuedDate: now.AddDate(0, -11, 0), ExpiryDate: now.AddDate(0, 0, 20),
		},
		{
			CertificateType: "Storage License", CertificateNo: "STG/2023/77",
			Issuer:     "District Collectorate",
			IssuedDate: now.AddDate(-2, 0, 0), ExpiryDate: now.AddDate(0, -1, 0),
		},
	}
	for i := range certs {
		certs[i].ID = uuid.NewString()
		certs[i].CreatedAt = now
		db.Create(&certs[i])
	}

	fmt.Println()
	log.Printf("Seed complete: %d products, %d stock items, %d leads, %d certificates",
		len(products), len(products), len(samples), len(certs))
}
