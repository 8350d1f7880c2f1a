// Command seed loads a small sample catalog for local development. It is a
// no-op when products already exist.
package main

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/trynex/lifestyle-backend/models"
	"github.com/trynex/lifestyle-backend/pkg/config"
	"github.com/trynex/lifestyle-backend/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	productsRepo := models.NewProductsRepository(db)
	categoriesRepo := models.NewCategoriesRepository(db)

	existing, err := productsRepo.GetProducts()
	if err != nil {
		log.Fatalf("Failed to check existing products: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Database already has %d products, skipping seed", len(existing))
		return
	}

	for _, category := range sampleCategories() {
		if err := categoriesRepo.CreateCategory(&category); err != nil {
			if errors.Is(err, models.ErrDuplicateSlug) {
				continue
			}
			log.Fatalf("Failed to seed category %q: %v", category.Slug, err)
		}
	}

	for _, product := range sampleProducts() {
		if err := productsRepo.CreateProduct(&product); err != nil {
			log.Fatalf("Failed to seed product %q: %v", product.Name, err)
		}
	}

	log.Println("Sample catalog seeded successfully")
}

func sampleCategories() []models.Category {
	return []models.Category{
		{
			Name:        "Custom T-Shirts",
			NameBn:      "কাস্টম টি-শার্ট",
			Slug:        "custom-t-shirts",
			Description: "Personalized t-shirts with your design",
			Icon:        "👕",
			IsActive:    true,
			SortOrder:   1,
		},
		{
			Name:        "Photo Frames",
			NameBn:      "ফটো ফ্রেম",
			Slug:        "photo-frames",
			Description: "Custom photo frames for memories",
			Icon:        "🖼️",
			IsActive:    true,
			SortOrder:   2,
		},
		{
			Name:        "Mugs",
			NameBn:      "মগ",
			Slug:        "mugs",
			Description: "Personalized coffee mugs",
			Icon:        "☕",
			IsActive:    true,
			SortOrder:   3,
		},
	}
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			Name:          "Customizable T-Shirt",
			NameBn:        "কাস্টমাইজেবল টি-শার্ট",
			Description:   "High-quality cotton t-shirt perfect for custom designs",
			DescriptionBn: "কাস্টম ডিজাইনের জন্য উপযুক্ত উচ্চমানের কটন টি-শার্ট",
			Price:         decimal.NewFromInt(599),
			Category:      "custom-t-shirts",
			Image:         "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
			Gallery: models.StringList{
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
				"https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=500",
			},
			IsFeatured: true,
			IsActive:   true,
			Stock:      50,
		},
		{
			Name:          "Custom Mug",
			NameBn:        "কাস্টম মগ",
			Description:   "Ceramic mug perfect for personalized gifts",
			DescriptionBn: "ব্যক্তিগতকৃত উপহারের জন্য উপযুক্ত সিরামিক মগ",
			Price:         decimal.NewFromInt(299),
			Category:      "mugs",
			Image:         "https://images.unsplash.com/photo-1544787219-7f47ccb76574?w=500",
			Gallery: models.StringList{
				"https://images.unsplash.com/photo-1544787219-7f47ccb76574?w=500",
			},
			IsFeatured: true,
			IsActive:   true,
			Stock:      30,
		},
		{
			Name:          "Custom Photo Frame",
			NameBn:        "কাস্টম ফটো ফ্রেম",
			Description:   "Wooden photo frame with personalized engraving",
			DescriptionBn: "ব্যক্তিগতকৃত খোদাই সহ কাঠের ফটো ফ্রেম",
			Price:         decimal.NewFromInt(450),
			Category:      "photo-frames",
			Image:         "https://images.unsplash.com/photo-1513519245088-0e12902e5a38?w=500",
			IsActive:      true,
			Stock:         25,
		},
	}
}
