package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"github.com/trynex/lifestyle-backend/app/cart"
	"github.com/trynex/lifestyle-backend/app/categories"
	"github.com/trynex/lifestyle-backend/app/contact"
	"github.com/trynex/lifestyle-backend/app/designs"
	"github.com/trynex/lifestyle-backend/app/health"
	"github.com/trynex/lifestyle-backend/app/orders"
	"github.com/trynex/lifestyle-backend/app/products"
	"github.com/trynex/lifestyle-backend/models"
	"github.com/trynex/lifestyle-backend/pkg/config"
	"github.com/trynex/lifestyle-backend/pkg/database"
)

type dbPinger struct {
	db *gorm.DB
}

func (p dbPinger) Ping() error {
	return database.Ping(p.db)
}

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
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}
	}

	productsHandler := products.NewProductsHandler(models.NewProductsRepository(db))
	categoriesHandler := categories.NewCategoriesHandler(models.NewCategoriesRepository(db))
	cartHandler := cart.NewCartHandler(models.NewCartRepository(db))
	ordersHandler := orders.NewOrdersHandler(models.NewOrdersRepository(db))
	contactHandler := contact.NewContactHandler(models.NewContactRepository(db))
	designsHandler := designs.NewDesignsHandler(models.NewDesignsRepository(db))
	healthHandler := health.NewHealthHandler(dbPinger{db: db}, cfg.Server.Env)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/products", productsHandler.HandleList)
	mux.HandleFunc("GET /api/products/{id}", productsHandler.HandleGet)
	mux.HandleFunc("POST /api/products", productsHandler.HandleCreate)
	mux.HandleFunc("PUT /api/products/{id}", productsHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/products/{id}", productsHandler.HandleDelete)

	mux.HandleFunc("GET /api/categories", categoriesHandler.HandleList)
	mux.HandleFunc("POST /api/categories", categoriesHandler.HandleCreate)

	mux.HandleFunc("GET /api/cart/{sessionId}", cartHandler.HandleGet)
	mux.HandleFunc("POST /api/cart/{sessionId}/add", cartHandler.HandleAdd)
	mux.HandleFunc("PUT /api/cart/{sessionId}/update", cartHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/cart/{sessionId}/remove", cartHandler.HandleRemove)
	mux.HandleFunc("DELETE /api/cart/{sessionId}", cartHandler.HandleClear)

	mux.HandleFunc("POST /api/orders", ordersHandler.HandleCreate)
	mux.HandleFunc("GET /api/orders", ordersHandler.HandleList)
	mux.HandleFunc("GET /api/orders/{orderId}", ordersHandler.HandleGetByOrderID)
	mux.HandleFunc("PUT /api/orders/{id}/status", ordersHandler.HandleUpdateStatus)

	mux.HandleFunc("POST /api/contact", contactHandler.HandleCreate)
	mux.HandleFunc("GET /api/contact", contactHandler.HandleList)

	mux.HandleFunc("POST /api/custom-designs", designsHandler.HandleCreate)
	mux.HandleFunc("GET /api/custom-designs/{sessionId}", designsHandler.HandleGetBySession)

	mux.HandleFunc("GET /health", healthHandler.HandleGet)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           int(12 * time.Hour / time.Second),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: corsMiddleware.Handler(mux),
	}

	go func() {
		log.Printf("Server running on %s (env: %s)", srv.Addr, cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutdown signal received, shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
