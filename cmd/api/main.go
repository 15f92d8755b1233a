package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/vendordesk/vendordesk-backend/internal/config"
	"github.com/vendordesk/vendordesk-backend/internal/db"
	"github.com/vendordesk/vendordesk-backend/internal/modules/auth"
	"github.com/vendordesk/vendordesk-backend/internal/modules/user"
	"github.com/vendordesk/vendordesk-backend/internal/modules/vendor"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	cfg := config.Load()
	ctx := context.Background()

	database, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := database.PingContext(ctx); err != nil {
		log.Fatal(err)
	}

	if err := db.Bootstrap(ctx, database); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity & Sessions ─────────────────────────────────
	sessions := auth.NewSessions(cfg.SessionSecret)

	userRepo := user.NewPostgresRepository(database)
	userService := user.NewService(userRepo)

	googleProvider, err := auth.NewGoogleProvider(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)
	if err != nil {
		log.Fatal(err)
	}
	auth.NewHandler(googleProvider, sessions, userService).RegisterRoutes(router)

	// ── Vendors ─────────────────────────────────────────────
	vendorRepo := vendor.NewPostgresRepository(database)
	vendorService := vendor.NewService(vendorRepo)
	vendor.NewHandler(vendorService, sessions).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	fmt.Printf("Vendordesk API server starting on :%s\n", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
