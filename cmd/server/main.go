package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dclavijo/tienda-backend/internal/config"
	"github.com/dclavijo/tienda-backend/internal/db"
	"github.com/dclavijo/tienda-backend/internal/es"
	"github.com/dclavijo/tienda-backend/internal/handlers"
	"github.com/dclavijo/tienda-backend/internal/logging"
	authmw "github.com/dclavijo/tienda-backend/internal/middleware/auth"
	loggingmw "github.com/dclavijo/tienda-backend/internal/middleware/logging"
	metricsmw "github.com/dclavijo/tienda-backend/internal/middleware/metrics"
	"github.com/dclavijo/tienda-backend/internal/repo"
	"github.com/dclavijo/tienda-backend/internal/service"
	httpserver "github.com/dclavijo/tienda-backend/internal/transport/http"
)

func main() {
	configuration, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(configuration.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(configuration.JWTSecret, "JWT_SECRET")

	logger := logging.New(configuration.LogLevel)

	database, err := db.Open(context.Background(), configuration.DatabaseURL)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var indexer *es.Indexer
	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		indexer = &es.Indexer{ES: esClient, Index: "productos"}
	} else {
		logger.Warn("ES_URL not set, product search disabled")
	}

	gormRepo := &repo.GormRepo{DB: database}
	guard := &authmw.Guard{
		CookieName: configuration.AuthCookieName,
		Secret:     configuration.JWTSecret,
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger), metricsmw.Metrics())

	deps := httpserver.Deps{
		DB:    database,
		Guard: guard,
		AuthHandler: &handlers.AuthHandler{
			Svc:        &service.AuthService{Repo: gormRepo},
			JWTSecret:  configuration.JWTSecret,
			CookieName: configuration.AuthCookieName,
		},
		ProductHandler:  &handlers.ProductHandler{Svc: &service.CatalogService{Repo: gormRepo, Indexer: indexer}},
		CartHandler:     &handlers.CartHandler{Svc: &service.CartService{Repo: gormRepo}},
		CheckoutHandler: &handlers.CheckoutHandler{Svc: &service.CheckoutService{Repo: gormRepo}},
		SearchHandler:   &handlers.SearchHandler{Svc: &service.SearchService{Indexer: indexer}},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configuration.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}
}
