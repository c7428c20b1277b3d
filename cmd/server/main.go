package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/unimarket/backend/internal/config"
	"github.com/unimarket/backend/internal/events"
	"github.com/unimarket/backend/internal/httpserver"
	"github.com/unimarket/backend/internal/repo"
	"github.com/unimarket/backend/internal/seed"
	"github.com/unimarket/backend/internal/service"
	pkgdb "github.com/unimarket/backend/pkg/db"
	"github.com/unimarket/backend/pkg/logging"
	loggingmw "github.com/unimarket/backend/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("notice: .env not loaded: %v", err)
	}

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", "unimarket")
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := pkgdb.Migrate(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	store := &repo.GormRepo{DB: db}

	seedCtx := logging.IntoContext(context.Background(), logger)
	if err := seed.Products(seedCtx, store, cfg.SeedFile); err != nil {
		log.Fatalf("product seed: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers, "activity_events")
	defer func() { _ = producer.Close() }()

	activitySvc := &service.ActivityService{Repo: store, Events: producer}
	authSvc := &service.AuthService{Repo: store}
	catalogSvc := &service.CatalogService{Repo: store, Activity: activitySvc}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:     &httpserver.AuthHTTP{Svc: authSvc},
		CatalogHandler:  &httpserver.CatalogHTTP{Svc: catalogSvc},
		ActivityHandler: &httpserver.ActivityHTTP{Svc: activitySvc},
		DebugHandler:    &httpserver.DebugHTTP{Repo: store, SeedFile: cfg.SeedFile},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server stopped")
}
