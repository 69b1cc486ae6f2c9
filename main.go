package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hikebook/config"
	"hikebook/jobs"
	"hikebook/metrics"
	"hikebook/routes"
	"hikebook/services"
	"hikebook/services/logger"
	"hikebook/views"

	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		App:    "hikebook",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	rdb, err := config.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		appLog.Info("Redis không khả dụng, session lưu trong bộ nhớ: %v", err)
	}

	catalog := services.NewCatalogService(db, rdb, appLog)

	// go run . seed: xóa dữ liệu cũ và nạp lại dữ liệu mẫu
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := catalog.Seed(ctx, true); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		appLog.Info("Seed xong. Demo user: %s / %s", services.DemoUserEmail, services.DemoUserPassword)
		return
	}
	if cfg.SeedOnStart {
		if err := catalog.Seed(ctx, false); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
	}

	memoryStore := services.NewMemorySessionStore()
	var sessionStore services.SessionStore = memoryStore
	if rdb != nil {
		defer rdb.Close()
		sessionStore = services.NewFailoverSessionStore(services.NewRedisSessionStore(rdb), memoryStore, appLog)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	registry := views.NewRegistry(renderer.Partials())
	views.RegisterDefaults(registry)

	metrics.Register()

	bookings := services.NewBookingService(db, catalog, appLog)
	router := config.InitApp(cfg, renderer)
	routes.SetupRoutes(router, routes.Dependencies{
		Config:   cfg,
		Log:      appLog,
		Catalog:  catalog,
		Auth:     services.NewAuthService(db, appLog),
		Bookings: bookings,
		Wizard:   services.NewWizardService(catalog, bookings, appLog),
		Sessions: services.NewSessionIssuer(sessionStore, cfg.SecureCookie),
		Tokens:   services.NewTokenIssuer(cfg.JWTSecret),
		Registry: registry,
	})

	c := cron.New()
	if err := jobs.InitCronJobs(c, memoryStore, appLog); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLog.Info("Server starting on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	appLog.Info("Đang tắt server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Shutdown lỗi: %v", err)
	}
}
