// Package main is the entry point for the QRIS invoice server.
// It loads configuration, builds the invoice service and serves it over HTTP
// until interrupted.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qris/internal/config"
	domainInvoice "qris/internal/domain/invoice"
	"qris/internal/logger"
	"qris/internal/repositories"
	"qris/internal/repositories/cache"
	"qris/internal/routes"
	"qris/internal/services/invoice"
	"qris/internal/services/qr"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	appLog, err := logger.New(os.Stdout, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Close()

	issuer := domainInvoice.NewIssuer(domainInvoice.IssuerConfig{
		MinAmount:          cfg.Invoice.MinAmount,
		MaxAmount:          cfg.Invoice.MaxAmount,
		TTL:                cfg.Invoice.TTL,
		MaxTokenIterations: cfg.Invoice.MaxTokenIterations,
		CallbackHost:       cfg.Server.PublicHost,
		CallbackPort:       cfg.Server.PublicPort,
	}, time.Now)
	store := repositories.NewInvoiceStore(issuer)

	var audit invoice.AuditRecorder = invoice.NoopAuditRecorder{}
	if cfg.Audit.Enabled() {
		db, err := repositories.OpenAuditDB(cfg.Audit.DSN, !cfg.IsProduction())
		if err != nil {
			log.Fatalf("Failed to open audit database: %v", err)
		}
		defer func() {
			if err := repositories.CloseDB(db); err != nil {
				appLog.Warn("AUDIT", fmt.Sprintf("failed to close audit database: %v", err))
			}
		}()
		audit = repositories.NewAuditRepository(db)
		appLog.Info("AUDIT", "invoice audit trail enabled")
	}

	deps := routes.Dependencies{
		Logger:       appLog,
		APIKey:       cfg.APIKey,
		RateLimitMax: cfg.RateLimit.Max,
		RateLimitTTL: cfg.RateLimit.Window,
	}

	if cfg.Redis.Enabled() {
		client := cache.NewRedisClient(&cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		storage := cache.NewStorage(client, "qris:limiter:")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := storage.HealthCheck(ctx); err != nil {
			appLog.Warn("REDIS", err.Error())
		} else {
			appLog.Info("REDIS", "connected to "+cfg.Redis.Addr)
		}
		cancel()
		defer storage.Close()

		deps.LimiterStorage = storage
		deps.Redis = storage
	}

	svc := invoice.NewService(store, issuer, qr.NewEncoder(qr.DefaultSize), audit, appLog, invoice.Config{
		LocalOffset: cfg.Invoice.LocalOffset,
		TerminalQR:  !cfg.IsProduction(),
	})
	deps.InvoiceService = svc
	appLog.Info("SERVER", "merchant id "+svc.MerchantID())

	app := fiber.New(fiber.Config{
		AppName:      "qris",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})
	routes.SetupRoutes(app, deps)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		appLog.Info("SERVER", "listening on "+addr)
		if err := app.Listen(addr); err != nil {
			appLog.Error("SERVER", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("SERVER", "shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLog.Error("SERVER", fmt.Sprintf("shutdown failed: %v", err))
	}
}
