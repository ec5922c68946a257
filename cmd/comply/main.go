package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/startupcomply/comply/internal/api"
	"github.com/startupcomply/comply/internal/config"
	"github.com/startupcomply/comply/internal/security"
	"github.com/startupcomply/comply/internal/store"
)

func main() {
	cfg := config.Load()

	location := mustLoadLocation(cfg.Timezone)
	time.Local = location

	secretKey := cfg.SecretKey
	if secretKey == "" {
		generated, err := security.RandomString(48, security.AlphabetAlphanumeric)
		if err != nil {
			log.Fatalf("secret key generation failed: %v", err)
		}
		secretKey = generated
	}

	database, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	kv := store.NewKV(database, store.WithWriteErrorObserver(func(key string, err error) {
		log.Printf("storage write dropped for %s: %v", key, err)
	}))

	handler := api.NewHandler(kv, secretKey, cfg.CookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "StartupComply",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("StartupComply listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
