package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/cyclecal/internal/api"
	"github.com/terraincognita07/cyclecal/internal/cycle"
	"github.com/terraincognita07/cyclecal/internal/db"
)

const maxFallbackPeriodDays = 14

type config struct {
	Port     string
	DBPath   string
	Location *time.Location
	Cycle    cycle.Options
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}
	time.Local = cfg.Location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler, err := api.NewHandler(database, cfg.Location, cfg.Cycle)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "CycleCal",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

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

	log.Printf("CycleCal listening on http://0.0.0.0:%s (db: %s, tz: %s, fallback period days: %d)",
		cfg.Port, cfg.DBPath, cfg.Location.String(), cfg.Cycle.FallbackDuration)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func loadConfig() (config, error) {
	fallback, err := resolveFallbackPeriodDays()
	if err != nil {
		return config{}, err
	}

	options := cycle.DefaultOptions()
	options.FallbackDuration = fallback

	return config{
		Port:     getEnv("PORT", "8080"),
		DBPath:   getEnv("DB_PATH", filepath.Join("data", "cyclecal.db")),
		Location: mustLoadLocation(getEnv("TZ", "UTC")),
		Cycle:    options,
	}, nil
}

// resolveFallbackPeriodDays reads how many days a record with neither an end
// date nor a duration covers on the calendar.
func resolveFallbackPeriodDays() (int, error) {
	raw := strings.TrimSpace(os.Getenv("FALLBACK_PERIOD_DAYS"))
	if raw == "" {
		return cycle.DefaultFallbackDuration, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("FALLBACK_PERIOD_DAYS must be an integer: %w", err)
	}
	if days < 1 || days > maxFallbackPeriodDays {
		return 0, fmt.Errorf("FALLBACK_PERIOD_DAYS must be between 1 and %d", maxFallbackPeriodDays)
	}
	return days, nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
