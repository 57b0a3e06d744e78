package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vkotelnikov/sympta/internal/api"
	"github.com/vkotelnikov/sympta/internal/cli"
	"github.com/vkotelnikov/sympta/internal/db"
	"github.com/vkotelnikov/sympta/internal/knowledge"
	"github.com/vkotelnikov/sympta/internal/services"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "sympta.db"))
	port := getEnv("PORT", "8080")
	knowledgePath := getEnv("KNOWLEDGE_PATH", filepath.Join("data", "knowledge.yaml"))
	adminUser := getEnv("ADMIN_USER", "admin")
	adminPassword := getEnv("ADMIN_PASSWORD", "")
	cookieSecure := getBoolEnv("COOKIE_SECURE", false)

	if len(os.Args) > 1 && os.Args[1] == "reset-data" {
		if err := cli.RunResetDataCommand(dbPath, adminPassword); err != nil {
			log.Fatalf("reset-data failed: %v", err)
		}
		return
	}

	if adminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	base := knowledge.Load(knowledgePath)

	matcherOptions := services.DefaultMatcherOptions()
	matcherOptions.AllowBareSick = getBoolEnv("ALLOW_BARE_SICK", matcherOptions.AllowBareSick)

	handler, err := api.NewHandler(api.Config{
		Database:       database,
		Secret:         secretKey,
		AdminUser:      adminUser,
		AdminPassword:  adminPassword,
		Base:           base,
		MatcherOptions: matcherOptions,
		Location:       location,
		CookieSecure:   cookieSecure,
	})
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Sympta",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "header:X-Csrf-Token",
		CookieName:     "sympta_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}))

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

	log.Printf("Sympta listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
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

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getBoolEnv(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("invalid %s value %q, using %v", key, value, fallback)
		return fallback
	}
	return parsed
}
