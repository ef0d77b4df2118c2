package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/camdiaz/xuma/cmd"
	memoryrepo "github.com/camdiaz/xuma/internal/adapters/out/memory/orderrepo"
	postgresrepo "github.com/camdiaz/xuma/internal/adapters/out/postgres/orderrepo"
	"github.com/camdiaz/xuma/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	repository := buildOrderRepository(configs)
	app := cmd.NewCompositionRoot(configs, repository)

	if statsJob := app.CreateOrderStatsJob(logger); statsJob != nil {
		if err := statsJob.Start(); err != nil {
			log.Fatalf("Failed to start stats job: %v", err)
		}
		defer statsJob.Stop()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, relying on process environment")
	}

	config := cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		StorageBackend: envOrDefault("STORAGE_BACKEND", "memory"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOrDefault("DB_SSLMODE", "disable"),
		StatsSchedule:  os.Getenv("STATS_SCHEDULE"),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func buildOrderRepository(configs cmd.Config) ports.OrderRepository {
	switch configs.StorageBackend {
	case "memory":
		return memoryrepo.NewInMemoryOrderRepository()
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			configs.DBHost, configs.DBPort, configs.DBUser,
			configs.DBPassword, configs.DBName, configs.DBSslMode,
		)
		db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err = db.AutoMigrate(&postgresrepo.OrderDTO{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		return postgresrepo.NewGormOrderRepository(db)
	default:
		log.Fatalf("Unknown storage backend %q", configs.StorageBackend)
		return nil
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
