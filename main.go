package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"app/config"
	"app/database"
	"app/dataset"
	"app/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	passHash := os.Getenv("DASHBOARD_PASSWORD_HASH")
	if passHash == "" {
		log.Fatal("DASHBOARD_PASSWORD_HASH is not set")
	}

	config.AppConfig.JWTSecret = jwtSecret
	config.AppConfig.DashboardUser = envOr("DASHBOARD_USER", "admin")
	config.AppConfig.DashboardPassHash = passHash
	config.AppConfig.SalesTarget = envFloat("SALES_TARGET", 7000)
	config.AppConfig.DatasetSource = envOr("DATASET_SOURCE", "synthetic")
	config.AppConfig.DatasetPath = os.Getenv("DATASET_PATH")
	config.AppConfig.DatasetSeed = envInt64("DATASET_SEED", 42)

	// Load the dataset once; it is read-only for the process lifetime.
	provider, cleanup := buildProvider()
	defer cleanup()

	if err := dataset.Load(context.Background(), provider); err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(envOr("LISTEN_ADDR", ":3000")))
}

// buildProvider selects the dataset source from configuration.
func buildProvider() (dataset.Provider, func()) {
	noop := func() {}
	switch config.AppConfig.DatasetSource {
	case "synthetic":
		return dataset.NewSynthetic(config.AppConfig.DatasetSeed), noop
	case "csv":
		if config.AppConfig.DatasetPath == "" {
			log.Fatal("DATASET_PATH is required for the csv source")
		}
		return &dataset.CSV{Path: config.AppConfig.DatasetPath}, noop
	case "xlsx":
		if config.AppConfig.DatasetPath == "" {
			log.Fatal("DATASET_PATH is required for the xlsx source")
		}
		return &dataset.XLSX{Path: config.AppConfig.DatasetPath}, noop
	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			log.Fatal("DATABASE_URL is not set")
		}
		database.Connect(databaseURL)
		return &dataset.Postgres{Pool: database.GetDB()}, database.Close
	default:
		log.Fatalf("Unknown DATASET_SOURCE %q", config.AppConfig.DatasetSource)
		return nil, noop
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return f
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return n
}
