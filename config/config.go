package config

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret         string
	DashboardUser     string
	DashboardPassHash string

	// SalesTarget feeds the sales gauge on the dashboard.
	SalesTarget float64

	// Dataset source selection: synthetic, csv, xlsx or postgres.
	DatasetSource string
	DatasetPath   string
	DatasetSeed   int64
}

// AppConfig holds the application-wide configuration
var AppConfig Config
