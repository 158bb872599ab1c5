package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	Logger LoggerConfig

	// DBPath is the sqlite DSN. The default keeps all state in process
	// memory; bookings do not survive a restart.
	DBPath string

	// SeedDemo populates the demo customer/vehicle/driver/booking on boot.
	SeedDemo bool

	// RatePlanFile optionally overrides the built-in rate plan catalog.
	RatePlanFile string
}

type LoggerConfig struct {
	Level string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:      getenv("APP_SERVICE", "ecoride"),
		AppVersion:   getenv("APP_VERSION", "0.1.0"),
		Environment:  getenv("ENVIRONMENT", "development"),
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		Logger:       LoggerConfig{Level: getenv("LOG_LEVEL", "info")},
		DBPath:       getenv("DATABASE_PATH", "file::memory:?cache=shared"),
		SeedDemo:     getenvBool("SEED_DEMO", true),
		RatePlanFile: strings.TrimSpace(getenv("RATE_PLAN_FILE", "")),
	}
}

var Module = fx.Module("config",
	fx.Provide(Load),
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
