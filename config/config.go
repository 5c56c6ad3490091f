package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Catalog     CatalogConfig
	DefaultUser DefaultUserConfig
	HTTP        HTTPConfig
	Log         LogConfig
}

type AppConfig struct {
	Env  string
	Port string
}

type DatabaseConfig struct {
	Driver     string // postgres or sqlite
	URL        string
	SQLitePath string
}

// CatalogConfig controls the one-time load from the external catalog.
type CatalogConfig struct {
	URL      string
	Timeout  time.Duration
	IDPrefix string
}

// DefaultUserConfig is the identity every request is scoped to.
type DefaultUserConfig struct {
	ID    string
	Name  string
	Email string
}

type HTTPConfig struct {
	FrontendURL       string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

func LoadEnv() error {
	// A missing .env is normal outside local development; variables
	// then come straight from the environment.
	_ = godotenv.Load()
	return nil
}

// Load builds the configuration from environment variables over built-in defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("app_env"),
			Port: v.GetString("port"),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(v.GetString("db_driver")),
			URL:        v.GetString("database_url"),
			SQLitePath: v.GetString("sqlite_path"),
		},
		Catalog: CatalogConfig{
			URL:      v.GetString("catalog_url"),
			Timeout:  v.GetDuration("catalog_timeout"),
			IDPrefix: v.GetString("catalog_id_prefix"),
		},
		DefaultUser: DefaultUserConfig{
			ID:    v.GetString("default_user_id"),
			Name:  v.GetString("default_user_name"),
			Email: v.GetString("default_user_email"),
		},
		HTTP: HTTPConfig{
			FrontendURL:       v.GetString("frontend_url"),
			RateLimitRequests: v.GetInt("rate_limit_requests"),
			RateLimitWindow:   v.GetDuration("rate_limit_window"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
			Output: v.GetString("log_output"),
		},
	}

	if cfg.Database.Driver != "postgres" && cfg.Database.Driver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", cfg.Database.Driver)
	}
	if cfg.Catalog.Timeout <= 0 {
		return nil, fmt.Errorf("CATALOG_TIMEOUT must be positive, got %s", cfg.Catalog.Timeout)
	}
	if cfg.DefaultUser.ID == "" {
		return nil, fmt.Errorf("DEFAULT_USER_ID must not be empty")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("db_driver", "postgres")
	v.SetDefault("database_url", "")
	v.SetDefault("sqlite_path", "data/app.db")
	v.SetDefault("catalog_url", "https://fakestoreapi.com/products")
	v.SetDefault("catalog_timeout", 5*time.Second)
	v.SetDefault("catalog_id_prefix", "fs-")
	v.SetDefault("default_user_id", "u1")
	v.SetDefault("default_user_name", "Demo User")
	v.SetDefault("default_user_email", "demo@example.com")
	v.SetDefault("frontend_url", "")
	v.SetDefault("rate_limit_requests", 120)
	v.SetDefault("rate_limit_window", time.Minute)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_output", "stdout")
}

// ValidateEnv checks that critical environment variables are set.
// Returns an error if any critical variable is missing.
func ValidateEnv() error {
	var missing []string

	driver := strings.ToLower(GetEnv("DB_DRIVER", "postgres"))
	if driver == "postgres" && os.Getenv("DATABASE_URL") == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return fmt.Errorf("critical environment variables not set: %v", missing)
	}

	// Non-critical variables - log warnings but don't fail
	if os.Getenv("FRONTEND_URL") == "" {
		log.Println("WARNING: FRONTEND_URL not set - CORS will allow any origin")
	}
	if os.Getenv("CATALOG_URL") == "" {
		log.Println("WARNING: CATALOG_URL not set - using https://fakestoreapi.com/products")
	}

	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
