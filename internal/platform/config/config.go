package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	UploadDir         string
	CORSAllowOrigins  []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	// The SPA re-logs in after expiry; no refresh tokens are issued.
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "payroll-backoffice")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRY_DURATION (%q), defaulting to 8h\n", viper.GetString("JWT_EXPIRY_DURATION"))
		jwtExpiry = 8 * time.Hour
	}

	cfg := &Config{
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		MigrationsPath:    viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		JWTExpiryDuration: jwtExpiry,
		JWTIssuer:         viper.GetString("JWT_ISSUER"),
		UploadDir:         viper.GetString("UPLOAD_DIR"),
		CORSAllowOrigins:  viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	return cfg, nil
}
