package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Comma-separated list of frontend origins; empty allows any
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	// Database
	DBDriver    string `mapstructure:"DB_DRIVER"` // postgres | mysql
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBPort      int    `mapstructure:"DB_PORT"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPassword  string `mapstructure:"DB_PASSWORD"`
	DBName      string `mapstructure:"DB_NAME"`

	// Redis catalog cache; empty URL disables caching
	RedisURL        string `mapstructure:"REDIS_URL"`
	CacheTTLMinutes int    `mapstructure:"CACHE_TTL_MINUTES"`

	// Notifications
	LowStockThreshold int `mapstructure:"LOW_STOCK_THRESHOLD"`
	ExpiryWarningDays int `mapstructure:"EXPIRY_WARNING_DAYS"`

	// Role switch
	DoctorPasswordHash string `mapstructure:"DOCTOR_PASSWORD_HASH"`

	// SMTP
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Stock report; the TTF files must cover Thai for Thai drug names
	ReportTitle        string `mapstructure:"REPORT_TITLE"`
	ReportFontFile     string `mapstructure:"REPORT_FONT_FILE"`
	ReportFontBoldFile string `mapstructure:"REPORT_FONT_BOLD_FILE"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	setDefaults(v)

	// Optional .env file for local development; a missing file is fine
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.DBDriver != "postgres" && cfg.DBDriver != "mysql" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ORIGINS", "")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 0)
	v.SetDefault("DB_USER", "pharmacy")
	v.SetDefault("DB_PASSWORD", "pharmacy")
	v.SetDefault("DB_NAME", "pharmacy")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CACHE_TTL_MINUTES", 10)
	v.SetDefault("LOW_STOCK_THRESHOLD", 10)
	v.SetDefault("EXPIRY_WARNING_DAYS", 30)
	v.SetDefault("DOCTOR_PASSWORD_HASH", "")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("REPORT_TITLE", "Pharmacy stock report")
	v.SetDefault("REPORT_FONT_FILE", "assets/fonts/Sarabun-Regular.ttf")
	v.SetDefault("REPORT_FONT_BOLD_FILE", "assets/fonts/Sarabun-Bold.ttf")
}

// DSN returns DATABASE_URL when set, otherwise builds a driver-specific DSN
// from the DB_* parts. DB_PORT falls back to the driver's standard port.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	switch c.DBDriver {
	case "mysql":
		port := c.DBPort
		if port == 0 {
			port = 3306
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.DBUser, c.DBPassword, c.DBHost, port, c.DBName)
	default:
		port := c.DBPort
		if port == 0 {
			port = 5432
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.DBUser, c.DBPassword),
			Host:     fmt.Sprintf("%s:%d", c.DBHost, port),
			Path:     c.DBName,
			RawQuery: "sslmode=disable",
		}
		return u.String()
	}
}

// CacheTTL is the lifetime of cached catalog reads.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// AllowedOrigins splits CORS_ORIGINS into a trimmed list.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
