package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	AppPort     string `envconfig:"APP_PORT" default:":8002"`
	CorsOrigins string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
	BodyLimitMB int    `envconfig:"BODY_LIMIT_MB" default:"4"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// DB
	DBDriver   string `envconfig:"DB_DRIVER" default:"postgres"` // postgres | sqlite
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     uint   `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"court"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBPath     string `envconfig:"DB_PATH" default:"court.db"`

	// Seed Clay/Grass surfaces and four courts on startup
	DataInit bool `envconfig:"APP_DATA_INIT" default:"false"`

	// Redis pub/sub for the live court feed
	RedisEnabled bool   `envconfig:"REDIS_ENABLED" default:"false"`
	RedisAddr    string `envconfig:"REDIS_ADDR" default:"localhost:6379"`

	// Daily occupancy report
	ReportEnabled bool   `envconfig:"REPORT_ENABLED" default:"true"`
	ReportAt      string `envconfig:"REPORT_AT" default:"00:05"`
	Timezone      string `envconfig:"TIMEZONE" default:"UTC"`
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load(".env")
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return c, fmt.Errorf("failed to process env config: %w", err)
	}
	return c, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ReportTime parses REPORT_AT ("HH:MM").
func (c Config) ReportTime() (uint, uint, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(c.ReportAt))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid REPORT_AT %q: %w", c.ReportAt, err)
	}
	return uint(t.Hour()), uint(t.Minute()), nil
}

func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CorsOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
