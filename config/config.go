package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Postgres   PostgresConfig

	Auth           AuthConfig
	Expo           ExpoConfig
	Notifier       NotifierConfig
	GoogleCalendar GoogleCalendarConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	URL      string // full connection URL; overrides the individual fields
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns int
	MaxIdleConns int
}

// DSN renders the connection string for the pgx stdlib driver.
func (c PostgresConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

type AuthConfig struct {
	JWTSecret string
}

type ExpoConfig struct {
	PushURL string
	Timeout time.Duration
}

// NotifierConfig drives the background due-task job: how often the worker
// ticks and the shared key protecting the manual trigger endpoint.
type NotifierConfig struct {
	Interval    time.Duration
	InternalKey string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.URL = viper.GetString("database_url")

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}

	// Expo push
	cfg.Expo.PushURL = viper.GetString("expo.push_url")
	cfg.Expo.Timeout = viper.GetDuration("expo.timeout")

	// Notifier
	cfg.Notifier.Interval = viper.GetDuration("notifier.interval")
	cfg.Notifier.InternalKey = viper.GetString("notifier.internal_key")
	if key := viper.GetString("internal_key"); key != "" {
		cfg.Notifier.InternalKey = key
	}

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "todos")
	viper.SetDefault("postgres.ssl_mode", "disable")
	viper.SetDefault("postgres.max_open_conns", 25)
	viper.SetDefault("postgres.max_idle_conns", 5)

	viper.SetDefault("expo.push_url", "https://exp.host/--/api/v2/push/send")
	viper.SetDefault("expo.timeout", "10s")

	viper.SetDefault("notifier.interval", "1m")

	viper.SetDefault("google_calendar.timezone", "UTC")

	viper.SetDefault("rate_limit.per_min", 120)
}
