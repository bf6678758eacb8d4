package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	SMTP     SMTPConfig     `json:"smtp"`
	SMS      SMSConfig      `json:"sms"`
	Geocode  GeocodeConfig  `json:"geocode"`
	Notify   NotifyConfig   `json:"notify"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// SMTPConfig carries the email transport credentials. An empty Host or
// FromAddress means the email channel is unconfigured: sends short-circuit
// to failure without network I/O.
type SMTPConfig struct {
	Host        string `json:"host"`
	Port        string `json:"port"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	FromName    string `json:"from_name"`
	FromAddress string `json:"from_address"`
}

func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Port != "" && c.FromAddress != ""
}

// SMSConfig points at a WhatsApp-style HTTP messaging provider. Empty
// APIURL or Token means the SMS channel is unconfigured.
type SMSConfig struct {
	APIURL string `json:"api_url"`
	Token  string `json:"token,omitempty"`
	From   string `json:"from"`
}

func (c SMSConfig) Configured() bool {
	return c.APIURL != "" && c.Token != ""
}

type GeocodeConfig struct {
	BaseURL   string        `json:"base_url"`
	UserAgent string        `json:"user_agent"`
	Timeout   time.Duration `json:"timeout"`
	CacheSize int           `json:"cache_size"`
}

type NotifyConfig struct {
	AuthorityEmail string        `json:"authority_email"`
	RadiusMeters   float64       `json:"radius_meters"`
	ChannelTimeout time.Duration `json:"channel_timeout"`
	QueueSize      int           `json:"queue_size"`
	Workers        int           `json:"workers"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "ocean_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", ""),
		SMTP: SMTPConfig{
			Host:        getEnv("SMTP_HOST", ""),
			Port:        getEnv("SMTP_PORT", "587"),
			Username:    getEnv("SMTP_USERNAME", ""),
			Password:    getEnv("SMTP_PASSWORD", ""),
			FromName:    getEnv("SMTP_FROM_NAME", "Ocean Hazard Watch"),
			FromAddress: getEnv("SMTP_FROM_ADDRESS", ""),
		},
		SMS: SMSConfig{
			APIURL: getEnv("SMS_API_URL", ""),
			Token:  getEnv("SMS_API_TOKEN", ""),
			From:   getEnv("SMS_FROM", ""),
		},
		Geocode: GeocodeConfig{
			BaseURL:   getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
			UserAgent: getEnv("GEOCODE_USER_AGENT", "ocean-hazard-watch/1.0"),
			Timeout:   getEnvDuration("GEOCODE_TIMEOUT", 5*time.Second),
			CacheSize: getEnvInt("GEOCODE_CACHE_SIZE", 512),
		},
		Notify: NotifyConfig{
			AuthorityEmail: getEnv("AUTHORITY_EMAIL", ""),
			RadiusMeters:   getEnvFloat("NOTIFY_RADIUS_METERS", 10000),
			ChannelTimeout: getEnvDuration("NOTIFY_CHANNEL_TIMEOUT", 5*time.Second),
			QueueSize:      getEnvInt("NOTIFY_QUEUE_SIZE", 100),
			Workers:        getEnvInt("NOTIFY_WORKERS", 4),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Bool("smtp_configured", cfg.SMTP.Configured()),
		slog.Bool("sms_configured", cfg.SMS.Configured()),
		slog.Float64("notify_radius_m", cfg.Notify.RadiusMeters))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Notify.RadiusMeters <= 0 {
		return errors.New("NOTIFY_RADIUS_METERS must be positive")
	}

	if c.Notify.Workers < 1 {
		return errors.New("NOTIFY_WORKERS must be at least 1")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
