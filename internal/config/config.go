package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Business  BusinessConfig  `toml:"business"`
	Stripe    StripeConfig    `toml:"stripe"`
	Auth      AuthConfig      `toml:"auth"`
	SMTP      SMTPConfig      `toml:"smtp"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	CORS      CORSConfig      `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type BusinessConfig struct {
	Currency string `toml:"currency"`
	Timezone string `toml:"timezone"` // IANA, например "Asia/Tokyo"
	ShopName string `toml:"shop_name"`
}

type StripeConfig struct {
	SecretKey     string `toml:"secret_key"`
	APIBaseURL    string `toml:"api_base_url"`
	Timeout       int    `toml:"timeout"` // секунды
	VerifyPayment bool   `toml:"verify_payment"`
}

type AuthConfig struct {
	JWTSecret    string `toml:"jwt_secret"`
	TokenTTL     int    `toml:"token_ttl"` // часы
	CookieName   string `toml:"cookie_name"`
	CookieSecure bool   `toml:"cookie_secure"`
}

type SMTPConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type RateLimitConfig struct {
	Enabled        bool     `toml:"enabled"`
	WindowSeconds  int      `toml:"window_seconds"`
	MaxRequests    int      `toml:"max_requests"`
	TrustedProxies []string `toml:"trusted_proxies"` // IP или CIDR, от которых принимается X-Forwarded-For
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load загружает конфигурацию из TOML файла
// Переменные окружения (и .env рядом с процессом) переопределяют секреты
func Load(path string) (*Config, error) {
	// .env опционален
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return errors.New("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("config: database.host and database.dbname are required")
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("config: auth.jwt_secret is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("config: auth.token_ttl must be positive")
	}
	if c.Business.Currency == "" {
		return errors.New("config: business.currency is required")
	}
	if c.SMTP.Enabled && (c.SMTP.Host == "" || c.SMTP.From == "") {
		return errors.New("config: smtp.host and smtp.from are required when smtp is enabled")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("config: redis.addr is required when redis is enabled")
	}
	if c.RateLimit.Enabled && (c.RateLimit.WindowSeconds <= 0 || c.RateLimit.MaxRequests <= 0) {
		return errors.New("config: rate_limit.window_seconds and rate_limit.max_requests must be positive when rate limit is enabled")
	}
	if c.Stripe.VerifyPayment && strings.TrimSpace(c.Stripe.SecretKey) == "" {
		return errors.New("config: stripe.secret_key is required when stripe.verify_payment is enabled")
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			ServiceName: "smc_reservation_service",
			Path:        "/metrics",
		},
		Business: BusinessConfig{
			Currency: "jpy",
			Timezone: "Asia/Tokyo",
		},
		Stripe: StripeConfig{
			APIBaseURL:    "https://api.stripe.com",
			Timeout:       12,
			VerifyPayment: true,
		},
		Auth: AuthConfig{
			TokenTTL:   24,
			CookieName: "admin_token",
		},
		SMTP: SMTPConfig{Port: 587},
		RateLimit: RateLimitConfig{
			WindowSeconds: 60,
			MaxRequests:   20,
		},
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Stripe.SecretKey, "STRIPE_SECRET_KEY")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.SMTP.Password, "SMTP_PASSWORD")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setInt(&cfg.Server.HTTPPort, "HTTP_PORT")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
