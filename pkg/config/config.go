package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Razorpay RazorpayConfig
	Checkout CheckoutConfig
	Mailjet  MailjetConfig
	Redis    RedisConfig
	Frontend FrontendConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the parts.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type JWTConfig struct {
	SecretKey          string
	Algorithm          string
	AccessTokenExpire  time.Duration
	RefreshTokenExpire time.Duration
}

type RazorpayConfig struct {
	Key    string
	Secret string
}

type CheckoutConfig struct {
	OrderInsertTimeout    time.Duration
	OrderInsertMaxRetries int
	RetryBaseDelay        time.Duration
}

type MailjetConfig struct {
	MailjetBaseUrl           string
	MailjetBasicAuthUsername string
	MailjetBasicAuthPassword string
	MailjetSenderEmail       string
	MailjetSenderName        string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type FrontendConfig struct {
	Port          string
	BackendURL    string
	SessionSecret string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	accessMinutes, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30"))
	if err != nil {
		return nil, errors.New("invalid ACCESS_TOKEN_EXPIRE_MINUTES")
	}

	refreshDays, err := strconv.Atoi(getEnv("REFRESH_TOKEN_EXPIRE_DAYS", "7"))
	if err != nil {
		return nil, errors.New("invalid REFRESH_TOKEN_EXPIRE_DAYS")
	}

	insertTimeout, err := time.ParseDuration(getEnv("ORDER_INSERT_TIMEOUT", "5s"))
	if err != nil {
		return nil, errors.New("invalid ORDER_INSERT_TIMEOUT")
	}

	maxRetries, err := strconv.Atoi(getEnv("ORDER_INSERT_MAX_RETRIES", "3"))
	if err != nil || maxRetries < 0 {
		return nil, errors.New("invalid ORDER_INSERT_MAX_RETRIES")
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid REDIS_DB")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Agam Organics API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8000"),
			AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5000,http://127.0.0.1:5000")),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "agam_organics"),
			SSLMode:  getEnv("DB_SSL_MODE", "require"),
		},
		JWT: JWTConfig{
			SecretKey:          getEnv("SECRET_KEY", ""),
			Algorithm:          getEnv("ALGORITHM", "HS256"),
			AccessTokenExpire:  time.Duration(accessMinutes) * time.Minute,
			RefreshTokenExpire: time.Duration(refreshDays) * 24 * time.Hour,
		},
		Razorpay: RazorpayConfig{
			Key:    getEnv("RAZORPAY_KEY", ""),
			Secret: getEnv("RAZORPAY_SECRET", ""),
		},
		Checkout: CheckoutConfig{
			OrderInsertTimeout:    insertTimeout,
			OrderInsertMaxRetries: maxRetries,
			RetryBaseDelay:        time.Second,
		},
		Mailjet: MailjetConfig{
			MailjetBaseUrl:           getEnv("MAILJET_BASE_URL", ""),
			MailjetBasicAuthUsername: getEnv("MAILJET_BASIC_AUTH_USERNAME", ""),
			MailjetBasicAuthPassword: getEnv("MAILJET_BASIC_AUTH_PASSWORD", ""),
			MailjetSenderEmail:       getEnv("MAILJET_SENDER_EMAIL", ""),
			MailjetSenderName:        getEnv("MAILJET_SENDER_NAME", "Agam Organics"),
		},
		Redis: RedisConfig{
			Enabled:       getEnv("REDIS_ENABLED", "false") == "true",
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Frontend: loadFrontend(),
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing SECRET_KEY")
	}

	switch cfg.JWT.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return nil, fmt.Errorf("unsupported ALGORITHM %q", cfg.JWT.Algorithm)
	}

	if cfg.Database.URL == "" && cfg.Database.Password == "" {
		return nil, errors.New("missing DATABASE_URL or DB_PASSWORD")
	}

	return cfg, nil
}

// LoadFrontend reads only what the web gateway needs.
func LoadFrontend() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Agam Organics"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Frontend: loadFrontend(),
	}

	if cfg.Frontend.SessionSecret == "" {
		return nil, errors.New("missing SESSION_SECRET")
	}

	return cfg, nil
}

func loadFrontend() FrontendConfig {
	return FrontendConfig{
		Port:          getEnv("FRONTEND_PORT", "5000"),
		BackendURL:    strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:8000"), "/"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
