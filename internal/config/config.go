package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	GenAI     GenAIConfig
	Shop      ShopConfig
	Session   SessionConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	CatalogBackend string
	AllowedOrigins []string
	UploadMaxBytes int64
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

// DSN returns the pgx connection string for the database
func (c DatabaseConfig) DSN() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + c.Port + "/" + c.Database +
		"?sslmode=disable&search_path=" + c.Schema
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type GenAIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type ShopConfig struct {
	Name               string
	URL                string
	Tagline            string
	MessagingBaseURL   string
	MessagingRecipient string
}

type SessionConfig struct {
	Secret      string
	IdleTimeout time.Duration
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("CATALOG_BACKEND", BackendMemory)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("UPLOAD_MAX_BYTES", 5<<20)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	viper.SetDefault("GENAI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GENAI_TIMEOUT_SECONDS", 20)
	viper.SetDefault("SHOP_NAME", "SialkotShop")
	viper.SetDefault("SHOP_URL", "https://sialkot.shop")
	viper.SetDefault("SHOP_TAGLINE", "Handcrafted quality from the heart of Sialkot")
	viper.SetDefault("MESSAGING_BASE_URL", "https://wa.me")
	viper.SetDefault("MESSAGING_RECIPIENT", "923079490721")
	viper.SetDefault("SESSION_IDLE_TIMEOUT_MINUTES", 120)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			Env:            viper.GetString("SERVER_ENV"),
			LogLevel:       viper.GetString("LOG_LEVEL"),
			CatalogBackend: strings.ToLower(viper.GetString("CATALOG_BACKEND")),
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
			UploadMaxBytes: viper.GetInt64("UPLOAD_MAX_BYTES"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			Schema:   viper.GetString("DB_SCHEMA"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
		},
		GenAI: GenAIConfig{
			APIKey:  viper.GetString("GENAI_API_KEY"),
			Model:   viper.GetString("GENAI_MODEL"),
			Timeout: time.Duration(viper.GetInt("GENAI_TIMEOUT_SECONDS")) * time.Second,
		},
		Shop: ShopConfig{
			Name:               viper.GetString("SHOP_NAME"),
			URL:                strings.TrimRight(viper.GetString("SHOP_URL"), "/"),
			Tagline:            viper.GetString("SHOP_TAGLINE"),
			MessagingBaseURL:   strings.TrimRight(viper.GetString("MESSAGING_BASE_URL"), "/"),
			MessagingRecipient: viper.GetString("MESSAGING_RECIPIENT"),
		},
		Session: SessionConfig{
			Secret:      viper.GetString("SESSION_SECRET"),
			IdleTimeout: time.Duration(viper.GetInt("SESSION_IDLE_TIMEOUT_MINUTES")) * time.Minute,
		},
	}
}

// splitList parses a comma separated value, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
