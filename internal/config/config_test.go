package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, BackendMemory, cfg.Server.CatalogBackend)
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 20, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "gemini-2.5-flash", cfg.GenAI.Model)
	assert.Equal(t, "SialkotShop", cfg.Shop.Name)
	assert.Equal(t, "https://wa.me", cfg.Shop.MessagingBaseURL)
	assert.Equal(t, "923079490721", cfg.Shop.MessagingRecipient)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTimeout)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("CATALOG_BACKEND", "Postgres")
	t.Setenv("SHOP_URL", "https://example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("REDIS_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, BackendPostgres, cfg.Server.CatalogBackend)
	assert.Equal(t, "https://example.com", cfg.Shop.URL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Redis.Enabled)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Database: "shop", Schema: "public"}
	assert.Equal(t, "postgres://u:p@db:5432/shop?sslmode=disable&search_path=public", c.DSN())
}
