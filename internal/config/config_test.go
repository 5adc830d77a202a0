package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, time.Hour, cfg.JWTExpiration)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTokenExpiry)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, int64(5<<20), cfg.UploadMaxBytes)
	assert.True(t, cfg.OrderClearCart)
	assert.Equal(t, "0.1", cfg.BillDiscountRate.String())
	assert.Zero(t, cfg.MetricsSnapshotInterval)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("JWT_EXPIRATION", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("ORDER_CLEAR_CART", "false")
	t.Setenv("BILL_DISCOUNT_RATE", "0.25")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiration)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.OrderClearCart)
	assert.Equal(t, "0.25", cfg.BillDiscountRate.String())
}

func TestLoad_InvalidDiscountRate(t *testing.T) {
	for _, raw := range []string{"abc", "-0.5", "1.5"} {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("BILL_DISCOUNT_RATE", raw)
			assert.Equal(t, "0.1", Load().BillDiscountRate.String())
		})
	}
}
