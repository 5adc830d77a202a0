package config

import (
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	AppEnv     string
	LogLevel   string

	DBDriver   string
	DBDSN      string
	DBLogLevel string
	ResetDB    bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret          string
	JWTExpiration      time.Duration
	RefreshTokenExpiry time.Duration

	SwaggerHost        string
	CORSAllowedOrigins []string
	RateLimitPerSecond float64

	UploadDir      string
	UploadMaxBytes int64

	SMTPHost     string
	SMTPPort     int
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	OrderClearCart          bool
	BillDiscountRate        decimal.Decimal
	MetricsSnapshotInterval time.Duration

	AdminEmail    string
	AdminPassword string
}

// Load builds Config from the environment (and an optional .env file) with sensible defaults.
func Load() *Config {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		log.Debugf("config: .env not read, using environment only: %v", err)
	}
	v.AutomaticEnv()
	_ = v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT")

	rate, err := decimal.NewFromString(v.GetString("BILL_DISCOUNT_RATE"))
	if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		log.Warnf("config: invalid BILL_DISCOUNT_RATE %q, using 0.10", v.GetString("BILL_DISCOUNT_RATE"))
		rate = decimal.RequireFromString("0.10")
	}

	return &Config{
		ServerPort: v.GetString("SERVER_PORT"),
		AppEnv:     v.GetString("APP_ENV"),
		LogLevel:   v.GetString("LOG_LEVEL"),

		DBDriver:   strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:      v.GetString("DB_DSN"),
		DBLogLevel: v.GetString("DB_LOG_LEVEL"),
		ResetDB:    v.GetBool("RESET_DB"),

		RedisAddr: v.GetString("REDIS_ADDR"),
		RedisDB:   v.GetInt("REDIS_DB"),
		RedisPass: v.GetString("REDIS_PASSWORD"),

		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTExpiration:      v.GetDuration("JWT_EXPIRATION"),
		RefreshTokenExpiry: v.GetDuration("REFRESH_TOKEN_EXPIRATION"),

		SwaggerHost:        v.GetString("SWAGGER_HOST"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimitPerSecond: v.GetFloat64("RATE_LIMIT_PER_SECOND"),

		UploadDir:      v.GetString("UPLOAD_DIR"),
		UploadMaxBytes: v.GetInt64("UPLOAD_MAX_BYTES"),

		SMTPHost:     v.GetString("SMTP_HOST"),
		SMTPPort:     v.GetInt("SMTP_PORT"),
		SMTPFrom:     v.GetString("SMTP_FROM"),
		SMTPUsername: v.GetString("SMTP_USERNAME"),
		SMTPPassword: v.GetString("SMTP_PASSWORD"),

		OrderClearCart:          v.GetBool("ORDER_CLEAR_CART"),
		BillDiscountRate:        rate,
		MetricsSnapshotInterval: v.GetDuration("METRICS_SNAPSHOT_INTERVAL"),

		AdminEmail:    v.GetString("ADMIN_EMAIL"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_DSN", "user:password@tcp(localhost:3306)/restaurant?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("RESET_DB", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_EXPIRATION", "1h")
	v.SetDefault("REFRESH_TOKEN_EXPIRATION", "168h")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_PER_SECOND", 10)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_MAX_BYTES", 5<<20)
	v.SetDefault("SMTP_PORT", 25)
	v.SetDefault("SMTP_FROM", "no-reply@restaurant.local")
	v.SetDefault("ORDER_CLEAR_CART", true)
	v.SetDefault("BILL_DISCOUNT_RATE", "0.10")
	v.SetDefault("METRICS_SNAPSHOT_INTERVAL", "0s")
	v.SetDefault("ADMIN_EMAIL", "admin@restaurant.local")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
