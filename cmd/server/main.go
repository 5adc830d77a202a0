package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"restaurant/docs"
	"restaurant/internal/auth"
	"restaurant/internal/cache"
	"restaurant/internal/config"
	"restaurant/internal/db"
	"restaurant/internal/handler"
	"restaurant/internal/notify"
	"restaurant/internal/repository"
	"restaurant/internal/router"
	"restaurant/internal/service"
	"restaurant/internal/storage"
)

// @title Restaurant Ordering API
// @version 1.0
// @description Menu, cart, order, billing and feedback API for a restaurant, with JWT authentication and role permissions.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	cfg := config.Load()
	log.SetLevel(parseLevel(cfg.LogLevel))

	// money is serialized as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Fatalf("reset database: %v", err)
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("%v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warnf("redis unavailable at %s, continuing without cache: %v", cfg.RedisAddr, err)
	}

	images, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatalf("upload dir: %v", err)
	}
	notifier := notify.New(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.SMTPFrom,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	})

	// Initialize repositories
	repos := repository.New(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiration, cfg.RefreshTokenExpiry)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(repos.Users, jwtService, tokenStore, notifier)
	otpService := service.NewOTPService(repos.Users, repos.OTPs, notifier)
	userService := service.NewUserService(repos.Users, repos.Roles, cacheClient)
	roleService := service.NewRoleService(repos.Roles)
	accessService := service.NewAccessService(repos.Roles)
	categoryService := service.NewCategoryService(repos.Categories)
	menuService := service.NewMenuService(repos.Menu, repos.Categories, images, cacheClient, cfg.UploadMaxBytes)
	cartService := service.NewCartService(repos.Carts, repos.Menu, repos.Users)
	orderService := service.NewOrderService(repos, cfg.OrderClearCart, notifier)
	billService := service.NewBillService(repos.Bills, repos.Orders, cfg.BillDiscountRate)
	feedbackService := service.NewFeedbackService(repos.Feedback, repos.Orders)
	favoriteService := service.NewFavoriteService(repos.Favorites, repos.Menu, repos.Users)
	staffService := service.NewStaffService(repos.Staff)
	metricsService := service.NewMetricsService(repos)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(e, cfg, router.Handlers{
		Auth:     handler.NewAuthHandler(authService, otpService),
		User:     handler.NewUserHandler(userService),
		Role:     handler.NewRoleHandler(roleService, userService),
		Category: handler.NewCategoryHandler(categoryService),
		Menu:     handler.NewMenuHandler(menuService),
		Cart:     handler.NewCartHandler(cartService),
		Order:    handler.NewOrderHandler(orderService),
		Bill:     handler.NewBillHandler(billService),
		Feedback: handler.NewFeedbackHandler(feedbackService),
		Favorite: handler.NewFavoriteHandler(favoriteService),
		Staff:    handler.NewStaffHandler(staffService),
		Metrics:  handler.NewMetricsHandler(metricsService),
		Health:   handler.NewHealthHandler(gormDB, cacheClient),
	}, router.Security{
		JWT:    jwtService,
		Tokens: tokenStore,
		Access: accessService,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go metricsService.Run(ctx, cfg.MetricsSnapshotInterval)

	go func() {
		addr := ":" + cfg.ServerPort
		log.Infof("Swagger documentation available at: http://localhost%s/swagger/index.html", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown: %v", err)
	}
}

func parseLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
