package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	catalogapp "github.com/truaxis/storefront/internal/application/catalog"
	checkoutapp "github.com/truaxis/storefront/internal/application/checkout"
	identityapp "github.com/truaxis/storefront/internal/application/identity"
	orderapp "github.com/truaxis/storefront/internal/application/order"
	reportapp "github.com/truaxis/storefront/internal/application/report"
	shoppingapp "github.com/truaxis/storefront/internal/application/shopping"
	"github.com/truaxis/storefront/internal/domain/order"
	"github.com/truaxis/storefront/internal/infrastructure/auth"
	"github.com/truaxis/storefront/internal/infrastructure/config"
	"github.com/truaxis/storefront/internal/infrastructure/logger"
	"github.com/truaxis/storefront/internal/infrastructure/persistence"
	"github.com/truaxis/storefront/internal/infrastructure/telemetry"
	"github.com/truaxis/storefront/internal/interfaces/http/handler"
	"github.com/truaxis/storefront/internal/interfaces/http/middleware"
	"github.com/truaxis/storefront/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	tracer, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down tracer", zap.Error(err))
		}
	}()

	db, err := persistence.NewDatabase(&cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := db.EnableTracing(); err != nil {
			log.Warn("failed to enable database tracing", zap.Error(err))
		}
	}
	log.Info("database connected")

	// Token revocation falls back to process memory when redis is not
	// configured. Revocations then do not survive restarts.
	var redisClient *redis.Client
	var blacklist auth.TokenBlacklist
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable at startup", zap.Error(err))
		}
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
	} else {
		log.Warn("redis not configured, using in-memory token blacklist")
		blacklist = auth.NewInMemoryTokenBlacklist()
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	sectionRepo := persistence.NewGormSectionRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	wishlistRepo := persistence.NewGormWishlistRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	stockLedger := persistence.NewGormStockLedger(db.DB)
	checkoutScope := persistence.NewGormCheckoutScope(db.DB)
	orderScope := persistence.NewGormOrderScope(db.DB)

	// Application services
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, log)
	addressService := identityapp.NewAddressService(addressRepo)
	productService := catalogapp.NewProductService(productRepo, sectionRepo, stockLedger, log)
	sectionService := catalogapp.NewSectionService(sectionRepo, productRepo, log)
	cartService := shoppingapp.NewCartService(cartRepo, productRepo, log)
	wishlistService := shoppingapp.NewWishlistService(wishlistRepo, productRepo)
	checkoutService := checkoutapp.NewService(checkoutScope, order.NewNumberGenerator(), log)
	orderService := orderapp.NewService(orderRepo, orderScope, log)
	receiptService := orderapp.NewReceiptService(orderRepo, userRepo, cfg.Store.Name)
	dashboardService := reportapp.NewDashboardService(userRepo, productRepo, orderRepo)

	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Section:  handler.NewSectionHandler(sectionService),
		Cart:     handler.NewCartHandler(cartService),
		Wishlist: handler.NewWishlistHandler(wishlistService),
		Address:  handler.NewAddressHandler(addressService),
		Order:    handler.NewOrderHandler(checkoutService, orderService, receiptService),
		User:     handler.NewUserHandler(userService),
		Report:   handler.NewReportHandler(dashboardService),
		System:   handler.NewSystemHandler(db, redisClient, version),
	}

	engine := router.New(router.Deps{
		Config: cfg,
		Logger: log,
		Auth: middleware.AuthConfig{
			JWTService: jwtService,
			Blacklist:  blacklist,
			Logger:     log,
		},
	}, handlers)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("error closing redis client", zap.Error(err))
		}
	}

	log.Info("server exited")
}
