package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/na2na-p/storefront/internal/config"
	"github.com/na2na-p/storefront/internal/handler"
	appMiddleware "github.com/na2na-p/storefront/internal/handler/middleware"
	"github.com/na2na-p/storefront/internal/infrastructure"
	"github.com/na2na-p/storefront/internal/infrastructure/logging"
	"github.com/na2na-p/storefront/internal/infrastructure/postgres"
	"github.com/na2na-p/storefront/internal/infrastructure/redis"
	"github.com/na2na-p/storefront/internal/infrastructure/revalidate"
	"github.com/na2na-p/storefront/internal/infrastructure/s3"
	infraurl "github.com/na2na-p/storefront/internal/infrastructure/url"
	"github.com/na2na-p/storefront/internal/usecase"
)

const (
	readTimeout     = 30 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 10 * time.Second
	idleTimeout     = 120 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: logging.MaskSensitiveAttrs,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPostgresConnection(postgres.PostgresConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.DBName,
		PoolSize: cfg.Database.PoolSize,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	defer pool.Close()
	slog.Info("PostgreSQL connection established")

	redisConn, err := redis.NewRedisConnection(redis.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = redisConn.Close() }()
	redisClient := redis.NewRedisClient(redisConn)
	slog.Info("Redis connection established")

	s3Conn, err := s3.NewS3Connection(s3.S3Config{
		Endpoint:        cfg.S3.Endpoint,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Region:          cfg.S3.Region,
	})
	if err != nil {
		return err
	}
	s3Client := s3.NewS3Client(s3Conn, cfg.S3.BucketName)
	slog.Info("S3 connection established")

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)

	cacheKeys := redis.NewCacheKeyGenerator()
	cacheConfig := redis.NewCacheConfig()
	storageKeys := s3.NewStorageKeyGenerator()
	assets := infraurl.NewAssetURLGenerator(cfg.S3.AssetBaseURL)

	// ストア障害でリクエストを失敗させないため、読み書きはすべて
	// フェイルセーフのファサード越しに行う。
	cache := infrastructure.NewFailSafeCache(redisClient)
	events := redis.NewEventPublisher(redisClient)
	pageCache := redis.NewPageCache(redisClient)

	var revalidator usecase.PageRevalidator = pageCache
	var warmer usecase.CacheWarmer
	if cfg.Revalidate.BaseURL != "" {
		client := revalidate.NewClient(cfg.Revalidate.BaseURL, cfg.Revalidate.Secret)
		revalidator = client
		warmer = client
		slog.Info("revalidate client initialized", "base_url", cfg.Revalidate.BaseURL)
	}
	warmingEnabled := cfg.Revalidate.WarmingEnabled && warmer != nil

	invalidationUC := usecase.NewInvalidationUseCase(
		productRepo,
		categoryRepo,
		cache,
		cacheKeys,
		events,
		revalidator,
		warmer,
		warmingEnabled,
	)

	homeUC := usecase.NewHomeUseCase(productRepo, categoryRepo, cache, cacheKeys, cacheConfig, assets, cfg.Server.FetchTimeout)
	categoryUC := usecase.NewCategoryUseCase(productRepo, categoryRepo, cache, cacheKeys, cacheConfig, assets, cfg.Server.FetchTimeout)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, cache, cacheKeys, cacheConfig, assets, cfg.Server.FetchTimeout)
	productAdminUC := usecase.NewProductAdminUseCase(productRepo, categoryRepo, invalidationUC, s3Client, storageKeys)
	categoryAdminUC := usecase.NewCategoryAdminUseCase(categoryRepo, invalidationUC, s3Client, storageKeys)

	readinessUC := usecase.NewReadinessUseCase(
		postgres.NewPostgresHealthChecker(pool),
		redis.NewRedisHealthChecker(redisClient),
		s3.NewS3HealthChecker(s3Client),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = appMiddleware.CustomHTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "REQUEST", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "REQUEST", attrs...)
			}
			return nil
		},
	}))

	e.GET("/healthz", handler.HealthHandler)

	readyzHandler := handler.NewReadyzHandler(readinessUC)
	e.GET("/readyz", readyzHandler.Handle)

	api := e.Group("/api")
	api.GET("/home", handler.HomeHandler(homeUC))
	api.GET("/categories", handler.ListCategoriesHandler(categoryUC))
	api.GET("/categories/:slug", handler.CategoryDetailHandler(categoryUC))
	api.GET("/products/related", handler.RelatedProductsHandler(productUC))
	api.GET("/products/:slug", handler.ProductDetailHandler(productUC))
	api.GET("/revalidate", handler.RevalidateHandler(pageCache, cfg.Revalidate.Secret))

	admin := api.Group("/admin")
	admin.POST("/products", handler.CreateProductHandler(productAdminUC))
	admin.PATCH("/products/bulk-active", handler.BulkActiveProductsHandler(productAdminUC))
	admin.PUT("/products/:id", handler.UpdateProductHandler(productAdminUC))
	admin.DELETE("/products/:id", handler.DeleteProductHandler(productAdminUC))
	admin.POST("/products/:id/image", handler.UploadProductImageHandler(productAdminUC))
	admin.POST("/categories", handler.CreateCategoryHandler(categoryAdminUC))
	admin.PUT("/categories/:id", handler.UpdateCategoryHandler(categoryAdminUC))
	admin.DELETE("/categories/:id", handler.DeleteCategoryHandler(categoryAdminUC))
	admin.POST("/categories/:id/image", handler.UploadCategoryImageHandler(categoryAdminUC))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("received shutdown signal")
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	if err := e.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}
