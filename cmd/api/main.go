package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/dive-course-api/api/swagger"
	"github.com/noah-isme/dive-course-api/internal/handler"
	internalmiddleware "github.com/noah-isme/dive-course-api/internal/middleware"
	"github.com/noah-isme/dive-course-api/internal/models"
	"github.com/noah-isme/dive-course-api/internal/repository"
	"github.com/noah-isme/dive-course-api/internal/service"
	"github.com/noah-isme/dive-course-api/pkg/cache"
	"github.com/noah-isme/dive-course-api/pkg/config"
	"github.com/noah-isme/dive-course-api/pkg/database"
	"github.com/noah-isme/dive-course-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/dive-course-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/dive-course-api/pkg/middleware/requestid"
)

const (
	shutdownTimeout     = 10 * time.Second
	redisConnectTimeout = 3 * time.Second
)

// @title Dive Course API
// @version 1.0.0
// @description Read-only catalog of diving courses
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	catalog, err := loadCatalog(cfg, metricsSvc)
	if err != nil {
		logr.Fatal("failed to load course catalog", zap.String("source", cfg.Catalog.Source), zap.Error(err))
	}
	logr.Info("course catalog loaded", zap.String("source", cfg.Catalog.Source), zap.Int("courses", catalog.Len()))

	searchCache, closeCache := newSearchCache(cfg, metricsSvc, logr)
	defer func() {
		if err := closeCache(); err != nil {
			logr.Warn("failed to close search cache", zap.Error(err))
		}
	}()
	// Entries from an earlier snapshot would shadow the one just loaded.
	if err := searchCache.Purge(context.Background()); err != nil {
		logr.Warn("failed to clear stale search cache", zap.Error(err))
	}

	courseSvc := service.NewCourseService(catalog, searchCache, metricsSvc, logr, service.CourseServiceConfig{
		FilterMode: models.ParseFilterMode(cfg.Search.FilterMode),
	})
	logr.Info("course search configured",
		zap.String("filter_mode", string(courseSvc.FilterMode())),
		zap.Bool("cache", searchCache.Enabled()),
	)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/ready", "/metrics"))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))
	r.Use(internalmiddleware.WithResponseMeta())

	metricsHandler := handler.NewMetricsHandler(metricsSvc, catalog)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	if metricsSvc != nil {
		r.GET("/metrics", metricsHandler.Prometheus)
		r.GET("/metrics/summary", metricsHandler.Summary)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.NewCourseHandler(courseSvc).Register(r.Group(cfg.APIPrefix))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.Port), Handler: r}
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Errorw("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("server shutdown incomplete", zap.Error(err))
	}
	logr.Info("server stopped")
}

func loadCatalog(cfg *config.Config, metricsSvc *service.MetricsService) (*repository.CourseRepository, error) {
	start := time.Now()
	var (
		catalog *repository.CourseRepository
		err     error
	)
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		catalog, err = loadPostgresCatalog(cfg)
	default:
		catalog, err = repository.NewEmbeddedCourseRepository()
	}
	if err != nil {
		return nil, err
	}
	metricsSvc.ObserveCatalogLoad(cfg.Catalog.Source, catalog.Len(), time.Since(start))
	return catalog, nil
}

// loadPostgresCatalog reads the snapshot once. The connection is not
// needed afterwards.
func loadPostgresCatalog(cfg *config.Config) (*repository.CourseRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Catalog.LoadTimeout)
	defer cancel()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	defer db.Close() //nolint:errcheck

	return repository.NewPostgresCourseRepository(ctx, db, nil)
}

// newSearchCache returns a disabled cache when Redis is off or unreachable.
// The returned func releases the Redis connection.
func newSearchCache(cfg *config.Config, metricsSvc *service.MetricsService, logr *zap.Logger) (*service.SearchCache, func() error) {
	noop := func() error { return nil }
	if !cfg.Search.CacheEnabled {
		return service.NewSearchCache(nil, metricsSvc, cfg.Search.CacheTTL, logr), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()
	client, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, search cache disabled", zap.Error(err))
		return service.NewSearchCache(nil, metricsSvc, cfg.Search.CacheTTL, logr), noop
	}
	store := repository.NewSearchResultStore(client, logr)
	return service.NewSearchCache(store, metricsSvc, cfg.Search.CacheTTL, logr), store.Close
}
