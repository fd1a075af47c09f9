package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sqlgen/ai"
	"sqlgen/cache"
	"sqlgen/config"
	_ "sqlgen/docs" // Swagger docs
	"sqlgen/handlers"
	"sqlgen/middleware"
	"sqlgen/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.GetConfig()

	zapConfig := zap.NewProductionConfig()
	zapConfig.OutputPaths = []string{"stdout"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	logger, err := zapConfig.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting sqlgen",
		zap.String("remote_endpoint", cfg.RemoteEndpoint),
		zap.String("model", cfg.ModelName),
		zap.String("output_dir", cfg.OutputDir),
		zap.Duration("generation_timeout", cfg.GenerationTimeout),
		zap.String("batch_policy", string(cfg.BatchPolicy)),
	)

	writer, err := service.NewOutputWriter(cfg.OutputDir)
	if err != nil {
		logger.Fatal("failed to prepare output directory", zap.Error(err))
	}

	// Generation cache is off unless a TTL is set.
	var appCache *cache.Cache
	if cfg.CacheTTL > 0 {
		appCache = cache.New(cfg.CacheTTL)
	}

	aiService, err := ai.New(cfg.RemoteEndpoint, cfg.ModelName, cfg.GenerationTimeout, appCache, logger)
	if err != nil {
		logger.Fatal("failed to initialize generation client", zap.Error(err))
	}
	defer aiService.Close()

	// PostgreSQL is optional; without it /check_sql answers 503.
	var checker *service.PostgresChecker
	if cfg.PostgresDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		checker, err = service.OpenPostgresChecker(ctx, cfg.PostgresDSN, logger)
		cancel()
		if err != nil {
			logger.Warn("PostgreSQL checker unavailable", zap.Error(err))
			checker = nil
		} else {
			defer checker.Close()
		}
	}

	h := handlers.New(aiService, writer, checker, cfg, logger)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.Register(r)

	// Writes may wait on a full generation call per uploaded file, so the
	// server imposes no write deadline of its own.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}
