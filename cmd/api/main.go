package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pixvault/pixvault-backend/internal/adapter/handler"
	"github.com/pixvault/pixvault-backend/internal/adapter/repository/postgres"
	"github.com/pixvault/pixvault-backend/internal/infrastructure/auth"
	"github.com/pixvault/pixvault-backend/internal/infrastructure/config"
	"github.com/pixvault/pixvault-backend/internal/infrastructure/database"
	"github.com/pixvault/pixvault-backend/internal/infrastructure/middleware"
	"github.com/pixvault/pixvault-backend/internal/infrastructure/observability"
	"github.com/pixvault/pixvault-backend/internal/infrastructure/server"
	"github.com/pixvault/pixvault-backend/internal/infrastructure/storage"
	"github.com/pixvault/pixvault-backend/internal/usecase/deletion"
	"github.com/pixvault/pixvault-backend/internal/usecase/image"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Repositories
	imageRepo := postgres.NewImageRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)

	s3Storage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}
	compressor := storage.NewCompressor(cfg.Image.MaxCompressPasses)

	// Use cases
	imageSvc := image.NewService(imageRepo, s3Storage, compressor, cfg.Image, logger)
	deletionSvc := deletion.NewService(imageRepo, s3Storage, logger)

	// Handlers
	imageHandler := handler.NewImageHandler(imageSvc, deletionSvc, cfg.Image.MaxUploadBytes)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		ImageHandler:   imageHandler,
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
