package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leagueops/internal/cache"
	"leagueops/internal/config"
	"leagueops/internal/repository"
	"leagueops/internal/service"
	"leagueops/internal/transport/rest"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("service", "user-service"))

	ctx := context.Background()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB")

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// The cache is best effort: a dead Redis only costs cache hits, so a
	// failed ping is logged, not fatal.
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Warn("failed to ping Redis, continuing without cache hits", zap.Error(err))
	} else {
		logger.Info("connected to Redis")
	}

	db := mongoClient.Database(cfg.MongoDB)

	userRepo := repository.NewUserRepo(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to create user indexes", zap.Error(err))
	}

	userCache := cache.NewUserCache(rdb, cfg.CacheTTL)
	userSvc := service.NewUserService(userRepo, userCache, logger)
	healthSvc := service.NewHealthService("user-service")

	router := rest.NewUserRouter(&rest.UserContainer{
		Users:  userSvc,
		Health: healthSvc,
		Log:    logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
