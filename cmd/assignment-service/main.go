package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leagueops/internal/client"
	"leagueops/internal/config"
	"leagueops/internal/repository"
	"leagueops/internal/service"
	"leagueops/internal/transport/rest"

	"github.com/joho/godotenv"
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
	logger = logger.With(zap.String("service", "assignment-service"))

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

	db := mongoClient.Database(cfg.MongoDB)

	assignmentRepo := repository.NewAssignmentRepo(db)
	if err := assignmentRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to create assignment indexes", zap.Error(err))
	}

	gameClient := client.NewGameClient(cfg.GameServiceBase)
	userClient := client.NewUserClient(cfg.UserServiceBase)

	validator := service.NewValidator(gameClient, userClient)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, validator, logger)
	aggregator := service.NewAggregator(assignmentRepo, gameClient, userClient, logger)
	healthSvc := service.NewHealthService("assignment-service",
		service.Dependency{Name: "user-service", Probe: userClient},
		service.Dependency{Name: "game-service", Probe: gameClient},
	)

	router := rest.NewAssignmentRouter(&rest.AssignmentContainer{
		Assignments: assignmentSvc,
		Aggregator:  aggregator,
		Health:      healthSvc,
		Log:         logger,
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
