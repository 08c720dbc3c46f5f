package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"google.golang.org/grpc"

	"github.com/depang/shopping-mall-api/services/user-service/internal/config"
	"github.com/depang/shopping-mall-api/services/user-service/internal/gateway"
	"github.com/depang/shopping-mall-api/services/user-service/internal/handler"
	"github.com/depang/shopping-mall-api/services/user-service/internal/repository"
	"github.com/depang/shopping-mall-api/services/user-service/internal/usecase"
	"github.com/depang/shopping-mall-api/shared/auth"
	"github.com/depang/shopping-mall-api/shared/logger"
	"github.com/depang/shopping-mall-api/shared/middleware"
	"github.com/depang/shopping-mall-api/shared/registry"
	"github.com/depang/shopping-mall-api/shared/utilities"
	"github.com/depang/shopping-mall-api/shared/validator"
)

const serviceName = "user-service"

func main() {
	log := logger.New(serviceName, os.Getenv("LOG_PRETTY") == "true")
	cfg := config.NewUserServiceConfig(&log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to ping mongodb")
	}

	db := mongoClient.Database(cfg.MongoDatabase)

	accountRepo := repository.NewAccountMongoRepository(ctx, &log, db)
	profileRepo := repository.NewProfileMongoRepository(ctx, &log, db)
	cartRepo := repository.NewCartMongoRepository(db)
	wishlistRepo := repository.NewWishlistMongoRepository(db)
	withdrawalRepo := repository.NewWithdrawalMongoRepository(db)

	mileageGateway := gateway.NewMileageHTTPGateway(cfg.MileageServiceURL)

	accountUsecase := usecase.NewAccountUsecase(
		accountRepo,
		profileRepo,
		cartRepo,
		wishlistRepo,
		withdrawalRepo,
		mileageGateway,
		&log,
	)

	validate, err := validator.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create validator")
	}

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Issuer, cfg.Token.Issuer)
	adminOnly := middleware.RequireJWT(jwtAuth, cfg.Token.AccessTokenSecret)

	accountHandler := handler.NewAccountHTTPHandler(accountUsecase, validate, adminOnly, &log)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Mount("/api/users", accountHandler.Routes())

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("http server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	grpcServer := grpc.NewServer()
	utilities.RegisterHealthServer(grpcServer)

	healthListener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.HealthPort))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen on health port")
	}

	go func() {
		if err := grpcServer.Serve(healthListener); err != nil {
			log.Fatal().Err(err).Msg("health server failed")
		}
	}()

	serviceID := fmt.Sprintf("%s-%s", serviceName, uuid.NewString())

	consulRegistry, err := registry.NewRegistry(cfg.ConsulAddr, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create consul registry")
	}

	err = consulRegistry.Register(registry.ServiceRegistration{
		ID:         serviceID,
		Name:       serviceName,
		Address:    cfg.AdvertiseAddr,
		Port:       cfg.HTTPPort,
		HealthPort: cfg.HealthPort,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register with consul")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	consulRegistry.Deregister(serviceID)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
	grpcServer.GracefulStop()
}
