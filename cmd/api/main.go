package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-genie-backend/config"
	_ "go-genie-backend/docs" // Important for Swagger
	v1 "go-genie-backend/internal/delivery/http/v1"
	"go-genie-backend/internal/domain"
	"go-genie-backend/internal/repository/postgres"
	"go-genie-backend/internal/repository/prefstore"
	"go-genie-backend/internal/usecase"
	"go-genie-backend/pkg/auth"
	"go-genie-backend/pkg/database"
	"go-genie-backend/pkg/logger"
	"go-genie-backend/pkg/matching"
	"go-genie-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Genie Discovery API
// @version         1.0
// @description     Donor-to-student discovery backend: profile store plus a proxy to the external matching service.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting genie backend", "port", cfg.Port, "backend_url", cfg.BackendURL)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional: preferences fall back to process memory,
	// rate limiting to its in-memory store)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable", "error", err)
	}
	defer redis.Close()

	var store domain.PreferenceStore
	if client := redis.Client(); client != nil {
		store = prefstore.NewRedisStore(client)
	} else {
		store = prefstore.NewMemoryStore()
	}

	// 5. Setup Repositories
	studentRepo := postgres.NewStudentRepository(dbPool)
	genieRepo := postgres.NewGenieRepository(dbPool)

	// 6. Matching backend client
	matchClient := matching.NewClient(cfg.BackendURL)

	// 7. Setup UseCases
	validate := validator.New()
	studentUC := usecase.NewStudentUsecase(studentRepo)
	genieUC := usecase.NewGenieUsecase(genieRepo, validate)
	preferenceUC := usecase.NewPreferenceUsecase(store)
	discoverUC := usecase.NewDiscoverUsecase(studentRepo, matchClient, preferenceUC)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		DiscoverUC:   discoverUC,
		StudentUC:    studentUC,
		GenieUC:      genieUC,
		PreferenceUC: preferenceUC,
		HealthUC:     healthUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
