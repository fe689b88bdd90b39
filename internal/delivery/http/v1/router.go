package v1

import (
	"net/http"
	"time"

	"go-genie-backend/config"
	"go-genie-backend/internal/delivery/http/middleware"
	"go-genie-backend/internal/delivery/http/response"
	"go-genie-backend/internal/domain"
	"go-genie-backend/internal/usecase"
	"go-genie-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	DiscoverUC   domain.DiscoverUsecase
	StudentUC    domain.StudentUsecase
	GenieUC      domain.GenieUsecase
	PreferenceUC domain.PreferenceUsecase
	HealthUC     usecase.HealthUsecase
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Without the fallback, gin's Context.Value never reaches the request
	// context, and the identity attached by the auth middleware is lost to
	// the usecases.
	r.ContextWithFallback = true

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.OK(c, deps.HealthUC.Check(c.Request.Context()))
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes: discovery and student upsert have no auth, matching the
	// frontend contract.
	NewMetadataHandler(api)
	NewStudentHandler(api, deps.StudentUC)

	// Protected routes (donor-scoped)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))

	// Discover stays public, but a logged-in donor gets the last-search
	// cache, so its group parses tokens without requiring them.
	discoverPublic := api.Group("")
	discoverPublic.Use(middleware.OptionalAuthMiddleware(deps.JWKSProvider, deps.Config))

	discoverLimiter := middleware.RateLimitMiddleware(
		middleware.DiscoverRateLimitConfig(deps.Config.RateLimitDiscoverThreshold, window))
	NewDiscoverHandler(discoverPublic, protected, deps.DiscoverUC, discoverLimiter)
	NewGenieHandler(protected, deps.GenieUC)
	NewPreferenceHandler(protected, deps.PreferenceUC)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found")
	})

	return r
}
