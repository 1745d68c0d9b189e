package v1

import (
	"log/slog"
	"net/http"

	"cavebeat-backend/config"
	"cavebeat-backend/internal/delivery/http/middleware"
	"cavebeat-backend/internal/delivery/http/response"
	"cavebeat-backend/internal/domain"
	"cavebeat-backend/internal/usecase"
	"cavebeat-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	HireTeamUC domain.HireTeamUsecase
	HealthUC   usecase.HealthUsecase
	Redis      *goredis.Client // optional, rate limiting falls back to memory
	Config     *config.Config
	Logger     *slog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigin)) // CORS must be first!
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(deps.Logger))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(deps.Logger))

	r.NoMethod(func(c *gin.Context) {
		c.Error(apperror.MethodNotAllowed())
	})
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found", nil)
	})

	api := r.Group("/api")

	// Health Check stays outside the rate limit
	NewHealthHandler(api, deps.HealthUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limited := api.Group("")
	limited.Use(middleware.RateLimitMiddleware(deps.Redis, middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitMax,
		Window: deps.Config.RateLimitWindow(),
		Logger: deps.Logger,
	}))
	{
		NewHireTeamHandler(limited, deps.HireTeamUC) // Hire team form (no auth required)

		protected := limited.Group("")
		protected.Use(middleware.AdminAuth(deps.Config.AdminJWTSecret))
		NewAdminHandler(protected, deps.HireTeamUC)
	}

	return r
}
