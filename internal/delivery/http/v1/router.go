package v1

import (
	"net/http"
	"time"

	"go-izcloud-backend/config"
	"go-izcloud-backend/internal/delivery/http/middleware"
	"go-izcloud-backend/internal/delivery/http/response"
	"go-izcloud-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	GDPRUC    domain.GDPRUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first so preflights short-circuit
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.SecurityHeadersMiddleware())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational")
	})

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Public routes - each form keeps its own rate-limit bucket
	NewContactHandler(v1, deps.ContactUC,
		middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(deps.Config.RateLimitContactMax, window)))
	NewGDPRHandler(v1, deps.GDPRUC,
		middleware.RateLimitMiddleware(middleware.GDPRRateLimitConfig(deps.Config.RateLimitGDPRMax, window)))

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
