package v1

import (
	"net/http"
	"time"

	"reelhire-backend/config"
	"reelhire-backend/internal/delivery/http/middleware"
	"reelhire-backend/internal/delivery/http/response"
	"reelhire-backend/internal/domain"
	"reelhire-backend/internal/usecase"
	"reelhire-backend/pkg/auth"
	"reelhire-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	VideoUC       domain.VideoUsecase
	ApplicationUC domain.ApplicationUsecase
	MessageUC     domain.MessageUsecase
	BookmarkUC    domain.BookmarkUsecase
	UploadUC      usecase.UploadUsecase
	Tokens        *auth.TokenManager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login gets its own tighter limit on top of the global one
	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(api, protected, deps.AuthUC, deps.Tokens, deps.Config, loginLimiter)
		NewUserHandler(api, protected, deps.AuthUC)
		NewVideoHandler(api, protected, deps.VideoUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewMessageHandler(protected, deps.MessageUC)
		NewBookmarkHandler(protected, deps.BookmarkUC)
		NewUploadHandler(protected, deps.UploadUC)
	}

	return r
}
