package v1

import (
	"contact-relay/config"
	"contact-relay/internal/delivery/http/middleware"
	"contact-relay/internal/domain"
	"contact-relay/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())

	api := r.Group("")
	api.Use(middleware.SecurityHeadersMiddleware())
	{
		NewHealthHandler(api, deps.HealthUC)
		NewContactHandler(api, deps.ContactUC)
	}

	if deps.Config.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
