package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/Valentina9990/top-talent/internal/auth"
	"github.com/Valentina9990/top-talent/internal/middleware"
	"github.com/Valentina9990/top-talent/internal/player"
	"github.com/Valentina9990/top-talent/internal/reference"
	"github.com/Valentina9990/top-talent/internal/school"
	"github.com/Valentina9990/top-talent/internal/storage"
	"github.com/Valentina9990/top-talent/pkg/validator"
)

// Deps are the long-lived services the HTTP layer is built from.
type Deps struct {
	DB          *gorm.DB
	JWTSecret   string
	Auth        *auth.AuthService
	Tokens      auth.TokenStore
	Uploads     *storage.UploadService
	FrontendURL string
}

func SetupRoutes(deps Deps) *gin.Engine {
	validator.UseJSONNames()

	r := gin.Default()
	r.Use(cors.New(corsConfig(deps.FrontendURL)))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": "Top Talent API", "docs": "/swagger/index.html"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := deps.DB.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authMiddleware := middleware.AuthMiddleware(deps.JWTSecret, deps.DB, deps.Tokens)

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, deps.Auth, authMiddleware)
	reference.RegisterReferenceRoutes(api, deps.DB)
	player.RegisterPlayerRoutes(api, deps.DB, authMiddleware)
	school.RegisterSchoolRoutes(api, deps.DB, authMiddleware)
	if deps.Uploads != nil {
		storage.RegisterUploadRoutes(api, deps.Uploads, authMiddleware)
	}

	return r
}

// corsConfig allows every origin unless a frontend URL is configured.
func corsConfig(frontendURL string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if frontendURL == "" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = []string{frontendURL}
	cfg.AllowCredentials = true
	return cfg
}
