package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/upcheck-dev/upcheck/internal/auth"
	"github.com/upcheck-dev/upcheck/internal/handlers"
	"github.com/upcheck-dev/upcheck/internal/middleware"
)

// Deps carries every handler the route tree needs, wired by the caller.
type Deps struct {
	Tokens     *auth.TokenManager
	Auth       *handlers.AuthHandler
	Workspaces *handlers.WorkspaceHandler
	Services   *handlers.ServiceHandler
	Endpoints  *handlers.EndpointHandler
}

func New(deps Deps, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authed := middleware.Auth(deps.Tokens)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", deps.Auth.Register)
			authGroup.POST("/login", deps.Auth.Login)
			authGroup.POST("/logout", deps.Auth.Logout)
			authGroup.GET("/me", authed, deps.Auth.Me)
			authGroup.POST("/change-password", authed, deps.Auth.ChangePassword)
		}

		workspaces := api.Group("/workspaces", authed)
		{
			workspaces.POST("", deps.Workspaces.Create)
			workspaces.GET("", deps.Workspaces.List)
			workspaces.GET("/:workspace_id", deps.Workspaces.Get)
			workspaces.PATCH("/:workspace_id", deps.Workspaces.Update)
			workspaces.DELETE("/:workspace_id", deps.Workspaces.Delete)

			services := workspaces.Group("/:workspace_id/services")
			{
				services.POST("", deps.Services.Create)
				services.GET("", deps.Services.List)
				services.GET("/:service_id", deps.Services.Get)
				services.PATCH("/:service_id", deps.Services.Update)
				services.DELETE("/:service_id", deps.Services.Delete)

				endpoints := services.Group("/:service_id/endpoints")
				{
					endpoints.POST("", deps.Endpoints.Create)
					endpoints.GET("", deps.Endpoints.List)
					endpoints.GET("/:endpoint_id", deps.Endpoints.Get)
					endpoints.PATCH("/:endpoint_id", deps.Endpoints.Update)
					endpoints.DELETE("/:endpoint_id", deps.Endpoints.Delete)
				}
			}
		}
	}

	return r
}
