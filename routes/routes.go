package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"socialnet/auth"
	"socialnet/config"
	"socialnet/handlers"
	"socialnet/middleware"
	"socialnet/store"
)

// New assembles the router: CORS, health endpoints, public auth routes with
// rate limiting, and the cookie-authenticated API.
func New(api *handlers.API, sessions *auth.Manager, members store.MemberStore, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "socialnet API running", "service": "healthy"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	limiter := middleware.NewIPRateLimiter(30, time.Minute)
	router.POST("/auth/register/", limiter.Middleware(), api.Register)
	router.POST("/auth/login/", limiter.Middleware(), api.Login)

	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(sessions, members))

	protected.POST("/auth/logout/", api.Logout)
	protected.GET("/auth/me/", api.Me)

	protected.GET("/posts/", api.ListPosts)
	protected.POST("/posts/create/", api.CreatePost)
	protected.GET("/posts/:id/", api.GetPost)
	protected.DELETE("/posts/:id/delete/", api.DeletePost)
	protected.POST("/posts/:id/like/", api.ToggleLike)

	protected.GET("/posts/:id/comments/", api.ListComments)
	protected.POST("/posts/:id/comments/create/", api.CreateComment)
	protected.DELETE("/comments/:id/", api.DeleteComment)

	protected.GET("/profile/:id/", api.GetProfile)
	protected.PATCH("/profile/", api.UpdateProfile)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Endpoint not found",
			"path":  c.Request.URL.Path,
		})
	})

	return router
}
