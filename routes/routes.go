package routes

import (
	"net/http"

	"janconnect-be/config"
	"janconnect-be/controllers"
	"janconnect-be/media"
	"janconnect-be/middlewares"
	"janconnect-be/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Deps is everything the HTTP layer needs.
type Deps struct {
	Config   *config.Config
	Services *services.Services
	Redis    *redis.Client
	Uploader media.Uploader // nil when image hosting is not configured
}

// RegisterRoutes mounts every route group on r.
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	requireAuth := middlewares.AuthMiddleware(d.Services.Auth)
	optionalAuth := middlewares.OptionalAuth(d.Services.Auth)

	AuthRoutes(r, controllers.NewAuthController(d.Services.Auth, d.Config.Domain, d.Config.IsProduction()), requireAuth)
	IssueRoutes(r, controllers.NewIssueController(d.Services.Issues, d.Services.Profiles), requireAuth, optionalAuth,
		middlewares.IssueRateLimiter(d.Redis, d.Config.IssueLimitPrefix, d.Config.IssueDailyLimit))
	TenderRoutes(r, controllers.NewTenderController(d.Services.Tenders), requireAuth)
	UserRoutes(r, controllers.NewUserController(d.Services.Profiles, d.Services.Leaderboard, d.Services.Officials), requireAuth)
	CommunityRoutes(r, controllers.NewCommunityController(d.Services.Community), requireAuth, optionalAuth)
	AdminRoutes(r, controllers.NewAdminController(d.Services), requireAuth)
	MediaRoutes(r, controllers.NewMediaController(d.Uploader), requireAuth)
}
