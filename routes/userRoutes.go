package routes

import (
	"janconnect-be/controllers"

	"github.com/gin-gonic/gin"
)

// UserRoutes sets up the profile, leaderboard and officials directory routes
func UserRoutes(r *gin.Engine, uc *controllers.UserController, requireAuth gin.HandlerFunc) {
	r.GET("/api/leaderboard", uc.GetLeaderboard)
	r.GET("/api/officials", uc.GetOfficials)

	users := r.Group("/api/users")
	{
		users.PUT("/me", requireAuth, uc.UpdateMyProfile)
		users.GET("/:id", uc.GetProfile)
	}
}
