package routes

import (
	"janconnect-be/controllers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, ac *controllers.AuthController, requireAuth gin.HandlerFunc) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", ac.RegisterUser)
		auth.POST("/login", ac.LoginUser)
		auth.POST("/logout", requireAuth, ac.LogoutUser)
		auth.GET("/me", requireAuth, ac.GetMe)
		auth.POST("/password-reset", ac.RequestPasswordReset)
		auth.POST("/password-reset/confirm", ac.ConfirmPasswordReset)
	}
}
