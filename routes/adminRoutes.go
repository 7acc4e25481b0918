package routes

import (
	"janconnect-be/controllers"
	"janconnect-be/middlewares"
	"janconnect-be/models"

	"github.com/gin-gonic/gin"
)

// AdminRoutes sets up the administrator routes
func AdminRoutes(r *gin.Engine, ac *controllers.AdminController, requireAuth gin.HandlerFunc) {
	admin := r.Group("/api/admin", requireAuth, middlewares.RequireRole(models.Admin))
	{
		admin.GET("/dashboard", ac.GetDashboard)
		admin.PUT("/issues/:id/assign", ac.AssignIssue)
		admin.PUT("/issues/:id/resolve", ac.ResolveIssue)
		admin.POST("/issues/:id/tender", ac.CreateTenderFromIssue)
		admin.GET("/users", ac.ListUsers)
		admin.PUT("/users/:id", ac.UpdateUser)
		admin.DELETE("/users/:id", ac.DeleteUser)
		admin.POST("/officials", ac.CreateOfficial)
		admin.PUT("/officials/:id", ac.UpdateOfficial)
	}
}
