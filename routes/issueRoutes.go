package routes

import (
	"janconnect-be/controllers"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine, ic *controllers.IssueController, requireAuth, optionalAuth, rateLimit gin.HandlerFunc) {
	issue := r.Group("/api/issue")
	{
		issue.POST("/create", requireAuth, rateLimit, ic.CreateIssue)
		issue.GET("", ic.GetAllIssues)
		issue.GET("/trending", ic.GetTrendingIssues)
		issue.GET("/mine", requireAuth, ic.GetMyIssues)
		issue.GET("/:id", optionalAuth, ic.GetIssue)
		issue.PUT("/:id", requireAuth, ic.UpdateIssue)
		issue.DELETE("/:id", requireAuth, ic.DeleteIssue)
		issue.POST("/:id/vote", requireAuth, ic.VoteIssue)
		issue.GET("/:id/comments", ic.GetComments)
		issue.POST("/:id/comments", requireAuth, ic.AddComment)
	}
}
