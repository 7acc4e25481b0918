package routes

import (
	"janconnect-be/controllers"

	"github.com/gin-gonic/gin"
)

// CommunityRoutes sets up posts, feedback and notifications
func CommunityRoutes(r *gin.Engine, cc *controllers.CommunityController, requireAuth, optionalAuth gin.HandlerFunc) {
	posts := r.Group("/api/posts")
	{
		posts.GET("", cc.GetPosts)
		posts.POST("", requireAuth, cc.CreatePost)
	}

	feedback := r.Group("/api/feedback")
	{
		feedback.POST("", optionalAuth, cc.SubmitFeedback)
		feedback.GET("/mine", requireAuth, cc.GetMyFeedback)
	}

	notifications := r.Group("/api/notifications", requireAuth)
	{
		notifications.GET("", cc.GetNotifications)
		notifications.PUT("/:id/read", cc.MarkNotificationRead)
	}
}
