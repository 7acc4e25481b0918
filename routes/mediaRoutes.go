package routes

import (
	"janconnect-be/controllers"

	"github.com/gin-gonic/gin"
)

// MediaRoutes sets up image uploads
func MediaRoutes(r *gin.Engine, mc *controllers.MediaController, requireAuth gin.HandlerFunc) {
	r.POST("/api/media/images", requireAuth, mc.UploadImages)
}
