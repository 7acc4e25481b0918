package routes

import (
	"janconnect-be/controllers"
	"janconnect-be/middlewares"
	"janconnect-be/models"

	"github.com/gin-gonic/gin"
)

// TenderRoutes sets up the tender and bid routes
func TenderRoutes(r *gin.Engine, tc *controllers.TenderController, requireAuth gin.HandlerFunc) {
	tenders := r.Group("/api/tenders")
	{
		tenders.GET("", tc.GetTenders)
		tenders.POST("", requireAuth, middlewares.RequireRole(models.Admin), tc.CreateTender)
		tenders.GET("/bids/mine", requireAuth, tc.GetMyBids)
		tenders.POST("/:id/bids", requireAuth, middlewares.RequireRole(models.Contractor, models.Admin), tc.CreateBid)
		tenders.PUT("/:id/status", requireAuth, middlewares.RequireRole(models.Admin), tc.UpdateTenderStatus)
	}
}
