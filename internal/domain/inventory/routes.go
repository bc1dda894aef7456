package inventory

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	stock := r.Group("/stock")
	{
		stock.GET("", handler.ListItems)
		stock.POST("", handler.CreateItem)
		stock.GET("/adjustments", handler.ListAdjustments)
		stock.GET("/legal-warnings", handler.LegalWarnings)
		stock.GET("/:id", handler.GetItem)
		stock.POST("/:id/adjust", handler.Adjust)
	}
}
