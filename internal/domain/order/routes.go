package order

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/orders")
	{
		orders.GET("", handler.ListOrders)
		orders.GET("/stats", handler.GetStats)
		orders.GET("/:id", handler.GetOrder)
		orders.PATCH("/:id/status", handler.UpdateStatus)
	}
}
