package lead

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes mounts the legacy enquiry endpoint. The path is
// what the storefront already posts to, so it stays outside /api/v1.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/leads/create", handler.CreateEnquiry)
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads")
	{
		leads.GET("", handler.ListLeads)
		leads.POST("", handler.CreateLead)
		leads.GET("/stats", handler.GetStats)
		leads.GET("/stages", handler.GetStages)
		leads.GET("/:id", handler.GetLead)
		leads.POST("/:id/advance", handler.Advance)
		leads.POST("/:id/reject", handler.Reject)
		leads.PATCH("/:id/status", handler.UpdateStatus)
		leads.PATCH("/:id/status/override", handler.OverrideStatus)
		leads.POST("/:id/convert", handler.Convert)
	}
}
