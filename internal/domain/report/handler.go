package report

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crackershop/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Sales handles GET /reports/sales?from=YYYY-MM-DD&to=YYYY-MM-DD. The
// "to" bound is exclusive of the next day, so from=to covers one day.
func (h *Handler) Sales(c *gin.Context) {
	var from, to time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "from must be YYYY-MM-DD")
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "to must be YYYY-MM-DD")
			return
		}
		to = t.AddDate(0, 0, 1)
	}

	summary, err := h.service.Sales(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build sales report")
		return
	}
	response.Success(c, http.StatusOK, summary)
}

func (h *Handler) Funnel(c *gin.Context) {
	f, err := h.service.LeadFunnel(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build lead funnel")
		return
	}
	response.Success(c, http.StatusOK, f)
}

func (h *Handler) Stock(c *gin.Context) {
	r, err := h.service.Stock(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build stock report")
		return
	}
	response.Success(c, http.StatusOK, r)
}

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	reports := rg.Group("/reports")
	{
		reports.GET("/sales", h.Sales)
		reports.GET("/funnel", h.Funnel)
		reports.GET("/stock", h.Stock)
	}
}
