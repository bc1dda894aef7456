package customer

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crackershop/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListCustomers handles GET /api/v1/customers.
func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customers": customers, "total": len(customers)})
}

// GetCustomer handles GET /api/v1/customers/:id.
func (h *Handler) GetCustomer(c *gin.Context) {
	cust, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			response.Error(c, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer": cust})
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	customers := r.Group("/customers")
	{
		customers.GET("", handler.ListCustomers)
		customers.GET("/:id", handler.GetCustomer)
	}
}
