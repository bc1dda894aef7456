package pos

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crackershop/internal/domain/order"
	"crackershop/internal/pkg/response"
	"crackershop/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	o, err := h.service.Checkout(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart), errors.Is(err, order.ErrNoItems), errors.Is(err, order.ErrInvalidQuantity):
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrUnknownProduct):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Checkout failed")
		}
		return
	}
	response.Success(c, http.StatusCreated, o)
}

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.POST("/pos/checkout", h.Checkout)
}
