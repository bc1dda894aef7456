package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crackershop/internal/pkg/response"
	"crackershop/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createItemRequest struct {
	ProductID       string `json:"productId"`
	ProductName     string `json:"productName" validate:"required"`
	SKU             string `json:"sku" validate:"required"`
	CurrentStock    int    `json:"currentStock" validate:"gte=0"`
	MinAllowedStock int    `json:"minAllowedStock" validate:"gte=0"`
	MaxAllowedStock int    `json:"maxAllowedStock" validate:"gte=0"`
	LegalLimit      int    `json:"legalLimit" validate:"gte=0"`
	ReorderLevel    int    `json:"reorderLevel" validate:"gte=0"`
	Location        string `json:"location"`
}

// CreateItem handles POST /api/v1/stock.
func (h *Handler) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	item := &StockItem{
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		SKU:             req.SKU,
		CurrentStock:    req.CurrentStock,
		MinAllowedStock: req.MinAllowedStock,
		MaxAllowedStock: req.MaxAllowedStock,
		LegalLimit:      req.LegalLimit,
		ReorderLevel:    req.ReorderLevel,
		Location:        req.Location,
	}
	if err := h.service.CreateItem(c.Request.Context(), item); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"item": item})
}

// ListItems handles GET /api/v1/stock.
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// GetItem handles GET /api/v1/stock/:id.
func (h *Handler) GetItem(c *gin.Context) {
	item, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrStockNotFound) {
			response.Error(c, http.StatusNotFound, "STOCK_NOT_FOUND", "Stock item not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"item": item})
}

type adjustRequest struct {
	Type       AdjustmentType `json:"type" validate:"required"`
	Quantity   int            `json:"quantity"`
	Reason     string         `json:"reason" validate:"required"`
	AdjustedBy string         `json:"adjustedBy"`
}

// Adjust handles POST /api/v1/stock/:id/adjust.
func (h *Handler) Adjust(c *gin.Context) {
	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	item, err := h.service.Adjust(c.Request.Context(), c.Param("id"), req.Type, req.Quantity, req.Reason, req.AdjustedBy)
	if err != nil {
		switch {
		case errors.Is(err, ErrStockNotFound):
			response.Error(c, http.StatusNotFound, "STOCK_NOT_FOUND", "Stock item not found")
		case errors.Is(err, ErrInvalidAdjustment), errors.Is(err, ErrZeroQuantity):
			response.Error(c, http.StatusBadRequest, "INVALID_ADJUSTMENT", err.Error())
		case errors.Is(err, ErrInsufficientStock):
			response.Error(c, http.StatusConflict, "INSUFFICIENT_STOCK", "Insufficient stock")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"item":           item,
		"overLegalLimit": item.OverLegalLimit(),
	})
}

// ListAdjustments handles GET /api/v1/stock/adjustments.
func (h *Handler) ListAdjustments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	adjustments, err := h.service.ListAdjustments(c.Request.Context(), c.Query("stockId"), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"adjustments": adjustments})
}

// LegalWarnings handles GET /api/v1/stock/legal-warnings.
func (h *Handler) LegalWarnings(c *gin.Context) {
	items, err := h.service.LegalWarnings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items, "total": len(items)})
}
