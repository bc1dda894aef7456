package catalog

import (
	"errors"
	"net/http"

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

type productRequest struct {
	Name                string  `json:"name" validate:"required"`
	ShortDescription    string  `json:"shortDescription"`
	Category            string  `json:"category" validate:"required"`
	Brand               string  `json:"brand"`
	SKU                 string  `json:"sku" validate:"required"`
	MRP                 float64 `json:"mrp" validate:"gte=0"`
	SellingPrice        float64 `json:"sellingPrice" validate:"gte=0"`
	CostPrice           float64 `json:"costPrice" validate:"gte=0"`
	GSTPercentage       float64 `json:"gstPercentage" validate:"gte=0,lte=100"`
	PESOCertificationNo string  `json:"pesoCertificationNo"`
	GreenCracker        bool    `json:"greenCracker"`
	RequiresLicense     bool    `json:"requiresLicense"`
}

// CreateProduct handles POST /api/v1/products.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	p := &Product{
		Name:                req.Name,
		ShortDescription:    req.ShortDescription,
		Category:            req.Category,
		Brand:               req.Brand,
		SKU:                 req.SKU,
		MRP:                 req.MRP,
		SellingPrice:        req.SellingPrice,
		CostPrice:           req.CostPrice,
		GSTPercentage:       req.GSTPercentage,
		PESOCertificationNo: req.PESOCertificationNo,
		GreenCracker:        req.GreenCracker,
		RequiresLicense:     req.RequiresLicense,
	}

	if err := h.service.Create(c.Request.Context(), p); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"product": p})
}

// ListProducts handles GET /api/v1/products.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.service.List(c.Request.Context(), ListFilter{
		Category:   c.Query("category"),
		Search:     c.Query("search"),
		ActiveOnly: c.Query("all") == "",
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": products, "total": len(products)})
}

// GetProduct handles GET /api/v1/products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product": p})
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (h *Handler) UpdateProduct(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	p.Name = req.Name
	p.ShortDescription = req.ShortDescription
	p.Category = req.Category
	p.Brand = req.Brand
	p.SKU = req.SKU
	p.MRP = req.MRP
	p.SellingPrice = req.SellingPrice
	p.CostPrice = req.CostPrice
	p.GSTPercentage = req.GSTPercentage
	p.PESOCertificationNo = req.PESOCertificationNo
	p.GreenCracker = req.GreenCracker
	p.RequiresLicense = req.RequiresLicense

	if err := h.service.Update(c.Request.Context(), p); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product": p})
}
