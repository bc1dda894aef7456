package compliance

import (
	"errors"
	"net/http"
	"time"

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

type certificateRequest struct {
	CertificateType string `json:"certificateType" validate:"required"`
	CertificateNo   string `json:"certificateNo" validate:"required"`
	Issuer          string `json:"issuer"`
	IssuedDate      string `json:"issuedDate" validate:"required"`
	ExpiryDate      string `json:"expiryDate" validate:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	var req certificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	issued, err := time.Parse("2006-01-02", req.IssuedDate)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "issuedDate must be YYYY-MM-DD")
		return
	}
	expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "expiryDate must be YYYY-MM-DD")
		return
	}

	cert := &Certificate{
		CertificateType: req.CertificateType,
		CertificateNo:   req.CertificateNo,
		Issuer:          req.Issuer,
		IssuedDate:      issued,
		ExpiryDate:      expiry,
	}
	if err := h.service.Create(c.Request.Context(), cert); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create certificate")
		return
	}
	response.Success(c, http.StatusCreated, cert)
}

func (h *Handler) List(c *gin.Context) {
	certs, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list certificates")
		return
	}
	response.Success(c, http.StatusOK, certs)
}

func (h *Handler) Get(c *gin.Context) {
	cert, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrCertificateNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Certificate not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch certificate")
		return
	}
	response.Success(c, http.StatusOK, cert)
}

func (h *Handler) Alerts(c *gin.Context) {
	certs, err := h.service.Alerts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list alerts")
		return
	}
	response.Success(c, http.StatusOK, certs)
}

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	certs := rg.Group("/certificates")
	{
		certs.GET("", h.List)
		certs.POST("", h.Create)
		certs.GET("/alerts", h.Alerts)
		certs.GET("/:id", h.Get)
	}
}
