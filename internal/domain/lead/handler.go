package lead

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

// CreateEnquiry handles POST /api/leads/create — the public enquiry
// form endpoint, kept wire-compatible with the storefront: flat
// {success, message, leadId} on 201 and {error} on failure.
func (h *Handler) CreateEnquiry(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if req.CustomerName == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name and phone are required"})
		return
	}

	l, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Lead created successfully",
		"leadId":  l.ID,
	})
}

// CreateLead handles POST /api/v1/leads (dashboard form).
func (h *Handler) CreateLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	l, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lead": l})
}

// ListLeads handles GET /api/v1/leads with search/status/source filters.
func (h *Handler) ListLeads(c *gin.Context) {
	leads, err := h.service.List(c.Request.Context(), FilterOptions{
		SearchTerm: c.Query("search"),
		Status:     c.Query("status"),
		Source:     c.Query("source"),
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Leads: leads, Total: len(leads)})
}

// GetLead handles GET /api/v1/leads/:id.
func (h *Handler) GetLead(c *gin.Context) {
	l, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lead": l, "badge": l.LeadStatus.Badge()})
}

// Advance handles POST /api/v1/leads/:id/advance.
func (h *Handler) Advance(c *gin.Context) {
	l, err := h.service.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.statusError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lead": l})
}

// Reject handles POST /api/v1/leads/:id/reject.
func (h *Handler) Reject(c *gin.Context) {
	var req RejectRequest
	_ = c.ShouldBindJSON(&req)

	l, err := h.service.Reject(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		h.statusError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lead": l})
}

// UpdateStatus handles PATCH /api/v1/leads/:id/status — the checked
// path: one step forward or a reject.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	l, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.statusError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lead": l})
}

// OverrideStatus handles PATCH /api/v1/leads/:id/status/override — the
// manual jump to any stage.
func (h *Handler) OverrideStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	l, err := h.service.OverrideStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.statusError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lead": l})
}

// Convert handles POST /api/v1/leads/:id/convert.
func (h *Handler) Convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	o, err := h.service.ConvertToOrder(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		case errors.Is(err, ErrAlreadyConverted):
			response.Error(c, http.StatusConflict, "INVALID_STATE", "Lead already converted")
		case errors.Is(err, ErrNotConfirmed):
			response.Error(c, http.StatusConflict, "INVALID_STATE", "Lead must be confirmed before conversion")
		default:
			response.Error(c, http.StatusBadRequest, "CONVERSION_FAILED", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": o})
}

// GetStats handles GET /api/v1/leads/stats.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"byStage": stats})
}

// GetStages handles GET /api/v1/leads/stages: the stage list with the
// presentation lookup every view shares.
func (h *Handler) GetStages(c *gin.Context) {
	type stageRow struct {
		Stage Stage `json:"stage"`
		Badge Badge `json:"badge"`
	}
	rows := make([]stageRow, 0, len(Stages()))
	for _, st := range Stages() {
		rows = append(rows, stageRow{Stage: st, Badge: st.Badge()})
	}
	response.Success(c, http.StatusOK, gin.H{"stages": rows})
}

func (h *Handler) statusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLeadNotFound):
		response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
	case errors.Is(err, ErrUnknownStage):
		response.Error(c, http.StatusBadRequest, "UNKNOWN_STAGE", "Unknown stage")
	case errors.Is(err, ErrTerminalStage):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Lead is in a terminal stage")
	case errors.Is(err, ErrIllegalTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Illegal stage transition")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
