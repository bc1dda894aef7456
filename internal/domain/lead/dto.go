package lead

import "crackershop/internal/domain/order"

// CreateLeadRequest is shared by the public enquiry form and the
// dashboard lead form. Only name and phone are required; everything
// else is free text at this point in the pipeline.
type CreateLeadRequest struct {
	CustomerName      string `json:"customerName" validate:"required"`
	Phone             string `json:"phone" validate:"required"`
	WhatsApp          string `json:"whatsapp"`
	City              string `json:"city"`
	InterestedProduct string `json:"interestedProduct"`
	Quantity          string `json:"quantity"`
	RequirementDate   string `json:"requirementDate"`
	Notes             string `json:"notes"`
	LeadSource        string `json:"leadSource"`
	// accepted for wire compatibility with the old enquiry form;
	// the store always initializes status to New Lead
	LeadStatus string `json:"leadStatus"`
}

type UpdateStatusRequest struct {
	Status Stage `json:"status" validate:"required"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

// ConvertRequest carries the line items and pricing adjustments for the
// lead → order handoff.
type ConvertRequest struct {
	Items        []order.ItemInput  `json:"items" validate:"required,min=1,dive"`
	Discount     float64            `json:"discount" validate:"gte=0"`
	Tax          float64            `json:"tax" validate:"gte=0"`
	PaymentMode  order.PaymentMode  `json:"paymentMode" validate:"required"`
	DeliveryType order.DeliveryType `json:"deliveryType"`
}

type ListResponse struct {
	Leads []Lead `json:"leads"`
	Total int    `json:"total"`
}
