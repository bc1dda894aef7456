package lead

import "time"

// Lead is a prospective customer enquiry. Product and quantity are
// free-form strings on purpose: enquiries arrive before any catalog
// match ("500 boxes", "assorted gift packs").
type Lead struct {
	ID string `gorm:"column:id;primaryKey" json:"id"`

	CustomerName string `gorm:"column:customer_name" json:"customerName"`
	Phone        string `gorm:"column:phone" json:"phone"`
	WhatsApp     string `gorm:"column:whatsapp" json:"whatsapp,omitempty"`
	City         string `gorm:"column:city" json:"city,omitempty"`

	InterestedProduct string `gorm:"column:interested_product" json:"interestedProduct,omitempty"`
	Quantity          string `gorm:"column:quantity" json:"quantity,omitempty"`
	RequirementDate   string `gorm:"column:requirement_date" json:"requirementDate,omitempty"`

	LeadSource Source `gorm:"column:lead_source" json:"leadSource"`
	LeadStatus Stage  `gorm:"column:lead_status" json:"leadStatus"`

	Notes string `gorm:"column:notes;type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Lead) TableName() string { return "leads" }

func (l *Lead) IsConverted() bool {
	return l.LeadStatus == StageConverted
}
