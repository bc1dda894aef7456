package customer

import "time"

// Customer is a directory row keyed by phone, accumulated from orders
// rather than registered (no accounts in the enquiry-based model).
type Customer struct {
	ID       string `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name" json:"name"`
	Phone    string `gorm:"column:phone;uniqueIndex" json:"phone"`
	WhatsApp string `gorm:"column:whatsapp" json:"whatsapp,omitempty"`
	City     string `gorm:"column:city" json:"city,omitempty"`

	TotalSpent       float64    `gorm:"column:total_spent" json:"totalSpent"`
	OrderCount       int        `gorm:"column:order_count" json:"orderCount"`
	LastPurchaseDate *time.Time `gorm:"column:last_purchase_date" json:"lastPurchaseDate,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Customer) TableName() string { return "customers" }
