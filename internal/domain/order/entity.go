package order

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Item is one order line. Total is always Quantity × Price, recomputed
// by the pricing code rather than trusted from input.
type Item struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// ItemList is stored as a JSON column.
type ItemList []Item

func (l *ItemList) Scan(value interface{}) error {
	if value == nil {
		*l = ItemList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("failed to scan ItemList: %v", value)
}

func (l ItemList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

type Order struct {
	ID      string `gorm:"column:id;primaryKey" json:"id"`
	OrderNo string `gorm:"column:order_no;uniqueIndex" json:"orderId"`

	// customer snapshot at order time
	CustomerName string `gorm:"column:customer_name" json:"customerName"`
	Phone        string `gorm:"column:phone" json:"phone"`
	WhatsApp     string `gorm:"column:whatsapp" json:"whatsapp"`
	City         string `gorm:"column:city" json:"city"`

	Items ItemList `gorm:"column:items;type:text" json:"items"`

	Subtotal    float64 `gorm:"column:subtotal" json:"subtotal"`
	Discount    float64 `gorm:"column:discount" json:"discount"`
	Tax         float64 `gorm:"column:tax" json:"tax"`
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`

	PaymentMode  PaymentMode  `gorm:"column:payment_mode" json:"paymentMode"`
	DeliveryType DeliveryType `gorm:"column:delivery_type" json:"deliveryType"`
	Status       Status       `gorm:"column:status" json:"status"`

	// weak back-reference; empty for walk-in POS sales
	ConvertedFromLead string `gorm:"column:converted_from_lead" json:"convertedFromLead,omitempty"`

	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updatedAt"`
	DeliveredAt *time.Time `gorm:"column:delivered_at" json:"deliveredAt,omitempty"`
}

func (Order) TableName() string { return "orders" }

type PaymentMode string

const (
	PaymentCash PaymentMode = "Cash"
	PaymentUPI  PaymentMode = "UPI"
	PaymentBank PaymentMode = "Bank"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentBank:
		return true
	}
	return false
}

type DeliveryType string

const (
	DeliveryPickup DeliveryType = "Pickup"
	DeliveryLocal  DeliveryType = "Local Delivery"
)

func (d DeliveryType) Valid() bool {
	switch d {
	case DeliveryPickup, DeliveryLocal:
		return true
	}
	return false
}
