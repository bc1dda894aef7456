package catalog

import "time"

// Product is a catalog entry. MRP vs selling price drives the POS
// discount line; the PESO fields are compliance metadata carried for
// display and reports, not enforced here.
type Product struct {
	ID               string `gorm:"column:id;primaryKey" json:"id"`
	Name             string `gorm:"column:name" json:"name"`
	ShortDescription string `gorm:"column:short_description" json:"shortDescription"`
	Category         string `gorm:"column:category" json:"category"`
	Brand            string `gorm:"column:brand" json:"brand"`
	SKU              string `gorm:"column:sku;uniqueIndex" json:"sku"`

	MRP           float64 `gorm:"column:mrp" json:"mrp"`
	SellingPrice  float64 `gorm:"column:selling_price" json:"sellingPrice"`
	CostPrice     float64 `gorm:"column:cost_price" json:"costPrice"`
	GSTPercentage float64 `gorm:"column:gst_percentage" json:"gstPercentage"`

	PESOCertificationNo string `gorm:"column:peso_certification_no" json:"pesoCertificationNo"`
	GreenCracker        bool   `gorm:"column:green_cracker" json:"greenCracker"`
	RequiresLicense     bool   `gorm:"column:requires_license" json:"requiresLicense"`

	Active    bool      `gorm:"column:active" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Product) TableName() string { return "products" }
