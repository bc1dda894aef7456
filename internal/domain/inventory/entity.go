package inventory

import "time"

// StockStatus is derived from the counts, never stored authoritative:
// recomputed on every adjustment.
type StockStatus string

const (
	StatusSafe      StockStatus = "safe"
	StatusWarning   StockStatus = "warning"
	StatusCritical  StockStatus = "critical"
	StatusOverstock StockStatus = "overstock"
)

// StockItem tracks one SKU. LegalLimit is the regulatory ceiling from
// the explosives license — distinct from the commercial min/max/reorder
// thresholds. Exceeding it is surfaced as a warning, never blocked.
type StockItem struct {
	ID          string `gorm:"column:id;primaryKey" json:"id"`
	ProductID   string `gorm:"column:product_id;index" json:"productId"`
	ProductName string `gorm:"column:product_name" json:"productName"`
	SKU         string `gorm:"column:sku;uniqueIndex" json:"sku"`

	CurrentStock    int `gorm:"column:current_stock" json:"currentStock"`
	MinAllowedStock int `gorm:"column:min_allowed_stock" json:"minAllowedStock"`
	MaxAllowedStock int `gorm:"column:max_allowed_stock" json:"maxAllowedStock"`
	LegalLimit      int `gorm:"column:legal_limit" json:"legalLimit"`
	ReorderLevel    int `gorm:"column:reorder_level" json:"reorderLevel"`

	Location string      `gorm:"column:location" json:"location"`
	Status   StockStatus `gorm:"column:status" json:"status"`

	LastUpdated time.Time `gorm:"column:last_updated" json:"lastUpdated"`
}

func (StockItem) TableName() string { return "stock_items" }

// ComputeStatus classifies the item: over the legal limit wins, then
// critical at or below reorder, warning at or below minimum allowed.
func (s *StockItem) ComputeStatus() StockStatus {
	switch {
	case s.LegalLimit > 0 && s.CurrentStock > s.LegalLimit:
		return StatusOverstock
	case s.CurrentStock <= s.ReorderLevel:
		return StatusCritical
	case s.CurrentStock <= s.MinAllowedStock:
		return StatusWarning
	default:
		return StatusSafe
	}
}

// OverLegalLimit reports the regulatory violation the compliance view
// warns about.
func (s *StockItem) OverLegalLimit() bool {
	return s.LegalLimit > 0 && s.CurrentStock > s.LegalLimit
}

type AdjustmentType string

const (
	AdjustmentIn         AdjustmentType = "in"
	AdjustmentOut        AdjustmentType = "out"
	AdjustmentCorrection AdjustmentType = "adjustment"
	AdjustmentLegalCheck AdjustmentType = "legal_check"
)

func (t AdjustmentType) Valid() bool {
	switch t {
	case AdjustmentIn, AdjustmentOut, AdjustmentCorrection, AdjustmentLegalCheck:
		return true
	}
	return false
}

// StockAdjustment is one ledger row; the ledger is append-only.
type StockAdjustment struct {
	ID         string         `gorm:"column:id;primaryKey" json:"id"`
	StockID    string         `gorm:"column:stock_id;index" json:"stockId"`
	Type       AdjustmentType `gorm:"column:type" json:"type"`
	Quantity   int            `gorm:"column:quantity" json:"quantity"`
	Reason     string         `gorm:"column:reason" json:"reason"`
	AdjustedBy string         `gorm:"column:adjusted_by" json:"adjustedBy"`
	CreatedAt  time.Time      `gorm:"column:created_at" json:"timestamp"`
}

func (StockAdjustment) TableName() string { return "stock_adjustments" }
