package inventory

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateItem(ctx context.Context, item *StockItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.Status = item.ComputeStatus()
	item.LastUpdated = time.Now()
	return s.repo.Create(ctx, item)
}

func (s *Service) List(ctx context.Context) ([]StockItem, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*StockItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrStockNotFound
	}
	return item, nil
}

// Adjust applies a stock movement and appends a ledger row. In/out
// carry positive quantities; a correction carries the signed delta.
// Going over the legal limit is allowed — the violation is a warning
// the views surface, not a block — but stock never goes negative.
func (s *Service) Adjust(ctx context.Context, stockID string, typ AdjustmentType, quantity int, reason, adjustedBy string) (*StockItem, error) {
	if !typ.Valid() {
		return nil, ErrInvalidAdjustment
	}
	if quantity == 0 && typ != AdjustmentLegalCheck {
		return nil, ErrZeroQuantity
	}

	item, err := s.GetByID(ctx, stockID)
	if err != nil {
		return nil, err
	}

	delta := 0
	switch typ {
	case AdjustmentIn:
		delta = abs(quantity)
	case AdjustmentOut:
		delta = -abs(quantity)
	case AdjustmentCorrection:
		delta = quantity
	case AdjustmentLegalCheck:
		// audit entry only, no movement
	}

	if item.CurrentStock+delta < 0 {
		return nil, ErrInsufficientStock
	}

	item.CurrentStock += delta
	item.Status = item.ComputeStatus()
	item.LastUpdated = time.Now()

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}

	adj := &StockAdjustment{
		ID:         uuid.NewString(),
		StockID:    item.ID,
		Type:       typ,
		Quantity:   quantity,
		Reason:     reason,
		AdjustedBy: adjustedBy,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.CreateAdjustment(ctx, adj); err != nil {
		return nil, err
	}

	if item.OverLegalLimit() {
		log.Printf("legal_limit_exceeded sku=%s current=%d limit=%d",
			item.SKU, item.CurrentStock, item.LegalLimit)
	}

	return item, nil
}

// DeductForSale is the POS hook: best-effort out-movement for each sold
// line. Missing stock rows are skipped, not errors — not every catalog
// product is stock-tracked.
func (s *Service) DeductForSale(ctx context.Context, productID string, quantity int, ref string) error {
	item, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}
	_, err = s.Adjust(ctx, item.ID, AdjustmentOut, quantity, fmt.Sprintf("POS sale %s", ref), "pos")
	return err
}

// ListAdjustments returns the ledger, newest first.
func (s *Service) ListAdjustments(ctx context.Context, stockID string, limit int) ([]StockAdjustment, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListAdjustments(ctx, stockID, limit)
}

// LegalWarnings lists every item currently above its legal limit.
func (s *Service) LegalWarnings(ctx context.Context) ([]StockItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StockItem, 0)
	for _, it := range items {
		if it.OverLegalLimit() {
			out = append(out, it)
		}
	}
	return out, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
