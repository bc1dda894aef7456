package inventory

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, s *StockItem) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repository) Save(ctx context.Context, s *StockItem) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*StockItem, error) {
	var s StockItem
	tx := r.db.WithContext(ctx).First(&s, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &s, nil
}

func (r *Repository) GetByProductID(ctx context.Context, productID string) (*StockItem, error) {
	var s StockItem
	tx := r.db.WithContext(ctx).First(&s, "product_id = ?", productID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &s, nil
}

func (r *Repository) List(ctx context.Context) ([]StockItem, error) {
	var items []StockItem
	tx := r.db.WithContext(ctx).Order("product_name ASC").Find(&items)
	return items, tx.Error
}

func (r *Repository) CreateAdjustment(ctx context.Context, a *StockAdjustment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *Repository) ListAdjustments(ctx context.Context, stockID string, limit int) ([]StockAdjustment, error) {
	var adjustments []StockAdjustment
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if stockID != "" {
		q = q.Where("stock_id = ?", stockID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	tx := q.Find(&adjustments)
	return adjustments, tx.Error
}
