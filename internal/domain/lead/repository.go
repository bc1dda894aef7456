package lead

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// List returns the full collection in insertion order.
func (r *Repository) List(ctx context.Context) ([]Lead, error) {
	var leads []Lead
	tx := r.db.WithContext(ctx).Order("created_at ASC").Find(&leads)
	return leads, tx.Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Lead, error) {
	var l Lead
	tx := r.db.WithContext(ctx).First(&l, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &l, nil
}

// UpdateStatus is the only mutation besides create; every transition
// refreshes updated_at.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status Stage) error {
	tx := r.db.WithContext(ctx).Model(&Lead{}).Where("id = ?", id).Updates(map[string]interface{}{
		"lead_status": status,
		"updated_at":  time.Now(),
	})
	return tx.Error
}

func (r *Repository) AppendNote(ctx context.Context, id string, note string) error {
	tx := r.db.WithContext(ctx).Model(&Lead{}).Where("id = ?", id).Updates(map[string]interface{}{
		"notes":      note,
		"updated_at": time.Now(),
	})
	return tx.Error
}

func (r *Repository) CountByStage(ctx context.Context) (map[Stage]int, error) {
	type row struct {
		LeadStatus Stage
		Count      int
	}
	var rows []row
	tx := r.db.WithContext(ctx).Model(&Lead{}).
		Select("lead_status, COUNT(*) as count").Group("lead_status").Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	counts := make(map[Stage]int, len(rows))
	for _, rw := range rows {
		counts[rw.LeadStatus] = rw.Count
	}
	return counts, nil
}
