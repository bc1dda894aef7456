package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// EnsureIndexes creates the partial unique index that enforces the
// one-order-per-lead rule. Partial because walk-in POS orders carry no
// lead reference; works on both PostgreSQL and SQLite.
func (r *Repository) EnsureIndexes() error {
	return r.db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_order_per_lead
		 ON orders(converted_from_lead) WHERE converted_from_lead <> ''`,
	).Error
}

func (r *Repository) Create(ctx context.Context, o *Order) error {
	tx := r.db.WithContext(ctx).Create(o)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrLeadAlreadyHasOrder
		}
		return tx.Error
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	tx := r.db.WithContext(ctx).First(&o, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &o, nil
}

// List returns orders newest-first with optional status and payment
// mode filters.
func (r *Repository) List(ctx context.Context, status, paymentMode string) ([]Order, error) {
	var orders []Order
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if paymentMode != "" {
		q = q.Where("payment_mode = ?", paymentMode)
	}
	tx := q.Find(&orders)
	return orders, tx.Error
}

func (r *Repository) ListAll(ctx context.Context) ([]Order, error) {
	var orders []Order
	tx := r.db.WithContext(ctx).Order("created_at ASC").Find(&orders)
	return orders, tx.Error
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status Status, deliveredAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if deliveredAt != nil {
		updates["delivered_at"] = *deliveredAt
	}
	tx := r.db.WithContext(ctx).Model(&Order{}).Where("id = ?", id).Updates(updates)
	return tx.Error
}

func (r *Repository) CountByStatus(ctx context.Context) (map[Status]int, error) {
	type row struct {
		Status Status
		Count  int
	}
	var rows []row
	tx := r.db.WithContext(ctx).Model(&Order{}).
		Select("status, COUNT(*) as count").Group("status").Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	counts := make(map[Status]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

// isUniqueViolation covers both backends: pgconn for PostgreSQL and the
// sqlite error text for local/dev.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
