package customer

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

func (r *Repository) Create(ctx context.Context, c *Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) Save(ctx context.Context, c *Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Customer, error) {
	var c Customer
	tx := r.db.WithContext(ctx).First(&c, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &c, nil
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*Customer, error) {
	var c Customer
	tx := r.db.WithContext(ctx).First(&c, "phone = ?", phone)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &c, nil
}

func (r *Repository) List(ctx context.Context, search string) ([]Customer, error) {
	var customers []Customer
	q := r.db.WithContext(ctx).Order("name ASC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR phone LIKE ? OR city LIKE ?", like, like, like)
	}
	tx := q.Find(&customers)
	return customers, tx.Error
}
