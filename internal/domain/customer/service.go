package customer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errors.New("customer not found")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// RecordPurchase upserts the directory row for a phone number and rolls
// the purchase into its totals. Called from order creation.
func (s *Service) RecordPurchase(ctx context.Context, name, phone, whatsapp, city string, amount float64, at time.Time) error {
	existing, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		return err
	}

	if existing == nil {
		now := time.Now()
		return s.repo.Create(ctx, &Customer{
			ID:               uuid.NewString(),
			Name:             name,
			Phone:            phone,
			WhatsApp:         whatsapp,
			City:             city,
			TotalSpent:       amount,
			OrderCount:       1,
			LastPurchaseDate: &at,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	existing.TotalSpent += amount
	existing.OrderCount++
	existing.LastPurchaseDate = &at
	if name != "" {
		existing.Name = name
	}
	if whatsapp != "" {
		existing.WhatsApp = whatsapp
	}
	if city != "" {
		existing.City = city
	}
	existing.UpdatedAt = time.Now()

	return s.repo.Save(ctx, existing)
}

func (s *Service) List(ctx context.Context, search string) ([]Customer, error) {
	return s.repo.List(ctx, search)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}
