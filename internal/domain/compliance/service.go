package compliance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCertificateNotFound = errors.New("certificate not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, c *Certificate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) List(ctx context.Context) ([]Certificate, error) {
	var certs []Certificate
	tx := r.db.WithContext(ctx).Order("expiry_date ASC").Find(&certs)
	return certs, tx.Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Certificate, error) {
	var c Certificate
	tx := r.db.WithContext(ctx).First(&c, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &c, nil
}

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, c *Certificate) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()
	c.Status = c.StatusAt(time.Now())
	return s.repo.Create(ctx, c)
}

// List returns all certificates with derived status filled in.
func (s *Service) List(ctx context.Context) ([]Certificate, error) {
	certs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range certs {
		certs[i].Status = certs[i].StatusAt(now)
	}
	return certs, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Certificate, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCertificateNotFound
	}
	c.Status = c.StatusAt(time.Now())
	return c, nil
}

// Alerts returns certificates that need attention: expired first, then
// expiring within the window.
func (s *Service) Alerts(ctx context.Context) ([]Certificate, error) {
	certs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Certificate, 0)
	for _, c := range certs {
		if c.Status == StatusExpired || c.Status == StatusExpiring {
			out = append(out, c)
		}
	}
	return out, nil
}
