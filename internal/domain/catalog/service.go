package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	productCacheKey = "catalog:products"
	cacheTTL        = 5 * time.Minute
)

// Service fronts the product repository with an optional Redis
// read-through cache on the full list; writes invalidate it.
type Service struct {
	repo *Repository
	rdb  *redis.Client
}

func NewService(repo *Repository, rdb *redis.Client) *Service {
	return &Service{repo: repo, rdb: rdb}
}

func (s *Service) Create(ctx context.Context, p *Product) error {
	now := time.Now()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Active = true
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) Update(ctx context.Context, p *Product) error {
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// ListFilter narrows the catalog view the way the POS grid does:
// category chip plus a free-text search over name and description.
type ListFilter struct {
	Category   string
	Search     string
	ActiveOnly bool
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Product, error) {
	products, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(f.Search)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.ActiveOnly && !p.Active {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.ShortDescription), term) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) listAll(ctx context.Context) ([]Product, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, productCacheKey).Bytes(); err == nil {
			var cached []Product
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(products); err == nil {
			s.rdb.Set(ctx, productCacheKey, raw, cacheTTL)
		}
	}

	return products, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.Del(ctx, productCacheKey)
	}
}
