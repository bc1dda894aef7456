package order

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ActivityRecorder pushes events to the dashboard feed. Optional.
type ActivityRecorder interface {
	Record(ctx context.Context, event, message, refID string)
}

// CustomerBook keeps the customer directory in sync with sales. Optional.
type CustomerBook interface {
	RecordPurchase(ctx context.Context, name, phone, whatsapp, city string, amount float64, at time.Time) error
}

type Service struct {
	repo      *Repository
	customers CustomerBook
	activity  ActivityRecorder

	// per-order locks so concurrent status changes on the same record
	// serialize instead of losing updates
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(repo *Repository, customers CustomerBook, activity ActivityRecorder) *Service {
	return &Service{
		repo:      repo,
		customers: customers,
		activity:  activity,
		locks:     make(map[string]*sync.Mutex),
	}
}

func (s *Service) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Create persists an order built by the conversion gate or the POS
// checkout. ID, order number and timestamps are stamped here; the
// customer book and activity feed are best-effort side effects.
func (s *Service) Create(ctx context.Context, o *Order) error {
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	if !o.PaymentMode.Valid() {
		return fmt.Errorf("%w: payment mode %q", ErrInvalidStatus, o.PaymentMode)
	}
	if !o.DeliveryType.Valid() {
		o.DeliveryType = DeliveryPickup
	}

	now := time.Now()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.OrderNo == "" {
		o.OrderNo = newOrderNo(now)
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	o.CreatedAt = now
	o.UpdatedAt = now

	if err := s.repo.Create(ctx, o); err != nil {
		return err
	}

	if s.customers != nil && o.Phone != "" {
		_ = s.customers.RecordPurchase(ctx, o.CustomerName, o.Phone, o.WhatsApp, o.City, o.TotalAmount, now)
	}
	if s.activity != nil {
		s.activity.Record(ctx, "order.created",
			fmt.Sprintf("Order %s created for %s (₹%.2f)", o.OrderNo, o.CustomerName, o.TotalAmount), o.ID)
	}

	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

type ListFilter struct {
	Status      string
	PaymentMode string
	Search      string
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Order, error) {
	orders, err := s.repo.List(ctx, f.Status, f.PaymentMode)
	if err != nil {
		return nil, err
	}
	if f.Search == "" {
		return orders, nil
	}

	term := strings.ToLower(f.Search)
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.CustomerName), term) ||
			strings.Contains(strings.ToLower(o.Phone), term) ||
			strings.Contains(strings.ToLower(o.OrderNo), term) {
			out = append(out, o)
		}
	}
	return out, nil
}

// UpdateStatus moves an order along Pending → Packed → Delivered, with
// Cancelled reachable from Pending or Packed only. DeliveredAt is
// stamped when the order reaches Delivered.
func (s *Service) UpdateStatus(ctx context.Context, id string, newStatus Status) (*Order, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	unlock := s.lock(id)
	defer unlock()

	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(o.Status, newStatus) {
		return nil, ErrIllegalTransition
	}

	var deliveredAt *time.Time
	if newStatus == StatusDelivered {
		now := time.Now()
		deliveredAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus, deliveredAt); err != nil {
		return nil, err
	}

	o.Status = newStatus
	o.DeliveredAt = deliveredAt
	o.UpdatedAt = time.Now()

	if s.activity != nil {
		s.activity.Record(ctx, "order.status",
			fmt.Sprintf("Order %s marked %s", o.OrderNo, newStatus), o.ID)
	}

	return o, nil
}

func (s *Service) CountByStatus(ctx context.Context) (map[Status]int, error) {
	return s.repo.CountByStatus(ctx)
}

func newOrderNo(now time.Time) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%d-%s", now.Year(), token)
}
