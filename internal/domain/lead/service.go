package lead

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crackershop/internal/domain/order"
)

// OrderCreator is the slice of the order service the conversion gate
// needs.
type OrderCreator interface {
	Create(ctx context.Context, o *order.Order) error
}

// ActivityRecorder pushes events to the dashboard feed. Optional.
type ActivityRecorder interface {
	Record(ctx context.Context, event, message, refID string)
}

type Service struct {
	repo     *Repository
	orders   OrderCreator
	activity ActivityRecorder

	// per-lead locks so concurrent status changes and conversions on
	// the same record serialize instead of losing updates
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(repo *Repository, orders OrderCreator, activity ActivityRecorder) *Service {
	return &Service{
		repo:     repo,
		orders:   orders,
		activity: activity,
		locks:    make(map[string]*sync.Mutex),
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

// Create stores a new lead. Status always starts at New Lead; the
// source defaults to Website when absent or unknown.
func (s *Service) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	source := Source(req.LeadSource)
	if !source.Valid() {
		source = SourceWebsite
	}

	now := time.Now()
	l := &Lead{
		ID:                uuid.NewString(),
		CustomerName:      req.CustomerName,
		Phone:             req.Phone,
		WhatsApp:          req.WhatsApp,
		City:              req.City,
		InterestedProduct: req.InterestedProduct,
		Quantity:          req.Quantity,
		RequirementDate:   req.RequirementDate,
		LeadSource:        source,
		LeadStatus:        StageNew,
		Notes:             req.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Record(ctx, "lead.created",
			fmt.Sprintf("New enquiry from %s (%s)", l.CustomerName, l.LeadSource), l.ID)
	}

	return l, nil
}

// List returns the filtered view of the collection; the underlying
// collection is never mutated and output keeps insertion order.
func (s *Service) List(ctx context.Context, opts FilterOptions) ([]Lead, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(leads, opts), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	return l, nil
}

// Advance moves the lead one step along the pipeline. Terminal stages
// have no next step and report ErrTerminalStage.
func (s *Service) Advance(ctx context.Context, id string) (*Lead, error) {
	defer s.lock(id)()

	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, ok := l.LeadStatus.Next()
	if !ok {
		return nil, ErrTerminalStage
	}

	return s.applyStatus(ctx, l, next)
}

// Reject moves any non-terminal lead to the absorbing Rejected stage.
func (s *Service) Reject(ctx context.Context, id string, reason string) (*Lead, error) {
	defer s.lock(id)()

	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.LeadStatus.Terminal() {
		return nil, ErrTerminalStage
	}

	l, err = s.applyStatus(ctx, l, StageRejected)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		note := l.Notes
		if note != "" {
			note += "\n"
		}
		note += "Rejected: " + reason
		if err := s.repo.AppendNote(ctx, id, note); err == nil {
			l.Notes = note
		}
	}
	return l, nil
}

// UpdateStatus is the default, transition-table-checked status change:
// one step forward or a reject.
func (s *Service) UpdateStatus(ctx context.Context, id string, target Stage) (*Lead, error) {
	if !target.Valid() {
		return nil, ErrUnknownStage
	}

	defer s.lock(id)()

	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(l.LeadStatus, target) {
		return nil, ErrIllegalTransition
	}

	return s.applyStatus(ctx, l, target)
}

// OverrideStatus is the privileged manual jump the dashboard status
// menu exposes: any stage to any stage, including backward moves. It is
// deliberately a separate operation so the default path stays checked.
func (s *Service) OverrideStatus(ctx context.Context, id string, target Stage) (*Lead, error) {
	if !target.Valid() {
		return nil, ErrUnknownStage
	}

	defer s.lock(id)()

	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.applyStatus(ctx, l, target)
}

func (s *Service) applyStatus(ctx context.Context, l *Lead, target Stage) (*Lead, error) {
	if err := s.repo.UpdateStatus(ctx, l.ID, target); err != nil {
		return nil, err
	}
	l.LeadStatus = target
	l.UpdatedAt = time.Now()

	if s.activity != nil {
		s.activity.Record(ctx, "lead.status",
			fmt.Sprintf("Lead %s moved to %s", l.CustomerName, target), l.ID)
	}
	return l, nil
}

// ConvertToOrder is the one-way lead → order handoff. The lead must be
// Confirmed; the resulting order carries a back-reference to the lead
// and the lead is frozen at Converted to Order. A second call fails:
// the status gate catches it, and the unique index on
// converted_from_lead backstops a concurrent racer.
func (s *Service) ConvertToOrder(ctx context.Context, id string, req *ConvertRequest) (*order.Order, error) {
	defer s.lock(id)()

	l, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.IsConverted() {
		return nil, ErrAlreadyConverted
	}
	if l.LeadStatus != StageConfirmed {
		return nil, ErrNotConfirmed
	}

	items, subtotal, err := order.PriceItems(req.Items)
	if err != nil {
		return nil, err
	}

	discount := decimal.NewFromFloat(req.Discount)
	tax := decimal.NewFromFloat(req.Tax)
	total := order.Totals(subtotal, discount, tax)

	subF, _ := subtotal.Float64()
	disF, _ := discount.Round(2).Float64()
	taxF, _ := tax.Round(2).Float64()
	totF, _ := total.Float64()

	o := &order.Order{
		CustomerName:      l.CustomerName,
		Phone:             l.Phone,
		WhatsApp:          l.WhatsApp,
		City:              l.City,
		Items:             items,
		Subtotal:          subF,
		Discount:          disF,
		Tax:               taxF,
		TotalAmount:       totF,
		PaymentMode:       req.PaymentMode,
		DeliveryType:      req.DeliveryType,
		ConvertedFromLead: l.ID,
	}

	if err := s.orders.Create(ctx, o); err != nil {
		if err == order.ErrLeadAlreadyHasOrder {
			return nil, ErrAlreadyConverted
		}
		return nil, err
	}

	if _, err := s.applyStatus(ctx, l, StageConverted); err != nil {
		// order exists; surface the lead update failure rather than
		// pretending the conversion did not happen
		return o, err
	}

	if s.activity != nil {
		s.activity.Record(ctx, "lead.converted",
			fmt.Sprintf("Lead %s converted to order %s", l.CustomerName, o.OrderNo), o.ID)
	}

	return o, nil
}

// Stats returns lead counts per stage for the funnel report.
func (s *Service) Stats(ctx context.Context) (map[Stage]int, error) {
	return s.repo.CountByStage(ctx)
}
