package activity

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crackershop/internal/domain/whatsapp"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *Repository) Recent(ctx context.Context, limit int) ([]Event, error) {
	var events []Event
	tx := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&events)
	return events, tx.Error
}

type Service struct {
	repo *Repository
	hub  *Hub
}

func NewService(repo *Repository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// Record persists an event and pushes it to connected dashboards.
// Callers treat the feed as best-effort, so failures only log.
func (s *Service) Record(ctx context.Context, event, message, refID string) {
	e := &Event{
		ID:        uuid.NewString(),
		Event:     event,
		Message:   message,
		RefID:     refID,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		log.Printf("event=activity_record_failed activity=%s error=%v", event, err)
		return
	}
	if s.hub != nil {
		s.hub.Broadcast(e)
	}
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.Recent(ctx, limit)
}

// RecordInbound feeds a parsed WhatsApp message into the activity feed.
func (s *Service) RecordInbound(msg whatsapp.InboundMessage) {
	who := msg.ProfileName
	if who == "" {
		who = msg.From
	}
	s.Record(context.Background(), "whatsapp_message",
		fmt.Sprintf("WhatsApp from %s: %s", who, msg.Content), msg.MessageID)
}

// RecordStatus feeds a WhatsApp delivery receipt into the activity feed.
func (s *Service) RecordStatus(update whatsapp.StatusUpdate) {
	s.Record(context.Background(), "whatsapp_status",
		fmt.Sprintf("Message %s %s", update.MessageID, update.Status), update.MessageID)
}
