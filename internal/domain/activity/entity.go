package activity

import "time"

// Event is one row in the dashboard activity feed: something happened
// to a lead, an order, stock or a message, with a reference back to it.
type Event struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Event     string    `gorm:"column:event;index" json:"event"`
	Message   string    `gorm:"column:message" json:"message"`
	RefID     string    `gorm:"column:ref_id" json:"refId"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"createdAt"`
}

func (Event) TableName() string { return "activity_events" }
