package models

import "time"

// Notification is created when someone follows, likes or comments on the
// recipient's content. Self-directed events are skipped at the service
// layer.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:20"` // follow | like | comment
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	PostID      string    `json:"post_id,omitempty"` // empty for follow notifications
	Message     string    `json:"message"`
	Read        bool      `json:"read" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}
