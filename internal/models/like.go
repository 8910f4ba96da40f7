package models

import "time"

// Like is the existence-only edge between a person and a post. Posts carry
// no denormalized counter; this table is counted at read time.
type Like struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	PostID   string `json:"post_id" gorm:"index;uniqueIndex:idx_post_person"` // Mongo ObjectID hex
	PersonID uint   `json:"person_id" gorm:"index;uniqueIndex:idx_post_person"`

	CreatedAt time.Time `json:"created_at"`
}
