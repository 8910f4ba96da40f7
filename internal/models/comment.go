package models

import "time"

// Comment belongs to a post and an author. Only the author may edit or
// delete it.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index"` // Mongo ObjectID hex
	AuthorID  uint      `json:"author_id" gorm:"index"`
	Content   string    `json:"content" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=50"`
}

// UpdateCommentRequest defines the request body for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=50"`
}

// CommentView is the comment projection shown under a post: the row joined
// with its author's username and photo.
type CommentView struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	Photo     string    `json:"photo"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
