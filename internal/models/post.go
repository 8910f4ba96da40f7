package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is an image post stored in MongoDB. The uploader is referenced by
// username; like and comment edges live in PostgreSQL and are joined at
// read time.
type Post struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Uploader    string             `json:"uploader" bson:"uploader"`
	Description string             `json:"description" bson:"description"`
	Hashtags    []string           `json:"hashtags,omitempty" bson:"hashtags,omitempty"`
	Image       string             `json:"image" bson:"image"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"-" bson:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Description string   `json:"description" validate:"max=140"`
	Hashtags    []string `json:"hashtags" validate:"max=5"`
	Image       string   `json:"image" validate:"required"`
}

// UpdatePostRequest defines the request body for editing an existing post
type UpdatePostRequest struct {
	Description string   `json:"description" validate:"max=140"`
	Hashtags    []string `json:"hashtags" validate:"max=5"`
	Image       string   `json:"image" validate:"required"`
}
