package models

import "time"

// Person is a registered account. Follow edges and liked posts are not
// mapped as collection fields; the membership indexes in the follows and
// likes tables are authoritative.
type Person struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:20;uniqueIndex"`
	Email     string    `json:"-" gorm:"uniqueIndex"`
	Password  string    `json:"-"` // bcrypt hash
	Firstname string    `json:"firstname" gorm:"size:20"`
	Lastname  string    `json:"lastname" gorm:"size:20"`
	Bio       string    `json:"bio" gorm:"size:140"`
	Photo     string    `json:"photo"`
	Validated bool      `json:"validated" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// RegisterRequest defines the request body for registering a new person
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=20"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Firstname string `json:"firstname" validate:"required,min=1,max=20"`
	Lastname  string `json:"lastname" validate:"required,min=1,max=20"`
}

// EditPersonRequest defines the request body for editing one's own profile
type EditPersonRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=20"`
	Email     string `json:"email" validate:"required,email"`
	Firstname string `json:"firstname" validate:"required,min=1,max=20"`
	Lastname  string `json:"lastname" validate:"required,min=1,max=20"`
	Bio       string `json:"bio" validate:"max=140"`
	Photo     string `json:"photo"`
}

// PersonInfo is the read-only profile projection returned to viewers.
type PersonInfo struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Validated bool   `json:"validated"`
	Photo     string `json:"photo"`
	Follow    bool   `json:"follow"` // does the viewer follow this person
}

// PersonSuggestion is the compact projection used by the suggestions feed.
type PersonSuggestion struct {
	Username string `json:"username"`
	Photo    string `json:"photo"`
}

// PersonStats aggregates the profile counters at read time.
type PersonStats struct {
	Followers  int64 `json:"followers"`
	Followings int64 `json:"followings"`
	Posts      int64 `json:"posts"`
}
