package models

import "time"

// Follow is one directed edge of the social graph: follower receives the
// followee's posts in their home feed. A mutual follow is two rows. The
// composite unique index makes the (follower, followee) pair the single
// authoritative membership check.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followee"`
	FolloweeID uint      `json:"followee_id" gorm:"index;uniqueIndex:idx_follower_followee"`
	CreatedAt  time.Time `json:"created_at"`
}
