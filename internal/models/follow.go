package models

import "time"

// Follow is a directed follow edge: Username1 follows Username2. The unique
// index enforces at most one edge per ordered pair; self edges are rejected
// at the repository layer.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username1 string    `json:"username1" gorm:"size:40;index;uniqueIndex:idx_follow_pair"`
	Username2 string    `json:"username2" gorm:"size:40;index;uniqueIndex:idx_follow_pair"`
	Created   time.Time `json:"created" gorm:"autoCreateTime"`
}

// FollowRequest carries the follow/unfollow form fields.
type FollowRequest struct {
	Username string `form:"username" validate:"required"`
}
