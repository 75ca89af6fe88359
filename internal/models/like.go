package models

import "time"

// Like records that Owner liked the post identified by PostID. The unique
// index enforces at most one like per (owner, post) pair.
type Like struct {
	LikeID  uint      `json:"likeid" gorm:"primaryKey;autoIncrement"`
	Owner   string    `json:"owner" gorm:"size:40;index;uniqueIndex:idx_owner_post_like"`
	PostID  uint      `json:"postid" gorm:"index;uniqueIndex:idx_owner_post_like"`
	Created time.Time `json:"created" gorm:"autoCreateTime"`
}

// LikeRequest carries the like/unlike form fields.
type LikeRequest struct {
	PostID uint `form:"postid" validate:"required"`
}
