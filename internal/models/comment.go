package models

import "time"

// Comment is a comment by Owner on the post identified by PostID.
type Comment struct {
	CommentID uint      `json:"commentid" gorm:"primaryKey;autoIncrement"`
	Owner     string    `json:"owner" gorm:"index;size:40"`
	PostID    uint      `json:"postid" gorm:"index"`
	Text      string    `json:"text"`
	Created   time.Time `json:"created" gorm:"autoCreateTime"`
}

// CreateCommentRequest carries the comment-creation form fields.
type CreateCommentRequest struct {
	PostID uint   `form:"postid" validate:"required"`
	Text   string `form:"text" validate:"required"`
}

// DeleteCommentRequest carries the comment-delete form fields.
type DeleteCommentRequest struct {
	CommentID uint `form:"commentid" validate:"required"`
}
