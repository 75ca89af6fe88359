package models

import "time"

// Post is an uploaded photo owned by a user. Filename is the generated media
// basename under the upload directory.
type Post struct {
	PostID   uint      `json:"postid" gorm:"primaryKey;autoIncrement"`
	Owner    string    `json:"owner" gorm:"index;size:40"`
	Filename string    `json:"filename"`
	Created  time.Time `json:"created" gorm:"autoCreateTime"`
}

// DeletePostRequest carries the post-delete form fields.
type DeletePostRequest struct {
	PostID uint `form:"postid" validate:"required"`
}
