package models

import "time"

// CommentView is a comment row as rendered inside a post view.
type CommentView struct {
	CommentID uint   `json:"commentid"`
	Owner     string `json:"owner"`
	Text      string `json:"text"`
}

// PostView is a fully assembled post for display: owner avatar, media URL,
// comment list in creation order, like count, and a humanized age.
type PostView struct {
	PostID      uint          `json:"postid"`
	Owner       string        `json:"owner"`
	OwnerImgURL string        `json:"owner_img_url"`
	ImgURL      string        `json:"img_url"`
	Created     string        `json:"created"`
	CreatedAt   time.Time     `json:"created_at"`
	Comments    []CommentView `json:"comments"`
	Likes       int64         `json:"likes"`
}

// UserCard is a user row inside follower/following/explore listings.
type UserCard struct {
	Username               string `json:"username"`
	UserImgURL             string `json:"user_img_url"`
	LognameFollowsUsername bool   `json:"logname_follows_username"`
}

// ProfileView is the assembled /users/<username>/ page context.
type ProfileView struct {
	Username               string     `json:"username"`
	Fullname               string     `json:"fullname"`
	UserImgURL             string     `json:"user_img_url"`
	Posts                  []PostView `json:"posts"`
	TotalPosts             int        `json:"total_posts"`
	Followers              int64      `json:"followers"`
	Following              int64      `json:"following"`
	LognameFollowsUsername bool       `json:"logname_follows_username"`
}
