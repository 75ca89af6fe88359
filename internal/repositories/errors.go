package repositories

import "errors"

// Sentinel errors surfaced by the repositories. Handlers map these onto the
// HTTP status vocabulary; gorm.ErrRecordNotFound covers missing rows.
var (
	ErrUsernameTaken    = errors.New("username already exists")
	ErrAlreadyLiked     = errors.New("post already liked by this user")
	ErrLikeNotFound     = errors.New("like not found")
	ErrSelfFollow       = errors.New("cannot follow self")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrFollowNotFound   = errors.New("follow relationship not found")
	ErrEmptyComment     = errors.New("comment text is empty")
)
