package repositories

import (
	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/models"
)

// LikeRepository defines the interface for like data operations. Likes form
// an idempotent set per (owner, post): creating an existing like or deleting
// an absent one is a conflict, never a silent no-op.
type LikeRepository interface {
	CreateLike(owner string, postid uint) error
	DeleteLike(owner string, postid uint) error
	HasUserLikedPost(owner string, postid uint) (bool, error)
	GetLikesCountByPostID(postid uint) (int64, error)
}

// GormLikeRepository implements LikeRepository on a relational store.
type GormLikeRepository struct {
	db *gorm.DB
}

// NewGormLikeRepository creates a new GormLikeRepository.
func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// CreateLike records a like; a duplicate is ErrAlreadyLiked.
func (r *GormLikeRepository) CreateLike(owner string, postid uint) error {
	liked, err := r.HasUserLikedPost(owner, postid)
	if err != nil {
		return err
	}
	if liked {
		return ErrAlreadyLiked
	}
	return r.db.Create(&models.Like{Owner: owner, PostID: postid}).Error
}

// DeleteLike removes a like; an absent one is ErrLikeNotFound.
func (r *GormLikeRepository) DeleteLike(owner string, postid uint) error {
	res := r.db.Where("owner = ? AND post_id = ?", owner, postid).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

// HasUserLikedPost checks whether owner has liked the post.
func (r *GormLikeRepository) HasUserLikedPost(owner string, postid uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("owner = ? AND post_id = ?", owner, postid).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikesCountByPostID counts the likes on a post.
func (r *GormLikeRepository) GetLikesCountByPostID(postid uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postid).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
