package repositories

import (
	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/models"
)

// FollowRepository defines the interface for follow-edge data operations.
// Edges form an idempotent set per ordered pair; self edges are rejected.
type FollowRepository interface {
	CreateFollow(follower, followee string) error
	DeleteFollow(follower, followee string) error
	IsFollowing(follower, followee string) (bool, error)
	GetFollowers(username string) ([]string, error)
	GetFollowing(username string) ([]string, error)
	GetNotFollowing(viewer string) ([]string, error)
	GetFollowersCount(username string) (int64, error)
	GetFollowingCount(username string) (int64, error)
}

// GormFollowRepository implements FollowRepository on a relational store.
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a new GormFollowRepository.
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

// CreateFollow records follower -> followee. A self edge is ErrSelfFollow and
// an existing edge is ErrAlreadyFollowing.
func (r *GormFollowRepository) CreateFollow(follower, followee string) error {
	if follower == followee {
		return ErrSelfFollow
	}
	following, err := r.IsFollowing(follower, followee)
	if err != nil {
		return err
	}
	if following {
		return ErrAlreadyFollowing
	}
	return r.db.Create(&models.Follow{Username1: follower, Username2: followee}).Error
}

// DeleteFollow removes follower -> followee; an absent edge is
// ErrFollowNotFound.
func (r *GormFollowRepository) DeleteFollow(follower, followee string) error {
	res := r.db.Where("username1 = ? AND username2 = ?", follower, followee).Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

// IsFollowing checks whether the edge follower -> followee exists.
func (r *GormFollowRepository) IsFollowing(follower, followee string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("username1 = ? AND username2 = ?", follower, followee).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowers lists the usernames following username.
func (r *GormFollowRepository) GetFollowers(username string) ([]string, error) {
	var names []string
	err := r.db.Model(&models.Follow{}).Where("username2 = ?", username).Order("username1").Pluck("username1", &names).Error
	return names, err
}

// GetFollowing lists the usernames that username follows.
func (r *GormFollowRepository) GetFollowing(username string) ([]string, error) {
	var names []string
	err := r.db.Model(&models.Follow{}).Where("username1 = ?", username).Order("username2").Pluck("username2", &names).Error
	return names, err
}

// GetNotFollowing lists every user except the viewer and the viewer's
// followees.
func (r *GormFollowRepository) GetNotFollowing(viewer string) ([]string, error) {
	var names []string
	err := r.db.Model(&models.User{}).
		Where("username <> ?", viewer).
		Where("username NOT IN (?)",
			r.db.Model(&models.Follow{}).Select("username2").Where("username1 = ?", viewer),
		).
		Order("username").
		Pluck("username", &names).Error
	return names, err
}

// GetFollowersCount counts the users following username.
func (r *GormFollowRepository) GetFollowersCount(username string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("username2 = ?", username).Count(&count).Error
	return count, err
}

// GetFollowingCount counts the users that username follows.
func (r *GormFollowRepository) GetFollowingCount(username string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("username1 = ?", username).Count(&count).Error
	return count, err
}
