package repositories

import (
	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/models"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(postid uint) (*models.Post, error)
	GetPostIDsByOwner(username string) ([]uint, error)
	GetAllPostIDs() ([]uint, error)
	DeletePostCascade(postid uint) (string, error)
}

// GormPostRepository implements PostRepository on a relational store.
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository.
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// CreatePost creates a new post.
func (r *GormPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID.
func (r *GormPostRepository) GetPostByID(postid uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, postid).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostIDsByOwner retrieves a user's post IDs, oldest first.
func (r *GormPostRepository) GetPostIDsByOwner(username string) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Post{}).Where("owner = ?", username).Order("post_id").Pluck("post_id", &ids).Error
	return ids, err
}

// GetAllPostIDs retrieves every post ID, newest first.
func (r *GormPostRepository) GetAllPostIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Post{}).Order("post_id DESC").Pluck("post_id", &ids).Error
	return ids, err
}

// DeletePostCascade deletes the post with its comments and likes in one
// transaction. Ownership must already be verified by the caller. It returns
// the media basename for the caller to remove after commit.
func (r *GormPostRepository) DeletePostCascade(postid uint) (string, error) {
	var filename string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postid).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postid).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postid).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Post{}, postid).Error; err != nil {
			return err
		}
		filename = post.Filename
		return nil
	})
	if err != nil {
		return "", err
	}
	return filename, nil
}
