package repositories

import (
	"strings"

	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/models"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(commentid uint) (*models.Comment, error)
	GetCommentsByPostID(postid uint) ([]models.Comment, error)
	DeleteComment(commentid uint) error
}

// GormCommentRepository implements CommentRepository on a relational store.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// CreateComment creates a new comment; empty text is ErrEmptyComment.
func (r *GormCommentRepository) CreateComment(comment *models.Comment) error {
	if strings.TrimSpace(comment.Text) == "" {
		return ErrEmptyComment
	}
	return r.db.Create(comment).Error
}

// GetCommentByID retrieves a comment by ID.
func (r *GormCommentRepository) GetCommentByID(commentid uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, commentid).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostID retrieves a post's comments in creation order.
func (r *GormCommentRepository) GetCommentsByPostID(postid uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("post_id = ?", postid).Order("comment_id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteComment deletes a comment. Ownership must already be verified by the
// caller.
func (r *GormCommentRepository) DeleteComment(commentid uint) error {
	res := r.db.Delete(&models.Comment{}, commentid)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
