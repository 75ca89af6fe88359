package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/models"
)

// SessionRepository defines the interface for login-session persistence.
type SessionRepository interface {
	CreateSession(session *models.Session) error
	GetSession(id string) (*models.Session, error)
	DeleteSession(id string) error
	DeleteSessionsByUsername(username string) error
}

// GormSessionRepository implements SessionRepository on a relational store.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository.
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// CreateSession stores a new session row.
func (r *GormSessionRepository) CreateSession(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetSession retrieves a live session; expired rows are deleted and reported
// as not found.
func (r *GormSessionRepository) GetSession(id string) (*models.Session, error) {
	var session models.Session
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		r.db.Delete(&models.Session{}, "id = ?", id)
		return nil, gorm.ErrRecordNotFound
	}
	return &session, nil
}

// DeleteSession removes one session row.
func (r *GormSessionRepository) DeleteSession(id string) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}

// DeleteSessionsByUsername removes every session belonging to a user.
func (r *GormSessionRepository) DeleteSessionsByUsername(username string) error {
	return r.db.Where("username = ?", username).Delete(&models.Session{}).Error
}
