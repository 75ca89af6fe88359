package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/models"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)
	GetUsers() ([]models.User, error)
	UpdateProfile(username, fullname, email, avatar string) error
	UpdatePassword(username, credential string) error
	DeleteUserCascade(username string) ([]string, error)
}

// GormUserRepository implements UserRepository on a relational store.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// CreateUser creates a new user; a taken username is ErrUsernameTaken.
func (r *GormUserRepository) CreateUser(user *models.User) error {
	err := r.db.First(&models.User{}, "username = ?", user.Username).Error
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(user).Error
}

// GetUserByUsername retrieves a user by primary key.
func (r *GormUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsers retrieves all users.
func (r *GormUserRepository) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile updates fullname and email; an empty avatar keeps the
// existing one.
func (r *GormUserRepository) UpdateProfile(username, fullname, email, avatar string) error {
	updates := map[string]interface{}{
		"fullname": fullname,
		"email":    email,
	}
	if avatar != "" {
		updates["filename"] = avatar
	}
	res := r.db.Model(&models.User{}).Where("username = ?", username).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdatePassword replaces the stored credential string.
func (r *GormUserRepository) UpdatePassword(username, credential string) error {
	res := r.db.Model(&models.User{}).Where("username = ?", username).Update("password", credential)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteUserCascade deletes the user and everything hanging off them in one
// transaction: owned posts with their comments and likes, comments and likes
// the user left elsewhere, follow edges in both directions, and sessions.
// It returns the distinct media basenames (post uploads plus avatar) that the
// caller must remove from disk after the transaction commits.
func (r *GormUserRepository) DeleteUserCascade(username string) ([]string, error) {
	var files []string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "username = ?", username).Error; err != nil {
			return err
		}

		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("owner = ?", username).Pluck("post_id", &postIDs).Error; err != nil {
			return fmt.Errorf("collect posts: %w", err)
		}
		var postFiles []string
		if err := tx.Model(&models.Post{}).Where("owner = ?", username).Pluck("filename", &postFiles).Error; err != nil {
			return fmt.Errorf("collect post files: %w", err)
		}

		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("owner = ?", username).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner = ?", username).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner = ?", username).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("username1 = ? OR username2 = ?", username, username).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("username = ?", username).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.User{}, "username = ?", username).Error; err != nil {
			return err
		}

		files = uniqueFilenames(append(postFiles, user.Filename))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// uniqueFilenames drops empties and duplicates, preserving first-seen order.
func uniqueFilenames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
