package repositories

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/models"
	"github.com/appdev-labs/photofeed/internal/storage"
)

// ViewRepository assembles the read-side display records: posts joined with
// their owner avatar, comment list, like count and humanized age, plus the
// profile, follower, following and explore listings.
type ViewRepository interface {
	GetPostView(postid uint) (*models.PostView, error)
	GetPostViewsByOwner(username string) ([]models.PostView, error)
	GetFeed() ([]models.PostView, error)
	GetProfile(logname, username string) (*models.ProfileView, error)
	GetFollowerCards(logname, username string) ([]models.UserCard, error)
	GetFollowingCards(logname, username string) ([]models.UserCard, error)
	GetExploreCards(logname string) ([]models.UserCard, error)
}

// GormViewRepository implements ViewRepository on a relational store.
type GormViewRepository struct {
	db *gorm.DB
}

// NewGormViewRepository creates a new GormViewRepository.
func NewGormViewRepository(db *gorm.DB) *GormViewRepository {
	return &GormViewRepository{db: db}
}

// GetPostView assembles one post for display.
func (r *GormViewRepository) GetPostView(postid uint) (*models.PostView, error) {
	var post models.Post
	if err := r.db.First(&post, postid).Error; err != nil {
		return nil, err
	}

	var owner models.User
	if err := r.db.First(&owner, "username = ?", post.Owner).Error; err != nil {
		return nil, fmt.Errorf("post %d owner: %w", postid, err)
	}

	var comments []models.Comment
	if err := r.db.Where("post_id = ?", postid).Order("comment_id").Find(&comments).Error; err != nil {
		return nil, err
	}
	commentViews := make([]models.CommentView, len(comments))
	for i, comment := range comments {
		commentViews[i] = models.CommentView{
			CommentID: comment.CommentID,
			Owner:     comment.Owner,
			Text:      comment.Text,
		}
	}

	var likes int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postid).Count(&likes).Error; err != nil {
		return nil, err
	}

	return &models.PostView{
		PostID:      post.PostID,
		Owner:       post.Owner,
		OwnerImgURL: storage.URL(owner.Filename),
		ImgURL:      storage.URL(post.Filename),
		Created:     humanize.Time(post.Created),
		CreatedAt:   post.Created,
		Comments:    commentViews,
		Likes:       likes,
	}, nil
}

// GetPostViewsByOwner assembles a user's posts, oldest first.
func (r *GormViewRepository) GetPostViewsByOwner(username string) ([]models.PostView, error) {
	var ids []uint
	if err := r.db.Model(&models.Post{}).Where("owner = ?", username).Order("post_id").Pluck("post_id", &ids).Error; err != nil {
		return nil, err
	}
	return r.assemble(ids)
}

// GetFeed assembles every post, newest first.
func (r *GormViewRepository) GetFeed() ([]models.PostView, error) {
	var ids []uint
	if err := r.db.Model(&models.Post{}).Order("post_id DESC").Pluck("post_id", &ids).Error; err != nil {
		return nil, err
	}
	return r.assemble(ids)
}

// GetProfile assembles the user-page context for username as seen by logname.
func (r *GormViewRepository) GetProfile(logname, username string) (*models.ProfileView, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}

	posts, err := r.GetPostViewsByOwner(username)
	if err != nil {
		return nil, err
	}

	var followers, following int64
	if err := r.db.Model(&models.Follow{}).Where("username2 = ?", username).Count(&followers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Follow{}).Where("username1 = ?", username).Count(&following).Error; err != nil {
		return nil, err
	}

	follows, err := r.follows(logname, username)
	if err != nil {
		return nil, err
	}

	return &models.ProfileView{
		Username:               user.Username,
		Fullname:               user.Fullname,
		UserImgURL:             storage.URL(user.Filename),
		Posts:                  posts,
		TotalPosts:             len(posts),
		Followers:              followers,
		Following:              following,
		LognameFollowsUsername: follows,
	}, nil
}

// GetFollowerCards lists username's followers annotated with whether logname
// follows each of them.
func (r *GormViewRepository) GetFollowerCards(logname, username string) ([]models.UserCard, error) {
	var names []string
	if err := r.db.Model(&models.Follow{}).Where("username2 = ?", username).Order("username1").Pluck("username1", &names).Error; err != nil {
		return nil, err
	}
	return r.cards(logname, names)
}

// GetFollowingCards lists the users username follows annotated with whether
// logname follows each of them.
func (r *GormViewRepository) GetFollowingCards(logname, username string) ([]models.UserCard, error) {
	var names []string
	if err := r.db.Model(&models.Follow{}).Where("username1 = ?", username).Order("username2").Pluck("username2", &names).Error; err != nil {
		return nil, err
	}
	return r.cards(logname, names)
}

// GetExploreCards lists the users logname does not follow, excluding logname.
func (r *GormViewRepository) GetExploreCards(logname string) ([]models.UserCard, error) {
	var names []string
	err := r.db.Model(&models.User{}).
		Where("username <> ?", logname).
		Where("username NOT IN (?)",
			r.db.Model(&models.Follow{}).Select("username2").Where("username1 = ?", logname),
		).
		Order("username").
		Pluck("username", &names).Error
	if err != nil {
		return nil, err
	}
	return r.cards(logname, names)
}

func (r *GormViewRepository) assemble(ids []uint) ([]models.PostView, error) {
	views := make([]models.PostView, 0, len(ids))
	for _, id := range ids {
		view, err := r.GetPostView(id)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (r *GormViewRepository) cards(logname string, names []string) ([]models.UserCard, error) {
	cards := make([]models.UserCard, 0, len(names))
	for _, name := range names {
		var user models.User
		if err := r.db.First(&user, "username = ?", name).Error; err != nil {
			return nil, fmt.Errorf("listed user %s: %w", name, err)
		}
		follows, err := r.follows(logname, name)
		if err != nil {
			return nil, err
		}
		cards = append(cards, models.UserCard{
			Username:               name,
			UserImgURL:             storage.URL(user.Filename),
			LognameFollowsUsername: follows,
		})
	}
	return cards, nil
}

func (r *GormViewRepository) follows(logname, username string) (bool, error) {
	if logname == "" || logname == username {
		return false, nil
	}
	var count int64
	err := r.db.Model(&models.Follow{}).Where("username1 = ? AND username2 = ?", logname, username).Count(&count).Error
	return count > 0, err
}
