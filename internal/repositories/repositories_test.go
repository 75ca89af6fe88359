package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/appdev-labs/photofeed/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Session{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, avatar string) {
	t.Helper()
	err := db.Create(&models.User{
		Username: username,
		Fullname: "Test " + username,
		Email:    username + "@example.com",
		Password: "sha512$salt$digest",
		Filename: avatar,
	}).Error
	require.NoError(t, err)
}

func seedPost(t *testing.T, db *gorm.DB, owner, filename string) uint {
	t.Helper()
	post := &models.Post{Owner: owner, Filename: filename}
	require.NoError(t, db.Create(post).Error)
	return post.PostID
}

func TestCreateUserConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)

	require.NoError(t, repo.CreateUser(&models.User{Username: "alice", Password: "x"}))
	assert.ErrorIs(t, repo.CreateUser(&models.User{Username: "alice", Password: "y"}), ErrUsernameTaken)
}

func TestUpdateProfileKeepsAvatarWhenEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	seedUser(t, db, "alice", "avatar.jpg")

	require.NoError(t, repo.UpdateProfile("alice", "Alice B", "alice@new.example.com", ""))
	user, err := repo.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "avatar.jpg", user.Filename)
	assert.Equal(t, "Alice B", user.Fullname)

	require.NoError(t, repo.UpdateProfile("alice", "Alice B", "alice@new.example.com", "new.jpg"))
	user, err = repo.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "new.jpg", user.Filename)
}

func TestLikeToggleConflicts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormLikeRepository(db)
	seedUser(t, db, "alice", "a.jpg")
	seedUser(t, db, "bob", "b.jpg")
	postid := seedPost(t, db, "alice", "p.jpg")

	require.NoError(t, repo.CreateLike("bob", postid))
	assert.ErrorIs(t, repo.CreateLike("bob", postid), ErrAlreadyLiked)

	count, err := repo.GetLikesCountByPostID(postid)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	require.NoError(t, repo.DeleteLike("bob", postid))
	assert.ErrorIs(t, repo.DeleteLike("bob", postid), ErrLikeNotFound)

	count, err = repo.GetLikesCountByPostID(postid)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestFollowConflicts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormFollowRepository(db)
	seedUser(t, db, "alice", "a.jpg")
	seedUser(t, db, "bob", "b.jpg")

	assert.ErrorIs(t, repo.CreateFollow("alice", "alice"), ErrSelfFollow)

	require.NoError(t, repo.CreateFollow("alice", "bob"))
	assert.ErrorIs(t, repo.CreateFollow("alice", "bob"), ErrAlreadyFollowing)

	following, err := repo.GetFollowing("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, following)

	followers, err := repo.GetFollowers("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, followers)

	require.NoError(t, repo.DeleteFollow("alice", "bob"))
	assert.ErrorIs(t, repo.DeleteFollow("alice", "bob"), ErrFollowNotFound)
}

func TestNotFollowingExcludesSelfAndFollowees(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormFollowRepository(db)
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		seedUser(t, db, name, name+".jpg")
	}
	require.NoError(t, repo.CreateFollow("alice", "bob"))
	require.NoError(t, repo.CreateFollow("carol", "alice"))

	names, err := repo.GetNotFollowing("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"carol", "dave"}, names)
	assert.NotContains(t, names, "alice")
	assert.NotContains(t, names, "bob")
}

func TestDeletePostCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPostRepository(db)
	seedUser(t, db, "alice", "a.jpg")
	seedUser(t, db, "bob", "b.jpg")
	doomed := seedPost(t, db, "alice", "doomed.jpg")
	kept := seedPost(t, db, "alice", "kept.jpg")

	require.NoError(t, db.Create(&models.Comment{Owner: "bob", PostID: doomed, Text: "hi"}).Error)
	require.NoError(t, db.Create(&models.Comment{Owner: "bob", PostID: kept, Text: "hello"}).Error)
	require.NoError(t, db.Create(&models.Like{Owner: "bob", PostID: doomed}).Error)

	filename, err := repo.DeletePostCascade(doomed)
	require.NoError(t, err)
	assert.Equal(t, "doomed.jpg", filename)

	var comments, likes, posts int64
	db.Model(&models.Comment{}).Where("post_id = ?", doomed).Count(&comments)
	db.Model(&models.Like{}).Where("post_id = ?", doomed).Count(&likes)
	db.Model(&models.Post{}).Count(&posts)
	assert.EqualValues(t, 0, comments)
	assert.EqualValues(t, 0, likes)
	assert.EqualValues(t, 1, posts)

	_, err = repo.DeletePostCascade(doomed)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUserCascade(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewGormUserRepository(db)
	seedUser(t, db, "alice", "alice.jpg")
	seedUser(t, db, "bob", "bob.jpg")

	alicePost := seedPost(t, db, "alice", "p1.jpg")
	// Two posts sharing a filename must come back once.
	seedPost(t, db, "alice", "dup.jpg")
	seedPost(t, db, "alice", "dup.jpg")
	bobPost := seedPost(t, db, "bob", "bp.jpg")

	require.NoError(t, db.Create(&models.Comment{Owner: "bob", PostID: alicePost, Text: "nice"}).Error)
	require.NoError(t, db.Create(&models.Comment{Owner: "alice", PostID: bobPost, Text: "thanks"}).Error)
	require.NoError(t, db.Create(&models.Like{Owner: "bob", PostID: alicePost}).Error)
	require.NoError(t, db.Create(&models.Like{Owner: "alice", PostID: bobPost}).Error)
	require.NoError(t, db.Create(&models.Follow{Username1: "alice", Username2: "bob"}).Error)
	require.NoError(t, db.Create(&models.Follow{Username1: "bob", Username2: "alice"}).Error)
	require.NoError(t, db.Create(&models.Session{ID: "s1", Username: "alice", ExpiresAt: time.Now().Add(time.Hour)}).Error)

	files, err := userRepo.DeleteUserCascade("alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1.jpg", "dup.jpg", "alice.jpg"}, files)

	var users, posts, comments, likes, follows, sessions int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)
	db.Model(&models.Like{}).Count(&likes)
	db.Model(&models.Follow{}).Count(&follows)
	db.Model(&models.Session{}).Count(&sessions)
	assert.EqualValues(t, 1, users, "bob remains")
	assert.EqualValues(t, 1, posts, "bob's post remains")
	assert.EqualValues(t, 0, comments, "alice's comments and comments on her posts are gone")
	assert.EqualValues(t, 0, likes)
	assert.EqualValues(t, 0, follows)
	assert.EqualValues(t, 0, sessions)
}

func TestEmptyCommentRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCommentRepository(db)
	seedUser(t, db, "alice", "a.jpg")
	postid := seedPost(t, db, "alice", "p.jpg")

	err := repo.CreateComment(&models.Comment{Owner: "alice", PostID: postid, Text: "   "})
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestSessionExpiry(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	seedUser(t, db, "alice", "a.jpg")

	require.NoError(t, repo.CreateSession(&models.Session{ID: "live", Username: "alice", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, repo.CreateSession(&models.Session{ID: "stale", Username: "alice", ExpiresAt: time.Now().Add(-time.Hour)}))

	session, err := repo.GetSession("live")
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)

	_, err = repo.GetSession("stale")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.DeleteSessionsByUsername("alice"))
	_, err = repo.GetSession("live")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPostViewAssembly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormViewRepository(db)
	seedUser(t, db, "alice", "alice.jpg")
	seedUser(t, db, "bob", "bob.jpg")
	postid := seedPost(t, db, "alice", "photo.jpg")

	require.NoError(t, db.Create(&models.Comment{Owner: "bob", PostID: postid, Text: "first"}).Error)
	require.NoError(t, db.Create(&models.Comment{Owner: "alice", PostID: postid, Text: "second"}).Error)
	require.NoError(t, db.Create(&models.Like{Owner: "bob", PostID: postid}).Error)

	view, err := repo.GetPostView(postid)
	require.NoError(t, err)
	assert.Equal(t, "alice", view.Owner)
	assert.Equal(t, "/uploads/photo.jpg", view.ImgURL)
	assert.Equal(t, "/uploads/alice.jpg", view.OwnerImgURL)
	assert.EqualValues(t, 1, view.Likes)
	assert.NotEmpty(t, view.Created)
	require.Len(t, view.Comments, 2)
	assert.Equal(t, "first", view.Comments[0].Text)
	assert.Equal(t, "second", view.Comments[1].Text)

	_, err = repo.GetPostView(postid + 100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProfileAndExploreViews(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormViewRepository(db)
	for _, name := range []string{"alice", "bob", "carol"} {
		seedUser(t, db, name, name+".jpg")
	}
	seedPost(t, db, "bob", "b1.jpg")
	seedPost(t, db, "bob", "b2.jpg")
	require.NoError(t, db.Create(&models.Follow{Username1: "alice", Username2: "bob"}).Error)
	require.NoError(t, db.Create(&models.Follow{Username1: "carol", Username2: "bob"}).Error)

	profile, err := repo.GetProfile("alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, 2, profile.TotalPosts)
	assert.EqualValues(t, 2, profile.Followers)
	assert.EqualValues(t, 0, profile.Following)
	assert.True(t, profile.LognameFollowsUsername)

	cards, err := repo.GetFollowerCards("alice", "bob")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "alice", cards[0].Username)
	assert.False(t, cards[0].LognameFollowsUsername, "alice does not follow herself")
	assert.Equal(t, "carol", cards[1].Username)
	assert.False(t, cards[1].LognameFollowsUsername)

	explore, err := repo.GetExploreCards("alice")
	require.NoError(t, err)
	require.Len(t, explore, 1)
	assert.Equal(t, "carol", explore[0].Username)
	assert.Equal(t, "/uploads/carol.jpg", explore[0].UserImgURL)
}
