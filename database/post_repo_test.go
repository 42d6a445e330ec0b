package database

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
)

// openTestDB connects to the database named by TEST_DATABASE_URL and
// migrates the schema. Tests are skipped when the variable is unset so the
// suite stays runnable without Postgres.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Post{},
		&models.PostLike{},
		&models.PostComment{},
	))

	return db
}

func seedProfile(t *testing.T, db *gorm.DB, id, name, region string) {
	t.Helper()
	profile := models.Profile{ID: id, Name: name, Region: region}
	require.NoError(t, db.Create(&profile).Error)
	t.Cleanup(func() {
		db.Where("author_id = ?", id).Delete(&models.PostComment{})
		db.Where("user_id = ?", id).Delete(&models.PostLike{})
		db.Where("author_id = ?", id).Delete(&models.Post{})
		db.Where("id = ?", id).Delete(&models.Profile{})
	})
}

func TestToggleLikeParity(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepo(db)

	userID := fmt.Sprintf("toggle-user-%d", time.Now().UnixNano())
	seedProfile(t, db, userID, "Toggle Tester", "London")

	region := "London"
	post := models.Post{AuthorID: userID, Content: "parity check", Region: &region}
	require.NoError(t, repo.Add(&post))

	// An odd number of toggles leaves the post liked, an even number
	// leaves it unliked, regardless of interleaving.
	for i := 1; i <= 5; i++ {
		liked, err := repo.ToggleLike(post.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, i%2 == 1, liked, "toggle %d", i)

		count, err := repo.CountLikes(post.ID)
		require.NoError(t, err)
		if i%2 == 1 {
			assert.Equal(t, int64(1), count)
		} else {
			assert.Equal(t, int64(0), count)
		}
	}
}

func TestToggleLikeTwoUsers(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepo(db)

	suffix := time.Now().UnixNano()
	alice := fmt.Sprintf("alice-%d", suffix)
	bob := fmt.Sprintf("bob-%d", suffix)
	seedProfile(t, db, alice, "Alice", "London")
	seedProfile(t, db, bob, "Bob", "Scotland")

	post := models.Post{AuthorID: alice, Content: "two user likes"}
	require.NoError(t, repo.Add(&post))

	liked, err := repo.ToggleLike(post.ID, alice)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.ToggleLike(post.ID, bob)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := repo.CountLikes(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Alice withdrawing her like leaves Bob's intact.
	liked, err = repo.ToggleLike(post.ID, alice)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = repo.CountLikes(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFindFeedRegionFilter(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepo(db)

	suffix := time.Now().UnixNano()
	londoner := fmt.Sprintf("londoner-%d", suffix)
	scot := fmt.Sprintf("scot-%d", suffix)
	seedProfile(t, db, londoner, "Londoner", "London")
	seedProfile(t, db, scot, "Scot", "Scotland")

	london := "London"
	scotland := "Scotland"
	londonPost := models.Post{AuthorID: londoner, Content: "london traffic", Region: &london}
	scotlandPost := models.Post{AuthorID: scot, Content: "edinburgh fares", Region: &scotland}
	regionlessPost := models.Post{AuthorID: scot, Content: "national news"}
	require.NoError(t, repo.Add(&londonPost))
	require.NoError(t, repo.Add(&scotlandPost))
	require.NoError(t, repo.Add(&regionlessPost))

	feedIDs := func(posts []models.FeedPost) map[string]bool {
		ids := make(map[string]bool, len(posts))
		for _, p := range posts {
			ids[p.ID.String()] = true
		}
		return ids
	}

	// Unfiltered feed carries all three.
	all, err := repo.FindFeed(londoner, nil)
	require.NoError(t, err)
	ids := feedIDs(all)
	assert.True(t, ids[londonPost.ID.String()])
	assert.True(t, ids[scotlandPost.ID.String()])
	assert.True(t, ids[regionlessPost.ID.String()])

	// The region filter keeps matching posts and region-free posts,
	// and drops the rest.
	filtered, err := repo.FindFeed(londoner, &london)
	require.NoError(t, err)
	ids = feedIDs(filtered)
	assert.True(t, ids[londonPost.ID.String()])
	assert.False(t, ids[scotlandPost.ID.String()])
	assert.True(t, ids[regionlessPost.ID.String()])
}

func TestLikeThenUnlikeThenComment(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepo(db)

	suffix := time.Now().UnixNano()
	author := fmt.Sprintf("london-author-%d", suffix)
	reader := fmt.Sprintf("wales-reader-%d", suffix)
	seedProfile(t, db, author, "London Author", "London")
	seedProfile(t, db, reader, "Wales Reader", "Wales")

	london := "London"
	post := models.Post{AuthorID: author, Content: "anyone driven the new ULEZ boundary?", Region: &london}
	require.NoError(t, repo.Add(&post))

	liked, err := repo.ToggleLike(post.ID, reader)
	require.NoError(t, err)
	require.True(t, liked)

	liked, err = repo.ToggleLike(post.ID, reader)
	require.NoError(t, err)
	require.False(t, liked)

	require.NoError(t, repo.AddComment(&models.PostComment{PostID: post.ID, AuthorID: reader, Content: "yes, allow extra time"}))

	feed, err := repo.FindFeed(reader, nil)
	require.NoError(t, err)
	for i := range feed {
		if feed[i].ID == post.ID {
			assert.Equal(t, int64(0), feed[i].LikesCount)
			assert.Equal(t, int64(1), feed[i].CommentsCount)
			assert.False(t, feed[i].UserHasLiked)
			return
		}
	}
	t.Fatal("post missing from unfiltered feed")
}

func TestFindFeedCountsAndLikeState(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepo(db)

	suffix := time.Now().UnixNano()
	author := fmt.Sprintf("author-%d", suffix)
	viewer := fmt.Sprintf("viewer-%d", suffix)
	seedProfile(t, db, author, "Author", "Wales")
	seedProfile(t, db, viewer, "Viewer", "Wales")

	post := models.Post{AuthorID: author, Content: "counts check"}
	require.NoError(t, repo.Add(&post))

	_, err := repo.ToggleLike(post.ID, viewer)
	require.NoError(t, err)
	require.NoError(t, repo.AddComment(&models.PostComment{PostID: post.ID, AuthorID: viewer, Content: "nice one"}))
	require.NoError(t, repo.AddComment(&models.PostComment{PostID: post.ID, AuthorID: author, Content: "cheers"}))

	find := func(viewerID string) *models.FeedPost {
		feed, err := repo.FindFeed(viewerID, nil)
		require.NoError(t, err)
		for i := range feed {
			if feed[i].ID == post.ID {
				return &feed[i]
			}
		}
		return nil
	}

	asViewer := find(viewer)
	require.NotNil(t, asViewer)
	assert.Equal(t, int64(1), asViewer.LikesCount)
	assert.Equal(t, int64(2), asViewer.CommentsCount)
	assert.True(t, asViewer.UserHasLiked)
	assert.Equal(t, "Author", asViewer.AuthorName)

	asAuthor := find(author)
	require.NotNil(t, asAuthor)
	assert.False(t, asAuthor.UserHasLiked, "like state is per viewer")
}
