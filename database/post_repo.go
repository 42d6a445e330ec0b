package database

import (
	"errors"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// Add inserts a new post row. The caller stamps Region with the author's
// current profile region; it is never rewritten afterwards.
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID returns a post by its ID, or nil when it does not exist.
func (r *PostRepo) FindByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindFeed returns posts in reverse-chronological order, each annotated with
// author name/region, like and comment counts, and whether the viewer has
// liked it. When region is non-nil only posts whose stored region matches, or
// posts with no region recorded, are returned. The projection is recomputed
// on every call; nothing is cached.
func (r *PostRepo) FindFeed(viewerID string, region *string) ([]models.FeedPost, error) {
	query := r.db.Table("posts").
		Select(`posts.id, posts.author_id, posts.content, posts.link, posts.image_url, posts.region, posts.created_at,
			COALESCE(profiles.name, '') AS author_name,
			COALESCE(profiles.region, '') AS author_region,
			(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) AS likes_count,
			(SELECT COUNT(*) FROM post_comments WHERE post_comments.post_id = posts.id) AS comments_count,
			EXISTS (SELECT 1 FROM post_likes WHERE post_likes.post_id = posts.id AND post_likes.user_id = ?) AS user_has_liked`,
			viewerID).
		Joins("LEFT JOIN profiles ON profiles.id = posts.author_id")

	if region != nil {
		query = query.Where("posts.region = ? OR posts.region IS NULL OR posts.region = ''", *region)
	}

	var feed []models.FeedPost
	err := query.Order("posts.created_at DESC").Scan(&feed).Error
	return feed, err
}

// ToggleLike flips the (post, user) like row and reports the resulting state.
// The flip is a single conditional insert-or-delete inside one transaction:
// the conflict target is the unique (post_id, user_id) index, so two
// concurrent toggles for the same pair serialize instead of racing a
// read-then-write.
func (r *PostRepo) ToggleLike(postID uuid.UUID, userID string) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		like := models.PostLike{PostID: postID, UserID: userID}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&like)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = true
			return nil
		}
		liked = false
		return tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&models.PostLike{}).Error
	})
	return liked, err
}

// CountLikes returns the total number of likes on a post.
func (r *PostRepo) CountLikes(postID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// AddComment appends a comment row. Comments have no edit or delete path.
func (r *PostRepo) AddComment(comment *models.PostComment) error {
	return r.db.Create(comment).Error
}

// FindComments lists a post's comments oldest-first so new comments always
// appear after all prior ones.
func (r *PostRepo) FindComments(postID uuid.UUID) ([]models.PostComment, error) {
	var comments []models.PostComment
	err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// CountPostsByAuthor returns how many posts a user has written.
func (r *PostRepo) CountPostsByAuthor(authorID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// CountCommentsByAuthor returns how many comments a user has written.
func (r *PostRepo) CountCommentsByAuthor(authorID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PostComment{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
