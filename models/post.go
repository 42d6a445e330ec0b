package models

import (
	"time"

	"github.com/google/uuid"
)

// Text length bounds enforced before persistence.
const (
	MaxPostContentLen    = 1000
	MaxCommentContentLen = 500
)

// Post is a feed entry. Region is a snapshot of the author's profile region
// at creation time; later profile edits do not reclassify old posts.
type Post struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	AuthorID  string    `json:"authorId" db:"author_id" gorm:"type:text;not null;index"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Link      *string   `json:"link,omitempty" db:"link" gorm:"type:text"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	Region    *string   `json:"region,omitempty" db:"region" gorm:"type:text;index"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;index"`
}

func (Post) TableName() string {
	return "posts"
}

// PostLike records that a user likes a post. Row presence is the entire
// state; the composite unique index makes the like toggle a single
// conditional insert or delete.
type PostLike struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	PostID    uuid.UUID `json:"postId" db:"post_id" gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_post_user"`
	UserID    string    `json:"userId" db:"user_id" gorm:"type:text;not null;uniqueIndex:idx_post_likes_post_user"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (PostLike) TableName() string {
	return "post_likes"
}

// PostComment is append-only; there is no edit or delete path.
type PostComment struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	PostID    uuid.UUID `json:"postId" db:"post_id" gorm:"type:uuid;not null;index"`
	AuthorID  string    `json:"authorId" db:"author_id" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (PostComment) TableName() string {
	return "post_comments"
}

// FeedPost is a post as the feed shows it: joined author fields plus the
// per-viewer like/comment annotations. It is computed per request, never
// stored.
type FeedPost struct {
	ID            uuid.UUID `json:"id"`
	AuthorID      string    `json:"authorId"`
	Content       string    `json:"content"`
	Link          *string   `json:"link,omitempty"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	Region        *string   `json:"region,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	AuthorName    string    `json:"authorName"`
	AuthorRegion  string    `json:"authorRegion"`
	LikesCount    int64     `json:"likesCount"`
	CommentsCount int64     `json:"commentsCount"`
	UserHasLiked  bool      `json:"userHasLiked"`
}
