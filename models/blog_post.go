package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost represents a complete blog article with metadata. Draft/published
// is the only lifecycle state.
type BlogPost struct {
	ID         uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title      string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug       string     `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Excerpt    *string    `json:"excerpt,omitempty" db:"excerpt" gorm:"type:text"`
	Content    string     `json:"content" db:"content" gorm:"type:text;not null"`
	ImageURL   *string    `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	Published  bool       `json:"published" db:"published" gorm:"type:boolean;not null;default:false"`
	AuthorID   string     `json:"authorId" db:"author_id" gorm:"type:text;not null"`
	DateAdded  time.Time  `json:"dateAdded" db:"date_added" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	DateEdited *time.Time `json:"dateEdited,omitempty" db:"date_edited" gorm:"type:timestamp"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
