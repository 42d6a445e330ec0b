package models

import (
	"time"

	"github.com/google/uuid"
)

// News is an editorial news item shown on the news page. Managed by admins.
type News struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Summary     *string   `json:"summary,omitempty" db:"summary" gorm:"type:text"`
	Body        string    `json:"body" db:"body" gorm:"type:text;not null"`
	SourceURL   *string   `json:"sourceUrl,omitempty" db:"source_url" gorm:"type:text"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	PublishedAt time.Time `json:"publishedAt" db:"published_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (News) TableName() string {
	return "news"
}
