package models

import (
	"time"

	"github.com/google/uuid"
)

const MaxFeedbackMessageLen = 2000

// Feedback is a message from a signed-in driver to the site operators.
type Feedback struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID    string    `json:"userId" db:"user_id" gorm:"type:text;not null;index"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (Feedback) TableName() string {
	return "feedback"
}
