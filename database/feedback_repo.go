package database

import (
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
	"gorm.io/gorm"
)

type FeedbackRepo struct {
	db *gorm.DB
}

func NewFeedbackRepo(db *gorm.DB) *FeedbackRepo {
	return &FeedbackRepo{db}
}

// Add inserts a feedback row.
func (r *FeedbackRepo) Add(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

// FindAll lists feedback newest-first (admin view).
func (r *FeedbackRepo) FindAll() ([]*models.Feedback, error) {
	var items []*models.Feedback
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}
