package database

import (
	"errors"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsRepo struct {
	db *gorm.DB
}

func NewNewsRepo(db *gorm.DB) *NewsRepo {
	return &NewsRepo{db}
}

// FindAll returns news items newest-first.
func (r *NewsRepo) FindAll() ([]*models.News, error) {
	var items []*models.News
	err := r.db.Order("published_at DESC").Find(&items).Error
	return items, err
}

// FindByID returns a news item by its ID, or nil when it does not exist.
func (r *NewsRepo) FindByID(id uuid.UUID) (*models.News, error) {
	var item models.News
	err := r.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *NewsRepo) Add(item *models.News) error {
	return r.db.Create(item).Error
}

func (r *NewsRepo) Update(item *models.News) error {
	return r.db.Save(item).Error
}

func (r *NewsRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.News{}, id).Error
}
