package database

import (
	"errors"
	"time"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
	"gorm.io/gorm"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindByID returns the profile for a user ID, or nil when no profile row
// exists yet (onboarding not completed).
func (r *ProfileRepo) FindByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Add inserts a new profile row at onboarding completion.
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// Update saves owner-editable fields. The admin flag is deliberately not in
// the column list so it cannot be set through the profile-update path.
func (r *ProfileRepo) Update(profile *models.Profile) error {
	now := time.Now()
	profile.UpdatedAt = &now
	return r.db.Model(&models.Profile{}).
		Where("id = ?", profile.ID).
		Select("name", "region", "phone", "license_type", "years_experience", "avatar_url", "updated_at").
		Updates(profile).Error
}

// SetAvatarURL updates just the avatar reference after a storage upload.
func (r *ProfileRepo) SetAvatarURL(id string, url string) error {
	return r.db.Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"avatar_url": url, "updated_at": time.Now()}).Error
}
