package models

import (
	"time"
)

// Profile is the identity record for a driver. The ID is the opaque user
// identifier issued by the auth provider, so there is no generated key here.
// A profile is created at onboarding and only ever mutated by its owner;
// profiles are never hard-deleted.
type Profile struct {
	ID              string     `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Name            string     `json:"name" db:"name" gorm:"type:text;not null"`
	Region          string     `json:"region" db:"region" gorm:"type:text;not null"`
	Phone           *string    `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	LicenseType     *string    `json:"licenseType,omitempty" db:"license_type" gorm:"type:text"`
	YearsExperience *int       `json:"yearsExperience,omitempty" db:"years_experience" gorm:"type:integer"`
	AvatarURL       *string    `json:"avatarUrl,omitempty" db:"avatar_url" gorm:"type:text"`
	IsAdmin         bool       `json:"isAdmin" db:"is_admin" gorm:"type:boolean;not null;default:false"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty" db:"updated_at" gorm:"type:timestamp"`
}

func (Profile) TableName() string {
	return "profiles"
}
