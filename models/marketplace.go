package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MarketplaceCompany is a directory listing for a supplier (insurance,
// vehicle hire, accountancy and so on). Only approved listings are shown
// publicly; Details holds free-form structured data such as opening hours.
type MarketplaceCompany struct {
	ID          uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string         `json:"name" db:"name" gorm:"type:text;not null"`
	Category    string         `json:"category" db:"category" gorm:"type:text;not null;index"`
	Region      *string        `json:"region,omitempty" db:"region" gorm:"type:text;index"`
	Description string         `json:"description" db:"description" gorm:"type:text;not null"`
	Website     *string        `json:"website,omitempty" db:"website" gorm:"type:text"`
	Phone       *string        `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Details     datatypes.JSON `json:"details,omitempty" db:"details" gorm:"type:jsonb"`
	Approved    bool           `json:"approved" db:"approved" gorm:"type:boolean;not null;default:false"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (MarketplaceCompany) TableName() string {
	return "marketplace_companies"
}
