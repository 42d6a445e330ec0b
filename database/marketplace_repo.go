package database

import (
	"errors"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MarketplaceRepo struct {
	db *gorm.DB
}

func NewMarketplaceRepo(db *gorm.DB) *MarketplaceRepo {
	return &MarketplaceRepo{db}
}

// FindApproved lists approved companies, optionally filtered by region
// and/or category.
func (r *MarketplaceRepo) FindApproved(region, category *string) ([]*models.MarketplaceCompany, error) {
	query := r.db.Where("approved = ?", true)
	if region != nil {
		query = query.Where("region = ?", *region)
	}
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	var companies []*models.MarketplaceCompany
	err := query.Order("name ASC").Find(&companies).Error
	return companies, err
}

// FindAll lists every company regardless of approval state (admin view).
func (r *MarketplaceRepo) FindAll() ([]*models.MarketplaceCompany, error) {
	var companies []*models.MarketplaceCompany
	err := r.db.Order("created_at DESC").Find(&companies).Error
	return companies, err
}

// FindByID returns a company by its ID, or nil when it does not exist.
func (r *MarketplaceRepo) FindByID(id uuid.UUID) (*models.MarketplaceCompany, error) {
	var company models.MarketplaceCompany
	err := r.db.First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *MarketplaceRepo) Add(company *models.MarketplaceCompany) error {
	return r.db.Create(company).Error
}

func (r *MarketplaceRepo) Update(company *models.MarketplaceCompany) error {
	return r.db.Save(company).Error
}

func (r *MarketplaceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MarketplaceCompany{}, id).Error
}
