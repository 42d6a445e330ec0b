package database

import (
	"errors"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns blog posts newest-first. When publishedOnly is true drafts
// are excluded (the public listing); admins pass false to see everything.
func (r *BlogPostRepo) FindAll(publishedOnly bool) ([]*models.BlogPost, error) {
	var blogPosts []*models.BlogPost
	query := r.db.Order("date_added DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	err := query.Find(&blogPosts).Error
	return blogPosts, err
}

// FindByID returns a blog post by its ID, or nil when it does not exist.
func (r *BlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var blogPost models.BlogPost
	err := r.db.First(&blogPost, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blogPost, nil
}

// FindBySlug returns a blog post by its slug, or nil when it does not exist.
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var blogPost models.BlogPost
	err := r.db.First(&blogPost, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blogPost, nil
}

// SlugExists reports whether any blog post already uses the slug.
func (r *BlogPostRepo) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(blogPost *models.BlogPost) error {
	return r.db.Create(blogPost).Error
}

// Update updates an existing blog post in the database
func (r *BlogPostRepo) Update(blogPost *models.BlogPost) error {
	return r.db.Save(blogPost).Error
}

// Delete removes a blog post from the database by id
func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}
