package database

import (
	"gorm.io/gorm"
)

type Database struct {
	profileRepo     *ProfileRepo
	postRepo        *PostRepo
	blogPostRepo    *BlogPostRepo
	newsRepo        *NewsRepo
	marketplaceRepo *MarketplaceRepo
	feedbackRepo    *FeedbackRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:     NewProfileRepo(db),
		postRepo:        NewPostRepo(db),
		blogPostRepo:    NewBlogPostRepo(db),
		newsRepo:        NewNewsRepo(db),
		marketplaceRepo: NewMarketplaceRepo(db),
		feedbackRepo:    NewFeedbackRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) NewsRepo() *NewsRepo {
	return d.newsRepo
}

func (d Database) MarketplaceRepo() *MarketplaceRepo {
	return d.marketplaceRepo
}

func (d Database) FeedbackRepo() *FeedbackRepo {
	return d.feedbackRepo
}
