package api

import (
	"time"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		profileHandler:     newProfileHandler(database.ProfileRepo()),
		feedHandler:        newFeedHandler(database.PostRepo(), database.ProfileRepo()),
		blogPostHandler:    newBlogPostHandler(database.BlogPostRepo()),
		newsHandler:        newNewsHandler(database.NewsRepo()),
		marketplaceHandler: newMarketplaceHandler(database.MarketplaceRepo()),
		feedbackHandler:    newFeedbackHandler(database.FeedbackRepo()),
		assistantHandler:   newAssistantHandler(),
		dashboardHandler:   newDashboardHandler(database.PostRepo()),
		healthHandler:      newHealthHandler(startupTime),
	}
}
