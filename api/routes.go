package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires public, authenticated and admin route groups.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.getHealth())

		r.Get("/blog-posts", handlers.blogPostHandler.getPublishedBlogPosts())
		r.Get("/blog-post/{slug}", handlers.blogPostHandler.getBlogPostBySlug())

		r.Get("/news", handlers.newsHandler.getAllNews())
		r.Get("/news/{newsID}", handlers.newsHandler.getNews())

		r.Get("/marketplace", handlers.marketplaceHandler.getApprovedCompanies())
		r.Get("/marketplace/{companyID}", handlers.marketplaceHandler.getCompany())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Profile endpoints
		r.Get("/profile/me", handlers.profileHandler.getMyProfile())
		r.Post("/profile", handlers.profileHandler.createProfile())
		r.Put("/profile", handlers.profileHandler.updateProfile())
		r.Post("/profile/avatar", handlers.profileHandler.uploadAvatar())

		// Feed endpoints
		r.Get("/feed", handlers.feedHandler.getFeed())
		r.Post("/post", handlers.feedHandler.createPost())
		r.Post("/post/{postID}/like", handlers.feedHandler.toggleLike())
		r.Post("/post/{postID}/comment", handlers.feedHandler.createComment())
		r.Get("/post/{postID}/comments", handlers.feedHandler.getComments())
		r.Post("/post/image", handlers.feedHandler.uploadPostImage())

		// Assistant endpoint
		r.Post("/assistant/chat", handlers.assistantHandler.chat())

		// Feedback endpoint
		r.Post("/feedback", handlers.feedbackHandler.createFeedback())

		// Finance dashboard
		r.Get("/dashboard/finance", handlers.dashboardHandler.getFinanceSummary())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(authMiddleware.requireAdmin)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Blog Post Handler endpoints
		r.Get("/admin/blog-posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Post("/blog-post", handlers.blogPostHandler.createBlogPost())
		r.Put("/blog-post/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/blog-post/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())
		r.Post("/blog-post/image", handlers.blogPostHandler.uploadBlogPostImage())

		// News endpoints
		r.Post("/news", handlers.newsHandler.createNews())
		r.Put("/news/{newsID}", handlers.newsHandler.updateNews())
		r.Delete("/news/{newsID}", handlers.newsHandler.deleteNews())

		// Marketplace endpoints
		r.Get("/admin/marketplace", handlers.marketplaceHandler.getAllCompanies())
		r.Post("/marketplace", handlers.marketplaceHandler.createCompany())
		r.Put("/marketplace/{companyID}", handlers.marketplaceHandler.updateCompany())
		r.Delete("/marketplace/{companyID}", handlers.marketplaceHandler.deleteCompany())

		// Feedback listing
		r.Get("/admin/feedback", handlers.feedbackHandler.getAllFeedback())
	})
}
