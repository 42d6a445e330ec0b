package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/database"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/errs"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/services"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// BlogPostCollection represents multiple blog posts
type BlogPostCollection struct {
	BlogPosts []*models.BlogPost `json:"blogPosts"`
	Total     int                `json:"total"`
}

// getPublishedBlogPosts retrieves published blog posts for the public site.
func (h blogPostHandler) getPublishedBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPosts, err := h.blogPostRepo.FindAll(true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog posts", "blog_posts", err))
			return
		}

		h.responder.WriteJSON(w, BlogPostCollection{BlogPosts: blogPosts, Total: len(blogPosts)})
	}
}

// getAllBlogPosts retrieves every blog post including drafts (admin view).
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPosts, err := h.blogPostRepo.FindAll(false)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog posts", "blog_posts", err))
			return
		}

		h.responder.WriteJSON(w, BlogPostCollection{BlogPosts: blogPosts, Total: len(blogPosts)})
	}
}

// getBlogPostBySlug retrieves a published blog post by its slug.
func (h blogPostHandler) getBlogPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blogPost, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
			return
		}

		if blogPost == nil || !blogPost.Published {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, blogPost)
	}
}

// createBlogPost creates a new blog post. A missing slug is generated from
// the title; either way the slug is made URL-safe and unique.
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var blogPost models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&blogPost); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("blog post", err))
			return
		}

		if strings.TrimSpace(blogPost.Title) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if strings.TrimSpace(blogPost.Content) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}

		base := services.Slugify(blogPost.Slug)
		if base == "" {
			base = services.Slugify(blogPost.Title)
		}
		slug, err := services.UniqueSlug(base, h.blogPostRepo.SlugExists)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check slug", "blog_post", err))
			return
		}
		blogPost.Slug = slug
		blogPost.AuthorID = userID

		if blogPost.DateAdded.IsZero() {
			blogPost.DateAdded = time.Now()
		}

		if err := h.blogPostRepo.Add(&blogPost); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog post", "blog_post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, blogPost)
	}
}

// updateBlogPost updates an existing blog post
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, apiErr := parseBlogPostID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existingBlogPost, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
			return
		}
		if existingBlogPost == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		var blogPost models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&blogPost); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("blog post", err))
			return
		}

		// Ensure identity and authorship survive the update
		blogPost.ID = blogPostID
		blogPost.AuthorID = existingBlogPost.AuthorID
		blogPost.DateAdded = existingBlogPost.DateAdded

		// A changed slug still has to be URL-safe and unique; an omitted
		// slug keeps the existing one
		if slug := services.Slugify(blogPost.Slug); slug != "" && slug != existingBlogPost.Slug {
			unique, err := services.UniqueSlug(slug, h.blogPostRepo.SlugExists)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("check slug", "blog_post", err))
				return
			}
			blogPost.Slug = unique
		} else {
			blogPost.Slug = existingBlogPost.Slug
		}

		now := time.Now()
		blogPost.DateEdited = &now

		if err := h.blogPostRepo.Update(&blogPost); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, blogPost)
	}
}

// deleteBlogPost deletes a blog post by ID
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, apiErr := parseBlogPostID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		if err := h.blogPostRepo.Delete(blogPostID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}

// uploadBlogPostImage stores an article image (already resized client-side)
// and returns its public URL for inclusion in the article body or header.
func (h blogPostHandler) uploadBlogPostImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, apiErr := handleImageUpload(r, services.StorageFolderBlogImages)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"url": url})
	}
}

func parseBlogPostID(r *http.Request) (uuid.UUID, *errs.ApiErr) {
	blogPostIDStr := chi.URLParam(r, "blogPostID")
	if blogPostIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing blogPostID")
	}
	blogPostID, err := uuid.Parse(blogPostIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid blogPostID")
	}
	return blogPostID, nil
}
