package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/database"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/errs"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/services"
)

type feedHandler struct {
	responder   Responder
	logger      zerolog.Logger
	postRepo    *database.PostRepo
	profileRepo *database.ProfileRepo
}

func newFeedHandler(postRepo *database.PostRepo, profileRepo *database.ProfileRepo) feedHandler {
	logger := log.With().Str("handlerName", "feedHandler").Logger()

	return feedHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		postRepo:    postRepo,
		profileRepo: profileRepo,
	}
}

// FeedResponse is the feed listing payload.
type FeedResponse struct {
	Posts []models.FeedPost `json:"posts"`
	Total int               `json:"total"`
}

// CreatePostRequest is the body for creating a feed post.
type CreatePostRequest struct {
	Content  string  `json:"content"`
	Link     *string `json:"link,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// CreateCommentRequest is the body for commenting on a post.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// ToggleLikeResponse reports the like state after a toggle.
type ToggleLikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likesCount"`
}

// getFeed lists posts reverse-chronologically with author, counts and the
// caller's like state. scope=region narrows to posts matching the caller's
// current profile region or with no region recorded; scope=all (the default)
// applies no filter.
func (h feedHandler) getFeed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var region *string
		switch scope := r.URL.Query().Get("scope"); scope {
		case "", "all":
			// no filter
		case "region":
			profile, err := h.profileRepo.FindByID(userID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
				return
			}
			if profile == nil {
				h.responder.WriteError(w, errs.NewNotFoundError("profile not found"))
				return
			}
			region = &profile.Region
		default:
			h.responder.WriteError(w, errs.NewInvalidFieldError("scope", "must be 'all' or 'region'"))
			return
		}

		posts, err := h.postRepo.FindFeed(userID, region)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find feed", "posts", err))
			return
		}

		h.responder.WriteJSON(w, FeedResponse{Posts: posts, Total: len(posts)})
	}
}

// createPost validates the content bound and inserts one post row stamped
// with the author's current profile region. The region snapshot is final;
// later profile edits never reclassify the post.
func (h feedHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode create post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("post", err))
			return
		}

		content := strings.TrimSpace(req.Content)
		if content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}
		if len([]rune(content)) > models.MaxPostContentLen {
			h.responder.WriteError(w, errs.NewContentTooLongError("content", models.MaxPostContentLen))
			return
		}

		profile, err := h.profileRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("profile not found"))
			return
		}

		post := models.Post{
			AuthorID: userID,
			Content:  content,
			Link:     req.Link,
			ImageURL: req.ImageURL,
		}
		if profile.Region != "" {
			region := profile.Region
			post.Region = &region
		}

		if err := h.postRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create post", "post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, post)
	}
}

// toggleLike flips the caller's like on a post and reports the new state.
func (h feedHandler) toggleLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		postID, apiErr := parsePostID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		liked, err := h.postRepo.ToggleLike(postID, userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("toggle like", "post_like", err))
			return
		}

		likesCount, err := h.postRepo.CountLikes(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count likes", "post_like", err))
			return
		}

		h.responder.WriteJSON(w, ToggleLikeResponse{Liked: liked, LikesCount: likesCount})
	}
}

// createComment appends a comment to a post after validating the bound.
func (h feedHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		postID, apiErr := parsePostID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var req CreateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode create comment request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("comment", err))
			return
		}

		content := strings.TrimSpace(req.Content)
		if content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}
		if len([]rune(content)) > models.MaxCommentContentLen {
			h.responder.WriteError(w, errs.NewContentTooLongError("content", models.MaxCommentContentLen))
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		comment := models.PostComment{
			PostID:   postID,
			AuthorID: userID,
			Content:  content,
		}
		if err := h.postRepo.AddComment(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create comment", "post_comment", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, comment)
	}
}

// getComments lists a post's comments oldest-first.
func (h feedHandler) getComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, apiErr := parsePostID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		comments, err := h.postRepo.FindComments(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comments", "post_comments", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"comments": comments,
			"total":    len(comments),
		})
	}
}

// uploadPostImage stores an image for a post-in-progress and returns its
// public URL; the client includes the URL when it then creates the post.
func (h feedHandler) uploadPostImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, apiErr := handleImageUpload(r, services.StorageFolderPostImages)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"url": url})
	}
}

func parsePostID(r *http.Request) (uuid.UUID, *errs.ApiErr) {
	postIDStr := chi.URLParam(r, "postID")
	if postIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing postID")
	}
	postID, err := uuid.Parse(postIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid postID")
	}
	return postID, nil
}

// handleImageUpload reads the "image" part of a multipart form and stores it
// in the given storage folder, returning the public URL.
func handleImageUpload(r *http.Request, folder string) (string, *errs.ApiErr) {
	const maxUploadSize = 10 << 20 // 10MB
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", errs.NewMalformedPayloadError("multipart form", err)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return "", errs.NewMissingRequiredFieldError("image")
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", errs.NewInvalidFieldError("image", "must be an image file")
	}

	url, err := services.UploadObject(r.Context(), folder, header.Filename, contentType, file)
	if err != nil {
		if apiErr, ok := err.(*errs.ApiErr); ok {
			return "", apiErr
		}
		return "", errs.NewInternalErrorWithCause("image upload failed", err)
	}
	return url, nil
}
