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
)

type newsHandler struct {
	responder Responder
	logger    zerolog.Logger
	newsRepo  *database.NewsRepo
}

func newNewsHandler(newsRepo *database.NewsRepo) newsHandler {
	logger := log.With().Str("handlerName", "newsHandler").Logger()

	return newsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		newsRepo:  newsRepo,
	}
}

func (h newsHandler) getAllNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.newsRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find news", "news", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"news":  items,
			"total": len(items),
		})
	}
}

func (h newsHandler) getNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newsID, apiErr := parseNewsID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		item, err := h.newsRepo.FindByID(newsID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find news", "news", err))
			return
		}
		if item == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("news item not found"))
			return
		}

		h.responder.WriteJSON(w, item)
	}
}

func (h newsHandler) createNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item models.News
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode news request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("news", err))
			return
		}

		if strings.TrimSpace(item.Title) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if strings.TrimSpace(item.Body) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("body"))
			return
		}

		if item.PublishedAt.IsZero() {
			item.PublishedAt = time.Now()
		}

		if err := h.newsRepo.Add(&item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create news", "news", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, item)
	}
}

func (h newsHandler) updateNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newsID, apiErr := parseNewsID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.newsRepo.FindByID(newsID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find news", "news", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("news item not found"))
			return
		}

		var item models.News
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode news request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("news", err))
			return
		}

		item.ID = newsID
		if item.PublishedAt.IsZero() {
			item.PublishedAt = existing.PublishedAt
		}

		if err := h.newsRepo.Update(&item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update news", "news", err))
			return
		}

		h.responder.WriteJSON(w, item)
	}
}

func (h newsHandler) deleteNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		newsID, apiErr := parseNewsID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.newsRepo.FindByID(newsID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find news", "news", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("news item not found"))
			return
		}

		if err := h.newsRepo.Delete(newsID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete news", "news", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "news item deleted successfully",
		})
	}
}

func parseNewsID(r *http.Request) (uuid.UUID, *errs.ApiErr) {
	newsIDStr := chi.URLParam(r, "newsID")
	if newsIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing newsID")
	}
	newsID, err := uuid.Parse(newsIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid newsID")
	}
	return newsID, nil
}
