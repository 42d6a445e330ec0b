package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/database"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/errs"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/services"
)

type feedbackHandler struct {
	responder    Responder
	logger       zerolog.Logger
	feedbackRepo *database.FeedbackRepo
}

func newFeedbackHandler(feedbackRepo *database.FeedbackRepo) feedbackHandler {
	logger := log.With().Str("handlerName", "feedbackHandler").Logger()

	return feedbackHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		feedbackRepo: feedbackRepo,
	}
}

type FeedbackRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h feedbackHandler) createFeedback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req FeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode feedback request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("feedback", err))
			return
		}

		req.Subject = strings.TrimSpace(req.Subject)
		req.Message = strings.TrimSpace(req.Message)
		if req.Subject == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("subject"))
			return
		}
		if req.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}
		if len([]rune(req.Message)) > models.MaxFeedbackMessageLen {
			h.responder.WriteError(w, errs.NewContentTooLongError("message", models.MaxFeedbackMessageLen))
			return
		}

		feedback := models.Feedback{
			UserID:  userID,
			Subject: req.Subject,
			Message: req.Message,
		}

		if err := h.feedbackRepo.Add(&feedback); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create feedback", "feedback", err))
			return
		}

		// Notify the operators out of band. A failed text or email never
		// fails the request; the feedback row is already stored.
		go func(subject, message string) {
			if err := services.NotifyAdminSMS(fmt.Sprintf("New driver feedback: %s", subject)); err != nil {
				h.logger.Warn().Err(err).Msg("failed to send admin SMS notification")
			}
			if err := services.NotifyAdminEmail("New driver feedback: "+subject, message); err != nil {
				h.logger.Warn().Err(err).Msg("failed to send admin email notification")
			}
		}(feedback.Subject, feedback.Message)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, feedback)
	}
}

func (h feedbackHandler) getAllFeedback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feedback, err := h.feedbackRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find feedback", "feedback", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"feedback": feedback,
			"total":    len(feedback),
		})
	}
}
