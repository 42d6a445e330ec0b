package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/errs"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/services"
)

type assistantHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newAssistantHandler() assistantHandler {
	logger := log.With().Str("handlerName", "assistantHandler").Logger()

	return assistantHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

type ChatRequest struct {
	Messages []services.ChatMessage `json:"messages"`
}

type ChatResponse struct {
	Content string `json:"content"`
}

// chat relays a stateless conversation to the language model. No message
// history is stored server side; the client resends the whole thread.
func (h assistantHandler) chat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode chat request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("chat", err))
			return
		}

		if len(req.Messages) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("messages"))
			return
		}
		for _, msg := range req.Messages {
			if strings.TrimSpace(msg.Content) == "" {
				h.responder.WriteError(w, errs.NewInvalidFieldError("messages", "message content must not be empty"))
				return
			}
		}

		content, err := services.AssistantReply(r.Context(), req.Messages)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ChatResponse{Content: content})
	}
}
