package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/config"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/errs"
)

// assistantSystemPrompt fixes the assistant's persona and domain scope. It is
// always prepended; callers cannot override it.
const assistantSystemPrompt = `You are the Driver Hub assistant, a helpful expert for UK taxi and private-hire drivers. ` +
	`You answer questions about UK taxi and private-hire licensing (including local authority rules), ` +
	`self-assessment tax and allowable expenses for drivers, the Highway Code, and what to do after ` +
	`an incident or accident. Keep answers practical and concise. If a question is outside these ` +
	`topics, say so briefly and steer the conversation back to driving matters. You are not a ` +
	`solicitor or accountant; recommend professional advice for anything contractual or disputed.`

// ChatMessage is one turn of an assistant conversation as supplied by the
// client. The full history is resupplied on every call; nothing is stored
// server-side.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AssistantReply relays the conversation to the chat-completion API and
// returns the single text reply. Configuration is read per call, matching
// the rest of the outbound services:
//   - OPENAI_API_KEY: required; its absence fails the request before any
//     upstream contact
//   - OPENAI_BASE_URL: optional override (also used by tests)
//   - ASSISTANT_MODEL: optional, defaults to gpt-4o-mini
//   - ASSISTANT_MAX_TOKENS: optional response token cap, defaults to 512
//
// Failures are never retried; the caller surfaces them to the user.
func AssistantReply(ctx context.Context, history []ChatMessage) (string, error) {
	cfg := config.New()

	apiKey := config.GetString(cfg, "OPENAI_API_KEY", "")
	if apiKey == "" {
		return "", errs.NewEnvironmentVariableError("OPENAI_API_KEY")
	}

	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(config.GetString(cfg, "ASSISTANT_MODEL", "gpt-4o-mini")),
	}
	if baseURL := config.GetString(cfg, "OPENAI_BASE_URL", ""); baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return "", errs.NewUpstreamFailureError("assistant", err)
	}

	messages := make([]llms.MessageContent, 0, len(history)+1)
	messages = append(messages, llms.TextParts(schema.ChatMessageTypeSystem, assistantSystemPrompt))
	for _, m := range history {
		messages = append(messages, llms.TextParts(chatRole(m.Role), m.Content))
	}

	maxTokens := config.GetInt(cfg, "ASSISTANT_MAX_TOKENS", 512)
	resp, err := llm.GenerateContent(ctx, messages, llms.WithMaxTokens(maxTokens))
	if err != nil {
		return "", upstreamError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", errs.NewUpstreamFailureError("assistant", errs.ErrUpstreamFailure)
	}

	return resp.Choices[0].Content, nil
}

// The client reports non-2xx upstream responses only as error text
// ("... status code: NNN ..."), so that is where the status to pass
// through comes from.
var upstreamStatusPattern = regexp.MustCompile(`status code: (\d{3})`)

// upstreamError maps a chat-completion failure to an API error. A
// recognizable upstream HTTP status is passed through; anything else
// (connection failure, unparseable error) becomes a 502.
func upstreamError(err error) error {
	if m := upstreamStatusPattern.FindStringSubmatch(err.Error()); m != nil {
		if code, convErr := strconv.Atoi(m[1]); convErr == nil && code >= 400 && code < 600 {
			return errs.NewUpstreamStatusError("assistant", code, err)
		}
	}
	return errs.NewUpstreamFailureError("assistant", err)
}

func chatRole(role string) schema.ChatMessageType {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "assistant", "ai":
		return schema.ChatMessageTypeAI
	case "system":
		// client-supplied "system" turns are demoted; the fixed persona is
		// the only system message
		return schema.ChatMessageTypeHuman
	default:
		return schema.ChatMessageTypeHuman
	}
}
