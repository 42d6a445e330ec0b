package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newChatCompletionServer fakes the upstream chat-completion endpoint. It
// returns the server, a hit counter, and the canned reply it serves.
func newChatCompletionServer(t *testing.T, status int) (*httptest.Server, *atomic.Int64, string) {
	t.Helper()

	const reply = "Renew your badge with your licensing authority before it expires."
	var hits atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)

		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"upstream unavailable"}}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]string{
						"role":    "assistant",
						"content": reply,
					},
				},
			},
		})
	}))
	t.Cleanup(srv.Close)

	return srv, &hits, reply
}

func doChat(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := newAssistantHandler()
	req := httptest.NewRequest(http.MethodPost, "/assistant/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.chat()(rec, req)
	return rec
}

func TestAssistantChat(t *testing.T) {
	t.Run("relays conversation and returns reply", func(t *testing.T) {
		srv, hits, reply := newChatCompletionServer(t, http.StatusOK)
		t.Setenv("OPENAI_API_KEY", "test-key")
		t.Setenv("OPENAI_BASE_URL", srv.URL)

		rec := doChat(t, `{"messages":[{"role":"user","content":"How do I renew my badge?"}]}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp ChatResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, reply, resp.Content)
		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("missing credential fails before upstream contact", func(t *testing.T) {
		srv, hits, _ := newChatCompletionServer(t, http.StatusOK)
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("OPENAI_BASE_URL", srv.URL)

		rec := doChat(t, `{"messages":[{"role":"user","content":"hello"}]}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, int64(0), hits.Load())
	})

	t.Run("upstream status passes through", func(t *testing.T) {
		srv, hits, _ := newChatCompletionServer(t, http.StatusInternalServerError)
		t.Setenv("OPENAI_API_KEY", "test-key")
		t.Setenv("OPENAI_BASE_URL", srv.URL)

		rec := doChat(t, `{"messages":[{"role":"user","content":"hello"}]}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, int64(1), hits.Load(), "no retries on upstream failure")
	})

	t.Run("upstream rate limit passes through", func(t *testing.T) {
		srv, _, _ := newChatCompletionServer(t, http.StatusTooManyRequests)
		t.Setenv("OPENAI_API_KEY", "test-key")
		t.Setenv("OPENAI_BASE_URL", srv.URL)

		rec := doChat(t, `{"messages":[{"role":"user","content":"hello"}]}`)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("unreachable upstream surfaces as bad gateway", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "test-key")
		t.Setenv("OPENAI_BASE_URL", "http://127.0.0.1:1")

		rec := doChat(t, `{"messages":[{"role":"user","content":"hello"}]}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		rec := doChat(t, `{"messages":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty conversation is rejected", func(t *testing.T) {
		rec := doChat(t, `{"messages":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("blank message content is rejected", func(t *testing.T) {
		rec := doChat(t, `{"messages":[{"role":"user","content":"   "}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
