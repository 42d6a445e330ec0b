package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// Validation paths run before any repository access, so a zero-value
// handler is enough to exercise them.

func authedRequest(method, target, body, userID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(ctxWithUserID(req.Context(), userID))
	}
	return req
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreatePostValidation(t *testing.T) {
	handler := newFeedHandler(nil, nil)

	t.Run("rejects missing identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.createPost()(rec, authedRequest(http.MethodPost, "/post", `{"content":"hello"}`, ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.createPost()(rec, authedRequest(http.MethodPost, "/post", `{"content":`, "driver-1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.createPost()(rec, authedRequest(http.MethodPost, "/post", `{"content":"   "}`, "driver-1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects content over the bound", func(t *testing.T) {
		long := strings.Repeat("a", 1001)
		rec := httptest.NewRecorder()
		handler.createPost()(rec, authedRequest(http.MethodPost, "/post", `{"content":"`+long+`"}`, "driver-1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateCommentValidation(t *testing.T) {
	handler := newFeedHandler(nil, nil)
	postID := "2b8f0a51-7f0e-4c1d-9f64-0f2b6f4f9a10"

	t.Run("rejects invalid post id", func(t *testing.T) {
		req := withURLParam(authedRequest(http.MethodPost, "/post/x/comment", `{"content":"hi"}`, "driver-1"), "postID", "not-a-uuid")
		rec := httptest.NewRecorder()
		handler.createComment()(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		req := withURLParam(authedRequest(http.MethodPost, "/post/"+postID+"/comment", `{"content":""}`, "driver-1"), "postID", postID)
		rec := httptest.NewRecorder()
		handler.createComment()(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects content over the bound", func(t *testing.T) {
		long := strings.Repeat("b", 501)
		req := withURLParam(authedRequest(http.MethodPost, "/post/"+postID+"/comment", `{"content":"`+long+`"}`, "driver-1"), "postID", postID)
		rec := httptest.NewRecorder()
		handler.createComment()(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestToggleLikeValidation(t *testing.T) {
	handler := newFeedHandler(nil, nil)

	t.Run("rejects missing identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.toggleLike()(rec, authedRequest(http.MethodPost, "/post/x/like", "", ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects invalid post id", func(t *testing.T) {
		req := withURLParam(authedRequest(http.MethodPost, "/post/x/like", "", "driver-1"), "postID", "nope")
		rec := httptest.NewRecorder()
		handler.toggleLike()(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetFeedValidation(t *testing.T) {
	handler := newFeedHandler(nil, nil)

	t.Run("rejects unknown scope", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.getFeed()(rec, authedRequest(http.MethodGet, "/feed?scope=galaxy", "", "driver-1"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects missing identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.getFeed()(rec, authedRequest(http.MethodGet, "/feed", "", ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
