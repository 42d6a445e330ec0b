package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/database"
)

func preflight(t *testing.T, handler http.Handler, origin string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRouterCORSOrigins(t *testing.T) {
	t.Run("configured origins are allowed, others are not", func(t *testing.T) {
		router := newRouter(database.Database{}, withConfig(map[string]string{
			"ACCEPTED_ORIGINS": "https://driverhub.example,https://staging.driverhub.example",
		}))

		rec := preflight(t, router, "https://driverhub.example")
		assert.Equal(t, "https://driverhub.example", rec.Header().Get("Access-Control-Allow-Origin"))

		rec = preflight(t, router, "https://evil.example")
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unset origins fall back to allowing everything", func(t *testing.T) {
		router := newRouter(database.Database{}, withConfig(map[string]string{}))

		rec := preflight(t, router, "https://anywhere.example")
		assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
