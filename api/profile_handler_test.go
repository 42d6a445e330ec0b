package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateProfileValidation(t *testing.T) {
	handler := newProfileHandler(nil)

	cases := []struct {
		name string
		body string
	}{
		{"malformed body", `{"name":`},
		{"missing name", `{"region":"London"}`},
		{"missing region", `{"name":"Dee"}`},
		{"unknown region", `{"name":"Dee","region":"Atlantis"}`},
		{"lowercase region", `{"name":"Dee","region":"london"}`},
		{"negative years experience", `{"name":"Dee","region":"London","yearsExperience":-3}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.createProfile()(rec, authedRequest(http.MethodPost, "/profile", tc.body, "driver-1"))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("rejects missing identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.createProfile()(rec, authedRequest(http.MethodPost, "/profile", `{"name":"Dee","region":"London"}`, ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestProfileRequestHasNoAdminField(t *testing.T) {
	// The admin flag must never be settable through the profile payload.
	// A body carrying isAdmin decodes fine; the field is simply ignored
	// because the request type does not declare it.
	handler := newProfileHandler(nil)
	rec := httptest.NewRecorder()
	handler.createProfile()(rec, authedRequest(http.MethodPost, "/profile", `{"name":"Dee","region":"Atlantis","isAdmin":true}`, "driver-1"))
	// Still fails on the region, proving decode ran and isAdmin slid past.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
