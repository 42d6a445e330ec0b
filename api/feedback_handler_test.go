package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
)

func TestCreateFeedbackValidation(t *testing.T) {
	handler := newFeedbackHandler(nil)

	t.Run("rejects missing identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.createFeedback()(rec, authedRequest(http.MethodPost, "/feedback", `{"subject":"s","message":"m"}`, ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	cases := []struct {
		name string
		body string
	}{
		{"malformed body", `{"subject":`},
		{"missing subject", `{"message":"the app crashed"}`},
		{"missing message", `{"subject":"bug"}`},
		{"message over the bound", `{"subject":"bug","message":"` + strings.Repeat("a", 2001) + `"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.createFeedback()(rec, authedRequest(http.MethodPost, "/feedback", tc.body, "driver-1"))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateFeedbackSurvivesNotificationFailure(t *testing.T) {
	d, db := openTestDatabase(t)
	handler := newFeedbackHandler(d.FeedbackRepo())

	// Credentials that guarantee the SMS send fails. The notification is
	// fire-and-forget, so the request must still succeed.
	t.Setenv("TWILIO_ACCOUNT_SID", "ACnotreal")
	t.Setenv("TWILIO_AUTH_TOKEN", "notreal")
	t.Setenv("TWILIO_FROM_NUMBER", "+15005550006")
	t.Setenv("ADMIN_PHONE_NUMBER", "+15005550006")

	userID := fmt.Sprintf("feedback-user-%d", time.Now().UnixNano())
	t.Cleanup(func() {
		db.Where("user_id = ?", userID).Delete(&models.Feedback{})
	})

	rec := httptest.NewRecorder()
	handler.createFeedback()(rec, authedRequest(http.MethodPost, "/feedback",
		`{"subject":"fare display bug","message":"the meter total disappears after midnight"}`, userID))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var stored models.Feedback
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, "fare display bug", stored.Subject)

	var count int64
	require.NoError(t, db.Model(&models.Feedback{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
