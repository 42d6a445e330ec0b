package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/config"
)

// NotifyAdminSMS sends a short text message to the configured admin phone
// number via Twilio. It is best-effort: when Twilio is not configured the
// call is a silent no-op, and a send failure is returned for the caller to
// log but should never fail the originating request.
//
// Requires TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_FROM_NUMBER and
// ADMIN_PHONE_NUMBER.
func NotifyAdminSMS(message string) error {
	cfg := config.New()

	accountSID := config.GetString(cfg, "TWILIO_ACCOUNT_SID", "")
	authToken := config.GetString(cfg, "TWILIO_AUTH_TOKEN", "")
	from := config.GetString(cfg, "TWILIO_FROM_NUMBER", "")
	to := config.GetString(cfg, "ADMIN_PHONE_NUMBER", "")

	if accountSID == "" || authToken == "" || from == "" || to == "" {
		log.Debug().Msg("Twilio not configured; skipping admin SMS")
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("sending admin SMS: %w", err)
	}

	log.Info().Msg("Admin SMS notification sent")
	return nil
}
