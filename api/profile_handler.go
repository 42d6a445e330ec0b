package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/database"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/errs"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/services"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

// ProfileRequest carries the owner-editable profile fields. The admin flag
// is intentionally absent.
type ProfileRequest struct {
	Name            string  `json:"name"`
	Region          string  `json:"region"`
	Phone           *string `json:"phone,omitempty"`
	LicenseType     *string `json:"licenseType,omitempty"`
	YearsExperience *int    `json:"yearsExperience,omitempty"`
}

// getMyProfile returns the caller's profile. A 404 means onboarding has not
// been completed yet; the client redirects to the onboarding flow.
func (h profileHandler) getMyProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		profile, err := h.profileRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("profile not found"))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// createProfile completes onboarding by inserting the caller's profile row.
func (h profileHandler) createProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		req, apiErr := h.decodeAndValidate(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.profileRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewAlreadyExists("profile"))
			return
		}

		profile := models.Profile{
			ID:              userID,
			Name:            strings.TrimSpace(req.Name),
			Region:          req.Region,
			Phone:           req.Phone,
			LicenseType:     req.LicenseType,
			YearsExperience: req.YearsExperience,
		}
		if err := h.profileRepo.Add(&profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create profile", "profile", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, profile)
	}
}

// updateProfile saves owner-editable fields. Changing the region does not
// touch the region snapshot on previously created posts.
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		req, apiErr := h.decodeAndValidate(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.profileRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("profile not found"))
			return
		}

		existing.Name = strings.TrimSpace(req.Name)
		existing.Region = req.Region
		existing.Phone = req.Phone
		existing.LicenseType = req.LicenseType
		existing.YearsExperience = req.YearsExperience

		if err := h.profileRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update profile", "profile", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// uploadAvatar stores an avatar image and points the caller's profile at it.
func (h profileHandler) uploadAvatar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		profile, err := h.profileRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("profile not found"))
			return
		}

		url, apiErr := handleImageUpload(r, services.StorageFolderAvatars)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if err := h.profileRepo.SetAvatarURL(userID, url); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update profile", "profile", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"avatarUrl": url})
	}
}

func (h profileHandler) decodeAndValidate(r *http.Request) (*ProfileRequest, *errs.ApiErr) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode profile request body")
		return nil, errs.NewMalformedPayloadError("profile", err)
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, errs.NewMissingRequiredFieldError("name")
	}
	if req.Region == "" {
		return nil, errs.NewMissingRequiredFieldError("region")
	}
	if !models.IsValidRegion(req.Region) {
		return nil, errs.NewInvalidFieldError("region", "unknown region")
	}
	if req.YearsExperience != nil && *req.YearsExperience < 0 {
		return nil, errs.NewInvalidFieldError("yearsExperience", "must not be negative")
	}

	return &req, nil
}
