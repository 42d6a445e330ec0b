package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/database"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/errs"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/models"
)

type marketplaceHandler struct {
	responder       Responder
	logger          zerolog.Logger
	marketplaceRepo *database.MarketplaceRepo
}

func newMarketplaceHandler(marketplaceRepo *database.MarketplaceRepo) marketplaceHandler {
	logger := log.With().Str("handlerName", "marketplaceHandler").Logger()

	return marketplaceHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		marketplaceRepo: marketplaceRepo,
	}
}

// getApprovedCompanies lists approved directory listings, optionally
// filtered by region and category query parameters.
func (h marketplaceHandler) getApprovedCompanies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var region, category *string
		if v := strings.TrimSpace(r.URL.Query().Get("region")); v != "" {
			if !models.IsValidRegion(v) {
				h.responder.WriteError(w, errs.NewInvalidFieldError("region", "unknown region"))
				return
			}
			region = &v
		}
		if v := strings.TrimSpace(r.URL.Query().Get("category")); v != "" {
			category = &v
		}

		companies, err := h.marketplaceRepo.FindApproved(region, category)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find companies", "marketplace company", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"companies": companies,
			"total":     len(companies),
		})
	}
}

func (h marketplaceHandler) getCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, apiErr := parseCompanyID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		company, err := h.marketplaceRepo.FindByID(companyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find company", "marketplace company", err))
			return
		}
		// Unapproved listings are invisible outside the admin surface.
		if company == nil || !company.Approved {
			h.responder.WriteError(w, errs.NewNotFoundError("company not found"))
			return
		}

		h.responder.WriteJSON(w, company)
	}
}

func (h marketplaceHandler) getAllCompanies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companies, err := h.marketplaceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find companies", "marketplace company", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"companies": companies,
			"total":     len(companies),
		})
	}
}

func (h marketplaceHandler) createCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var company models.MarketplaceCompany
		if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode company request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("marketplace company", err))
			return
		}

		if apiErr := validateCompany(&company); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if err := h.marketplaceRepo.Add(&company); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create company", "marketplace company", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, company)
	}
}

func (h marketplaceHandler) updateCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, apiErr := parseCompanyID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.marketplaceRepo.FindByID(companyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find company", "marketplace company", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("company not found"))
			return
		}

		var company models.MarketplaceCompany
		if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode company request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("marketplace company", err))
			return
		}

		if apiErr := validateCompany(&company); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		company.ID = companyID
		company.CreatedAt = existing.CreatedAt

		if err := h.marketplaceRepo.Update(&company); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update company", "marketplace company", err))
			return
		}

		h.responder.WriteJSON(w, company)
	}
}

func (h marketplaceHandler) deleteCompany() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, apiErr := parseCompanyID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.marketplaceRepo.FindByID(companyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find company", "marketplace company", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("company not found"))
			return
		}

		if err := h.marketplaceRepo.Delete(companyID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete company", "marketplace company", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "company deleted successfully",
		})
	}
}

func validateCompany(company *models.MarketplaceCompany) *errs.ApiErr {
	if strings.TrimSpace(company.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if strings.TrimSpace(company.Category) == "" {
		return errs.NewMissingRequiredFieldError("category")
	}
	if strings.TrimSpace(company.Description) == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	if company.Region != nil && *company.Region != "" && !models.IsValidRegion(*company.Region) {
		return errs.NewInvalidFieldError("region", "unknown region")
	}
	return nil
}

func parseCompanyID(r *http.Request) (uuid.UUID, *errs.ApiErr) {
	companyIDStr := chi.URLParam(r, "companyID")
	if companyIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing companyID")
	}
	companyID, err := uuid.Parse(companyIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid companyID")
	}
	return companyID, nil
}
