package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/database"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/errs"
)

type dashboardHandler struct {
	responder Responder
	logger    zerolog.Logger
	postRepo  *database.PostRepo
}

func newDashboardHandler(postRepo *database.PostRepo) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		postRepo:  postRepo,
	}
}

type FinanceSummary struct {
	WeeklyEarnings   float64 `json:"weeklyEarnings"`
	MonthlyEarnings  float64 `json:"monthlyEarnings"`
	FuelCosts        float64 `json:"fuelCosts"`
	InsuranceDue     float64 `json:"insuranceDue"`
	TaxSetAside      float64 `json:"taxSetAside"`
	MileageThisMonth int     `json:"mileageThisMonth"`
	PostsCount       int64   `json:"postsCount"`
	CommentsCount    int64   `json:"commentsCount"`
	Illustrative     bool    `json:"illustrative"`
}

// getFinanceSummary returns the finance dashboard figures. The money
// numbers are illustrative placeholders until open banking integration
// lands; the activity counts are live.
func (h dashboardHandler) getFinanceSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		summary := FinanceSummary{
			WeeklyEarnings:   612.40,
			MonthlyEarnings:  2489.75,
			FuelCosts:        318.20,
			InsuranceDue:     142.50,
			TaxSetAside:      497.95,
			MileageThisMonth: 1184,
			Illustrative:     true,
		}

		var g errgroup.Group
		g.Go(func() error {
			count, err := h.postRepo.CountPostsByAuthor(userID)
			if err != nil {
				return err
			}
			summary.PostsCount = count
			return nil
		})
		g.Go(func() error {
			count, err := h.postRepo.CountCommentsByAuthor(userID)
			if err != nil {
				return err
			}
			summary.CommentsCount = count
			return nil
		})
		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count activity", "post", err))
			return
		}

		h.responder.WriteJSON(w, summary)
	}
}
