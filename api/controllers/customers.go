package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/shopdesk/api/responses"
	"github.com/angelmondragon/shopdesk/api/validators"
	"github.com/angelmondragon/shopdesk/internal/customers"
	"github.com/angelmondragon/shopdesk/pkg/logger"
)

type customerService interface {
	Profile(ctx context.Context, customerID string) (*customers.CustomerAnalytics, error)
	Recommend(ctx context.Context, customerID, category string) (*customers.RecommendationList, error)
}

func CustomerProfile(svc customerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := validators.PathParam(r, "customerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Profile(logg.WithCustomerID(r.Context(), customerID), customerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}

// CustomerRecommendations accepts an optional ?category= filter.
func CustomerRecommendations(svc customerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := validators.PathParam(r, "customerId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		category := validators.QueryString(r, "category")

		list, err := svc.Recommend(logg.WithCustomerID(r.Context(), customerID), customerID, category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
