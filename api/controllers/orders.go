package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/shopdesk/api/responses"
	"github.com/angelmondragon/shopdesk/api/validators"
	"github.com/angelmondragon/shopdesk/internal/orders"
	"github.com/angelmondragon/shopdesk/pkg/logger"
)

type orderService interface {
	Retrieve(ctx context.Context, orderID string) (*orders.TransitionResult, error)
	Transition(ctx context.Context, orderID, action string) (*orders.TransitionResult, error)
}

type orderActionRequest struct {
	Action string `json:"action" validate:"required,max=32"`
}

func OrderGet(svc orderService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := validators.PathParam(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Retrieve(logg.WithOrderID(r.Context(), orderID), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// OrderAction applies {"action": "..."} to {orderId}. A no-op transition
// still answers 200, with the notice in the envelope warnings.
func OrderAction(svc orderService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := validators.PathParam(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req orderActionRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Transition(logg.WithOrderID(r.Context(), orderID), orderID, req.Action)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if result.IsWarning() {
			responses.WriteSuccessWithWarnings(w, result, result.Warning)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
