package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/shopdesk/api/responses"
	"github.com/angelmondragon/shopdesk/api/validators"
	"github.com/angelmondragon/shopdesk/internal/inventory"
	"github.com/angelmondragon/shopdesk/pkg/logger"
)

type stockLookup interface {
	LookupStock(ctx context.Context, sku string) (*inventory.StockReport, error)
}

// InventoryLookup returns the stock report for {sku}.
func InventoryLookup(svc stockLookup, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sku, err := validators.PathParam(r, "sku")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.LookupStock(logg.WithSKU(r.Context(), sku), sku)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}
