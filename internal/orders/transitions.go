package orders

import (
	"fmt"

	"github.com/angelmondragon/shopdesk/internal/catalog"
	"github.com/angelmondragon/shopdesk/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
)

// decision is the pure outcome of applying an action to an order's current
// status. Exactly one of next, warning or reject is meaningful per outcome.
type decision struct {
	outcome Outcome
	next    enums.OrderStatus
	message string
	warning string
	reject  error
}

func decide(action enums.OrderAction, order catalog.Order) decision {
	id := order.ID
	current := order.Status

	switch action {
	case enums.OrderActionRetrieve:
		return decision{
			outcome: OutcomeRetrieved,
			message: fmt.Sprintf("Order %s is %s", id, current),
		}

	case enums.OrderActionShip:
		if current.IsDispatched() {
			return decision{
				outcome: OutcomeWarning,
				warning: fmt.Sprintf("Order %s has already been %s", id, current),
			}
		}
		return decision{
			outcome: OutcomeApplied,
			next:    enums.OrderStatusShipped,
			message: fmt.Sprintf("Order %s has been shipped successfully. Customer %s will be notified.", id, order.CustomerID),
		}

	case enums.OrderActionCancel:
		if current.IsDispatched() {
			return decision{
				reject: pkgerrors.Newf(pkgerrors.CodeStateConflict,
					"cannot cancel order %s: order has already been %s", id, current).
					WithDetails(map[string]any{
						"order_id": id,
						"status":   current,
					}),
			}
		}
		return decision{
			outcome: OutcomeApplied,
			next:    enums.OrderStatusCancelled,
			message: fmt.Sprintf("Order %s has been cancelled. Refund will be processed within 3-5 business days.", id),
		}

	case enums.OrderActionComplete:
		if current != enums.OrderStatusShipped {
			return decision{
				outcome: OutcomeWarning,
				warning: fmt.Sprintf("Order %s must be %s before it can be completed. Current status: %s",
					id, enums.OrderStatusShipped, current),
			}
		}
		return decision{
			outcome: OutcomeApplied,
			next:    enums.OrderStatusDelivered,
			message: fmt.Sprintf("Order %s marked as delivered. Thank you for your business!", id),
		}
	}

	// unreachable for parsed actions
	return decision{reject: invalidActionError(string(action))}
}

func invalidActionError(raw string) error {
	names := enums.OrderActionNames()
	return pkgerrors.Newf(pkgerrors.CodeValidation, "invalid action '%s'", raw).
		WithDetails(map[string]any{"valid_actions": names})
}
