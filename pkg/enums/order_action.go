package enums

import (
	"fmt"
	"strings"
)

// OrderAction is an operation a caller can request against an order.
type OrderAction string

const (
	OrderActionRetrieve OrderAction = "retrieve"
	OrderActionShip     OrderAction = "ship"
	OrderActionCancel   OrderAction = "cancel"
	OrderActionComplete OrderAction = "complete"
)

var validOrderActions = []OrderAction{
	OrderActionRetrieve,
	OrderActionShip,
	OrderActionCancel,
	OrderActionComplete,
}

// OrderActions returns the supported actions in display order.
func OrderActions() []OrderAction {
	out := make([]OrderAction, len(validOrderActions))
	copy(out, validOrderActions)
	return out
}

// OrderActionNames returns the supported actions as plain strings.
func OrderActionNames() []string {
	out := make([]string, 0, len(validOrderActions))
	for _, a := range validOrderActions {
		out = append(out, string(a))
	}
	return out
}

// String implements fmt.Stringer.
func (a OrderAction) String() string {
	return string(a)
}

// IsValid reports whether the value is a known OrderAction.
func (a OrderAction) IsValid() bool {
	for _, candidate := range validOrderActions {
		if candidate == a {
			return true
		}
	}
	return false
}

// Mutates reports whether the action may change order status.
func (a OrderAction) Mutates() bool {
	return a != OrderActionRetrieve
}

// ParseOrderAction converts raw input into an OrderAction. Matching is case-insensitive.
func ParseOrderAction(value string) (OrderAction, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validOrderActions {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order action %q", value)
}
