package orders

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopdesk/internal/catalog"
	"github.com/angelmondragon/shopdesk/pkg/enums"
)

// Outcome classifies a successful transition request.
type Outcome string

const (
	OutcomeRetrieved Outcome = "retrieved"
	OutcomeApplied   Outcome = "applied"
	// OutcomeWarning is a harmless no-op: the order was left unchanged and
	// the caller should treat the request as a success with notice.
	OutcomeWarning Outcome = "warning"
)

// metric outcomes for requests that end in an error
const (
	outcomeRejected = "rejected"
	outcomeConflict = "conflict"
	outcomeInvalid  = "invalid"
)

// OrderSnapshot is the read model returned for an order.
type OrderSnapshot struct {
	OrderID     string            `json:"order_id"`
	CustomerID  string            `json:"customer_id"`
	Items       []string          `json:"items"`
	ItemCount   int               `json:"item_count"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Status      enums.OrderStatus `json:"status"`
	OrderDate   string            `json:"order_date"`
}

// NewSnapshot renders a catalog order.
func NewSnapshot(o catalog.Order) OrderSnapshot {
	items := append([]string(nil), o.Items...)
	if items == nil {
		items = []string{}
	}
	return OrderSnapshot{
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		Items:       items,
		ItemCount:   len(items),
		TotalAmount: o.Total,
		Status:      o.Status,
		OrderDate:   o.OrderDate.Format(catalog.DateLayout),
	}
}

// TransitionResult is returned for every non-error transition request.
type TransitionResult struct {
	Action         enums.OrderAction `json:"action"`
	Outcome        Outcome           `json:"outcome"`
	PreviousStatus enums.OrderStatus `json:"previous_status"`
	Order          OrderSnapshot     `json:"order"`
	Message        string            `json:"message"`
	Warning        string            `json:"warning,omitempty"`
}

// IsWarning reports whether the request was a no-op with notice.
func (r *TransitionResult) IsWarning() bool {
	return r != nil && r.Outcome == OutcomeWarning
}
