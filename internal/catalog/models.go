package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopdesk/pkg/enums"
)

// DateLayout is the calendar date format used for order dates.
const DateLayout = "2006-01-02"

// Product is a catalog entry keyed by SKU.
type Product struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	Warehouse string          `json:"warehouse"`
}

// Order references products by SKU. Total is stored, never recomputed from items.
type Order struct {
	ID         string            `json:"order_id"`
	CustomerID string            `json:"customer_id"`
	Items      []string          `json:"items"`
	Total      decimal.Decimal   `json:"total"`
	Status     enums.OrderStatus `json:"status"`
	OrderDate  time.Time         `json:"order_date"`
}

// Clone returns a copy whose item slice is not shared with o.
func (o Order) Clone() Order {
	out := o
	out.Items = append([]string(nil), o.Items...)
	return out
}

// Customer holds the read-only profile used for segmentation.
type Customer struct {
	ID            string                `json:"customer_id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	TotalOrders   int                   `json:"total_orders"`
	LifetimeValue decimal.Decimal       `json:"lifetime_value"`
	Segment       enums.CustomerSegment `json:"segment"`
}

// Date builds a UTC midnight calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
