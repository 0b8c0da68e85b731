package catalog

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/angelmondragon/shopdesk/pkg/enums"
)

// Seed is the initial table contents loaded into a store.
type Seed struct {
	Products  []Product
	Orders    []Order
	Customers []Customer
}

// Validate reports every malformed record at once.
func (s Seed) Validate() error {
	var errs error

	skus := make(map[string]struct{}, len(s.Products))
	for i, p := range s.Products {
		key := NormalizeKey(p.SKU)
		switch {
		case key == "":
			errs = multierr.Append(errs, fmt.Errorf("product[%d]: sku required", i))
		case hasKey(skus, key):
			errs = multierr.Append(errs, fmt.Errorf("product %s: duplicate sku", key))
		}
		if p.Stock < 0 {
			errs = multierr.Append(errs, fmt.Errorf("product %s: negative stock %d", key, p.Stock))
		}
		if p.Price.IsNegative() {
			errs = multierr.Append(errs, fmt.Errorf("product %s: negative price %s", key, p.Price))
		}
	}

	ids := make(map[string]struct{}, len(s.Orders))
	for i, o := range s.Orders {
		key := NormalizeKey(o.ID)
		switch {
		case key == "":
			errs = multierr.Append(errs, fmt.Errorf("order[%d]: id required", i))
		case hasKey(ids, key):
			errs = multierr.Append(errs, fmt.Errorf("order %s: duplicate id", key))
		}
		if !o.Status.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("order %s: unknown status %q", key, o.Status))
		}
		if o.Total.IsNegative() {
			errs = multierr.Append(errs, fmt.Errorf("order %s: negative total %s", key, o.Total))
		}
	}

	customers := make(map[string]struct{}, len(s.Customers))
	for i, c := range s.Customers {
		key := NormalizeKey(c.ID)
		switch {
		case key == "":
			errs = multierr.Append(errs, fmt.Errorf("customer[%d]: id required", i))
		case hasKey(customers, key):
			errs = multierr.Append(errs, fmt.Errorf("customer %s: duplicate id", key))
		}
		if !c.Segment.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("customer %s: unknown segment %q", key, c.Segment))
		}
	}

	return errs
}

func hasKey(seen map[string]struct{}, key string) bool {
	if _, ok := seen[key]; ok {
		return true
	}
	seen[key] = struct{}{}
	return false
}

// DefaultSeed returns the demo catalog. Each call returns fresh slices.
func DefaultSeed() Seed {
	return Seed{
		Products: []Product{
			{SKU: "PROD001", Name: "Laptop Pro 15", Stock: 45, Price: decimal.RequireFromString("1299.99"), Category: "Electronics", Warehouse: "WH-001"},
			{SKU: "PROD002", Name: "Wireless Mouse", Stock: 150, Price: decimal.RequireFromString("29.99"), Category: "Electronics", Warehouse: "WH-001"},
			{SKU: "PROD003", Name: "USB-C Cable", Stock: 8, Price: decimal.RequireFromString("12.99"), Category: "Accessories", Warehouse: "WH-002"},
			{SKU: "PROD004", Name: "Ergonomic Keyboard", Stock: 0, Price: decimal.RequireFromString("89.99"), Category: "Electronics", Warehouse: "WH-001"},
			{SKU: "PROD005", Name: "Monitor 27 inch", Stock: 22, Price: decimal.RequireFromString("349.99"), Category: "Electronics", Warehouse: "WH-001"},
		},
		Orders: []Order{
			{ID: "ORD001", CustomerID: "CUST001", Items: []string{"PROD001", "PROD002"}, Total: decimal.RequireFromString("1329.98"), Status: enums.OrderStatusShipped, OrderDate: Date(2025, time.September, 15)},
			{ID: "ORD002", CustomerID: "CUST002", Items: []string{"PROD003"}, Total: decimal.RequireFromString("12.99"), Status: enums.OrderStatusPending, OrderDate: Date(2025, time.September, 28)},
			{ID: "ORD003", CustomerID: "CUST001", Items: []string{"PROD005"}, Total: decimal.RequireFromString("349.99"), Status: enums.OrderStatusDelivered, OrderDate: Date(2025, time.September, 20)},
			{ID: "ORD004", CustomerID: "CUST003", Items: []string{"PROD002", "PROD003"}, Total: decimal.RequireFromString("42.98"), Status: enums.OrderStatusProcessing, OrderDate: Date(2025, time.September, 29)},
		},
		Customers: []Customer{
			{ID: "CUST001", Name: "Alice Johnson", Email: "alice@example.com", TotalOrders: 15, LifetimeValue: decimal.RequireFromString("4500.50"), Segment: enums.CustomerSegmentVIP},
			{ID: "CUST002", Name: "Bob Smith", Email: "bob@example.com", TotalOrders: 3, LifetimeValue: decimal.RequireFromString("450.00"), Segment: enums.CustomerSegmentRegular},
			{ID: "CUST003", Name: "Carol White", Email: "carol@example.com", TotalOrders: 8, LifetimeValue: decimal.RequireFromString("1200.00"), Segment: enums.CustomerSegmentGold},
		},
	}
}
