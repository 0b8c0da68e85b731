package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopdesk/pkg/enums"
)

// LowStockThreshold is the smallest quantity classified as in stock.
const LowStockThreshold = 10

// StockReport is the result of a stock lookup.
type StockReport struct {
	ProductName       string            `json:"product_name"`
	SKU               string            `json:"sku"`
	StockQuantity     int               `json:"stock_quantity"`
	Price             decimal.Decimal   `json:"price"`
	Category          string            `json:"category"`
	WarehouseLocation string            `json:"warehouse_location"`
	Status            enums.StockStatus `json:"status"`
	StatusLabel       string            `json:"status_label"`
}

// ClassifyStock buckets a quantity: 0 is out of stock, 1-9 low, 10+ in stock.
func ClassifyStock(quantity int) enums.StockStatus {
	switch {
	case quantity <= 0:
		return enums.StockStatusOutOfStock
	case quantity < LowStockThreshold:
		return enums.StockStatusLowStock
	default:
		return enums.StockStatusInStock
	}
}
