package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopdesk/pkg/enums"
	"github.com/angelmondragon/shopdesk/pkg/types"
)

// revenue above this figure reads as a positive trend
var positiveRevenueThreshold = decimal.NewFromInt(1500)

// SalesReport aggregates the full order and product tables. Period is a
// label only and does not restrict which orders are counted.
type SalesReport struct {
	Period               enums.ReportPeriod  `json:"period"`
	ReportPeriod         string              `json:"report_period"`
	GeneratedAt          time.Time           `json:"generated_at"`
	SalesMetrics         SalesMetrics        `json:"sales_metrics"`
	OrderStatusBreakdown types.OrderedCounts `json:"order_status_breakdown"`
	TopSellingProduct    *TopSeller          `json:"top_selling_product"`
	InventoryAlerts      InventoryAlerts     `json:"inventory_alerts"`
	FulfillmentRate      decimal.Decimal     `json:"fulfillment_rate"`
	Insights             []string            `json:"insights"`
}

// SalesMetrics holds revenue totals. AverageOrderValue is exact; round at
// the presentation layer.
type SalesMetrics struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalOrders       int             `json:"total_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// TopSeller is the SKU referenced by the most order lines.
type TopSeller struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitsSold int    `json:"units_sold"`
}

type StockAlert struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

type InventoryAlerts struct {
	LowStockItems   []StockAlert `json:"low_stock_items"`
	OutOfStockItems []StockAlert `json:"out_of_stock_items"`
}

// Dashboard backs the charts of the operations UI.
type Dashboard struct {
	GeneratedAt         time.Time        `json:"generated_at"`
	Inventory           []InventoryLevel `json:"inventory"`
	RevenueByDate       []DailyRevenue   `json:"revenue_by_date"`
	SegmentDistribution []SegmentShare   `json:"segment_distribution"`
}

type InventoryLevel struct {
	SKU    string            `json:"sku"`
	Name   string            `json:"name"`
	Stock  int               `json:"stock"`
	Status enums.StockStatus `json:"status"`
}

type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

type SegmentShare struct {
	Segment   enums.CustomerSegment `json:"segment"`
	Customers int                   `json:"customers"`
}
