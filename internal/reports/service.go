package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopdesk/internal/catalog"
	"github.com/angelmondragon/shopdesk/internal/inventory"
	"github.com/angelmondragon/shopdesk/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
	"github.com/angelmondragon/shopdesk/pkg/types"
)

type catalogReader interface {
	Products(ctx context.Context) ([]catalog.Product, error)
	Orders(ctx context.Context) ([]catalog.Order, error)
	Customers(ctx context.Context) ([]catalog.Customer, error)
}

// Service builds read-only aggregates over the catalog.
type Service interface {
	SalesReport(ctx context.Context, period string) (*SalesReport, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}

// ServiceParams wires the report service. Now defaults to time.Now.
type ServiceParams struct {
	Catalog catalogReader
	Now     func() time.Time
}

type service struct {
	catalog catalogReader
	now     func() time.Time
}

// NewService builds the report service.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog reader required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{catalog: params.Catalog, now: now}, nil
}

func (s *service) SalesReport(ctx context.Context, rawPeriod string) (*SalesReport, error) {
	period, err := enums.ParseReportPeriod(rawPeriod)
	if err != nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid period '%s'", rawPeriod).
			WithDetails(map[string]any{"valid_periods": enums.ReportPeriodNames()})
	}

	orders, err := s.catalog.Orders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	report := &SalesReport{
		Period:               period,
		ReportPeriod:         period.Title(),
		GeneratedAt:          s.now().UTC(),
		OrderStatusBreakdown: types.OrderedCounts{},
		InventoryAlerts: InventoryAlerts{
			LowStockItems:   []StockAlert{},
			OutOfStockItems: []StockAlert{},
		},
	}

	revenue := decimal.Zero
	var sales types.OrderedCounts
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
		report.OrderStatusBreakdown.Increment(string(o.Status))
		for _, sku := range o.Items {
			sales.Increment(sku)
		}
	}

	count := len(orders)
	report.SalesMetrics = SalesMetrics{
		TotalRevenue:      revenue,
		TotalOrders:       count,
		AverageOrderValue: ratio(revenue, count),
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.SKU] = p.Name
		switch inventory.ClassifyStock(p.Stock) {
		case enums.StockStatusLowStock:
			report.InventoryAlerts.LowStockItems = append(report.InventoryAlerts.LowStockItems, StockAlert{SKU: p.SKU, Name: p.Name, Stock: p.Stock})
		case enums.StockStatusOutOfStock:
			report.InventoryAlerts.OutOfStockItems = append(report.InventoryAlerts.OutOfStockItems, StockAlert{SKU: p.SKU, Name: p.Name, Stock: p.Stock})
		}
	}

	if best, ok := sales.Max(); ok {
		name, known := names[catalog.NormalizeKey(best.Label)]
		if !known {
			name = "N/A"
		}
		report.TopSellingProduct = &TopSeller{SKU: best.Label, Name: name, UnitsSold: best.Count}
	}

	delivered := decimal.NewFromInt(int64(report.OrderStatusBreakdown.Get(string(enums.OrderStatusDelivered))))
	report.FulfillmentRate = ratio(delivered.Mul(decimal.NewFromInt(100)), count).Round(1)

	report.Insights = insights(revenue, len(report.InventoryAlerts.LowStockItems), report.FulfillmentRate)
	return report, nil
}

func insights(revenue decimal.Decimal, lowStock int, fulfillment decimal.Decimal) []string {
	trend := "stable"
	if revenue.GreaterThan(positiveRevenueThreshold) {
		trend = "positive"
	}
	return []string{
		fmt.Sprintf("Revenue growth trending %s", trend),
		fmt.Sprintf("%d items need restocking soon", lowStock),
		fmt.Sprintf("Order fulfillment rate: %s%%", fulfillment.StringFixed(1)),
	}
}

// ratio divides by count, returning zero for an empty table.
func ratio(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	orders, err := s.catalog.Orders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	customers, err := s.catalog.Customers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}

	out := &Dashboard{
		GeneratedAt: s.now().UTC(),
		Inventory:   make([]InventoryLevel, 0, len(products)),
	}
	for _, p := range products {
		out.Inventory = append(out.Inventory, InventoryLevel{
			SKU:    p.SKU,
			Name:   p.Name,
			Stock:  p.Stock,
			Status: inventory.ClassifyStock(p.Stock),
		})
	}

	byDate := make(map[string]*DailyRevenue)
	for _, o := range orders {
		key := o.OrderDate.Format(catalog.DateLayout)
		day, ok := byDate[key]
		if !ok {
			day = &DailyRevenue{Date: key, Revenue: decimal.Zero}
			byDate[key] = day
		}
		day.Revenue = day.Revenue.Add(o.Total)
		day.Orders++
	}
	out.RevenueByDate = make([]DailyRevenue, 0, len(byDate))
	for _, day := range byDate {
		out.RevenueByDate = append(out.RevenueByDate, *day)
	}
	sort.Slice(out.RevenueByDate, func(i, j int) bool {
		return out.RevenueByDate[i].Date < out.RevenueByDate[j].Date
	})

	segments := enums.CustomerSegments()
	counts := make(map[enums.CustomerSegment]int, len(segments))
	for _, c := range customers {
		counts[c.Segment]++
	}
	out.SegmentDistribution = make([]SegmentShare, 0, len(segments))
	for _, seg := range segments {
		out.SegmentDistribution = append(out.SegmentDistribution, SegmentShare{Segment: seg, Customers: counts[seg]})
	}
	return out, nil
}
