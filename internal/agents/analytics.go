package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/shopdesk/pkg/enums"
)

// AnalyticsAgent summarises sales and customer data.
type AnalyticsAgent struct {
	base
	reports   reportService
	customers customerService
}

var segmentActions = map[enums.CustomerSegment][]string{
	enums.CustomerSegmentVIP: {
		"Assign dedicated account manager",
		"Offer exclusive early access to new products",
		"Provide white-glove customer service",
	},
	enums.CustomerSegmentGold: {
		"Send quarterly appreciation gifts",
		"Offer loyalty program benefits",
		"Personalized email campaigns",
	},
}

var defaultSegmentActions = []string{
	"Engage with targeted promotions",
	"Encourage repeat purchases",
	"Build brand loyalty",
}

func actionsFor(segment enums.CustomerSegment) []string {
	if actions, ok := segmentActions[segment]; ok {
		return actions
	}
	return defaultSegmentActions
}

func (a *AnalyticsAgent) BusinessReport(ctx context.Context, period string) (*Reply, error) {
	ctx = a.withAgent(a.logg.WithField(ctx, "period", period))
	a.logg.Info(ctx, "agent.analytics.business_report")

	report, err := a.reports.SalesReport(ctx, period)
	if err != nil {
		return nil, err
	}

	analysis := a.analyze(ctx, "Analyze this sales report and provide an executive summary with key insights and recommendations:\n"+encode(report))

	metrics := report.SalesMetrics
	var b strings.Builder
	b.WriteString(banner("EXECUTIVE BUSINESS SUMMARY", 30))
	fmt.Fprintf(&b, "\nReport Period: %s\n", report.ReportPeriod)
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format(time.RFC3339))
	b.WriteString("KEY METRICS:\n")
	fmt.Fprintf(&b, "- Total Revenue: %s\n", money(metrics.TotalRevenue))
	fmt.Fprintf(&b, "- Total Orders: %d\n", metrics.TotalOrders)
	fmt.Fprintf(&b, "- Average Order Value: %s\n\n", money(metrics.AverageOrderValue))
	b.WriteString("TOP PERFORMER:\n")
	if top := report.TopSellingProduct; top != nil {
		fmt.Fprintf(&b, "- %s (%d units)\n\n", top.Name, top.UnitsSold)
	} else {
		b.WriteString("- N/A\n\n")
	}
	b.WriteString("OPERATIONAL INSIGHTS:\n")
	for _, insight := range report.Insights {
		fmt.Fprintf(&b, "- %s\n", insight)
	}

	alerts := report.InventoryAlerts
	if n := len(alerts.OutOfStockItems); n > 0 {
		fmt.Fprintf(&b, "\nURGENT: %d items out of stock", n)
	}
	if n := len(alerts.LowStockItems); n > 0 {
		fmt.Fprintf(&b, "\nWarning: %d items low on stock", n)
	}

	b.WriteString("\n\nRECOMMENDATIONS:\n")
	b.WriteString("- Continue current sales strategies\n")
	b.WriteString("- Address inventory shortages immediately\n")
	b.WriteString("- Focus on top-performing product categories")
	if analysis != "" {
		b.WriteString("\n\nANALYSIS:\n")
		b.WriteString(analysis)
	}

	return &Reply{Agent: a.name, Text: b.String(), Analysis: analysis, Data: report}, nil
}

func (a *AnalyticsAgent) AnalyzeCustomer(ctx context.Context, customerID string) (*Reply, error) {
	ctx = a.withAgent(a.logg.WithCustomerID(ctx, customerID))
	a.logg.Info(ctx, "agent.analytics.analyze_customer")

	profile, err := a.customers.Profile(ctx, customerID)
	if err != nil {
		return nil, err
	}

	analysis := a.analyze(ctx, "Analyze this customer data and provide strategic insights:\n"+encode(profile)+
		"\n\nFocus on: retention strategies, upsell opportunities, and engagement tactics.")

	var b strings.Builder
	b.WriteString(banner("CUSTOMER SEGMENT ANALYSIS", 29))
	fmt.Fprintf(&b, "\n\nCustomer: %s (%s)\n", profile.Name, profile.CustomerID)
	fmt.Fprintf(&b, "Segment: %s\n", profile.CustomerSegment)
	fmt.Fprintf(&b, "Engagement: %s\n\n", profile.EngagementLevel)
	b.WriteString("METRICS:\n")
	fmt.Fprintf(&b, "- Lifetime Value: %s\n", money(profile.LifetimeValue))
	fmt.Fprintf(&b, "- Total Orders: %d\n\n", profile.TotalOrders)
	b.WriteString("STRATEGIC RECOMMENDATION:\n")
	b.WriteString(profile.Recommendation)
	b.WriteString("\n\nACTION ITEMS:\n")
	actions := actionsFor(profile.CustomerSegment)
	for i, action := range actions {
		b.WriteString("- ")
		b.WriteString(action)
		if i < len(actions)-1 {
			b.WriteByte('\n')
		}
	}
	if analysis != "" {
		b.WriteString("\n\nANALYSIS:\n")
		b.WriteString(analysis)
	}

	return &Reply{Agent: a.name, Text: b.String(), Analysis: analysis, Data: profile}, nil
}
