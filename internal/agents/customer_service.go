package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/shopdesk/internal/customers"
	"github.com/angelmondragon/shopdesk/internal/orders"
	"github.com/angelmondragon/shopdesk/pkg/enums"
)

// CustomerServiceAgent answers order questions and drafts customer emails.
type CustomerServiceAgent struct {
	base
	orders    orderService
	customers customerService
}

var statusMessages = map[enums.OrderStatus]string{
	enums.OrderStatusShipped:    "You should receive tracking information shortly.",
	enums.OrderStatusDelivered:  "Your order has been successfully delivered!",
	enums.OrderStatusPending:    "We're preparing your order for shipment.",
	enums.OrderStatusProcessing: "Your order is being processed by our warehouse team.",
}

func statusMessage(status enums.OrderStatus) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return "We're working on your order."
}

func (a *CustomerServiceAgent) OrderInquiry(ctx context.Context, orderID string) (*Reply, error) {
	ctx = a.withAgent(a.logg.WithOrderID(ctx, orderID))
	a.logg.Info(ctx, "agent.customer_service.order_inquiry")

	result, err := a.orders.Retrieve(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order := result.Order

	analysis := a.analyze(ctx, "A customer is asking about their order. Here's the data:\n"+encode(order)+
		"\n\nProvide a friendly response explaining the order status.")

	var b strings.Builder
	b.WriteString(banner("CUSTOMER EMAIL RESPONSE", 26))
	b.WriteString("\n\nDear Valued Customer,\n\n")
	fmt.Fprintf(&b, "Thank you for contacting us regarding your order %s.\n\n", order.OrderID)
	b.WriteString("Order Details:\n")
	fmt.Fprintf(&b, "- Order ID: %s\n", order.OrderID)
	fmt.Fprintf(&b, "- Status: %s\n", strings.ToUpper(string(order.Status)))
	fmt.Fprintf(&b, "- Total: %s\n", money(order.TotalAmount))
	fmt.Fprintf(&b, "- Items: %d item(s)\n", order.ItemCount)
	fmt.Fprintf(&b, "- Order Date: %s\n\n", order.OrderDate)
	fmt.Fprintf(&b, "Your order is currently %s.\n%s\n\n", order.Status, statusMessage(order.Status))
	if analysis != "" {
		b.WriteString(analysis)
		b.WriteString("\n\n")
	}
	b.WriteString("If you have any questions, please don't hesitate to contact us.\n\n")
	b.WriteString("Best regards,\nCustomer Service Team")

	return &Reply{Agent: a.name, Text: b.String(), Analysis: analysis, Data: order}, nil
}

// RecommendationEmail is the data behind a recommendation reply.
type RecommendationEmail struct {
	Customer        *customers.CustomerAnalytics  `json:"customer"`
	Recommendations *customers.RecommendationList `json:"recommendations"`
}

func (a *CustomerServiceAgent) RecommendProducts(ctx context.Context, customerID, category string) (*Reply, error) {
	ctx = a.withAgent(a.logg.WithFields(a.logg.WithCustomerID(ctx, customerID), map[string]any{"category": category}))
	a.logg.Info(ctx, "agent.customer_service.recommend")

	profile, err := a.customers.Profile(ctx, customerID)
	if err != nil {
		return nil, err
	}
	recs, err := a.customers.Recommend(ctx, customerID, category)
	if err != nil {
		return nil, err
	}

	analysis := a.analyze(ctx, "Customer profile:\n"+encode(profile)+
		"\n\nRecommendations:\n"+encode(recs)+
		"\n\nWrite a personalized email suggesting these products to the customer.")

	var b strings.Builder
	b.WriteString(banner("PERSONALIZED PRODUCT RECOMMENDATIONS", 40))
	fmt.Fprintf(&b, "\n\nDear %s,\n\n", profile.Name)
	fmt.Fprintf(&b, "As one of our valued %s customers, we've handpicked\nsome exclusive recommendations just for you:\n", profile.CustomerSegment)
	for i, rec := range recs.Recommendations {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, rec.ProductName)
		fmt.Fprintf(&b, "   Price: %s\n", money(rec.Price))
		fmt.Fprintf(&b, "   Match Score: %d\n", rec.RelevanceScore)
		fmt.Fprintf(&b, "   Why: %s\n", rec.Reason)
	}
	b.WriteString("\nThese selections are based on your purchase history and preferences.\n")
	fmt.Fprintf(&b, "Shop now and enjoy your %s benefits!\n\n", profile.CustomerSegment)
	if analysis != "" {
		b.WriteString(analysis)
		b.WriteString("\n\n")
	}
	b.WriteString("Best regards,\nYour Personal Shopping Team")

	data := RecommendationEmail{Customer: profile, Recommendations: recs}
	return &Reply{Agent: a.name, Text: b.String(), Analysis: analysis, Data: data}, nil
}

func (a *CustomerServiceAgent) ShipOrder(ctx context.Context, orderID string) (*Reply, error) {
	ctx = a.withAgent(a.logg.WithOrderID(ctx, orderID))
	a.logg.Info(ctx, "agent.customer_service.ship")

	result, err := a.orders.Transition(ctx, orderID, string(enums.OrderActionShip))
	if err != nil {
		return nil, err
	}

	analysis := a.analyze(ctx, "Order shipment result:\n"+encode(result)+
		"\n\nGenerate a customer notification email about the shipment.")

	return &Reply{Agent: a.name, Text: renderShipment(result, analysis), Analysis: analysis, Data: result}, nil
}

func renderShipment(result *orders.TransitionResult, analysis string) string {
	id := result.Order.OrderID

	var b strings.Builder
	b.WriteString(banner("SHIPMENT NOTIFICATION", 24))
	fmt.Fprintf(&b, "\n\nYour order %s has been shipped!\n\n", id)
	b.WriteString(result.Message)
	b.WriteString("\n\n")
	if analysis != "" {
		b.WriteString(analysis)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Track your package: https://tracking.example.com/%s\n\n", id)
	b.WriteString("Estimated delivery: 3-5 business days\n\n")
	b.WriteString("Thank you for shopping with us!")
	return b.String()
}
