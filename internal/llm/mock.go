package llm

import (
	"context"
	"fmt"
	"strings"
)

// MockGenerator answers with fixed rule-based analyses so the agents can run
// without network access or API keys.
type MockGenerator struct {
	model string
}

func NewMockGenerator(model string) *MockGenerator {
	return &MockGenerator{model: model}
}

func (g *MockGenerator) Complete(ctx context.Context, prompt string, _ Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if strings.Contains(prompt, "Available agents") {
		return g.plan(prompt), nil
	}

	switch {
	case strings.Contains(prompt, "Out of Stock"):
		return "ALERT: Item is out of stock. Immediate restocking required.", nil
	case strings.Contains(prompt, "Low Stock"):
		return "WARNING: Stock levels are low. Recommend restocking within 48 hours.", nil
	case strings.Contains(prompt, "VIP"):
		return "VIP Customer: Prioritize service and offer premium recommendations.", nil
	case strings.Contains(prompt, "lifetime_value") && strings.Contains(prompt, "4500"):
		return "High-value customer ($4500+ LTV). Excellent retention candidate.", nil
	case strings.Contains(prompt, "total_revenue"):
		return "Strong sales performance. Revenue trending positive.", nil
	default:
		return "Status nominal. Continue monitoring.", nil
	}
}

func (g *MockGenerator) plan(prompt string) string {
	request := strings.ToLower(prompt)
	if idx := strings.Index(request, "available agents"); idx >= 0 {
		request = request[:idx]
	}

	var steps []string
	if containsAny(request, "stock", "inventory", "restock", "prod") {
		steps = append(steps, "Inventory Agent: check stock levels and flag low or out-of-stock items")
	}
	if containsAny(request, "order", "ship", "recommend", "customer", "ord", "cust") {
		steps = append(steps, "Customer Service Agent: review the order and prepare customer communication")
	}
	if containsAny(request, "report", "sales", "revenue", "analy", "segment") {
		steps = append(steps, "Analytics Agent: summarise sales metrics and customer insights")
	}
	if len(steps) == 0 {
		steps = append(steps, "Analytics Agent: produce a general business overview")
	}

	var b strings.Builder
	b.WriteString("WORKFLOW PLAN:\n")
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (g *MockGenerator) Model() string {
	return g.model + "-mock"
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

var _ Generator = (*MockGenerator)(nil)
