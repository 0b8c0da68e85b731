package agents

import (
	"context"
	"regexp"
	"strings"

	"github.com/angelmondragon/shopdesk/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
)

var (
	skuPattern      = regexp.MustCompile(`PROD\d{3}`)
	orderPattern    = regexp.MustCompile(`ORD\d{3}`)
	customerPattern = regexp.MustCompile(`CUST\d{3}`)
)

const (
	inventoryHelp       = "Please specify a product SKU (e.g., PROD001) to check inventory."
	recommendationHelp  = "Please specify a customer ID (e.g., CUST001) for recommendations."
	customerServiceHelp = "I can help with:\n- Order inquiries (mention order ID like ORD001)\n- Product recommendations (mention customer ID like CUST001)"
	analyticsHelp       = "I can help with:\n- Sales reports (mention 'report' and period: day/week/month)\n- Customer analysis (mention customer ID like CUST001)"
)

// Chat routes a free-text message to the chosen agent. Identifiers are
// matched case-insensitively; a message the agent cannot act on gets a
// help reply rather than an error.
func (t *Team) Chat(ctx context.Context, kind Kind, message string) (*Reply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message is required")
	}
	upper := strings.ToUpper(message)
	lower := strings.ToLower(message)

	ctx = t.logg.WithField(ctx, "chat_agent", string(kind))
	t.logg.Debug(ctx, "agent.chat.received")

	switch kind {
	case KindInventory:
		if sku := skuPattern.FindString(upper); sku != "" {
			return t.Inventory.CheckStock(ctx, sku)
		}
		return t.help(t.Inventory.name, inventoryHelp), nil

	case KindCustomerService:
		if orderID := orderPattern.FindString(upper); orderID != "" {
			return t.CustomerService.OrderInquiry(ctx, orderID)
		}
		if strings.Contains(lower, "recommend") || strings.Contains(lower, "suggest") {
			if customerID := customerPattern.FindString(upper); customerID != "" {
				return t.CustomerService.RecommendProducts(ctx, customerID, "")
			}
			return t.help(t.CustomerService.name, recommendationHelp), nil
		}
		return t.help(t.CustomerService.name, customerServiceHelp), nil

	case KindAnalytics:
		if strings.Contains(lower, "report") {
			return t.Analytics.BusinessReport(ctx, string(chatPeriod(lower)))
		}
		if customerID := customerPattern.FindString(upper); customerID != "" {
			return t.Analytics.AnalyzeCustomer(ctx, customerID)
		}
		return t.help(t.Analytics.name, analyticsHelp), nil

	default:
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "unknown agent '%s'", kind).
			WithDetails(map[string]any{"valid_agents": KindNames()})
	}
}

// chatPeriod picks day or month when mentioned and falls back to week.
func chatPeriod(lower string) enums.ReportPeriod {
	switch {
	case strings.Contains(lower, "day"):
		return enums.ReportPeriodDay
	case strings.Contains(lower, "month"):
		return enums.ReportPeriodMonth
	default:
		return enums.ReportPeriodWeek
	}
}

func (t *Team) help(agent, text string) *Reply {
	return &Reply{Agent: agent, Text: text}
}
