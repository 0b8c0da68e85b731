package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopdesk/internal/customers"
	"github.com/angelmondragon/shopdesk/internal/inventory"
	"github.com/angelmondragon/shopdesk/internal/llm"
	"github.com/angelmondragon/shopdesk/internal/orders"
	"github.com/angelmondragon/shopdesk/internal/reports"
	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
	"github.com/angelmondragon/shopdesk/pkg/logger"
)

type stockLookup interface {
	LookupStock(ctx context.Context, sku string) (*inventory.StockReport, error)
}

type orderService interface {
	Retrieve(ctx context.Context, orderID string) (*orders.TransitionResult, error)
	Transition(ctx context.Context, orderID, action string) (*orders.TransitionResult, error)
}

type customerService interface {
	Profile(ctx context.Context, customerID string) (*customers.CustomerAnalytics, error)
	Recommend(ctx context.Context, customerID, category string) (*customers.RecommendationList, error)
}

type reportService interface {
	SalesReport(ctx context.Context, period string) (*reports.SalesReport, error)
}

// Kind names an agent that can be addressed through Chat.
type Kind string

const (
	KindInventory       Kind = "inventory"
	KindCustomerService Kind = "customer_service"
	KindAnalytics       Kind = "analytics"
)

var kinds = []Kind{KindInventory, KindCustomerService, KindAnalytics}

// KindNames returns the addressable agents as plain strings.
func KindNames() []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, string(k))
	}
	return out
}

// ParseKind accepts the agent name in any case, with '-' or ' ' in place of '_'.
func ParseKind(raw string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	normalized = strings.TrimSuffix(normalized, "_agent")
	for _, k := range kinds {
		if string(k) == normalized {
			return k, nil
		}
	}
	return "", pkgerrors.Newf(pkgerrors.CodeValidation, "unknown agent '%s'", raw).
		WithDetails(map[string]any{"valid_agents": KindNames()})
}

// Reply is what an agent hands back: rendered prose, the generator's
// analysis when one was produced, and the typed data behind it.
type Reply struct {
	Agent    string `json:"agent"`
	Text     string `json:"text"`
	Analysis string `json:"analysis,omitempty"`
	Data     any    `json:"data,omitempty"`
}

// base carries what every agent needs to talk to the generator.
type base struct {
	name   string
	system string
	gen    llm.Generator
	logg   *logger.Logger
}

func (b *base) withAgent(ctx context.Context) context.Context {
	return b.logg.WithAgent(ctx, b.name)
}

// analyze is best-effort: a generator failure is logged and yields "".
func (b *base) analyze(ctx context.Context, prompt string) string {
	out, err := b.gen.Complete(ctx, prompt, llm.Options{System: b.system})
	if err != nil {
		ctx = b.logg.WithFields(ctx, map[string]any{
			"model": b.gen.Model(),
			"error": err.Error(),
		})
		b.logg.Warn(ctx, "agent.analysis.failed")
		return ""
	}
	return strings.TrimSpace(out)
}

func encode(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(raw)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func banner(title string, width int) string {
	return title + "\n" + strings.Repeat("=", width)
}

// Params wires a Team to the engine services.
type Params struct {
	Inventory stockLookup
	Orders    orderService
	Customers customerService
	Reports   reportService
	Generator llm.Generator
	Logger    *logger.Logger
	Now       func() time.Time
}

// Team groups the specialist agents with the coordinator.
type Team struct {
	Inventory       *InventoryAgent
	CustomerService *CustomerServiceAgent
	Analytics       *AnalyticsAgent
	Coordinator     *Coordinator

	logg *logger.Logger
	now  func() time.Time
}

func New(params Params) (*Team, error) {
	if params.Inventory == nil {
		return nil, fmt.Errorf("inventory service required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("orders service required")
	}
	if params.Customers == nil {
		return nil, fmt.Errorf("customers service required")
	}
	if params.Reports == nil {
		return nil, fmt.Errorf("reports service required")
	}
	if params.Generator == nil {
		return nil, fmt.Errorf("generator required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}

	return &Team{
		Inventory: &InventoryAgent{
			base:  base{name: "Inventory Agent", system: inventorySystemPrompt, gen: params.Generator, logg: logg},
			stock: params.Inventory,
		},
		CustomerService: &CustomerServiceAgent{
			base:      base{name: "Customer Service Agent", system: customerServiceSystemPrompt, gen: params.Generator, logg: logg},
			orders:    params.Orders,
			customers: params.Customers,
		},
		Analytics: &AnalyticsAgent{
			base:      base{name: "Analytics Agent", system: analyticsSystemPrompt, gen: params.Generator, logg: logg},
			reports:   params.Reports,
			customers: params.Customers,
		},
		Coordinator: &Coordinator{
			base: base{name: "Coordinator Agent", system: coordinatorSystemPrompt, gen: params.Generator, logg: logg},
		},
		logg: logg,
		now:  now,
	}, nil
}
