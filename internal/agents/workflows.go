package agents

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
)

const (
	WorkflowVIPUpsell        = "vip-upsell"
	WorkflowInventoryAudit   = "inventory-audit"
	WorkflowDailyReview      = "daily-review"
	WorkflowOrderFulfillment = "order-fulfillment"
	// WorkflowAll runs every workflow in declaration order.
	WorkflowAll = "all"
)

// WorkflowStep is one titled stage of a run. Error is set when the stage
// failed, and no later stage of that run is attempted.
type WorkflowStep struct {
	Title  string `json:"title"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// WorkflowRun is the transcript of a single workflow execution.
type WorkflowRun struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt time.Time      `json:"completed_at"`
	Failed      bool           `json:"failed"`
	Steps       []WorkflowStep `json:"steps"`
}

type stage struct {
	title string
	run   func(ctx context.Context) (string, error)
}

type workflow struct {
	name   string
	stages func(t *Team) []stage
}

var workflows = []workflow{
	{name: WorkflowVIPUpsell, stages: (*Team).vipUpsell},
	{name: WorkflowInventoryAudit, stages: (*Team).inventoryAudit},
	{name: WorkflowDailyReview, stages: (*Team).dailyReview},
	{name: WorkflowOrderFulfillment, stages: (*Team).orderFulfillment},
}

// WorkflowNames returns the runnable workflows, "all" last.
func WorkflowNames() []string {
	out := make([]string, 0, len(workflows)+1)
	for _, w := range workflows {
		out = append(out, w.name)
	}
	return append(out, WorkflowAll)
}

// RunWorkflow executes the named workflow, or every workflow for "all".
// Step failures are recorded on the run; only an unknown name or a
// cancelled context is returned as an error.
func (t *Team) RunWorkflow(ctx context.Context, name string) ([]*WorkflowRun, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	var selected []workflow
	if normalized == WorkflowAll {
		selected = workflows
	} else {
		for _, w := range workflows {
			if w.name == normalized {
				selected = []workflow{w}
				break
			}
		}
	}
	if len(selected) == 0 {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "unknown workflow '%s'", name).
			WithDetails(map[string]any{"valid_workflows": WorkflowNames()})
	}

	runs := make([]*WorkflowRun, 0, len(selected))
	for _, w := range selected {
		if err := ctx.Err(); err != nil {
			return runs, err
		}
		runs = append(runs, t.execute(ctx, w))
	}
	return runs, nil
}

func (t *Team) execute(ctx context.Context, w workflow) *WorkflowRun {
	run := &WorkflowRun{ID: uuid.New(), Name: w.name, StartedAt: t.now().UTC()}
	ctx = t.logg.WithWorkflow(ctx, w.name, run.ID.String())
	t.logg.Info(ctx, "workflow.started")

	for _, s := range w.stages(t) {
		output, err := s.run(ctx)
		step := WorkflowStep{Title: s.title, Output: output}
		if err != nil {
			step.Error = err.Error()
			run.Steps = append(run.Steps, step)
			run.Failed = true
			t.logg.Warn(t.logg.WithFields(ctx, map[string]any{"step": s.title, "error": err.Error()}), "workflow.step_failed")
			break
		}
		run.Steps = append(run.Steps, step)
	}

	run.CompletedAt = t.now().UTC()
	t.logg.Info(t.logg.WithField(ctx, "failed", run.Failed), "workflow.completed")
	return run
}

func text(reply *Reply, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return reply.Text, nil
}

func (t *Team) vipUpsell() []stage {
	return []stage{
		{"Check Order Status", func(ctx context.Context) (string, error) {
			return text(t.CustomerService.OrderInquiry(ctx, "ORD001"))
		}},
		{"Analyze Customer Profile", func(ctx context.Context) (string, error) {
			return text(t.Analytics.AnalyzeCustomer(ctx, "CUST001"))
		}},
		{"Generate Recommendations", func(ctx context.Context) (string, error) {
			return text(t.CustomerService.RecommendProducts(ctx, "CUST001", "Electronics"))
		}},
	}
}

func (t *Team) inventoryAudit() []stage {
	skus := []string{"PROD001", "PROD002", "PROD003", "PROD004", "PROD005"}
	return []stage{
		{"Performing Complete Inventory Audit", func(ctx context.Context) (string, error) {
			return text(t.Inventory.Audit(ctx, skus))
		}},
	}
}

func (t *Team) dailyReview() []stage {
	return []stage{
		{"Sales Performance", func(ctx context.Context) (string, error) {
			return text(t.Analytics.BusinessReport(ctx, "week"))
		}},
		{"Critical Inventory Check", func(ctx context.Context) (string, error) {
			return text(t.Inventory.CheckStock(ctx, "PROD004"))
		}},
	}
}

func (t *Team) orderFulfillment() []stage {
	return []stage{
		{"Order Details", func(ctx context.Context) (string, error) {
			result, err := t.CustomerService.orders.Retrieve(ctx, "ORD002")
			if err != nil {
				return "", err
			}
			return encode(result.Order), nil
		}},
		{"Inventory Verification", func(ctx context.Context) (string, error) {
			return text(t.Inventory.CheckStock(ctx, "PROD003"))
		}},
		{"Process Shipment", func(ctx context.Context) (string, error) {
			return text(t.CustomerService.ShipOrder(ctx, "ORD002"))
		}},
	}
}
