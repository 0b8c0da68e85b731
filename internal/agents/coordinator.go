package agents

import (
	"context"
	"strings"

	"github.com/angelmondragon/shopdesk/internal/llm"
	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
)

// Coordinator asks the generator how to split a request across the agents.
type Coordinator struct {
	base
}

func planPrompt(request string) string {
	return "User request: " + request + "\n\n" +
		"Available agents:\n" +
		"- Inventory Agent (check stock, audit inventory)\n" +
		"- Customer Service Agent (orders, recommendations)\n" +
		"- Analytics Agent (reports, insights)\n\n" +
		"Identify which agents should be involved and what tasks they should perform. " +
		"Be specific and concise."
}

// Plan returns the generator's delegation plan. Generator failures surface
// as dependency errors.
func (c *Coordinator) Plan(ctx context.Context, request string) (*Reply, error) {
	request = strings.TrimSpace(request)
	if request == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "request is required")
	}
	ctx = c.withAgent(ctx)
	c.logg.Info(ctx, "agent.coordinator.plan")

	plan, err := c.gen.Complete(ctx, planPrompt(request), llm.Options{System: c.system})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "generate workflow plan")
	}
	plan = strings.TrimSpace(plan)
	return &Reply{Agent: c.name, Text: plan, Analysis: plan, Data: map[string]string{"request": request}}, nil
}

// Plan delegates to the team's coordinator.
func (t *Team) Plan(ctx context.Context, request string) (*Reply, error) {
	return t.Coordinator.Plan(ctx, request)
}
