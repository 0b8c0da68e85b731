package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/angelmondragon/shopdesk/internal/agents"
	"github.com/angelmondragon/shopdesk/internal/bootstrap"
)

func (a *app) workflowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "workflow <name|all>",
		Short: "Run a predefined agent workflow",
		Long: "Run one of the predefined workflows, or all of them in order.\n\nWorkflows: " +
			strings.Join(agents.WorkflowNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEngine(cmd, func(ctx context.Context, engine *bootstrap.Engine) error {
				runs, err := engine.Team.RunWorkflow(ctx, args[0])
				if err != nil {
					return err
				}
				if err := a.print(cmd.OutOrStdout(), renderRuns(runs), runs); err != nil {
					return err
				}
				for _, run := range runs {
					if run.Failed {
						return fmt.Errorf("workflow %s failed", run.Name)
					}
				}
				return nil
			})
		},
	}
}

func (a *app) chatCommand() *cobra.Command {
	var agentName string
	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Send a message to one agent",
		Example: `  agents chat --agent inventory "How many PROD001 do we have?"
  agents chat --agent customer_service "Where is ORD002?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := agents.ParseKind(agentName)
			if err != nil {
				return err
			}
			return a.withEngine(cmd, func(ctx context.Context, engine *bootstrap.Engine) error {
				reply, err := engine.Team.Chat(ctx, kind, strings.Join(args, " "))
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), reply.Text, reply)
			})
		},
	}
	cmd.Flags().StringVarP(&agentName, "agent", "a", string(agents.KindInventory),
		"agent to talk to ("+strings.Join(agents.KindNames(), ", ")+")")
	return cmd
}

func (a *app) planCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <request>",
		Short: "Ask the coordinator which agents should handle a request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEngine(cmd, func(ctx context.Context, engine *bootstrap.Engine) error {
				reply, err := engine.Team.Plan(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), reply.Text, reply)
			})
		},
	}
}

func (a *app) reportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report [period]",
		Short: "Print the business report (day, week, month or year)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			period := ""
			if len(args) == 1 {
				period = args[0]
			}
			return a.withEngine(cmd, func(ctx context.Context, engine *bootstrap.Engine) error {
				reply, err := engine.Team.Analytics.BusinessReport(ctx, period)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), reply.Text, reply)
			})
		},
	}
}

func renderRuns(runs []*agents.WorkflowRun) string {
	var b strings.Builder
	for i, run := range runs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "WORKFLOW: %s\n%s\n", run.Name, strings.Repeat("=", 60))
		for n, step := range run.Steps {
			fmt.Fprintf(&b, "\n[%d] %s\n", n+1, step.Title)
			if step.Error != "" {
				fmt.Fprintf(&b, "ERROR: %s\n", step.Error)
				continue
			}
			b.WriteString(step.Output)
			b.WriteString("\n")
		}
		status := "completed"
		if run.Failed {
			status = "failed"
		}
		fmt.Fprintf(&b, "\nWorkflow %s %s in %s\n", run.Name, status, run.CompletedAt.Sub(run.StartedAt).Round(time.Millisecond))
	}
	return strings.TrimRight(b.String(), "\n")
}
