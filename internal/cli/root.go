package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/angelmondragon/shopdesk/internal/bootstrap"
	"github.com/angelmondragon/shopdesk/pkg/config"
	"github.com/angelmondragon/shopdesk/pkg/logger"
)

// EngineFunc builds the engine a command runs against.
type EngineFunc func(ctx context.Context) (*bootstrap.Engine, error)

type app struct {
	build  EngineFunc
	asJSON bool
}

// NewRootCommand wires the subcommands. build defaults to DefaultEngine.
func NewRootCommand(build EngineFunc) *cobra.Command {
	if build == nil {
		build = DefaultEngine
	}
	a := &app{build: build}

	root := &cobra.Command{
		Use:   "agents",
		Short: "Shopdesk agents - run workflows and talk to the store agents",
		Long: `Shopdesk agents drives the inventory, customer service and analytics
agents from the command line.

Workflows run the predefined multi-step playbooks. Chat routes a free-text
message to one agent, and plan asks the coordinator how to split a request.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print results as JSON")

	root.AddCommand(
		a.workflowCommand(),
		a.chatCommand(),
		a.planCommand(),
		a.reportCommand(),
	)
	return root
}

// Execute runs the CLI against the configured engine.
func Execute() {
	if err := NewRootCommand(nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// DefaultEngine loads .env and the SHOPDESK_* environment, logging to stderr.
func DefaultEngine(ctx context.Context) (*bootstrap.Engine, error) {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logg := logger.New(logger.Options{
		ServiceName: "agents",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
		Output:      os.Stderr,
	})
	return bootstrap.Build(ctx, bootstrap.Params{Config: cfg, Logger: logg})
}

// withEngine builds the engine for the duration of fn.
func (a *app) withEngine(cmd *cobra.Command, fn func(ctx context.Context, engine *bootstrap.Engine) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	engine, err := a.build(ctx)
	if err != nil {
		return fmt.Errorf("failed to start engine: %w", err)
	}
	defer func() {
		if closeErr := engine.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(ctx, engine)
}

func (a *app) print(out io.Writer, text string, value any) error {
	if a.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	}
	_, err := fmt.Fprintln(out, text)
	return err
}
