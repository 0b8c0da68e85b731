package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/angelmondragon/shopdesk/internal/agents"
	"github.com/angelmondragon/shopdesk/internal/catalog"
	"github.com/angelmondragon/shopdesk/internal/customers"
	"github.com/angelmondragon/shopdesk/internal/inventory"
	"github.com/angelmondragon/shopdesk/internal/llm"
	"github.com/angelmondragon/shopdesk/internal/orders"
	"github.com/angelmondragon/shopdesk/internal/reports"
	"github.com/angelmondragon/shopdesk/pkg/config"
	"github.com/angelmondragon/shopdesk/pkg/db"
	"github.com/angelmondragon/shopdesk/pkg/logger"
	"github.com/angelmondragon/shopdesk/pkg/metrics"
	"github.com/angelmondragon/shopdesk/pkg/redis"
)

// Params configures Build. Registerer may be nil to skip metrics. Seed
// defaults to catalog.DefaultSeed.
type Params struct {
	Config       *config.Config
	Logger       *logger.Logger
	Registerer   prometheus.Registerer
	Seed         *catalog.Seed
	ConnectRedis bool
	Now          func() time.Time
}

// Engine holds the wired services shared by the API and the CLI.
type Engine struct {
	Store       catalog.Store
	DB          *db.Client
	Redis       *redis.Client
	Generator   llm.Generator
	HTTPMetrics *metrics.HTTPMetrics

	Inventory inventory.Service
	Orders    orders.Service
	Customers customers.Service
	Reports   reports.Service
	Team      *agents.Team
}

// Build opens the configured store and wires every service on top of it.
// Connections opened before a failure are closed.
func Build(ctx context.Context, params Params) (_ *Engine, err error) {
	if params.Config == nil {
		return nil, fmt.Errorf("config required")
	}
	cfg := params.Config
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	seed := catalog.DefaultSeed()
	if params.Seed != nil {
		seed = *params.Seed
	}

	e := &Engine{}
	defer func() {
		if err != nil {
			err = multierr.Append(err, e.Close())
		}
	}()

	if err := e.openStore(ctx, cfg.Store, seed, logg); err != nil {
		return nil, err
	}

	if params.ConnectRedis && cfg.Redis.Enabled() {
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap redis: %w", err)
		}
		e.Redis = client
	}

	e.HTTPMetrics = metrics.NewHTTPMetrics(params.Registerer)
	orderMetrics := metrics.NewOrderMetrics(params.Registerer)

	if e.Inventory, err = inventory.NewService(e.Store); err != nil {
		return nil, err
	}
	if e.Orders, err = orders.NewService(orders.ServiceParams{Store: e.Store, Logger: logg, Metrics: orderMetrics}); err != nil {
		return nil, err
	}
	if e.Customers, err = customers.NewService(e.Store); err != nil {
		return nil, err
	}
	if e.Reports, err = reports.NewService(reports.ServiceParams{Catalog: e.Store, Now: params.Now}); err != nil {
		return nil, err
	}
	if e.Generator, err = llm.NewGenerator(cfg.LLM); err != nil {
		return nil, err
	}
	e.Team, err = agents.New(agents.Params{
		Inventory: e.Inventory,
		Orders:    e.Orders,
		Customers: e.Customers,
		Reports:   e.Reports,
		Generator: e.Generator,
		Logger:    logg,
		Now:       params.Now,
	})
	if err != nil {
		return nil, err
	}

	logg.Info(logg.WithFields(ctx, map[string]any{
		"store":     cfg.Store.Driver,
		"generator": e.Generator.Model(),
		"redis":     e.Redis != nil,
	}), "engine ready")
	return e, nil
}

func (e *Engine) openStore(ctx context.Context, cfg config.StoreConfig, seed catalog.Seed, logg *logger.Logger) error {
	if !cfg.UsesSQLite() {
		store, err := catalog.NewMemoryStore(seed)
		if err != nil {
			return fmt.Errorf("load memory store: %w", err)
		}
		e.Store = store
		return nil
	}

	client, err := db.New(ctx, cfg, logg)
	if err != nil {
		return fmt.Errorf("bootstrap database: %w", err)
	}
	e.DB = client
	store, err := catalog.NewGormStore(ctx, client, seed)
	if err != nil {
		return fmt.Errorf("load sqlite store: %w", err)
	}
	e.Store = store
	return nil
}

// Close releases the database and redis connections.
func (e *Engine) Close() error {
	var errs error
	if e.Redis != nil {
		errs = multierr.Append(errs, e.Redis.Close())
	}
	if e.DB != nil {
		errs = multierr.Append(errs, e.DB.Close())
	}
	return errs
}
