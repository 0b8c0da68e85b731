package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/shopdesk/api/controllers"
	"github.com/angelmondragon/shopdesk/api/middleware"
	"github.com/angelmondragon/shopdesk/internal/agents"
	"github.com/angelmondragon/shopdesk/internal/customers"
	"github.com/angelmondragon/shopdesk/internal/inventory"
	"github.com/angelmondragon/shopdesk/internal/orders"
	"github.com/angelmondragon/shopdesk/internal/reports"
	"github.com/angelmondragon/shopdesk/pkg/config"
	"github.com/angelmondragon/shopdesk/pkg/db"
	"github.com/angelmondragon/shopdesk/pkg/logger"
	"github.com/angelmondragon/shopdesk/pkg/metrics"
	"github.com/angelmondragon/shopdesk/pkg/redis"
)

// Services are the engine handlers mounted under /api/v1.
type Services struct {
	Inventory inventory.Service
	Orders    orders.Service
	Customers customers.Service
	Reports   reports.Service
	Team      *agents.Team
}

// NewRouter mounts the health, metrics and /api/v1 routes. storePinger and
// redisClient may be nil; without redis, idempotency and rate limiting are
// disabled. gatherer is only read when metrics are enabled.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	storePinger db.Pinger,
	redisClient *redis.Client,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	svc Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	// keep typed-nil clients out of the interface values below
	var (
		idempotencyStore redis.IdempotencyStore
		rateLimiter      redis.RateLimiter
		checks           = []controllers.ReadinessCheck{{Name: "store", Pinger: storePinger}}
	)
	if redisClient != nil {
		idempotencyStore = redisClient
		rateLimiter = redisClient
		checks = append(checks, controllers.ReadinessCheck{Name: "redis", Pinger: redisClient})
	}
	if storePinger == nil {
		checks = checks[1:]
	}

	agentPolicy := middleware.NewRateLimitPolicy("agents", cfg.Limits.AgentWindow, cfg.Limits.AgentRequests)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, checks...))
	})

	if cfg.Metrics.Enabled && gatherer != nil {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/inventory/{sku}", controllers.InventoryLookup(svc.Inventory, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/{orderId}", controllers.OrderGet(svc.Orders, logg))
			r.With(middleware.Idempotency(idempotencyStore, cfg.Limits.IdempotencyTTL, logg)).
				Post("/{orderId}/actions", controllers.OrderAction(svc.Orders, logg))
		})

		r.Get("/customers/{customerId}", controllers.CustomerProfile(svc.Customers, logg))
		r.Get("/customers/{customerId}/recommendations", controllers.CustomerRecommendations(svc.Customers, logg))

		r.Route("/reports", func(r chi.Router) {
			r.Get("/sales", controllers.SalesReport(svc.Reports, logg))
			r.Get("/dashboard", controllers.Dashboard(svc.Reports, logg))
		})

		r.Get("/workflows", controllers.WorkflowList())

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(agentPolicy, rateLimiter, logg))
			r.Post("/agents/chat", controllers.AgentChat(svc.Team, logg))
			r.Post("/agents/plan", controllers.AgentPlan(svc.Team, logg))
			r.Post("/workflows/{name}", controllers.WorkflowRun(svc.Team, logg))
		})
	})

	return r
}
