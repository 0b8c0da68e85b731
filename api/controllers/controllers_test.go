package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopdesk/internal/agents"
	"github.com/angelmondragon/shopdesk/internal/customers"
	"github.com/angelmondragon/shopdesk/internal/inventory"
	"github.com/angelmondragon/shopdesk/internal/orders"
	"github.com/angelmondragon/shopdesk/internal/reports"
	"github.com/angelmondragon/shopdesk/pkg/config"
	"github.com/angelmondragon/shopdesk/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
	"github.com/angelmondragon/shopdesk/pkg/logger"
)

type testStockLookup struct {
	lookupFn func(ctx context.Context, sku string) (*inventory.StockReport, error)
}

func (t testStockLookup) LookupStock(ctx context.Context, sku string) (*inventory.StockReport, error) {
	return t.lookupFn(ctx, sku)
}

type testOrderService struct {
	retrieveFn   func(ctx context.Context, orderID string) (*orders.TransitionResult, error)
	transitionFn func(ctx context.Context, orderID, action string) (*orders.TransitionResult, error)
}

func (t testOrderService) Retrieve(ctx context.Context, orderID string) (*orders.TransitionResult, error) {
	return t.retrieveFn(ctx, orderID)
}

func (t testOrderService) Transition(ctx context.Context, orderID, action string) (*orders.TransitionResult, error) {
	return t.transitionFn(ctx, orderID, action)
}

type testCustomerService struct {
	profileFn   func(ctx context.Context, customerID string) (*customers.CustomerAnalytics, error)
	recommendFn func(ctx context.Context, customerID, category string) (*customers.RecommendationList, error)
}

func (t testCustomerService) Profile(ctx context.Context, customerID string) (*customers.CustomerAnalytics, error) {
	return t.profileFn(ctx, customerID)
}

func (t testCustomerService) Recommend(ctx context.Context, customerID, category string) (*customers.RecommendationList, error) {
	return t.recommendFn(ctx, customerID, category)
}

type testReportService struct {
	salesFn func(ctx context.Context, period string) (*reports.SalesReport, error)
}

func (t testReportService) SalesReport(ctx context.Context, period string) (*reports.SalesReport, error) {
	return t.salesFn(ctx, period)
}

func (t testReportService) Dashboard(context.Context) (*reports.Dashboard, error) {
	return &reports.Dashboard{}, nil
}

type testAgentTeam struct {
	chatFn     func(ctx context.Context, kind agents.Kind, message string) (*agents.Reply, error)
	planFn     func(ctx context.Context, request string) (*agents.Reply, error)
	workflowFn func(ctx context.Context, name string) ([]*agents.WorkflowRun, error)
}

func (t testAgentTeam) Chat(ctx context.Context, kind agents.Kind, message string) (*agents.Reply, error) {
	return t.chatFn(ctx, kind, message)
}

func (t testAgentTeam) Plan(ctx context.Context, request string) (*agents.Reply, error) {
	return t.planFn(ctx, request)
}

func (t testAgentTeam) RunWorkflow(ctx context.Context, name string) ([]*agents.WorkflowRun, error) {
	return t.workflowFn(ctx, name)
}

type testPinger struct {
	err error
}

func (p testPinger) Ping(context.Context) error {
	return p.err
}

type envelope struct {
	Data     json.RawMessage `json:"data"`
	Warnings []string        `json:"warnings"`
	Error    struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func TestHealthReady(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "test"}}

	resp := httptest.NewRecorder()
	HealthReady(cfg, testLogger(), ReadinessCheck{Name: "store", Pinger: testPinger{}})(resp, newRequest(http.MethodGet, "/health/ready", "", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get(envHeader); got != "test" {
		t.Fatalf("expected env header test, got %q", got)
	}

	resp = httptest.NewRecorder()
	HealthReady(cfg, testLogger(),
		ReadinessCheck{Name: "store", Pinger: testPinger{}},
		ReadinessCheck{Name: "redis", Pinger: testPinger{err: errors.New("connection refused")}},
	)(resp, newRequest(http.MethodGet, "/health/ready", "", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	if env.Error.Code != string(pkgerrors.CodeDependency) {
		t.Fatalf("expected dependency code, got %s", env.Error.Code)
	}
}

func TestHealthLive(t *testing.T) {
	resp := httptest.NewRecorder()
	HealthLive(&config.Config{})(resp, newRequest(http.MethodGet, "/health/live", "", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestInventoryLookupNotFound(t *testing.T) {
	svc := testStockLookup{lookupFn: func(_ context.Context, sku string) (*inventory.StockReport, error) {
		return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "product with sku '%s' not found", sku)
	}}

	resp := httptest.NewRecorder()
	InventoryLookup(svc, testLogger())(resp, newRequest(http.MethodGet, "/api/v1/inventory/PROD999", "", map[string]string{"sku": "PROD999"}))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	if env.Error.Message != "product with sku 'PROD999' not found" {
		t.Fatalf("unexpected message %q", env.Error.Message)
	}
}

func TestInventoryLookupSuccess(t *testing.T) {
	svc := testStockLookup{lookupFn: func(_ context.Context, sku string) (*inventory.StockReport, error) {
		return &inventory.StockReport{SKU: sku, StockQuantity: 3, Price: decimal.RequireFromString("29.99")}, nil
	}}

	resp := httptest.NewRecorder()
	InventoryLookup(svc, testLogger())(resp, newRequest(http.MethodGet, "/api/v1/inventory/PROD002", "", map[string]string{"sku": "PROD002"}))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	var report inventory.StockReport
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.SKU != "PROD002" || report.StockQuantity != 3 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestInventoryLookupMissingSKU(t *testing.T) {
	called := false
	svc := testStockLookup{lookupFn: func(context.Context, string) (*inventory.StockReport, error) {
		called = true
		return nil, nil
	}}

	resp := httptest.NewRecorder()
	InventoryLookup(svc, testLogger())(resp, newRequest(http.MethodGet, "/api/v1/inventory/", "", nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if called {
		t.Fatal("service should not be called without a sku")
	}
}

func TestOrderActionWarning(t *testing.T) {
	var gotAction string
	svc := testOrderService{transitionFn: func(_ context.Context, orderID, action string) (*orders.TransitionResult, error) {
		gotAction = action
		return &orders.TransitionResult{
			Action:  enums.OrderActionComplete,
			Outcome: orders.OutcomeWarning,
			Order:   orders.OrderSnapshot{OrderID: orderID, Status: enums.OrderStatusPending},
			Warning: "Order ORD002 has not been shipped yet",
		}, nil
	}}

	resp := httptest.NewRecorder()
	OrderAction(svc, testLogger())(resp, newRequest(http.MethodPost, "/api/v1/orders/ORD002/actions", `{"action":"complete"}`, map[string]string{"orderId": "ORD002"}))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotAction != "complete" {
		t.Fatalf("expected action complete, got %q", gotAction)
	}
	env := decodeEnvelope(t, resp)
	if len(env.Warnings) != 1 || env.Warnings[0] != "Order ORD002 has not been shipped yet" {
		t.Fatalf("unexpected warnings %v", env.Warnings)
	}
}

func TestOrderActionApplied(t *testing.T) {
	svc := testOrderService{transitionFn: func(_ context.Context, orderID, _ string) (*orders.TransitionResult, error) {
		return &orders.TransitionResult{
			Action:  enums.OrderActionShip,
			Outcome: orders.OutcomeApplied,
			Order:   orders.OrderSnapshot{OrderID: orderID, Status: enums.OrderStatusShipped},
		}, nil
	}}

	resp := httptest.NewRecorder()
	OrderAction(svc, testLogger())(resp, newRequest(http.MethodPost, "/api/v1/orders/ORD002/actions", `{"action":"ship"}`, map[string]string{"orderId": "ORD002"}))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if env := decodeEnvelope(t, resp); len(env.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", env.Warnings)
	}
}

func TestOrderActionValidation(t *testing.T) {
	svc := testOrderService{transitionFn: func(context.Context, string, string) (*orders.TransitionResult, error) {
		t.Fatal("service should not be called")
		return nil, nil
	}}

	cases := map[string]string{
		"missing action": `{}`,
		"unknown field":  `{"action":"ship","force":true}`,
		"malformed":      `{"action":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			OrderAction(svc, testLogger())(resp, newRequest(http.MethodPost, "/api/v1/orders/ORD001/actions", body, map[string]string{"orderId": "ORD001"}))
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
		})
	}
}

func TestOrderActionStateConflict(t *testing.T) {
	svc := testOrderService{transitionFn: func(context.Context, string, string) (*orders.TransitionResult, error) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "Cannot cancel order ORD001 - already delivered")
	}}

	resp := httptest.NewRecorder()
	OrderAction(svc, testLogger())(resp, newRequest(http.MethodPost, "/api/v1/orders/ORD001/actions", `{"action":"cancel"}`, map[string]string{"orderId": "ORD001"}))
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestOrderGet(t *testing.T) {
	svc := testOrderService{retrieveFn: func(_ context.Context, orderID string) (*orders.TransitionResult, error) {
		return &orders.TransitionResult{Outcome: orders.OutcomeRetrieved, Order: orders.OrderSnapshot{OrderID: orderID}}, nil
	}}

	resp := httptest.NewRecorder()
	OrderGet(svc, testLogger())(resp, newRequest(http.MethodGet, "/api/v1/orders/ORD001", "", map[string]string{"orderId": "ORD001"}))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestCustomerRecommendationsPassesCategory(t *testing.T) {
	var gotCategory string
	svc := testCustomerService{recommendFn: func(_ context.Context, customerID, category string) (*customers.RecommendationList, error) {
		gotCategory = category
		return &customers.RecommendationList{CustomerID: customerID, Recommendations: []customers.Recommendation{}}, nil
	}}

	resp := httptest.NewRecorder()
	CustomerRecommendations(svc, testLogger())(resp, newRequest(http.MethodGet, "/api/v1/customers/CUST001/recommendations?category=Electronics", "", map[string]string{"customerId": "CUST001"}))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotCategory != "Electronics" {
		t.Fatalf("expected category Electronics, got %q", gotCategory)
	}
}

func TestCustomerProfileNotFound(t *testing.T) {
	svc := testCustomerService{profileFn: func(context.Context, string) (*customers.CustomerAnalytics, error) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Customer CUST999 not found")
	}}

	resp := httptest.NewRecorder()
	CustomerProfile(svc, testLogger())(resp, newRequest(http.MethodGet, "/api/v1/customers/CUST999", "", map[string]string{"customerId": "CUST999"}))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestSalesReportInvalidPeriod(t *testing.T) {
	svc := testReportService{salesFn: func(_ context.Context, period string) (*reports.SalesReport, error) {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid period '%s'", period).
			WithDetails(map[string]any{"valid_periods": enums.ReportPeriodNames()})
	}}

	resp := httptest.NewRecorder()
	SalesReport(svc, testLogger())(resp, newRequest(http.MethodGet, "/api/v1/reports/sales?period=decade", "", nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	if _, ok := env.Error.Details["valid_periods"]; !ok {
		t.Fatalf("expected valid_periods details, got %v", env.Error.Details)
	}
}

func TestAgentChatParsesKind(t *testing.T) {
	var gotKind agents.Kind
	team := testAgentTeam{chatFn: func(_ context.Context, kind agents.Kind, message string) (*agents.Reply, error) {
		gotKind = kind
		return &agents.Reply{Agent: "Inventory Agent", Text: message}, nil
	}}

	resp := httptest.NewRecorder()
	AgentChat(team, testLogger())(resp, newRequest(http.MethodPost, "/api/v1/agents/chat", `{"agent":"Inventory Agent","message":"check PROD001"}`, nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotKind != agents.KindInventory {
		t.Fatalf("expected inventory kind, got %q", gotKind)
	}
}

func TestAgentChatUnknownAgent(t *testing.T) {
	team := testAgentTeam{chatFn: func(context.Context, agents.Kind, string) (*agents.Reply, error) {
		t.Fatal("team should not be called")
		return nil, nil
	}}

	resp := httptest.NewRecorder()
	AgentChat(team, testLogger())(resp, newRequest(http.MethodPost, "/api/v1/agents/chat", `{"agent":"sales","message":"hi"}`, nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	if _, ok := env.Error.Details["valid_agents"]; !ok {
		t.Fatalf("expected valid_agents details, got %v", env.Error.Details)
	}
}

func TestAgentPlanDependencyFailure(t *testing.T) {
	team := testAgentTeam{planFn: func(context.Context, string) (*agents.Reply, error) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("timeout"), "generate workflow plan")
	}}

	resp := httptest.NewRecorder()
	AgentPlan(team, testLogger())(resp, newRequest(http.MethodPost, "/api/v1/agents/plan", `{"request":"weekly review"}`, nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestWorkflowRun(t *testing.T) {
	var gotName string
	team := testAgentTeam{workflowFn: func(_ context.Context, name string) ([]*agents.WorkflowRun, error) {
		gotName = name
		return []*agents.WorkflowRun{{Name: name}}, nil
	}}

	resp := httptest.NewRecorder()
	WorkflowRun(team, testLogger())(resp, newRequest(http.MethodPost, "/api/v1/workflows/inventory-audit", "", map[string]string{"name": "inventory-audit"}))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotName != "inventory-audit" {
		t.Fatalf("expected inventory-audit, got %q", gotName)
	}
}

func TestWorkflowList(t *testing.T) {
	resp := httptest.NewRecorder()
	WorkflowList()(resp, newRequest(http.MethodGet, "/api/v1/workflows", "", nil))
	env := decodeEnvelope(t, resp)
	var payload struct {
		Workflows []string `json:"workflows"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode workflows: %v", err)
	}
	if len(payload.Workflows) == 0 || payload.Workflows[len(payload.Workflows)-1] != "all" {
		t.Fatalf("expected workflows ending in all, got %v", payload.Workflows)
	}
}
