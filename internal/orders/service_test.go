package orders

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/shopdesk/internal/catalog"
	"github.com/angelmondragon/shopdesk/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
	"github.com/angelmondragon/shopdesk/pkg/logger"
	"github.com/angelmondragon/shopdesk/pkg/metrics"
)

func newTestService(t *testing.T) (Service, *catalog.MemoryStore) {
	t.Helper()
	store, err := catalog.NewMemoryStore(catalog.DefaultSeed())
	require.NoError(t, err)
	svc, err := NewService(ServiceParams{Store: store, Logger: logger.Nop()})
	require.NoError(t, err)
	return svc, store
}

func storedStatus(t *testing.T, store catalog.Store, id string) enums.OrderStatus {
	t.Helper()
	o, err := store.GetOrder(context.Background(), id)
	require.NoError(t, err)
	return o.Status
}

// seedWithStatus returns a one-order store holding the given status.
func seedWithStatus(t *testing.T, status enums.OrderStatus) *catalog.MemoryStore {
	t.Helper()
	seed := catalog.DefaultSeed()
	seed.Orders = seed.Orders[:1]
	seed.Orders[0].Status = status
	store, err := catalog.NewMemoryStore(seed)
	require.NoError(t, err)
	return store
}

func TestTransitionTable(t *testing.T) {
	type want struct {
		outcome Outcome
		code    pkgerrors.Code
		status  enums.OrderStatus
	}
	cases := map[enums.OrderAction]map[enums.OrderStatus]want{
		enums.OrderActionRetrieve: {
			enums.OrderStatusPending:    {outcome: OutcomeRetrieved, status: enums.OrderStatusPending},
			enums.OrderStatusProcessing: {outcome: OutcomeRetrieved, status: enums.OrderStatusProcessing},
			enums.OrderStatusShipped:    {outcome: OutcomeRetrieved, status: enums.OrderStatusShipped},
			enums.OrderStatusDelivered:  {outcome: OutcomeRetrieved, status: enums.OrderStatusDelivered},
			enums.OrderStatusCancelled:  {outcome: OutcomeRetrieved, status: enums.OrderStatusCancelled},
		},
		enums.OrderActionShip: {
			enums.OrderStatusPending:    {outcome: OutcomeApplied, status: enums.OrderStatusShipped},
			enums.OrderStatusProcessing: {outcome: OutcomeApplied, status: enums.OrderStatusShipped},
			enums.OrderStatusShipped:    {outcome: OutcomeWarning, status: enums.OrderStatusShipped},
			enums.OrderStatusDelivered:  {outcome: OutcomeWarning, status: enums.OrderStatusDelivered},
			enums.OrderStatusCancelled:  {outcome: OutcomeApplied, status: enums.OrderStatusShipped},
		},
		enums.OrderActionCancel: {
			enums.OrderStatusPending:    {outcome: OutcomeApplied, status: enums.OrderStatusCancelled},
			enums.OrderStatusProcessing: {outcome: OutcomeApplied, status: enums.OrderStatusCancelled},
			enums.OrderStatusShipped:    {code: pkgerrors.CodeStateConflict, status: enums.OrderStatusShipped},
			enums.OrderStatusDelivered:  {code: pkgerrors.CodeStateConflict, status: enums.OrderStatusDelivered},
			enums.OrderStatusCancelled:  {outcome: OutcomeApplied, status: enums.OrderStatusCancelled},
		},
		enums.OrderActionComplete: {
			enums.OrderStatusPending:    {outcome: OutcomeWarning, status: enums.OrderStatusPending},
			enums.OrderStatusProcessing: {outcome: OutcomeWarning, status: enums.OrderStatusProcessing},
			enums.OrderStatusShipped:    {outcome: OutcomeApplied, status: enums.OrderStatusDelivered},
			enums.OrderStatusDelivered:  {outcome: OutcomeWarning, status: enums.OrderStatusDelivered},
			enums.OrderStatusCancelled:  {outcome: OutcomeWarning, status: enums.OrderStatusCancelled},
		},
	}

	for action, byStatus := range cases {
		for status, w := range byStatus {
			t.Run(string(action)+"_from_"+string(status), func(t *testing.T) {
				store := seedWithStatus(t, status)
				svc, err := NewService(ServiceParams{Store: store, Logger: logger.Nop()})
				require.NoError(t, err)

				res, err := svc.Transition(context.Background(), "ORD001", string(action))
				if w.code != "" {
					require.Error(t, err)
					assert.True(t, pkgerrors.IsCode(err, w.code), "got %v", err)
					assert.Nil(t, res)
				} else {
					require.NoError(t, err)
					assert.Equal(t, w.outcome, res.Outcome)
					assert.Equal(t, status, res.PreviousStatus)
					assert.Equal(t, w.status, res.Order.Status)
				}
				assert.Equal(t, w.status, storedStatus(t, store, "ORD001"))
			})
		}
	}
}

func TestShipAlreadyShippedIsWarning(t *testing.T) {
	svc, store := newTestService(t)

	for i := 0; i < 3; i++ {
		res, err := svc.Transition(context.Background(), "ORD001", "ship")
		require.NoError(t, err)
		assert.True(t, res.IsWarning())
		assert.Equal(t, "Order ORD001 has already been shipped", res.Warning)
	}
	assert.Equal(t, enums.OrderStatusShipped, storedStatus(t, store, "ORD001"))
}

func TestCancelAfterShipAlwaysRejected(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	res, err := svc.Transition(ctx, "ord002", "SHIP")
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, res.Outcome)
	assert.Equal(t, "Order ORD002 has been shipped successfully. Customer CUST002 will be notified.", res.Message)

	for i := 0; i < 2; i++ {
		_, _ = svc.Transition(ctx, "ORD002", "ship")
		_, err = svc.Transition(ctx, "ORD002", "cancel")
		require.Error(t, err)
		assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
	}
	assert.Equal(t, enums.OrderStatusShipped, storedStatus(t, store, "ORD002"))
}

func TestCancelDeliveredOrderRejected(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.Transition(context.Background(), "ORD003", "cancel")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeStateConflict))
	assert.Contains(t, err.Error(), "already been delivered")
	assert.Equal(t, enums.OrderStatusDelivered, storedStatus(t, store, "ORD003"))
}

func TestCompleteNamesPrecondition(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Transition(context.Background(), "ORD004", "complete")
	require.NoError(t, err)
	assert.True(t, res.IsWarning())
	assert.Equal(t, "Order ORD004 must be shipped before it can be completed. Current status: processing", res.Warning)

	res, err = svc.Transition(context.Background(), "ORD001", "complete")
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, res.Outcome)
	assert.Equal(t, enums.OrderStatusDelivered, res.Order.Status)
	assert.Equal(t, enums.OrderStatusShipped, res.PreviousStatus)
}

func TestRetrieveReturnsSnapshot(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Retrieve(context.Background(), "ord001")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRetrieved, res.Outcome)
	assert.Equal(t, "ORD001", res.Order.OrderID)
	assert.Equal(t, 2, res.Order.ItemCount)
	assert.Equal(t, "1329.98", res.Order.TotalAmount.StringFixed(2))
	assert.Equal(t, "2025-09-15", res.Order.OrderDate)
}

func TestTransitionValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Transition(ctx, "", "ship")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	_, err = svc.Transition(ctx, "ORD001", " ")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = svc.Transition(ctx, "ORD001", "refund")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Equal(t, map[string]any{"valid_actions": []string{"retrieve", "ship", "cancel", "complete"}}, typed.Details())

	_, err = svc.Transition(ctx, "ORD999", "ship")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	_, err = svc.Transition(ctx, "ORD999", "refund")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound), "unknown order wins over unknown action, got %v", err)

	_, err = svc.Transition(ctx, " ord001 ", "retrieve")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound), "keys are uppercased, not trimmed, got %v", err)
}

type racingStore struct {
	order catalog.Order
	casFn func() error
}

func (r *racingStore) GetOrder(context.Context, string) (catalog.Order, error) {
	return r.order.Clone(), nil
}

func (r *racingStore) CompareAndSetOrderStatus(context.Context, string, enums.OrderStatus, enums.OrderStatus) error {
	return r.casFn()
}

func TestTransitionConflictWhenStatusChanges(t *testing.T) {
	store := &racingStore{
		order: catalog.DefaultSeed().Orders[1],
		casFn: func() error { return catalog.ErrStatusConflict },
	}
	svc, err := NewService(ServiceParams{Store: store, Logger: logger.Nop()})
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), "ORD002", "ship")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))
}

func TestTransitionDependencyFailure(t *testing.T) {
	store := &racingStore{
		order: catalog.DefaultSeed().Orders[1],
		casFn: func() error { return errors.New("database is locked") },
	}
	svc, err := NewService(ServiceParams{Store: store, Logger: logger.Nop()})
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), "ORD002", "cancel")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}

func TestTransitionMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	store, err := catalog.NewMemoryStore(catalog.DefaultSeed())
	require.NoError(t, err)
	svc, err := NewService(ServiceParams{Store: store, Logger: logger.Nop(), Metrics: metrics.NewOrderMetrics(reg)})
	require.NoError(t, err)

	ctx := context.Background()
	_, _ = svc.Transition(ctx, "ORD002", "ship")
	_, _ = svc.Transition(ctx, "ORD002", "ship")
	_, _ = svc.Transition(ctx, "ORD002", "cancel")

	expected := `
# HELP order_transitions_total Order action requests, by action and outcome.
# TYPE order_transitions_total counter
order_transitions_total{action="cancel",outcome="rejected"} 1
order_transitions_total{action="ship",outcome="applied"} 1
order_transitions_total{action="ship",outcome="warning"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "order_transitions_total"))
}

func TestNewServiceRequiresDeps(t *testing.T) {
	_, err := NewService(ServiceParams{Logger: logger.Nop()})
	require.Error(t, err)
	store, _ := catalog.NewMemoryStore(catalog.DefaultSeed())
	_, err = NewService(ServiceParams{Store: store})
	require.Error(t, err)
}
