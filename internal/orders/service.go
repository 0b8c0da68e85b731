package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/shopdesk/internal/catalog"
	"github.com/angelmondragon/shopdesk/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
	"github.com/angelmondragon/shopdesk/pkg/logger"
)

type orderStore interface {
	GetOrder(ctx context.Context, id string) (catalog.Order, error)
	CompareAndSetOrderStatus(ctx context.Context, id string, expected, next enums.OrderStatus) error
}

type transitionCounter interface {
	IncTransition(action, outcome string)
}

// Service drives the order status state machine.
type Service interface {
	Retrieve(ctx context.Context, orderID string) (*TransitionResult, error)
	Transition(ctx context.Context, orderID, action string) (*TransitionResult, error)
}

// ServiceParams wires the order service.
type ServiceParams struct {
	Store   orderStore
	Logger  *logger.Logger
	Metrics transitionCounter
}

type service struct {
	store   orderStore
	logg    *logger.Logger
	metrics transitionCounter
}

// NewService builds an order service. Metrics are optional.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("order store required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	metrics := params.Metrics
	if metrics == nil {
		metrics = noopCounter{}
	}
	return &service{
		store:   params.Store,
		logg:    params.Logger,
		metrics: metrics,
	}, nil
}

func (s *service) Retrieve(ctx context.Context, orderID string) (*TransitionResult, error) {
	return s.Transition(ctx, orderID, string(enums.OrderActionRetrieve))
}

// Transition validates inputs, loads the order, parses the action and applies
// the transition table. An unknown order is NOT_FOUND whatever the action. Mutations use compare-and-set on the observed status,
// so a concurrent change surfaces as CONFLICT instead of a lost update.
func (s *service) Transition(ctx context.Context, orderID, rawAction string) (*TransitionResult, error) {
	if strings.TrimSpace(orderID) == "" || strings.TrimSpace(rawAction) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order_id and action are required")
	}
	ctx = s.logg.WithOrderID(ctx, catalog.NormalizeKey(orderID))

	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, catalog.LookupError(err, fmt.Sprintf("order '%s' not found", orderID), "load order")
	}

	action, err := enums.ParseOrderAction(rawAction)
	if err != nil {
		s.metrics.IncTransition(outcomeInvalid, outcomeInvalid)
		return nil, invalidActionError(rawAction)
	}
	ctx = s.logg.WithField(ctx, "action", string(action))

	d := decide(action, order)
	if d.reject != nil {
		s.metrics.IncTransition(string(action), outcomeRejected)
		s.logg.Warn(s.logg.WithField(ctx, "status", string(order.Status)), "order.transition.rejected")
		return nil, d.reject
	}

	result := &TransitionResult{
		Action:         action,
		Outcome:        d.outcome,
		PreviousStatus: order.Status,
		Message:        d.message,
		Warning:        d.warning,
	}

	if d.outcome != OutcomeApplied {
		result.Order = NewSnapshot(order)
		if d.outcome == OutcomeWarning {
			result.Message = d.warning
			s.metrics.IncTransition(string(action), string(OutcomeWarning))
			s.logg.Info(s.logg.WithField(ctx, "status", string(order.Status)), "order.transition.warning")
		}
		return result, nil
	}

	if err := s.store.CompareAndSetOrderStatus(ctx, order.ID, order.Status, d.next); err != nil {
		switch {
		case errors.Is(err, catalog.ErrStatusConflict):
			s.metrics.IncTransition(string(action), outcomeConflict)
			s.logg.Warn(ctx, "order.transition.conflict")
			return nil, pkgerrors.Newf(pkgerrors.CodeConflict,
				"order %s changed while applying %s; retry the request", order.ID, action).
				WithDetails(map[string]any{"order_id": order.ID, "expected_status": order.Status})
		default:
			return nil, catalog.LookupError(err, fmt.Sprintf("order '%s' not found", orderID), "update order status")
		}
	}

	order.Status = d.next
	result.Order = NewSnapshot(order)
	s.metrics.IncTransition(string(action), string(OutcomeApplied))
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"from": string(result.PreviousStatus),
		"to":   string(d.next),
	}), "order.transition.applied")
	return result, nil
}

type noopCounter struct{}

func (noopCounter) IncTransition(string, string) {}
