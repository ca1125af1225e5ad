// Package orders owns the travel-order lifecycle: creation, listing,
// visibility and the pending/approved/cancelled state machine.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voyago/travel-order-service/internal/app/entity"
	"github.com/voyago/travel-order-service/internal/app/metrics"
	err_storage "github.com/voyago/travel-order-service/internal/app/storage/api/errors"
	usecase "github.com/voyago/travel-order-service/internal/app/usecase/errors"
	"github.com/voyago/travel-order-service/internal/app/usecase/policy"
	"github.com/voyago/travel-order-service/internal/app/validator"
)

type OrderStorage interface {
	CreateOrder(ctx context.Context, order entity.TravelOrder) error
	GetOrder(ctx context.Context, orderID entity.OrderID) (entity.TravelOrder, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.TravelOrders, error)
	TransitOrderStatus(ctx context.Context, orderID entity.OrderID, from, to entity.OrderStatus) (entity.TravelOrder, error)
	GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error)
}

type Notifier interface {
	Notify(ctx context.Context, event entity.OrderEvent)
}

type Service struct {
	storage  OrderStorage
	notifier Notifier
}

func New(storage OrderStorage, notifier Notifier) *Service {
	return &Service{
		storage:  storage,
		notifier: notifier,
	}
}

// Create persists a new pending order owned by the actor. The status and the
// owner are always set here; values injected by the caller are discarded.
func (s *Service) Create(ctx context.Context, actor entity.Actor, order entity.TravelOrder) (entity.TravelOrder, error) {
	decision := policy.Can(actor, policy.ActionCreate, actor.ID)
	if !decision.Allowed {
		zap.L().Info("order creation denied", zap.String("reason", string(decision.Reason)))
		return entity.TravelOrder{}, usecase.ErrForbidden
	}

	if fields := validator.ValidateOrder(order); len(fields) > 0 {
		return entity.TravelOrder{}, usecase.NewValidationError(fields)
	}

	order.ID = entity.OrderID(uuid.NewString())
	order.UserID = actor.ID
	order.Status = entity.StatusPendingOrder
	order.DateCreated = time.Now()

	err := s.storage.CreateOrder(ctx, order)
	if err != nil {
		return entity.TravelOrder{}, fmt.Errorf("error while creating order: %w", err)
	}

	metrics.OrdersCreated.Inc()

	return order, nil
}

// List returns orders matching the filter. Non-admin actors are restricted to
// their own orders regardless of the filter they supply.
func (s *Service) List(ctx context.Context, actor entity.Actor, filter entity.OrderFilter) (entity.TravelOrders, error) {
	if !actor.IsAdmin {
		filter.OwnerID = actor.ID
	}

	orders, err := s.storage.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error while listing orders: %w", err)
	}

	return orders, nil
}

// Get returns the order when the actor may see it. A missing order and a
// visibility denial are both reported as not found so that unauthorized
// callers cannot probe for existence. For admin actors the owner is returned
// alongside the order.
func (s *Service) Get(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.TravelOrder, *entity.User, error) {
	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, err_storage.ErrOrderNotFound) {
			return entity.TravelOrder{}, nil, usecase.ErrOrderNotFound
		}

		return entity.TravelOrder{}, nil, fmt.Errorf("error while getting order: %w", err)
	}

	decision := policy.Can(actor, policy.ActionView, order.UserID)
	if !decision.Allowed {
		zap.L().Info(
			"order view denied",
			zap.String("order_id", orderID.String()),
			zap.String("reason", string(decision.Reason)),
		)
		return entity.TravelOrder{}, nil, usecase.ErrOrderNotFound
	}

	if !actor.IsAdmin {
		return order, nil, nil
	}

	owner, err := s.storage.GetUserByID(ctx, order.UserID)
	if err != nil {
		return entity.TravelOrder{}, nil, fmt.Errorf("error while getting order owner: %w", err)
	}

	return order, &owner, nil
}

// Approve moves a pending order to approved and emits an approval event after
// the transition has been committed.
func (s *Service) Approve(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.TravelOrder, error) {
	order, err := s.transit(ctx, actor, orderID, entity.ActionApproveOrder, policy.ActionApprove)
	if err != nil {
		return entity.TravelOrder{}, err
	}

	s.notifier.Notify(ctx, entity.OrderEvent{
		OrderID: order.ID,
		OwnerID: order.UserID,
		Amount:  order.Price,
	})

	return order, nil
}

// Cancel moves a pending order to cancelled and emits a cancellation event
// after the transition has been committed. Approved orders cannot be
// cancelled.
func (s *Service) Cancel(ctx context.Context, actor entity.Actor, orderID entity.OrderID) (entity.TravelOrder, error) {
	order, err := s.transit(ctx, actor, orderID, entity.ActionCancelOrder, policy.ActionCancel)
	if err != nil {
		return entity.TravelOrder{}, err
	}

	s.notifier.Notify(ctx, entity.OrderEvent{
		OrderID: order.ID,
		OwnerID: order.UserID,
		Amount:  order.Price,
		Status:  order.Status,
	})

	return order, nil
}

func (s *Service) transit(ctx context.Context, actor entity.Actor, orderID entity.OrderID, action entity.OrderAction, policyAction policy.Action) (entity.TravelOrder, error) {
	decision := policy.Can(actor, policyAction, "")
	if !decision.Allowed {
		zap.L().Info(
			"order transition denied",
			zap.String("order_id", orderID.String()),
			zap.String("action", string(action)),
			zap.String("reason", string(decision.Reason)),
		)
		return entity.TravelOrder{}, usecase.ErrForbidden
	}

	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, err_storage.ErrOrderNotFound) {
			return entity.TravelOrder{}, usecase.ErrOrderNotFound
		}

		return entity.TravelOrder{}, fmt.Errorf("error while getting order for transition: %w", err)
	}

	next, ok := order.Status.Transition(action)
	if !ok {
		metrics.RejectedTransitions.WithLabelValues(string(action)).Inc()
		return entity.TravelOrder{}, usecase.ErrInvalidTransition
	}

	updated, err := s.storage.TransitOrderStatus(ctx, orderID, order.Status, next)
	if err != nil {
		if errors.Is(err, err_storage.ErrOrderStateChanged) {
			// A concurrent transition won; the state machine rejects ours.
			metrics.RejectedTransitions.WithLabelValues(string(action)).Inc()
			return entity.TravelOrder{}, usecase.ErrInvalidTransition
		}
		if errors.Is(err, err_storage.ErrOrderNotFound) {
			return entity.TravelOrder{}, usecase.ErrOrderNotFound
		}

		return entity.TravelOrder{}, fmt.Errorf("error while updating order status: %w", err)
	}

	metrics.OrderTransitions.WithLabelValues(string(action)).Inc()

	return updated, nil
}
