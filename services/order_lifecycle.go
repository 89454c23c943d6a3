package services

import (
	"context"
	"fmt"

	"food-vendor-api/models"
	"food-vendor-api/statemachine"
)

// StatusUpdateCommand carries one fulfillment status change. ReadyTime is an
// override in minutes; zero leaves the order's current estimate untouched.
type StatusUpdateCommand struct {
	OrderID   uint
	Status    models.OrderStatus
	Remarks   string
	ReadyTime int
	Actor     string
	ActorID   uint
}

// OrderLifecycle owns transitions of an order's fulfillment status. Each call
// is a single read-modify-write on one order; concurrent ApplyStatus calls on
// the same order race and the later save wins.
type OrderLifecycle struct {
	orders OrderRepository
	strict bool
}

type OrderLifecycleOption func(*OrderLifecycle)

// WithStrictTransitions makes ApplyStatus reject status changes that are not
// legal moves in the fulfillment state machine.
func WithStrictTransitions() OrderLifecycleOption {
	return func(l *OrderLifecycle) { l.strict = true }
}

func NewOrderLifecycle(orders OrderRepository, opts ...OrderLifecycleOption) *OrderLifecycle {
	l := &OrderLifecycle{orders: orders}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// GetOrder returns the order with its line items materialized
func (l *OrderLifecycle) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := l.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrders returns all orders for the vendor; an empty slice is not an error
func (l *OrderLifecycle) ListOrders(ctx context.Context, vendorID uint) ([]models.Order, error) {
	orders, err := l.orders.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list orders for vendor %d: %w", vendorID, err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// ApplyStatus applies cmd to the order and persists it before returning.
// Remarks are always overwritten, empty string included. The ready-time
// estimate changes only when the command carries a positive override.
func (l *OrderLifecycle) ApplyStatus(ctx context.Context, cmd StatusUpdateCommand) (*models.Order, error) {
	if !cmd.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, cmd.Status)
	}

	order, err := l.orders.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", cmd.OrderID, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if l.strict {
		if err := statemachine.CanTransition(order.Status, cmd.Status, cmd.Actor); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, err)
		}
	}

	prev := order.Status
	order.Status = cmd.Status
	order.Remarks = cmd.Remarks
	if cmd.ReadyTime > 0 {
		order.ReadyTime = cmd.ReadyTime
	}
	order.StatusHistory = append(order.StatusHistory, models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prev,
		ToStatus:   cmd.Status,
		ChangedBy:  cmd.ActorID,
		Note:       cmd.Remarks,
	})

	if err := l.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order %d: %w", cmd.OrderID, err)
	}
	return order, nil
}
