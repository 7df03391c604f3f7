package interfaces

import (
	"context"
	"time"

	"os_service_api/internal/domain/entities"
)

// StatusStamps carries the lifecycle timestamps to set together with a status
// change. Nil fields are left untouched.
type StatusStamps struct {
	StartedAt   *time.Time
	CompletedAt *time.Time
	DeliveredAt *time.Time
	ApprovedAt  *time.Time
}

// IServiceOrderRepository abstracts DynamoDB persistence for the OS aggregate.
//
// CreateWithLines persists the order, its service/part lines and every stock
// decrement as one transaction: either the whole OS exists with stock taken,
// or nothing was written. A lost stock condition surfaces as
// ErrConditionalCheckFailed.
//
// UpdateStatus is conditioned on the expected current status so concurrent
// transitions serialize; the loser gets ErrConditionalCheckFailed.
type IServiceOrderRepository interface {
	CreateWithLines(ctx context.Context, o entities.ServiceOrder, items []entities.ServiceOrderItem, parts []entities.ServiceOrderPart) error
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.ServiceOrder, error)
	ListAll(ctx context.Context) ([]entities.ServiceOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceOrder, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, stamps StatusStamps) (entities.ServiceOrder, error)
	CountCreatedInYear(ctx context.Context, year int) (int, error)
	ListItems(ctx context.Context, orderID string) ([]entities.ServiceOrderItem, error)
	ListParts(ctx context.Context, orderID string) ([]entities.ServiceOrderPart, error)
	AppendHistory(ctx context.Context, e entities.StatusHistoryEntry) error
	ListHistory(ctx context.Context, orderID string) ([]entities.StatusHistoryEntry, error)
}
