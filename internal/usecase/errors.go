package usecase

import (
	"errors"
	"fmt"
	"strings"

	"os_service_api/internal/domain/entities"
)

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidOrderBody = errors.New("invalid order payload")
	ErrInvalidStatus    = errors.New("invalid status value")

	ErrOrderNotFound    = errors.New("service order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrPartNotFound     = errors.New("part not found")
	ErrMechanicNotFound = errors.New("mechanic not found")

	ErrVehicleNotOwnedByCustomer = errors.New("vehicle does not belong to customer")
	ErrServiceNotActive          = errors.New("service not active")
	ErrPartNotActive             = errors.New("part not active")
	ErrMechanicRequired          = errors.New("mechanic must be assigned before execution")
	ErrMechanicBusy              = errors.New("mechanic is unavailable")
	ErrNotAwaitingApproval       = errors.New("order is not awaiting approval")
	ErrOrderStateConflict        = errors.New("order changed concurrently")
)

// InsufficientStockError reports available vs requested quantity so operators
// can diagnose rejected orders.
type InsufficientStockError struct {
	PartID    string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for part %s: available %d, requested %d", e.PartID, e.Available, e.Requested)
}

// InvalidTransitionError carries the currently-valid transition set for
// client-side UX.
type InvalidTransitionError struct {
	From    entities.OrderStatus
	To      entities.OrderStatus
	Allowed []entities.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = string(s)
	}
	return fmt.Sprintf("invalid status transition from %s to %s; allowed: [%s]", e.From, e.To, strings.Join(allowed, ", "))
}
