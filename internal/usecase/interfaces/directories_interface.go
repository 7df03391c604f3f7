package interfaces

import (
	"context"

	"os_service_api/internal/domain/entities"
)

// Lookup interfaces follow the repository convention used across the project:
// a zero-value entity (empty ID) with a nil error means "not found"; errors
// are reserved for infrastructure failures.

// ICustomerDirectory abstracts the customer registration module.
type ICustomerDirectory interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByDocument(ctx context.Context, document string) (entities.Customer, error)
}

// IVehicleDirectory abstracts the vehicle registration module.
type IVehicleDirectory interface {
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error)
}

// IMechanicDirectory abstracts mechanic records and their availability flag.
//
// MarkUnavailable is a compare-and-set: it only succeeds while the mechanic is
// available and returns ErrConditionalCheckFailed otherwise, so two concurrent
// executions can never bind the same mechanic. Release is idempotent.
type IMechanicDirectory interface {
	GetByID(ctx context.Context, id string) (entities.Mechanic, error)
	MarkUnavailable(ctx context.Context, id string) error
	Release(ctx context.Context, id string) error
}
