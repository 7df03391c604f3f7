package interfaces

import (
	"context"

	"os_service_api/internal/domain/entities"
)

// IServiceCatalog abstracts the labor service catalog (price, duration, active flag).
type IServiceCatalog interface {
	GetByID(ctx context.Context, id string) (entities.CatalogService, error)
}

// IPartCatalog abstracts the parts catalog. Stock mutation is not exposed
// here: the decrement happens inside the order repository's creation
// transaction so a part row and its stock change commit together.
type IPartCatalog interface {
	GetByID(ctx context.Context, id string) (entities.Part, error)
}
