package usecase

import "os_service_api/internal/domain/entities"

// ValidateTransition applies the pure transition policy. It knows nothing
// about mechanics, stock or notifications; those side effects belong to the
// workflow after validation passes.
func ValidateTransition(from, to entities.OrderStatus) error {
	if entities.CanTransition(from, to) {
		return nil
	}
	return &InvalidTransitionError{
		From:    from,
		To:      to,
		Allowed: entities.AllowedFrom(from),
	}
}
