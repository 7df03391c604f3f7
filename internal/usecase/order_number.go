package usecase

import (
	"context"
	"fmt"
	"time"

	"os_service_api/internal/usecase/interfaces"
)

// orderNumberWidth is the zero-padded sequence width ("OS-2026-0001").
const orderNumberWidth = 4

func formatOrderNumber(year, seq int) string {
	return fmt.Sprintf("OS-%d-%0*d", year, orderNumberWidth, seq)
}

// nextOrderNumber derives the human-readable OS number from the count of
// orders already created this year. Sequence gaps (or, under a pathological
// concurrent-creation race, a duplicate suffix) are tolerated: the uuid id is
// the identity, the OS number is the front-desk label.
func nextOrderNumber(ctx context.Context, repo interfaces.IServiceOrderRepository, now time.Time) (string, error) {
	year := now.UTC().Year()
	count, err := repo.CountCreatedInYear(ctx, year)
	if err != nil {
		return "", err
	}
	return formatOrderNumber(year, count+1), nil
}
