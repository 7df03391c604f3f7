package usecase

import (
	"time"

	"os_service_api/internal/domain/entities"
)

// completionBuffer is the fixed 20% scheduling margin applied over the raw
// labor estimate when projecting the completion date.
const completionBuffer = 1.2

type pricedServiceLine struct {
	Service  entities.CatalogService
	Quantity int
}

type pricedPartLine struct {
	Part     entities.Part
	Quantity int
}

// OrderTotals is the aggregate pricing result for an OS at creation time.
type OrderTotals struct {
	TotalServicePrice     entities.Money
	TotalPartsPrice       entities.Money
	TotalPrice            entities.Money
	EstimatedHours        float64
	EstimatedCompletionAt time.Time
}

// computeTotals is pure: unit prices and durations come from the catalog
// records already loaded during validation, quantities from the request.
func computeTotals(services []pricedServiceLine, parts []pricedPartLine, now time.Time) OrderTotals {
	var serviceTotal, partsTotal entities.Money
	var rawMinutes int

	for _, line := range services {
		serviceTotal = serviceTotal.Add(line.Service.Price.MulQty(line.Quantity))
		rawMinutes += line.Service.EstimatedMinutes * line.Quantity
	}
	for _, line := range parts {
		partsTotal = partsTotal.Add(line.Part.Price.MulQty(line.Quantity))
	}

	rawHours := float64(rawMinutes) / 60
	buffered := time.Duration(rawHours * completionBuffer * float64(time.Hour))

	return OrderTotals{
		TotalServicePrice:     serviceTotal,
		TotalPartsPrice:       partsTotal,
		TotalPrice:            serviceTotal.Add(partsTotal),
		EstimatedHours:        rawHours,
		EstimatedCompletionAt: now.Add(buffered),
	}
}
