package entities

// Catalog entities referenced by OS lines. Both are read-only to this service
// except Part.Stock, which the OS creation flow is the sole authorized mutator
// of (conditional decrement, never below zero).

type CatalogService struct {
	ID               string
	Name             string
	Price            Money
	EstimatedMinutes int
	Active           bool
}

type Part struct {
	ID     string
	Name   string
	Price  Money
	Stock  int
	Active bool
}
