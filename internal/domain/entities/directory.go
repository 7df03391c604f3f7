package entities

// Customer, Vehicle and Mechanic records are owned by their own registration
// modules; the OS service reads them for validation/hydration and only mutates
// the mechanic availability flag while an OS is in execution.

type Customer struct {
	ID       string
	Name     string
	Document string
	Email    string
	Phone    string
}

type Vehicle struct {
	ID         string
	CustomerID string
	Plate      string
	Brand      string
	Model      string
	Year       int
}

type Mechanic struct {
	ID        string
	Name      string
	Available bool
}
