package entities

import "fmt"

// Money is a BRL amount in centavos. All order arithmetic is integer based so
// that totals never drift; floats appear only at the API edge for display.

type Money int64

func (m Money) Add(other Money) Money {
	return m + other
}

// MulQty computes a line total from a unit price snapshot.
func (m Money) MulQty(qty int) Money {
	return m * Money(qty)
}

func (m Money) Float64() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	return fmt.Sprintf("R$ %d,%02d", int64(m)/100, int64(m)%100)
}
