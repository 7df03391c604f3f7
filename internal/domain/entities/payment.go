package entities

import "time"

// PaymentStatus represents the charge outcome reported by the provider.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// Payment is the approved-budget charge registered when the customer approves
// an OS. It is best-effort bookkeeping; the OS lifecycle never depends on it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI order_id-index: order_id

type Payment struct {
	ID                string
	OrderID           string
	Amount            Money
	Status            PaymentStatus
	ProviderPaymentID string
	Date              time.Time
}
