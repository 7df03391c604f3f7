package interfaces

import (
	"context"

	"os_service_api/internal/domain/entities"
)

// ChargeRequest is the typed charge issued when a budget is approved.
type ChargeRequest struct {
	Amount            entities.Money
	Description       string
	ExternalReference string
	PayerEmail        string
}

// Charge is the provider's answer.
type Charge struct {
	ProviderPaymentID string
	Status            string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (Charge, error)
}

// IPaymentRepository abstracts DynamoDB persistence for Payment records.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
}
