package response

import (
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase"
)

type CustomerSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type VehicleSummary struct {
	ID    string `json:"id"`
	Plate string `json:"plate"`
	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
	Year  int    `json:"year,omitempty"`
}

type MechanicSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ServiceLineResponse struct {
	ServiceID         string  `json:"service_id"`
	ServiceName       string  `json:"service_name"`
	Quantity          int     `json:"quantity"`
	UnitPriceCentavos int64   `json:"unit_price_centavos"`
	UnitPrice         float64 `json:"unit_price"`
	LineTotalCentavos int64   `json:"line_total_centavos"`
	LineTotal         float64 `json:"line_total"`
}

type PartLineResponse struct {
	PartID            string  `json:"part_id"`
	PartName          string  `json:"part_name"`
	Quantity          int     `json:"quantity"`
	UnitPriceCentavos int64   `json:"unit_price_centavos"`
	UnitPrice         float64 `json:"unit_price"`
	LineTotalCentavos int64   `json:"line_total_centavos"`
	LineTotal         float64 `json:"line_total"`
}

// ServiceOrderResponse is the hydrated OS shape returned by every endpoint.
// Monetary values carry both the authoritative centavos and a float for
// display; the centavos fields are the source of truth.
type ServiceOrderResponse struct {
	ID          string           `json:"id"`
	OrderNumber string           `json:"order_number"`
	Status      string           `json:"status"`
	Description string           `json:"description,omitempty"`
	Customer    CustomerSummary  `json:"customer"`
	Vehicle     VehicleSummary   `json:"vehicle"`
	Mechanic    *MechanicSummary `json:"mechanic,omitempty"`

	Services []ServiceLineResponse `json:"services"`
	Parts    []PartLineResponse    `json:"parts"`

	TotalServicePriceCentavos int64   `json:"total_service_price_centavos"`
	TotalServicePrice         float64 `json:"total_service_price"`
	TotalPartsPriceCentavos   int64   `json:"total_parts_price_centavos"`
	TotalPartsPrice           float64 `json:"total_parts_price"`
	TotalPriceCentavos        int64   `json:"total_price_centavos"`
	TotalPrice                float64 `json:"total_price"`

	EstimatedHours        float64    `json:"estimated_hours"`
	EstimatedCompletionAt time.Time  `json:"estimated_completion_at"`
	StartedAt             *time.Time `json:"started_at,omitempty"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`
	DeliveredAt           *time.Time `json:"delivered_at,omitempty"`
	ApprovedAt            *time.Time `json:"approved_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func FromServiceOrderDetails(d usecase.ServiceOrderDetails) ServiceOrderResponse {
	resp := ServiceOrderResponse{
		ID:          d.Order.ID,
		OrderNumber: d.Order.OrderNumber,
		Status:      string(d.Order.Status),
		Description: d.Order.Description,
		Customer: CustomerSummary{
			ID:       d.Customer.ID,
			Name:     d.Customer.Name,
			Document: d.Customer.Document,
			Email:    d.Customer.Email,
			Phone:    d.Customer.Phone,
		},
		Vehicle: VehicleSummary{
			ID:    d.Vehicle.ID,
			Plate: d.Vehicle.Plate,
			Brand: d.Vehicle.Brand,
			Model: d.Vehicle.Model,
			Year:  d.Vehicle.Year,
		},
		Services: make([]ServiceLineResponse, 0, len(d.Items)),
		Parts:    make([]PartLineResponse, 0, len(d.Parts)),

		TotalServicePriceCentavos: int64(d.Order.TotalServicePrice),
		TotalServicePrice:         d.Order.TotalServicePrice.Float64(),
		TotalPartsPriceCentavos:   int64(d.Order.TotalPartsPrice),
		TotalPartsPrice:           d.Order.TotalPartsPrice.Float64(),
		TotalPriceCentavos:        int64(d.Order.TotalPrice),
		TotalPrice:                d.Order.TotalPrice.Float64(),

		EstimatedHours:        d.Order.EstimatedHours,
		EstimatedCompletionAt: d.Order.EstimatedCompletionAt,
		StartedAt:             d.Order.StartedAt,
		CompletedAt:           d.Order.CompletedAt,
		DeliveredAt:           d.Order.DeliveredAt,
		ApprovedAt:            d.Order.ApprovedAt,
		CreatedAt:             d.Order.CreatedAt,
		UpdatedAt:             d.Order.UpdatedAt,
	}
	if d.Mechanic != nil {
		resp.Mechanic = &MechanicSummary{ID: d.Mechanic.ID, Name: d.Mechanic.Name}
	}
	for _, item := range d.Items {
		resp.Services = append(resp.Services, ServiceLineResponse{
			ServiceID:         item.Line.ServiceID,
			ServiceName:       item.ServiceName,
			Quantity:          item.Line.Quantity,
			UnitPriceCentavos: int64(item.Line.UnitPrice),
			UnitPrice:         item.Line.UnitPrice.Float64(),
			LineTotalCentavos: int64(item.Line.LineTotal),
			LineTotal:         item.Line.LineTotal.Float64(),
		})
	}
	for _, part := range d.Parts {
		resp.Parts = append(resp.Parts, PartLineResponse{
			PartID:            part.Line.PartID,
			PartName:          part.PartName,
			Quantity:          part.Line.Quantity,
			UnitPriceCentavos: int64(part.Line.UnitPrice),
			UnitPrice:         part.Line.UnitPrice.Float64(),
			LineTotalCentavos: int64(part.Line.LineTotal),
			LineTotal:         part.Line.LineTotal.Float64(),
		})
	}
	return resp
}

func FromServiceOrderDetailsList(details []usecase.ServiceOrderDetails) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(details))
	for _, d := range details {
		out = append(out, FromServiceOrderDetails(d))
	}
	return out
}

type StatusHistoryResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	Actor     string    `json:"actor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromStatusHistory(entries []entities.StatusHistoryEntry) []StatusHistoryResponse {
	out := make([]StatusHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, StatusHistoryResponse{
			ID:        e.ID,
			Status:    string(e.Status),
			Notes:     e.Notes,
			Actor:     e.Actor,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

type PaymentResponse struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"order_id"`
	AmountCentavos    int64     `json:"amount_centavos"`
	Amount            float64   `json:"amount"`
	Status            string    `json:"status"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	Date              time.Time `json:"date"`
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, PaymentResponse{
			ID:                p.ID,
			OrderID:           p.OrderID,
			AmountCentavos:    int64(p.Amount),
			Amount:            p.Amount.Float64(),
			Status:            string(p.Status),
			ProviderPaymentID: p.ProviderPaymentID,
			Date:              p.Date,
		})
	}
	return out
}
