package entities

import "time"

// OrderStatus is the service order (OS) lifecycle status.
//
// The flow mirrors the workshop floor: the vehicle is received, diagnosed,
// the budget waits for the customer, execution happens after approval, and
// the OS is finished and finally delivered. The only backward edge is a
// re-diagnosis after a rejected budget.

type OrderStatus string

const (
	StatusRecebida            OrderStatus = "recebida"
	StatusEmDiagnostico       OrderStatus = "em_diagnostico"
	StatusAguardandoAprovacao OrderStatus = "aguardando_aprovacao"
	StatusEmExecucao          OrderStatus = "em_execucao"
	StatusFinalizada          OrderStatus = "finalizada"
	StatusEntregue            OrderStatus = "entregue"
)

// AllowedTransitions is the OS state flow as code. "entregue" is terminal.
var AllowedTransitions = map[OrderStatus][]OrderStatus{
	StatusRecebida:            {StatusEmDiagnostico},
	StatusEmDiagnostico:       {StatusAguardandoAprovacao},
	StatusAguardandoAprovacao: {StatusEmExecucao, StatusEmDiagnostico},
	StatusEmExecucao:          {StatusFinalizada},
	StatusFinalizada:          {StatusEntregue},
	StatusEntregue:            {},
}

func (s OrderStatus) Valid() bool {
	_, ok := AllowedTransitions[s]
	return ok
}

func CanTransition(from, to OrderStatus) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// AllowedFrom returns a copy of the legal targets from a status, in table order.
func AllowedFrom(from OrderStatus) []OrderStatus {
	allowed := AllowedTransitions[from]
	out := make([]OrderStatus, len(allowed))
	copy(out, allowed)
	return out
}

// ServiceOrder is the aggregate root persisted by the OS service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI order_number-index: order_number
//   - GSI customer_id-index: customer_id
//   - GSI vehicle_id-index: vehicle_id
//   - GSI created_year-index: created_year (order-number sequence)
//
// Invariant: TotalPrice == TotalServicePrice + TotalPartsPrice at every
// observable state.

type ServiceOrder struct {
	ID          string
	OrderNumber string
	CustomerID  string
	VehicleID   string
	MechanicID  *string
	Description string
	Status      OrderStatus

	TotalServicePrice Money
	TotalPartsPrice   Money
	TotalPrice        Money

	EstimatedHours        float64
	EstimatedCompletionAt time.Time

	StartedAt   *time.Time
	CompletedAt *time.Time
	DeliveredAt *time.Time
	ApprovedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceOrderItem is a service line. UnitPrice is snapshotted at creation so
// later catalog price changes never alter a placed order.
type ServiceOrderItem struct {
	ID        string
	OrderID   string
	ServiceID string
	Quantity  int
	UnitPrice Money
	LineTotal Money
}

// ServiceOrderPart is a part line. Creating it and decrementing the part's
// stock are a single unit of work at the repository level.
type ServiceOrderPart struct {
	ID        string
	OrderID   string
	PartID    string
	Quantity  int
	UnitPrice Money
	LineTotal Money
}
