package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	creationNote = "Ordem de serviço criada"
	approvalNote = "Orçamento aprovado pelo cliente"

	actorSystem   = "system"
	actorCustomer = "customer"
)

// ServiceLineInput and PartLineInput are the requested lines; prices always
// come from the catalog, never from the caller.

type ServiceLineInput struct {
	ServiceID string
	Quantity  int
}

type PartLineInput struct {
	PartID   string
	Quantity int
}

type CreateServiceOrderCommand struct {
	CustomerID  string
	VehicleID   string
	MechanicID  string
	Description string
	Services    []ServiceLineInput
	Parts       []PartLineInput
}

// ServiceLineDetail and PartLineDetail are lines with the catalog name
// resolved at read time. A missing catalog entry degrades to an empty name.

type ServiceLineDetail struct {
	Line        entities.ServiceOrderItem
	ServiceName string
}

type PartLineDetail struct {
	Line     entities.ServiceOrderPart
	PartName string
}

// ServiceOrderDetails is the hydrated aggregate returned by every operation.
type ServiceOrderDetails struct {
	Order    entities.ServiceOrder
	Customer entities.Customer
	Vehicle  entities.Vehicle
	Mechanic *entities.Mechanic
	Items    []ServiceLineDetail
	Parts    []PartLineDetail
}

// IServiceOrderUseCase is the OS workflow engine: creation, the status
// lifecycle with its resource side effects, the customer approval shortcut
// and the hydrated query operations.

type IServiceOrderUseCase interface {
	Create(ctx context.Context, cmd CreateServiceOrderCommand) (ServiceOrderDetails, error)
	UpdateStatus(ctx context.Context, orderID, status, notes, actor string) (ServiceOrderDetails, error)
	Approve(ctx context.Context, orderID string) (ServiceOrderDetails, error)
	GetByID(ctx context.Context, id string) (ServiceOrderDetails, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (ServiceOrderDetails, error)
	ListAll(ctx context.Context) ([]ServiceOrderDetails, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]ServiceOrderDetails, error)
	ListByCustomerDocument(ctx context.Context, document string) ([]ServiceOrderDetails, error)
	ListByVehiclePlate(ctx context.Context, plate string) ([]ServiceOrderDetails, error)
	GetStatusHistory(ctx context.Context, orderID string) ([]entities.StatusHistoryEntry, error)
	ListPayments(ctx context.Context, orderID string) ([]entities.Payment, error)
}

type ServiceOrderUseCase struct {
	orders    interfaces.IServiceOrderRepository
	customers interfaces.ICustomerDirectory
	vehicles  interfaces.IVehicleDirectory
	services  interfaces.IServiceCatalog
	parts     interfaces.IPartCatalog
	mechanics interfaces.IMechanicDirectory
	notifier  interfaces.INotifier
	gateway   interfaces.IPaymentGateway
	payments  interfaces.IPaymentRepository
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

// NewServiceOrderUseCase wires the workflow. notifier, gateway and payments
// may be nil; both concerns are best-effort and simply skipped when absent.
func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	customers interfaces.ICustomerDirectory,
	vehicles interfaces.IVehicleDirectory,
	services interfaces.IServiceCatalog,
	parts interfaces.IPartCatalog,
	mechanics interfaces.IMechanicDirectory,
	notifier interfaces.INotifier,
	gateway interfaces.IPaymentGateway,
	payments interfaces.IPaymentRepository,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		orders:    orders,
		customers: customers,
		vehicles:  vehicles,
		services:  services,
		parts:     parts,
		mechanics: mechanics,
		notifier:  notifier,
		gateway:   gateway,
		payments:  payments,
	}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, cmd CreateServiceOrderCommand) (ServiceOrderDetails, error) {
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	cmd.VehicleID = strings.TrimSpace(cmd.VehicleID)
	cmd.MechanicID = strings.TrimSpace(cmd.MechanicID)
	if cmd.CustomerID == "" || cmd.VehicleID == "" {
		return ServiceOrderDetails{}, ErrInvalidOrderBody
	}
	if len(cmd.Services) == 0 && len(cmd.Parts) == 0 {
		return ServiceOrderDetails{}, ErrInvalidOrderBody
	}
	for _, line := range cmd.Services {
		if strings.TrimSpace(line.ServiceID) == "" || line.Quantity < 1 {
			return ServiceOrderDetails{}, ErrInvalidOrderBody
		}
	}
	for _, line := range cmd.Parts {
		if strings.TrimSpace(line.PartID) == "" || line.Quantity < 1 {
			return ServiceOrderDetails{}, ErrInvalidOrderBody
		}
	}

	// All validation runs to completion before the first write.
	customer, err := u.customers.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	if customer.ID == "" {
		return ServiceOrderDetails{}, ErrCustomerNotFound
	}
	vehicle, err := u.vehicles.GetByID(ctx, cmd.VehicleID)
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	if vehicle.ID == "" {
		return ServiceOrderDetails{}, ErrVehicleNotFound
	}
	if vehicle.CustomerID != customer.ID {
		return ServiceOrderDetails{}, ErrVehicleNotOwnedByCustomer
	}
	if cmd.MechanicID != "" {
		mech, err := u.mechanics.GetByID(ctx, cmd.MechanicID)
		if err != nil {
			return ServiceOrderDetails{}, err
		}
		if mech.ID == "" {
			return ServiceOrderDetails{}, ErrMechanicNotFound
		}
	}

	pricedServices := make([]pricedServiceLine, 0, len(cmd.Services))
	for _, line := range cmd.Services {
		svc, err := u.services.GetByID(ctx, line.ServiceID)
		if err != nil {
			return ServiceOrderDetails{}, err
		}
		if svc.ID == "" {
			return ServiceOrderDetails{}, ErrServiceNotFound
		}
		if !svc.Active {
			return ServiceOrderDetails{}, ErrServiceNotActive
		}
		pricedServices = append(pricedServices, pricedServiceLine{Service: svc, Quantity: line.Quantity})
	}
	pricedParts := make([]pricedPartLine, 0, len(cmd.Parts))
	for _, line := range cmd.Parts {
		part, err := u.parts.GetByID(ctx, line.PartID)
		if err != nil {
			return ServiceOrderDetails{}, err
		}
		if part.ID == "" {
			return ServiceOrderDetails{}, ErrPartNotFound
		}
		if !part.Active {
			return ServiceOrderDetails{}, ErrPartNotActive
		}
		if part.Stock < line.Quantity {
			return ServiceOrderDetails{}, &InsufficientStockError{PartID: part.ID, Available: part.Stock, Requested: line.Quantity}
		}
		pricedParts = append(pricedParts, pricedPartLine{Part: part, Quantity: line.Quantity})
	}

	now := time.Now().UTC()
	orderNumber, err := nextOrderNumber(ctx, u.orders, now)
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	totals := computeTotals(pricedServices, pricedParts, now)

	order := entities.ServiceOrder{
		ID:                    uuid.NewString(),
		OrderNumber:           orderNumber,
		CustomerID:            customer.ID,
		VehicleID:             vehicle.ID,
		Description:           strings.TrimSpace(cmd.Description),
		Status:                entities.StatusRecebida,
		TotalServicePrice:     totals.TotalServicePrice,
		TotalPartsPrice:       totals.TotalPartsPrice,
		TotalPrice:            totals.TotalPrice,
		EstimatedHours:        totals.EstimatedHours,
		EstimatedCompletionAt: totals.EstimatedCompletionAt,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if cmd.MechanicID != "" {
		order.MechanicID = &cmd.MechanicID
	}

	items := make([]entities.ServiceOrderItem, 0, len(pricedServices))
	for _, line := range pricedServices {
		items = append(items, entities.ServiceOrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			ServiceID: line.Service.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Service.Price,
			LineTotal: line.Service.Price.MulQty(line.Quantity),
		})
	}
	partLines := make([]entities.ServiceOrderPart, 0, len(pricedParts))
	for _, line := range pricedParts {
		partLines = append(partLines, entities.ServiceOrderPart{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			PartID:    line.Part.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Part.Price,
			LineTotal: line.Part.Price.MulQty(line.Quantity),
		})
	}

	if err := u.orders.CreateWithLines(ctx, order, items, partLines); err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			// A concurrent order drained stock between validation and commit.
			return ServiceOrderDetails{}, u.stockRaceError(ctx, cmd.Parts)
		}
		return ServiceOrderDetails{}, err
	}

	u.appendHistory(ctx, order.ID, entities.StatusRecebida, creationNote, actorSystem)
	return u.hydrate(ctx, order)
}

// stockRaceError re-reads the requested parts after a lost creation
// transaction to report the precise cause.
func (u *ServiceOrderUseCase) stockRaceError(ctx context.Context, lines []PartLineInput) error {
	for _, line := range lines {
		part, err := u.parts.GetByID(ctx, line.PartID)
		if err != nil || part.ID == "" {
			continue
		}
		if !part.Active {
			return ErrPartNotActive
		}
		if part.Stock < line.Quantity {
			return &InsufficientStockError{PartID: part.ID, Available: part.Stock, Requested: line.Quantity}
		}
	}
	return ErrOrderStateConflict
}

func (u *ServiceOrderUseCase) UpdateStatus(ctx context.Context, orderID, status, notes, actor string) (ServiceOrderDetails, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ServiceOrderDetails{}, ErrInvalidOrderID
	}
	to := entities.OrderStatus(strings.ToLower(strings.TrimSpace(status)))
	if !to.Valid() {
		return ServiceOrderDetails{}, ErrInvalidStatus
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	if order.ID == "" {
		return ServiceOrderDetails{}, ErrOrderNotFound
	}
	if err := ValidateTransition(order.Status, to); err != nil {
		return ServiceOrderDetails{}, err
	}

	now := time.Now().UTC()
	var stamps interfaces.StatusStamps
	allocated := false

	switch to {
	case entities.StatusEmExecucao:
		if err := u.allocateMechanic(ctx, order); err != nil {
			return ServiceOrderDetails{}, err
		}
		allocated = true
		if order.StartedAt == nil {
			stamps.StartedAt = &now
		}
	case entities.StatusFinalizada:
		stamps.CompletedAt = &now
	case entities.StatusEntregue:
		stamps.DeliveredAt = &now
	}

	updated, err := u.orders.UpdateStatus(ctx, order.ID, order.Status, to, stamps)
	if err != nil {
		if allocated {
			u.releaseMechanic(ctx, order.MechanicID)
		}
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return ServiceOrderDetails{}, ErrOrderStateConflict
		}
		return ServiceOrderDetails{}, err
	}

	// The mechanic goes back to the pool once the work is done. Release is
	// idempotent, so delivering an already-released OS is a no-op.
	if to == entities.StatusFinalizada || to == entities.StatusEntregue {
		u.releaseMechanic(ctx, order.MechanicID)
	}

	if strings.TrimSpace(actor) == "" {
		actor = actorSystem
	}
	u.appendHistory(ctx, order.ID, to, notes, actor)

	details, err := u.hydrate(ctx, updated)
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	u.notify(details)
	return details, nil
}

func (u *ServiceOrderUseCase) Approve(ctx context.Context, orderID string) (ServiceOrderDetails, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ServiceOrderDetails{}, ErrInvalidOrderID
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	if order.ID == "" {
		return ServiceOrderDetails{}, ErrOrderNotFound
	}
	if order.Status != entities.StatusAguardandoAprovacao {
		return ServiceOrderDetails{}, ErrNotAwaitingApproval
	}
	if err := u.allocateMechanic(ctx, order); err != nil {
		return ServiceOrderDetails{}, err
	}

	now := time.Now().UTC()
	stamps := interfaces.StatusStamps{ApprovedAt: &now}
	if order.StartedAt == nil {
		stamps.StartedAt = &now
	}

	updated, err := u.orders.UpdateStatus(ctx, order.ID, entities.StatusAguardandoAprovacao, entities.StatusEmExecucao, stamps)
	if err != nil {
		u.releaseMechanic(ctx, order.MechanicID)
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return ServiceOrderDetails{}, ErrOrderStateConflict
		}
		return ServiceOrderDetails{}, err
	}

	u.appendHistory(ctx, order.ID, entities.StatusEmExecucao, approvalNote, actorCustomer)

	details, err := u.hydrate(ctx, updated)
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	u.registerApprovalCharge(ctx, details)
	u.notify(details)
	return details, nil
}

// allocateMechanic binds the linked mechanic exclusively to this OS. The flip
// is a compare-and-set at the directory, so concurrent executions targeting
// the same mechanic cannot both succeed.
func (u *ServiceOrderUseCase) allocateMechanic(ctx context.Context, order entities.ServiceOrder) error {
	if order.MechanicID == nil || *order.MechanicID == "" {
		return ErrMechanicRequired
	}
	mech, err := u.mechanics.GetByID(ctx, *order.MechanicID)
	if err != nil {
		return err
	}
	if mech.ID == "" {
		return ErrMechanicNotFound
	}
	if !mech.Available {
		return ErrMechanicBusy
	}
	if err := u.mechanics.MarkUnavailable(ctx, mech.ID); err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return ErrMechanicBusy
		}
		return err
	}
	return nil
}

func (u *ServiceOrderUseCase) releaseMechanic(ctx context.Context, mechanicID *string) {
	if mechanicID == nil || *mechanicID == "" {
		return
	}
	if err := u.mechanics.Release(ctx, *mechanicID); err != nil {
		log.Printf("[os][usecase] mechanic release failed mechanic_id=%s err=%v", *mechanicID, err)
	}
}

// appendHistory writes the audit row after the transition committed. A failed
// append is logged, never propagated: callers already observe the new status.
func (u *ServiceOrderUseCase) appendHistory(ctx context.Context, orderID string, status entities.OrderStatus, notes, actor string) {
	entry := entities.StatusHistoryEntry{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Status:    status,
		Notes:     strings.TrimSpace(notes),
		Actor:     actor,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.orders.AppendHistory(ctx, entry); err != nil {
		log.Printf("[os][usecase] history append failed order_id=%s status=%s err=%v", orderID, status, err)
	}
}

func (u *ServiceOrderUseCase) notify(d ServiceOrderDetails) {
	if u.notifier == nil {
		return
	}
	u.notifier.StatusChanged(interfaces.StatusNotification{
		OrderID:       d.Order.ID,
		OrderNumber:   d.Order.OrderNumber,
		Status:        string(d.Order.Status),
		CustomerName:  d.Customer.Name,
		CustomerEmail: d.Customer.Email,
		CustomerPhone: d.Customer.Phone,
		Vehicle:       vehicleSummary(d.Vehicle),
	})
}

func vehicleSummary(v entities.Vehicle) string {
	if v.ID == "" {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s (%s)", v.Brand, v.Model, v.Plate))
}

// registerApprovalCharge pushes the approved budget to the payment provider.
// Customer billing is a convenience here, not a lifecycle requirement, so any
// failure is logged and swallowed.
func (u *ServiceOrderUseCase) registerApprovalCharge(ctx context.Context, d ServiceOrderDetails) {
	if u.gateway == nil || u.payments == nil {
		return
	}
	charge, err := u.gateway.CreateCharge(ctx, interfaces.ChargeRequest{
		Amount:            d.Order.TotalPrice,
		Description:       fmt.Sprintf("OS %s", d.Order.OrderNumber),
		ExternalReference: d.Order.ID,
		PayerEmail:        d.Customer.Email,
	})
	if err != nil {
		log.Printf("[os][usecase] approval charge failed order_id=%s err=%v", d.Order.ID, err)
		return
	}
	p := entities.Payment{
		ID:                uuid.NewString(),
		OrderID:           d.Order.ID,
		Amount:            d.Order.TotalPrice,
		Status:            chargeStatus(charge.Status),
		ProviderPaymentID: charge.ProviderPaymentID,
		Date:              time.Now().UTC(),
	}
	if _, err := u.payments.Create(ctx, p); err != nil {
		log.Printf("[os][usecase] payment record create failed order_id=%s payment_id=%s err=%v", d.Order.ID, p.ID, err)
	}
}

func chargeStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(providerStatus) {
	case "approved":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (ServiceOrderDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ServiceOrderDetails{}, ErrInvalidOrderID
	}
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	if order.ID == "" {
		return ServiceOrderDetails{}, ErrOrderNotFound
	}
	return u.hydrate(ctx, order)
}

func (u *ServiceOrderUseCase) GetByOrderNumber(ctx context.Context, orderNumber string) (ServiceOrderDetails, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return ServiceOrderDetails{}, ErrInvalidOrderID
	}
	order, err := u.orders.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	if order.ID == "" {
		return ServiceOrderDetails{}, ErrOrderNotFound
	}
	return u.hydrate(ctx, order)
}

func (u *ServiceOrderUseCase) ListAll(ctx context.Context) ([]ServiceOrderDetails, error) {
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.hydrateAll(ctx, orders)
}

func (u *ServiceOrderUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]ServiceOrderDetails, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidOrderBody
	}
	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.ID == "" {
		return nil, ErrCustomerNotFound
	}
	orders, err := u.orders.ListByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	return u.hydrateAll(ctx, orders)
}

func (u *ServiceOrderUseCase) ListByCustomerDocument(ctx context.Context, document string) ([]ServiceOrderDetails, error) {
	document = strings.TrimSpace(document)
	if document == "" {
		return nil, ErrInvalidOrderBody
	}
	customer, err := u.customers.GetByDocument(ctx, document)
	if err != nil {
		return nil, err
	}
	if customer.ID == "" {
		return nil, ErrCustomerNotFound
	}
	orders, err := u.orders.ListByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	return u.hydrateAll(ctx, orders)
}

func (u *ServiceOrderUseCase) ListByVehiclePlate(ctx context.Context, plate string) ([]ServiceOrderDetails, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return nil, ErrInvalidOrderBody
	}
	vehicle, err := u.vehicles.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}
	if vehicle.ID == "" {
		return nil, ErrVehicleNotFound
	}
	orders, err := u.orders.ListByVehicleID(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}
	return u.hydrateAll(ctx, orders)
}

func (u *ServiceOrderUseCase) GetStatusHistory(ctx context.Context, orderID string) ([]entities.StatusHistoryEntry, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, ErrOrderNotFound
	}
	return u.orders.ListHistory(ctx, order.ID)
}

func (u *ServiceOrderUseCase) ListPayments(ctx context.Context, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, ErrOrderNotFound
	}
	if u.payments == nil {
		return []entities.Payment{}, nil
	}
	return u.payments.ListByOrderID(ctx, order.ID)
}

func (u *ServiceOrderUseCase) hydrateAll(ctx context.Context, orders []entities.ServiceOrder) ([]ServiceOrderDetails, error) {
	out := make([]ServiceOrderDetails, 0, len(orders))
	for _, order := range orders {
		d, err := u.hydrate(ctx, order)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// hydrate assembles the display aggregate. Missing lookups degrade to empty
// summaries/names so a stale catalog never breaks a read.
func (u *ServiceOrderUseCase) hydrate(ctx context.Context, order entities.ServiceOrder) (ServiceOrderDetails, error) {
	d := ServiceOrderDetails{Order: order}

	if customer, err := u.customers.GetByID(ctx, order.CustomerID); err == nil {
		d.Customer = customer
	} else {
		log.Printf("[os][usecase] customer hydration failed order_id=%s err=%v", order.ID, err)
	}
	if vehicle, err := u.vehicles.GetByID(ctx, order.VehicleID); err == nil {
		d.Vehicle = vehicle
	} else {
		log.Printf("[os][usecase] vehicle hydration failed order_id=%s err=%v", order.ID, err)
	}
	if order.MechanicID != nil && *order.MechanicID != "" {
		if mech, err := u.mechanics.GetByID(ctx, *order.MechanicID); err == nil && mech.ID != "" {
			d.Mechanic = &mech
		}
	}

	items, err := u.orders.ListItems(ctx, order.ID)
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	d.Items = make([]ServiceLineDetail, 0, len(items))
	for _, item := range items {
		name := ""
		if svc, err := u.services.GetByID(ctx, item.ServiceID); err == nil {
			name = svc.Name
		}
		d.Items = append(d.Items, ServiceLineDetail{Line: item, ServiceName: name})
	}

	parts, err := u.orders.ListParts(ctx, order.ID)
	if err != nil {
		return ServiceOrderDetails{}, err
	}
	d.Parts = make([]PartLineDetail, 0, len(parts))
	for _, part := range parts {
		name := ""
		if p, err := u.parts.GetByID(ctx, part.PartID); err == nil {
			name = p.Name
		}
		d.Parts = append(d.Parts, PartLineDetail{Line: part, PartName: name})
	}

	return d, nil
}
