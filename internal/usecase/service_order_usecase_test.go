package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
	mock_interfaces "os_service_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type workflowMocks struct {
	orders    *mock_interfaces.MockIServiceOrderRepository
	customers *mock_interfaces.MockICustomerDirectory
	vehicles  *mock_interfaces.MockIVehicleDirectory
	services  *mock_interfaces.MockIServiceCatalog
	parts     *mock_interfaces.MockIPartCatalog
	mechanics *mock_interfaces.MockIMechanicDirectory
}

func newWorkflowMocks(ctrl *gomock.Controller) workflowMocks {
	return workflowMocks{
		orders:    mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerDirectory(ctrl),
		vehicles:  mock_interfaces.NewMockIVehicleDirectory(ctrl),
		services:  mock_interfaces.NewMockIServiceCatalog(ctrl),
		parts:     mock_interfaces.NewMockIPartCatalog(ctrl),
		mechanics: mock_interfaces.NewMockIMechanicDirectory(ctrl),
	}
}

func (m workflowMocks) build() *ServiceOrderUseCase {
	return NewServiceOrderUseCase(m.orders, m.customers, m.vehicles, m.services, m.parts, m.mechanics, nil, nil, nil)
}

var (
	testCustomer = entities.Customer{ID: "cust-1", Name: "Ana Souza", Document: "12345678900", Email: "ana@example.com"}
	testVehicle  = entities.Vehicle{ID: "veh-1", CustomerID: "cust-1", Plate: "ABC1D23", Brand: "Fiat", Model: "Argo", Year: 2021}
)

func mechanicID(id string) *string { return &id }

func TestServiceOrderUseCase_Create(t *testing.T) {
	t.Run("missing customer id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateServiceOrderCommand{
			VehicleID: "veh-1",
			Services:  []ServiceLineInput{{ServiceID: "svc-1", Quantity: 1}},
		})
		if !errors.Is(err, ErrInvalidOrderBody) {
			t.Fatalf("expected ErrInvalidOrderBody, got %v", err)
		}
	})

	t.Run("no lines", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateServiceOrderCommand{CustomerID: "cust-1", VehicleID: "veh-1"})
		if !errors.Is(err, ErrInvalidOrderBody) {
			t.Fatalf("expected ErrInvalidOrderBody, got %v", err)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateServiceOrderCommand{
			CustomerID: "cust-1",
			VehicleID:  "veh-1",
			Parts:      []PartLineInput{{PartID: "part-1", Quantity: 0}},
		})
		if !errors.Is(err, ErrInvalidOrderBody) {
			t.Fatalf("expected ErrInvalidOrderBody, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.Create(context.Background(), CreateServiceOrderCommand{
			CustomerID: "cust-1",
			VehicleID:  "veh-1",
			Services:   []ServiceLineInput{{ServiceID: "svc-1", Quantity: 1}},
		})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("vehicle owned by another customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(testCustomer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-2").Return(entities.Vehicle{ID: "veh-2", CustomerID: "cust-9"}, nil)

		_, err := uc.Create(context.Background(), CreateServiceOrderCommand{
			CustomerID: "cust-1",
			VehicleID:  "veh-2",
			Services:   []ServiceLineInput{{ServiceID: "svc-1", Quantity: 1}},
		})
		if !errors.Is(err, ErrVehicleNotOwnedByCustomer) {
			t.Fatalf("expected ErrVehicleNotOwnedByCustomer, got %v", err)
		}
	})

	t.Run("inactive part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(testCustomer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(testVehicle, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "part-1").Return(entities.Part{ID: "part-1", Price: 2500, Stock: 10, Active: false}, nil)

		_, err := uc.Create(context.Background(), CreateServiceOrderCommand{
			CustomerID: "cust-1",
			VehicleID:  "veh-1",
			Parts:      []PartLineInput{{PartID: "part-1", Quantity: 1}},
		})
		if !errors.Is(err, ErrPartNotActive) {
			t.Fatalf("expected ErrPartNotActive, got %v", err)
		}
	})

	t.Run("insufficient stock rejects before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(testCustomer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(testVehicle, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "part-1").Return(entities.Part{ID: "part-1", Price: 2500, Stock: 1, Active: true}, nil)
		// No CreateWithLines / CountCreatedInYear expectation: the order must
		// never reach the repository.

		_, err := uc.Create(context.Background(), CreateServiceOrderCommand{
			CustomerID: "cust-1",
			VehicleID:  "veh-1",
			Parts:      []PartLineInput{{PartID: "part-1", Quantity: 2}},
		})
		var stockErr *InsufficientStockError
		if !errors.As(err, &stockErr) {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
		if stockErr.PartID != "part-1" || stockErr.Available != 1 || stockErr.Requested != 2 {
			t.Fatalf("unexpected stock error: %+v", stockErr)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		svc := entities.CatalogService{ID: "svc-1", Name: "Troca de óleo", Price: 10000, EstimatedMinutes: 90, Active: true}
		part := entities.Part{ID: "part-1", Name: "Filtro de óleo", Price: 2500, Stock: 5, Active: true}
		year := time.Now().UTC().Year()

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(testCustomer, nil).AnyTimes()
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(testVehicle, nil).AnyTimes()
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil).AnyTimes()
		m.parts.EXPECT().GetByID(gomock.Any(), "part-1").Return(part, nil).AnyTimes()
		m.orders.EXPECT().CountCreatedInYear(gomock.Any(), year).Return(0, nil)

		var createdItems []entities.ServiceOrderItem
		var createdParts []entities.ServiceOrderPart
		m.orders.EXPECT().CreateWithLines(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder, items []entities.ServiceOrderItem, parts []entities.ServiceOrderPart) error {
				if o.ID == "" {
					t.Fatalf("expected generated id")
				}
				if o.OrderNumber != fmt.Sprintf("OS-%d-0001", year) {
					t.Fatalf("unexpected order number %s", o.OrderNumber)
				}
				if o.Status != entities.StatusRecebida {
					t.Fatalf("expected status recebida, got %s", o.Status)
				}
				if o.TotalServicePrice != 10000 || o.TotalPartsPrice != 5000 || o.TotalPrice != 15000 {
					t.Fatalf("unexpected totals: %d %d %d", o.TotalServicePrice, o.TotalPartsPrice, o.TotalPrice)
				}
				if o.EstimatedHours != 1.5 {
					t.Fatalf("expected 1.5 estimated hours, got %v", o.EstimatedHours)
				}
				buffered := o.EstimatedCompletionAt.Sub(o.CreatedAt)
				if diff := buffered - time.Duration(1.5*1.2*float64(time.Hour)); diff < -time.Millisecond || diff > time.Millisecond {
					t.Fatalf("expected 1.8h completion buffer, got %v", buffered)
				}
				if len(items) != 1 || items[0].UnitPrice != 10000 || items[0].LineTotal != 10000 {
					t.Fatalf("unexpected service lines: %+v", items)
				}
				if len(parts) != 1 || parts[0].Quantity != 2 || parts[0].LineTotal != 5000 {
					t.Fatalf("unexpected part lines: %+v", parts)
				}
				createdItems = items
				createdParts = parts
				return nil
			},
		)
		m.orders.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.StatusHistoryEntry) error {
				if e.Status != entities.StatusRecebida || e.Notes != "Ordem de serviço criada" || e.Actor != "system" {
					t.Fatalf("unexpected history entry: %+v", e)
				}
				return nil
			},
		)
		m.orders.EXPECT().ListItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string) ([]entities.ServiceOrderItem, error) { return createdItems, nil },
		)
		m.orders.EXPECT().ListParts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string) ([]entities.ServiceOrderPart, error) { return createdParts, nil },
		)

		details, err := uc.Create(context.Background(), CreateServiceOrderCommand{
			CustomerID:  "cust-1",
			VehicleID:   "veh-1",
			Description: "Revisão dos 30 mil",
			Services:    []ServiceLineInput{{ServiceID: "svc-1", Quantity: 1}},
			Parts:       []PartLineInput{{PartID: "part-1", Quantity: 2}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details.Order.TotalPrice != details.Order.TotalServicePrice.Add(details.Order.TotalPartsPrice) {
			t.Fatalf("totals invariant broken: %+v", details.Order)
		}
		if details.Customer.ID != "cust-1" || details.Vehicle.ID != "veh-1" {
			t.Fatalf("expected hydrated customer and vehicle, got %+v", details)
		}
		if len(details.Items) != 1 || details.Items[0].ServiceName != "Troca de óleo" {
			t.Fatalf("expected hydrated service line, got %+v", details.Items)
		}
		if len(details.Parts) != 1 || details.Parts[0].PartName != "Filtro de óleo" {
			t.Fatalf("expected hydrated part line, got %+v", details.Parts)
		}
	})

	t.Run("lost stock race maps to insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(testCustomer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(testVehicle, nil)
		// Validation sees stock 3, the transaction loses to a concurrent
		// order, the re-read sees the drained stock.
		first := m.parts.EXPECT().GetByID(gomock.Any(), "part-1").Return(entities.Part{ID: "part-1", Price: 2500, Stock: 3, Active: true}, nil)
		m.parts.EXPECT().GetByID(gomock.Any(), "part-1").Return(entities.Part{ID: "part-1", Price: 2500, Stock: 1, Active: true}, nil).After(first)
		m.orders.EXPECT().CountCreatedInYear(gomock.Any(), gomock.Any()).Return(4, nil)
		m.orders.EXPECT().CreateWithLines(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("stock decrement: %w", interfaces.ErrConditionalCheckFailed))

		_, err := uc.Create(context.Background(), CreateServiceOrderCommand{
			CustomerID: "cust-1",
			VehicleID:  "veh-1",
			Parts:      []PartLineInput{{PartID: "part-1", Quantity: 2}},
		})
		var stockErr *InsufficientStockError
		if !errors.As(err, &stockErr) {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
		if stockErr.Available != 1 || stockErr.Requested != 2 {
			t.Fatalf("unexpected stock error: %+v", stockErr)
		}
	})
}

func TestServiceOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "  ", "em_diagnostico", "", "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "os-1", "cancelada", "", "")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "os-1", "em_diagnostico", "", "")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("skipping stages is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.StatusRecebida}, nil)

		_, err := uc.UpdateStatus(context.Background(), "os-1", "entregue", "", "")
		var transitionErr *InvalidTransitionError
		if !errors.As(err, &transitionErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if len(transitionErr.Allowed) != 1 || transitionErr.Allowed[0] != entities.StatusEmDiagnostico {
			t.Fatalf("expected allowed [em_diagnostico], got %v", transitionErr.Allowed)
		}
	})

	t.Run("execution requires a mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.StatusAguardandoAprovacao}, nil)

		_, err := uc.UpdateStatus(context.Background(), "os-1", "em_execucao", "", "")
		if !errors.Is(err, ErrMechanicRequired) {
			t.Fatalf("expected ErrMechanicRequired, got %v", err)
		}
	})

	t.Run("busy mechanic blocks execution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.StatusAguardandoAprovacao, MechanicID: mechanicID("mec-1")}, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "mec-1").
			Return(entities.Mechanic{ID: "mec-1", Name: "Carlos", Available: false}, nil)

		_, err := uc.UpdateStatus(context.Background(), "os-1", "em_execucao", "", "")
		if !errors.Is(err, ErrMechanicBusy) {
			t.Fatalf("expected ErrMechanicBusy, got %v", err)
		}
	})

	t.Run("lost allocation race maps to busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.StatusAguardandoAprovacao, MechanicID: mechanicID("mec-1")}, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "mec-1").
			Return(entities.Mechanic{ID: "mec-1", Available: true}, nil)
		m.mechanics.EXPECT().MarkUnavailable(gomock.Any(), "mec-1").
			Return(fmt.Errorf("mechanic allocate: %w", interfaces.ErrConditionalCheckFailed))

		_, err := uc.UpdateStatus(context.Background(), "os-1", "em_execucao", "", "")
		if !errors.Is(err, ErrMechanicBusy) {
			t.Fatalf("expected ErrMechanicBusy, got %v", err)
		}
	})

	t.Run("lost status race releases the mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		order := entities.ServiceOrder{ID: "os-1", Status: entities.StatusAguardandoAprovacao, MechanicID: mechanicID("mec-1")}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "mec-1").Return(entities.Mechanic{ID: "mec-1", Available: true}, nil)
		m.mechanics.EXPECT().MarkUnavailable(gomock.Any(), "mec-1").Return(nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.StatusAguardandoAprovacao, entities.StatusEmExecucao, gomock.Any()).
			Return(entities.ServiceOrder{}, fmt.Errorf("status cas: %w", interfaces.ErrConditionalCheckFailed))
		m.mechanics.EXPECT().Release(gomock.Any(), "mec-1").Return(nil)

		_, err := uc.UpdateStatus(context.Background(), "os-1", "em_execucao", "", "")
		if !errors.Is(err, ErrOrderStateConflict) {
			t.Fatalf("expected ErrOrderStateConflict, got %v", err)
		}
	})

	t.Run("execution stamps started_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		order := entities.ServiceOrder{ID: "os-1", Status: entities.StatusAguardandoAprovacao, CustomerID: "cust-1", VehicleID: "veh-1", MechanicID: mechanicID("mec-1")}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "mec-1").Return(entities.Mechanic{ID: "mec-1", Name: "Carlos", Available: true}, nil).AnyTimes()
		m.mechanics.EXPECT().MarkUnavailable(gomock.Any(), "mec-1").Return(nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.StatusAguardandoAprovacao, entities.StatusEmExecucao, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _, to entities.OrderStatus, stamps interfaces.StatusStamps) (entities.ServiceOrder, error) {
				if stamps.StartedAt == nil {
					t.Fatalf("expected started_at stamp")
				}
				if stamps.CompletedAt != nil || stamps.DeliveredAt != nil || stamps.ApprovedAt != nil {
					t.Fatalf("unexpected stamps: %+v", stamps)
				}
				updated := order
				updated.Status = to
				updated.StartedAt = stamps.StartedAt
				return updated, nil
			},
		)
		m.orders.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.StatusHistoryEntry) error {
				if e.Status != entities.StatusEmExecucao || e.Actor != "system" {
					t.Fatalf("unexpected history entry: %+v", e)
				}
				return nil
			},
		)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(testCustomer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(testVehicle, nil)
		m.orders.EXPECT().ListItems(gomock.Any(), "os-1").Return(nil, nil)
		m.orders.EXPECT().ListParts(gomock.Any(), "os-1").Return(nil, nil)

		details, err := uc.UpdateStatus(context.Background(), "os-1", "em_execucao", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details.Order.Status != entities.StatusEmExecucao || details.Order.StartedAt == nil {
			t.Fatalf("unexpected order: %+v", details.Order)
		}
		if details.Mechanic == nil || details.Mechanic.ID != "mec-1" {
			t.Fatalf("expected hydrated mechanic, got %+v", details.Mechanic)
		}
	})

	t.Run("finishing releases the mechanic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		order := entities.ServiceOrder{ID: "os-1", Status: entities.StatusEmExecucao, CustomerID: "cust-1", VehicleID: "veh-1", MechanicID: mechanicID("mec-1")}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.StatusEmExecucao, entities.StatusFinalizada, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _, to entities.OrderStatus, stamps interfaces.StatusStamps) (entities.ServiceOrder, error) {
				if stamps.CompletedAt == nil {
					t.Fatalf("expected completed_at stamp")
				}
				updated := order
				updated.Status = to
				updated.CompletedAt = stamps.CompletedAt
				return updated, nil
			},
		)
		m.mechanics.EXPECT().Release(gomock.Any(), "mec-1").Return(nil)
		m.orders.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(testCustomer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(testVehicle, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "mec-1").Return(entities.Mechanic{ID: "mec-1", Available: true}, nil)
		m.orders.EXPECT().ListItems(gomock.Any(), "os-1").Return(nil, nil)
		m.orders.EXPECT().ListParts(gomock.Any(), "os-1").Return(nil, nil)

		details, err := uc.UpdateStatus(context.Background(), "os-1", "finalizada", "Serviço concluído", "mec-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details.Order.Status != entities.StatusFinalizada || details.Order.CompletedAt == nil {
			t.Fatalf("unexpected order: %+v", details.Order)
		}
	})
}

func TestServiceOrderUseCase_Approve(t *testing.T) {
	t.Run("only awaiting approval can be approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.StatusRecebida}, nil)

		_, err := uc.Approve(context.Background(), "os-1")
		if !errors.Is(err, ErrNotAwaitingApproval) {
			t.Fatalf("expected ErrNotAwaitingApproval, got %v", err)
		}
	})

	t.Run("success stamps approval and records the audit note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewServiceOrderUseCase(m.orders, m.customers, m.vehicles, m.services, m.parts, m.mechanics, notifier, gateway, payments)

		order := entities.ServiceOrder{
			ID:          "os-1",
			OrderNumber: "OS-2026-0001",
			Status:      entities.StatusAguardandoAprovacao,
			CustomerID:  "cust-1",
			VehicleID:   "veh-1",
			MechanicID:  mechanicID("mec-1"),
			TotalPrice:  15000,
		}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "mec-1").Return(entities.Mechanic{ID: "mec-1", Available: true}, nil).AnyTimes()
		m.mechanics.EXPECT().MarkUnavailable(gomock.Any(), "mec-1").Return(nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.StatusAguardandoAprovacao, entities.StatusEmExecucao, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _, to entities.OrderStatus, stamps interfaces.StatusStamps) (entities.ServiceOrder, error) {
				if stamps.ApprovedAt == nil || stamps.StartedAt == nil {
					t.Fatalf("expected approved_at and started_at stamps, got %+v", stamps)
				}
				updated := order
				updated.Status = to
				updated.ApprovedAt = stamps.ApprovedAt
				updated.StartedAt = stamps.StartedAt
				return updated, nil
			},
		)
		m.orders.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.StatusHistoryEntry) error {
				if e.Status != entities.StatusEmExecucao {
					t.Fatalf("unexpected history status: %s", e.Status)
				}
				if e.Notes != "Orçamento aprovado pelo cliente" || e.Actor != "customer" {
					t.Fatalf("unexpected audit entry: %+v", e)
				}
				return nil
			},
		)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(testCustomer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(testVehicle, nil)
		m.orders.EXPECT().ListItems(gomock.Any(), "os-1").Return(nil, nil)
		m.orders.EXPECT().ListParts(gomock.Any(), "os-1").Return(nil, nil)
		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.ChargeRequest) (interfaces.Charge, error) {
				if req.Amount != 15000 || req.ExternalReference != "os-1" {
					t.Fatalf("unexpected charge request: %+v", req)
				}
				return interfaces.Charge{ProviderPaymentID: "mp-123", Status: "approved"}, nil
			},
		)
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.OrderID != "os-1" || p.Amount != 15000 || p.Status != entities.PaymentStatusAprovado {
					t.Fatalf("unexpected payment record: %+v", p)
				}
				return p, nil
			},
		)
		notifier.EXPECT().StatusChanged(gomock.Any()).Do(
			func(n interfaces.StatusNotification) {
				if n.OrderID != "os-1" || n.Status != "em_execucao" {
					t.Fatalf("unexpected notification: %+v", n)
				}
			},
		)

		details, err := uc.Approve(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details.Order.Status != entities.StatusEmExecucao {
			t.Fatalf("expected em_execucao, got %s", details.Order.Status)
		}
		if details.Order.ApprovedAt == nil || details.Order.StartedAt == nil {
			t.Fatalf("expected timestamps, got %+v", details.Order)
		}
	})

	t.Run("charge failure never blocks approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewServiceOrderUseCase(m.orders, m.customers, m.vehicles, m.services, m.parts, m.mechanics, nil, gateway, payments)

		order := entities.ServiceOrder{ID: "os-1", Status: entities.StatusAguardandoAprovacao, CustomerID: "cust-1", VehicleID: "veh-1", MechanicID: mechanicID("mec-1")}
		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
		m.mechanics.EXPECT().GetByID(gomock.Any(), "mec-1").Return(entities.Mechanic{ID: "mec-1", Available: true}, nil).AnyTimes()
		m.mechanics.EXPECT().MarkUnavailable(gomock.Any(), "mec-1").Return(nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.StatusAguardandoAprovacao, entities.StatusEmExecucao, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _, to entities.OrderStatus, stamps interfaces.StatusStamps) (entities.ServiceOrder, error) {
				updated := order
				updated.Status = to
				return updated, nil
			},
		)
		m.orders.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(testCustomer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(testVehicle, nil)
		m.orders.EXPECT().ListItems(gomock.Any(), "os-1").Return(nil, nil)
		m.orders.EXPECT().ListParts(gomock.Any(), "os-1").Return(nil, nil)
		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(interfaces.Charge{}, errors.New("provider down"))

		details, err := uc.Approve(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details.Order.Status != entities.StatusEmExecucao {
			t.Fatalf("expected em_execucao, got %s", details.Order.Status)
		}
	})
}

func TestServiceOrderUseCase_Queries(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.GetByID(context.Background(), "os-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("list by unknown document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.customers.EXPECT().GetByDocument(gomock.Any(), "00000000000").Return(entities.Customer{}, nil)

		_, err := uc.ListByCustomerDocument(context.Background(), "00000000000")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("list by document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		order := entities.ServiceOrder{ID: "os-1", CustomerID: "cust-1", VehicleID: "veh-1", Status: entities.StatusRecebida}
		m.customers.EXPECT().GetByDocument(gomock.Any(), "12345678900").Return(testCustomer, nil)
		m.orders.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.ServiceOrder{order}, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(testCustomer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(testVehicle, nil)
		m.orders.EXPECT().ListItems(gomock.Any(), "os-1").Return(nil, nil)
		m.orders.EXPECT().ListParts(gomock.Any(), "os-1").Return(nil, nil)

		res, err := uc.ListByCustomerDocument(context.Background(), " 12345678900 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].Order.ID != "os-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("status history requires the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.orders.EXPECT().GetByID(gomock.Any(), "os-9").Return(entities.ServiceOrder{}, nil)

		_, err := uc.GetStatusHistory(context.Background(), "os-9")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("payments without a configured repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newWorkflowMocks(ctrl)
		uc := m.build()

		m.orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)

		res, err := uc.ListPayments(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 0 {
			t.Fatalf("expected empty payments, got %+v", res)
		}
	})
}
