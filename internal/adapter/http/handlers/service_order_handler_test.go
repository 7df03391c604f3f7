package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"os_service_api/internal/adapter/http/handlers/mocks"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func orderDetails(status entities.OrderStatus) usecase.ServiceOrderDetails {
	now := time.Now().UTC()
	return usecase.ServiceOrderDetails{
		Order: entities.ServiceOrder{
			ID:                "os-1",
			OrderNumber:       "OS-2026-0001",
			CustomerID:        "cust-1",
			VehicleID:         "veh-1",
			Status:            status,
			TotalServicePrice: 10000,
			TotalPartsPrice:   5000,
			TotalPrice:        15000,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		Customer: entities.Customer{ID: "cust-1", Name: "Ana Souza", Document: "12345678900"},
		Vehicle:  entities.Vehicle{ID: "veh-1", Plate: "ABC1D23"},
	}
}

func TestServiceOrderHandler_CreateServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(`{"vehicle_id":"veh-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient stock maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(usecase.ServiceOrderDetails{}, &usecase.InsufficientStockError{PartID: "part-1", Available: 1, Requested: 2})

		body := `{"customer_id":"cust-1","vehicle_id":"veh-1","parts":[{"part_id":"part-1","quantity":2}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var httpErr struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if httpErr.Code != "INSUFFICIENT_STOCK" {
			t.Fatalf("expected INSUFFICIENT_STOCK, got %s", httpErr.Code)
		}
	})

	t.Run("unknown customer maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(usecase.ServiceOrderDetails{}, usecase.ErrCustomerNotFound)

		body := `{"customer_id":"cust-9","vehicle_id":"veh-1","services":[{"service_id":"svc-1","quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders", h.CreateServiceOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CreateServiceOrderCommand) (usecase.ServiceOrderDetails, error) {
				if cmd.CustomerID != "cust-1" || len(cmd.Services) != 1 || cmd.Services[0].Quantity != 1 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return orderDetails(entities.StatusRecebida), nil
			},
		)

		body := `{"customer_id":"cust-1","vehicle_id":"veh-1","services":[{"service_id":"svc-1","quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp struct {
			OrderNumber        string `json:"order_number"`
			Status             string `json:"status"`
			TotalPriceCentavos int64  `json:"total_price_centavos"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if resp.OrderNumber != "OS-2026-0001" || resp.Status != "recebida" || resp.TotalPriceCentavos != 15000 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestServiceOrderHandler_GetServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/:id", h.GetServiceOrder)

		uc.EXPECT().GetByID(gomock.Any(), "os-9").Return(usecase.ServiceOrderDetails{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/os-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/:id", h.GetServiceOrder)

		uc.EXPECT().GetByID(gomock.Any(), "os-1").Return(orderDetails(entities.StatusEmDiagnostico), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/os-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_ListServiceOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("by order number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders", h.ListServiceOrders)

		uc.EXPECT().GetByOrderNumber(gomock.Any(), "OS-2026-0001").Return(orderDetails(entities.StatusRecebida), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders?order_number=OS-2026-0001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if len(resp) != 1 || resp[0].ID != "os-1" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("by vehicle plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders", h.ListServiceOrders)

		uc.EXPECT().ListByVehiclePlate(gomock.Any(), "ABC1D23").
			Return([]usecase.ServiceOrderDetails{orderDetails(entities.StatusRecebida)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders?vehicle_plate=ABC1D23", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders", h.ListServiceOrders)

		uc.EXPECT().ListAll(gomock.Any()).Return([]usecase.ServiceOrderDetails{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_UpdateServiceOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-orders/:id/status", h.UpdateServiceOrderStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "os-1", "entregue", "", "").Return(
			usecase.ServiceOrderDetails{},
			&usecase.InvalidTransitionError{
				From:    entities.StatusRecebida,
				To:      entities.StatusEntregue,
				Allowed: []entities.OrderStatus{entities.StatusEmDiagnostico},
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-orders/os-1/status", bytes.NewBufferString(`{"status":"entregue"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var httpErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if httpErr.Code != "INVALID_TRANSITION" {
			t.Fatalf("expected INVALID_TRANSITION, got %s", httpErr.Code)
		}
	})

	t.Run("mechanic required maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-orders/:id/status", h.UpdateServiceOrderStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "os-1", "em_execucao", "", "").
			Return(usecase.ServiceOrderDetails{}, usecase.ErrMechanicRequired)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-orders/os-1/status", bytes.NewBufferString(`{"status":"em_execucao"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-orders/:id/status", h.UpdateServiceOrderStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "os-1", "em_diagnostico", "Na rampa", "mec-1").
			Return(orderDetails(entities.StatusEmDiagnostico), nil)

		body := `{"status":"em_diagnostico","notes":"Na rampa","actor":"mec-1"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/service-orders/os-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_ApproveServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not awaiting approval maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders/:id/approve", h.ApproveServiceOrder)

		uc.EXPECT().Approve(gomock.Any(), "os-1").Return(usecase.ServiceOrderDetails{}, usecase.ErrNotAwaitingApproval)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/service-orders/:id/approve", h.ApproveServiceOrder)

		uc.EXPECT().Approve(gomock.Any(), "os-1").Return(orderDetails(entities.StatusEmExecucao), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if resp.Status != "em_execucao" {
			t.Fatalf("expected em_execucao, got %s", resp.Status)
		}
	})
}

func TestServiceOrderHandler_GetServiceOrderHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/:id/history", h.GetServiceOrderHistory)

		now := time.Now().UTC()
		uc.EXPECT().GetStatusHistory(gomock.Any(), "os-1").Return([]entities.StatusHistoryEntry{
			{ID: "h-1", OrderID: "os-1", Status: entities.StatusRecebida, Notes: "Ordem de serviço criada", Actor: "system", CreatedAt: now},
			{ID: "h-2", OrderID: "os-1", Status: entities.StatusEmDiagnostico, Actor: "mec-1", CreatedAt: now.Add(time.Hour)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/os-1/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if len(resp) != 2 || resp[0].Status != "recebida" || resp[1].Status != "em_diagnostico" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/:id/history", h.GetServiceOrderHistory)

		uc.EXPECT().GetStatusHistory(gomock.Any(), "os-9").Return(nil, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/os-9/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_ListServiceOrderPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/service-orders/:id/payments", h.ListServiceOrderPayments)

		uc.EXPECT().ListPayments(gomock.Any(), "os-1").Return([]entities.Payment{
			{ID: "pay-1", OrderID: "os-1", Amount: 15000, Status: entities.PaymentStatusAprovado, ProviderPaymentID: "mp-123", Date: time.Now().UTC()},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-orders/os-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []struct {
			AmountCentavos int64  `json:"amount_centavos"`
			Status         string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if len(resp) != 1 || resp[0].AmountCentavos != 15000 || resp[0].Status != "aprovado" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}
