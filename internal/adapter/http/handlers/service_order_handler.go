package handlers

import (
	"errors"
	"net/http"

	request "os_service_api/internal/adapter/http/dto/request"
	response "os_service_api/internal/adapter/http/dto/response"
	"os_service_api/internal/usecase"
	"os_service_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
)

// ServiceOrderHandler exposes the OS workflow over HTTP. It only translates
// payloads and maps domain errors; every rule lives in the use case.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateServiceOrder godoc
// @Summary      Create a service order
// @Description  Validates customer/vehicle/catalog references, snapshots prices, decrements stock and opens the OS at status "recebida".
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        order  body  request.CreateServiceOrderRequest  true  "Service order"
// @Success      201  {object}  response.ServiceOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	details, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrderDetails(details))
}

// ListServiceOrders godoc
// @Summary      List service orders
// @Description  Lists all orders, or filters by exactly one of order_number, customer_id, customer_document or vehicle_plate.
// @Tags         service-orders
// @Produce      json
// @Param        order_number       query  string  false  "OS number (exact)"
// @Param        customer_id        query  string  false  "Customer id"
// @Param        customer_document  query  string  false  "Customer document"
// @Param        vehicle_plate      query  string  false  "Vehicle plate"
// @Success      200  {array}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders [get]
func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	ctx := c.Request.Context()

	if orderNumber := c.Query("order_number"); orderNumber != "" {
		details, err := h.usecase.GetByOrderNumber(ctx, orderNumber)
		if err != nil {
			appErr := mapServiceOrderError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, []response.ServiceOrderResponse{response.FromServiceOrderDetails(details)})
		return
	}

	var (
		details []usecase.ServiceOrderDetails
		err     error
	)
	switch {
	case c.Query("customer_id") != "":
		details, err = h.usecase.ListByCustomerID(ctx, c.Query("customer_id"))
	case c.Query("customer_document") != "":
		details, err = h.usecase.ListByCustomerDocument(ctx, c.Query("customer_document"))
	case c.Query("vehicle_plate") != "":
		details, err = h.usecase.ListByVehiclePlate(ctx, c.Query("vehicle_plate"))
	default:
		details, err = h.usecase.ListAll(ctx)
	}
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrderDetailsList(details))
}

// GetServiceOrder godoc
// @Summary      Get a service order by id
// @Tags         service-orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	details, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrderDetails(details))
}

// UpdateServiceOrderStatus godoc
// @Summary      Transition a service order
// @Description  Applies the lifecycle policy, its resource side effects (mechanic allocation/release) and appends the audit entry.
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id      path  string                       true  "Order id"
// @Param        status  body  request.UpdateStatusRequest  true  "Target status"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/status [patch]
func (h *ServiceOrderHandler) UpdateServiceOrderStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	details, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status, payload.Notes, payload.Actor)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrderDetails(details))
}

// ApproveServiceOrder godoc
// @Summary      Approve the budget of a service order
// @Description  Customer approval shortcut: aguardando_aprovacao -> em_execucao, stamping approved_at/started_at and registering the charge.
// @Tags         service-orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/approve [post]
func (h *ServiceOrderHandler) ApproveServiceOrder(c *gin.Context) {
	details, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrderDetails(details))
}

// GetServiceOrderHistory godoc
// @Summary      Status history of a service order
// @Tags         service-orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {array}  response.StatusHistoryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/history [get]
func (h *ServiceOrderHandler) GetServiceOrderHistory(c *gin.Context) {
	history, err := h.usecase.GetStatusHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStatusHistory(history))
}

// ListServiceOrderPayments godoc
// @Summary      Payments registered for a service order
// @Tags         service-orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {array}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/payments [get]
func (h *ServiceOrderHandler) ListServiceOrderPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapServiceOrderError(err error) *pkg.AppError {
	var stockErr *usecase.InsufficientStockError
	var transitionErr *usecase.InvalidTransitionError

	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderBody), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_FOUND", "Mechanic not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotOwnedByCustomer):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_OWNED", "Vehicle does not belong to this customer", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceNotActive):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_ACTIVE", "Service is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrPartNotActive):
		return pkg.NewDomainErrorSimple("PART_NOT_ACTIVE", "Part is not active", http.StatusConflict)
	case errors.As(err, &stockErr):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", stockErr.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrMechanicRequired):
		return pkg.NewDomainErrorSimple("MECHANIC_REQUIRED", "A mechanic must be assigned before execution", http.StatusConflict)
	case errors.Is(err, usecase.ErrMechanicBusy):
		return pkg.NewDomainErrorSimple("MECHANIC_BUSY", "Mechanic is allocated to another service order", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAwaitingApproval):
		return pkg.NewDomainErrorSimple("NOT_AWAITING_APPROVAL", "Service order is not awaiting approval", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderStateConflict):
		return pkg.NewDomainErrorSimple("ORDER_STATE_CONFLICT", "Service order changed concurrently, retry", http.StatusConflict)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", transitionErr.Error(), http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
