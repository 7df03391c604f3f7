package routes

import (
	"os_service_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", orderHandler.CreateServiceOrder)
		orders.GET("", orderHandler.ListServiceOrders)
		orders.GET("/:id", orderHandler.GetServiceOrder)
		orders.GET("/:id/history", orderHandler.GetServiceOrderHistory)
		orders.GET("/:id/payments", orderHandler.ListServiceOrderPayments)
		orders.PATCH("/:id/status", orderHandler.UpdateServiceOrderStatus)
		orders.POST("/:id/approve", orderHandler.ApproveServiceOrder)
	}
}
