package routes

import (
	"log"

	_ "os_service_api/docs" // swag-generated registration
	"os_service_api/internal/adapter/http/handlers"
	"os_service_api/internal/adapter/persistence/repository"
	"os_service_api/internal/config"
	"os_service_api/internal/infrastructure/database"
	"os_service_api/internal/infrastructure/messaging"
	"os_service_api/internal/infrastructure/payments"
	"os_service_api/internal/usecase"
	"os_service_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// getRoutes assembles the whole dependency graph once, by construction:
// repositories -> use case -> handlers. Optional collaborators (notifier,
// payment gateway) degrade to nil and the workflow simply skips them.
func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository.NewServiceOrderDynamoRepository(ddb)
	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	vehicleRepo := repository.NewVehicleDynamoRepository(ddb)
	serviceCatalog := repository.NewServiceCatalogDynamoRepository(ddb)
	partCatalog := repository.NewPartCatalogDynamoRepository(ddb)
	mechanicRepo := repository.NewMechanicDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)

	var notifier interfaces.INotifier
	if conn, err := amqp091.Dial(cfg.RabbitURL); err != nil {
		log.Printf("Status notifier not configured: %v", err)
	} else if n, err := messaging.NewRabbitStatusNotifier(conn); err != nil {
		log.Printf("Status notifier not configured: %v", err)
	} else {
		notifier = n
	}

	var paymentGateway interfaces.IPaymentGateway
	if mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken); err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewServiceOrderUseCase(
		orderRepo,
		customerRepo,
		vehicleRepo,
		serviceCatalog,
		partCatalog,
		mechanicRepo,
		notifier,
		paymentGateway,
		paymentRepo,
	)

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
