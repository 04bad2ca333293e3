package routes

import (
	"context"
	"log"
	"os"

	_ "mechbid/docs" // This will be auto-generated
	"mechbid/internal/adapter/http/handlers"
	repository2 "mechbid/internal/adapter/persistence/repository"
	"mechbid/internal/domain/clock"
	"mechbid/internal/infrastructure/database"
	"mechbid/internal/infrastructure/notifications"
	"mechbid/internal/infrastructure/payments"
	"mechbid/internal/usecase"
	"mechbid/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	jobRepo := repository2.NewJobDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	publisher := notifications.NewSNSPublisher(newSNSClient())

	lifecycle := usecase.NewJobLifecycleUseCase(jobRepo, paymentGateway, publisher, clock.System(), usecase.PolicyFromEnv())

	jobHandler := handlers.NewJobHandler(lifecycle)
	bidHandler := handlers.NewBidHandler(lifecycle)
	escrowHandler := handlers.NewEscrowHandler(lifecycle)
	changeOrderHandler := handlers.NewChangeOrderHandler(lifecycle)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler, bidHandler, escrowHandler, changeOrderHandler)
}

func newSNSClient() *sns.Client {
	if os.Getenv("SNS_TOPIC_ARN") == "" {
		return nil
	}
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Printf("SNS publisher not configured: %v", err)
		return nil
	}
	return sns.NewFromConfig(cfg)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
