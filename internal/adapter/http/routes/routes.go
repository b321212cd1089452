package routes

import (
	"os"
	"strconv"

	_ "agency_billing/docs" // swag generated docs
	"agency_billing/internal/adapter/http/handlers"
	repository2 "agency_billing/internal/adapter/persistence/repository"
	"agency_billing/internal/infrastructure/database"
	"agency_billing/internal/infrastructure/payments"
	"agency_billing/internal/observability/metrics"
	"agency_billing/internal/usecase"
	"agency_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()
	metrics.Init()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		logrus.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, logger)

	var billingGateway interfaces.IBillingGateway
	billplzCfg := payments.ConfigFromEnv()
	billplz, err := payments.NewBillplzClient(billplzCfg, logger)
	if err != nil {
		logger.WithError(err).Warn("Billplz gateway not configured")
	} else {
		billingGateway = billplz
	}

	paymentUseCase := usecase.NewPaymentUseCase(
		paymentRepo,
		quoteRepo,
		billingGateway,
		payments.ConverterFromEnv(),
		usecase.PaymentConfig{
			CollectionID: billplzCfg.CollectionID,
			CallbackURL:  os.Getenv("BILLPLZ_CALLBACK_URL"),
			RedirectURL:  os.Getenv("BILLPLZ_REDIRECT_URL"),
		},
		logger,
	)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAgencyRoutes(v1, quoteHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
