package routes

import (
	"miprojet_payments/internal/adapter/http/handlers"
	"miprojet_payments/internal/adapter/http/middleware"
	repository2 "miprojet_payments/internal/adapter/persistence/repository"
	"miprojet_payments/internal/config"
	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/infrastructure/database"
	"miprojet_payments/internal/infrastructure/payments"
	"miprojet_payments/internal/usecase"
	"miprojet_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the whole service and starts the HTTP server.
func Run() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	router := buildRouter(cfg, logger)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to startup the application", zap.Error(err))
	}
}

func buildRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ddb := database.ConnectDynamoDB()

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	subscriptionRepo := repository2.NewSubscriptionDynamoRepository(ddb)
	planRepo := repository2.NewPlanDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	// Unconfigured gateways stay nil: initiation answers 503 and their
	// webhooks fail verification. The service keeps running either way.
	var cinetpayGateway interfaces.ICheckoutGateway
	if g, err := payments.NewCinetPayGateway(cfg.CinetPay.APIKey, cfg.CinetPay.SiteID, cfg.CinetPay.WebhookSecret); err != nil {
		logger.Warn("CinetPay gateway not configured", zap.Error(err))
	} else {
		cinetpayGateway = g
	}

	var waveGateway interfaces.ICheckoutGateway
	var wavePayoutGateway interfaces.IPayoutGateway
	if g, err := payments.NewWaveGateway(cfg.Wave.APIKey, cfg.Wave.WebhookSecret); err != nil {
		logger.Warn("Wave gateway not configured", zap.Error(err))
	} else {
		waveGateway = g
		wavePayoutGateway = g
	}

	var kkiapayGateway interfaces.ICheckoutGateway
	if g, err := payments.NewKkiapayGateway(cfg.Kkiapay.PublicKey, cfg.Kkiapay.PrivateKey, cfg.Kkiapay.WebhookSecret, cfg.Kkiapay.Sandbox); err != nil {
		logger.Warn("KKIAPAY gateway not configured", zap.Error(err))
	} else {
		kkiapayGateway = g
	}

	notifyBase := cfg.PublicBaseURL + "/v1/webhooks"
	cinetpayInitiator := usecase.NewInitiatePaymentUseCase(paymentRepo, cinetpayGateway, entities.PaymentMethodCinetPay, notifyBase+"/cinetpay", logger)
	waveInitiator := usecase.NewInitiatePaymentUseCase(paymentRepo, waveGateway, entities.PaymentMethodWave, notifyBase+"/wave", logger)
	kkiapayInitiator := usecase.NewInitiatePaymentUseCase(paymentRepo, kkiapayGateway, entities.PaymentMethodKkiapay, notifyBase+"/kkiapay", logger)

	reconciler := usecase.NewReconcileUseCase(paymentRepo, subscriptionRepo, planRepo, projectRepo, notificationRepo, userRepo, logger)
	payoutInitiator := usecase.NewInitiatePayoutUseCase(paymentRepo, userRepo, wavePayoutGateway, logger)
	userProvisioner := usecase.NewProvisionUserUseCase(userRepo, logger)
	paymentQuery := usecase.NewPaymentQueryUseCase(paymentRepo, userRepo)

	paymentHandler := handlers.NewPaymentHandler(cinetpayInitiator, waveInitiator, kkiapayInitiator, paymentQuery, logger)
	webhookHandler := handlers.NewWebhookHandler(reconciler, cinetpayGateway, waveGateway, kkiapayGateway, logger)
	payoutHandler := handlers.NewPayoutHandler(payoutInitiator, logger)
	userHandler := handlers.NewUserHandler(userProvisioner, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, cfg, paymentHandler, webhookHandler, payoutHandler, userHandler)

	return router
}
