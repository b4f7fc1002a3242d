package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "sealed_letters/docs" // swag-generated API docs
	"sealed_letters/internal/adapter/http/handlers"
	"sealed_letters/internal/adapter/http/middleware"
	"sealed_letters/internal/adapter/persistence/repository"
	"sealed_letters/internal/infrastructure/cache"
	"sealed_letters/internal/infrastructure/database"
	"sealed_letters/internal/infrastructure/payments"
	"sealed_letters/internal/usecase"
	"sealed_letters/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPort = 8080

// Run wires every component explicitly and starts the server. All clients
// are constructed here and injected downward; nothing holds module-scope
// state.
func Run() {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	ctx := context.Background()

	ddb := database.NewDynamoDBClient(ctx)
	redisClient := cache.NewRedisClient(ctx)
	counters := cache.NewRedisCounterStore(redisClient)

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentRecordDynamoRepository(ddb)
	codeRepo := repository.NewFounderCodeDynamoRepository(ddb)
	tokenRepo := repository.NewFounderTokenDynamoRepository(ddb)
	sessionRepo := repository.NewSessionDynamoRepository(ddb, orderRepo, paymentRepo, tokenRepo)

	var gateway interfaces.IPaymentGateway
	rzp, err := payments.NewRazorpayGateway(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))
	if err != nil {
		log.Printf("Razorpay gateway not configured: %v", err)
	} else {
		gateway = rzp
	}
	verifier := payments.NewSignatureVerifier(os.Getenv("RAZORPAY_KEY_SECRET"))

	prices := usecase.LoadPriceTable()
	keygen := usecase.NewSessionKeyGenerator(sessionRepo)

	createOrderUC := usecase.NewCreateOrderUseCase(orderRepo, gateway, prices)
	redeemUC := usecase.NewRedeemFounderCodeUseCase(codeRepo, tokenRepo)
	verifyUC := usecase.NewVerifyPaymentUseCase(verifier, orderRepo, paymentRepo, tokenRepo, sessionRepo, keygen, prices)
	loadUC := usecase.NewLoadSessionUseCase(sessionRepo)

	throttle := middleware.NewFounderAttemptThrottle(counters)

	orderHandler := handlers.NewOrderHandler(createOrderUC, redeemUC, throttle)
	paymentHandler := handlers.NewPaymentHandler(verifyUC)
	sessionHandler := handlers.NewSessionHandler(loadUC)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addHealthRoutes(router)
	addCheckoutRoutes(router, counters, orderHandler, paymentHandler, sessionHandler)

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			port = parsed
		}
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func addHealthRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
