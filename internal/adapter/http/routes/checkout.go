package routes

import (
	"sealed_letters/internal/adapter/http/handlers"
	"sealed_letters/internal/adapter/http/middleware"
	"sealed_letters/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	PathCreateOrder   = "/create-order"
	PathVerifyPayment = "/verify-payment"
	PathLoadSession   = "/load-session"
)

func addCheckoutRoutes(
	router *gin.Engine,
	counters interfaces.IRateLimitStore,
	orderHandler *handlers.OrderHandler,
	paymentHandler *handlers.PaymentHandler,
	sessionHandler *handlers.SessionHandler,
) {
	// Every purchase endpoint sits behind the fail-closed per-IP limiter.
	router.POST(PathCreateOrder, middleware.RateLimit(counters, "order"), orderHandler.CreateOrder)
	router.POST(PathVerifyPayment, middleware.RateLimit(counters, "verify"), paymentHandler.VerifyPayment)
	router.POST(PathLoadSession, middleware.RateLimit(counters, "load"), sessionHandler.LoadSession)
}
