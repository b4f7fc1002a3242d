package handlers

import (
	"errors"
	"log"
	"net/http"

	"sealed_letters/internal/adapter/http/dto/request"
	"sealed_letters/internal/adapter/http/dto/response"
	"sealed_letters/internal/adapter/http/middleware"
	"sealed_letters/internal/usecase"
	"sealed_letters/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for checkout-order creation and
// founder-code redemption.

type OrderHandler struct {
	orders   usecase.ICreateOrderUseCase
	redeemer usecase.IRedeemFounderCodeUseCase
	throttle *middleware.FounderAttemptThrottle
}

func NewOrderHandler(orders usecase.ICreateOrderUseCase, redeemer usecase.IRedeemFounderCodeUseCase, throttle *middleware.FounderAttemptThrottle) *OrderHandler {
	return &OrderHandler{orders: orders, redeemer: redeemer, throttle: throttle}
}

// CreateOrder opens a priced gateway order, or redeems a founder code when
// one is supplied.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[order][handler] invalid body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if req.IsFounderAttempt() {
		h.redeemFounderCode(c, req.ResolveFounderCode())
		return
	}

	log.Printf("[order][handler] create start tier=%s", req.ResolveTier())
	checkout, err := h.orders.CreateOrder(c.Request.Context(), req.ResolveTier())
	if err != nil {
		log.Printf("[order][handler] create failed err=%v", err)
		appErr := mapCreateOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success order_id=%s", checkout.OrderID)

	c.JSON(http.StatusOK, response.FromOrderCheckout(checkout))
}

func (h *OrderHandler) redeemFounderCode(c *gin.Context, code string) {
	ip := c.ClientIP()

	blocked, err := h.throttle.Blocked(c.Request.Context(), ip)
	if err != nil {
		log.Printf("[order][handler] founder throttle unavailable err=%v", err)
		appErr := pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "Service temporarily unavailable.", http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if blocked {
		appErr := pkg.NewDomainErrorSimple("TOO_MANY_ATTEMPTS", "Too many attempts. Please try again later.", http.StatusTooManyRequests)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, err := h.redeemer.Redeem(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRedeemContention):
			appErr := pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "Service temporarily unavailable.", http.StatusServiceUnavailable)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		default:
			// One message for every rejection; the failure counter only
			// charges actual rejections, not contention.
			h.throttle.RecordFailure(c.Request.Context(), ip)
			appErr := pkg.NewDomainErrorSimple("INVALID_FOUNDER_CODE", "Invalid or expired code.", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	log.Printf("[order][handler] founder redeem success tier=%s", token.Tier)
	c.JSON(http.StatusOK, response.FromFounderToken(token))
}

func mapCreateOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTier):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderGatewayFailed),
		errors.Is(err, usecase.ErrOrderGatewayNotReady),
		errors.Is(err, usecase.ErrOrderLedgerFailed):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "Service temporarily unavailable.", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
