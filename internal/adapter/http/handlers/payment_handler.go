package handlers

import (
	"errors"
	"log"
	"net/http"

	"sealed_letters/internal/adapter/http/dto/request"
	"sealed_letters/internal/adapter/http/dto/response"
	"sealed_letters/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment verification and session
// sealing, on both the gateway and the founder-token path.

type PaymentHandler struct {
	verifier usecase.IVerifyPaymentUseCase
}

func NewPaymentHandler(verifier usecase.IVerifyPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{verifier: verifier}
}

// VerifyPayment seals a session for a confirmed payment. Retries with the
// same payment id return the original session key with replay set.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[verify][handler] invalid body err=%v", err)
		verifyFailure(c, http.StatusBadRequest, "Invalid request.")
		return
	}

	if err := h.validatePath(req); err != nil {
		log.Printf("[verify][handler] missing fields err=%v", err)
		verifyFailure(c, http.StatusBadRequest, "Invalid request.")
		return
	}

	in := usecase.VerifyPaymentInput{
		OrderID:      req.RazorpayOrderID,
		PaymentID:    req.RazorpayPaymentID,
		Signature:    req.RazorpaySignature,
		FounderToken: req.FounderToken,
		Tier:         req.ResolveTier(),
		Payload:      req.CoupleData.ToPayload(),
	}

	var result usecase.VerifyPaymentResult
	var err error
	if req.IsFounderMode() {
		result, err = h.verifier.VerifyFounderToken(c.Request.Context(), in)
	} else {
		result, err = h.verifier.VerifyGatewayPayment(c.Request.Context(), in)
	}
	if err != nil {
		log.Printf("[verify][handler] verification failed err=%v", err)
		status, msg := mapVerifyError(err)
		verifyFailure(c, status, msg)
		return
	}

	log.Printf("[verify][handler] success session_key=%s replay=%t", result.SessionKey, result.Replay)
	c.JSON(http.StatusOK, response.FromVerifyResult(result))
}

func (h *PaymentHandler) validatePath(req request.VerifyPaymentRequest) error {
	if req.IsFounderMode() {
		return req.ValidateFounderFields()
	}
	return req.ValidateGatewayFields()
}

func mapVerifyError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidVerification):
		return http.StatusBadRequest, "Invalid request."
	case errors.Is(err, usecase.ErrInvalidPayload):
		return http.StatusBadRequest, "Invalid request."
	case errors.Is(err, usecase.ErrInvalidSignature):
		return http.StatusBadRequest, "Payment verification failed."
	case errors.Is(err, usecase.ErrInvalidFounderToken):
		return http.StatusBadRequest, "Invalid or expired access token."
	case errors.Is(err, usecase.ErrSessionCommitFailed):
		return http.StatusInternalServerError, "Could not finalize your session. Please retry."
	default:
		return http.StatusInternalServerError, "An internal error occurred."
	}
}

func verifyFailure(c *gin.Context, status int, msg string) {
	c.JSON(status, response.VerifyPaymentFailure{Verified: false, Error: msg})
}
