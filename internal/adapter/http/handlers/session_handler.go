package handlers

import (
	"errors"
	"log"
	"net/http"

	"sealed_letters/internal/adapter/http/dto/request"
	"sealed_letters/internal/adapter/http/dto/response"
	"sealed_letters/internal/usecase"
	"sealed_letters/pkg"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles HTTP requests for loading sealed sessions.

type SessionHandler struct {
	loader usecase.ILoadSessionUseCase
}

func NewSessionHandler(loader usecase.ILoadSessionUseCase) *SessionHandler {
	return &SessionHandler{loader: loader}
}

// LoadSession resolves a share key to the sanitized session fields.
func (h *SessionHandler) LoadSession(c *gin.Context) {
	var req request.LoadSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	s, err := h.loader.Load(c.Request.Context(), req.ResolveSessionKey())
	if err != nil {
		appErr := mapLoadSessionError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Printf("[session][handler] load failed err=%v", err)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(s))
}

func mapLoadSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
