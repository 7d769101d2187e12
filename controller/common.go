package controller

import (
	"errors"
	"net/http"

	"github.com/cblythe8/Stock-Crypto-Tracker/customerrors"
	"github.com/cblythe8/Stock-Crypto-Tracker/model"

	"github.com/gin-gonic/gin"
)

// --- Shared Response Helpers ---

func handleSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// handleError maps the core error kinds onto HTTP statuses:
// validation -> 400, unknown symbol -> 404, provider down -> 502,
// anything else -> 500.
func handleError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, customerrors.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, customerrors.ErrSymbolNotFound):
		status = http.StatusNotFound
	case errors.Is(err, customerrors.ErrProviderUnavailable):
		status = http.StatusBadGateway
	}

	c.JSON(status, model.Response{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

func handleBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, model.Response{
		Success: false,
		Message: message,
	})
}
