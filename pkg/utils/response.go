package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "drone-fleet-manager/pkg/errors"
)

// Response is the JSON envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   message,
	})
}

var statusByCode = map[string]int{
	appErrors.CodeNotFound:            http.StatusNotFound,
	appErrors.CodeValidation:          http.StatusBadRequest,
	appErrors.CodeLowBattery:          http.StatusBadRequest,
	appErrors.CodeWeightExceeded:      http.StatusBadRequest,
	appErrors.CodeConstraintViolation: http.StatusBadRequest,
}

// RespondError maps an application error to its HTTP status. Errors without a
// known code are reported as an opaque internal error. Only the AppError
// message is exposed; wrapped causes stay in the logs.
func RespondError(c *gin.Context, err error) {
	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) {
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	status, ok := statusByCode[appErr.Code]
	if !ok {
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	ErrorResponse(c, status, appErr.Message)
}
