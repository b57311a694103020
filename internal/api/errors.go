package api

import (
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/internal/middleware"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest  = "invalid_request"
	ErrCodeValidationError = "validation_error"
	ErrCodeLimitExceeded   = "limit_exceeded"
	ErrCodeInternalError   = "internal_error"
)

// respondError writes a standardized JSON error response carrying the
// request ID, and aborts the request.
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()

	resp := gin.H{
		"code":    code,
		"message": message,
	}
	if rid := middleware.GetRequestID(c); rid != "" {
		resp["request_id"] = rid
	}

	c.AbortWithStatusJSON(status, resp)
}
