package errors

import (
	"net/http"
	"os"
	"strings"

	"codeberg.org/insightsnap/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for terminal errors
//     These functions handle both logging and the HTTP response
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For repositories and internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the handler decide how to log and respond (avoid double logging)

// ErrorResponse is the standardized error body returned to clients
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "unauthorized", "not_found")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeBadRequest      = "bad_request"
	CodeConflict        = "conflict"
	CodeTooManyRequests = "too_many_requests"
	CodeQuotaExhausted  = "quota_exhausted"
)

// returns a 401 unauthorized error
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}

	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeUnauthorized,
		Message: message,
	})
}

// returns a 403 forbidden error
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "permission denied"
	}

	c.JSON(http.StatusForbidden, ErrorResponse{
		Error:   CodeForbidden,
		Message: message,
	})
}

// returns a 403 error for an exhausted credit balance
func QuotaExhausted(c *gin.Context, message string) {
	if message == "" {
		message = "no credits remaining"
	}

	c.JSON(http.StatusForbidden, ErrorResponse{
		Error:   CodeQuotaExhausted,
		Message: message,
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 bad request error for binding/validation failures
func ValidationError(c *gin.Context, err error) {
	details := ""
	if err != nil {
		details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: "request validation failed",
		Details: details,
	})
}

// returns a 409 conflict error
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "resource conflict"
	}

	c.JSON(http.StatusConflict, ErrorResponse{
		Error:   CodeConflict,
		Message: message,
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with request context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"user_id", c.GetString("user_id"),
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// hides storage internals from clients in production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	if os.Getenv("ENVIRONMENT") != "production" {
		return errMsg
	}

	lower := strings.ToLower(errMsg)

	switch {
	case strings.Contains(lower, "sql") || strings.Contains(lower, "pgx") ||
		strings.Contains(lower, "database") || strings.Contains(lower, "postgres"):
		return "database operation failed"
	case strings.Contains(lower, "connection") || strings.Contains(lower, "dial"):
		return "connection error occurred"
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline"):
		return "request timed out"
	case strings.Contains(lower, "not found") || strings.Contains(lower, "no rows"):
		return "resource not found"
	default:
		return "an error occurred"
	}
}
