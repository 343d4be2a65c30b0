package responses

import (
	"errors"
	"log"
	"net/http"

	"github.com/Valentina9990/top-talent/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// SuccessResponse is the tagged success shape returned by every operation.
type SuccessResponse struct {
	Success string      `json:"success"`        // Human readable confirmation
	Data    interface{} `json:"data,omitempty"` // Optional payload
}

// ErrorResponse is the tagged failure shape returned by every operation.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   int               `json:"code"`
	Fields map[string]string `json:"fields,omitempty"` // Only set for validation failures
}

// SendSuccess sends a standardized success response.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	if message == "" {
		message = "Operation completed successfully"
	}
	c.JSON(statusCode, SuccessResponse{
		Success: message,
		Data:    data,
	})
}

// SendError sends a standardized error response.
func SendError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error: message,
		Code:  statusCode,
	})
}

// SendValidationError sends the field-indexed error map used for form redisplay.
func SendValidationError(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:  "Invalid fields",
		Code:   http.StatusUnprocessableEntity,
		Fields: fields,
	})
}

// SendAppError converts a service error into its tagged failure response.
// Persistence failures are logged and replaced by their generic message.
func SendAppError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)

	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		InternalServerError(c, "")
		return
	}
	if kind == apperror.KindPersistence {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), appErr)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:  appErr.Message,
		Code:   status,
		Fields: appErr.Fields,
	})
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Not authenticated"
	}
	SendError(c, http.StatusUnauthorized, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred on the server"
	}
	SendError(c, http.StatusInternalServerError, message)
}
