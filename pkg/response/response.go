package response

import (
	"errors"
	"net/http"
	"time"

	"payment-reconciler/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorCodeKey is the gin context key holding the code of the error written.
const ErrorCodeKey = "error_code"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// AckResponse is the body returned to the billing provider.
type AckResponse struct {
	Received bool   `json:"received"`
	Outcome  string `json:"outcome,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

// Ack sends the 200 acknowledgment the provider expects. The provider only
// inspects the status code, so the body stays outside the envelope.
func Ack(c *gin.Context, outcome string) {
	c.JSON(http.StatusOK, AckResponse{Received: true, Outcome: outcome})
}

// Error writes the envelope for err. Errors that are not *apperror.AppError
// become SYS_001 and their text is never exposed. The original error is
// attached to the context for the request logger.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}

	_ = c.Error(err)
	c.Set(ErrorCodeKey, appErr.Code)
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

// requestID retrieves the request id from context, or generates one.
func requestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return uuid.New().String()
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
