package response

import (
	"net/http"

	"backoffice/errors"

	"github.com/gin-gonic/gin"
)

// Empty is the payload of write operations.
type Empty struct{}

// Result is the envelope every operation returns. A failed result always
// carries a message and never an internal error detail.
type Result[T any] struct {
	Success bool             `json:"success"`
	Data    T                `json:"data"`
	Message string           `json:"message,omitempty"`
	ID      string           `json:"id,omitempty"`
	Code    errors.ErrorCode `json:"code,omitempty"`
}

// OK wraps data in a successful result.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Done is a successful write. id is empty for updates and deletes.
func Done(id, message string) Result[Empty] {
	return Result[Empty]{Success: true, ID: id, Message: message}
}

// Fail converts err into a failed result. Only the AppError message reaches
// the caller; anything else gets the generic message.
func Fail[T any](err error) Result[T] {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		return Result[T]{Code: errors.ErrCodeDBError, Message: errors.GenericFailureMessage}
	}
	return Result[T]{Code: appErr.Code, Message: appErr.Message}
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeValidation:
		return http.StatusBadRequest
	case errors.ErrCodeConflict:
		return http.StatusConflict
	case errors.ErrCodeReference:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Write sends res, using okStatus on success and the code's status otherwise.
func Write[T any](c *gin.Context, okStatus int, res Result[T]) {
	if res.Success {
		c.JSON(okStatus, res)
		return
	}
	c.JSON(StatusFor(res.Code), res)
}

// NotFound answers requests that matched no route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Result[any]{Code: errors.ErrCodeNotFound, Message: "route not found"})
}

// ServerError aborts with the generic failure envelope.
func ServerError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Result[any]{Code: errors.ErrCodeDBError, Message: errors.GenericFailureMessage})
}
