package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse wraps every successful payload.
type APIResponse[T any] struct {
	Data T `json:"data"`
}

// MessageBody is returned for business, authorization, authentication and not-found failures.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is returned for logical and internal failures.
type ErrorBody struct {
	Error string `json:"error"`
}

func Success[T any](ctx *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, APIResponse[T]{Data: data})
}

func Created[T any](ctx *gin.Context, data T) {
	Success(ctx, http.StatusCreated, data)
}

func NoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

func Message(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, MessageBody{Message: message})
}

func Error(ctx *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	ctx.AbortWithStatusJSON(status, ErrorBody{Error: message})
}

// Fields renders a field -> messages map as the whole body.
func Fields(ctx *gin.Context, status int, fields map[string][]string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.AbortWithStatusJSON(status, fields)
}
