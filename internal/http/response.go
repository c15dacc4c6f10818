// Package http provides the Gin HTTP surface of the flower service.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/floramar/flower-service/internal/domain/dto"
	"github.com/floramar/flower-service/internal/middleware"
)

// ResponseBuilder provides response building helpers bound to a request
// context, attaching the request ID and timestamp to every payload.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	b.c.JSON(statusCode, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error sends an error response with the given status code and message.
func (b *ResponseBuilder) Error(statusCode int, message string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}

	resp := dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithRequestID(middleware.GetRequestID(b.c))
	b.c.AbortWithStatusJSON(statusCode, resp)
}
