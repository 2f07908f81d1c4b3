package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 response and logs it under the request's ID.
// http.ErrAbortHandler is re-raised so the server drops the connection.
func Recovery(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}

			fields := map[string]any{
				"panic":      fmt.Sprint(recovered),
				"route":      c.FullPath(),
				"method":     c.Request.Method,
				"client_ip":  c.ClientIP(),
				"request_id": coreport.RequestIDFromContext(c.Request.Context()),
				"stack":      string(debug.Stack()),
			}
			if ownerID, ok := OwnerID(c); ok {
				fields["owner_id"] = ownerID
			}
			logger.Error("Handler panicked", fields)

			// Headers already went out
			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(domainerr.ErrInternalServer))
		}()

		c.Next()
	}
}
