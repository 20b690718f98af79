package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware returns a gin.HandlerFunc (middleware) that recovers
// from panics within a handler, logs the panic with a stack trace, and
// returns a generic 500 envelope to the client so the server stays up.
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		panic("RecoveryMiddleware requires a non-nil zap.Logger instance")
	}
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("stacktrace", string(debug.Stack())),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)

				// Only write if no response has gone out yet.
				if !c.Writer.Written() {
					c.JSON(http.StatusInternalServerError, envelope{
						Success: false,
						Data:    nil,
						Error: &envelopeErr{
							Code:    "INTERNAL_SERVER_ERROR",
							Message: "The server encountered an unexpected condition which prevented it from fulfilling the request.",
						},
					})
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}
