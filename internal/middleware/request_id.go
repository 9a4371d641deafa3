package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taskhub-dev/taskhub/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID echoes the client's request id or generates one, exposing it on
// the response header and the request context for logging.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)

		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx.Writer.Header().Set(RequestIDHeader, requestID)
		ctx.Request = ctx.Request.WithContext(logger.ContextWithRequestID(ctx.Request.Context(), requestID))
		ctx.Set("request_id", requestID)

		ctx.Next()
	}
}
