package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request, escalating the level with the
// response status.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		latency := time.Since(start)
		status := ctx.Writer.Status()

		logFunc := slog.InfoContext
		if status >= 500 {
			logFunc = slog.ErrorContext
		} else if status >= 400 {
			logFunc = slog.WarnContext
		}

		logFunc(ctx.Request.Context(), "request completed",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", status,
			"latency", latency.String(),
			"client_ip", ctx.ClientIP(),
		)
	}
}
