package middleware

import (
	"errors"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger middleware logs incoming requests and their responses
func Logger(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()

		c.Next()

		latency := timeProvider.Since(start).Std()
		statusCode := c.Writer.Status()

		fields := map[string]any{
			"method":      method,
			"path":        path,
			"status":      statusCode,
			"latency_ms":  latency.Milliseconds(),
			"ip":          ip,
			"request_id":  c.GetString(RequestIDKey),
			"user_agent":  c.Request.UserAgent(),
			"status_text": statusText(statusCode),
		}
		if ownerID, ok := OwnerID(c); ok {
			fields["owner_id"] = ownerID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
			mergeErrorFields(fields, c.Errors)
		}

		switch {
		case statusCode >= 500:
			logger.Error("Request failed", fields)
		case statusCode >= 400:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}

type logFielder interface {
	LogFields() map[string]any
}

// mergeErrorFields copies the structured fields of the most recent error that has them.
// Request fields already present win.
func mergeErrorFields(fields map[string]any, errs []*gin.Error) {
	for i := len(errs) - 1; i >= 0; i-- {
		var lf logFielder
		if !errors.As(errs[i].Err, &lf) {
			continue
		}
		for k, v := range lf.LogFields() {
			if _, taken := fields[k]; !taken {
				fields[k] = v
			}
		}
		return
	}
}

// statusText returns the text for the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
