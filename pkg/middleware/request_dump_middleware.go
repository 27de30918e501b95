package middleware

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"
	logger "storyquest-backend/pkg/logging"
)

// RequestDumpMiddleware logs every request at debug level, body included.
// The body is re-buffered so downstream handlers can still read it.
func RequestDumpMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		logger.Debug(
			"[Request]\n"+
				"\tMethod: %s\n"+
				"\tURL: %s\n"+
				"\tParams: %v\n"+
				"\tBody: %s",
			c.Request.Method,
			c.Request.URL.String(),
			c.Params,
			string(bodyBytes),
		)

		c.Next()
	}
}
