package utils

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorLogWriter struct {
	gin.ResponseWriter
	gc        *gin.Context
	requestID string
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		log.Printf("[DEBUG ERROR] request %s: status %d, body: %s", w.requestID, status, string(b))
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware tags each request with an id and logs error response
// bodies. Doesn't work with GZIP, so it must run before the gzip middleware.
func ErrorLogMiddleware(c *gin.Context) {
	id := uuid.NewString()
	c.Header("x-request-id", id)
	blw := &errorLogWriter{gc: c, ResponseWriter: c.Writer, requestID: id}
	c.Writer = blw
	c.Next()
}
