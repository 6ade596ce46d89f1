package handlers

import (
	"net/http"
	"time"

	"todo_api"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"

	errUnsupportedMedia = "Content-Type must be application/json"
)

// requestLogger tags the request with an id and logs it once it completes.
// A client-supplied X-Request-ID is kept only if it is a UUID.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()

	rid := c.GetHeader(requestIDHeader)
	if _, err := uuid.Parse(rid); err != nil {
		rid = uuid.NewString()
	}
	c.Set(requestIDKey, rid)
	c.Header(requestIDHeader, rid)

	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", rid,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// requireJSON rejects request bodies that are not declared as JSON.
func requireJSON(c *gin.Context) {
	if c.ContentType() != gin.MIMEJSON {
		c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, todo_api.ErrorResponse{Error: errUnsupportedMedia})
		return
	}
	c.Next()
}
