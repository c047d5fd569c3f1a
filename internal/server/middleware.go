package server

import (
	"net/http"
	"time"

	"job-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the id a request is logged under
const RequestIDHeader = "X-Request-ID"

// RequestLoggerMiddleware tags each request with an id and logs it with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = utils.GenerateID()
	}
	c.Header(RequestIDHeader, requestID)

	c.Next() // process request

	fields := map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	}
	if c.Writer.Status() >= http.StatusInternalServerError {
		utils.Warn("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}

// notFound answers unknown routes with the standard error envelope
func notFound(c *gin.Context) {
	utils.JSONError(c, http.StatusNotFound, nil, "route not found")
}
