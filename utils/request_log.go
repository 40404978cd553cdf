package utils

import (
	"log"
	"strings"
	"time"

	"wedinvite/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxLoggedResponse = 1000

type responseCaptureWriter struct {
	gin.ResponseWriter
	body strings.Builder
}

func (w *responseCaptureWriter) Write(b []byte) (int, error) {
	if w.body.Len() < maxLoggedResponse {
		remaining := maxLoggedResponse - w.body.Len()
		if remaining > len(b) {
			remaining = len(b)
		}
		w.body.Write(b[:remaining])
	}
	return w.ResponseWriter.Write(b)
}

// RequestLogMiddleware persists one audit row per /api request: method,
// path, status, duration and a truncated response snippet. Each request
// gets a uuid echoed back in the X-Request-Id header.
func RequestLogMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.Next()
			return
		}
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)
		capture := &responseCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = capture

		start := time.Now()
		c.Next()

		entry := models.RequestLog{
			RequestID: requestID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			Duration:  time.Since(start).Milliseconds(),
			Response:  capture.body.String(),
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("cannot save request log: %v", err)
		}
	}
}
