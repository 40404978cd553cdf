package utils

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
)

const CacheNoCache = 0

// CacheControl sets a cache-control header for everything below it.
// The default is no caching; the uploads route group overrides it with a
// long max-age since ingested files never change.
func CacheControl(seconds int) gin.HandlerFunc {
	value := "no-cache"
	if seconds > 0 {
		value = "public, max-age=" + strconv.Itoa(seconds)
	}
	return func(c *gin.Context) {
		c.Header("cache-control", value)
		c.Next()
	}
}

type errorLogWriter struct {
	gin.ResponseWriter
	gc *gin.Context
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		log.Printf("[DEBUG ERROR]: Status %d, Body: %s", status, string(b))
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware doesn't work with GZIP
func ErrorLogMiddleware(c *gin.Context) {
	blw := &errorLogWriter{gc: c, ResponseWriter: c.Writer}
	c.Writer = blw
	c.Next()
}
