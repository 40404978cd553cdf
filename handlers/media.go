package handlers

import (
	"net/http"
	"strings"

	"wedinvite/storage"

	"github.com/gin-gonic/gin"
)

// MediaHandlers serves previously-ingested files back at their public
// /uploads/<name> paths.
type MediaHandlers struct {
	Store storage.Storage
}

func (m *MediaHandlers) MediaFetch(c *gin.Context) {
	name := c.Param("name")
	// Ingested names are flat - anything with a separator is not ours
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		c.JSON(http.StatusNotFound, Response{Error: "not found"})
		return
	}
	m.Store.Serve(name, c.Request, c.Writer)
}
