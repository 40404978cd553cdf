package handlers

import (
	"errors"
	"log"
	"net/http"

	"wedinvite/services"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error string `json:"error"`
}

// serviceError maps a service outcome onto the HTTP status vocabulary:
// validation -> 400, not found -> 404, slug conflict -> 409, everything
// else degrades to a generic 500 (the cause is logged, not leaked).
func serviceError(c *gin.Context, err error) {
	var validation services.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, Response{Error: validation.Error()})
		return
	}
	switch {
	case errors.Is(err, services.ErrInvitationNotFound):
		c.JSON(http.StatusNotFound, Response{Error: err.Error()})
	case errors.Is(err, services.ErrSlugTaken):
		c.JSON(http.StatusConflict, Response{Error: err.Error()})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, Response{Error: "something went wrong"})
	}
}
