package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GuestbookAddRequest struct {
	Name    string `json:"name" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func invitationIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("invitationId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "invitationId must be a number"})
		return 0, false
	}
	return id, true
}

func (api *API) GuestbookAdd(c *gin.Context) {
	id, ok := invitationIDParam(c)
	if !ok {
		return
	}
	var req GuestbookAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
		return
	}
	entry, err := api.Guestbook.AddEntry(c.Request.Context(), id, req.Name, req.Message)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (api *API) GuestbookList(c *gin.Context) {
	id, ok := invitationIDParam(c)
	if !ok {
		return
	}
	entries, err := api.Guestbook.ListEntries(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
