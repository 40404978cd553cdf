package handlers

import (
	"net/http"
	"strconv"

	"wedinvite/services"

	"github.com/gin-gonic/gin"
)

// API bundles the handlers with their service dependencies.
type API struct {
	Invitations *services.InvitationService
	Guestbook   *services.GuestbookService
}

// InvitationCreate handles the multipart creation form: text fields plus
// up to MAX_PHOTOS "photos" files and one optional "musicFile".
func (api *API) InvitationCreate(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "expected a multipart form"})
		return
	}
	date, err := strconv.ParseInt(c.PostForm("date"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "date must be a unix timestamp in milliseconds"})
		return
	}

	input := services.CreateInvitationInput{
		BrideNames: c.PostForm("brideNames"),
		GroomNames: c.PostForm("groomNames"),
		Date:       date,
		Venue:      c.PostForm("venue"),
		TemplateID: c.PostForm("templateId"),
		Photos:     form.File["photos"],
	}
	if music := form.File["musicFile"]; len(music) > 0 {
		input.Music = music[0]
	}

	invitation, err := api.Invitations.Create(c.Request.Context(), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitation)
}

func (api *API) InvitationGet(c *gin.Context) {
	invitation, err := api.Invitations.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitation)
}
