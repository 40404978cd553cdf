package web

import (
	"errors"
	"net/http"
	"time"

	"wedinvite/models"
	"wedinvite/services"

	"github.com/gin-gonic/gin"
)

// Pages renders the server-side views: landing page, creation form and the
// public invitation page. Rendering is a pure function of the stored record.
type Pages struct {
	Invitations *services.InvitationService
	Guestbook   *services.GuestbookService
}

func (p *Pages) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", gin.H{})
}

func (p *Pages) Create(c *gin.Context) {
	c.HTML(http.StatusOK, "create.tmpl", gin.H{
		"templates": models.TemplateIDs(),
	})
}

// Invitation renders the template the couple picked. An unknown template id
// falls back to the classic layout - the id is validated here, at the
// presentation boundary, not in storage.
func (p *Pages) Invitation(c *gin.Context) {
	invitation, err := p.Invitations.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrInvitationNotFound) {
			c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{})
			return
		}
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	entries, err := p.Guestbook.ListEntries(c.Request.Context(), invitation.ID)
	if err != nil {
		entries = []models.GuestbookEntry{}
	}

	templateName := invitation.TemplateID
	if !models.ValidTemplate(templateName) {
		templateName = models.TemplateClassic
	}
	c.HTML(http.StatusOK, templateName+".tmpl", gin.H{
		"invitation": invitation,
		"entries":    entries,
		"dateText":   time.UnixMilli(invitation.Date).UTC().Format("2 January 2006, 15:04"),
	})
}

// DisallowRobots - invitation pages are private links, keep crawlers out
func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
