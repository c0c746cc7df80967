package web

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PavanAnganna90/portfolio/internal/portfolio"
	"github.com/PavanAnganna90/portfolio/internal/terminal"
)

const contextKeyFormat = "format"

// terminalAgents are clients that get the text résumé instead of HTML.
var terminalAgents = []string{"curl/", "wget/", "httpie/", "xh/"}

// SiteHandler serves the site content. The site is read-only after
// construction and shared by every request.
type SiteHandler struct {
	site *portfolio.Site
	now  func() time.Time
}

func NewSiteHandler(site *portfolio.Site) *SiteHandler {
	return &SiteHandler{site: site, now: time.Now}
}

// Index serves the page, or the terminal résumé to command-line clients.
func (h *SiteHandler) Index(c *gin.Context) {
	if wantsText(c) {
		h.Resume(c)
		return
	}

	c.Set(contextKeyFormat, "html")
	c.HTML(http.StatusOK, "index.html", newPageView(h.site, h.now().Year()))
}

// Resume serves the terminal résumé. color=0 strips escape sequences.
func (h *SiteHandler) Resume(c *gin.Context) {
	c.Set(contextKeyFormat, "text")

	opts := terminal.Color
	if c.Query("color") == "0" {
		opts = terminal.Plain
	}

	var buf bytes.Buffer
	if err := terminal.Render(&buf, h.site, opts); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "failed to render résumé\n")
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// Portfolio handles GET /api/portfolio.
func (h *SiteHandler) Portfolio(c *gin.Context) {
	c.Set(contextKeyFormat, "json")
	c.JSON(http.StatusOK, h.site)
}

// ListProjects handles GET /api/projects.
func (h *SiteHandler) ListProjects(c *gin.Context) {
	c.Set(contextKeyFormat, "json")
	c.JSON(http.StatusOK, h.site.Projects)
}

// GetProject handles GET /api/projects/:slug.
func (h *SiteHandler) GetProject(c *gin.Context) {
	c.Set(contextKeyFormat, "json")

	project, err := h.site.Project(c.Param("slug"))
	if err != nil {
		var nf *portfolio.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, project)
}

func wantsText(c *gin.Context) bool {
	if c.Query("format") == "text" {
		return true
	}
	ua := strings.ToLower(c.Request.UserAgent())
	for _, prefix := range terminalAgents {
		if strings.HasPrefix(ua, prefix) {
			return true
		}
	}
	return false
}
