package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/orbit"
)

var sectionTemplates = map[string]string{
	"about":      "section-about",
	"experience": "section-experience",
	"portfolio":  "section-portfolio",
	"skills":     "section-skills",
}

// pageData is what the section templates read.
func (s *Server) pageData() gin.H {
	return gin.H{
		"site":       s.site,
		"work":       s.site.ExperienceOf(content.Work),
		"education":  s.site.ExperienceOf(content.Education),
		"skillGroup": s.site.SkillGroups(),
		"projects":   s.site.Showcase(),
	}
}

// Home page. Loading it mounts a fresh orbit widget for the visitor.
func (s *Server) handleIndex(c *gin.Context) {
	var view orbit.View
	id, err := s.sessions.Mount(s.sessionID(c), func(sys *orbit.System) error {
		view = sys.View()
		return nil
	})
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	s.setSessionCookie(c, id)

	data := s.pageData()
	data["stars"] = s.stars
	data["orbit"] = view
	c.HTML(http.StatusOK, "index.html", data)
}

// Section fragments for HTMX lazy loading.
func (s *Server) handleSection(c *gin.Context) {
	name, ok := sectionTemplates[strings.ToLower(c.Param("name"))]
	if !ok {
		s.renderError(c, http.StatusNotFound, "Section not found")
		return
	}
	c.HTML(http.StatusOK, name, s.pageData())
}

// Project detail modal.
func (s *Server) handleProject(c *gin.Context) {
	project, err := s.site.Project(c.Param("id"))
	if errors.Is(err, content.ErrNotFound) {
		s.renderError(c, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		s.logger.Error("loading project", zap.Error(err))
		s.renderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.HTML(http.StatusOK, "project-modal", project)
}
