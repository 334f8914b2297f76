package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/orbit"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/store"
)

func (s *Server) sessionID(c *gin.Context) string {
	id, _ := c.Cookie(session.CookieName)
	return id
}

func (s *Server) setSessionCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, id, int(s.cfg.OrbitSessionTTL.Seconds()), "/", "", false, true)
}

// orbitEvent applies fn to the visitor's system and renders the widget.
func (s *Server) orbitEvent(c *gin.Context, fn func(*orbit.System) error) {
	var view orbit.View
	id, err := s.sessions.Do(s.sessionID(c), func(sys *orbit.System) error {
		if err := fn(sys); err != nil {
			return err
		}
		view = sys.View()
		return nil
	})
	s.setSessionCookie(c, id)

	switch {
	case errors.Is(err, orbit.ErrUnknownItem):
		s.renderError(c, http.StatusNotFound, "Unknown item")
		return
	case err != nil:
		s.logger.Error("orbit event", zap.Error(err))
		s.renderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.HTML(http.StatusOK, "orbit", view)
}

func (s *Server) recordOrbitEvent(c *gin.Context, kind, itemID string) {
	if err := s.store.RecordOrbitEvent(c.Request.Context(), kind, itemID, s.clock.Now()); err != nil {
		s.logger.Warn("recording orbit event", zap.String("kind", kind), zap.Error(err))
	}
}

// (Re)mounts the widget, discarding any previous state.
func (s *Server) handleOrbitMount(c *gin.Context) {
	var view orbit.View
	id, _ := s.sessions.Mount(s.sessionID(c), func(sys *orbit.System) error {
		view = sys.View()
		return nil
	})
	s.setSessionCookie(c, id)
	c.HTML(http.StatusOK, "orbit", view)
}

// Central play/pause control.
func (s *Server) handleOrbitToggle(c *gin.Context) {
	s.orbitEvent(c, func(sys *orbit.System) error {
		sys.ToggleCenter()
		return nil
	})
	if c.Writer.Status() == http.StatusOK {
		s.recordOrbitEvent(c, store.EventToggle, "")
	}
}

func (s *Server) handleOrbitClick(c *gin.Context) {
	itemID := c.Param("id")
	focused := false
	s.orbitEvent(c, func(sys *orbit.System) error {
		if err := sys.Click(itemID); err != nil {
			return err
		}
		focused = sys.Snapshot().Focused == itemID
		return nil
	})
	if focused {
		s.recordOrbitEvent(c, store.EventFocus, itemID)
	}
}

// Detail overlay close button.
func (s *Server) handleOrbitClose(c *gin.Context) {
	s.orbitEvent(c, func(sys *orbit.System) error {
		sys.Close()
		return nil
	})
}

// Hover enter sends the item name, hover leave sends none. Only the
// tooltip is re-rendered so the orbit animation is left untouched.
func (s *Server) handleOrbitHover(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		name = c.PostForm("name")
	}

	var view orbit.View
	id, err := s.sessions.Do(s.sessionID(c), func(sys *orbit.System) error {
		if err := sys.Hover(name); err != nil {
			return err
		}
		view = sys.View()
		return nil
	})
	s.setSessionCookie(c, id)
	if err != nil {
		s.renderError(c, http.StatusNotFound, "Unknown item")
		return
	}
	c.HTML(http.StatusOK, "orbit-tooltip", view)
}
