package web

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// visitorTracking records page views with hashed IPs. Static assets, admin
// pages and visitors sending DNT are skipped, and so are HTMX fragment
// requests, which are not page views.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") ||
			strings.HasPrefix(path, "/privacy") ||
			c.GetHeader("DNT") == "1" ||
			c.GetHeader("HX-Request") == "true" {
			c.Next()
			return
		}

		err := s.store.RecordVisit(c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"), path, s.clock.Now())
		if err != nil {
			s.logger.Warn("recording visitor", zap.Error(err))
		}
		c.Next()
	}
}
