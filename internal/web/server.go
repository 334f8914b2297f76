// Package web serves the portfolio over HTTP with gin and HTMX fragments.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/orbit"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/starfield"
	"github.com/Zachkp/portfolio/internal/store"
)

// Options wires the server's collaborators. Logger and Clock may be nil.
type Options struct {
	Config   config.Config
	Site     *content.Site
	Sessions *session.Registry
	Store    *store.Store
	Mailer   mail.Sender
	Logger   *zap.Logger
	Clock    orbit.Clock
}

// Server holds the handlers' shared state.
type Server struct {
	cfg      config.Config
	site     *content.Site
	stars    []starfield.Star
	sessions *session.Registry
	store    *store.Store
	mailer   mail.Sender
	logger   *zap.Logger
	clock    orbit.Clock
	admin    *adminAuth
}

// New validates opts and returns a Server.
func New(opts Options) (*Server, error) {
	if opts.Site == nil || opts.Sessions == nil || opts.Store == nil || opts.Mailer == nil {
		return nil, errors.New("web: site, sessions, store and mailer are required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = orbit.SystemClock
	}

	secret := opts.Config.Admin.TokenSecret
	if secret == "" {
		generated, err := randomHex(32)
		if err != nil {
			return nil, fmt.Errorf("generate admin secret: %w", err)
		}
		secret = generated
	}

	return &Server{
		cfg:      opts.Config,
		site:     opts.Site,
		stars:    starfield.Generate(opts.Config.StarCount),
		sessions: opts.Sessions,
		store:    opts.Store,
		mailer:   opts.Mailer,
		logger:   opts.Logger,
		clock:    opts.Clock,
		admin:    newAdminAuth(opts.Config.Admin, []byte(secret), opts.Clock),
	}, nil
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(logging.Middleware(s.logger), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "orbit_sessions": s.sessions.Len()})
	})

	site := r.Group("/")
	site.Use(s.visitorTracking())
	site.GET("/", s.handleIndex)
	site.GET("/sections/:name", s.handleSection)
	site.GET("/projects/:id", s.handleProject)

	orb := r.Group("/orbit")
	orb.GET("", s.handleOrbitMount)
	orb.POST("/toggle", s.handleOrbitToggle)
	orb.POST("/close", s.handleOrbitClose)
	orb.POST("/hover", s.handleOrbitHover)
	orb.POST("/items/:id/click", s.handleOrbitClick)

	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContact)

	s.setupAdminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		s.renderError(c, http.StatusNotFound, "Page not found")
	})
	return r, nil
}

func (s *Server) renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error", gin.H{"status": status, "error": msg})
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
