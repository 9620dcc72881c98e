// Package web is the HTML front of NeoInbox: sign-up, login and logout pages
// on gin, with the logged-in identity kept in a signed cookie session. It
// talks to the account core only through AuthService.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/neoinbox/internal/logging"
	"github.com/dmitrijs2005/neoinbox/internal/server/services"
)

// SessionCookieName is the name of the session cookie.
const SessionCookieName = "neoinbox_session"

// AuthService is the part of services.UserService the front depends on.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (int64, error)
	Authenticate(ctx context.Context, email, password string) (*services.AuthenticatedUser, error)
}

// Options configure the session cookie.
type Options struct {
	SessionSecret string
	SessionMaxAge time.Duration
	// Secure marks the cookie Secure; set it when served over HTTPS.
	Secure bool
}

// Server owns the gin engine and the parsed page templates.
type Server struct {
	auth   AuthService
	log    logging.Logger
	pages  pages
	engine *gin.Engine
}

// New builds the router. The caller chooses the gin mode beforehand.
func New(auth AuthService, log logging.Logger, opts Options) (*Server, error) {
	if opts.SessionSecret == "" {
		return nil, errors.New("session secret is required")
	}

	p, err := parsePages()
	if err != nil {
		return nil, err
	}

	s := &Server{
		auth:  auth,
		log:   log.With("module", "web"),
		pages: p,
	}

	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog())
	r.Use(sessions.Sessions(SessionCookieName, store))

	s.setupRoutes(r)
	s.engine = r
	return s, nil
}

// Handler exposes the router for http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) setupRoutes(r *gin.Engine) {
	r.GET("/health", handleHealth)

	r.GET("/", s.home)
	r.GET("/signup", s.signupForm)
	r.POST("/signup", s.signup)
	r.GET("/login", s.loginForm)
	r.POST("/login", s.login)
	r.GET("/logout", s.logout)
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
