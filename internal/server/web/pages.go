package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/dmitrijs2005/neoinbox/internal/server/services"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageHome   = "home"
	pageSignup = "signup"
	pageLogin  = "login"
)

// pages maps a page name to its template set. Each set is the base layout
// plus one page defining "content".
type pages map[string]*template.Template

func parsePages() (pages, error) {
	p := pages{}
	for _, name := range []string{pageHome, pageSignup, pageLogin} {
		t, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		p[name] = t
	}
	return p, nil
}

// pageData is what every template receives. Name and Email echo the
// submitted form; the password is never echoed.
type pageData struct {
	Title string
	User  *services.AuthenticatedUser
	Error string
	Name  string
	Email string
}

func (s *Server) render(c *gin.Context, code int, page string, data pageData) {
	if data.User == nil {
		data.User = currentUser(c)
	}
	c.Render(code, render.HTML{Template: s.pages[page], Name: "base", Data: data})
}
