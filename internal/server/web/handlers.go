package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/neoinbox/internal/common"
	"github.com/dmitrijs2005/neoinbox/internal/server/services"
)

// Messages shown on the forms.
const (
	msgSignupInvalid      = "Please enter a name, a valid email and a password of at most 72 bytes."
	msgEmailTaken         = "email is already registered"
	msgLoginInvalid       = "Please enter your email and password."
	msgInvalidCredentials = "Invalid email or password."
	msgServerError        = "Something went wrong. Please try again later."
)

func (s *Server) home(c *gin.Context) {
	s.render(c, http.StatusOK, pageHome, pageData{Title: "NeoInbox"})
}

func (s *Server) signupForm(c *gin.Context) {
	s.render(c, http.StatusOK, pageSignup, pageData{Title: "Sign Up"})
}

func (s *Server) signup(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBind(&in); err != nil {
		s.render(c, http.StatusBadRequest, pageSignup, pageData{
			Title: "Sign Up", Error: msgSignupInvalid, Name: in.Name, Email: in.Email,
		})
		return
	}

	_, err := s.auth.Register(c.Request.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		data := pageData{Title: "Sign Up", Name: in.Name, Email: in.Email}
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, common.ErrorEmailTaken):
			code, data.Error = http.StatusConflict, msgEmailTaken
		case errors.Is(err, common.ErrorValidation):
			code, data.Error = http.StatusBadRequest, msgSignupInvalid
		default:
			data.Error = msgServerError
		}
		s.render(c, code, pageSignup, data)
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) loginForm(c *gin.Context) {
	s.render(c, http.StatusOK, pageLogin, pageData{Title: "Login"})
}

func (s *Server) login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBind(&in); err != nil {
		s.render(c, http.StatusBadRequest, pageLogin, pageData{
			Title: "Login", Error: msgLoginInvalid, Email: in.Email,
		})
		return
	}

	user, err := s.auth.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		data := pageData{Title: "Login", Email: in.Email}
		code := http.StatusInternalServerError
		if errors.Is(err, common.ErrorInvalidCredentials) {
			code, data.Error = http.StatusUnauthorized, msgInvalidCredentials
		} else {
			data.Error = msgServerError
		}
		s.render(c, code, pageLogin, data)
		return
	}

	if err := saveUser(c, user); err != nil {
		s.log.Error(c.Request.Context(), "save session", "error", err)
		s.render(c, http.StatusInternalServerError, pageLogin, pageData{Title: "Login", Error: msgServerError})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) logout(c *gin.Context) {
	if err := clearSession(c); err != nil {
		s.log.Error(c.Request.Context(), "clear session", "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}
