package web

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/neoinbox/internal/server/services"
)

const (
	sessionKeyUserID   = "user_id"
	sessionKeyUserName = "user_name"
)

// currentUser reads the identity stored by login, or nil for anonymous
// visitors.
func currentUser(c *gin.Context) *services.AuthenticatedUser {
	session := sessions.Default(c)
	id, ok := session.Get(sessionKeyUserID).(int64)
	if !ok || id == 0 {
		return nil
	}
	name, _ := session.Get(sessionKeyUserName).(string)
	return &services.AuthenticatedUser{ID: id, Name: name}
}

func saveUser(c *gin.Context, u *services.AuthenticatedUser) error {
	session := sessions.Default(c)
	session.Clear()
	session.Set(sessionKeyUserID, u.ID)
	session.Set(sessionKeyUserName, u.Name)
	return session.Save()
}

func clearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}
