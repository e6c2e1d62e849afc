package api

import (
	"net/http" // HTTP status codes

	"github.com/Sbonga74/sg-bank-web-app/internal/middleware" // Context keys
	"github.com/Sbonga74/sg-bank-web-app/internal/session"    // Session store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// currentToken returns the request's session token set by the middleware.
func currentToken(c *gin.Context) string {
	token, _ := c.Get(middleware.TokenKey)
	s, _ := token.(string)
	return s
}

// currentUser returns the authenticated user id, if any.
func currentUser(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.UserKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// flashRedirect stores a single-use status message and redirects.
func flashRedirect(c *gin.Context, sessions session.Store, msg, location string) {
	if err := sessions.SetFlash(c.Request.Context(), currentToken(c), msg); err != nil {
		logrus.WithField("error", err.Error()).Error("Flash store failed")
	}
	c.Redirect(http.StatusFound, location)
}

// render draws a template with the pending flash message, if any, merged in.
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	sessions := c.MustGet(sessionsKey).(session.Store)
	msg, err := sessions.PopFlash(c.Request.Context(), currentToken(c))
	if err != nil {
		logrus.WithField("error", err.Error()).Error("Flash read failed")
	}
	data["Flash"] = msg
	c.HTML(http.StatusOK, name, data)
}
