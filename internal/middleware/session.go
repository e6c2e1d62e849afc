package middleware

import (
	"net/http" // HTTP status codes
	"time"     // Cookie lifetime

	"github.com/Sbonga74/sg-bank-web-app/internal/session" // Session store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CookieName is the browser cookie carrying the opaque session token.
const CookieName = "session"

// Context keys set by the Session middleware.
const (
	TokenKey = "sessionToken" // The request's session token
	UserKey  = "userID"       // The authenticated user id, if any
)

// Session issues the session cookie on first contact and resolves the token
// to a user id on every request. The token exists even while anonymous so
// flash messages work on the login and register pages.
func Session(store session.Store, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			token, err = session.NewToken()
			if err != nil {
				// Without a token nothing downstream can work
				logrus.WithField("error", err.Error()).Error("Session token generation failed")
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.SetCookie(CookieName, token, int(ttl/time.Second), "/", "", secure, true)
		}
		c.Set(TokenKey, token) // Store token in context
		// Resolve the token to a user; anonymous requests just carry no user
		if userID, ok, err := store.UserID(c.Request.Context(), token); err != nil {
			logrus.WithField("error", err.Error()).Error("Session lookup failed")
		} else if ok {
			c.Set(UserKey, userID) // Store userID in context
		}
		c.Next() // Proceed to the next handler
	}
}

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(UserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next() // Proceed to the next handler
	}
}
