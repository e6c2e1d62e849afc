package api

import (
	"errors"   // Sentinel matching
	"net/http" // HTTP status codes

	"github.com/Sbonga74/sg-bank-web-app/internal/session" // Session store
	"github.com/Sbonga74/sg-bank-web-app/internal/store"   // Credential store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// IndexHandler routes the bare domain to the right page
func IndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUser(c); ok {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	}
}

// RegisterFormHandler renders the registration form
func RegisterFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, "register.html", nil)
	}
}

// RegisterHandler creates a new user from the submitted form
func RegisterHandler(creds *store.Credentials, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")
		_, err := creds.Register(username, password)
		switch {
		case errors.Is(err, store.ErrInvalidInput):
			flashRedirect(c, sessions, "Please fill both fields.", "/register")
		case errors.Is(err, store.ErrAlreadyExists):
			flashRedirect(c, sessions, "Username already taken.", "/register")
		case err != nil:
			logrus.WithField("error", err.Error()).Error("Registration failed")
			flashRedirect(c, sessions, "Registration failed, please try again.", "/register")
		default:
			flashRedirect(c, sessions, "Registration successful — you can log in now.", "/login")
		}
	}
}

// LoginFormHandler renders the login form
func LoginFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, "login.html", nil)
	}
}

// LoginHandler verifies credentials and starts the session
func LoginHandler(creds *store.Credentials, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")
		userID, ok := creds.Verify(username, password)
		if !ok {
			// Unknown user and wrong password read the same to the client
			flashRedirect(c, sessions, "Invalid credentials.", "/login")
			return
		}
		if err := sessions.Bind(c.Request.Context(), currentToken(c), userID); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Session bind failed")
			flashRedirect(c, sessions, "Login failed, please try again.", "/login")
			return
		}
		logrus.WithField("user_id", userID).Info("User logged in")
		flashRedirect(c, sessions, "Logged in successfully.", "/dashboard")
	}
}

// LogoutHandler ends the session immediately
func LogoutHandler(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.Clear(c.Request.Context(), currentToken(c)); err != nil {
			logrus.WithField("error", err.Error()).Error("Session clear failed")
		}
		flashRedirect(c, sessions, "Logged out.", "/login")
	}
}
