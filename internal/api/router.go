package api

import (
	"html/template" // Template parsing

	"github.com/Sbonga74/sg-bank-web-app/internal/config"     // Configuration
	"github.com/Sbonga74/sg-bank-web-app/internal/middleware" // Session middleware
	"github.com/Sbonga74/sg-bank-web-app/internal/session"    // Session store
	"github.com/Sbonga74/sg-bank-web-app/internal/store"      // Credential store and ledger
	"github.com/Sbonga74/sg-bank-web-app/web"                 // Embedded templates

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// sessionsKey is the context key the render helper reads the store from.
const sessionsKey = "sessionStore"

// NewRouter builds the gin engine with all routes, templates and middleware
func NewRouter(db *gorm.DB, sessions session.Store, cfg *config.Config) (*gin.Engine, error) {
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, err
	}

	// Install the embedded page templates
	tmpl, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	creds := store.NewCredentials(db) // Credential store
	ledger := store.NewLedger(db)     // Ledger

	// Every request carries a session token; inject the store for rendering
	r.Use(middleware.Session(sessions, cfg.SessionTTL, cfg.IsProd), func(c *gin.Context) {
		c.Set(sessionsKey, sessions)
		c.Next()
	})

	// Public routes
	r.GET("/", IndexHandler())                            // Redirect to dashboard or login
	r.GET("/register", RegisterFormHandler())             // Registration form
	r.POST("/register", RegisterHandler(creds, sessions)) // Create user endpoint
	r.GET("/login", LoginFormHandler())                   // Login form
	r.POST("/login", LoginHandler(creds, sessions))       // Verify and start session
	r.GET("/logout", LogoutHandler(sessions))             // End session

	// Authenticated routes (protected by the session gate)
	authGroup := r.Group("/")
	authGroup.Use(middleware.RequireAuth())
	authGroup.GET("/dashboard", DashboardHandler(creds, ledger))                 // Balance, recent, monthly totals
	authGroup.POST("/transaction", CreateTransactionHandler(ledger, sessions))   // Record deposit/withdraw
	authGroup.POST("/delete_tx/:id", DeleteTransactionHandler(ledger, sessions)) // Delete own transaction
	authGroup.GET("/transactions", TransactionsHandler(ledger))                  // Full listing

	return r, nil
}
