package api

import (
	"net/http" // HTTP status codes
	"time"     // Current month prefix

	"github.com/Sbonga74/sg-bank-web-app/internal/store" // Credential store and ledger

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// recentLimit caps the dashboard's transaction list.
const recentLimit = 10

// DashboardHandler shows the balance, the latest transactions and the
// current month's totals
func DashboardHandler(creds *store.Credentials, ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := currentUser(c)
		user, err := creds.ByID(userID)
		if err != nil {
			// Session points at a user that no longer resolves; start over
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Dashboard user lookup failed")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		balance, err := ledger.Balance(userID)
		if err != nil {
			logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Error("Balance query failed")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		recent, err := ledger.Recent(userID, recentLimit)
		if err != nil {
			logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Error("Recent query failed")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		month := time.Now().Format("2006-01")
		summary, err := ledger.Summary(userID, month)
		if err != nil {
			logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Error("Summary query failed")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		render(c, "dashboard.html", gin.H{
			"Username":         user.Username,
			"Balance":          balance,
			"Recent":           recent,
			"MonthlyDeposits":  summary.Deposits,
			"MonthlyWithdraws": summary.Withdraws,
			"Month":            month,
		})
	}
}

// TransactionsHandler lists every transaction of the user
func TransactionsHandler(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := currentUser(c)
		txs, err := ledger.All(userID)
		if err != nil {
			logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Error("Transactions query failed")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		render(c, "transactions.html", gin.H{"Transactions": txs})
	}
}
