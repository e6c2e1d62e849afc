package api

import (
	"errors"  // Sentinel matching
	"strconv" // Path id parsing

	"github.com/Sbonga74/sg-bank-web-app/internal/domain"  // Transaction types
	"github.com/Sbonga74/sg-bank-web-app/internal/session" // Session store
	"github.com/Sbonga74/sg-bank-web-app/internal/store"   // Ledger

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateTransactionHandler records one deposit or withdrawal from the form
func CreateTransactionHandler(ledger *store.Ledger, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := currentUser(c)
		txType := domain.TransactionType(c.PostForm("type"))
		amount := c.PostForm("amount")
		description := c.PostForm("description")
		date := c.PostForm("date") // Empty means today

		_, err := ledger.AddEntry(userID, txType, amount, description, date)
		switch {
		case errors.Is(err, store.ErrInvalidAmount):
			flashRedirect(c, sessions, "Amount must be a number greater than zero.", "/dashboard")
		case errors.Is(err, store.ErrInvalidType):
			flashRedirect(c, sessions, "Invalid transaction type.", "/dashboard")
		case err != nil:
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Add transaction failed")
			flashRedirect(c, sessions, "Could not save the transaction.", "/dashboard")
		default:
			flashRedirect(c, sessions, "Transaction added.", "/dashboard")
		}
	}
}

// DeleteTransactionHandler deletes one of the user's own transactions
func DeleteTransactionHandler(ledger *store.Ledger, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := currentUser(c)
		txID, err := strconv.Atoi(c.Param("id"))
		if err != nil || txID <= 0 {
			flashRedirect(c, sessions, "Transaction not found or not allowed.", "/dashboard")
			return
		}
		err = ledger.DeleteEntry(userID, uint(txID))
		switch {
		case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrNotOwner):
			// Deliberately the same message either way
			flashRedirect(c, sessions, "Transaction not found or not allowed.", "/dashboard")
		case err != nil:
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"tx_id":   txID,
				"error":   err.Error(),
			}).Error("Delete transaction failed")
			flashRedirect(c, sessions, "Could not delete the transaction.", "/dashboard")
		default:
			flashRedirect(c, sessions, "Transaction deleted.", "/dashboard")
		}
	}
}
