package store

import (
	"errors" // Error matching
	"time"   // Default entry date

	"github.com/Sbonga74/sg-bank-web-app/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // GORM ORM library
)

// Ledger persists transactions and computes balances and summaries.
// Balances are never stored; every read folds the user's rows on demand with
// decimal arithmetic so fractional cents never drift.
type Ledger struct {
	db *gorm.DB
}

// NewLedger returns a ledger backed by db.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// MonthlySummary holds the deposit and withdraw totals of one calendar month.
type MonthlySummary struct {
	Deposits  decimal.Decimal // Sum of deposits in the month
	Withdraws decimal.Decimal // Sum of withdrawals in the month
}

// AddEntry validates and persists one transaction, returning its id.
// The amount arrives as the raw form string and must parse to a strictly
// positive decimal. An empty date defaults to today (server-local clock).
func (l *Ledger) AddEntry(userID uint, txType domain.TransactionType, amount, description, date string) (uint, error) {
	amt, err := decimal.NewFromString(amount)
	if err != nil || !amt.IsPositive() {
		return 0, ErrInvalidAmount
	}
	if !txType.Valid() {
		return 0, ErrInvalidType
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	tx := domain.Transaction{
		UserID:      userID,      // Owning user
		Type:        txType,      // deposit or withdraw
		Amount:      amt,         // Validated positive amount
		Description: description, // Optional note
		Date:        date,        // YYYY-MM-DD
	}
	if err := l.db.Create(&tx).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"type":    txType,
			"amount":  amt.String(),
			"error":   err.Error(),
		}).Error("Transaction create failed")
		return 0, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"tx_id":   tx.ID,
		"type":    txType,
		"amount":  amt.String(),
		"date":    date,
	}).Info("Transaction added")
	return tx.ID, nil
}

// DeleteEntry removes a transaction. Only the owning user may delete it;
// deletion is immediate and irreversible.
func (l *Ledger) DeleteEntry(userID, txID uint) error {
	var tx domain.Transaction
	if err := l.db.First(&tx, txID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if tx.UserID != userID {
		return ErrNotOwner
	}
	if err := l.db.Delete(&tx).Error; err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"tx_id":   txID,
	}).Info("Transaction deleted")
	return nil
}

// Balance returns sum(deposits) - sum(withdrawals) across all of the user's
// transactions, zero when there are none.
func (l *Ledger) Balance(userID uint) (decimal.Decimal, error) {
	var txs []domain.Transaction
	if err := l.db.Select("type", "amount").Where("user_id = ?", userID).Find(&txs).Error; err != nil {
		return decimal.Zero, err
	}
	balance := decimal.Zero
	for _, tx := range txs {
		if tx.Type == domain.Deposit {
			balance = balance.Add(tx.Amount)
		} else {
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance, nil
}

// Recent returns up to limit transactions, most recently created first.
func (l *Ledger) Recent(userID uint, limit int) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := l.db.Where("user_id = ?", userID).
		Order("id desc").
		Limit(limit).
		Find(&txs).Error
	return txs, err
}

// Summary returns the deposit and withdraw totals for the given "YYYY-MM"
// month, both zero when no transactions fall inside it.
func (l *Ledger) Summary(userID uint, yearMonth string) (MonthlySummary, error) {
	sum := MonthlySummary{Deposits: decimal.Zero, Withdraws: decimal.Zero}
	var txs []domain.Transaction
	err := l.db.Select("type", "amount").
		Where("user_id = ? AND date LIKE ?", userID, yearMonth+"%").
		Find(&txs).Error
	if err != nil {
		return sum, err
	}
	for _, tx := range txs {
		if tx.Type == domain.Deposit {
			sum.Deposits = sum.Deposits.Add(tx.Amount)
		} else {
			sum.Withdraws = sum.Withdraws.Add(tx.Amount)
		}
	}
	return sum, nil
}

// All returns every transaction of the user in insertion order.
func (l *Ledger) All(userID uint) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := l.db.Where("user_id = ?", userID).Find(&txs).Error
	return txs, err
}
