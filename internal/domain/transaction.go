package domain

import "github.com/shopspring/decimal"

// TransactionType enumerates the two ledger entry kinds.
type TransactionType string

const (
	Deposit  TransactionType = "deposit"  // Money in
	Withdraw TransactionType = "withdraw" // Money out
)

// Valid reports whether t is one of the two known types.
func (t TransactionType) Valid() bool {
	return t == Deposit || t == Withdraw
}

// Transaction Model
type Transaction struct {
	ID          uint            `gorm:"primaryKey"`                  // Primary key
	UserID      uint            `gorm:"index;not null"`              // Foreign key to the owning User
	Type        TransactionType `gorm:"size:10;not null"`            // deposit or withdraw
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"` // Positive amount, exact decimal
	Description string          `gorm:"size:200"`                    // Optional free-text note
	Date        string          `gorm:"size:10;not null"`            // Calendar date, YYYY-MM-DD
	CreatedAt   int64           `gorm:"autoCreateTime:milli"`        // Timestamp of creation in milliseconds
}
