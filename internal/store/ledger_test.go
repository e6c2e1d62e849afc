package store

import (
	"errors"
	"testing"
	"time"

	"github.com/Sbonga74/sg-bank-web-app/internal/domain"

	"github.com/shopspring/decimal"
)

// seedUser registers a user and returns its id.
func seedUser(t *testing.T, creds *Credentials, name string) uint {
	t.Helper()
	id, err := creds.Register(name, "pw")
	if err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return id
}

func TestAddEntryAndBalanceExact(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	alice := seedUser(t, NewCredentials(db), "alice")

	// Amounts chosen to drift under binary floating point
	entries := []struct {
		typ    domain.TransactionType
		amount string
	}{
		{domain.Deposit, "0.10"},
		{domain.Deposit, "0.20"},
		{domain.Deposit, "100.45"},
		{domain.Withdraw, "0.05"},
		{domain.Withdraw, "50.30"},
	}
	for _, e := range entries {
		if _, err := ledger.AddEntry(alice, e.typ, e.amount, "", "2024-03-01"); err != nil {
			t.Fatalf("add %s %s: %v", e.typ, e.amount, err)
		}
	}

	balance, err := ledger.Balance(alice)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	want := decimal.RequireFromString("50.40")
	if !balance.Equal(want) {
		t.Fatalf("balance = %s, want %s", balance, want)
	}
}

func TestBalanceEmptyLedgerIsZero(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	alice := seedUser(t, NewCredentials(db), "alice")

	balance, err := ledger.Balance(alice)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !balance.IsZero() {
		t.Fatalf("balance = %s, want 0", balance)
	}
}

func TestAddEntryRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	alice := seedUser(t, NewCredentials(db), "alice")

	cases := []struct {
		name   string
		typ    domain.TransactionType
		amount string
		want   error
	}{
		{"negative amount", domain.Deposit, "-5", ErrInvalidAmount},
		{"zero amount", domain.Deposit, "0", ErrInvalidAmount},
		{"non-numeric amount", domain.Withdraw, "abc", ErrInvalidAmount},
		{"empty amount", domain.Withdraw, "", ErrInvalidAmount},
		{"unknown type", domain.TransactionType("transfer"), "10", ErrInvalidType},
	}
	for _, tc := range cases {
		if _, err := ledger.AddEntry(alice, tc.typ, tc.amount, "", ""); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}

	// The ledger must be unchanged after every rejection
	if n := countTransactions(t, db); n != 0 {
		t.Fatalf("expected 0 rows after rejected entries, got %d", n)
	}
}

func TestAddEntryDefaultsDateToToday(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	alice := seedUser(t, NewCredentials(db), "alice")

	id, err := ledger.AddEntry(alice, domain.Deposit, "10", "no date given", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	var tx domain.Transaction
	if err := db.First(&tx, id).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := time.Now().Format("2006-01-02"); tx.Date != want {
		t.Fatalf("date = %q, want %q", tx.Date, want)
	}
}

func TestDeleteEntryOwnership(t *testing.T) {
	db := newTestDB(t)
	creds := NewCredentials(db)
	ledger := NewLedger(db)
	alice := seedUser(t, creds, "alice")
	mallory := seedUser(t, creds, "mallory")

	txID, err := ledger.AddEntry(alice, domain.Deposit, "25", "", "2024-02-02")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// A different user may not delete it and the row survives
	if err := ledger.DeleteEntry(mallory, txID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("delete by non-owner: got %v, want ErrNotOwner", err)
	}
	all, err := ledger.All(alice)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 || all[0].ID != txID {
		t.Fatalf("entry should still appear in the owner's listing")
	}

	// Missing ids report not found
	if err := ledger.DeleteEntry(alice, txID+99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing: got %v, want ErrNotFound", err)
	}

	// The owner may delete, and the deletion sticks
	if err := ledger.DeleteEntry(alice, txID); err != nil {
		t.Fatalf("delete by owner: %v", err)
	}
	if n := countTransactions(t, db); n != 0 {
		t.Fatalf("expected empty ledger after delete, got %d rows", n)
	}
}

func TestRecentOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	alice := seedUser(t, NewCredentials(db), "alice")

	var ids []uint
	for i := 0; i < 12; i++ {
		id, err := ledger.AddEntry(alice, domain.Deposit, "1", "", "2024-01-01")
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		ids = append(ids, id)
	}

	recent, err := ledger.Recent(alice, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 10 {
		t.Fatalf("recent returned %d entries, want 10", len(recent))
	}
	// Most recently created first, ids strictly descending
	for i, tx := range recent {
		if want := ids[len(ids)-1-i]; tx.ID != want {
			t.Fatalf("recent[%d].ID = %d, want %d", i, tx.ID, want)
		}
	}

	// Recent must be a subsequence of All
	all, err := ledger.All(alice)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	seen := make(map[uint]bool, len(all))
	for _, tx := range all {
		seen[tx.ID] = true
	}
	for _, tx := range recent {
		if !seen[tx.ID] {
			t.Fatalf("recent entry %d missing from full listing", tx.ID)
		}
	}
}

func TestSummaryFiltersByMonth(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	alice := seedUser(t, NewCredentials(db), "alice")

	adds := []struct {
		typ    domain.TransactionType
		amount string
		date   string
	}{
		{domain.Deposit, "100", "2024-01-05"},
		{domain.Withdraw, "30", "2024-01-10"},
		{domain.Deposit, "999", "2024-02-01"}, // outside the month
		{domain.Withdraw, "1", "2023-12-31"},  // outside the month
	}
	for _, a := range adds {
		if _, err := ledger.AddEntry(alice, a.typ, a.amount, "", a.date); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	sum, err := ledger.Summary(alice, "2024-01")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !sum.Deposits.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("january deposits = %s, want 100", sum.Deposits)
	}
	if !sum.Withdraws.Equal(decimal.RequireFromString("30")) {
		t.Fatalf("january withdraws = %s, want 30", sum.Withdraws)
	}

	// A month with no transactions sums to zero on both sides
	empty, err := ledger.Summary(alice, "2022-07")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !empty.Deposits.IsZero() || !empty.Withdraws.IsZero() {
		t.Fatalf("empty month summary = {%s, %s}, want {0, 0}", empty.Deposits, empty.Withdraws)
	}
}

func TestLedgerIsolatedPerUser(t *testing.T) {
	db := newTestDB(t)
	creds := NewCredentials(db)
	ledger := NewLedger(db)
	alice := seedUser(t, creds, "alice")
	bob := seedUser(t, creds, "bob")

	if _, err := ledger.AddEntry(alice, domain.Deposit, "100", "", "2024-01-05"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := ledger.AddEntry(bob, domain.Deposit, "7", "", "2024-01-05"); err != nil {
		t.Fatalf("add: %v", err)
	}

	balance, err := ledger.Balance(alice)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !balance.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("alice balance = %s, want 100 (bob's entries must not leak)", balance)
	}
	all, err := ledger.All(bob)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("bob listing has %d entries, want 1", len(all))
	}
}

func TestDepositWithdrawScenario(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)
	alice := seedUser(t, NewCredentials(db), "alice")

	if _, err := ledger.AddEntry(alice, domain.Deposit, "100", "salary", "2024-01-05"); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := ledger.AddEntry(alice, domain.Withdraw, "30", "groceries", "2024-01-10"); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	balance, err := ledger.Balance(alice)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !balance.Equal(decimal.RequireFromString("70")) {
		t.Fatalf("balance = %s, want 70", balance)
	}

	sum, err := ledger.Summary(alice, "2024-01")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !sum.Deposits.Equal(decimal.RequireFromString("100")) || !sum.Withdraws.Equal(decimal.RequireFromString("30")) {
		t.Fatalf("summary = {%s, %s}, want {100, 30}", sum.Deposits, sum.Withdraws)
	}

	// A rejected entry leaves the balance untouched
	if _, err := ledger.AddEntry(alice, domain.Deposit, "-5", "", ""); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative deposit: got %v, want ErrInvalidAmount", err)
	}
	balance, err = ledger.Balance(alice)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !balance.Equal(decimal.RequireFromString("70")) {
		t.Fatalf("balance after rejected entry = %s, want 70", balance)
	}
}
