// Package model defines the normalized ledger records and derived report rows.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TxType is the validated transaction direction.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType normalizes a raw type string. Matching is case-insensitive;
// anything other than income/expense is rejected.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// Transaction is one normalized ledger row. Amount is the unsigned
// magnitude; the sign lives in Type.
type Transaction struct {
	Date         time.Time
	Type         TxType
	Amount       decimal.Decimal
	Category     string
	Counterparty string
	Notes        string
}

// SignedAmount maps the enumerated type onto a sign: income positive,
// expense negative.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Invoice is one normalized invoice row. PaidDate is nil for unpaid
// invoices (blank or unparseable paid_date).
type Invoice struct {
	ID        string
	Client    string
	IssueDate time.Time
	DueDate   time.Time
	PaidDate  *time.Time
	Amount    decimal.Decimal
}
