package model

import (
	"github.com/shopspring/decimal"
)

// Transaction represents one normalized statement row.
//
// Dates are ISO calendar-date strings (YYYY-MM-DD). Statement files carry
// no time zone and the parser performs a pure string reformat, so a civil
// date string is the honest representation end to end.
type Transaction struct {
	ID      string          `json:"-"`
	Account string          `json:"account"`
	Order   int             `json:"order"` // 0-based position within the source file
	Date    string          `json:"date"`
	Type    string          `json:"type"` // bank transaction code (DD, SO, POS, ...)
	Desc    string          `json:"desc"`
	Amount  decimal.Decimal `json:"amount"` // negative = debit
	Balance decimal.Decimal `json:"balance"`
}

// TransactionKey is the natural key used for upsert matching. Order is
// deliberately excluded: re-imports match existing rows on every other
// field and then overwrite Order on whichever row matched.
type TransactionKey struct {
	Account string
	Date    string
	Type    string
	Desc    string
	Amount  decimal.Decimal
	Balance decimal.Decimal
}

// Key returns the transaction's natural key.
func (t Transaction) Key() TransactionKey {
	return TransactionKey{
		Account: t.Account,
		Date:    t.Date,
		Type:    t.Type,
		Desc:    t.Desc,
		Amount:  t.Amount,
		Balance: t.Balance,
	}
}
