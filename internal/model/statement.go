package model

import (
	"github.com/shopspring/decimal"
)

// StatementEntry is one enriched transaction in an exported statement.
// Tags is always present (empty when nothing matched); Expanded is
// omitted entirely when the transaction has no splits, so presence of
// the key signals "this transaction is split".
type StatementEntry struct {
	Order    int             `json:"order"`
	Date     string          `json:"date"`
	Type     string          `json:"type"`
	Desc     string          `json:"desc"`
	Amount   decimal.Decimal `json:"amount"`
	Balance  decimal.Decimal `json:"balance"`
	Tags     []string        `json:"tags"`
	Expanded []Expansion     `json:"expanded,omitempty"`
}

// Expansion is one decoded sub-split of an exported transaction.
type Expansion struct {
	Amount decimal.Decimal `json:"amount"`
	Tags   []string        `json:"tags"`
}
