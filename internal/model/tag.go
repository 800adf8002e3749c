package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tag is a named category. Created at seed time, read-only afterward.
type Tag struct {
	ID   string
	Name string // unique
}

// TagDescription bridges a free-text transaction description to a Tag.
// Desc must exactly match a Transaction.Desc to enrich it; one
// description may map to several tags via several rows.
type TagDescription struct {
	ID    string
	TagID string
	Desc  string
}

// TagDescriptionKey is the natural key for TagDescription upserts.
type TagDescriptionKey struct {
	TagID string
	Desc  string
}

// Key returns the tag description's natural key.
func (d TagDescription) Key() TagDescriptionKey {
	return TagDescriptionKey{TagID: d.TagID, Desc: d.Desc}
}

// ExpandedTransaction is a sub-split of a parent transaction's amount.
// The split amounts are not required to sum to the parent amount.
type ExpandedTransaction struct {
	ID            string
	TransactionID string
	Amount        decimal.Decimal
	Tags          string // semicolon-separated tag names
}

// ExpandedTransactionKey is the natural key for expansion upserts.
type ExpandedTransactionKey struct {
	TransactionID string
	Amount        decimal.Decimal
	Tags          string
}

// Key returns the expansion's natural key.
func (e ExpandedTransaction) Key() ExpandedTransactionKey {
	return ExpandedTransactionKey{TransactionID: e.TransactionID, Amount: e.Amount, Tags: e.Tags}
}

// JoinTags serializes tag names into the stored blob form.
func JoinTags(names []string) string {
	return strings.Join(names, ";")
}

// SplitTags decodes a stored tag blob back into an ordered name list.
func SplitTags(blob string) []string {
	if blob == "" {
		return []string{}
	}
	return strings.Split(blob, ";")
}
