package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flashcheeks/banking-api/internal/model"
)

// ExpansionRepo handles transaction sub-splits.
type ExpansionRepo struct {
	db *sql.DB
}

func NewExpansionRepo(db *sql.DB) *ExpansionRepo { return &ExpansionRepo{db: db} }

// FindByKey returns the row matching (transaction_id, amount, tags), or nil.
func (r *ExpansionRepo) FindByKey(ctx context.Context, key model.ExpandedTransactionKey) (*model.ExpandedTransaction, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, transaction_id, amount, tags FROM expand_transactions
	WHERE transaction_id = ? AND amount = ? AND tags = ?
	LIMIT 1`, key.TransactionID, key.Amount.StringFixed(2), key.Tags)

	e, err := scanExpansion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &model.StoreError{Op: "expand_transactions.find", Err: err}
	}
	return &e, nil
}

// Upsert creates or refreshes a sub-split, matching on its natural key.
func (r *ExpansionRepo) Upsert(ctx context.Context, e model.ExpandedTransaction) (model.ExpandedTransaction, error) {
	existing, err := r.FindByKey(ctx, e.Key())
	if err != nil {
		return model.ExpandedTransaction{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	e.ID = uuid.NewString()
	if _, err := r.db.ExecContext(ctx, `
	INSERT INTO expand_transactions(id, transaction_id, amount, tags)
	VALUES(?, ?, ?, ?)`,
		e.ID, e.TransactionID, e.Amount.StringFixed(2), e.Tags); err != nil {
		return model.ExpandedTransaction{}, &model.StoreError{Op: "expand_transactions.insert", Err: err}
	}
	return e, nil
}

// ListForTransaction returns all sub-splits referencing a transaction.
func (r *ExpansionRepo) ListForTransaction(ctx context.Context, transactionID string) ([]model.ExpandedTransaction, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, transaction_id, amount, tags FROM expand_transactions
	WHERE transaction_id = ?`, transactionID)
	if err != nil {
		return nil, &model.StoreError{Op: "expand_transactions.list", Err: err}
	}
	defer rows.Close()

	var out []model.ExpandedTransaction
	for rows.Next() {
		e, err := scanExpansion(rows)
		if err != nil {
			return nil, &model.StoreError{Op: "expand_transactions.list", Err: err}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StoreError{Op: "expand_transactions.list", Err: err}
	}
	return out, nil
}

func scanExpansion(row scanner) (model.ExpandedTransaction, error) {
	var e model.ExpandedTransaction
	var amount string
	if err := row.Scan(&e.ID, &e.TransactionID, &amount, &e.Tags); err != nil {
		return model.ExpandedTransaction{}, err
	}
	var err error
	if e.Amount, err = decimal.NewFromString(amount); err != nil {
		return model.ExpandedTransaction{}, err
	}
	return e, nil
}
