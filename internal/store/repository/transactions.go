package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flashcheeks/banking-api/internal/model"
)

// Amounts are persisted as fixed two-decimal strings so that natural-key
// equality in SQL is exact, with no float affinity surprises.

// TransactionRepo handles statement transactions.
type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

const transactionColumns = `id, account, "order", date, type, "desc", amount, balance`

// FindByKey returns the first transaction matching the natural key, or
// nil when none match. Order is not part of the match.
func (r *TransactionRepo) FindByKey(ctx context.Context, key model.TransactionKey) (*model.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT `+transactionColumns+` FROM transactions
	WHERE account = ? AND date = ? AND type = ? AND "desc" = ? AND amount = ? AND balance = ?
	LIMIT 1`,
		key.Account, key.Date, key.Type, key.Desc,
		key.Amount.StringFixed(2), key.Balance.StringFixed(2))

	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &model.StoreError{Op: "transactions.find", Err: err}
	}
	return &t, nil
}

// Upsert overwrites the row matching the natural key (including Order),
// or inserts a new row with a fresh identity. Returns the stored record.
func (r *TransactionRepo) Upsert(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	existing, err := r.FindByKey(ctx, t.Key())
	if err != nil {
		return model.Transaction{}, err
	}

	if existing != nil {
		t.ID = existing.ID
		_, err = r.db.ExecContext(ctx, `
		UPDATE transactions
		SET account = ?, "order" = ?, date = ?, type = ?, "desc" = ?, amount = ?, balance = ?
		WHERE id = ?`,
			t.Account, t.Order, t.Date, t.Type, t.Desc,
			t.Amount.StringFixed(2), t.Balance.StringFixed(2), t.ID)
		if err != nil {
			return model.Transaction{}, &model.StoreError{Op: "transactions.update", Err: err}
		}
		return t, nil
	}

	t.ID = uuid.NewString()
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO transactions(id, account, "order", date, type, "desc", amount, balance)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Account, t.Order, t.Date, t.Type, t.Desc,
		t.Amount.StringFixed(2), t.Balance.StringFixed(2))
	if err != nil {
		return model.Transaction{}, &model.StoreError{Op: "transactions.insert", Err: err}
	}
	return t, nil
}

// ListRange returns an account's transactions with date in [from, to),
// ordered by Order ascending. ISO date strings compare lexicographically.
func (r *TransactionRepo) ListRange(ctx context.Context, account, from, to string) ([]model.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+transactionColumns+` FROM transactions
	WHERE account = ? AND date >= ? AND date < ?
	ORDER BY "order" ASC`, account, from, to)
	if err != nil {
		return nil, &model.StoreError{Op: "transactions.list", Err: err}
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, &model.StoreError{Op: "transactions.list", Err: err}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StoreError{Op: "transactions.list", Err: err}
	}
	return out, nil
}

// FindForExpansion matches a transaction on the seed catalogue's split
// key (date, desc, amount, balance), or nil when none match.
func (r *TransactionRepo) FindForExpansion(ctx context.Context, date, desc string, amount, balance decimal.Decimal) (*model.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT `+transactionColumns+` FROM transactions
	WHERE date = ? AND "desc" = ? AND amount = ? AND balance = ?
	LIMIT 1`, date, desc, amount.StringFixed(2), balance.StringFixed(2))

	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &model.StoreError{Op: "transactions.find", Err: err}
	}
	return &t, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row scanner) (model.Transaction, error) {
	var t model.Transaction
	var amount, balance string
	if err := row.Scan(&t.ID, &t.Account, &t.Order, &t.Date, &t.Type, &t.Desc, &amount, &balance); err != nil {
		return model.Transaction{}, err
	}
	var err error
	if t.Amount, err = decimal.NewFromString(amount); err != nil {
		return model.Transaction{}, err
	}
	if t.Balance, err = decimal.NewFromString(balance); err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}
