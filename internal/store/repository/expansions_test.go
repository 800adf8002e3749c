package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashcheeks/banking-api/internal/model"
)

func TestExpansionUpsertByKey(t *testing.T) {
	db := newTestDB(t)
	txns := NewTransactionRepo(db)
	exps := NewExpansionRepo(db)

	parent, err := txns.Upsert(ctxb(), sampleTxn(t, 0))
	require.NoError(t, err)

	split := model.ExpandedTransaction{
		TransactionID: parent.ID,
		Amount:        dec(t, "-38.70"),
		Tags:          "groceries",
	}

	first, err := exps.Upsert(ctxb(), split)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := exps.Upsert(ctxb(), split)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// A different amount is a different natural key.
	split.Amount = dec(t, "-15.50")
	split.Tags = "household"
	_, err = exps.Upsert(ctxb(), split)
	require.NoError(t, err)

	rows, err := exps.ListForTransaction(ctxb(), parent.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestListForTransactionEmpty(t *testing.T) {
	exps := NewExpansionRepo(newTestDB(t))

	rows, err := exps.ListForTransaction(ctxb(), "no-such-id")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
