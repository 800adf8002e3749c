package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashcheeks/banking-api/internal/model"
)

func sampleTxn(t *testing.T, order int) model.Transaction {
	t.Helper()
	return model.Transaction{
		Account: "current",
		Order:   order,
		Date:    "2024-03-08",
		Type:    "POS",
		Desc:    "TESCO STORES 3297",
		Amount:  dec(t, "-54.20"),
		Balance: dec(t, "3045.80"),
	}
}

func countTransactions(t *testing.T, r *TransactionRepo) int {
	t.Helper()
	var n int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&n))
	return n
}

func TestTransactionUpsertInsertsOnce(t *testing.T) {
	r := NewTransactionRepo(newTestDB(t))

	first, err := r.Upsert(ctxb(), sampleTxn(t, 0))
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// Same natural key with a different order matches the existing row
	// and overwrites it in place.
	second, err := r.Upsert(ctxb(), sampleTxn(t, 5))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Order)
	assert.Equal(t, 1, countTransactions(t, r))
}

func TestTransactionUpsertDistinctKeys(t *testing.T) {
	r := NewTransactionRepo(newTestDB(t))

	a := sampleTxn(t, 0)
	b := sampleTxn(t, 1)
	b.Amount = dec(t, "-12.00")

	saved1, err := r.Upsert(ctxb(), a)
	require.NoError(t, err)
	saved2, err := r.Upsert(ctxb(), b)
	require.NoError(t, err)

	assert.NotEqual(t, saved1.ID, saved2.ID)
	assert.Equal(t, 2, countTransactions(t, r))
}

func TestTransactionFindByKey(t *testing.T) {
	r := NewTransactionRepo(newTestDB(t))

	saved, err := r.Upsert(ctxb(), sampleTxn(t, 0))
	require.NoError(t, err)

	probe := sampleTxn(t, 99) // order differs; key match must ignore it
	found, err := r.FindByKey(ctxb(), probe.Key())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, saved.ID, found.ID)

	probe.Desc = "SOMETHING ELSE"
	missing, err := r.FindByKey(ctxb(), probe.Key())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListRangeHalfOpen(t *testing.T) {
	r := NewTransactionRepo(newTestDB(t))

	dates := []string{"2024-03-05", "2024-03-06", "2024-04-05", "2024-04-06"}
	for i, date := range dates {
		txn := sampleTxn(t, i)
		txn.Date = date
		_, err := r.Upsert(ctxb(), txn)
		require.NoError(t, err)
	}

	got, err := r.ListRange(ctxb(), "current", "2024-03-06", "2024-04-06")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-03-06", got[0].Date, "from bound is inclusive")
	assert.Equal(t, "2024-04-05", got[1].Date, "to bound is exclusive")
}

func TestListRangeOrdersByOrder(t *testing.T) {
	r := NewTransactionRepo(newTestDB(t))

	descs := map[int]string{0: "ACME PAYROLL", 1: "TESCO STORES 3297", 2: "BRITISH GAS"}
	for _, order := range []int{2, 0, 1} {
		txn := sampleTxn(t, order)
		txn.Desc = descs[order]
		_, err := r.Upsert(ctxb(), txn)
		require.NoError(t, err)
	}

	got, err := r.ListRange(ctxb(), "current", "2024-03-06", "2024-04-06")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, txn := range got {
		assert.Equal(t, i, txn.Order)
	}
}

func TestFindForExpansion(t *testing.T) {
	r := NewTransactionRepo(newTestDB(t))

	saved, err := r.Upsert(ctxb(), sampleTxn(t, 0))
	require.NoError(t, err)

	found, err := r.FindForExpansion(ctxb(), "2024-03-08", "TESCO STORES 3297", dec(t, "-54.20"), dec(t, "3045.80"))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, saved.ID, found.ID)

	missing, err := r.FindForExpansion(ctxb(), "2024-03-08", "TESCO STORES 3297", dec(t, "-99.99"), dec(t, "3045.80"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}
