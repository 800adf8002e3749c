package pipeline

import (
	"context"

	"github.com/flashcheeks/banking-api/internal/model"
	"github.com/flashcheeks/banking-api/internal/store/repository"
)

// reconcile upserts parsed transactions into the store in file order.
// Re-importing an unchanged file is a no-op at the data level: every row
// matches its existing counterpart on the natural key and is rewritten
// to identical values. Rows are processed sequentially because same-day
// duplicate rows within one file share a natural key; when a bank
// re-orders such duplicates between imports, Order is reassigned to
// whichever row matches first (known limitation).
func reconcile(ctx context.Context, txns *repository.TransactionRepo, parsed []model.Transaction) ([]model.Transaction, error) {
	saved := make([]model.Transaction, 0, len(parsed))
	for _, t := range parsed {
		s, err := txns.Upsert(ctx, t)
		if err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, nil
}
