package pipeline

import (
	"context"

	"github.com/flashcheeks/banking-api/internal/model"
	"github.com/flashcheeks/banking-api/internal/statement"
	"github.com/flashcheeks/banking-api/internal/store/repository"
)

// Import parses one statement file and reconciles it into the store.
// No migration side effects; returns the persisted rows in file order.
func (p *Pipeline) Import(ctx context.Context, account, period string) ([]model.Transaction, error) {
	p.Log.Info().Str("account", account).Str("period", period).Msg("importing statement")

	parsed, err := statement.Load(p.DataRoot, account, period)
	if err != nil {
		return nil, err
	}

	db, err := p.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	saved, err := reconcile(ctx, repository.NewTransactionRepo(db), parsed)
	if err != nil {
		return nil, err
	}

	p.Log.Info().Int("rows", len(saved)).Msg("import complete")
	return saved, nil
}
