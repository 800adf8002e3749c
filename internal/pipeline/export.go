package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/flashcheeks/banking-api/internal/model"
	"github.com/flashcheeks/banking-api/internal/statement"
	"github.com/flashcheeks/banking-api/internal/store/repository"
)

// Export fetches the stored statement for account/period and enriches
// each transaction with tag names and sub-splits. Read-only. An empty
// result set is NotFound, never an empty statement.
func (p *Pipeline) Export(ctx context.Context, account, period string) ([]model.StatementEntry, error) {
	from, to, err := statement.PeriodRange(period)
	if err != nil {
		return nil, err
	}

	p.Log.Info().Str("account", account).Str("period", period).
		Str("from", from).Str("to", to).Msg("exporting statement")

	db, err := p.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	txns := repository.NewTransactionRepo(db)
	tags := repository.NewTagRepo(db)
	descs := repository.NewTagDescriptionRepo(db)
	exps := repository.NewExpansionRepo(db)

	list, err := txns.ListRange(ctx, account, from, to)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, &model.NotFoundError{
			Resource: fmt.Sprintf("transactions for %s period %s", account, period),
		}
	}

	// Per-transaction enrichment lookups touch disjoint rows, so they
	// fan out; the first failure cancels the group and the export.
	entries := make([]model.StatementEntry, len(list))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range list {
		i, t := i, t
		g.Go(func() error {
			entry, err := enrich(gctx, tags, descs, exps, t)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.Log.Info().Int("rows", len(entries)).Msg("export complete")
	return entries, nil
}

// enrich joins one transaction to its tag names (by exact description
// match) and decoded sub-splits. Tag order follows fetch order and is
// not semantically significant.
func enrich(ctx context.Context, tags *repository.TagRepo, descs *repository.TagDescriptionRepo, exps *repository.ExpansionRepo, t model.Transaction) (model.StatementEntry, error) {
	names := []string{}
	bridges, err := descs.ListByDesc(ctx, t.Desc)
	if err != nil {
		return model.StatementEntry{}, err
	}
	for _, bridge := range bridges {
		tag, err := tags.Get(ctx, bridge.TagID)
		if err != nil {
			return model.StatementEntry{}, err
		}
		if tag == nil {
			return model.StatementEntry{}, &model.MissingReference{Kind: "tag", Key: bridge.TagID}
		}
		names = append(names, tag.Name)
	}

	splits, err := exps.ListForTransaction(ctx, t.ID)
	if err != nil {
		return model.StatementEntry{}, err
	}
	var expanded []model.Expansion
	for _, split := range splits {
		expanded = append(expanded, model.Expansion{
			Amount: split.Amount,
			Tags:   model.SplitTags(split.Tags),
		})
	}

	return model.StatementEntry{
		Order:    t.Order,
		Date:     t.Date,
		Type:     t.Type,
		Desc:     t.Desc,
		Amount:   t.Amount,
		Balance:  t.Balance,
		Tags:     names,
		Expanded: expanded,
	}, nil
}
