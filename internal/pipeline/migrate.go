package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/flashcheeks/banking-api/internal/model"
	"github.com/flashcheeks/banking-api/internal/statement"
	"github.com/flashcheeks/banking-api/internal/store"
	"github.com/flashcheeks/banking-api/internal/store/repository"
)

// MigrateResult reports what a migrate run did.
type MigrateResult struct {
	Migrations []string   `json:"migrations"`
	Seeds      SeedResult `json:"seeds"`
}

// SeedResult is the seed result tree: which statements were loaded and
// how many reference rows each stage wrote.
type SeedResult struct {
	Statements      []StatementSeed `json:"statements"`
	Tags            int             `json:"tags"`
	TagDescriptions int             `json:"tag_descriptions"`
	Expansions      int             `json:"expansions"`
}

// StatementSeed describes one seeded account/period statement.
type StatementSeed struct {
	Account string `json:"account"`
	Period  string `json:"period"`
	Count   int    `json:"count"`
}

// Migrate creates the schema (destructively when force is set) and runs
// the seed stages in order: transactions, tags, tag descriptions,
// expansions. Each stage is all-or-nothing; the first failure aborts
// the remaining stages.
func (p *Pipeline) Migrate(ctx context.Context, force bool) (*MigrateResult, error) {
	db, err := p.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	p.Log.Info().Bool("force", force).Msg("migrating schema")
	if err := store.Migrate(db, force); err != nil {
		return nil, err
	}

	txns := repository.NewTransactionRepo(db)
	tags := repository.NewTagRepo(db)
	descs := repository.NewTagDescriptionRepo(db)
	exps := repository.NewExpansionRepo(db)

	var seeds SeedResult
	if seeds.Statements, err = p.seedStatements(ctx, txns); err != nil {
		return nil, err
	}
	if seeds.Tags, err = p.seedTags(ctx, tags); err != nil {
		return nil, err
	}
	if seeds.TagDescriptions, err = p.seedTagDescriptions(ctx, tags, descs); err != nil {
		return nil, err
	}
	if seeds.Expansions, err = p.seedExpansions(ctx, txns, exps); err != nil {
		return nil, err
	}

	p.Log.Info().
		Int("tags", seeds.Tags).
		Int("tag_descriptions", seeds.TagDescriptions).
		Int("expansions", seeds.Expansions).
		Msg("migration complete")

	return &MigrateResult{Migrations: store.EntityTables, Seeds: seeds}, nil
}

// seedStatements loads and reconciles every catalogued statement file.
// Accounts are processed concurrently (disjoint natural keys); periods
// within one account run sequentially. First failure cancels the group.
func (p *Pipeline) seedStatements(ctx context.Context, txns *repository.TransactionRepo) ([]StatementSeed, error) {
	accounts := make([]string, 0, len(p.Catalogue.Statements))
	for account := range p.Catalogue.Statements {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	perAccount := make([][]StatementSeed, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	for i, account := range accounts {
		i, account := i, account
		g.Go(func() error {
			for _, period := range p.Catalogue.Statements[account] {
				parsed, err := statement.Load(p.DataRoot, account, period)
				if err != nil {
					return err
				}
				saved, err := reconcile(gctx, txns, parsed)
				if err != nil {
					return err
				}
				p.Log.Debug().Str("account", account).Str("period", period).
					Int("rows", len(saved)).Msg("seeded statement")
				perAccount[i] = append(perAccount[i], StatementSeed{
					Account: account,
					Period:  period,
					Count:   len(saved),
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []StatementSeed
	for _, seeds := range perAccount {
		out = append(out, seeds...)
	}
	return out, nil
}

func (p *Pipeline) seedTags(ctx context.Context, tags *repository.TagRepo) (int, error) {
	for _, name := range p.Catalogue.Tags {
		if _, err := tags.Upsert(ctx, model.Tag{Name: name}); err != nil {
			return 0, err
		}
	}
	return len(p.Catalogue.Tags), nil
}

// seedTagDescriptions joins each rule to its tags by name. A rule that
// names an unknown tag fails the whole stage with MissingReference.
func (p *Pipeline) seedTagDescriptions(ctx context.Context, tags *repository.TagRepo, descs *repository.TagDescriptionRepo) (int, error) {
	count := 0
	for _, rule := range p.Catalogue.Descriptions {
		for _, name := range rule.Tags {
			tag, err := tags.FindByName(ctx, name)
			if err != nil {
				return 0, err
			}
			if tag == nil {
				return 0, &model.MissingReference{Kind: "tag", Key: name}
			}
			if _, err := descs.Upsert(ctx, model.TagDescription{TagID: tag.ID, Desc: rule.Desc}); err != nil {
				return 0, err
			}
			count++
		}
	}
	return count, nil
}

// seedExpansions joins each rule to its parent transaction by the split
// key (date, desc, amount, balance). An unmatched rule fails the stage
// with MissingReference.
func (p *Pipeline) seedExpansions(ctx context.Context, txns *repository.TransactionRepo, exps *repository.ExpansionRepo) (int, error) {
	count := 0
	for _, rule := range p.Catalogue.Expansions {
		amount, err := decimal.NewFromString(rule.Amount)
		if err != nil {
			return 0, fmt.Errorf("expansion rule %s %q: parsing amount: %w", rule.Date, rule.Desc, err)
		}
		balance, err := decimal.NewFromString(rule.Balance)
		if err != nil {
			return 0, fmt.Errorf("expansion rule %s %q: parsing balance: %w", rule.Date, rule.Desc, err)
		}

		parent, err := txns.FindForExpansion(ctx, rule.Date, rule.Desc, amount, balance)
		if err != nil {
			return 0, err
		}
		if parent == nil {
			return 0, &model.MissingReference{Kind: "transaction", Key: rule.Date + " " + rule.Desc}
		}

		for _, split := range rule.Splits {
			splitAmount, err := decimal.NewFromString(split.Amount)
			if err != nil {
				return 0, fmt.Errorf("expansion rule %s %q: parsing split amount: %w", rule.Date, rule.Desc, err)
			}
			if _, err := exps.Upsert(ctx, model.ExpandedTransaction{
				TransactionID: parent.ID,
				Amount:        splitAmount,
				Tags:          model.JoinTags(split.Tags),
			}); err != nil {
				return 0, err
			}
			count++
		}
	}
	return count, nil
}
