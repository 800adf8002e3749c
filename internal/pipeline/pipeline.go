// Package pipeline sequences the three top-level operations over the
// record store: migrate (schema + seeds), import (parse then persist)
// and export (fetch then enrich). Each invocation opens its own store
// handle and releases it on every exit path; nothing is shared across
// invocations.
package pipeline

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/flashcheeks/banking-api/internal/seed"
	"github.com/flashcheeks/banking-api/internal/store"
)

// Pipeline wires statement parsing, the record store and the seed
// catalogue into the migrate/import/export entry points.
type Pipeline struct {
	DataRoot  string
	DBPath    string
	Catalogue *seed.Catalogue
	Log       zerolog.Logger
}

func (p *Pipeline) open() (*sql.DB, error) {
	db, err := store.Open(p.DBPath)
	if err != nil {
		return nil, fmt.Errorf("acquiring store: %w", err)
	}
	return db, nil
}
