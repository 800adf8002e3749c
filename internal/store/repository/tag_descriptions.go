package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/flashcheeks/banking-api/internal/model"
)

// TagDescriptionRepo handles description-to-tag bridge rows.
type TagDescriptionRepo struct {
	db *sql.DB
}

func NewTagDescriptionRepo(db *sql.DB) *TagDescriptionRepo { return &TagDescriptionRepo{db: db} }

// FindByKey returns the row matching (tag_id, desc), or nil.
func (r *TagDescriptionRepo) FindByKey(ctx context.Context, key model.TagDescriptionKey) (*model.TagDescription, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, tag_id, "desc" FROM tag_descriptions WHERE tag_id = ? AND "desc" = ? LIMIT 1`,
		key.TagID, key.Desc)
	var d model.TagDescription
	if err := row.Scan(&d.ID, &d.TagID, &d.Desc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, &model.StoreError{Op: "tag_descriptions.find", Err: err}
	}
	return &d, nil
}

// Upsert creates or refreshes a bridge row, matching on (tag_id, desc).
func (r *TagDescriptionRepo) Upsert(ctx context.Context, d model.TagDescription) (model.TagDescription, error) {
	existing, err := r.FindByKey(ctx, d.Key())
	if err != nil {
		return model.TagDescription{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	d.ID = uuid.NewString()
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO tag_descriptions(id, tag_id, "desc") VALUES(?, ?, ?)`,
		d.ID, d.TagID, d.Desc); err != nil {
		return model.TagDescription{}, &model.StoreError{Op: "tag_descriptions.insert", Err: err}
	}
	return d, nil
}

// ListByDesc returns all rows whose desc exactly equals desc. Result
// order is the insertion order of the underlying query, not
// semantically significant.
func (r *TagDescriptionRepo) ListByDesc(ctx context.Context, desc string) ([]model.TagDescription, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tag_id, "desc" FROM tag_descriptions WHERE "desc" = ?`, desc)
	if err != nil {
		return nil, &model.StoreError{Op: "tag_descriptions.list", Err: err}
	}
	defer rows.Close()

	var out []model.TagDescription
	for rows.Next() {
		var d model.TagDescription
		if err := rows.Scan(&d.ID, &d.TagID, &d.Desc); err != nil {
			return nil, &model.StoreError{Op: "tag_descriptions.list", Err: err}
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StoreError{Op: "tag_descriptions.list", Err: err}
	}
	return out, nil
}
