package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/flashcheeks/banking-api/internal/model"
)

// TagRepo handles tags.
type TagRepo struct {
	db *sql.DB
}

func NewTagRepo(db *sql.DB) *TagRepo { return &TagRepo{db: db} }

// FindByName returns the tag with the given name, or nil.
func (r *TagRepo) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name FROM tags WHERE name = ? LIMIT 1`, name)
	var t model.Tag
	if err := row.Scan(&t.ID, &t.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, &model.StoreError{Op: "tags.find", Err: err}
	}
	return &t, nil
}

// Get returns the tag with the given identity, or nil.
func (r *TagRepo) Get(ctx context.Context, id string) (*model.Tag, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name FROM tags WHERE id = ?`, id)
	var t model.Tag
	if err := row.Scan(&t.ID, &t.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, &model.StoreError{Op: "tags.get", Err: err}
	}
	return &t, nil
}

// Upsert creates or refreshes a tag, matching on name.
func (r *TagRepo) Upsert(ctx context.Context, t model.Tag) (model.Tag, error) {
	existing, err := r.FindByName(ctx, t.Name)
	if err != nil {
		return model.Tag{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	t.ID = uuid.NewString()
	if _, err := r.db.ExecContext(ctx, `INSERT INTO tags(id, name) VALUES(?, ?)`, t.ID, t.Name); err != nil {
		return model.Tag{}, &model.StoreError{Op: "tags.insert", Err: err}
	}
	return t, nil
}
