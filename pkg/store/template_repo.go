package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gardar/formscan/pkg/extract"
)

// Template is a reusable field layout extracted from one document.
type Template struct {
	ID          string          `json:"template_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Fields      []extract.Field `json:"fields"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type TemplateRepo struct{ DB *sql.DB }

func NewTemplateRepo(db *sql.DB) *TemplateRepo { return &TemplateRepo{DB: db} }

// Create stores a new template and returns its generated id.
func (r *TemplateRepo) Create(ctx context.Context, t *Template) (string, error) {
	id := uuid.NewString()
	tags, err := json.Marshal(emptyIfNil(t.Tags))
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	fields, err := json.Marshal(t.Fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode fields: %w", err)
	}
	const q = `insert into templates (id, name, description, tags, fields)
	           values ($1, $2, $3, $4, $5)`
	if _, err := r.DB.ExecContext(ctx, q, id, t.Name, t.Description, tags, fields); err != nil {
		return "", fmt.Errorf("failed to insert template: %w", err)
	}
	return id, nil
}

// Get returns one template by id, or sql.ErrNoRows when absent.
func (r *TemplateRepo) Get(ctx context.Context, id string) (*Template, error) {
	const q = `select id, name, description, tags, fields, created_at, updated_at
	           from templates where id = $1`
	return scanTemplate(r.DB.QueryRowContext(ctx, q, id))
}

// List returns templates newest-first, optionally filtered by tag.
func (r *TemplateRepo) List(ctx context.Context, tag string) ([]*Template, error) {
	const q = `select id, name, description, tags, fields, created_at, updated_at
	           from templates
	           where $1 = '' or tags @> to_jsonb(array[$1])
	           order by created_at desc`
	rows, err := r.DB.QueryContext(ctx, q, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var out []*Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Delete removes a template; it reports whether a row was deleted.
func (r *TemplateRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `delete from templates where id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete template: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanTemplate(s scanner) (*Template, error) {
	var (
		t      Template
		tags   []byte
		fields []byte
	)
	if err := s.Scan(&t.ID, &t.Name, &t.Description, &tags, &fields, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &t.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode template tags: %w", err)
	}
	if err := json.Unmarshal(fields, &t.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode template fields: %w", err)
	}
	return &t, nil
}

func emptyIfNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
