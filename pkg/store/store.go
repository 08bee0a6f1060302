// Package store persists extraction templates and filled forms in
// Postgres. A template is a named, tagged snapshot of the fields
// extracted from one document; a filled form tracks the values entered
// against a template and its export history. Field lists are stored as
// JSON alongside the searchable metadata columns.
package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema creates the tables the repositories expect. Tags and field
// lists are JSON; everything queried by the repos has its own column.
const Schema = `
create table if not exists templates (
	id          text primary key,
	name        text not null,
	description text not null default '',
	tags        jsonb not null default '[]',
	fields      jsonb not null default '[]',
	created_at  timestamptz not null default now(),
	updated_at  timestamptz not null default now()
);

create table if not exists filled_forms (
	id             text primary key,
	template_id    text not null references templates(id) on delete cascade,
	name           text not null,
	status         text not null default 'draft',
	field_values   jsonb not null default '[]',
	export_records jsonb not null default '[]',
	created_at     timestamptz not null default now(),
	updated_at     timestamptz not null default now()
);
`

// EnsureSchema creates the storage tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
