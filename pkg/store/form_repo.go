package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FieldValue is one value entered into a filled form.
type FieldValue struct {
	FieldID string `json:"field_id"`
	Value   any    `json:"value"`
}

// ExportRecord tracks one export of a filled form to a destination such
// as an e-signature service.
type ExportRecord struct {
	Destination string    `json:"destination"`
	Status      string    `json:"status"`
	ExportedAt  time.Time `json:"exported_at"`
}

// FilledForm is an instance of a template with user-entered values.
type FilledForm struct {
	ID            string         `json:"form_id"`
	TemplateID    string         `json:"template_id"`
	Name          string         `json:"name"`
	Status        string         `json:"status"`
	FieldValues   []FieldValue   `json:"field_values"`
	ExportRecords []ExportRecord `json:"export_records"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type FormRepo struct{ DB *sql.DB }

func NewFormRepo(db *sql.DB) *FormRepo { return &FormRepo{DB: db} }

// Create stores a new filled form in draft status and returns its id.
func (r *FormRepo) Create(ctx context.Context, templateID, name string, values []FieldValue) (string, error) {
	id := uuid.NewString()
	if values == nil {
		values = []FieldValue{}
	}
	js, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode field values: %w", err)
	}
	const q = `insert into filled_forms (id, template_id, name, field_values)
	           values ($1, $2, $3, $4)`
	if _, err := r.DB.ExecContext(ctx, q, id, templateID, name, js); err != nil {
		return "", fmt.Errorf("failed to insert filled form: %w", err)
	}
	return id, nil
}

// Get returns one filled form by id, or sql.ErrNoRows when absent.
func (r *FormRepo) Get(ctx context.Context, id string) (*FilledForm, error) {
	const q = `select id, template_id, name, status, field_values, export_records, created_at, updated_at
	           from filled_forms where id = $1`
	var (
		f       FilledForm
		values  []byte
		exports []byte
	)
	err := r.DB.QueryRowContext(ctx, q, id).
		Scan(&f.ID, &f.TemplateID, &f.Name, &f.Status, &values, &exports, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(values, &f.FieldValues); err != nil {
		return nil, fmt.Errorf("failed to decode field values: %w", err)
	}
	if err := json.Unmarshal(exports, &f.ExportRecords); err != nil {
		return nil, fmt.Errorf("failed to decode export records: %w", err)
	}
	return &f, nil
}

// UpdateFieldValues replaces the form's entered values.
func (r *FormRepo) UpdateFieldValues(ctx context.Context, id string, values []FieldValue) error {
	js, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode field values: %w", err)
	}
	const q = `update filled_forms set field_values = $2, updated_at = now() where id = $1`
	res, err := r.DB.ExecContext(ctx, q, id, js)
	if err != nil {
		return fmt.Errorf("failed to update field values: %w", err)
	}
	return requireRow(res)
}

// UpdateStatus moves the form through its lifecycle (draft, completed,
// exported).
func (r *FormRepo) UpdateStatus(ctx context.Context, id, status string) error {
	const q = `update filled_forms set status = $2, updated_at = now() where id = $1`
	res, err := r.DB.ExecContext(ctx, q, id, status)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return requireRow(res)
}

// AddExportRecord appends an export record to the form's history.
func (r *FormRepo) AddExportRecord(ctx context.Context, id string, rec ExportRecord) error {
	if rec.ExportedAt.IsZero() {
		rec.ExportedAt = time.Now().UTC()
	}
	js, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode export record: %w", err)
	}
	const q = `update filled_forms
	           set export_records = export_records || $2::jsonb, updated_at = now()
	           where id = $1`
	res, err := r.DB.ExecContext(ctx, q, id, js)
	if err != nil {
		return fmt.Errorf("failed to add export record: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
