package extract

import (
	"encoding/json"
	"fmt"

	"github.com/gardar/formscan/pkg/geometry"
)

// FieldType discriminates the kinds of field records the engine emits.
type FieldType string

const (
	FieldText      FieldType = "text"
	FieldCheckbox  FieldType = "checkbox"
	FieldDate      FieldType = "date"
	FieldSignature FieldType = "signature"
)

// FieldValue is the tagged value of a field: either the text content of a
// text-like field or the checked state of a checkbox. The constructors
// are the only way to build one, so a checkbox field can never carry a
// string value.
type FieldValue struct {
	checkbox bool
	checked  bool
	text     string
}

// TextValue builds the value of a text-like field.
func TextValue(s string) FieldValue {
	return FieldValue{text: s}
}

// CheckboxValue builds the value of a checkbox field.
func CheckboxValue(checked bool) FieldValue {
	return FieldValue{checkbox: true, checked: checked}
}

// IsCheckbox reports whether the value is a checked state.
func (v FieldValue) IsCheckbox() bool { return v.checkbox }

// Text returns the text content, or "" for checkbox values.
func (v FieldValue) Text() string { return v.text }

// Checked returns the checked state, or false for text values.
func (v FieldValue) Checked() bool { return v.checkbox && v.checked }

// MarshalJSON emits a bool for checkbox values and a string otherwise,
// matching the output contract consumed by template storage and the
// visualization renderer.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.checkbox {
		return json.Marshal(v.checked)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts either representation.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var checked bool
	if err := json.Unmarshal(data, &checked); err == nil {
		*v = CheckboxValue(checked)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("field value is neither bool nor string: %w", err)
	}
	*v = TextValue(text)
	return nil
}

// Field is one typed field record: a labeled value with its location on
// the page and a confidence score. IDs are assigned sequentially when
// page results are merged into the document and are unique per document.
type Field struct {
	ID         string         `json:"id"`
	Type       FieldType      `json:"type"`
	Name       string         `json:"name"`
	Value      FieldValue     `json:"value"`
	BBox       *geometry.BBox `json:"bbox"`
	Page       int            `json:"page"`
	Confidence Confidence     `json:"confidence"`
}

// Dimensions is the page size carried into the output contract.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// PageResult is the ordered field list extracted from one page: fields
// from the key-value cascade first, then symbol-derived checkboxes in
// detection order.
type PageResult struct {
	PageNumber int        `json:"page_number"`
	Dimensions Dimensions `json:"dimensions"`
	Fields     []Field    `json:"fields"`
}

// Validation is the structural-sanity verdict for a document.
type Validation struct {
	IsValid    bool       `json:"is_valid"`
	Message    string     `json:"error_message"`
	Confidence Confidence `json:"confidence"`
}

// Document is the complete extraction result. It is built in one
// synchronous pass and not mutated afterwards.
type Document struct {
	Text       string       `json:"text"`
	MimeType   string       `json:"mime_type"`
	Pages      []PageResult `json:"pages"`
	Fields     []Field      `json:"fields"`
	Validation Validation   `json:"document_validation"`
}
