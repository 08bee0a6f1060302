// Package layout defines the structured result produced by the external
// layout-analysis service: full text, pages with their dimensions, raw
// key-value form fields, detected symbols and paragraphs, all carrying
// polygon geometry.
//
// Every optional piece of upstream data is represented explicitly here —
// a nil pointer or empty slice, checked once at this boundary — so the
// extraction stages never have to probe loosely-structured objects.
// The types round-trip through JSON, which allows saved analysis results
// to be replayed without contacting the service.
package layout

import "github.com/gardar/formscan/pkg/geometry"

// Result is one layout-analysis response for a single document.
type Result struct {
	Text     string `json:"text"`
	MimeType string `json:"mime_type,omitempty"`
	Pages    []Page `json:"pages"`
}

// Page holds the raw layout elements detected on one page.
type Page struct {
	PageNumber int         `json:"page_number"`
	Dimension  *Dimension  `json:"dimension,omitempty"`
	Rotation   int         `json:"rotation,omitempty"`
	FormFields []FormField `json:"form_fields,omitempty"`
	Symbols    []Symbol    `json:"detected_symbols,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs,omitempty"`
}

// Dimension is the physical page size as reported by layout analysis.
type Dimension struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// FormField is a raw key-value pair detected on a page. Name and Value
// each resolve to text through their anchors; the value side may carry a
// declared value type (e.g. "filled_checkbox").
type FormField struct {
	Name  TextRegion `json:"field_name"`
	Value TextRegion `json:"field_value"`
}

// TextRegion ties a text anchor to the polygon it was detected in.
type TextRegion struct {
	Anchor    TextAnchor    `json:"text_anchor"`
	Poly      *BoundingPoly `json:"bounding_poly,omitempty"`
	ValueType string        `json:"value_type,omitempty"`
}

// Symbol is a detected glyph-like shape, the raw material for checkbox
// detection. State is empty when the service did not report one.
type Symbol struct {
	Type  string        `json:"symbol_type"`
	State string        `json:"state,omitempty"`
	Poly  *BoundingPoly `json:"bounding_poly,omitempty"`
}

// Paragraph is a layout grouping of text runs with its own polygon, used
// as the unit of label-candidate text.
type Paragraph struct {
	Poly   *BoundingPoly `json:"bounding_poly,omitempty"`
	Layout TextRegion    `json:"layout"`
}

// BoundingPoly carries the vertices of a detected element, normalized to
// [0,1] and/or in absolute page units.
type BoundingPoly struct {
	NormalizedVertices geometry.Polygon `json:"normalized_vertices,omitempty"`
	Vertices           geometry.Polygon `json:"vertices,omitempty"`
}

// NormalizedPolygon returns the normalized vertices of a possibly-nil
// polygon reference.
func (p *BoundingPoly) NormalizedPolygon() geometry.Polygon {
	if p == nil {
		return nil
	}
	return p.NormalizedVertices
}
