package extract

import (
	"strings"

	"github.com/gardar/formscan/pkg/geometry"
	"github.com/gardar/formscan/pkg/layout"
)

// classification is the verdict of a single cascade rule: the field is a
// checkbox with the given checked state.
type classification struct {
	checked bool
}

// rule inspects a field's name, value text and declared value type.
// ok reports whether the rule applies. Rules run in order and the last
// applicable rule wins, so later heuristics override earlier ones.
type rule func(name, value, valueType string) (classification, bool)

// checkedValues are the value texts that mean "checked" for fields whose
// name or declared type already marks them as checkboxes.
var checkedValues = map[string]bool{
	"true": true, "yes": true, "checked": true,
	"✓": true, "✔": true, "x": true,
}

// entityTypeFields is the known checkbox-field vocabulary seen on tax and
// registration forms, where each entity type is its own checkbox.
var entityTypeFields = []string{
	"individual/sole proprietor",
	"c corporation",
	"s corporation",
	"partnership",
	"trust/estate",
	"limited liability company",
	"other",
	"llc",
}

// checkboxTerms mark a field as a checkbox by name alone.
var checkboxTerms = []string{"check", "tick", "mark", "select", "choice", "option"}

// checkboxGlyphs are glyphs whose presence in a value identifies a
// checkbox; checkedGlyphs is the subset that means the box is ticked.
var (
	checkboxGlyphs = []string{"✓", "✔", "☑", "☒", "■", "□", "▢", "▣", "x", "X", "[ ]", "[x]", "[X]"}
	checkedGlyphs  = []string{"✓", "✔", "☑", "▣", "x", "X", "[x]", "[X]"}
)

// entityTypePatterns is the looser vocabulary used when the value is
// empty: a bare entity-type label is an unchecked checkbox.
var entityTypePatterns = []string{"corporation", "individual", "partnership", "trust", "estate", "llc"}

var checkboxCascade = []rule{
	// Declared value type marks the field as a selectable.
	func(name, value, valueType string) (classification, bool) {
		vt := strings.ToUpper(valueType)
		if !strings.Contains(vt, "CHECKBOX") && !strings.Contains(vt, "SELECTED") {
			return classification{}, false
		}
		return classification{checked: checkedValues[strings.ToLower(value)]}, true
	},
	// Known entity-type checkbox vocabulary; a non-empty value means ticked.
	func(name, value, valueType string) (classification, bool) {
		if !containsAny(strings.ToLower(name), entityTypeFields) {
			return classification{}, false
		}
		return classification{checked: strings.TrimSpace(value) != ""}, true
	},
	// Checkbox/selection keyword in the field name.
	func(name, value, valueType string) (classification, bool) {
		if !containsAny(strings.ToLower(name), checkboxTerms) {
			return classification{}, false
		}
		return classification{checked: checkedValues[strings.ToLower(value)]}, true
	},
	// Checkbox glyph in the value text.
	func(name, value, valueType string) (classification, bool) {
		if !containsAny(value, checkboxGlyphs) {
			return classification{}, false
		}
		return classification{checked: containsAny(value, checkedGlyphs)}, true
	},
	// Empty value on an entity-type label: an unticked checkbox.
	func(name, value, valueType string) (classification, bool) {
		lower := strings.ToLower(name)
		if strings.TrimSpace(value) != "" || lower == "" || !containsAny(lower, entityTypePatterns) {
			return classification{}, false
		}
		return classification{checked: false}, true
	},
}

// classifyCheckbox runs the cascade. The rules are non-exclusive: every
// applicable rule fires, and the last one wins.
func classifyCheckbox(name, value, valueType string) (classification, bool) {
	var out classification
	matched := false
	for _, r := range checkboxCascade {
		if c, ok := r(name, value, valueType); ok {
			out, matched = c, true
		}
	}
	return out, matched
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ExtractFields converts the raw key-value form fields of a page into
// typed field records. Name and value text are resolved against the
// document's full text; the checkbox cascade decides the field type.
// IDs and page numbers are assigned later, at merge time.
func (e *Extractor) ExtractFields(page *layout.Page, fullText string) []Field {
	fields := make([]Field, 0, len(page.FormFields))

	for i := range page.FormFields {
		f := &page.FormFields[i]
		name := f.Name.Text(fullText)
		value := f.Value.Text(fullText)

		field := Field{
			Type:       FieldText,
			Name:       name,
			Value:      TextValue(value),
			BBox:       nameBBox(f),
			Confidence: 1.0,
		}
		if cls, ok := classifyCheckbox(name, value, f.Value.ValueType); ok {
			field.Type = FieldCheckbox
			field.Value = CheckboxValue(cls.checked)
			e.log.Debug("detected checkbox field", "name", name, "checked", cls.checked)
		} else {
			e.log.Debug("detected text field", "name", name, "value", value)
		}
		fields = append(fields, field)
	}
	return fields
}

// nameBBox reduces the field-name polygon to a box using the first and
// third vertex of the 4-point polygon; a missing polygon yields nil.
func nameBBox(f *layout.FormField) *geometry.BBox {
	v := f.Name.Poly.NormalizedPolygon()
	if len(v) < 4 {
		return nil
	}
	return &geometry.BBox{Left: v[0].X, Top: v[0].Y, Right: v[2].X, Bottom: v[2].Y}
}
