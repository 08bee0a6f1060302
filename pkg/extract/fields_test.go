package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardar/formscan/pkg/geometry"
	"github.com/gardar/formscan/pkg/layout"
)

func TestClassifyCheckboxCascade(t *testing.T) {
	tests := []struct {
		name       string
		fieldName  string
		value      string
		valueType  string
		isCheckbox bool
		isChecked  bool
	}{
		{"plain text field", "Name", "John Smith", "", false, false},
		{"declared filled checkbox", "Agree", "✓", "filled_checkbox", true, true},
		{"declared unfilled checkbox", "Agree", "", "unfilled_checkbox", true, false},
		{"declared selected", "Plan", "yes", "SELECTED", true, true},
		{"entity type checked", "C Corporation", "X", "", true, true},
		{"entity type unchecked", "Partnership", "", "", true, false},
		{"entity type whitespace value", "Trust/estate", "   ", "", true, false},
		{"keyword in name", "Select one option", "yes", "", true, true},
		{"keyword in name unchecked", "Check here", "", "", true, false},
		{"glyph checked", "Agree to terms", "[x]", "", true, true},
		{"glyph unchecked", "Agree to terms", "[ ]", "", true, false},
		{"ballot box checked", "Subscribed", "☑", "", true, true},
		{"ballot box unchecked", "Subscribed", "□", "", true, false},
		{"empty value entity pattern", "Foreign corporation status", "", "", true, false},
		{"empty value without pattern", "Address", "", "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls, ok := classifyCheckbox(tt.fieldName, tt.value, tt.valueType)
			assert.Equal(t, tt.isCheckbox, ok)
			if ok {
				assert.Equal(t, tt.isChecked, cls.checked)
			}
		})
	}
}

func TestLaterRulesOverrideEarlier(t *testing.T) {
	// The keyword rule alone would leave this unchecked because "[X]" is
	// not one of its checked values, but the glyph rule recognizes the
	// ticked box and wins by running later.
	cls, ok := classifyCheckbox("Choice of entity", "[X]", "")
	require.True(t, ok)
	assert.True(t, cls.checked)
}

func namedRegion(start, end int64, poly geometry.Polygon) layout.TextRegion {
	r := layout.TextRegion{
		Anchor: layout.TextAnchor{Segments: []layout.Segment{{StartIndex: start, EndIndex: end}}},
	}
	if poly != nil {
		r.Poly = &layout.BoundingPoly{NormalizedVertices: poly}
	}
	return r
}

func TestExtractFieldsResolvesTextAndBBox(t *testing.T) {
	fullText := "Full Name:John Smith"
	namePoly := geometry.Polygon{
		{X: 0.1, Y: 0.2},
		{X: 0.3, Y: 0.2},
		{X: 0.3, Y: 0.25},
		{X: 0.1, Y: 0.25},
	}
	page := &layout.Page{
		PageNumber: 1,
		FormFields: []layout.FormField{{
			Name:  namedRegion(0, 9, namePoly),
			Value: namedRegion(10, 20, nil),
		}},
	}

	fields := New(nil).ExtractFields(page, fullText)
	require.Len(t, fields, 1)

	f := fields[0]
	assert.Equal(t, FieldText, f.Type)
	assert.Equal(t, "Full Name", f.Name)
	assert.Equal(t, "John Smith", f.Value.Text())
	assert.False(t, f.Value.IsCheckbox())
	assert.Equal(t, Confidence(1.0), f.Confidence)

	// BBox from the first and third vertex of the name polygon.
	require.NotNil(t, f.BBox)
	assert.Equal(t, &geometry.BBox{Left: 0.1, Top: 0.2, Right: 0.3, Bottom: 0.25}, f.BBox)
}

func TestExtractFieldsCheckboxValueIsBoolean(t *testing.T) {
	fullText := "Partnership:"
	page := &layout.Page{
		PageNumber: 1,
		FormFields: []layout.FormField{{
			Name:  namedRegion(0, 11, nil),
			Value: namedRegion(12, 12, nil),
		}},
	}

	fields := New(nil).ExtractFields(page, fullText)
	require.Len(t, fields, 1)

	f := fields[0]
	assert.Equal(t, FieldCheckbox, f.Type)
	assert.True(t, f.Value.IsCheckbox())
	assert.False(t, f.Value.Checked())
	assert.Nil(t, f.BBox)
}

func TestExtractFieldsMissingPolygon(t *testing.T) {
	page := &layout.Page{
		PageNumber: 1,
		FormFields: []layout.FormField{{
			Name:  namedRegion(0, 4, geometry.Polygon{{X: 0.1, Y: 0.1}}),
			Value: namedRegion(5, 9, nil),
		}},
	}
	fields := New(nil).ExtractFields(page, "Name:data")
	require.Len(t, fields, 1)
	assert.Nil(t, fields[0].BBox, "polygons with fewer than 4 vertices yield no bbox")
}
