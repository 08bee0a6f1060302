package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gardar/formscan/pkg/geometry"
	"github.com/gardar/formscan/pkg/layout"
)

// squareAt builds a small quadrilateral whose centroid is (x, y).
func squareAt(x, y float64) geometry.Polygon {
	const half = 0.01
	return geometry.Polygon{
		{X: x - half, Y: y - half},
		{X: x + half, Y: y - half},
		{X: x + half, Y: y + half},
		{X: x - half, Y: y + half},
	}
}

func para(start, end int64, poly geometry.Polygon) layout.Paragraph {
	p := layout.Paragraph{
		Layout: layout.TextRegion{
			Anchor: layout.TextAnchor{Segments: []layout.Segment{{StartIndex: start, EndIndex: end}}},
		},
	}
	if poly != nil {
		p.Poly = &layout.BoundingPoly{NormalizedVertices: poly}
	}
	return p
}

func TestFindLabelAdjacentParagraph(t *testing.T) {
	fullText := "Agree to terms"
	page := &layout.Page{
		PageNumber: 1,
		Paragraphs: []layout.Paragraph{para(0, 14, squareAt(0.5, 0.53))},
	}

	label, conf := New(nil).FindLabel(page, squareAt(0.5, 0.5), fullText)
	assert.Equal(t, "Agree to terms", label)
	assert.Equal(t, Confidence(1.0), conf)
}

func TestFindLabelPrefersRightOfBox(t *testing.T) {
	// The left paragraph is nearer (0.15 vs 0.18) but the right one sits
	// where a label conventionally does, so its weighted distance
	// (0.18 × 0.8 = 0.144) wins. Confidence still comes from the raw
	// distance of 0.18.
	fullText := "LeftLabel RightLabel"
	page := &layout.Page{
		PageNumber: 1,
		Paragraphs: []layout.Paragraph{
			para(0, 9, squareAt(0.35, 0.5)),
			para(10, 20, squareAt(0.68, 0.5)),
		},
	}

	label, conf := New(nil).FindLabel(page, squareAt(0.5, 0.5), fullText)
	assert.Equal(t, "RightLabel", label)
	assert.Equal(t, Confidence(0.7), conf)
}

func TestFindLabelDistanceTiers(t *testing.T) {
	tests := []struct {
		d    float64
		want Confidence
	}{
		{0.03, 1.0},
		{0.08, 0.9},
		{0.12, 0.8},
		{0.18, 0.7},
	}
	for _, tt := range tests {
		// Paragraph directly left of the box so no weighting applies.
		page := &layout.Page{
			PageNumber: 1,
			Paragraphs: []layout.Paragraph{para(0, 5, squareAt(0.5-tt.d, 0.5))},
		}
		_, conf := New(nil).FindLabel(page, squareAt(0.5, 0.5), "Label")
		assert.Equal(t, tt.want, conf, "distance %v", tt.d)
	}
}

func TestFindLabelFallbackRadius(t *testing.T) {
	// Beyond the acceptance threshold but inside the fallback radius:
	// the text is kept at reduced confidence.
	page := &layout.Page{
		PageNumber: 1,
		Paragraphs: []layout.Paragraph{para(0, 5, squareAt(0.25, 0.5))},
	}

	label, conf := New(nil).FindLabel(page, squareAt(0.5, 0.5), "Email")
	assert.Equal(t, "Email", label)
	assert.Equal(t, Confidence(0.5), conf)
}

func TestFindLabelPlaceholderWhenTooFar(t *testing.T) {
	page := &layout.Page{
		PageNumber: 3,
		Paragraphs: []layout.Paragraph{para(0, 5, squareAt(0.9, 0.9))},
	}

	label, conf := New(nil).FindLabel(page, squareAt(0.1, 0.1), "Email")
	assert.Equal(t, "Checkbox at Page 3, position (0.10, 0.10)", label)
	assert.Equal(t, Confidence(0.2), conf)
}

func TestFindLabelPlaceholderWithoutParagraphs(t *testing.T) {
	page := &layout.Page{PageNumber: 1}

	label, conf := New(nil).FindLabel(page, squareAt(0.11, 0.11), "")
	assert.Equal(t, "Checkbox at Page 1, position (0.11, 0.11)", label)
	assert.Equal(t, Confidence(0.2), conf)
}

func TestFindLabelEmptyParagraphTextIsUnresolvable(t *testing.T) {
	// The adjacent paragraph's anchor resolves to nothing, so it cannot
	// win; with no other text nearby the placeholder is synthesized.
	page := &layout.Page{
		PageNumber: 1,
		Paragraphs: []layout.Paragraph{para(3, 3, squareAt(0.5, 0.53))},
	}

	label, conf := New(nil).FindLabel(page, squareAt(0.5, 0.5), "Agree")
	assert.Equal(t, "Checkbox at Page 1, position (0.50, 0.50)", label)
	assert.Equal(t, Confidence(0.2), conf)
}

func TestFindLabelEmptyTextDoesNotShadowFartherParagraph(t *testing.T) {
	page := &layout.Page{
		PageNumber: 1,
		Paragraphs: []layout.Paragraph{
			para(5, 5, squareAt(0.5, 0.53)),
			para(0, 5, squareAt(0.38, 0.5)),
		},
	}

	label, conf := New(nil).FindLabel(page, squareAt(0.5, 0.5), "Email")
	assert.Equal(t, "Email", label)
	assert.Equal(t, Confidence(0.8), conf)
}

func TestFindLabelSkipsParagraphsWithoutGeometry(t *testing.T) {
	page := &layout.Page{
		PageNumber: 1,
		Paragraphs: []layout.Paragraph{
			para(0, 5, nil),
			para(6, 11, squareAt(0.5, 0.53)),
		},
	}

	label, conf := New(nil).FindLabel(page, squareAt(0.5, 0.5), "NoGeo Close")
	assert.Equal(t, "Close", label)
	assert.Equal(t, Confidence(1.0), conf)
}
