package extract

import (
	"fmt"

	"github.com/gardar/formscan/pkg/geometry"
	"github.com/gardar/formscan/pkg/layout"
)

// Label-search weights. The distance to a paragraph is discounted when
// the paragraph sits where a label conventionally sits in left-to-right
// layouts: to the right of the box, or immediately below it.
// Right-to-left layouts are a known limitation and are not modeled.
const (
	rightOfWeight   = 0.8
	belowWeight     = 0.9
	belowMaxDist    = 0.05
	labelThreshold  = 0.2
	fallbackMaxDist = 0.3
)

// LabelCandidate pairs a paragraph's text with its raw and
// reading-order-weighted distances from a symbol during label search.
type LabelCandidate struct {
	Text             string
	Distance         float64
	WeightedDistance float64
}

// FindLabel associates a checkbox polygon with the nearest textual label
// on the page. The winner is the paragraph with the smallest weighted
// distance; its raw distance drives the confidence tiers and the
// acceptance threshold. A paragraph within the fallback radius is kept
// as a low-confidence alternative, and when nothing qualifies a
// positional placeholder is synthesized so the checkbox is never dropped.
func (e *Extractor) FindLabel(page *layout.Page, symbol geometry.Polygon, fullText string) (string, Confidence) {
	center := symbol.Centroid()

	var best, fallback *LabelCandidate

	for i := range page.Paragraphs {
		para := &page.Paragraphs[i]
		poly := para.Poly.NormalizedPolygon()
		if len(poly) == 0 {
			continue
		}
		text := para.Layout.Text(fullText)
		if text == "" {
			// A paragraph whose anchor resolves to nothing cannot label
			// anything; let the placeholder path handle it instead.
			continue
		}

		paraCenter := poly.Centroid()
		d := geometry.Distance(paraCenter, center)

		weighted := d
		if paraCenter.X > center.X {
			weighted *= rightOfWeight
		}
		if paraCenter.Y > center.Y && d < belowMaxDist {
			weighted *= belowWeight
		}

		if d < fallbackMaxDist && (fallback == nil || d < fallback.Distance) {
			fallback = &LabelCandidate{Text: text, Distance: d, WeightedDistance: weighted}
		}
		if best == nil || weighted < best.WeightedDistance {
			best = &LabelCandidate{Text: text, Distance: d, WeightedDistance: weighted}
		}
	}

	if best != nil && best.Distance <= labelThreshold {
		return best.Text, distanceConfidence(best.Distance)
	}
	if fallback != nil {
		return fallback.Text, 0.5
	}
	return fmt.Sprintf("Checkbox at Page %d, position (%.2f, %.2f)", page.PageNumber, center.X, center.Y), 0.2
}

// distanceConfidence maps a raw centroid distance to a confidence tier.
func distanceConfidence(d float64) Confidence {
	switch {
	case d <= 0.05:
		return 1.0
	case d <= 0.1:
		return 0.9
	case d <= 0.15:
		return 0.8
	case d <= 0.2:
		return 0.7
	default:
		return 0.6
	}
}
