package extract

import (
	"fmt"

	"github.com/gardar/formscan/pkg/geometry"
	"github.com/gardar/formscan/pkg/layout"
)

// checkboxSymbolTypes are the symbol types the layout service tags as
// checkbox-like; they qualify at full base confidence.
var checkboxSymbolTypes = map[string]bool{
	"checkbox": true,
	"square":   true,
	"box":      true,
	"tick_box": true,
}

// Aspect-ratio window for inferring a checkbox from an untyped
// quadrilateral: close enough to square.
const (
	minCheckboxAspect = 0.7
	maxCheckboxAspect = 1.3
)

// CheckboxCandidate is a detected symbol classified as a checkbox,
// before it is merged into the page's field list.
type CheckboxCandidate struct {
	SymbolType string           `json:"symbol_type"`
	Checked    bool             `json:"is_checked"`
	Label      string           `json:"label"`
	Poly       geometry.Polygon `json:"normalized_bounding_box"`
	Confidence Confidence       `json:"confidence_score"`
}

// ExtractCheckboxes converts the detected symbols of a page into checkbox
// candidates. Symbols that are not checkbox-like are rejected; a fault on
// one symbol skips that symbol only and never aborts the page.
func (e *Extractor) ExtractCheckboxes(page *layout.Page, fullText string) []CheckboxCandidate {
	candidates := make([]CheckboxCandidate, 0, len(page.Symbols))

	for i := range page.Symbols {
		cand, err := e.classifySymbol(page, &page.Symbols[i], fullText)
		if err != nil {
			e.log.Warn("skipping symbol", "page", page.PageNumber, "error", err)
			continue
		}
		if cand != nil {
			candidates = append(candidates, *cand)
		}
	}
	return candidates
}

// classifySymbol decides whether one symbol is a checkbox and scores it.
// It returns (nil, nil) for symbols that simply do not qualify.
func (e *Extractor) classifySymbol(page *layout.Page, sym *layout.Symbol, fullText string) (*CheckboxCandidate, error) {
	poly := sym.Poly.NormalizedPolygon()
	if n := len(poly); n > 0 && n < 3 {
		return nil, fmt.Errorf("symbol %q has malformed bounding polygon with %d vertices", sym.Type, n)
	}

	symbolType := sym.Type
	conf := Confidence(1.0)

	switch {
	case checkboxSymbolTypes[symbolType]:
		// Explicitly tagged, full base confidence.
	case symbolType == "unknown":
		// Infer from shape: a near-square quadrilateral is likely a
		// checkbox the service failed to classify.
		if len(poly) != 4 {
			return nil, nil
		}
		ar := poly.AspectRatio()
		if ar < minCheckboxAspect || ar > maxCheckboxAspect {
			return nil, nil
		}
		symbolType = "inferred_checkbox"
		conf = 0.7
	default:
		return nil, nil
	}

	if poly.Rotated() {
		conf = conf.Combine(0.9)
		e.log.Debug("rotated checkbox", "page", page.PageNumber, "symbol", symbolType)
	}

	checked := false
	switch sym.State {
	case "checked":
		checked = true
	case "unchecked":
		// Explicitly unticked.
	default:
		// State not reported; it has to be inferred, which is less certain.
		conf = conf.Combine(0.8)
	}

	label, labelConf := e.FindLabel(page, poly, fullText)
	conf = conf.Combine(labelConf).Round()

	return &CheckboxCandidate{
		SymbolType: symbolType,
		Checked:    checked,
		Label:      label,
		Poly:       poly,
		Confidence: conf,
	}, nil
}
