package geometry

import "fmt"

// RawBox is a loosely-specified bounding box as found in stored templates
// and exported field data. It may carry either the right/bottom pair or
// the width/height pair; nil means the key was absent from the source.
type RawBox struct {
	Left   *float64 `json:"left,omitempty"`
	Top    *float64 `json:"top,omitempty"`
	Right  *float64 `json:"right,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// LTRBBox builds a RawBox in left/top/right/bottom form.
func LTRBBox(left, top, right, bottom float64) RawBox {
	return RawBox{Left: &left, Top: &top, Right: &right, Bottom: &bottom}
}

// LTWHBox builds a RawBox in left/top/width/height form.
func LTWHBox(left, top, width, height float64) RawBox {
	return RawBox{Left: &left, Top: &top, Width: &width, Height: &height}
}

// NormBox is the unified bounding-box representation: normalized [0,1]
// coordinates carrying both box conventions so downstream consumers can
// read whichever they expect.
type NormBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Normalize converts a bounding box in either convention, normalized or
// absolute, to a NormBox. Absolute input is detected by any coordinate
// exceeding 1.0 and divided by the page dimensions; already-normalized
// input passes through unchanged, so the operation is idempotent.
//
// A box missing required keys, or with a non-positive extent, is rejected
// with an error; callers keep the owning field with a zero-size box
// rather than dropping it.
func Normalize(box RawBox, pageWidth, pageHeight float64) (NormBox, error) {
	switch {
	case has(box.Left, box.Top, box.Right, box.Bottom):
		l, t, r, b := *box.Left, *box.Top, *box.Right, *box.Bottom
		if exceedsOne(l, t, r, b) {
			if pageWidth <= 0 || pageHeight <= 0 {
				return NormBox{}, fmt.Errorf("absolute box requires positive page dimensions, got %gx%g", pageWidth, pageHeight)
			}
			l, r = l/pageWidth, r/pageWidth
			t, b = t/pageHeight, b/pageHeight
		}
		if r <= l || b <= t {
			return NormBox{}, fmt.Errorf("degenerate box: right %g <= left %g or bottom %g <= top %g", r, l, b, t)
		}
		return NormBox{Left: l, Top: t, Right: r, Bottom: b, Width: r - l, Height: b - t}, nil

	case has(box.Left, box.Top, box.Width, box.Height):
		l, t, w, h := *box.Left, *box.Top, *box.Width, *box.Height
		if exceedsOne(l, t, w, h) {
			if pageWidth <= 0 || pageHeight <= 0 {
				return NormBox{}, fmt.Errorf("absolute box requires positive page dimensions, got %gx%g", pageWidth, pageHeight)
			}
			l, w = l/pageWidth, w/pageWidth
			t, h = t/pageHeight, h/pageHeight
		}
		if w <= 0 || h <= 0 {
			return NormBox{}, fmt.Errorf("degenerate box: width %g or height %g not positive", w, h)
		}
		return NormBox{Left: l, Top: t, Right: l + w, Bottom: t + h, Width: w, Height: h}, nil

	default:
		return NormBox{}, fmt.Errorf("box has neither left/top/right/bottom nor left/top/width/height")
	}
}

func has(vals ...*float64) bool {
	for _, v := range vals {
		if v == nil {
			return false
		}
	}
	return true
}

func exceedsOne(vals ...float64) bool {
	for _, v := range vals {
		if v > 1 {
			return true
		}
	}
	return false
}
