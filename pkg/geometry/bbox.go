package geometry

// BBox is an axis-aligned bounding box in left/top/right/bottom form.
// The coordinate space (normalized or absolute) is the caller's to track;
// Normalize converts to the normalized space explicitly.
type BBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 { return b.Right - b.Left }

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 { return b.Bottom - b.Top }

// ToLTWH converts the box to left/top/width/height form.
func (b BBox) ToLTWH() LTWH {
	return LTWH{Left: b.Left, Top: b.Top, Width: b.Width(), Height: b.Height()}
}

// LTWH is an axis-aligned bounding box in left/top/width/height form.
type LTWH struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToBBox converts the box to left/top/right/bottom form.
func (b LTWH) ToBBox() BBox {
	return BBox{Left: b.Left, Top: b.Top, Right: b.Left + b.Width, Bottom: b.Top + b.Height}
}
