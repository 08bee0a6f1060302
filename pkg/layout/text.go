package layout

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TextAnchor locates a piece of text within the document's full text as a
// list of [start,end) rune offset ranges.
type TextAnchor struct {
	Segments []Segment `json:"text_segments"`
}

// Segment is a single [start,end) offset range.
type Segment struct {
	StartIndex int64 `json:"start_index"`
	EndIndex   int64 `json:"end_index"`
}

// Resolve materializes the anchor's text by concatenating each segment's
// slice of the full text. Segments with out-of-range offsets are skipped
// rather than treated as errors; OCR output occasionally references text
// beyond the document when pages were truncated upstream. The result is
// whitespace-trimmed and NFC-normalized, since OCR engines emit
// decomposed forms for accented characters.
func (a TextAnchor) Resolve(fullText string) string {
	if len(a.Segments) == 0 {
		return ""
	}
	runes := []rune(fullText)
	total := int64(len(runes))

	var b strings.Builder
	for _, seg := range a.Segments {
		if seg.StartIndex < 0 || seg.EndIndex > total || seg.StartIndex > seg.EndIndex {
			continue
		}
		b.WriteString(string(runes[seg.StartIndex:seg.EndIndex]))
	}
	return norm.NFC.String(strings.TrimSpace(b.String()))
}

// Text resolves the region's anchor against the document's full text.
func (r TextRegion) Text(fullText string) string {
	return r.Anchor.Resolve(fullText)
}
