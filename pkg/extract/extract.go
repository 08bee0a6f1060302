// Package extract turns a raw page-layout analysis result into a
// normalized set of typed field records: text, checkbox, date and
// signature fields with label, value, bounding box and confidence score.
//
// The pipeline runs in one synchronous pass over an immutable input:
//
//   - ValidateStructure gates the document and emits a confidence
//     multiplier; an absent document or one without pages yields a
//     degraded empty result.
//   - ExtractFields converts key-value form fields through an ordered
//     checkbox-classification cascade.
//   - ExtractCheckboxes converts detected symbols into checkbox
//     candidates, inferring non-standard shapes and penalizing rotation
//     and unreported state.
//   - FindLabel associates each unnamed checkbox with the nearest
//     paragraph using reading-order-weighted spatial search.
//
// Page results are merged into a single ordered field list with
// sequential ids. Faults are contained at the smallest possible scope:
// a bad symbol or field is logged and skipped, never aborting its page,
// and a caller always receives a result document.
package extract

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gardar/formscan/pkg/layout"
)

// Extractor runs the structural-extraction pipeline. The logger is
// scoped to one extraction call's stages; a nil logger discards output.
type Extractor struct {
	log *slog.Logger
}

// New returns an Extractor logging through the given logger.
func New(log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Extractor{log: log}
}

// Extract processes one layout-analysis result into a Document. It never
// returns nil: structurally unprocessable input yields a document with
// the failed validation verdict, the raw text when available, and empty
// page and field lists, so callers can surface a low-confidence state
// instead of a hard failure.
func (e *Extractor) Extract(res *layout.Result) *Document {
	validation := e.ValidateStructure(res)

	doc := &Document{
		MimeType:   "application/pdf",
		Pages:      []PageResult{},
		Fields:     []Field{},
		Validation: validation,
	}
	if res == nil {
		return doc
	}
	doc.Text = res.Text
	if res.MimeType != "" {
		doc.MimeType = res.MimeType
	}

	// Terminal structural failures stop here; sub-threshold documents are
	// still processed and flagged as degraded by the validation verdict.
	if !validation.IsValid && validation.Confidence == 0 {
		e.log.Warn("document structure validation failed", "message", validation.Message)
		return doc
	}

	for i := range res.Pages {
		page := &res.Pages[i]
		pageNum := page.PageNumber
		if pageNum == 0 {
			pageNum = i + 1
		}
		e.log.Info("processing page", "page", pageNum)

		pr := PageResult{
			PageNumber: pageNum,
			Dimensions: pageDimensions(page),
			Fields:     []Field{},
		}

		for _, field := range e.ExtractFields(page, res.Text) {
			field.ID = fmt.Sprintf("field_%d", len(doc.Fields))
			field.Page = pageNum
			pr.Fields = append(pr.Fields, field)
			doc.Fields = append(doc.Fields, field)
		}

		for _, cb := range e.ExtractCheckboxes(page, res.Text) {
			field := Field{
				ID:         fmt.Sprintf("checkbox_%d", len(doc.Fields)),
				Type:       FieldCheckbox,
				Name:       cb.Label,
				Value:      CheckboxValue(cb.Checked),
				Page:       pageNum,
				Confidence: cb.Confidence,
			}
			if len(cb.Poly) > 0 {
				bounds := cb.Poly.Bounds()
				field.BBox = &bounds
			}
			pr.Fields = append(pr.Fields, field)
			doc.Fields = append(doc.Fields, field)
		}

		doc.Pages = append(doc.Pages, pr)
	}

	e.log.Info("extraction complete", "fields", len(doc.Fields), "pages", len(doc.Pages))
	return doc
}

func pageDimensions(page *layout.Page) Dimensions {
	if page.Dimension == nil {
		return Dimensions{}
	}
	return Dimensions{
		Width:  page.Dimension.Width,
		Height: page.Dimension.Height,
		Unit:   page.Dimension.Unit,
	}
}
