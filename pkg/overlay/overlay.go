// Package overlay renders extraction results onto PDF pages for review:
// a colored rectangle per field, X-diagonals for checked checkboxes and
// optional field labels, drawn over the page image when one is supplied.
// It is the visual counterpart of the extraction engine, used to audit
// what was detected and where.
package overlay

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"

	// Image formats the page renderer may hand us.
	_ "image/jpeg"
	_ "image/png"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gardar/formscan/pkg/extract"
	"github.com/gardar/formscan/pkg/geometry"
)

// Config holds rendering options for the field overlay.
type Config struct {
	LineWidth  float64      // Stroke width of field rectangles
	DrawLabels bool         // Whether to print the field name above each box
	LabelSize  float64      // Font size for field labels
	PageWidth  float64      // Fallback page width in points when the page reports none
	PageHeight float64      // Fallback page height in points
	Logger     *slog.Logger // Optional; nil discards output
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LineWidth:  1.5,
		DrawLabels: true,
		LabelSize:  7,
		PageWidth:  612, // US Letter
		PageHeight: 792,
	}
}

// rgb is a plain 8-bit color triple for fpdf's color setters.
type rgb struct{ r, g, b int }

// Field colors keyed by type so reviewers can tell detections apart at
// a glance.
var typeColors = map[extract.FieldType]rgb{
	extract.FieldCheckbox:  {255, 87, 51},
	extract.FieldText:      {51, 168, 255},
	extract.FieldDate:      {255, 51, 245},
	extract.FieldSignature: {51, 255, 87},
}

var defaultColor = rgb{170, 170, 170}

// Render draws one PDF page per extracted page, with every field's
// normalized bounding box scaled to page coordinates. pageImages may be
// nil or shorter than the page list; pages without an image are drawn on
// a blank canvas. Fields without a bounding box are skipped.
func Render(doc *extract.Document, pageImages [][]byte, cfg Config) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("no document provided")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", cfg.LabelSize)

	for i, page := range doc.Pages {
		w, h := page.Dimensions.Width, page.Dimensions.Height
		if w <= 0 || h <= 0 {
			w, h = cfg.PageWidth, cfg.PageHeight
		}
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})

		if i < len(pageImages) && len(pageImages[i]) > 0 {
			imageName := fmt.Sprintf("page%d", i)
			imageType, err := detectImageType(pageImages[i])
			if err != nil {
				return nil, fmt.Errorf("failed to detect image type for page %d: %w", i+1, err)
			}
			opts := fpdf.ImageOptions{ReadDpi: false, ImageType: imageType}
			pdf.RegisterImageOptionsReader(imageName, opts, bytes.NewReader(pageImages[i]))
			pdf.ImageOptions(imageName, 0, 0, w, h, false, opts, 0, "")
		}

		for _, field := range page.Fields {
			if field.BBox == nil {
				continue
			}
			// Boxes loaded from stored templates may be in absolute page
			// coordinates; zero-size boxes are not drawable.
			box, err := geometry.Normalize(
				geometry.LTRBBox(field.BBox.Left, field.BBox.Top, field.BBox.Right, field.BBox.Bottom), w, h)
			if err != nil {
				log.Warn("skipping field with malformed bounding box", "field", field.ID, "error", err)
				continue
			}
			drawField(pdf, field, box, w, h, cfg)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate overlay PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func drawField(pdf *fpdf.Fpdf, field extract.Field, box geometry.NormBox, pageW, pageH float64, cfg Config) {
	x := box.Left * pageW
	y := box.Top * pageH
	w := box.Width * pageW
	h := box.Height * pageH

	color, ok := typeColors[field.Type]
	if !ok {
		color = defaultColor
	}
	pdf.SetDrawColor(color.r, color.g, color.b)
	pdf.SetLineWidth(cfg.LineWidth)
	pdf.Rect(x, y, w, h, "D")

	if field.Type == extract.FieldCheckbox && field.Value.Checked() {
		pdf.Line(x, y, x+w, y+h)
		pdf.Line(x, y+h, x+w, y)
	}

	if cfg.DrawLabels && field.Name != "" {
		pdf.SetTextColor(color.r, color.g, color.b)
		pdf.SetFontSize(cfg.LabelSize)
		pdf.Text(x, y-2, field.Name)
	}
}

// detectImageType tries to figure out whether the data is PNG, JPEG, etc.
func detectImageType(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image config: %w", err)
	}
	return strings.ToUpper(format), nil
}
