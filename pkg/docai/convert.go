package docai

import (
	"cloud.google.com/go/documentai/apiv1/documentaipb"

	"github.com/gardar/formscan/pkg/geometry"
	"github.com/gardar/formscan/pkg/layout"
)

// ResultFromProto converts a Document AI response into the layout result
// consumed by the extraction engine. All optional proto data is resolved
// here once: missing layouts become empty anchors, missing polygons
// become nil, and visual elements without a recognized type are passed
// through as "unknown" so shape inference can reclassify them downstream.
func ResultFromProto(doc *documentaipb.Document) *layout.Result {
	if doc == nil {
		return nil
	}

	res := &layout.Result{
		Text:     doc.Text,
		MimeType: doc.MimeType,
		Pages:    make([]layout.Page, 0, len(doc.Pages)),
	}

	for _, page := range doc.Pages {
		p := layout.Page{
			PageNumber: int(page.PageNumber),
			Rotation:   rotationFromLayout(page.Layout),
		}

		if page.Dimension != nil {
			p.Dimension = &layout.Dimension{
				Width:  float64(page.Dimension.Width),
				Height: float64(page.Dimension.Height),
				Unit:   page.Dimension.Unit,
			}
		}

		p.FormFields = make([]layout.FormField, 0, len(page.FormFields))
		for _, ff := range page.FormFields {
			p.FormFields = append(p.FormFields, layout.FormField{
				Name:  regionFromLayout(ff.FieldName, ""),
				Value: regionFromLayout(ff.FieldValue, ff.ValueType),
			})
		}

		p.Paragraphs = make([]layout.Paragraph, 0, len(page.Paragraphs))
		for _, para := range page.Paragraphs {
			var poly *layout.BoundingPoly
			if para.Layout != nil {
				poly = polyFromProto(para.Layout.BoundingPoly)
			}
			p.Paragraphs = append(p.Paragraphs, layout.Paragraph{
				Poly:   poly,
				Layout: regionFromLayout(para.Layout, ""),
			})
		}

		p.Symbols = make([]layout.Symbol, 0, len(page.VisualElements))
		for _, ve := range page.VisualElements {
			symType := ve.Type
			if symType == "" {
				symType = "unknown"
			}
			var poly *layout.BoundingPoly
			if ve.Layout != nil {
				poly = polyFromProto(ve.Layout.BoundingPoly)
			}
			p.Symbols = append(p.Symbols, layout.Symbol{
				Type: symType,
				Poly: poly,
			})
		}

		res.Pages = append(res.Pages, p)
	}

	return res
}

func regionFromLayout(l *documentaipb.Document_Page_Layout, valueType string) layout.TextRegion {
	region := layout.TextRegion{ValueType: valueType}
	if l == nil {
		return region
	}
	region.Poly = polyFromProto(l.BoundingPoly)
	if l.TextAnchor != nil {
		region.Anchor.Segments = make([]layout.Segment, 0, len(l.TextAnchor.TextSegments))
		for _, seg := range l.TextAnchor.TextSegments {
			region.Anchor.Segments = append(region.Anchor.Segments, layout.Segment{
				StartIndex: seg.StartIndex,
				EndIndex:   seg.EndIndex,
			})
		}
	}
	return region
}

func polyFromProto(poly *documentaipb.BoundingPoly) *layout.BoundingPoly {
	if poly == nil {
		return nil
	}
	out := &layout.BoundingPoly{}
	for _, v := range poly.NormalizedVertices {
		out.NormalizedVertices = append(out.NormalizedVertices, geometry.Point{
			X: float64(v.X),
			Y: float64(v.Y),
		})
	}
	for _, v := range poly.Vertices {
		out.Vertices = append(out.Vertices, geometry.Point{
			X: float64(v.X),
			Y: float64(v.Y),
		})
	}
	if len(out.NormalizedVertices) == 0 && len(out.Vertices) == 0 {
		return nil
	}
	return out
}

// rotationFromLayout maps the page layout orientation to degrees of
// rotation; upright and unspecified pages report zero.
func rotationFromLayout(l *documentaipb.Document_Page_Layout) int {
	if l == nil {
		return 0
	}
	switch l.Orientation {
	case documentaipb.Document_Page_Layout_PAGE_RIGHT:
		return 90
	case documentaipb.Document_Page_Layout_PAGE_DOWN:
		return 180
	case documentaipb.Document_Page_Layout_PAGE_LEFT:
		return 270
	default:
		return 0
	}
}
