package docai

import (
	"testing"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protoLayout(start, end int64, orientation documentaipb.Document_Page_Layout_Orientation) *documentaipb.Document_Page_Layout {
	return &documentaipb.Document_Page_Layout{
		TextAnchor: &documentaipb.Document_TextAnchor{
			TextSegments: []*documentaipb.Document_TextAnchor_TextSegment{
				{StartIndex: start, EndIndex: end},
			},
		},
		BoundingPoly: &documentaipb.BoundingPoly{
			NormalizedVertices: []*documentaipb.NormalizedVertex{
				{X: 0.1, Y: 0.2},
				{X: 0.3, Y: 0.2},
				{X: 0.3, Y: 0.25},
				{X: 0.1, Y: 0.25},
			},
		},
		Orientation: orientation,
	}
}

func TestResultFromProtoNil(t *testing.T) {
	assert.Nil(t, ResultFromProto(nil))
}

func TestResultFromProto(t *testing.T) {
	doc := &documentaipb.Document{
		Text:     "Name:value",
		MimeType: "application/pdf",
		Pages: []*documentaipb.Document_Page{{
			PageNumber: 1,
			Dimension:  &documentaipb.Document_Page_Dimension{Width: 612, Height: 792, Unit: "points"},
			Layout:     protoLayout(0, 10, documentaipb.Document_Page_Layout_PAGE_UP),
			FormFields: []*documentaipb.Document_Page_FormField{{
				FieldName:  protoLayout(0, 4, documentaipb.Document_Page_Layout_ORIENTATION_UNSPECIFIED),
				FieldValue: protoLayout(5, 10, documentaipb.Document_Page_Layout_ORIENTATION_UNSPECIFIED),
				ValueType:  "filled_checkbox",
			}},
			Paragraphs: []*documentaipb.Document_Page_Paragraph{{
				Layout: protoLayout(0, 10, documentaipb.Document_Page_Layout_ORIENTATION_UNSPECIFIED),
			}},
			VisualElements: []*documentaipb.Document_Page_VisualElement{
				{Type: "checkbox", Layout: protoLayout(0, 0, documentaipb.Document_Page_Layout_ORIENTATION_UNSPECIFIED)},
				{Layout: protoLayout(0, 0, documentaipb.Document_Page_Layout_ORIENTATION_UNSPECIFIED)},
			},
		}},
	}

	res := ResultFromProto(doc)
	require.NotNil(t, res)
	assert.Equal(t, "Name:value", res.Text)
	assert.Equal(t, "application/pdf", res.MimeType)
	require.Len(t, res.Pages, 1)

	page := res.Pages[0]
	assert.Equal(t, 1, page.PageNumber)
	assert.Zero(t, page.Rotation)
	require.NotNil(t, page.Dimension)
	assert.Equal(t, 612.0, page.Dimension.Width)

	require.Len(t, page.FormFields, 1)
	ff := page.FormFields[0]
	assert.Equal(t, "Name", ff.Name.Text(res.Text))
	assert.Equal(t, "value", ff.Value.Text(res.Text))
	assert.Equal(t, "filled_checkbox", ff.Value.ValueType)
	require.NotNil(t, ff.Name.Poly)
	assert.Len(t, ff.Name.Poly.NormalizedVertices, 4)

	require.Len(t, page.Paragraphs, 1)
	assert.Equal(t, "Name:value", page.Paragraphs[0].Layout.Text(res.Text))

	// Untyped visual elements come through as "unknown" so downstream
	// shape inference gets a chance at them.
	require.Len(t, page.Symbols, 2)
	assert.Equal(t, "checkbox", page.Symbols[0].Type)
	assert.Equal(t, "unknown", page.Symbols[1].Type)
}

func TestResultFromProtoRotation(t *testing.T) {
	tests := []struct {
		orientation documentaipb.Document_Page_Layout_Orientation
		want        int
	}{
		{documentaipb.Document_Page_Layout_ORIENTATION_UNSPECIFIED, 0},
		{documentaipb.Document_Page_Layout_PAGE_UP, 0},
		{documentaipb.Document_Page_Layout_PAGE_RIGHT, 90},
		{documentaipb.Document_Page_Layout_PAGE_DOWN, 180},
		{documentaipb.Document_Page_Layout_PAGE_LEFT, 270},
	}
	for _, tt := range tests {
		doc := &documentaipb.Document{
			Pages: []*documentaipb.Document_Page{{
				PageNumber: 1,
				Layout:     &documentaipb.Document_Page_Layout{Orientation: tt.orientation},
			}},
		}
		res := ResultFromProto(doc)
		require.Len(t, res.Pages, 1)
		assert.Equal(t, tt.want, res.Pages[0].Rotation, "orientation %v", tt.orientation)
	}
}

func TestResultFromProtoEmptyPolygonBecomesNil(t *testing.T) {
	doc := &documentaipb.Document{
		Pages: []*documentaipb.Document_Page{{
			PageNumber: 1,
			VisualElements: []*documentaipb.Document_Page_VisualElement{{
				Type:   "checkbox",
				Layout: &documentaipb.Document_Page_Layout{BoundingPoly: &documentaipb.BoundingPoly{}},
			}},
		}},
	}
	res := ResultFromProto(doc)
	require.Len(t, res.Pages[0].Symbols, 1)
	assert.Nil(t, res.Pages[0].Symbols[0].Poly)
}
