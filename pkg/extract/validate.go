package extract

import "github.com/gardar/formscan/pkg/layout"

// ValidateStructure gates the pipeline on structural sanity. Each defect
// applies an independent multiplicative penalty to an initial confidence
// of 1.0; an absent document or a document without pages is terminal.
//
// A document failing the 0.6 threshold is still processed downstream,
// but callers are expected to treat the output as degraded.
func (e *Extractor) ValidateStructure(res *layout.Result) Validation {
	if res == nil {
		return Validation{IsValid: false, Message: "Document is None", Confidence: 0}
	}
	if len(res.Pages) == 0 {
		return Validation{IsValid: false, Message: "Document has no pages", Confidence: 0}
	}

	conf := Confidence(1.0)

	if res.Text == "" {
		conf = conf.Combine(0.7)
		e.log.Warn("document has no text content")
	}

	for i := range res.Pages {
		if res.Pages[i].Dimension == nil {
			conf = conf.Combine(0.9)
			e.log.Warn("page has no dimension information", "page", i+1)
		}
		if res.Pages[i].Rotation != 0 {
			conf = conf.Combine(0.8)
			e.log.Warn("page is rotated", "page", i+1, "rotation", res.Pages[i].Rotation)
		}
	}

	if conf < 0.6 {
		return Validation{IsValid: false, Message: "Document structure is too poor for reliable processing", Confidence: conf}
	}
	return Validation{IsValid: true, Message: "Document structure is valid", Confidence: conf}
}
