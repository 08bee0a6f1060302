package extract

import "math"

// Confidence expresses certainty in a classification decision on [0,1].
// Independent uncertainty sources always combine multiplicatively, never
// additively, so a final score can be traced back to its contributing
// factors and only ever decreases as defects accumulate.
type Confidence float64

// Combine folds another uncertainty source into the confidence.
func (c Confidence) Combine(other Confidence) Confidence {
	return c * other
}

// Round returns the confidence rounded to two decimals for presentation.
func (c Confidence) Round() Confidence {
	return Confidence(math.Round(float64(c)*100) / 100)
}
