package sentiment

import "context"

// Label is a sentiment classification outcome. The four values are part of
// the external data contract and must not be renamed.
type Label string

const (
	LabelNegative Label = "negativo"
	LabelNeutral  Label = "neutro"
	LabelPositive Label = "positivo"
	LabelUnknown  Label = "desconocido"
)

// Valid reports whether the label is one of the four fixed values
func (l Label) Valid() bool {
	switch l {
	case LabelNegative, LabelNeutral, LabelPositive, LabelUnknown:
		return true
	}
	return false
}

// Classifier is the external sentiment model. Implementations classify a
// non-empty text into negativo, neutro, or positivo. The model is loaded
// once and shared read-only across requests; implementations must be safe
// for concurrent use.
type Classifier interface {
	// Classify labels a single text.
	Classify(ctx context.Context, text string) (Label, error)
	// ClassifyBatch labels a batch of texts in order. The result has one
	// label per input text.
	ClassifyBatch(ctx context.Context, texts []string) ([]Label, error)
}
