package sentiment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClassifier returns canned labels by keyword and records calls
type scriptedClassifier struct {
	calls   int
	batches [][]string
	fail    bool
}

func (c *scriptedClassifier) Classify(ctx context.Context, text string) (Label, error) {
	labels, err := c.ClassifyBatch(ctx, []string{text})
	if err != nil {
		return LabelUnknown, err
	}
	return labels[0], nil
}

func (c *scriptedClassifier) ClassifyBatch(ctx context.Context, texts []string) ([]Label, error) {
	c.calls++
	c.batches = append(c.batches, texts)
	if c.fail {
		return nil, errors.New("model unavailable")
	}
	labels := make([]Label, len(texts))
	for i, text := range texts {
		switch {
		case strings.Contains(text, "bueno"):
			labels[i] = LabelPositive
		case strings.Contains(text, "malo"):
			labels[i] = LabelNegative
		default:
			labels[i] = LabelNeutral
		}
	}
	return labels, nil
}

func TestAnnotateLabelsRowsInOrder(t *testing.T) {
	classifier := &scriptedClassifier{}
	annotator := NewAnnotator(classifier, 32, nil)

	results := annotator.Annotate(context.Background(), []string{
		"que bueno",
		"que malo",
		"un texto",
	})

	require.Len(t, results, 3)
	assert.Equal(t, LabelPositive, results[0].Label)
	assert.Equal(t, LabelNegative, results[1].Label)
	assert.Equal(t, LabelNeutral, results[2].Label)
	for _, res := range results {
		assert.False(t, res.Degraded)
		assert.Equal(t, ReasonClassified, res.Reason)
	}
}

func TestAnnotateBlankTextSkipsClassifier(t *testing.T) {
	classifier := &scriptedClassifier{}
	annotator := NewAnnotator(classifier, 32, nil)

	results := annotator.Annotate(context.Background(), []string{"", "   ", "\t"})

	assert.Equal(t, 0, classifier.calls, "blank rows must not invoke the classifier")
	for _, res := range results {
		assert.Equal(t, LabelUnknown, res.Label)
		assert.True(t, res.Degraded)
		assert.Equal(t, ReasonEmptyText, res.Reason)
	}
}

func TestAnnotateDeduplicatesRepeatedTexts(t *testing.T) {
	classifier := &scriptedClassifier{}
	annotator := NewAnnotator(classifier, 32, nil)

	results := annotator.Annotate(context.Background(), []string{
		"que bueno", "que bueno", "que malo", "que bueno",
	})

	require.Equal(t, 1, classifier.calls)
	assert.Equal(t, []string{"que bueno", "que malo"}, classifier.batches[0])
	assert.Equal(t, LabelPositive, results[0].Label)
	assert.Equal(t, LabelPositive, results[1].Label)
	assert.Equal(t, LabelNegative, results[2].Label)
	assert.Equal(t, LabelPositive, results[3].Label)
}

func TestAnnotateClassifierFailureDegradesBatch(t *testing.T) {
	classifier := &scriptedClassifier{fail: true}
	annotator := NewAnnotator(classifier, 32, nil)

	results := annotator.Annotate(context.Background(), []string{"uno", "dos"})

	for _, res := range results {
		assert.Equal(t, LabelUnknown, res.Label)
		assert.True(t, res.Degraded)
		assert.Equal(t, ReasonClassifierError, res.Reason)
	}
}

func TestAnnotateRespectsBatchSize(t *testing.T) {
	classifier := &scriptedClassifier{}
	annotator := NewAnnotator(classifier, 2, nil)

	texts := []string{"a1", "a2", "a3", "a4", "a5"}
	results := annotator.Annotate(context.Background(), texts)

	assert.Equal(t, 3, classifier.calls)
	assert.Len(t, results, 5)
}

func TestLabelsProjection(t *testing.T) {
	results := []RowResult{
		{Label: LabelPositive},
		{Label: LabelUnknown, Degraded: true, Reason: ReasonEmptyText},
	}
	assert.Equal(t, []Label{LabelPositive, LabelUnknown}, Labels(results))
}

func TestLabelValid(t *testing.T) {
	assert.True(t, LabelPositive.Valid())
	assert.True(t, LabelUnknown.Valid())
	assert.False(t, Label("feliz").Valid())
}
