package sentiment

import (
	"context"
	"log/slog"
	"strings"
)

// Reason records why a row received its label. Both degradation reasons map
// to the same external label; keeping them distinct makes the degradation
// path observable and testable.
type Reason int

const (
	// ReasonClassified means the classifier produced the label.
	ReasonClassified Reason = iota
	// ReasonEmptyText means the row had no text to classify.
	ReasonEmptyText
	// ReasonClassifierError means the classifier failed for this row.
	ReasonClassifierError
)

// RowResult is the per-row annotation outcome
type RowResult struct {
	Label    Label
	Degraded bool
	Reason   Reason
}

// Annotator labels table rows with the injected classifier. Classifier
// failures degrade the affected rows to desconocido; the batch never aborts.
type Annotator struct {
	classifier Classifier
	batchSize  int
	logger     *slog.Logger
}

// NewAnnotator creates an annotator. batchSize bounds how many texts go into
// one classifier call.
func NewAnnotator(classifier Classifier, batchSize int, logger *slog.Logger) *Annotator {
	if batchSize <= 0 {
		batchSize = 32
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Annotator{
		classifier: classifier,
		batchSize:  batchSize,
		logger:     logger.With(slog.String("component", "annotator")),
	}
}

// Annotate produces one result per input row, in order. Rows whose text is
// blank after trimming are labeled desconocido without touching the
// classifier. Identical texts are classified once and reused.
func (a *Annotator) Annotate(ctx context.Context, texts []string) []RowResult {
	results := make([]RowResult, len(texts))

	// Collect unique non-empty texts in first-seen order.
	seen := make(map[string]int)
	var unique []string
	for i, text := range texts {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			results[i] = RowResult{Label: LabelUnknown, Degraded: true, Reason: ReasonEmptyText}
			continue
		}
		if _, ok := seen[text]; !ok {
			seen[text] = len(unique)
			unique = append(unique, text)
		}
	}

	labels := a.classifyAll(ctx, unique)

	for i, text := range texts {
		if results[i].Reason == ReasonEmptyText {
			continue
		}
		results[i] = labels[seen[text]]
	}

	return results
}

// classifyAll labels the unique texts batch by batch. A failed batch degrades
// only its own rows.
func (a *Annotator) classifyAll(ctx context.Context, texts []string) []RowResult {
	results := make([]RowResult, len(texts))

	for start := 0; start < len(texts); start += a.batchSize {
		end := start + a.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		labels, err := a.classifier.ClassifyBatch(ctx, batch)
		if err != nil || len(labels) != len(batch) {
			a.logger.DebugContext(ctx, "classifier batch degraded to desconocido",
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err))
			for i := start; i < end; i++ {
				results[i] = RowResult{Label: LabelUnknown, Degraded: true, Reason: ReasonClassifierError}
			}
			continue
		}

		for i, label := range labels {
			if !label.Valid() {
				label = LabelUnknown
			}
			results[start+i] = RowResult{Label: label, Reason: ReasonClassified}
		}
	}

	return results
}

// Labels projects the per-row labels from annotation results
func Labels(results []RowResult) []Label {
	labels := make([]Label, len(results))
	for i, r := range results {
		labels[i] = r.Label
	}
	return labels
}
