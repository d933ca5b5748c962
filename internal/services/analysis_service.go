package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"sentapi/internal/analytics"
	"sentapi/internal/dataset"
	"sentapi/internal/sentiment"
)

// Analysis is the full pipeline result for an uploaded file. Field names are
// the external response contract.
type Analysis struct {
	Predictions []sentiment.Label `json:"predicciones"`
	Data        *analytics.Bundle `json:"data"`
	Columns     []string          `json:"columns"`
}

// AnalysisService runs the ingestion-normalization-aggregation pipeline.
// It holds no per-request state and is safe for concurrent use; the
// classifier is the only shared dependency and is read-only.
type AnalysisService struct {
	classifier sentiment.Classifier
	annotator  *sentiment.Annotator
	engine     *analytics.Engine
	schema     dataset.Schema
	logger     *slog.Logger
	tracer     trace.Tracer
}

// NewAnalysisService creates the pipeline service with its injected
// classifier dependency
func NewAnalysisService(classifier sentiment.Classifier, batchSize int, logger *slog.Logger, tracer trace.Tracer) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("sentapi")
	}
	return &AnalysisService{
		classifier: classifier,
		annotator:  sentiment.NewAnnotator(classifier, batchSize, logger),
		engine:     analytics.NewEngine(logger),
		schema:     dataset.DefaultSchema(),
		logger:     logger.With(slog.String("service", "analysis")),
		tracer:     tracer,
	}
}

// PredictText classifies a single text. Validation of emptiness and length
// happens at the transport layer; a classifier failure here is a server
// fault, not a degradation.
func (s *AnalysisService) PredictText(ctx context.Context, text string) (sentiment.Label, error) {
	ctx, span := s.tracer.Start(ctx, "analysis.predict_text")
	defer span.End()

	label, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return sentiment.LabelUnknown, fmt.Errorf("classify text: %w", err)
	}
	return label, nil
}

// ReadColumns decodes an upload and returns its trimmed column names without
// running the pipeline
func (s *AnalysisService) ReadColumns(ctx context.Context, filename string, r io.Reader) ([]string, error) {
	_, span := s.tracer.Start(ctx, "analysis.read_columns")
	defer span.End()

	raw, err := dataset.Decode(filename, r)
	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(raw.Header))
	for _, name := range raw.Header {
		columns = append(columns, strings.TrimSpace(name))
	}
	return columns, nil
}

// AnalyzeFile runs the full pipeline: decode, normalize, annotate, then
// aggregate and word-frequency in parallel, sanitize, respond. Row-level
// problems degrade single values; only client-input errors fail the request.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, filename string, r io.Reader) (*Analysis, error) {
	ctx, span := s.tracer.Start(ctx, "analysis.pipeline",
		trace.WithAttributes(attribute.String("file.name", filename)))
	defer span.End()

	raw, err := dataset.Decode(filename, r)
	if err != nil {
		return nil, err
	}

	table, err := dataset.Normalize(raw, s.schema)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("table.rows", table.RowCount()),
		attribute.Int("table.columns", len(table.Columns())),
	)

	texts, _ := table.Texts(dataset.ColPostBody)
	results := s.annotator.Annotate(ctx, texts)
	labels := sentiment.Labels(results)

	degraded := 0
	for _, res := range results {
		if res.Reason == sentiment.ReasonClassifierError {
			degraded++
		}
	}
	if degraded > 0 {
		s.logger.WarnContext(ctx, "rows degraded to desconocido on classifier failure",
			slog.Int("degraded_rows", degraded),
			slog.Int("total_rows", len(results)))
	}

	// The aggregation engine and the word-frequency analyzer are
	// independent; run them concurrently.
	var (
		bundle   *analytics.Bundle
		topWords []analytics.WordCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bundle = s.engine.Aggregate(gctx, table, labels)
		return nil
	})
	g.Go(func() error {
		topWords = analytics.TopWords(texts, analytics.DefaultTopWords)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	bundle.TopWords = topWords

	s.logger.InfoContext(ctx, "file analyzed",
		slog.String("file", filename),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", len(table.Columns())))

	return &Analysis{
		Predictions: labels,
		Data:        bundle,
		Columns:     table.Columns(),
	}, nil
}
