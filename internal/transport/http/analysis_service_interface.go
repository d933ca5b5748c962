package http

import (
	"context"
	"io"

	"sentapi/internal/sentiment"
	"sentapi/internal/services"
)

// AnalysisServiceInterface is the contract the analysis handler depends on.
// Defined here so handler tests can substitute a mock service.
type AnalysisServiceInterface interface {
	PredictText(ctx context.Context, text string) (sentiment.Label, error)
	ReadColumns(ctx context.Context, filename string, r io.Reader) ([]string, error)
	AnalyzeFile(ctx context.Context, filename string, r io.Reader) (*services.Analysis, error)
}
