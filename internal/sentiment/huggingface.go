package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"sentapi/internal/config"
)

// indexLabels maps the model's class index to the contract labels.
// Out-of-set classes degrade to desconocido.
var indexLabels = map[string]Label{
	"LABEL_0":  LabelNegative,
	"LABEL_1":  LabelNeutral,
	"LABEL_2":  LabelPositive,
	"negativo": LabelNegative,
	"neutro":   LabelNeutral,
	"positivo": LabelPositive,
}

// HuggingFaceClassifier calls a hosted text-classification inference
// endpoint. It is safe for concurrent use; outbound calls share one rate
// limiter so a large upload cannot starve the upstream quota.
type HuggingFaceClassifier struct {
	endpoint string
	token    string
	client   *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewHuggingFaceClassifier builds a classifier from configuration
func NewHuggingFaceClassifier(cfg config.ClassifierConfig, logger *slog.Logger) *HuggingFaceClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &HuggingFaceClassifier{
		endpoint: cfg.BaseURL + "/models/" + url.PathEscape(cfg.ModelID),
		token:    cfg.Token,
		client:   &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		logger:   logger.With(slog.String("component", "huggingface_classifier")),
	}
}

// inferenceRequest is the hosted inference API request body
type inferenceRequest struct {
	Inputs  []string         `json:"inputs"`
	Options inferenceOptions `json:"options"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// classScore is one (label, score) pair in the inference response
type classScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify labels a single text
func (c *HuggingFaceClassifier) Classify(ctx context.Context, text string) (Label, error) {
	labels, err := c.ClassifyBatch(ctx, []string{text})
	if err != nil {
		return LabelUnknown, err
	}
	return labels[0], nil
}

// ClassifyBatch labels a batch of texts with one inference call
func (c *HuggingFaceClassifier) ClassifyBatch(ctx context.Context, texts []string) ([]Label, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	body, err := json.Marshal(inferenceRequest{
		Inputs:  texts,
		Options: inferenceOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, fmt.Errorf("encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.WarnContext(ctx, "inference endpoint returned non-200",
			slog.Int("status", resp.StatusCode),
			slog.Int("batch_size", len(texts)))
		return nil, fmt.Errorf("inference endpoint status %d: %s", resp.StatusCode, payload)
	}

	var scores [][]classScore
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		return nil, fmt.Errorf("decode inference response: %w", err)
	}
	if len(scores) != len(texts) {
		return nil, fmt.Errorf("inference response has %d results for %d inputs", len(scores), len(texts))
	}

	labels := make([]Label, len(texts))
	for i, rowScores := range scores {
		labels[i] = argmaxLabel(rowScores)
	}
	return labels, nil
}

// argmaxLabel picks the highest-scoring class and maps it onto the contract
// label set
func argmaxLabel(scores []classScore) Label {
	if len(scores) == 0 {
		return LabelUnknown
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	if label, ok := indexLabels[best.Label]; ok {
		return label
	}
	return LabelUnknown
}
