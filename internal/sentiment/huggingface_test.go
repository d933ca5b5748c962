package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentapi/internal/config"
)

func newHFTestClassifier(t *testing.T, handler http.HandlerFunc) (*HuggingFaceClassifier, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.ClassifierConfig{
		ModelID:   "org/modelo",
		Token:     "hf_test_token",
		BaseURL:   server.URL,
		Timeout:   5 * time.Second,
		BatchSize: 32,
		RPS:       1000,
		Burst:     1000,
	}
	return NewHuggingFaceClassifier(cfg, nil), server
}

func TestClassifyBatchMapsIndexLabels(t *testing.T) {
	classifier, _ := newHFTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/org%2Fmodelo", r.URL.EscapedPath())
		assert.Equal(t, "Bearer hf_test_token", r.Header.Get("Authorization"))

		var req inferenceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Options.WaitForModel)
		require.Len(t, req.Inputs, 3)

		json.NewEncoder(w).Encode([][]classScore{
			{{Label: "LABEL_2", Score: 0.9}, {Label: "LABEL_0", Score: 0.1}},
			{{Label: "LABEL_0", Score: 0.7}, {Label: "LABEL_1", Score: 0.3}},
			{{Label: "LABEL_1", Score: 0.6}, {Label: "LABEL_2", Score: 0.4}},
		})
	})

	labels, err := classifier.ClassifyBatch(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []Label{LabelPositive, LabelNegative, LabelNeutral}, labels)
}

func TestClassifyBatchUnknownClassDegrades(t *testing.T) {
	classifier, _ := newHFTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([][]classScore{
			{{Label: "LABEL_9", Score: 0.99}},
		})
	})

	labels, err := classifier.ClassifyBatch(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []Label{LabelUnknown}, labels)
}

func TestClassifyBatchNon200Fails(t *testing.T) {
	classifier, _ := newHFTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model loading"}`, http.StatusServiceUnavailable)
	})

	_, err := classifier.ClassifyBatch(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestClassifyBatchLengthMismatchFails(t *testing.T) {
	classifier, _ := newHFTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([][]classScore{
			{{Label: "LABEL_1", Score: 1}},
		})
	})

	_, err := classifier.ClassifyBatch(context.Background(), []string{"a", "b"})
	assert.Error(t, err)
}

func TestClassifyBatchEmptyInput(t *testing.T) {
	classifier, server := newHFTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty batch")
	})
	_ = server

	labels, err := classifier.ClassifyBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, labels)
}

func TestClassifySingleText(t *testing.T) {
	classifier, _ := newHFTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([][]classScore{
			{{Label: "positivo", Score: 0.8}, {Label: "negativo", Score: 0.2}},
		})
	})

	label, err := classifier.Classify(context.Background(), "me encanta")
	require.NoError(t, err)
	assert.Equal(t, LabelPositive, label)
}
