package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentapi/internal/dataset"
	apierrors "sentapi/internal/errors"
	"sentapi/internal/sentiment"
	"sentapi/internal/services"
)

// stubAnalysisService returns canned pipeline results
type stubAnalysisService struct {
	label    sentiment.Label
	columns  []string
	analysis *services.Analysis
	err      error
}

func (s *stubAnalysisService) PredictText(ctx context.Context, text string) (sentiment.Label, error) {
	if s.err != nil {
		return sentiment.LabelUnknown, s.err
	}
	return s.label, nil
}

func (s *stubAnalysisService) ReadColumns(ctx context.Context, filename string, r io.Reader) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.columns, nil
}

func (s *stubAnalysisService) AnalyzeFile(ctx context.Context, filename string, r io.Reader) (*services.Analysis, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

func newTestHandler(service AnalysisServiceInterface) *AnalysisHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAnalysisHandler(service, logger, apierrors.NewErrorHandler(logger, false), 1<<20, 512)
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func postFile(t *testing.T, handler http.Handler, path, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return problem
}

func TestPredictTextSuccess(t *testing.T) {
	handler := newTestHandler(&stubAnalysisService{label: sentiment.LabelPositive}).Routes()

	rec := postJSON(t, handler, "/predict", `{"text":"me encanta"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "positivo", resp["prediction"])
}

func TestPredictTextEmpty(t *testing.T) {
	handler := newTestHandler(&stubAnalysisService{}).Routes()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing_field", body: `{}`},
		{name: "empty_string", body: `{"text":""}`},
		{name: "whitespace_only", body: `{"text":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, handler, "/predict", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			problem := decodeProblem(t, rec)
			assert.Equal(t, "El texto no puede estar vacío.", problem["detail"])
		})
	}
}

func TestPredictTextTooLong(t *testing.T) {
	handler := newTestHandler(&stubAnalysisService{}).Routes()
	long := strings.Repeat("a", 600)

	rec := postJSON(t, handler, "/predict", `{"text":"`+long+`"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	problem := decodeProblem(t, rec)
	assert.Equal(t, "El texto no puede exceder 512 caracteres.", problem["detail"])
}

func TestPredictTextBoundaryLengthAccepted(t *testing.T) {
	handler := newTestHandler(&stubAnalysisService{label: sentiment.LabelNeutral}).Routes()
	exact := strings.Repeat("á", 512)

	rec := postJSON(t, handler, "/predict", `{"text":"`+exact+`"}`)
	assert.Equal(t, http.StatusOK, rec.Code, "length limit counts runes, not bytes")
}

func TestPredictTextClassifierFailure(t *testing.T) {
	handler := newTestHandler(&stubAnalysisService{err: errors.New("model down")}).Routes()

	rec := postJSON(t, handler, "/predict", `{"text":"hola"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReadFileReturnsColumns(t *testing.T) {
	handler := newTestHandler(&stubAnalysisService{columns: []string{"Post Body", "Likes"}}).Routes()

	rec := postFile(t, handler, "/read-file", "export.csv", "Post Body,Likes\nhola,1\n")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"columns":["Post Body","Likes"]}`, rec.Body.String())
}

func TestReadFileMissingPart(t *testing.T) {
	handler := newTestHandler(&stubAnalysisService{}).Routes()

	req := httptest.NewRequest(http.MethodPost, "/read-file", strings.NewReader("no es multipart"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredictFileSuccess(t *testing.T) {
	analysis := &services.Analysis{
		Predictions: []sentiment.Label{sentiment.LabelPositive, sentiment.LabelNegative},
		Data:        nil,
		Columns:     []string{"Post Body"},
	}
	handler := newTestHandler(&stubAnalysisService{analysis: analysis}).Routes()

	rec := postFile(t, handler, "/predict-file", "export.csv", "Post Body\nTexto positivo\nTexto negativo\n")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.JSONEq(t, `["positivo","negativo"]`, string(resp["predicciones"]))
	assert.JSONEq(t, `["Post Body"]`, string(resp["columns"]))
}

func TestPredictFilePipelineErrors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantedStatus int
		wantedDetail string
	}{
		{
			name:         "unsupported_format",
			err:          dataset.ErrUnsupportedFormat,
			wantedStatus: http.StatusBadRequest,
			wantedDetail: "Formato de archivo no soportado.",
		},
		{
			name:         "unreadable_file",
			err:          dataset.ErrUnreadable,
			wantedStatus: http.StatusBadRequest,
			wantedDetail: "No se pudo leer el archivo.",
		},
		{
			name:         "missing_post_body",
			err:          dataset.ErrMissingPostBody,
			wantedStatus: http.StatusBadRequest,
			wantedDetail: "El archivo no contiene la columna 'Post Body'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(&stubAnalysisService{err: tt.err}).Routes()

			rec := postFile(t, handler, "/predict-file", "export.csv", "datos")

			require.Equal(t, tt.wantedStatus, rec.Code)
			problem := decodeProblem(t, rec)
			assert.Equal(t, tt.wantedDetail, problem["detail"])
		})
	}
}

func TestPredictFilePayloadTooLarge(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAnalysisHandler(&stubAnalysisService{}, logger, apierrors.NewErrorHandler(logger, false), 64, 512).Routes()

	rec := postFile(t, handler, "/predict-file", "export.csv", strings.Repeat("x", 4096))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
