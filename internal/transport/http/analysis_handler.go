package http

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"sentapi/internal/dataset"
	apierrors "sentapi/internal/errors"
)

// AnalysisHandler handles the prediction and file-analysis HTTP requests
type AnalysisHandler struct {
	service      AnalysisServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
	maxFileBytes int64
	maxTextLen   int
}

// NewAnalysisHandler creates the analysis handler
func NewAnalysisHandler(service AnalysisServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxFileBytes int64, maxTextLen int) *AnalysisHandler {
	return &AnalysisHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "analysis_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
		maxFileBytes: maxFileBytes,
		maxTextLen:   maxTextLen,
	}
}

// Routes returns the analysis routes
func (h *AnalysisHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/predict", h.PredictText)
	r.Post("/read-file", h.ReadFile)
	r.Post("/predict-file", h.PredictFile)

	return r
}

// predictRequest is the single-text prediction payload
type predictRequest struct {
	Text string `json:"text" validate:"required"`
}

// predictResponse is the single-text prediction result
type predictResponse struct {
	Prediction string `json:"prediction"`
}

// PredictText handles POST /predict. Blank or oversized texts are client
// errors; a classifier failure here is a server fault.
func (h *AnalysisHandler) PredictText(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrEmptyText)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrEmptyText)
		return
	}
	if utf8.RuneCountInString(req.Text) > h.maxTextLen {
		h.errorHandler.HandleError(w, r, apierrors.ErrTextTooLong(h.maxTextLen))
		return
	}

	label, err := h.service.PredictText(r.Context(), req.Text)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ClassifierError(err))
		return
	}

	render.JSON(w, r, predictResponse{Prediction: string(label)})
}

// columnsResponse is the read-file result
type columnsResponse struct {
	Columns []string `json:"columns"`
}

// ReadFile handles POST /read-file: decode the upload, return its columns
func (h *AnalysisHandler) ReadFile(w http.ResponseWriter, r *http.Request) {
	filename, file, ok := h.uploadedFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	columns, err := h.service.ReadColumns(r.Context(), filename, file)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapPipelineError(err))
		return
	}

	render.JSON(w, r, columnsResponse{Columns: columns})
}

// PredictFile handles POST /predict-file: the full analysis pipeline
func (h *AnalysisHandler) PredictFile(w http.ResponseWriter, r *http.Request) {
	filename, file, ok := h.uploadedFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	analysis, err := h.service.AnalyzeFile(r.Context(), filename, file)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "file analysis failed",
			slog.String("file", filename),
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, mapPipelineError(err))
		return
	}

	render.JSON(w, r, analysis)
}

// uploadedFile extracts the "file" part of a size-limited multipart request.
// On failure it writes the error response and returns ok=false.
func (h *AnalysisHandler) uploadedFile(w http.ResponseWriter, r *http.Request) (string, multipart.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
		} else {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", "A file upload is required"))
		}
		return "", nil, false
	}

	return header.Filename, file, true
}

// mapPipelineError translates pipeline sentinel errors into client-facing
// API errors; anything unrecognized stays a server fault
func mapPipelineError(err error) error {
	switch {
	case errors.Is(err, dataset.ErrUnsupportedFormat):
		return apierrors.ErrUnsupportedFormat
	case errors.Is(err, dataset.ErrUnreadable):
		return apierrors.ErrUnreadableFile
	case errors.Is(err, dataset.ErrMissingPostBody):
		return apierrors.ErrMissingPostBody
	default:
		return err
	}
}
