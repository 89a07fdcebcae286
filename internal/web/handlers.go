package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mate-labs/matepr/internal/domain/models"
	domainErrors "github.com/mate-labs/matepr/internal/errors"
	"github.com/mate-labs/matepr/internal/logger"
)

type summarizeRequest struct {
	Repo     string `json:"repo"`
	PRNumber int    `json:"prNumber"`
	Provider string `json:"provider"`
}

type summarizeResponse struct {
	Summary  string             `json:"summary"`
	Provider string             `json:"provider"`
	Usage    *models.TokenUsage `json:"usage,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Service: "matepr",
		Version: s.version,
	})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, string(domainErrors.TypeValidation), "invalid JSON body")
		return
	}

	if req.Repo == "" || req.PRNumber <= 0 {
		writeError(w, http.StatusBadRequest, string(domainErrors.TypeValidation),
			s.translations.GetMessage("web_missing_fields", 0, nil))
		return
	}

	ctx := r.Context()
	service, err := s.pipeline.CreateSummaryService(ctx, req.Repo, req.Provider)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}

	summary, err := service.SummarizePR(ctx, req.PRNumber)
	if err != nil {
		s.writeAppError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summarizeResponse{
		Summary:  summary.Text,
		Provider: summary.Provider,
		Usage:    summary.Usage,
	})
}

// writeAppError traduce el error de dominio a un estado HTTP y lo devuelve
// como sobre JSON {"error": {"code", "message"}}.
func (s *Server) writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := string(domainErrors.TypeInternal)
	message := err.Error()

	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		status = statusForErrorType(appErr.Type)
		code = string(appErr.Type)
		message = appErr.Message
	}

	logger.FromContext(r.Context()).Warn("summarize request failed",
		"status", status,
		"code", code,
		"error", err,
	)
	writeError(w, status, code, message)
}

func statusForErrorType(t domainErrors.ErrorType) int {
	switch t {
	case domainErrors.TypeValidation, domainErrors.TypeConfiguration:
		return http.StatusBadRequest
	case domainErrors.TypeAuth:
		return http.StatusUnauthorized
	case domainErrors.TypeNotFound:
		return http.StatusNotFound
	case domainErrors.TypeRateLimit:
		return http.StatusTooManyRequests
	case domainErrors.TypeProvider:
		return http.StatusBadGateway
	case domainErrors.TypeNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}
