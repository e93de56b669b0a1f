package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/rishadfb/email-creation/pkg/binder"
	"github.com/rishadfb/email-creation/pkg/catalog"
	"github.com/rishadfb/email-creation/pkg/contentgen"
	"github.com/rishadfb/email-creation/pkg/logger"
)

// Response is the JSON envelope every endpoint returns. Exactly one of
// Data and Error is set.
type Response struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail carries error information in the envelope.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps err to an HTTP status and envelope code. Validation
// errors keep their per-field details; domain sentinels get stable codes;
// anything unrecognized is a logged 500 that does not leak err to the
// client.
func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	detail := &ErrorDetail{Code: "internal_error", Message: "internal server error"}

	var valErr ValidationError
	var httpErr HTTPError
	switch {
	case errors.As(err, &valErr):
		status = http.StatusUnprocessableEntity
		detail.Code = "validation_error"
		detail.Message = "request validation failed"
		detail.Details = valErr
	case errors.As(err, &httpErr):
		status = httpErr.Status
		detail.Code = httpErr.Code
		detail.Message = http.StatusText(httpErr.Status)
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType):
		status = http.StatusBadRequest
		detail.Code = "bad_request"
		detail.Message = err.Error()
	case errors.Is(err, catalog.ErrTemplateNotFound):
		status = http.StatusNotFound
		detail.Code = "template_not_found"
		detail.Message = err.Error()
	case errors.Is(err, contentgen.ErrNoCandidates):
		status = http.StatusServiceUnavailable
		detail.Code = "no_templates"
		detail.Message = err.Error()
	case errors.Is(err, contentgen.ErrGenerationFailed):
		status = http.StatusBadGateway
		detail.Code = "generation_failed"
		detail.Message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed",
			logger.Error(err),
			logger.RequestID(middleware.GetReqID(r.Context())))
	}

	writeJSON(w, status, Response{Error: detail})
}
