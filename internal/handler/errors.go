package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/pkordes/travelbook/internal/domain"
)

// Stable error codes returned in the "code" field of error bodies.
const (
	codeUnauthorized   = "auth.unauthorized"
	codeValidation     = "validation.failed"
	codeTooLarge       = "request.too_large"
	codeNotFound       = "not_found"
	codeForbidden      = "travel.forbidden"
	codeAlreadyDeleted = "travel.already_deleted"
	codeInternal       = "server.error"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
}

// fieldError describes one invalid request field.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validationErrors is a set of field errors. It matches domain.ErrValidation
// under errors.Is so it can travel through service call chains.
type validationErrors []fieldError

func (v validationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (v validationErrors) Is(target error) bool { return target == domain.ErrValidation }

// sorted returns the errors ordered by field name.
func (v validationErrors) sorted() validationErrors {
	out := append(validationErrors(nil), v...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeValidation(w http.ResponseWriter, fields validationErrors) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Code:    codeValidation,
		Message: "the request contains invalid fields",
		Errors:  fields.sorted(),
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusForbidden, codeUnauthorized, "you are not allowed to perform this action")
}

// writeServiceError maps an error returned by the service layer to a response.
// notFound is the message used when the error is domain.ErrNotFound, because
// the handler is the layer that knows what was being looked up.
// Unexpected errors are logged and answered with a generic 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var (
		fields validationErrors
		field  *domain.FieldError
	)
	switch {
	case errors.As(err, &fields):
		writeValidation(w, fields)
	case errors.As(err, &field):
		writeValidation(w, validationErrors{{Field: field.Field, Message: field.Message}})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, unwrapMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, notFound)
	case errors.Is(err, domain.ErrUnauthenticated):
		writeUnauthorized(w)
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "you are not allowed to delete this travel")
	case errors.Is(err, domain.ErrAlreadyDeleted):
		writeError(w, http.StatusConflict, codeAlreadyDeleted, "the travel is already deleted")
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"storage", errors.Is(err, domain.ErrStorage),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "service.TravelService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
