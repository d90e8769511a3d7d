package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Forgeworks_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req RecalculateRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Recalculate"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// readBody reads a raw upload up to maxBytes, or DefaultMaxBodyBytes when
// maxBytes is not positive. On failure the response has already been written.
func readBody(w http.ResponseWriter, r *http.Request, maxBytes int64, actionName string) ([]byte, bool) {
	log := logger.FromContext(r.Context())

	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn(fmt.Sprintf("%s body too large", actionName), "limit", tooLarge.Limit)
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return nil, false
		}
		log.Error(fmt.Sprintf("Failed to read %s body", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return nil, false
	}
	return data, true
}

// GetPathParam returns the decoded chi URL parameter. chi matches against
// RawPath when the request carries one (an escaped slash, say), and only then
// is the parameter still percent-encoded.
func GetPathParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())

	raw := chi.URLParam(r, paramName)
	value := raw
	var err error
	if r.URL.RawPath != "" {
		value, err = url.PathUnescape(raw)
	}
	if err != nil || value == "" {
		log.Warn(fmt.Sprintf("Missing %s path parameter", paramName), "raw", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, paramName))
		return "", false
	}
	return value, true
}

// GetQueryParam retrieves and validates a required query parameter from the request.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
// Unlike GetQueryParam, this does not write an error response if the parameter is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseQuantity reads the optional quantity parameter, defaulting to 1
func parseQuantity(r *http.Request, w http.ResponseWriter) (int, bool) {
	raw := GetOptionalQueryParam(r, ParamQuantity, "1")
	qty, err := strconv.Atoi(raw)
	if err != nil || qty <= 0 {
		logger.FromContext(r.Context()).Warn("Invalid quantity parameter", "quantity", raw)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidQuantity)
		return 0, false
	}
	return qty, true
}

// LogRequestFields is a helper to log common request fields in a structured way.
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}
