package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// NotFoundResponse carries close item names when a lookup misses
type NotFoundResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to a user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	if statusCode >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", statusCode)
	}
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Lookup messages
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgRecipeNotFoundError = "Recipe not found"

	// Ingestion messages
	ErrMsgInvalidInputError      = "Invalid input. Please check the document against its schema."
	ErrMsgInvalidRulesetError    = "Ruleset is invalid"
	ErrMsgNonFiniteError         = "Every number must be finite"
	ErrMsgDuplicateItemError     = "Catalog contains a duplicate item name"
	ErrMsgDuplicateRecipeError   = "Catalog contains two recipes for the same item"
	ErrMsgUnknownResultItemError = "A recipe produces an item the catalog does not define"
	ErrMsgInvalidRecipeError     = "Recipe is invalid"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Non-finite is checked before invalid ruleset since ruleset failures wrap both
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrNonFinite):
		return http.StatusUnprocessableEntity, ErrMsgNonFiniteError
	case errors.Is(err, domain.ErrInvalidRuleset):
		return http.StatusUnprocessableEntity, ErrMsgInvalidRulesetError
	case errors.Is(err, domain.ErrDuplicateItemName):
		return http.StatusUnprocessableEntity, ErrMsgDuplicateItemError
	case errors.Is(err, domain.ErrDuplicateRecipe):
		return http.StatusUnprocessableEntity, ErrMsgDuplicateRecipeError
	case errors.Is(err, domain.ErrUnknownResultItem):
		return http.StatusUnprocessableEntity, ErrMsgUnknownResultItemError
	case errors.Is(err, domain.ErrInvalidRecipe):
		return http.StatusUnprocessableEntity, ErrMsgInvalidRecipeError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
