package handler

import (
	"encoding/json"
	"net/http"

	"kitchen-core/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service error onto an HTTP status. Domain errors
// carry their own kind; anything else is an internal failure and its detail
// stays out of the response.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	switch model.KindOf(err) {
	case model.KindInvalidArgument:
		writeError(w, http.StatusBadRequest, err.Error(), logger)
	case model.KindNotFound:
		writeError(w, http.StatusNotFound, err.Error(), logger)
	case model.KindConflict, model.KindInvalidState:
		writeError(w, http.StatusConflict, err.Error(), logger)
	default:
		logger.Error().Err(err).Msg("internal error")
		writeError(w, http.StatusInternalServerError, "internal server error", logger)
	}
}

// pathID parses the {id} path segment as a UUID. On failure it writes a 400
// and reports false.
func pathID(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ID format", logger)
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes the request body into dst. On failure it writes a 400
// and reports false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", logger)
		return false
	}
	return true
}
