package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// APIResponse is the standard response wrapper
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// APIError represents an error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes into a buffer first; an encode failure becomes a plain 500.
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(APIResponse{Success: status < 300, Data: data}); err != nil {
		logger.Error("could not encode response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("could not write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := APIResponse{Error: &APIError{Code: code, Message: message}}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Warn("could not write error response", zap.Error(err))
	}
}

func badRequest(w http.ResponseWriter, logger *zap.Logger, message string) {
	writeError(w, logger, http.StatusBadRequest, "BAD_REQUEST", message)
}

func notFound(w http.ResponseWriter, logger *zap.Logger, message string) {
	writeError(w, logger, http.StatusNotFound, "NOT_FOUND", message)
}

func internalError(w http.ResponseWriter, logger *zap.Logger, err error) {
	logger.Error("request failed", zap.Error(err))
	writeError(w, logger, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// decodeJSON reads at most maxBodyBytes of JSON into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
		}
		return nil, fmt.Errorf("could not read request body: %w", err)
	}
	return body, nil
}
