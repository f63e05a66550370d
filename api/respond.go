package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Responder writes JSON responses
type Responder struct {
	logger *zap.Logger
}

// NewResponder creates a responder logging through logger
func NewResponder(logger *zap.Logger) Responder {
	return Responder{logger: logger}
}

// WriteJSON writes data with the given status
func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		r.logger.Error("Failed to marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		r.logger.Warn("Failed to write response", zap.Error(err))
	}
}

// WriteError writes an ErrorResponse with the given status
func (r Responder) WriteError(w http.ResponseWriter, status int, message string) {
	r.WriteJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
