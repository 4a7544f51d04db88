package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"tolujohn-backend-go/internal/services"
	"tolujohn-backend-go/internal/store"
)

// Envelope is the uniform response wrapper for every endpoint.
type Envelope struct {
	Success bool                  `json:"success"`
	Data    any                   `json:"data,omitempty"`
	Message string                `json:"message,omitempty"`
	Errors  []services.FieldError `json:"errors,omitempty"`
	Stack   string                `json:"stack,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Envelope{Success: true, Data: data})
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{Success: true, Message: message})
}

// Error is the single funnel every handler routes failures through. It maps
// the error taxonomy onto statuses and suppresses internals in production.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr services.ServiceError
	if errors.As(err, &svcErr) {
		WriteJSON(w, svcErr.Status, Envelope{Message: svcErr.Message, Errors: svcErr.Errors})
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		WriteJSON(w, http.StatusNotFound, Envelope{Message: "Not found"})
		return
	}
	s.Log.Error().Err(err).Str("path", r.URL.Path).Msg("unhandled error")
	resp := Envelope{Message: "Internal Server Error"}
	if !s.Config.IsProduction() {
		resp.Message = err.Error()
		resp.Stack = string(debug.Stack())
	}
	WriteJSON(w, http.StatusInternalServerError, resp)
}
