package server

import (
	"encoding/json"
	"net/http"
)

// envelope is the shape of every response: the client layer only looks at
// success and data.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

// writeFailure reports a business failure. The status stays 200 so clients
// always receive a parseable envelope.
func writeFailure(w http.ResponseWriter, message string) {
	if lw, ok := w.(interface{ SetErrorMessage(string) }); ok {
		lw.SetErrorMessage(message)
	}
	writeJSON(w, http.StatusOK, envelope{Success: false, Error: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	if lw, ok := w.(interface{ SetErrorMessage(string) }); ok {
		lw.SetErrorMessage(message)
	}
	writeJSON(w, status, envelope{Success: false, Error: message})
}
