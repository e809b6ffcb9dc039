package server

import (
	"encoding/json"
	"net/http"
)

const (
	msgUploadSucceeded = "File uploaded successfully"
	msgUploadFailed    = "File upload failed"
	msgHealthFailed    = "health check failed"
	msgInvalidPayload  = "invalid payload"
	msgPayloadTooLarge = "payload too large"
)

const greeting = "Hello, World!"

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string, err error) {
	body := APIError{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	s.writeJSON(w, status, body)
}

// handleRoot godoc
// @Title Greeting
// @Description Returns a static greeting.
// @Resource System
// @Produce plain
// @Success 200 {string} string
// @Route / [get]
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(greeting))
}
