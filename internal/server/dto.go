package server

import "upload/api/internal/upload"

// APIError is the envelope for every failed request.
type APIError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// UploadResponse wraps a successful upload acknowledgment.
type UploadResponse struct {
	Message string        `json:"message"`
	Data    upload.Result `json:"data"`
}
