package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"upload/api/internal/upload"
)

var errTrailingJSON = errors.New("body must contain a single JSON value")

// multipartFileField is the form field whose filename becomes the upload's original name.
const multipartFileField = "file"

// handleUpload godoc
// @Title Upload file
// @Description Acknowledges an upload and echoes the declared original name.
// @Resource Uploads
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param body body upload.Input false "Upload descriptor"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} APIError
// @Failure 413 {object} APIError
// @Failure 500 {object} APIError
// @Route /api/v1/upload [post]
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if limit := s.cfg.HTTP.MaxBodyBytes; limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}

	in, err := readUploadInput(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, msgPayloadTooLarge, err)
			return
		}
		s.writeError(w, http.StatusBadRequest, msgInvalidPayload, err)
		return
	}

	result, err := s.uploads.Upload(r.Context(), in)
	if err != nil {
		uploadsTotal.WithLabelValues(uploadResultFailure).Inc()
		s.log.Error().Err(err).Msg("upload failed")
		s.writeError(w, http.StatusInternalServerError, msgUploadFailed, err)
		return
	}

	uploadsTotal.WithLabelValues(uploadResultSuccess).Inc()
	s.writeJSON(w, http.StatusOK, UploadResponse{Message: msgUploadSucceeded, Data: result})
}

// readUploadInput extracts the upload descriptor from a JSON or multipart body.
// Other content types carry no descriptor.
func readUploadInput(r *http.Request) (upload.Input, error) {
	defer r.Body.Close()

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return decodeUploadJSON(r.Body)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return upload.Input{}, err
	}

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		return decodeUploadJSON(r.Body)
	case mediaType == "multipart/form-data":
		return readMultipartName(r)
	default:
		return upload.Input{}, nil
	}
}

func decodeUploadJSON(body io.Reader) (upload.Input, error) {
	dec := json.NewDecoder(body)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return upload.Input{}, nil
		}
		return upload.Input{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingJSON
		}
		return upload.Input{}, err
	}

	// Well-formed bodies that are not shaped like an Input, including a
	// non-string originalname, carry no name.
	var in upload.Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return upload.Input{}, nil
	}
	return in, nil
}

func readMultipartName(r *http.Request) (upload.Input, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return upload.Input{}, err
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return upload.Input{}, nil
		}
		if err != nil {
			return upload.Input{}, err
		}
		if part.FormName() != multipartFileField {
			continue
		}
		name := part.FileName()
		return upload.Input{OriginalName: &name}, nil
	}
}
