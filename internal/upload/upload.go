// Package upload acknowledges file uploads. No bytes are read or stored.
package upload

import "context"

// StatusUploaded is the only status a Result carries.
const StatusUploaded = "uploaded"

// Input describes the parts of an upload request the service looks at.
type Input struct {
	OriginalName *string `json:"originalname"`
}

// Result is the acknowledgment returned to the caller.
type Result struct {
	Filename string `json:"filename"`
	Status   string `json:"status"`
}

// Uploader accepts uploads.
type Uploader interface {
	Upload(ctx context.Context, in Input) (Result, error)
}

// Service is the default Uploader. It echoes the declared name back.
type Service struct{}

// NewService returns a ready Service.
func NewService() *Service {
	return &Service{}
}

// Upload never fails.
func (s *Service) Upload(_ context.Context, in Input) (Result, error) {
	res := Result{Status: StatusUploaded}
	if in.OriginalName != nil {
		res.Filename = *in.OriginalName
	}
	return res, nil
}
