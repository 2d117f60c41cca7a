package domain

import "context"

// ImageStore is the opaque "store bytes, return URL" collaborator for
// uploaded event images.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, contentType string) (url string, err error)
}

// UploadError wraps any transport or provider fault from an ImageStore.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return "image upload failed: " + e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
