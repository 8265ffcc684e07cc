package ports

import (
	"context"
	"io"
)

// ImageUploader turns an image payload into a stored, publicly reachable URL.
type ImageUploader interface {
	// Upload accepts a data URI or raw base64 payload. Payloads that are
	// already http(s) URLs are returned unchanged; an empty payload yields "".
	Upload(ctx context.Context, payload string) (string, error)
}

// StoredImage is an open handle on an uploaded image.
type StoredImage struct {
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// ImageStore is an ImageUploader that can also serve what it stored.
type ImageStore interface {
	ImageUploader
	Open(ctx context.Context, id string) (*StoredImage, error)
}
