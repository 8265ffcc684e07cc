package mongo

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/menuhub/menu-server/internal/core/domain"
	"github.com/menuhub/menu-server/internal/core/ports"
)

const (
	imageBucket   = "images"
	maxImageBytes = 5 << 20
)

// ImageStore keeps menu images in GridFS and hands out URLs served by
// GET /images/:id.
type ImageStore struct {
	bucket  *gridfs.Bucket
	baseURL string
}

func NewImageStore(db *mongo.Database, publicBaseURL string) (*ImageStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(imageBucket))
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}
	return &ImageStore{bucket: bucket, baseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

func (s *ImageStore) Upload(ctx context.Context, payload string) (string, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return "", nil
	}
	if isRemoteURL(payload) {
		return payload, nil
	}

	data, mt, err := decodeImage(payload)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id, err := s.bucket.UploadFromStream(uuid.NewString()+mt.Extension(), bytes.NewReader(data),
		options.GridFSUpload().SetMetadata(bson.M{"content_type": mt.String()}))
	if err != nil {
		return "", fmt.Errorf("gridfs upload: %w", err)
	}
	return s.baseURL + "/images/" + id.Hex(), nil
}

func (s *ImageStore) Open(_ context.Context, id string) (*ports.StoredImage, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrImageNotFound
	}

	stream, err := s.bucket.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("gridfs open: %w", err)
	}

	file := stream.GetFile()
	contentType := "application/octet-stream"
	if v, ok := file.Metadata.Lookup("content_type").StringValueOK(); ok && v != "" {
		contentType = v
	}
	return &ports.StoredImage{ContentType: contentType, Size: file.Length, Body: stream}, nil
}

func isRemoteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// decodeImage accepts a base64 data URI or bare base64 and sniffs the
// content type from the decoded bytes.
func decodeImage(payload string) ([]byte, *mimetype.MIME, error) {
	encoded := payload
	if strings.HasPrefix(payload, "data:") {
		header, body, found := strings.Cut(payload, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, nil, domain.NewValidationError("image", "image must be a base64 data URI")
		}
		encoded = body
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(encoded); err != nil {
			return nil, nil, domain.NewValidationError("image", "image is not valid base64")
		}
	}
	if len(data) == 0 {
		return nil, nil, domain.NewValidationError("image", "image is empty")
	}
	if len(data) > maxImageBytes {
		return nil, nil, domain.NewValidationError("image", "image must not exceed 5MB")
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, nil, domain.NewValidationError("image", "image must be an image, got "+mt.String())
	}
	return data, mt, nil
}
