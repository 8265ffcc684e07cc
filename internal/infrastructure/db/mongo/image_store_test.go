package mongo

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/menuhub/menu-server/internal/core/domain"
)

// PNG signature followed by the start of an IHDR chunk.
var pixelPNG = base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01"))

func TestDecodeImage(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantCT  string
		wantErr bool
	}{
		{name: "data uri", payload: "data:image/png;base64," + pixelPNG, wantCT: "image/png"},
		{name: "bare base64", payload: pixelPNG, wantCT: "image/png"},
		{name: "not base64 data uri", payload: "data:image/png," + pixelPNG, wantErr: true},
		{name: "garbage", payload: "%%%not-base64%%%", wantErr: true},
		{name: "text content", payload: "aGVsbG8gd29ybGQ=", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, mt, err := decodeImage(tc.payload)
			if tc.wantErr {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeImage returned error: %v", err)
			}
			if mt.String() != tc.wantCT {
				t.Fatalf("content type = %q, want %q", mt.String(), tc.wantCT)
			}
			if len(data) == 0 {
				t.Fatalf("expected decoded bytes")
			}
		})
	}
}

func TestImageStore_UploadPassesThroughURLs(t *testing.T) {
	s := &ImageStore{baseURL: "http://localhost:5000"}

	for _, payload := range []string{"", "https://cdn.test/a.png", "http://cdn.test/b.jpg"} {
		got, err := s.Upload(context.Background(), payload)
		if err != nil {
			t.Fatalf("Upload(%q) returned error: %v", payload, err)
		}
		if got != payload {
			t.Fatalf("Upload(%q) = %q", payload, got)
		}
	}
}

func TestImageStore_OpenMalformedID(t *testing.T) {
	s := &ImageStore{}
	if _, err := s.Open(context.Background(), "not-an-object-id"); !errors.Is(err, domain.ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

func TestObjectIDAndDuplicateHelpers(t *testing.T) {
	if _, ok := objectID("zzz"); ok {
		t.Fatalf("expected malformed id to be rejected")
	}
	if _, ok := objectID("65a1b2c3d4e5f60718293a4b"); !ok {
		t.Fatalf("expected valid id to parse")
	}
	if duplicateOn(errors.New("E11000 duplicate key error index: uniq_email"), restaurantEmailIndex) {
		t.Fatalf("plain errors are not duplicate key errors")
	}
}
