package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Nainee99/bondeo/internal/shared/apperr"
	"github.com/google/uuid"
)

// MaxUploadSize bounds a single image upload.
const MaxUploadSize = 10 << 20 // 10MB

// ObjectStore is the slice of the S3 wrapper the media domain needs.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	URL(key string) string
}

type Service interface {
	// Upload stores an image and returns its durable URL.
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

type service struct {
	store ObjectStore
}

func NewService(store ObjectStore) Service {
	return &service{store: store}
}

func (s *service) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: unsupported content type %q", apperr.ErrUploadFailed, contentType)
	}
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrUploadFailed, err)
	}
	if len(data) == 0 || len(data) > MaxUploadSize {
		return "", fmt.Errorf("%w: bad size %d", apperr.ErrUploadFailed, len(data))
	}
	key := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrUploadFailed, err)
	}
	return s.store.URL(key), nil
}
