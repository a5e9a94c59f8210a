package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/preptalk/preptalk/internal/apperror"
)

// Upload kinds accepted by the blob store.
const (
	KindResume = "resume"
	KindImage  = "image"
	KindVideo  = "video"
	KindAudio  = "audio"
)

// MaxUploadSize caps a single upload at 50 MiB.
const MaxUploadSize = 50 * 1024 * 1024

// BlobStore persists uploaded media under a collision-resistant name and
// returns a stable relative path for the caller to attach to its record.
type BlobStore interface {
	Save(ctx context.Context, kind string, r io.Reader, size int64, declaredMime, originalName string) (string, error)
}

var resumeMimes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// validate rejects uploads whose declared MIME type does not match the
// allowed set for the kind, or which exceed the size cap.
func validate(kind string, size int64, declaredMime string) error {
	if size > MaxUploadSize {
		return fmt.Errorf("%w: file exceeds the 50MB limit", apperror.ErrPayloadTooLarge)
	}
	switch kind {
	case KindResume:
		if !resumeMimes[declaredMime] {
			return fmt.Errorf("%w: only PDF and Word documents are allowed for resumes", apperror.ErrUnsupportedMediaType)
		}
	case KindImage:
		if !strings.HasPrefix(declaredMime, "image/") {
			return fmt.Errorf("%w: only images are allowed", apperror.ErrUnsupportedMediaType)
		}
	case KindVideo:
		if !strings.HasPrefix(declaredMime, "video/") {
			return fmt.Errorf("%w: only videos are allowed", apperror.ErrUnsupportedMediaType)
		}
	case KindAudio:
		if !strings.HasPrefix(declaredMime, "audio/") {
			return fmt.Errorf("%w: only audio files are allowed", apperror.ErrUnsupportedMediaType)
		}
	default:
		return fmt.Errorf("%w: unknown upload kind %q", apperror.ErrValidation, kind)
	}
	return nil
}

// storedName builds the per-kind relative path for a new object.
func storedName(kind, originalName string) string {
	return filepath.ToSlash(filepath.Join(kind, uuid.NewString()+filepath.Ext(originalName)))
}
