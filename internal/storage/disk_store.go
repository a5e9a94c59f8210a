package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/preptalk/preptalk/internal/apperror"
	"github.com/rs/zerolog/log"
)

// DiskStore writes uploads under a base directory, one folder per kind.
type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", baseDir, err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

func (s *DiskStore) Save(ctx context.Context, kind string, r io.Reader, size int64, declaredMime, originalName string) (string, error) {
	if err := validate(kind, size, declaredMime); err != nil {
		return "", err
	}

	relPath := storedName(kind, originalName)
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s folder: %w", kind, err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	// LimitReader guards against callers under-declaring the size.
	written, err := io.Copy(dst, io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if written > MaxUploadSize {
		os.Remove(fullPath)
		return "", fmt.Errorf("%w: file exceeds the 50MB limit", apperror.ErrPayloadTooLarge)
	}

	log.Info().Str("kind", kind).Str("path", relPath).Int64("bytes", written).Msg("Stored upload on disk")
	return relPath, nil
}
