package assetstorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/campusdesk/campusdesk/internal/pkg/apperrors"
	"github.com/campusdesk/campusdesk/internal/pkg/logger"
)

// LocalStorage keeps faculty photos on the local filesystem. It serves
// development setups; the served URLs use the same encoded-path format as
// the bucket driver so deletion works identically.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage ensures the storage directory exists and returns the driver.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	dir := filepath.Join(basePath, ImagePrefix)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	logger.Info().Str("path", dir).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// Upload writes the file under a fresh object key and returns its URL.
func (ls *LocalStorage) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	key := NewObjectKey(filename)
	dstPath := filepath.Join(ls.basePath, filepath.FromSlash(key))

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("%w: create %s: %v", apperrors.ErrStorageFailure, dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file")
		// Do not leave a partial upload visible.
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("%w: write %s: %v", apperrors.ErrStorageFailure, dstPath, err)
	}

	fileURL := PublicURL(ls.baseURL, key)
	logger.Info().Str("key", key).Str("url", fileURL).Msg("Image saved")
	return fileURL, nil
}

// Delete removes the file behind a retrieval URL. Missing files and
// underivable URLs count as successful deletes.
func (ls *LocalStorage) Delete(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}

	key, ok := ObjectPathFromURL(fileURL)
	if !ok {
		logger.Warn().Str("url", fileURL).Msg("Could not derive object path from image URL, skipping delete")
		return nil
	}

	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(key))
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("%w: delete %s: %v", apperrors.ErrStorageFailure, key, err)
	}

	logger.Info().Str("path", physicalPath).Msg("Image deleted")
	return nil
}
