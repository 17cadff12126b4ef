// Package images stores post images on local disk. Uploads are decoded to
// verify they really are images, bounded in size, re-encoded and saved under
// a random name; the returned reference is what gets stored on the post.
package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	// maxUploadBytes bounds the raw upload size before decoding
	maxUploadBytes = 10 << 20 // 10 MiB

	// maxDimension is the longest edge kept after normalization
	maxDimension = 1920
)

var (
	// ErrNotAnImage is returned when the upload cannot be decoded as an image
	ErrNotAnImage = errors.New("upload is not a valid image")

	// ErrImageTooLarge is returned when the upload exceeds the size limit
	ErrImageTooLarge = errors.New("image exceeds the upload size limit")
)

// DiskStore persists images under a single directory
type DiskStore struct {
	dir string
}

// NewDiskStore creates a store rooted at dir, creating it if needed
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Store validates, normalizes and saves an uploaded image, returning the
// stored filename as an opaque reference
func (s *DiskStore) Store(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) > maxUploadBytes {
		return "", ErrImageTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrNotAnImage
	}

	// Bound the longest edge; Fit is a no-op for smaller images
	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	name := uuid.NewString() + ".jpg"
	path := filepath.Join(s.dir, name)

	if err := imaging.Save(img, path, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return name, nil
}

// Path returns the on-disk location for a stored reference
func (s *DiskStore) Path(ref string) string {
	return filepath.Join(s.dir, filepath.Base(ref))
}
