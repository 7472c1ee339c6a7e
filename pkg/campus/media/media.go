// Package media stores uploaded images referenced by the image fields of
// campus content. Backends live in the memory, fs and s3 subpackages.
package media

import (
	"context"
	"errors"
	"io"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound indicates the object does not exist
	ErrNotFound = errors.New("media object not found")

	// ErrInvalidKey indicates a key that was not produced by NewKey
	ErrInvalidKey = errors.New("invalid media key")
)

// Object describes a stored file.
type Object struct {
	Key         string    `json:"key"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Store is a blob store for uploaded images. Get and Delete return
// ErrNotFound for keys that were never stored.
type Store interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, *Object, error)
	Delete(ctx context.Context, key string) error
}

// Linker is implemented by stores that serve objects from their own
// endpoint. The HTTP layer redirects to the signed URL instead of streaming.
type Linker interface {
	SignedURL(ctx context.Context, key string) (string, error)
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var keyPattern = regexp.MustCompile(`^images/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.(jpg|png|gif|webp)$`)

// IsImage reports whether contentType is an accepted image type.
func IsImage(contentType string) bool {
	_, ok := imageExtensions[contentType]
	return ok
}

// NewKey returns a fresh object key for an image of contentType.
func NewKey(contentType string) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", errors.New("unsupported image type " + contentType)
	}
	return "images/" + uuid.NewString() + ext, nil
}

// ValidKey reports whether key has the shape produced by NewKey.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}
