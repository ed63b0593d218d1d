package token

import (
	"image"
	"os"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/tokenpress/pkg/errors"
)

// Loader reads and decodes source images, caching decoded results by path
// so repeated copies of a token do not re-read the same file.
type Loader struct {
	mu     sync.Mutex
	images map[string]image.Image
}

// NewLoader creates an empty image loader.
func NewLoader() *Loader {
	return &Loader{images: make(map[string]image.Image)}
}

// Load returns the decoded image at path, reading it on first use.
func (l *Loader) Load(path string) (image.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.images[path]; ok {
		return img, nil
	}

	img, err := readImage(path)
	if err != nil {
		return nil, err
	}
	l.images[path] = img
	return img, nil
}

// Clear drops all cached images.
func (l *Loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.images = make(map[string]image.Image)
}

// Len returns the number of cached images.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.images)
}

// readImage decodes a single source image from disk.
func readImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "image file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeAssetUnreadable, err, "failed to decode image %s", path)
	}
	return img, nil
}
