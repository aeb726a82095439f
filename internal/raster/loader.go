package raster

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
)

// Cache provides thread-safe caching of decoded source imagery to avoid
// redundant disk reads.
//
// Decoded image.Image values are keyed by the exact file path used to
// load them. The one-shot CLI loads each frame exactly once, but the
// embedded service mode may receive repeated requests against the same
// frame; the cache lets those skip decoding.
//
// Cached images remain in memory until Evict() or Clear() is called.
// Annotated output imagery is never cached.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates an empty image cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{
		images: make(map[string]image.Image),
	}
}

// Load returns the image at path, reading and decoding it on first use.
//
// Decoding goes through the imaging package so JPEG EXIF orientation is
// applied before any pixel analysis. Supported formats are JPEG, PNG,
// GIF, TIFF, and BMP.
//
// Different path strings referring to the same file (relative vs
// absolute) produce separate cache entries.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes a single cached image. Unknown paths are a no-op.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear drops every cached image, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}
