// Package texture loads and caches images referenced by URL: overlay images
// for deep-sky objects and legacy marker sprites.
package texture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/sync/singleflight"

	"github.com/litescript/ls-planetarium/internal/logging"
	"github.com/litescript/ls-planetarium/internal/observability"
)

// ErrDecode is returned when fetched bytes are not a supported image.
var ErrDecode = errors.New("texture decode failed")

// Loader fetches the raw bytes behind a URL or path.
type Loader interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Status is the cache state of one URL.
type Status int

const (
	StatusPending Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Image is a decoded texture.
type Image struct {
	URL    string
	Width  int
	Height int
	img    image.Image
}

// Sample returns the colour at texture coordinate (u, v), with v = 0 at the
// bottom edge. Coordinates are clamped to [0, 1].
func (i *Image) Sample(u, v float64) colorful.Color {
	if i == nil || i.img == nil || i.Width == 0 || i.Height == 0 {
		return colorful.Color{}
	}
	u = clamp01(u)
	v = clamp01(v)
	b := i.img.Bounds()
	x := b.Min.X + int(u*float64(i.Width-1)+0.5)
	y := b.Min.Y + int((1-v)*float64(i.Height-1)+0.5)
	c, _ := colorful.MakeColor(i.img.At(x, y))
	return c
}

func clamp01(x float64) float64 {
	if x < 0 || x != x {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Decode turns image bytes into an Image.
func Decode(url string, data []byte) (*Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", url, ErrDecode, err)
	}
	b := img.Bounds()
	return &Image{URL: url, Width: b.Dx(), Height: b.Dy(), img: img}, nil
}

// Cache holds decoded textures keyed by URL. Get never blocks: a miss starts
// a background load and the caller falls back until a later frame sees the
// image ready. Concurrent loads of one URL share a single fetch. A URL that
// fails is remembered and not retried for the life of the cache.
type Cache struct {
	loader  Loader
	log     *logging.Logger
	metrics *observability.Collector

	mu      sync.RWMutex
	ready   map[string]*Image
	failed  map[string]error
	pending map[string]bool

	group  singleflight.Group
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCache creates a texture cache.
func NewCache(loader Loader, log *logging.Logger, m *observability.Collector) *Cache {
	if log == nil {
		log = logging.Discard()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Cache{
		loader:  loader,
		log:     log,
		metrics: m,
		ready:   make(map[string]*Image),
		failed:  make(map[string]error),
		pending: make(map[string]bool),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Get returns the image for url if it is ready. Otherwise it reports the
// status and, on first sight, schedules an asynchronous load.
func (c *Cache) Get(url string) (*Image, Status) {
	c.mu.RLock()
	img, ok := c.ready[url]
	_, bad := c.failed[url]
	inflight := c.pending[url]
	c.mu.RUnlock()

	switch {
	case ok:
		c.metrics.TextureResult("hit")
		return img, StatusReady
	case bad:
		c.metrics.TextureResult("error")
		return nil, StatusFailed
	case inflight:
		return nil, StatusPending
	}

	c.mu.Lock()
	if c.pending[url] || c.ctx.Err() != nil {
		c.mu.Unlock()
		return nil, StatusPending
	}
	c.pending[url] = true
	c.wg.Add(1)
	c.mu.Unlock()

	c.metrics.TextureResult("miss")
	go func() {
		defer c.wg.Done()
		_, _ = c.Load(c.ctx, url)
	}()
	return nil, StatusPending
}

// Status reports the cache state of url without scheduling a load.
func (c *Cache) Status(url string) Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.ready[url]; ok {
		return StatusReady
	}
	if _, ok := c.failed[url]; ok {
		return StatusFailed
	}
	return StatusPending
}

// Load fetches and decodes url, blocking until done. Results are cached.
func (c *Cache) Load(ctx context.Context, url string) (*Image, error) {
	c.mu.RLock()
	if img, ok := c.ready[url]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	if err, ok := c.failed[url]; ok {
		c.mu.RUnlock()
		return nil, err
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(url, func() (any, error) {
		data, err := c.loader.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		return Decode(url, data)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, url)

	if err != nil {
		// A cancelled load is not a property of the URL; leave it retryable.
		if ctx.Err() == nil {
			if _, seen := c.failed[url]; !seen {
				c.failed[url] = err
				c.log.Warn("texture load failed, using vector marker", "url", url, "err", err)
			}
		}
		return nil, err
	}

	img := v.(*Image)
	if existing, ok := c.ready[url]; ok {
		return existing, nil
	}
	c.ready[url] = img
	c.log.Debug("texture loaded", "url", url, "width", img.Width, "height", img.Height)
	return img, nil
}

// Close cancels in-flight loads and waits for them to finish. Get after
// Close never schedules new work.
func (c *Cache) Close() {
	// Get checks ctx and calls wg.Add under mu, so no Add can race the Wait.
	c.mu.Lock()
	c.cancel()
	c.mu.Unlock()
	c.wg.Wait()
}
