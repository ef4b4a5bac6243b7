package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/logging"
	"github.com/litescript/ls-planetarium/internal/observability"
)

// Sources names where each catalog part comes from. Empty means built-in.
type Sources struct {
	Stars          string
	Constellations string
	Objects        string
	Manifest       string
}

// Store publishes the session catalog. Load runs once per session; readers
// call Current from any goroutine and never block on loading.
type Store struct {
	fetcher *Fetcher
	sources Sources
	log     *logging.Logger
	metrics *observability.Collector

	current atomic.Pointer[Catalog]
	once    sync.Once
}

// NewStore creates a store that serves the built-in catalog until Load
// publishes the session catalog.
func NewStore(f *Fetcher, src Sources, log *logging.Logger, m *observability.Collector) *Store {
	if f == nil {
		f = NewFetcher()
	}
	if log == nil {
		log = logging.Discard()
	}
	s := &Store{
		fetcher: f,
		sources: src,
		log:     log,
		metrics: m,
	}
	s.current.Store(Builtin())
	return s
}

// Current returns the published catalog. It is never nil.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Load fetches every configured part concurrently and publishes the result.
// A part that fails keeps its built-in data and is logged. Later calls are
// no-ops.
func (s *Store) Load(ctx context.Context) {
	s.once.Do(func() {
		cat := s.load(ctx)
		if ctx.Err() != nil {
			return
		}
		s.current.Store(cat)
	})
}

func (s *Store) load(ctx context.Context) *Catalog {
	base := Builtin()
	next := &Catalog{
		Stars:          base.Stars,
		Constellations: base.Constellations,
		Objects:        base.Objects,
		Overlays:       base.Overlays,
	}

	var (
		mu      sync.Mutex
		builtin []string
	)
	fallback := func(part string) {
		mu.Lock()
		builtin = append(builtin, part)
		mu.Unlock()
	}

	// Each goroutine writes a distinct field of next; failures never cancel
	// siblings, so the group is only used for fan-out and join.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if s.sources.Stars == "" {
			fallback(partStars)
			return nil
		}
		stars, err := s.fetchStars(gctx)
		if err != nil {
			s.warn(partStars, s.sources.Stars, err)
			fallback(partStars)
			return nil
		}
		next.Stars = stars
		return nil
	})

	g.Go(func() error {
		if s.sources.Constellations == "" {
			fallback(partConstellations)
			return nil
		}
		data, err := s.fetcher.Fetch(gctx, s.sources.Constellations)
		if err == nil {
			var cons []astro.Constellation
			if cons, err = ParseConstellations(data); err == nil {
				next.Constellations = cons
				return nil
			}
		}
		s.warn(partConstellations, s.sources.Constellations, err)
		fallback(partConstellations)
		return nil
	})

	g.Go(func() error {
		if s.sources.Objects == "" {
			fallback(partObjects)
			return nil
		}
		data, err := s.fetcher.Fetch(gctx, s.sources.Objects)
		if err == nil {
			var objs []Object
			if objs, err = ParseObjects(data); err == nil {
				next.Objects = objs
				return nil
			}
		}
		s.warn(partObjects, s.sources.Objects, err)
		fallback(partObjects)
		return nil
	})

	g.Go(func() error {
		if s.sources.Manifest == "" {
			fallback(partManifest)
			return nil
		}
		m, err := s.FetchManifest(gctx)
		if err != nil {
			s.warn(partManifest, s.sources.Manifest, err)
			fallback(partManifest)
			return nil
		}
		next.Overlays = m
		return nil
	})

	_ = g.Wait()

	sort.Strings(builtin)
	next.Builtin = builtin
	next.LoadedAt = time.Now()

	s.log.Info("catalog loaded",
		"stars", len(next.Stars.Stars),
		"constellations", len(next.Constellations),
		"objects", len(next.Objects),
		"overlays", len(next.Overlays),
		"builtin", builtin,
	)
	s.metrics.RefreshResult("catalog", nil)
	return next
}

func (s *Store) fetchStars(ctx context.Context) (astro.StarCatalog, error) {
	data, err := s.fetcher.Fetch(ctx, s.sources.Stars)
	if err != nil {
		return astro.StarCatalog{}, err
	}
	return ParseStars(data)
}

// FetchManifest reads and parses the configured overlay manifest.
func (s *Store) FetchManifest(ctx context.Context) (map[string]Overlay, error) {
	if s.sources.Manifest == "" {
		return nil, fmt.Errorf("manifest: %w", ErrNotFound)
	}
	data, err := s.fetcher.Fetch(ctx, s.sources.Manifest)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// ReplaceOverlays republishes the current catalog with a new manifest.
func (s *Store) ReplaceOverlays(m map[string]Overlay) {
	for {
		cur := s.current.Load()
		if s.current.CompareAndSwap(cur, cur.withOverlays(m)) {
			return
		}
	}
}

func (s *Store) warn(part, src string, err error) {
	s.log.Warn("catalog part unavailable, using built-in", "part", part, "source", src, "err", err)
	s.metrics.RefreshResult("catalog_"+part, err)
}
