package scene

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/catalog"
	"github.com/litescript/ls-planetarium/internal/ephem"
	"github.com/litescript/ls-planetarium/internal/feed"
	"github.com/litescript/ls-planetarium/internal/logging"
	"github.com/litescript/ls-planetarium/internal/mount"
	"github.com/litescript/ls-planetarium/internal/observability"
	"github.com/litescript/ls-planetarium/internal/view"
)

// DefaultPlanetRefresh is the planet ephemeris cadence.
const DefaultPlanetRefresh = 60 * time.Second

// CatalogSource publishes the session catalog. *catalog.Store satisfies it.
type CatalogSource interface {
	Current() *catalog.Catalog
	Load(ctx context.Context)
}

// ManifestWatcher is implemented by catalog sources that can hot-reload a
// local manifest.
type ManifestWatcher interface {
	WatchManifest(ctx context.Context) error
}

// Config wires a Composer. Zero fields fall back to built-in behaviour.
type Config struct {
	Observer      astro.Observer
	Catalog       CatalogSource
	Textures      Textures
	Feeds         *feed.Manager
	Sky           *feed.SimulatedSky // used until the feed manager has sky data
	Ephemeris     ephem.Provider
	PlanetRefresh time.Duration
	WatchManifest bool
	Visibility    *Visibility
	Log           *logging.Logger
	Metrics       *observability.Collector
}

type renderer func(rc *renderContext, out *LayerFrame)

var renderers = map[LayerID]renderer{
	LayerAtmosphere:          drawAtmosphere,
	LayerGalacticPlane:       drawGalacticPlane,
	LayerEquatorialGrid:      drawEquatorialGrid,
	LayerHorizonGrid:         drawHorizonGrid,
	LayerConstellationLines:  drawConstellationLines,
	LayerStars:               drawStars,
	LayerConstellationLabels: drawConstellationLabels,
	LayerDeepSky:             drawDeepSky,
	LayerPlanets:             drawPlanets,
	LayerSun:                 drawSun,
	LayerMoon:                drawMoon,
	LayerReticle:             drawReticle,
}

// Composer draws frames. Compose, the visibility flags and the selection
// belong to the render loop; refresh tasks started by Start run in the
// background and publish into read-only snapshots.
type Composer struct {
	cfg  Config
	log  *logging.Logger
	vis  *Visibility
	sync *mount.Sync

	selected string
	planets  atomic.Pointer[ephem.Snapshot]

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool
}

// NewComposer creates a composer. Nothing runs until Start.
func NewComposer(cfg Config) *Composer {
	if cfg.Log == nil {
		cfg.Log = logging.Discard()
	}
	if cfg.Visibility == nil {
		cfg.Visibility = AllVisible()
	}
	if cfg.PlanetRefresh <= 0 {
		cfg.PlanetRefresh = DefaultPlanetRefresh
	}
	if cfg.Ephemeris == nil {
		cfg.Ephemeris = ephem.NewElementsProvider()
	}
	return &Composer{
		cfg:  cfg,
		log:  cfg.Log,
		vis:  cfg.Visibility,
		sync: mount.NewSync(cfg.Observer, time.Now()),
	}
}

// Start launches the session catalog load, the periodic planet refresh and,
// when configured, the manifest watcher. Close cancels them.
func (c *Composer) Start(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.cancel != nil {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(2)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		if c.cfg.Catalog == nil {
			return
		}
		c.cfg.Catalog.Load(ctx)
		if !c.cfg.WatchManifest {
			return
		}
		if w, ok := c.cfg.Catalog.(ManifestWatcher); ok {
			if err := w.WatchManifest(ctx); err != nil {
				c.log.Warn("manifest watch disabled", "err", err)
			}
		}
	}()

	go func() {
		defer c.wg.Done()
		c.refreshLoop(ctx)
	}()
}

func (c *Composer) refreshLoop(ctx context.Context) {
	c.RefreshPlanets(ctx, time.Now())

	ticker := time.NewTicker(c.cfg.PlanetRefresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			c.log.Debug("planet refresh stopped")
			return
		case t := <-ticker.C:
			c.RefreshPlanets(ctx, t)
		}
	}
}

// RefreshPlanets fetches a planet snapshot for t and publishes it. A failed
// refresh keeps the previous snapshot.
func (c *Composer) RefreshPlanets(ctx context.Context, t time.Time) error {
	snap, err := c.cfg.Ephemeris.Snapshot(ctx, t, c.cfg.Observer)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	c.cfg.Metrics.RefreshResult("planets", err)
	if err != nil {
		c.log.Warn("planet refresh failed", "provider", c.cfg.Ephemeris.Name(), "err", err)
		return err
	}
	c.planets.Store(&snap)
	c.log.Debug("planets refreshed", "provider", c.cfg.Ephemeris.Name(), "bodies", len(snap.Positions))
	return nil
}

// Planets returns the latest planet snapshot, or nil before the first one.
func (c *Composer) Planets() *ephem.Snapshot {
	return c.planets.Load()
}

// Close cancels refresh tasks and waits for them. It is safe to call more
// than once.
func (c *Composer) Close() {
	c.mu.Lock()
	c.closed = true
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

// Visibility returns the layer flags. Renderers see changes on the next
// frame.
func (c *Composer) Visibility() *Visibility {
	return c.vis
}

// Select marks an object as selected. An empty id clears the selection.
func (c *Composer) Select(id string) {
	c.selected = id
}

// Selected returns the selected object id.
func (c *Composer) Selected() string {
	return c.selected
}

// Observer returns the observing site.
func (c *Composer) Observer() astro.Observer {
	return c.cfg.Observer
}

// Catalog returns the published catalog.
func (c *Composer) Catalog() *catalog.Catalog {
	if c.cfg.Catalog == nil {
		return catalog.Builtin()
	}
	return c.cfg.Catalog.Current()
}

// Reticle returns the reticle state derived on the last frame.
func (c *Composer) Reticle() mount.Reticle {
	return c.sync.Last()
}

// sky returns the feed's sky, or the simulated sky at now.
func (c *Composer) sky(now time.Time) *feed.SkyData {
	if c.cfg.Feeds != nil {
		if snap := c.cfg.Feeds.Snapshot(); snap.Sky != nil {
			return snap.Sky
		}
	}
	if c.cfg.Sky != nil {
		return c.cfg.Sky.SkyAt(now)
	}
	return nil
}

// Compose draws one frame for the view at now. It never blocks on I/O.
func (c *Composer) Compose(v view.Snapshot, now time.Time) *Frame {
	start := time.Now()

	if c.cfg.Feeds != nil {
		c.sync.Apply(c.cfg.Feeds.Mount())
	}
	sky := c.sky(now)
	var reticle mount.Reticle
	if sky != nil {
		c.sync.SetObserver(sky.Observer)
		reticle = c.sync.UpdateAt(now, sky.LST)
	} else {
		reticle = c.sync.Update(now)
	}

	in := Input{
		Now:      now,
		View:     v,
		Sky:      sky,
		Catalog:  c.Catalog(),
		Planets:  c.planets.Load(),
		Reticle:  reticle,
		Selected: c.selected,
	}
	frame := Render(in, c.vis, c.cfg.Textures)

	for i := range frame.Layers {
		l := &frame.Layers[i]
		c.cfg.Metrics.SetLayerPrimitives(l.ID.String(), l.Count())
	}
	c.cfg.Metrics.ObserveFrame(time.Since(start))
	return frame
}

// Render draws a frame from fixed inputs. Disabled layers are skipped
// entirely and contribute neither primitives nor pickables.
func Render(in Input, vis *Visibility, textures Textures) *Frame {
	frame := &Frame{
		Time:            in.Now,
		View:            in.View,
		Representations: make(map[string]Representation),
	}
	if in.Sky != nil {
		frame.Sky = SkyInfo{
			LST:              in.Sky.LST,
			SunAlt:           in.Sky.SunAlt,
			MoonAlt:          in.Sky.MoonAlt,
			MoonIllumination: in.Sky.MoonIllumination,
			Phase:            astro.GetTwilightPhase(in.Sky.SunAlt),
		}
	}
	rc := &renderContext{in: in, vis: vis, textures: textures, frame: frame}

	for _, id := range DrawOrder {
		if !vis.Enabled(id) {
			continue
		}
		out := LayerFrame{ID: id}
		renderers[id](rc, &out)
		frame.Layers = append(frame.Layers, out)
	}
	return frame
}
