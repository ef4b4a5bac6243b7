package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/catalog"
	"github.com/litescript/ls-planetarium/internal/config"
	"github.com/litescript/ls-planetarium/internal/ephem"
	"github.com/litescript/ls-planetarium/internal/feed"
	"github.com/litescript/ls-planetarium/internal/logging"
	"github.com/litescript/ls-planetarium/internal/observability"
	"github.com/litescript/ls-planetarium/internal/scene"
	"github.com/litescript/ls-planetarium/internal/texture"
	"github.com/litescript/ls-planetarium/internal/ui"
	"github.com/litescript/ls-planetarium/internal/version"
	"github.com/litescript/ls-planetarium/internal/view"
)

// skyInterval is how often the simulated sky feed is republished.
const skyInterval = 5 * time.Second

// engine is the wired planetarium shared by both front ends.
type engine struct {
	cfg        *config.Config
	log        *logging.Logger
	metrics    *observability.Collector
	store      *catalog.Store
	textures   *texture.Cache
	feeds      *feed.Manager
	sky        *feed.SimulatedSky
	bus        *feed.Bus
	composer   *scene.Composer
	controller *view.Controller
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	snapshot, _ := cmd.Flags().GetBool("snapshot")
	noColor, _ := cmd.Flags().GetBool("no-color")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log, closeLog, err := openLogger(cfg, !snapshot)
	if err != nil {
		return err
	}
	defer closeLog()

	e, err := newEngine(cfg, log)
	if err != nil {
		return err
	}
	defer e.close()

	if cfg.Metrics.Addr != "" {
		go func() {
			if err := e.metrics.Serve(ctx, cfg.Metrics.Addr); err != nil {
				log.Error("metrics endpoint stopped", "addr", cfg.Metrics.Addr, "err", err)
			}
		}()
	}

	if snapshot {
		return e.snapshot(ctx, !noColor && term.IsTerminal(int(os.Stdout.Fd())))
	}
	return e.runTUI(ctx)
}

// openLogger writes to stderr for one-shot output and to the configured file
// while the UI owns the terminal.
func openLogger(cfg *config.Config, toFile bool) (*logging.Logger, func(), error) {
	lc := logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format}
	if !toFile {
		return logging.New(lc), func() {}, nil
	}
	if cfg.Logging.File == "" {
		return logging.Discard(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := logging.OpenFile(cfg.Logging.File)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	lc.Output = f
	return logging.New(lc), func() { _ = f.Close() }, nil
}

func newEngine(cfg *config.Config, log *logging.Logger) (*engine, error) {
	metrics, err := observability.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	observer := astro.Observer{Name: cfg.Observer.Name, LatDeg: cfg.Observer.Lat, LonDeg: cfg.Observer.Lon}
	fetcher := catalog.NewFetcher(
		catalog.WithTimeout(cfg.Catalog.Timeout()),
		catalog.WithUserAgent(version.UserAgent()),
	)
	store := catalog.NewStore(fetcher, catalog.Sources{
		Stars:          cfg.Catalog.Stars,
		Constellations: cfg.Catalog.Constellations,
		Objects:        cfg.Catalog.Objects,
		Manifest:       cfg.Catalog.Manifest,
	}, log.With("component", "catalog"), metrics)

	textures := texture.NewCache(fetcher, log.With("component", "texture"), metrics)
	feeds := feed.NewManager()
	sky := feed.NewSimulatedSky(observer, store.Current)

	composer := scene.NewComposer(scene.Config{
		Observer:      observer,
		Catalog:       store,
		Textures:      textures,
		Feeds:         feeds,
		Sky:           sky,
		Ephemeris:     ephem.NewProvider(ephem.ParseMode(cfg.Ephemeris.Mode), cfg.Ephemeris.HorizonsURL, log.With("component", "ephemeris")),
		PlanetRefresh: cfg.Ephemeris.RefreshInterval(),
		WatchManifest: cfg.Catalog.WatchManifest,
		Visibility:    layerVisibility(cfg.Layers),
		Log:           log.With("component", "scene"),
		Metrics:       metrics,
	})

	home := view.State{CenterRA: cfg.View.RA, CenterDec: cfg.View.Dec, FOV: cfg.View.FOV}
	return &engine{
		cfg:        cfg,
		log:        log,
		metrics:    metrics,
		store:      store,
		textures:   textures,
		feeds:      feeds,
		sky:        sky,
		bus:        feed.NewBus(feed.DefaultBusSize, log.With("component", "bus"), metrics),
		composer:   composer,
		controller: view.NewController(home, view.WithSmoothing(cfg.View.Smoothing)),
	}, nil
}

func (e *engine) close() {
	e.composer.Close()
	e.textures.Close()
	e.bus.Close()
}

// startFeeds runs the sky feed and, when configured, the mount replay.
func (e *engine) startFeeds(ctx context.Context) error {
	go feed.RunSky(ctx, e.sky, e.feeds, skyInterval, e.log.With("component", "sky"))

	if path := e.cfg.Mount.Replay; path != "" {
		obs, err := feed.LoadReplay(path)
		if err != nil {
			return err
		}
		go feed.Replay(ctx, obs, e.feeds, e.cfg.Mount.ReplayInterval(), e.log.With("component", "mount"))
	}
	return nil
}

func (e *engine) runTUI(ctx context.Context) error {
	e.composer.Start(ctx)
	if err := e.startFeeds(ctx); err != nil {
		return err
	}

	model := ui.New(ui.Deps{
		Composer:   e.composer,
		Controller: e.controller,
		Bus:        e.bus,
		Feeds:      e.feeds,
		Log:        e.log.With("component", "ui"),
		FPS:        e.cfg.View.FPS,
		OnSlew: func(ev feed.Event) {
			// The mount collaborator consumes slews from the log until a
			// command channel exists.
			e.log.Info("slew request", "object", ev.ObjectID, "ra", ev.Coord.RA, "dec", ev.Coord.Dec)
		},
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// snapshot loads the catalog and planets synchronously and prints one frame.
func (e *engine) snapshot(ctx context.Context, color bool) error {
	width, height := 100, 36
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 2 {
		width, height = w, h-1
	}

	e.store.Load(ctx)
	now := time.Now()
	if err := e.composer.RefreshPlanets(ctx, now); err != nil {
		e.log.Warn("planet positions unavailable", "err", err)
	}
	if path := e.cfg.Mount.Replay; path != "" {
		obs, err := feed.LoadReplay(path)
		if err != nil {
			return err
		}
		if len(obs) > 0 {
			e.feeds.UpdateMount(obs[len(obs)-1])
		}
	}

	e.controller.SetViewport(view.Viewport{Width: float64(width), Height: float64(height), PixelAspect: ui.CellAspect})
	frame := e.composer.Compose(e.controller.Snapshot(), now)
	fmt.Println(ui.RenderFrame(frame, width, height, color))
	return nil
}

// layerVisibility builds the initial layer flags from config.
func layerVisibility(l config.LayersConfig) *scene.Visibility {
	vis := scene.NewVisibility()
	for id, on := range map[scene.LayerID]bool{
		scene.LayerAtmosphere:          l.Atmosphere,
		scene.LayerGalacticPlane:       l.GalacticPlane,
		scene.LayerEquatorialGrid:      l.EquatorialGrid,
		scene.LayerHorizonGrid:         l.HorizonGrid,
		scene.LayerConstellationLines:  l.ConstellationLines,
		scene.LayerStars:               l.Stars,
		scene.LayerConstellationLabels: l.ConstellationLabels,
		scene.LayerDeepSky:             l.DeepSky,
		scene.LayerImageOverlays:       l.ImageOverlays,
		scene.LayerPlanets:             l.Planets,
		scene.LayerSun:                 l.Sun,
		scene.LayerMoon:                l.Moon,
		scene.LayerReticle:             l.Reticle,
	} {
		vis.Set(id, on)
	}
	return vis
}
