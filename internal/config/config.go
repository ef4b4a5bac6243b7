// Package config loads ls-planetarium settings from file, environment and flags.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete planetarium configuration
type Config struct {
	Observer  ObserverConfig  `mapstructure:"observer"`
	View      ViewConfig      `mapstructure:"view"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Ephemeris EphemerisConfig `mapstructure:"ephemeris"`
	Layers    LayersConfig    `mapstructure:"layers"`
	Mount     MountConfig     `mapstructure:"mount"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// ObserverConfig is the observing site
type ObserverConfig struct {
	Name string  `mapstructure:"name"`
	Lat  float64 `mapstructure:"lat"` // degrees, north positive
	Lon  float64 `mapstructure:"lon"` // degrees, east positive
}

// ViewConfig controls the startup camera and its animation
type ViewConfig struct {
	RA  float64 `mapstructure:"ra"`
	Dec float64 `mapstructure:"dec"`
	FOV float64 `mapstructure:"fov"`
	// Smoothing is the rate k in 1 - exp(-k*dt)
	Smoothing float64 `mapstructure:"smoothing"`
	// FPS is the frame tick rate of the terminal front end
	FPS int `mapstructure:"fps"`
}

// CatalogConfig names the catalog collaborator sources. Each source is an
// http(s) URL or a local file path; empty means the built-in catalog.
type CatalogConfig struct {
	Stars          string `mapstructure:"stars"`
	Constellations string `mapstructure:"constellations"`
	Manifest       string `mapstructure:"manifest"`
	Objects        string `mapstructure:"objects"`
	// WatchManifest reloads a local manifest file when it changes
	WatchManifest  bool `mapstructure:"watch_manifest"`
	TimeoutSeconds int  `mapstructure:"timeout_seconds"`
}

// EphemerisConfig controls planet positions
type EphemerisConfig struct {
	// Mode is "horizons", "elements" or "auto"
	Mode           string `mapstructure:"mode"`
	RefreshSeconds int    `mapstructure:"refresh_seconds"`
	HorizonsURL    string `mapstructure:"horizons_url"`
}

// LayersConfig holds the initial enable flag of every scene layer
type LayersConfig struct {
	Atmosphere          bool `mapstructure:"atmosphere"`
	GalacticPlane       bool `mapstructure:"galactic_plane"`
	EquatorialGrid      bool `mapstructure:"equatorial_grid"`
	HorizonGrid         bool `mapstructure:"horizon_grid"`
	ConstellationLines  bool `mapstructure:"constellation_lines"`
	Stars               bool `mapstructure:"stars"`
	ConstellationLabels bool `mapstructure:"constellation_labels"`
	DeepSky             bool `mapstructure:"deep_sky"`
	ImageOverlays       bool `mapstructure:"image_overlays"`
	Planets             bool `mapstructure:"planets"`
	Sun                 bool `mapstructure:"sun"`
	Moon                bool `mapstructure:"moon"`
	Reticle             bool `mapstructure:"reticle"`
}

// MountConfig controls the mount feed
type MountConfig struct {
	// Replay is a JSON-lines file of mount observations; empty disables the feed
	Replay           string `mapstructure:"replay"`
	ReplayIntervalMs int    `mapstructure:"replay_interval_ms"`
}

// LoggingConfig controls logging
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives log output while the terminal UI owns the screen
	File string `mapstructure:"file"`
}

// MetricsConfig controls the Prometheus endpoint
type MetricsConfig struct {
	// Addr is the listen address for /metrics; empty disables the endpoint
	Addr string `mapstructure:"addr"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Observer: ObserverConfig{
			Name: "Goldstone",
			Lat:  35.4267,
			Lon:  -116.89,
		},
		View: ViewConfig{
			RA:        0,
			Dec:       45,
			FOV:       60,
			Smoothing: 12,
			FPS:       20,
		},
		Catalog: CatalogConfig{
			WatchManifest:  true,
			TimeoutSeconds: 15,
		},
		Ephemeris: EphemerisConfig{
			Mode:           "auto",
			RefreshSeconds: 60,
			HorizonsURL:    "https://ssd.jpl.nasa.gov/api/horizons.api",
		},
		Layers: LayersConfig{
			Atmosphere:          true,
			GalacticPlane:       true,
			EquatorialGrid:      false,
			HorizonGrid:         true,
			ConstellationLines:  true,
			Stars:               true,
			ConstellationLabels: true,
			DeepSky:             true,
			ImageOverlays:       true,
			Planets:             true,
			Sun:                 true,
			Moon:                true,
			Reticle:             true,
		},
		Mount: MountConfig{
			ReplayIntervalMs: 500,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   filepath.Join(StateDir(), "ls-planetarium.log"),
		},
		Metrics: MetricsConfig{},
	}
}

// Timeout returns the per-request catalog timeout
func (c *CatalogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RefreshInterval returns the planet refresh cadence
func (c *EphemerisConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

// ReplayInterval returns the delay between replayed mount observations
func (c *MountConfig) ReplayInterval() time.Duration {
	return time.Duration(c.ReplayIntervalMs) * time.Millisecond
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Observer defaults
	viper.SetDefault("observer.name", defaults.Observer.Name)
	viper.SetDefault("observer.lat", defaults.Observer.Lat)
	viper.SetDefault("observer.lon", defaults.Observer.Lon)

	// View defaults
	viper.SetDefault("view.ra", defaults.View.RA)
	viper.SetDefault("view.dec", defaults.View.Dec)
	viper.SetDefault("view.fov", defaults.View.FOV)
	viper.SetDefault("view.smoothing", defaults.View.Smoothing)
	viper.SetDefault("view.fps", defaults.View.FPS)

	// Catalog defaults
	viper.SetDefault("catalog.stars", defaults.Catalog.Stars)
	viper.SetDefault("catalog.constellations", defaults.Catalog.Constellations)
	viper.SetDefault("catalog.manifest", defaults.Catalog.Manifest)
	viper.SetDefault("catalog.objects", defaults.Catalog.Objects)
	viper.SetDefault("catalog.watch_manifest", defaults.Catalog.WatchManifest)
	viper.SetDefault("catalog.timeout_seconds", defaults.Catalog.TimeoutSeconds)

	// Ephemeris defaults
	viper.SetDefault("ephemeris.mode", defaults.Ephemeris.Mode)
	viper.SetDefault("ephemeris.refresh_seconds", defaults.Ephemeris.RefreshSeconds)
	viper.SetDefault("ephemeris.horizons_url", defaults.Ephemeris.HorizonsURL)

	// Layer defaults
	viper.SetDefault("layers.atmosphere", defaults.Layers.Atmosphere)
	viper.SetDefault("layers.galactic_plane", defaults.Layers.GalacticPlane)
	viper.SetDefault("layers.equatorial_grid", defaults.Layers.EquatorialGrid)
	viper.SetDefault("layers.horizon_grid", defaults.Layers.HorizonGrid)
	viper.SetDefault("layers.constellation_lines", defaults.Layers.ConstellationLines)
	viper.SetDefault("layers.stars", defaults.Layers.Stars)
	viper.SetDefault("layers.constellation_labels", defaults.Layers.ConstellationLabels)
	viper.SetDefault("layers.deep_sky", defaults.Layers.DeepSky)
	viper.SetDefault("layers.image_overlays", defaults.Layers.ImageOverlays)
	viper.SetDefault("layers.planets", defaults.Layers.Planets)
	viper.SetDefault("layers.sun", defaults.Layers.Sun)
	viper.SetDefault("layers.moon", defaults.Layers.Moon)
	viper.SetDefault("layers.reticle", defaults.Layers.Reticle)

	// Mount defaults
	viper.SetDefault("mount.replay", defaults.Mount.Replay)
	viper.SetDefault("mount.replay_interval_ms", defaults.Mount.ReplayIntervalMs)

	// Logging defaults
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)
	viper.SetDefault("logging.file", defaults.Logging.File)

	// Metrics defaults
	viper.SetDefault("metrics.addr", defaults.Metrics.Addr)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ls-planetarium")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ls-planetarium"
	}
	return filepath.Join(home, ".config", "ls-planetarium")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory for logs and other runtime state
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "ls-planetarium")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, ".local", "state", "ls-planetarium")
}
