package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.View.RA != 0 || cfg.View.Dec != 45 || cfg.View.FOV != 60 {
		t.Errorf("default view = %+v, want ra=0 dec=45 fov=60", cfg.View)
	}
	if cfg.View.Smoothing != 12 {
		t.Errorf("View.Smoothing = %v, want 12", cfg.View.Smoothing)
	}
	if cfg.Ephemeris.Mode != "auto" {
		t.Errorf("Ephemeris.Mode = %q, want auto", cfg.Ephemeris.Mode)
	}
	if cfg.Ephemeris.RefreshInterval() != 60*time.Second {
		t.Errorf("RefreshInterval() = %v, want 60s", cfg.Ephemeris.RefreshInterval())
	}
	if !cfg.Layers.Stars || !cfg.Layers.Reticle {
		t.Error("stars and reticle layers should default on")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "view.fov", Value: 200, Message: "is invalid"},
		}
		expected := "view.fov: is invalid (got: 200)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default config should be valid, got %d errors: %v", len(errs), errs)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"lat too high", func(c *Config) { c.Observer.Lat = 91 }, "observer.lat"},
		{"lon too low", func(c *Config) { c.Observer.Lon = -181 }, "observer.lon"},
		{"ra wraps", func(c *Config) { c.View.RA = 360 }, "view.ra"},
		{"fov too narrow", func(c *Config) { c.View.FOV = 4 }, "view.fov"},
		{"fov too wide", func(c *Config) { c.View.FOV = 121 }, "view.fov"},
		{"no smoothing", func(c *Config) { c.View.Smoothing = 0 }, "view.smoothing"},
		{"zero fps", func(c *Config) { c.View.FPS = 0 }, "view.fps"},
		{"bad manifest url", func(c *Config) { c.Catalog.Manifest = "http://" }, "catalog.manifest"},
		{"zero timeout", func(c *Config) { c.Catalog.TimeoutSeconds = 0 }, "catalog.timeout_seconds"},
		{"unknown mode", func(c *Config) { c.Ephemeris.Mode = "dsn" }, "ephemeris.mode"},
		{"refresh too fast", func(c *Config) { c.Ephemeris.RefreshSeconds = 1 }, "ephemeris.refresh_seconds"},
		{"horizons url", func(c *Config) { c.Ephemeris.HorizonsURL = "ftp://x" }, "ephemeris.horizons_url"},
		{"replay interval", func(c *Config) { c.Mount.ReplayIntervalMs = 0 }, "mount.replay_interval_ms"},
		{"log level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"metrics addr", func(c *Config) { c.Metrics.Addr = "9090" }, "metrics.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.field)
			}
		})
	}
}

func TestConfig_Validate_ElementsSkipsHorizonsURL(t *testing.T) {
	cfg := Default()
	cfg.Ephemeris.Mode = "elements"
	cfg.Ephemeris.HorizonsURL = ""
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("elements mode should not need a Horizons URL: %v", errs)
	}
}

func TestLoad_FromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
observer:
  name: Siding Spring
  lat: -31.27
  lon: 149.06
view:
  fov: 30
layers:
  equatorial_grid: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	SetDefaults()
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Observer.Name != "Siding Spring" || cfg.Observer.Lat != -31.27 {
		t.Errorf("observer = %+v", cfg.Observer)
	}
	if cfg.View.FOV != 30 || cfg.View.Dec != 45 {
		t.Errorf("view = %+v, want fov from file and dec from defaults", cfg.View)
	}
	if !cfg.Layers.EquatorialGrid || !cfg.Layers.Stars {
		t.Errorf("layers = %+v", cfg.Layers)
	}
}

func TestLoad_Invalid(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults()
	viper.Set("view.fov", 500)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() accepted fov=500")
	}
	if _, ok := err.(ValidationErrors); !ok {
		t.Errorf("Load() error type = %T, want ValidationErrors", err)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigDir(); got != "/tmp/xdg/ls-planetarium" {
		t.Errorf("ConfigDir() = %q", got)
	}
	if got := ConfigFile(); got != "/tmp/xdg/ls-planetarium/config.yaml" {
		t.Errorf("ConfigFile() = %q", got)
	}
}
