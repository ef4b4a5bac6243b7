package config

import (
	"fmt"
	"net"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "view.fov")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// View bounds shared with the view controller.
const (
	MinFOV = 5.0
	MaxFOV = 120.0
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// ValidEphemerisModes returns the list of valid ephemeris modes
func ValidEphemerisModes() []string {
	return []string{"horizons", "elements", "auto"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateObserver()...)
	errors = append(errors, c.validateView()...)
	errors = append(errors, c.validateCatalog()...)
	errors = append(errors, c.validateEphemeris()...)
	errors = append(errors, c.validateMount()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateMetrics()...)

	return errors
}

func (c *Config) validateObserver() []ValidationError {
	var errors []ValidationError

	if c.Observer.Lat < -90 || c.Observer.Lat > 90 {
		errors = append(errors, ValidationError{
			Field:   "observer.lat",
			Value:   c.Observer.Lat,
			Message: "must be between -90 and 90",
		})
	}
	if c.Observer.Lon < -180 || c.Observer.Lon > 180 {
		errors = append(errors, ValidationError{
			Field:   "observer.lon",
			Value:   c.Observer.Lon,
			Message: "must be between -180 and 180",
		})
	}

	return errors
}

func (c *Config) validateView() []ValidationError {
	var errors []ValidationError

	if c.View.RA < 0 || c.View.RA >= 360 {
		errors = append(errors, ValidationError{
			Field:   "view.ra",
			Value:   c.View.RA,
			Message: "must be in [0, 360)",
		})
	}
	if c.View.Dec < -90 || c.View.Dec > 90 {
		errors = append(errors, ValidationError{
			Field:   "view.dec",
			Value:   c.View.Dec,
			Message: "must be between -90 and 90",
		})
	}
	if c.View.FOV < MinFOV || c.View.FOV > MaxFOV {
		errors = append(errors, ValidationError{
			Field:   "view.fov",
			Value:   c.View.FOV,
			Message: fmt.Sprintf("must be between %.0f and %.0f", MinFOV, MaxFOV),
		})
	}
	if c.View.Smoothing <= 0 {
		errors = append(errors, ValidationError{
			Field:   "view.smoothing",
			Value:   c.View.Smoothing,
			Message: "must be positive",
		})
	}
	if c.View.FPS < 1 || c.View.FPS > 120 {
		errors = append(errors, ValidationError{
			Field:   "view.fps",
			Value:   c.View.FPS,
			Message: "must be between 1 and 120",
		})
	}

	return errors
}

func (c *Config) validateCatalog() []ValidationError {
	var errors []ValidationError

	sources := []struct {
		field string
		value string
	}{
		{"catalog.stars", c.Catalog.Stars},
		{"catalog.constellations", c.Catalog.Constellations},
		{"catalog.manifest", c.Catalog.Manifest},
		{"catalog.objects", c.Catalog.Objects},
	}
	for _, s := range sources {
		if !isURL(s.value) {
			continue
		}
		if !validURL(s.value) {
			errors = append(errors, ValidationError{
				Field:   s.field,
				Value:   s.value,
				Message: "is not a valid URL",
			})
		}
	}

	if c.Catalog.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "catalog.timeout_seconds",
			Value:   c.Catalog.TimeoutSeconds,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateEphemeris() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidEphemerisModes(), c.Ephemeris.Mode) {
		errors = append(errors, ValidationError{
			Field:   "ephemeris.mode",
			Value:   c.Ephemeris.Mode,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidEphemerisModes(), ", ")),
		})
	}

	// Horizons is rate limited; refreshing faster than every 10s buys nothing.
	if c.Ephemeris.RefreshSeconds < 10 {
		errors = append(errors, ValidationError{
			Field:   "ephemeris.refresh_seconds",
			Value:   c.Ephemeris.RefreshSeconds,
			Message: "must be at least 10",
		})
	}

	if c.Ephemeris.Mode != "elements" {
		if !validURL(c.Ephemeris.HorizonsURL) {
			errors = append(errors, ValidationError{
				Field:   "ephemeris.horizons_url",
				Value:   c.Ephemeris.HorizonsURL,
				Message: "must be an http(s) URL",
			})
		}
	}

	return errors
}

func (c *Config) validateMount() []ValidationError {
	var errors []ValidationError

	if c.Mount.ReplayIntervalMs <= 0 {
		errors = append(errors, ValidationError{
			Field:   "mount.replay_interval_ms",
			Value:   c.Mount.ReplayIntervalMs,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if c.Logging.Format != "" && !slices.Contains(ValidLogFormats(), c.Logging.Format) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateMetrics() []ValidationError {
	var errors []ValidationError

	if c.Metrics.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Metrics.Addr); err != nil {
			errors = append(errors, ValidationError{
				Field:   "metrics.addr",
				Value:   c.Metrics.Addr,
				Message: "must be host:port",
			})
		}
	}

	return errors
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
