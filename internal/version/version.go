// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Image overlays with resolution-gated quads, manifest hot reload, mount replay
// 0.2.0 - Horizons planet ephemeris with element fallback, context menu, Prometheus metrics
// 0.1.0 - Initial release: star field, constellations, grids, TUI navigation, headless snapshot

// UserAgent identifies HTTP requests made by the application.
func UserAgent() string {
	return "ls-planetarium/" + Version
}
