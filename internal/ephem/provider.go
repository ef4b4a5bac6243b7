// Package ephem provides ephemeris snapshots for the planets.
package ephem

import (
	"context"
	"time"

	"github.com/litescript/ls-planetarium/internal/astro"
)

// Position is a planet's apparent geocentric place at one instant.
type Position struct {
	Body       Body
	Coord      astro.Equatorial
	DistanceAU float64 // geocentric distance
	Magnitude  float64 // approximate visual magnitude
	Time       time.Time
	Source     string // provider that produced the point
}

// Snapshot is one refresh of every planet position.
type Snapshot struct {
	Time      time.Time
	Positions []Position
}

// Find returns the position of body, if present.
func (s Snapshot) Find(body Body) (Position, bool) {
	for _, p := range s.Positions {
		if p.Body == body {
			return p, true
		}
	}
	return Position{}, false
}

// Provider defines the interface for ephemeris data sources.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Snapshot returns the positions of all planets at t as seen by obs.
	Snapshot(ctx context.Context, t time.Time, obs astro.Observer) (Snapshot, error)
}

// Mode represents which ephemeris source to use.
type Mode int

const (
	ModeAuto     Mode = iota // Try Horizons, fall back to orbital elements
	ModeHorizons             // Use JPL Horizons only
	ModeElements             // Use mean orbital elements only
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeHorizons:
		return "horizons"
	case ModeElements:
		return "elements"
	case ModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode string.
func ParseMode(s string) Mode {
	switch s {
	case "horizons":
		return ModeHorizons
	case "elements":
		return ModeElements
	default:
		return ModeAuto
	}
}
