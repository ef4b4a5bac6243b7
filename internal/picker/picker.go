// Package picker finds the object under a pointer and builds the context
// menu offered for it.
package picker

import (
	"github.com/litescript/ls-planetarium/internal/astro"
)

// DefaultMaxDeg is the pick radius in degrees.
const DefaultMaxDeg = 1.0

// Candidate is a pickable object currently in view.
type Candidate struct {
	ID    string
	Name  string
	Coord astro.Equatorial
	Kind  string // "dso", "planet", "sun", "moon"
}

// Result is the nearest candidate and its angular distance in degrees.
type Result struct {
	Candidate
	Distance float64
}

// FindNearest returns the candidate closest to (ra, dec) if it lies within
// maxDeg. A non-positive maxDeg uses DefaultMaxDeg. Ties keep the earlier
// candidate.
func FindNearest(ra, dec float64, candidates []Candidate, maxDeg float64) (Result, bool) {
	if maxDeg <= 0 {
		maxDeg = DefaultMaxDeg
	}
	best := -1
	bestDist := 0.0
	for i, c := range candidates {
		d := astro.AngularDistance(ra, dec, c.Coord.RA, c.Coord.Dec)
		if d > maxDeg {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Result{}, false
	}
	return Result{Candidate: candidates[best], Distance: bestDist}, true
}
