// Package view owns the planetarium camera: its orientation and field of
// view, the pointer/keyboard state machine that drives it, and the
// projection between sky directions and viewport positions.
package view

import (
	"math"

	"github.com/litescript/ls-planetarium/internal/astro"
)

// Field-of-view bounds and the startup view, in degrees.
const (
	MinFOV = 5.0
	MaxFOV = 120.0

	DefaultRA  = 0.0
	DefaultDec = 45.0
	DefaultFOV = 60.0
)

// State is the camera record: where it looks and how wide.
type State struct {
	CenterRA  float64
	CenterDec float64
	FOV       float64
}

// Default returns the startup view.
func Default() State {
	return State{CenterRA: DefaultRA, CenterDec: DefaultDec, FOV: DefaultFOV}
}

// Normalized wraps RA into [0, 360) and clamps Dec and FOV to their ranges.
func (s State) Normalized() State {
	return State{
		CenterRA:  astro.NormalizeRA(s.CenterRA),
		CenterDec: astro.ClampDec(s.CenterDec),
		FOV:       ClampFOV(s.FOV),
	}
}

// Center returns the view centre as a coordinate.
func (s State) Center() astro.Equatorial {
	return astro.Equatorial{RA: s.CenterRA, Dec: s.CenterDec}
}

// ClampFOV limits a field of view to [MinFOV, MaxFOV]. NaN maps to the default.
func ClampFOV(fov float64) float64 {
	switch {
	case math.IsNaN(fov):
		return DefaultFOV
	case fov < MinFOV:
		return MinFOV
	case fov > MaxFOV:
		return MaxFOV
	default:
		return fov
	}
}
