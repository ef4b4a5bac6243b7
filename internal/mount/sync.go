// Package mount projects the externally reported telescope position into
// the scene as an animated reticle.
package mount

import (
	"math"
	"time"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/feed"
)

// Reticle is the derived render state for one frame.
type Reticle struct {
	Visible bool
	Coord   astro.Equatorial
	Dir     astro.Vec3 // unit direction on the celestial sphere
	Opacity float64
	Slewing bool
	Parked  bool
}

// PulseOpacity is the slewing pulse at t seconds since the sync started.
func PulseOpacity(t float64) float64 {
	return 0.4 + 0.6*math.Abs(math.Sin(t*3))
}

// Sync turns mount observations into reticle state. Observations flow in one
// direction, through Apply; Sync never writes back to the feed. It is owned
// by the render loop and is not safe for concurrent use.
type Sync struct {
	observer astro.Observer
	start    time.Time

	obs     feed.MountObservation
	applied bool
	last    Reticle
}

// NewSync creates a sync for an observing site. start anchors the pulse.
func NewSync(observer astro.Observer, start time.Time) *Sync {
	return &Sync{observer: observer, start: start}
}

// SetObserver changes the site used to convert alt/az.
func (s *Sync) SetObserver(o astro.Observer) {
	s.observer = o
}

// Apply replaces the current observation.
func (s *Sync) Apply(o feed.MountObservation) {
	s.obs = o
	s.applied = true
}

// Update computes the reticle at now, with the sidereal time taken from the
// clock and the observer longitude.
func (s *Sync) Update(now time.Time) Reticle {
	return s.UpdateAt(now, astro.LocalSiderealTime(now, s.observer.LonDeg))
}

// UpdateAt computes the reticle at now for a given local sidereal time in
// hours, so the reticle shares the sky feed's frame. A disconnected mount, or
// one missing either angle, yields an invisible reticle.
func (s *Sync) UpdateAt(now time.Time, lstHours float64) Reticle {
	hz, ok := s.obs.Position()
	if !s.applied || !s.obs.Connected || !ok || !finite(hz.Alt) || !finite(hz.Az) {
		s.last = Reticle{Parked: s.obs.Parked}
		return s.last
	}

	eq := astro.HorizontalToEquatorial(hz.Alt, hz.Az, lstHours, s.observer.LatDeg)

	r := Reticle{
		Visible: true,
		Coord:   eq,
		Dir:     astro.RaDecToVector(eq.RA, eq.Dec, 1),
		Opacity: 1,
		Slewing: s.obs.Slewing,
		Parked:  s.obs.Parked,
	}
	if s.obs.Slewing {
		r.Opacity = PulseOpacity(now.Sub(s.start).Seconds())
	}
	s.last = r
	return r
}

// Last returns the reticle computed by the most recent Update.
func (s *Sync) Last() Reticle {
	return s.last
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
