package feed

import (
	"context"
	"math"
	"time"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/catalog"
	"github.com/litescript/ls-planetarium/internal/logging"
)

// SimulatedSky computes the sky feed locally from the catalog and the
// observer's clock, for runs without an external sky collaborator.
type SimulatedSky struct {
	observer astro.Observer
	catalog  func() *catalog.Catalog
	now      func() time.Time
}

// SkyOption configures a SimulatedSky.
type SkyOption func(*SimulatedSky)

// WithClock overrides the time source.
func WithClock(now func() time.Time) SkyOption {
	return func(s *SimulatedSky) {
		s.now = now
	}
}

// NewSimulatedSky creates a sky feed for obs. cat is read on every update so
// a catalog published later is picked up.
func NewSimulatedSky(obs astro.Observer, cat func() *catalog.Catalog, opts ...SkyOption) *SimulatedSky {
	s := &SimulatedSky{observer: obs, catalog: cat, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Observer returns the configured site.
func (s *SimulatedSky) Observer() astro.Observer {
	return s.observer
}

// Sky computes the sky at the feed's current time.
func (s *SimulatedSky) Sky() *SkyData {
	return s.SkyAt(s.now())
}

// SkyAt computes the sky at t.
func (s *SimulatedSky) SkyAt(t time.Time) *SkyData {
	lst := astro.LocalSiderealTime(t, s.observer.LonDeg)
	lat := s.observer.LatDeg

	sun := astro.SunPosition(t)
	moon := astro.MoonPosition(t)

	data := &SkyData{
		Time:             t,
		Observer:         s.observer,
		LST:              lst,
		Sun:              sun,
		SunAlt:           astro.EquatorialToHorizontal(sun.RA, sun.Dec, lst, lat).Alt,
		Moon:             moon,
		MoonAlt:          astro.EquatorialToHorizontal(moon.RA, moon.Dec, lst, lat).Alt,
		MoonIllumination: astro.MoonIllumination(sun, moon),
	}

	var cat *catalog.Catalog
	if s.catalog != nil {
		cat = s.catalog()
	}
	if cat == nil {
		return data
	}

	data.Objects = make([]VisibleObject, 0, len(cat.Objects))
	for _, obj := range cat.Objects {
		hz := astro.EquatorialToHorizontal(obj.RA, obj.Dec, lst, lat)
		airmass := math.Inf(1)
		if hz.Alt > 0 {
			airmass = astro.Airmass(hz.Alt)
		}
		data.Objects = append(data.Objects, VisibleObject{
			Object:     obj,
			Horizontal: hz,
			Airmass:    airmass,
		})
	}
	return data
}

// RunSky publishes a fresh sky into m every interval until ctx is done.
func RunSky(ctx context.Context, s *SimulatedSky, m *Manager, interval time.Duration, log *logging.Logger) {
	if log == nil {
		log = logging.Discard()
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	m.UpdateSky(s.Sky(), nil)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debug("sky feed stopped")
			return
		case <-ticker.C:
			m.UpdateSky(s.Sky(), nil)
		}
	}
}
