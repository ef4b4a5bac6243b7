package scene

import (
	"math"

	"github.com/litescript/ls-planetarium/internal/astro"
)

// StarMinMag anchors the brightness-to-size curve.
const StarMinMag = -1.5

// StarExtinction is the atmospheric dimming factor applied to starlight.
// Altitude-dependent extinction is not modelled; every star gets 1.
const StarExtinction = 1.0

// StarSize maps a visual magnitude to a point size in pixels.
func StarSize(mag float64) float64 {
	return math.Max(0.5, 6*math.Pow(10, -0.15*(mag-StarMinMag)))
}

func drawStars(rc *renderContext, out *LayerFrame) {
	if rc.in.Catalog == nil {
		return
	}
	for _, s := range rc.in.Catalog.Stars.Stars {
		x, y, ok := rc.projectRaDec(s.RA, s.Dec)
		if !ok {
			continue
		}
		out.Points = append(out.Points, Point{
			X:     x,
			Y:     y,
			Size:  StarSize(s.Mag),
			Color: StarColorful(s.BV),
			Alpha: StarExtinction,
			Coord: astro.Equatorial{RA: s.RA, Dec: s.Dec},
		})
	}
}

func drawConstellationLines(rc *renderContext, out *LayerFrame) {
	if rc.in.Catalog == nil {
		return
	}
	idx := rc.in.Catalog.Stars.ByID()
	for _, c := range rc.in.Catalog.Constellations {
		for _, seg := range c.Segments {
			a, okA := idx[seg.From]
			b, okB := idx[seg.To]
			if !okA || !okB {
				continue
			}
			va := astro.RaDecToVector(a.RA, a.Dec, 1)
			vb := astro.RaDecToVector(b.RA, b.Dec, 1)
			if rc.in.View.Facing(va) < cullDot && rc.in.View.Facing(vb) < cullDot {
				continue
			}
			ln, ok := rc.segment(va, vb)
			if !ok {
				continue
			}
			ln.Color = colorConstLine
			ln.Alpha = 0.8
			out.Lines = append(out.Lines, ln)
		}
	}
}

func drawConstellationLabels(rc *renderContext, out *LayerFrame) {
	if rc.in.Catalog == nil {
		return
	}
	// Full names once zoomed in, abbreviations when wide.
	wide := rc.in.View.State.FOV > 90
	for _, c := range rc.in.Catalog.Constellations {
		x, y, ok := rc.projectRaDec(c.Label.RA, c.Label.Dec)
		if !ok {
			continue
		}
		text := c.Name
		if wide || text == "" {
			text = c.Abbrev
		}
		out.Labels = append(out.Labels, Label{X: x, Y: y, Text: text, Color: colorConstLabel, Alpha: 0.9})
	}
}

// Galactic band sampling, degrees.
const (
	milkyWayHalfWidth = 10.0
	milkyWayStepL     = 2.0
	milkyWayStepB     = 2.5
)

func drawGalacticPlane(rc *renderContext, out *LayerFrame) {
	for l := 0.0; l < 360; l += milkyWayStepL {
		for b := -milkyWayHalfWidth; b <= milkyWayHalfWidth; b += milkyWayStepB {
			eq := astro.GalacticToEquatorial(l, b)
			x, y, ok := rc.projectRaDec(eq.RA, eq.Dec)
			if !ok {
				continue
			}
			// Brightest on the plane and toward the galactic centre.
			core := 0.5 + 0.5*math.Cos(l*math.Pi/180)
			falloff := 1 - math.Abs(b)/milkyWayHalfWidth
			out.Points = append(out.Points, Point{
				X:     x,
				Y:     y,
				Size:  0.5,
				Color: colorMilkyWay,
				Alpha: 0.15 + 0.35*falloff*(0.4+0.6*core),
				Coord: eq,
				Glyph: '░',
			})
		}
	}
}

func drawAtmosphere(rc *renderContext, out *LayerFrame) {
	sky := rc.in.Sky
	if sky == nil {
		return
	}
	horizon, zenith := AtmosphereColors(sky.SunAlt)
	zen := astro.RaDecToVector(sky.LST*15, sky.Observer.LatDeg, 1)
	rc.frame.Backdrop = &Backdrop{
		Zenith:       zen,
		ZenithColor:  zenith,
		HorizonColor: horizon,
		GroundColor:  colorGround,
		SunAlt:       sky.SunAlt,
		Phase:        astro.GetTwilightPhase(sky.SunAlt),
	}
}
