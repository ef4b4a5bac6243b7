package scene

import (
	"math"

	"github.com/litescript/ls-planetarium/internal/picker"
)

// Apparent disc diameters in degrees.
const (
	sunDiameter  = 0.53
	moonDiameter = 0.52
)

// discRadius is the pixel radius of a disc, never smaller than min.
func (rc *renderContext) discRadius(diameter, min float64) float64 {
	return math.Max(min, diameter/2*rc.in.View.PixelsPerDegree())
}

func drawPlanets(rc *renderContext, out *LayerFrame) {
	if rc.in.Planets == nil {
		return
	}
	for _, p := range rc.in.Planets.Positions {
		x, y, ok := rc.projectRaDec(p.Coord.RA, p.Coord.Dec)
		if !ok {
			continue
		}
		c, known := planetColors[p.Body]
		if !known {
			c = colorLabel
		}
		r := math.Max(1, 3-p.Magnitude/3)
		out.Points = append(out.Points, Point{
			X: x, Y: y, Size: r, Color: c, Alpha: 1, Coord: p.Coord, Glyph: []rune(p.Body.Symbol())[0],
		})

		selected := p.Body.ID() == rc.in.Selected
		lc := colorLabel
		if selected {
			lc = colorSelection
			out.Circles = append(out.Circles, Circle{X: x, Y: y, Radius: r + 2, Color: colorSelection, Alpha: 1})
		}
		out.Labels = append(out.Labels, Label{X: x + r + 1, Y: y, Text: p.Body.String(), Color: lc, Alpha: 1, Bold: selected})

		rc.frame.Pickables = append(rc.frame.Pickables, picker.Candidate{
			ID: p.Body.ID(), Name: p.Body.String(), Coord: p.Coord, Kind: "planet",
		})
	}
}

func drawSun(rc *renderContext, out *LayerFrame) {
	if rc.in.Sky == nil {
		return
	}
	sun := rc.in.Sky.Sun
	x, y, ok := rc.projectRaDec(sun.RA, sun.Dec)
	if !ok {
		return
	}
	r := rc.discRadius(sunDiameter, 2)
	out.Circles = append(out.Circles, Circle{X: x, Y: y, Radius: r, Color: colorSun, Alpha: 1, Fill: true})
	out.Labels = append(out.Labels, Label{X: x + r + 1, Y: y, Text: "Sun", Color: colorSun, Alpha: 1})
	rc.frame.Pickables = append(rc.frame.Pickables, picker.Candidate{ID: "sun", Name: "Sun", Coord: sun, Kind: "sun"})
}

func drawMoon(rc *renderContext, out *LayerFrame) {
	if rc.in.Sky == nil {
		return
	}
	moon := rc.in.Sky.Moon
	x, y, ok := rc.projectRaDec(moon.RA, moon.Dec)
	if !ok {
		return
	}
	r := rc.discRadius(moonDiameter, 2)
	lit := rc.in.Sky.MoonIllumination
	out.Circles = append(out.Circles, Circle{X: x, Y: y, Radius: r, Color: colorMoon, Alpha: 0.3 + 0.7*lit, Fill: true})
	out.Labels = append(out.Labels, Label{X: x + r + 1, Y: y, Text: "Moon", Color: colorMoon, Alpha: 1})
	rc.frame.Pickables = append(rc.frame.Pickables, picker.Candidate{ID: "moon", Name: "Moon", Coord: moon, Kind: "moon"})
}

// reticleSize is the crosshair half-length in pixels.
const reticleSize = 3.0

func drawReticle(rc *renderContext, out *LayerFrame) {
	r := rc.in.Reticle
	if !r.Visible {
		return
	}
	x, y, ok := rc.project(r.Dir)
	if !ok {
		return
	}
	c := colorReticle
	if r.Parked {
		c = colorReticleParked
	}
	out.Circles = append(out.Circles, Circle{X: x, Y: y, Radius: reticleSize, Color: c, Alpha: r.Opacity})
	out.Lines = append(out.Lines,
		Line{X1: x - 2*reticleSize, Y1: y, X2: x - reticleSize, Y2: y, Color: c, Alpha: r.Opacity},
		Line{X1: x + reticleSize, Y1: y, X2: x + 2*reticleSize, Y2: y, Color: c, Alpha: r.Opacity},
		Line{X1: x, Y1: y - 2*reticleSize, X2: x, Y2: y - reticleSize, Color: c, Alpha: r.Opacity},
		Line{X1: x, Y1: y + reticleSize, X2: x, Y2: y + 2*reticleSize, Color: c, Alpha: r.Opacity},
	)
	rc.frame.Reticle = &ReticleMark{X: x, Y: y, Coord: r.Coord, Opacity: r.Opacity, Slewing: r.Slewing}
}
