package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-planetarium/internal/astro"
)

// gridSample is the spacing in degrees of points along a grid line.
const gridSample = 2.0

// equatorialSpacing picks RA (degrees) and Dec spacing for a field of view.
func equatorialSpacing(fov float64) (raStep, decStep float64) {
	switch {
	case fov > 60:
		return 30, 15 // 2h
	case fov > 20:
		return 15, 10 // 1h
	default:
		return 7.5, 5 // 30m
	}
}

func drawEquatorialGrid(rc *renderContext, out *LayerFrame) {
	raStep, decStep := equatorialSpacing(rc.in.View.State.FOV)

	// Meridians
	for ra := 0.0; ra < 360; ra += raStep {
		rc.polyline(out, func(t float64) astro.Vec3 {
			return astro.RaDecToVector(ra, t, 1)
		}, -90+decStep, 90-decStep, colorEquatorialGrid, ra == 0)
	}
	// Parallels
	for dec := -90 + decStep; dec < 90; dec += decStep {
		rc.polyline(out, func(t float64) astro.Vec3 {
			return astro.RaDecToVector(t, dec, 1)
		}, 0, 360, colorEquatorialGrid, dec == 0)
	}

	// Hour labels along the equator.
	for ra := 0.0; ra < 360; ra += raStep {
		if x, y, ok := rc.projectRaDec(ra, 0); ok {
			out.Labels = append(out.Labels, Label{
				X: x + 1, Y: y, Text: formatHourLabel(ra), Color: colorEquatorialGrid, Alpha: 1,
			})
		}
	}
}

func formatHourLabel(ra float64) string {
	h := ra / 15
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%dh%02d", int(h), int((h-float64(int(h)))*60+0.5))
}

func drawHorizonGrid(rc *renderContext, out *LayerFrame) {
	if rc.in.Sky == nil {
		return
	}
	lst := rc.lst()
	lat := rc.observer().LatDeg
	altaz := func(alt, az float64) astro.Vec3 {
		eq := astro.HorizontalToEquatorial(alt, az, lst, lat)
		return astro.RaDecToVector(eq.RA, eq.Dec, 1)
	}

	for az := 0.0; az < 360; az += 30 {
		rc.polyline(out, func(t float64) astro.Vec3 { return altaz(t, az) }, 0, 80, colorHorizonGrid, false)
	}
	for _, alt := range []float64{0, 30, 60} {
		rc.polyline(out, func(t float64) astro.Vec3 { return altaz(alt, t) }, 0, 360, colorHorizonGrid, alt == 0)
	}

	cardinals := []struct {
		label string
		az    float64
	}{{"N", 0}, {"E", 90}, {"S", 180}, {"W", 270}}
	for _, c := range cardinals {
		if x, y, ok := rc.project(altaz(0, c.az)); ok {
			out.Labels = append(out.Labels, Label{X: x, Y: y, Text: c.label, Color: colorCardinal, Alpha: 1, Bold: true})
		}
	}
}

// polyline samples f over [from, to] and emits the visible segments.
// Emphasised lines take the horizon colour.
func (rc *renderContext) polyline(out *LayerFrame, f func(t float64) astro.Vec3, from, to float64, color colorful.Color, emphasis bool) {
	prev := f(from)
	for t := from + gridSample; t <= to+1e-9; t += gridSample {
		next := f(t)
		if rc.in.View.Facing(prev) >= cullDot || rc.in.View.Facing(next) >= cullDot {
			if ln, ok := rc.segment(prev, next); ok {
				ln.Color = color
				ln.Alpha = 0.6
				if emphasis {
					ln.Color = colorHorizonLine
					ln.Alpha = 1
					ln.Emphasis = true
				}
				out.Lines = append(out.Lines, ln)
			}
		}
		prev = next
	}
}
