package view

import (
	"math"

	"github.com/litescript/ls-planetarium/internal/astro"
)

// Viewport is the drawable area in pixels. PixelAspect is the height of one
// pixel divided by its width; terminal cells are about 2.
type Viewport struct {
	Width       float64
	Height      float64
	PixelAspect float64
}

func (v Viewport) aspect() float64 {
	if v.PixelAspect <= 0 {
		return 1
	}
	return v.PixelAspect
}

// Clamp limits a pointer position to the viewport bounds. NaN maps to the centre.
func (v Viewport) Clamp(x, y float64) (float64, float64) {
	return clampAxis(x, v.Width), clampAxis(y, v.Height)
}

func clampAxis(p, max float64) float64 {
	if math.IsNaN(p) {
		return max / 2
	}
	return math.Max(0, math.Min(max, p))
}

// Snapshot is an immutable view used by renderers and the picker for one
// frame. It carries the camera basis so projections are cheap.
type Snapshot struct {
	State    State
	Viewport Viewport

	look, right, up astro.Vec3
	focal           float64
}

// NewSnapshot builds the camera basis for s over vp.
func NewSnapshot(s State, vp Viewport) Snapshot {
	s = s.Normalized()
	look := astro.RaDecToVector(s.CenterRA, s.CenterDec, 1)

	// Up points toward the north celestial pole; at the poles fall back to
	// the RA meridian so the basis stays defined.
	north := astro.Vec3{Z: 1}
	up := north.Sub(look.Scale(north.Dot(look)))
	if up.Norm() < 1e-9 {
		ra := s.CenterRA * math.Pi / 180
		up = astro.Vec3{X: -math.Cos(ra), Y: -math.Sin(ra)}
		if s.CenterDec < 0 {
			up = up.Scale(-1)
		}
	}
	up = up.Normalized()

	// Viewed from inside the sphere east is on the left, so screen-right is
	// look × up.
	right := look.Cross(up).Normalized()

	focal := 0.0
	if vp.Height > 0 {
		focal = (vp.Height / 2) / math.Tan(s.FOV*math.Pi/360)
	}

	return Snapshot{
		State:    s,
		Viewport: vp,
		look:     look,
		right:    right,
		up:       up,
		focal:    focal,
	}
}

// Look returns the unit view direction.
func (s Snapshot) Look() astro.Vec3 { return s.look }

// Right returns the unit screen-right direction on the sky.
func (s Snapshot) Right() astro.Vec3 { return s.right }

// Up returns the unit screen-up direction on the sky.
func (s Snapshot) Up() astro.Vec3 { return s.up }

// DegreesPerPixel is fov / viewport height, or +Inf for an empty viewport.
func (s Snapshot) DegreesPerPixel() float64 {
	if s.Viewport.Height <= 0 {
		return math.Inf(1)
	}
	return s.State.FOV / s.Viewport.Height
}

// Facing returns the cosine between a direction and the look vector.
func (s Snapshot) Facing(dir astro.Vec3) float64 {
	return dir.Normalized().Dot(s.look)
}

// Project maps a sky direction to viewport pixels. ok is false when the
// direction is behind the camera.
func (s Snapshot) Project(dir astro.Vec3) (x, y float64, ok bool) {
	d := dir.Normalized()
	z := d.Dot(s.look)
	if z <= 1e-6 || s.focal == 0 {
		return 0, 0, false
	}
	cx := d.Dot(s.right) / z
	cy := d.Dot(s.up) / z

	x = s.Viewport.Width/2 + cx*s.focal*s.Viewport.aspect()
	y = s.Viewport.Height/2 - cy*s.focal
	return x, y, true
}

// ProjectRaDec projects an equatorial coordinate.
func (s Snapshot) ProjectRaDec(ra, dec float64) (x, y float64, ok bool) {
	return s.Project(astro.RaDecToVector(ra, dec, 1))
}

// InViewport reports whether a projected point lies within the viewport
// extended by margin pixels on each side.
func (s Snapshot) InViewport(x, y, margin float64) bool {
	return x >= -margin && x <= s.Viewport.Width+margin &&
		y >= -margin && y <= s.Viewport.Height+margin
}

// Ray returns the unit sky direction under a viewport position. The position
// is clamped to the viewport first.
func (s Snapshot) Ray(px, py float64) astro.Vec3 {
	if s.focal == 0 {
		return s.look
	}
	px, py = s.Viewport.Clamp(px, py)
	cx := (px - s.Viewport.Width/2) / (s.focal * s.Viewport.aspect())
	cy := -(py - s.Viewport.Height/2) / s.focal
	return s.look.Add(s.right.Scale(cx)).Add(s.up.Scale(cy)).Normalized()
}

// Unproject returns the coordinate under a viewport position.
func (s Snapshot) Unproject(px, py float64) astro.Equatorial {
	return astro.VectorToRaDec(s.Ray(px, py))
}

// PixelsPerDegree converts an angular size to pixels at the view centre.
func (s Snapshot) PixelsPerDegree() float64 {
	dpp := s.DegreesPerPixel()
	if math.IsInf(dpp, 1) || dpp == 0 {
		return 0
	}
	return 1 / dpp
}
