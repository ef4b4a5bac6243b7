package scene

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/picker"
	"github.com/litescript/ls-planetarium/internal/texture"
	"github.com/litescript/ls-planetarium/internal/view"
)

// Point is a star-like dot. Size is in pixels.
type Point struct {
	X, Y  float64
	Size  float64
	Color colorful.Color
	Alpha float64
	Coord astro.Equatorial
	Glyph rune // optional symbol for text backends
}

// Line is a straight segment in viewport pixels.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          colorful.Color
	Alpha          float64
	Emphasis       bool // horizon line, meridian
}

// Circle is a disc or ring. Radius is in pixels.
type Circle struct {
	X, Y   float64
	Radius float64
	Color  colorful.Color
	Alpha  float64
	Fill   bool
	Sprite *texture.Image // legacy marker texture, drawn instead of the fill
}

// Label is text anchored at its left baseline.
type Label struct {
	X, Y  float64
	Text  string
	Color colorful.Color
	Alpha float64
	Bold  bool
}

// Quad is a textured image overlay projected into the viewport. Corners
// keep the bottomLeft, bottomRight, topRight, topLeft order.
type Quad struct {
	ID      string
	Corners [4][2]float64
	UVs     [4][2]float64
	Indices [6]int
	Texture *texture.Image
	Alpha   float64
}

// Contains reports whether (x, y) falls inside the projected quad.
func (q Quad) Contains(x, y float64) bool {
	_, _, ok := q.UV(x, y)
	return ok
}

// UV returns the texture coordinate under (x, y) by barycentric lookup in
// the quad's two triangles.
func (q Quad) UV(x, y float64) (u, v float64, ok bool) {
	for t := 0; t < 2; t++ {
		i0, i1, i2 := q.Indices[t*3], q.Indices[t*3+1], q.Indices[t*3+2]
		a, b, c := q.Corners[i0], q.Corners[i1], q.Corners[i2]
		den := (b[1]-c[1])*(a[0]-c[0]) + (c[0]-b[0])*(a[1]-c[1])
		if math.Abs(den) < 1e-12 {
			continue
		}
		w0 := ((b[1]-c[1])*(x-c[0]) + (c[0]-b[0])*(y-c[1])) / den
		w1 := ((c[1]-a[1])*(x-c[0]) + (a[0]-c[0])*(y-c[1])) / den
		w2 := 1 - w0 - w1
		const eps = -1e-9
		if w0 < eps || w1 < eps || w2 < eps {
			continue
		}
		ua, ub, uc := q.UVs[i0], q.UVs[i1], q.UVs[i2]
		u = w0*ua[0] + w1*ub[0] + w2*uc[0]
		v = w0*ua[1] + w1*ub[1] + w2*uc[1]
		return u, v, true
	}
	return 0, 0, false
}

// Backdrop is the atmosphere gradient: horizon colour blending to zenith
// colour by the cosine of the angle from the zenith.
type Backdrop struct {
	Zenith       astro.Vec3
	ZenithColor  colorful.Color
	HorizonColor colorful.Color
	GroundColor  colorful.Color
	SunAlt       float64
	Phase        astro.TwilightPhase
}

// ColorAt returns the sky colour in direction dir.
func (b *Backdrop) ColorAt(dir astro.Vec3) colorful.Color {
	c := dir.Normalized().Dot(b.Zenith)
	if c < 0 {
		return b.HorizonColor.BlendLab(b.GroundColor, math.Min(1, -c*4)).Clamped()
	}
	return b.HorizonColor.BlendLab(b.ZenithColor, math.Min(1, c)).Clamped()
}

// LayerFrame holds the primitives one layer emitted.
type LayerFrame struct {
	ID      LayerID
	Quads   []Quad
	Lines   []Line
	Circles []Circle
	Points  []Point
	Labels  []Label
}

// Count returns the number of primitives.
func (l *LayerFrame) Count() int {
	return len(l.Quads) + len(l.Lines) + len(l.Circles) + len(l.Points) + len(l.Labels)
}

// Frame is one composed scene. Layers appear in draw order; disabled
// layers are absent.
type Frame struct {
	Time     time.Time
	View     view.Snapshot
	Backdrop *Backdrop
	Layers   []LayerFrame

	// Pickables are the objects currently in view, for the picker.
	Pickables []picker.Candidate

	// Representations records how each deep-sky object was drawn.
	Representations map[string]Representation

	Reticle *ReticleMark
	Sky     SkyInfo
}

// SkyInfo summarises the observing conditions of the frame.
type SkyInfo struct {
	LST              float64
	SunAlt           float64
	MoonAlt          float64
	MoonIllumination float64
	Phase            astro.TwilightPhase
}

// ReticleMark is the mount reticle as drawn this frame.
type ReticleMark struct {
	X, Y    float64
	Coord   astro.Equatorial
	Opacity float64
	Slewing bool
}

// Layer returns the frame of a layer, if it was drawn.
func (f *Frame) Layer(id LayerID) (*LayerFrame, bool) {
	for i := range f.Layers {
		if f.Layers[i].ID == id {
			return &f.Layers[i], true
		}
	}
	return nil, false
}

// Count returns the total primitive count.
func (f *Frame) Count() int {
	n := 0
	for i := range f.Layers {
		n += f.Layers[i].Count()
	}
	return n
}
