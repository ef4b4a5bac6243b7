package scene

import (
	"time"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/catalog"
	"github.com/litescript/ls-planetarium/internal/ephem"
	"github.com/litescript/ls-planetarium/internal/feed"
	"github.com/litescript/ls-planetarium/internal/mount"
	"github.com/litescript/ls-planetarium/internal/texture"
	"github.com/litescript/ls-planetarium/internal/view"
)

// cullDot is the facing threshold below which objects are skipped.
const cullDot = -0.1

// viewMargin extends the viewport when deciding if a point is on screen.
const viewMargin = 2.0

// Textures resolves a URL to a decoded image without blocking. A miss
// schedules a load and reports pending.
type Textures interface {
	Get(url string) (*texture.Image, texture.Status)
}

// Input is everything a frame is drawn from. Renderers only read it.
type Input struct {
	Now      time.Time
	View     view.Snapshot
	Sky      *feed.SkyData
	Catalog  *catalog.Catalog
	Planets  *ephem.Snapshot
	Reticle  mount.Reticle
	Selected string
}

// renderContext is shared by layer renderers for one frame.
type renderContext struct {
	in       Input
	vis      *Visibility
	textures Textures
	frame    *Frame
}

func (rc *renderContext) observer() astro.Observer {
	if rc.in.Sky != nil {
		return rc.in.Sky.Observer
	}
	return astro.Observer{}
}

func (rc *renderContext) lst() float64 {
	if rc.in.Sky != nil {
		return rc.in.Sky.LST
	}
	return 0
}

// project maps a unit direction to the viewport, applying the facing cull.
func (rc *renderContext) project(dir astro.Vec3) (x, y float64, ok bool) {
	if rc.in.View.Facing(dir) < cullDot {
		return 0, 0, false
	}
	x, y, ok = rc.in.View.Project(dir)
	if !ok || !rc.in.View.InViewport(x, y, viewMargin) {
		return 0, 0, false
	}
	return x, y, true
}

func (rc *renderContext) projectRaDec(ra, dec float64) (x, y float64, ok bool) {
	return rc.project(astro.RaDecToVector(ra, dec, 1))
}

// segment projects a great-circle segment, dropping it when either end is
// behind the camera. Segments entirely off screen are dropped too.
func (rc *renderContext) segment(a, b astro.Vec3) (Line, bool) {
	x1, y1, ok1 := rc.in.View.Project(a)
	x2, y2, ok2 := rc.in.View.Project(b)
	if !ok1 || !ok2 {
		return Line{}, false
	}
	w, h := rc.in.View.Viewport.Width, rc.in.View.Viewport.Height
	if (x1 < 0 && x2 < 0) || (x1 > w && x2 > w) || (y1 < 0 && y2 < 0) || (y1 > h && y2 > h) {
		return Line{}, false
	}
	return Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Alpha: 1}, true
}
