package scene

import (
	"math"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/catalog"
	"github.com/litescript/ls-planetarium/internal/picker"
	"github.com/litescript/ls-planetarium/internal/texture"
)

// LabelMag is the magnitude at or below which a deep-sky object always gets
// a label and ring.
const LabelMag = 6.5

// RepresentationKind tags how a deep-sky object is drawn.
type RepresentationKind int

const (
	RepVectorMarker RepresentationKind = iota
	RepTexturedQuad
)

func (k RepresentationKind) String() string {
	if k == RepTexturedQuad {
		return "quad"
	}
	return "marker"
}

// Representation is the resolved drawing of one deep-sky object for one
// frame. Exactly one of Quad and Marker is set, matching Kind.
type Representation struct {
	Kind   RepresentationKind
	Quad   *Quad
	Marker *Circle
}

// WantsQuad is the level-of-detail test: an overlay exists, image overlays
// are enabled and the view resolves finer than the overlay's threshold.
func WantsQuad(hasOverlay, imagesOn bool, degPerPx, minResolution float64) bool {
	return hasOverlay && imagesOn && degPerPx < minResolution
}

// MarkerRadius is the fallback circle size in pixels for a magnitude.
func MarkerRadius(mag float64) float64 {
	return math.Max(0.5, 2-mag/6)
}

// deepSkyObjects prefers the sky feed's list and falls back to the catalog.
func (rc *renderContext) deepSkyObjects() []catalog.Object {
	if rc.in.Sky != nil && len(rc.in.Sky.Objects) > 0 {
		objs := make([]catalog.Object, len(rc.in.Sky.Objects))
		for i, v := range rc.in.Sky.Objects {
			objs[i] = v.Object
		}
		return objs
	}
	if rc.in.Catalog != nil {
		return rc.in.Catalog.Objects
	}
	return nil
}

func drawDeepSky(rc *renderContext, out *LayerFrame) {
	view := rc.in.View
	dpp := view.DegreesPerPixel()
	ppd := view.PixelsPerDegree()
	imagesOn := rc.vis.Enabled(LayerImageOverlays)

	for _, obj := range rc.deepSkyObjects() {
		dir := astro.RaDecToVector(obj.RA, obj.Dec, 1)
		x, y, ok := rc.project(dir)
		if !ok {
			continue
		}
		coord := astro.Equatorial{RA: obj.RA, Dec: obj.Dec}
		rc.frame.Pickables = append(rc.frame.Pickables, picker.Candidate{
			ID: obj.ID, Name: obj.Name, Coord: coord, Kind: "dso",
		})

		rep := rc.resolveRepresentation(obj, dpp, imagesOn)
		if rep.Kind == RepTexturedQuad {
			out.Quads = append(out.Quads, *rep.Quad)
		} else {
			marker := Circle{
				X:      x,
				Y:      y,
				Radius: MarkerRadius(obj.Mag),
				Color:  DSOColor(obj.Type),
				Alpha:  0.9,
				Fill:   true,
			}
			if r := obj.Major / 60 / 2 * ppd; r > marker.Radius {
				marker.Radius = r
				marker.Fill = false
			}
			if obj.SpriteURL != "" && rc.textures != nil {
				if img, st := rc.textures.Get(obj.SpriteURL); st == texture.StatusReady {
					marker.Sprite = img
				}
			}
			rep.Marker = &marker
			out.Circles = append(out.Circles, marker)
		}
		rc.frame.Representations[obj.ID] = rep

		// The ring and label do not depend on the representation.
		selected := obj.ID == rc.in.Selected
		if !selected && obj.Mag > LabelMag {
			continue
		}
		ringColor := colorHighlight
		if selected {
			ringColor = colorSelection
		}
		ring := math.Max(MarkerRadius(obj.Mag), obj.Major/60/2*ppd) + 2
		out.Circles = append(out.Circles, Circle{X: x, Y: y, Radius: ring, Color: ringColor, Alpha: 1})
		name := obj.Name
		if name == "" {
			name = obj.ID
		}
		out.Labels = append(out.Labels, Label{
			X: x + ring + 1, Y: y, Text: name, Color: colorLabel, Alpha: 1, Bold: selected,
		})
	}
}

// resolveRepresentation picks the quad only when the level of detail calls
// for it, every corner projects, and the texture has loaded. Anything else
// falls back to the marker.
func (rc *renderContext) resolveRepresentation(obj catalog.Object, dpp float64, imagesOn bool) Representation {
	ov, has := rc.in.Catalog.Overlay(obj.ID)
	if !WantsQuad(has, imagesOn, dpp, ov.MinResolution) || rc.textures == nil || ov.ImageURL == "" {
		return Representation{Kind: RepVectorMarker}
	}
	img, st := rc.textures.Get(ov.ImageURL)
	if st != texture.StatusReady {
		return Representation{Kind: RepVectorMarker}
	}

	geom := astro.QuadCorners(ov.Corners, 1)
	q := Quad{ID: obj.ID, UVs: geom.UVs, Indices: geom.Indices, Texture: img, Alpha: 1}
	if ov.Brightness > 0 {
		q.Alpha = math.Min(1, ov.Brightness)
	}
	for i, p := range geom.Positions {
		if rc.in.View.Facing(p) < cullDot {
			return Representation{Kind: RepVectorMarker}
		}
		x, y, ok := rc.in.View.Project(p)
		if !ok {
			return Representation{Kind: RepVectorMarker}
		}
		q.Corners[i] = [2]float64{x, y}
	}
	return Representation{Kind: RepTexturedQuad, Quad: &q}
}
