// Package scene composes one frame of the planetarium from independent
// layers drawn in a fixed back-to-front order.
package scene

// LayerID names a scene layer. The numeric order is the draw order.
type LayerID int

const (
	LayerAtmosphere LayerID = iota
	LayerGalacticPlane
	LayerEquatorialGrid
	LayerHorizonGrid
	LayerConstellationLines
	LayerStars
	LayerConstellationLabels
	LayerDeepSky
	LayerPlanets
	LayerSun
	LayerMoon
	LayerReticle

	// LayerImageOverlays gates textured quads inside the deep-sky layer.
	// It has a flag but no draw slot of its own.
	LayerImageOverlays

	layerCount
)

// DrawOrder lists the drawable layers back to front.
var DrawOrder = []LayerID{
	LayerAtmosphere,
	LayerGalacticPlane,
	LayerEquatorialGrid,
	LayerHorizonGrid,
	LayerConstellationLines,
	LayerStars,
	LayerConstellationLabels,
	LayerDeepSky,
	LayerPlanets,
	LayerSun,
	LayerMoon,
	LayerReticle,
}

var layerInfo = [layerCount]struct {
	name string
	key  rune
}{
	LayerAtmosphere:          {"atmosphere", 'a'},
	LayerGalacticPlane:       {"galactic_plane", 'm'},
	LayerEquatorialGrid:      {"equatorial_grid", 'g'},
	LayerHorizonGrid:         {"horizon_grid", 'h'},
	LayerConstellationLines:  {"constellation_lines", 'c'},
	LayerStars:               {"stars", 's'},
	LayerConstellationLabels: {"constellation_labels", 'n'},
	LayerDeepSky:             {"deep_sky", 'd'},
	LayerPlanets:             {"planets", 'p'},
	LayerSun:                 {"sun", 'o'},
	LayerMoon:                {"moon", 'y'},
	LayerReticle:             {"reticle", 'r'},
	LayerImageOverlays:       {"image_overlays", 'i'},
}

// String returns the layer name used in config and metrics.
func (l LayerID) String() string {
	if l < 0 || l >= layerCount {
		return "unknown"
	}
	return layerInfo[l].name
}

// Key returns the toggle letter of the layer.
func (l LayerID) Key() rune {
	if l < 0 || l >= layerCount {
		return 0
	}
	return layerInfo[l].key
}

// LayerForKey maps a toggle letter to its layer.
func LayerForKey(r rune) (LayerID, bool) {
	for id := LayerID(0); id < layerCount; id++ {
		if layerInfo[id].key == r {
			return id, true
		}
	}
	return 0, false
}

// AllLayers lists every flag, drawable layers first.
func AllLayers() []LayerID {
	out := make([]LayerID, 0, layerCount)
	for id := LayerID(0); id < layerCount; id++ {
		out = append(out, id)
	}
	return out
}

// Visibility is the set of enabled layers. The composer owns one and hands
// it to renderers by reference; flags are independent of each other.
type Visibility struct {
	enabled [layerCount]bool
}

// NewVisibility enables the listed layers.
func NewVisibility(enabled ...LayerID) *Visibility {
	v := &Visibility{}
	for _, id := range enabled {
		v.Set(id, true)
	}
	return v
}

// AllVisible enables every layer.
func AllVisible() *Visibility {
	return NewVisibility(AllLayers()...)
}

// Enabled reports whether a layer is on. A nil Visibility enables all.
func (v *Visibility) Enabled(id LayerID) bool {
	if v == nil {
		return true
	}
	if id < 0 || id >= layerCount {
		return false
	}
	return v.enabled[id]
}

// Set turns a layer on or off.
func (v *Visibility) Set(id LayerID, on bool) {
	if id < 0 || id >= layerCount {
		return
	}
	v.enabled[id] = on
}

// Toggle flips a layer and returns its new state.
func (v *Visibility) Toggle(id LayerID) bool {
	v.Set(id, !v.Enabled(id))
	return v.Enabled(id)
}

// Clone returns an independent copy.
func (v *Visibility) Clone() *Visibility {
	cp := *v
	return &cp
}
