package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/catalog"
	"github.com/litescript/ls-planetarium/internal/ephem"
)

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 1, G: 0, B: 1}
	}
	return c
}

// Fixed colours.
var (
	colorEquatorialGrid = hex("#2f4f7f")
	colorHorizonGrid    = hex("#4a3f6b")
	colorHorizonLine    = hex("#8a7fb0")
	colorCardinal       = hex("#d0d0d0")
	colorConstLine      = hex("#3d5a80")
	colorConstLabel     = hex("#7f8fa6")
	colorMilkyWay       = hex("#9aa5c8")
	colorLabel          = hex("#c8c8d8")
	colorSelection      = hex("#ffd75f")
	colorHighlight      = hex("#8fb3ff")
	colorSun            = hex("#fff3b0")
	colorMoon           = hex("#e6e6e6")
	colorReticle        = hex("#5fff87")
	colorReticleParked  = hex("#ff875f")
)

// dsoPalette maps an object type to its fallback marker colour.
var dsoPalette = map[catalog.ObjectType]colorful.Color{
	catalog.TypeGalaxy:  hex("#ff9f6b"),
	catalog.TypeNebula:  hex("#6bd6ff"),
	catalog.TypeCluster: hex("#fff06b"),
	catalog.TypeUnknown: hex("#b0b0b0"),
}

// DSOColor returns the fallback colour for a type.
func DSOColor(t catalog.ObjectType) colorful.Color {
	if c, ok := dsoPalette[t]; ok {
		return c
	}
	return dsoPalette[catalog.TypeUnknown]
}

var planetColors = map[ephem.Body]colorful.Color{
	ephem.Mercury: hex("#b5a999"),
	ephem.Venus:   hex("#fff4d6"),
	ephem.Mars:    hex("#ff7a50"),
	ephem.Jupiter: hex("#f0d9b5"),
	ephem.Saturn:  hex("#e8d28a"),
	ephem.Uranus:  hex("#a6f0f0"),
	ephem.Neptune: hex("#6f8fff"),
}

// StarColorful converts a B−V index to a display colour.
func StarColorful(bv float64) colorful.Color {
	c := astro.StarColor(bv)
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Atmosphere anchor colours by sun altitude. Between anchors the colours
// blend in Lab space; outside the range they hold.
var atmosphereStops = []struct {
	sunAlt          float64
	horizon, zenith colorful.Color
}{
	{-18, hex("#05070f"), hex("#010205")}, // night
	{-12, hex("#0c1530"), hex("#03061a")}, // nautical
	{-6, hex("#2b2f63"), hex("#0a1038")},  // end of civil
	{0, hex("#d9825b"), hex("#1f3a7a")},   // sunrise/sunset
	{10, hex("#a9cfff"), hex("#3b7bd8")},  // day
}

var colorGround = hex("#07080c")

// AtmosphereColors returns the horizon and zenith colours for a sun
// altitude. The mapping is continuous across the night, twilight, civil
// and day regimes.
func AtmosphereColors(sunAlt float64) (horizon, zenith colorful.Color) {
	stops := atmosphereStops
	if math.IsNaN(sunAlt) || sunAlt <= stops[0].sunAlt {
		return stops[0].horizon, stops[0].zenith
	}
	last := stops[len(stops)-1]
	if sunAlt >= last.sunAlt {
		return last.horizon, last.zenith
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if sunAlt <= hi.sunAlt {
			t := (sunAlt - lo.sunAlt) / (hi.sunAlt - lo.sunAlt)
			return lo.horizon.BlendLab(hi.horizon, t).Clamped(), lo.zenith.BlendLab(hi.zenith, t).Clamped()
		}
	}
	return last.horizon, last.zenith
}
