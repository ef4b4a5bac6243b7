package ephem

// Body identifies a planet by its NAIF SPICE ID.
type Body int

// Planet barycentre IDs accepted by Horizons.
// Sourced from https://naif.jpl.nasa.gov/pub/naif/toolkit_docs/C/req/naif_ids.html
const (
	Mercury Body = 199
	Venus   Body = 299
	Mars    Body = 499
	Jupiter Body = 599
	Saturn  Body = 699
	Uranus  Body = 799
	Neptune Body = 899
)

// Planets lists the bodies drawn by the planet layer, inner to outer.
var Planets = []Body{Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune}

var bodyNames = map[Body]string{
	Mercury: "Mercury",
	Venus:   "Venus",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
}

// String returns the planet name.
func (b Body) String() string {
	if n, ok := bodyNames[b]; ok {
		return n
	}
	return "unknown"
}

// Symbol returns a one-letter marker for terminal display.
func (b Body) Symbol() string {
	switch b {
	case Mercury:
		return "☿"
	case Venus:
		return "♀"
	case Mars:
		return "♂"
	case Jupiter:
		return "♃"
	case Saturn:
		return "♄"
	case Uranus:
		return "⛢"
	case Neptune:
		return "♆"
	}
	return "?"
}

// ID returns a stable identifier for picking and selection events.
func (b Body) ID() string {
	return "planet:" + b.String()
}
