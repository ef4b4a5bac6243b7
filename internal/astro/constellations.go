package astro

// ConstellationSegment is a line between two catalog stars, by star ID.
type ConstellationSegment struct {
	From string
	To   string
}

// Constellation groups line segments and a label anchor.
type Constellation struct {
	Abbrev   string
	Name     string
	Segments []ConstellationSegment
	Label    Equatorial
}

// DefaultConstellations returns stick figures for prominent constellations,
// drawn between stars of DefaultStarCatalog.
func DefaultConstellations() []Constellation {
	out := make([]Constellation, len(defaultConstellations))
	copy(out, defaultConstellations)
	return out
}

func chain(ids ...string) []ConstellationSegment {
	segs := make([]ConstellationSegment, 0, len(ids)-1)
	for i := 1; i < len(ids); i++ {
		segs = append(segs, ConstellationSegment{From: ids[i-1], To: ids[i]})
	}
	return segs
}

func join(parts ...[]ConstellationSegment) []ConstellationSegment {
	var out []ConstellationSegment
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var defaultConstellations = []Constellation{
	{
		Abbrev: "Ori", Name: "Orion",
		Segments: join(
			chain("betelgeuse", "alnitak", "alnilam", "mintaka", "bellatrix", "betelgeuse"),
			chain("alnitak", "saiph"),
			chain("mintaka", "rigel"),
		),
		Label: Equatorial{RA: 83.8, Dec: 3.0},
	},
	{
		Abbrev: "UMa", Name: "Ursa Major",
		Segments: chain("alkaid", "mizar", "alioth", "megrez", "phecda", "merak", "dubhe", "megrez"),
		Label:    Equatorial{RA: 175.0, Dec: 58.0},
	},
	{
		Abbrev: "Cas", Name: "Cassiopeia",
		Segments: chain("caph", "schedar", "navi"),
		Label:    Equatorial{RA: 10.0, Dec: 62.0},
	},
	{
		Abbrev: "Cyg", Name: "Cygnus",
		Segments: join(chain("deneb", "sadr", "albireo"), chain("sadr", "aljanah")),
		Label:    Equatorial{RA: 305.0, Dec: 44.0},
	},
	{
		Abbrev: "Sco", Name: "Scorpius",
		Segments: chain("acrab", "dschubba", "antares", "sargas", "girtab", "shaula"),
		Label:    Equatorial{RA: 253.0, Dec: -30.0},
	},
	{
		Abbrev: "Leo", Name: "Leo",
		Segments: join(
			chain("regulus", "algieba", "adhafera", "rasalas"),
			chain("algieba", "zosma", "denebola", "chertan", "regulus"),
		),
		Label: Equatorial{RA: 160.0, Dec: 18.0},
	},
	{
		Abbrev: "Cru", Name: "Crux",
		Segments: chain("acrux", "gacrux"),
		Label:    Equatorial{RA: 187.0, Dec: -60.0},
	},
	{
		Abbrev: "Gem", Name: "Gemini",
		Segments: join(chain("castor", "pollux", "wasat", "alhena")),
		Label:    Equatorial{RA: 108.0, Dec: 24.0},
	},
	{
		Abbrev: "CMa", Name: "Canis Major",
		Segments: join(chain("mirzam", "sirius", "adhara", "wezen", "aludra"), chain("adhara", "furud")),
		Label:    Equatorial{RA: 104.0, Dec: -22.0},
	},
	{
		Abbrev: "Peg", Name: "Pegasus",
		Segments: join(chain("alpheratz", "scheat", "markab", "enif")),
		Label:    Equatorial{RA: 340.0, Dec: 20.0},
	},
	{
		Abbrev: "Tau", Name: "Taurus",
		Segments: chain("aldebaran", "elnath"),
		Label:    Equatorial{RA: 72.0, Dec: 20.0},
	},
}
