package ephem

import (
	"context"
	"math"
	"time"

	"github.com/litescript/ls-planetarium/internal/astro"
)

// orbitalElements are J2000 mean Keplerian elements and their rates per
// Julian century (Standish, "Keplerian Elements for Approximate Positions of
// the Major Planets", valid 1800-2050).
type orbitalElements struct {
	a, aDot       float64 // semi-major axis, AU
	e, eDot       float64 // eccentricity
	i, iDot       float64 // inclination, deg
	l, lDot       float64 // mean longitude, deg
	peri, periDot float64 // longitude of perihelion, deg
	node, nodeDot float64 // longitude of ascending node, deg
	absMag        float64 // H for the magnitude estimate
}

var earthElements = orbitalElements{
	1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
	100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0, 0,
}

var planetElements = map[Body]orbitalElements{
	Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081, -0.42},
	Venus: {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418, -4.40},
	Mars: {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343, -1.52},
	Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106, -9.40},
	Saturn: {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794, -8.88},
	Uranus: {19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939,
		313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589, -7.19},
	Neptune: {30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372,
		-55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664, -6.87},
}

// heliocentric returns the heliocentric ecliptic position in AU at T
// Julian centuries past J2000.
func (el orbitalElements) heliocentric(T float64) astro.Vec3 {
	a := el.a + el.aDot*T
	e := el.e + el.eDot*T
	inc := deg2rad(el.i + el.iDot*T)
	L := el.l + el.lDot*T
	peri := el.peri + el.periDot*T
	node := el.node + el.nodeDot*T

	M := deg2rad(math.Mod(L-peri, 360))
	w := deg2rad(peri - node)
	O := deg2rad(node)

	E := solveKepler(M, e)
	xp := a * (math.Cos(E) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(E)

	cw, sw := math.Cos(w), math.Sin(w)
	cO, sO := math.Cos(O), math.Sin(O)
	ci, si := math.Cos(inc), math.Sin(inc)

	return astro.Vec3{
		X: (cw*cO-sw*sO*ci)*xp + (-sw*cO-cw*sO*ci)*yp,
		Y: (cw*sO+sw*cO*ci)*xp + (-sw*sO+cw*cO*ci)*yp,
		Z: (sw*si)*xp + (cw*si)*yp,
	}
}

// solveKepler solves M = E - e·sin(E) by Newton iteration.
func solveKepler(M, e float64) float64 {
	E := M + e*math.Sin(M)
	for range 12 {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-12 {
			break
		}
	}
	return E
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// ElementsProvider computes planet positions from mean orbital elements.
// It needs no network and is accurate to roughly an arcminute for the inner
// planets, a few arcminutes for the outer ones.
type ElementsProvider struct{}

// NewElementsProvider creates an offline provider.
func NewElementsProvider() *ElementsProvider {
	return &ElementsProvider{}
}

// Name implements Provider.
func (p *ElementsProvider) Name() string {
	return "Elements"
}

// Snapshot implements Provider.
func (p *ElementsProvider) Snapshot(ctx context.Context, t time.Time, obs astro.Observer) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{Time: t, Positions: make([]Position, 0, len(Planets))}
	for _, b := range Planets {
		snap.Positions = append(snap.Positions, p.position(b, t))
	}
	return snap, nil
}

// position returns the geocentric place of one body.
func (p *ElementsProvider) position(b Body, t time.Time) Position {
	T := astro.JulianCenturies(t)
	el := planetElements[b]

	earth := earthElements.heliocentric(T)
	helio := el.heliocentric(T)
	geo := helio.Sub(earth)

	r := helio.Norm()
	delta := geo.Norm()

	return Position{
		Body:       b,
		Coord:      astro.VectorToRaDec(astro.EclipticToEquatorial(geo)),
		DistanceAU: delta,
		Magnitude:  el.absMag + 5*math.Log10(r*delta),
		Time:       t,
		Source:     p.Name(),
	}
}

// SunFromElements returns the Sun's geocentric direction implied by the
// Earth elements. Used to cross-check the element set.
func SunFromElements(t time.Time) astro.Equatorial {
	earth := earthElements.heliocentric(astro.JulianCenturies(t))
	return astro.VectorToRaDec(astro.EclipticToEquatorial(earth.Scale(-1)))
}
