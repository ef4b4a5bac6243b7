package astro

import "math"

// AngularDistance returns the great-circle distance in degrees [0, 180]
// between two points on the celestial sphere.
func AngularDistance(ra1, dec1, ra2, dec2 float64) float64 {
	ra1Rad := degToRad(ra1)
	dec1Rad := degToRad(dec1)
	ra2Rad := degToRad(ra2)
	dec2Rad := degToRad(dec2)

	// Haversine formula
	dRA := ra2Rad - ra1Rad
	dDec := dec2Rad - dec1Rad

	a := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1Rad)*math.Cos(dec2Rad)*math.Sin(dRA/2)*math.Sin(dRA/2)

	// Clamp to avoid numerical errors with asin
	a = math.Max(0, math.Min(1, a))

	return radToDeg(2 * math.Asin(math.Sqrt(a)))
}

// Separation is AngularDistance on Equatorial values.
func Separation(a, b Equatorial) float64 {
	return AngularDistance(a.RA, a.Dec, b.RA, b.Dec)
}

// Airmass returns the Kasten–Young relative airmass for an apparent altitude
// in degrees. Below the horizon it returns 0.
func Airmass(altDeg float64) float64 {
	if altDeg < 0 {
		return 0
	}
	return 1 / (math.Sin(degToRad(altDeg)) + 0.50572*math.Pow(altDeg+6.07995, -1.6364))
}

// QuadCorner indexes the fixed winding of an image quad.
type QuadCorner int

const (
	BottomLeft QuadCorner = iota
	BottomRight
	TopRight
	TopLeft
)

// Quad is the geometry of an image overlay: four sphere positions, their
// texture coordinates, and two triangles.
type Quad struct {
	Positions [4]Vec3
	UVs       [4][2]float64
	Indices   [6]int
}

// QuadCorners builds overlay geometry from corners ordered bottomLeft,
// bottomRight, topRight, topLeft. Callers must keep that order; any other
// order maps the texture onto a twisted quad.
func QuadCorners(corners [4]Equatorial, radius float64) Quad {
	var q Quad
	for i, c := range corners {
		q.Positions[i] = RaDecToVector(c.RA, c.Dec, radius)
	}
	q.UVs = [4][2]float64{
		BottomLeft:  {0, 0},
		BottomRight: {1, 0},
		TopRight:    {1, 1},
		TopLeft:     {0, 1},
	}
	q.Indices = [6]int{
		int(BottomLeft), int(BottomRight), int(TopRight),
		int(BottomLeft), int(TopRight), int(TopLeft),
	}
	return q
}

// Center returns the direction of the quad centroid on the sphere.
func (q Quad) Center() Equatorial {
	var sum Vec3
	for _, p := range q.Positions {
		sum = sum.Add(p)
	}
	return VectorToRaDec(sum)
}
