package astro

import "math"

// SphereRadius is the radius of the celestial sphere the scene is built on.
const SphereRadius = 100.0

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns a unit vector in the same direction.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / n, Y: v.Y / n, Z: v.Z / n}
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Dot returns the scalar product.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the vector product v × u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// RaDecToVector places a coordinate on a sphere of the given radius.
// X points at RA 0, Z at the north celestial pole.
func RaDecToVector(ra, dec, radius float64) Vec3 {
	r := degToRad(ra)
	d := degToRad(dec)
	return Vec3{
		X: radius * math.Cos(d) * math.Cos(r),
		Y: radius * math.Cos(d) * math.Sin(r),
		Z: radius * math.Sin(d),
	}
}

// VectorToRaDec is the inverse of RaDecToVector. The zero vector maps to (0, 0).
func VectorToRaDec(v Vec3) Equatorial {
	n := v.Norm()
	if n == 0 {
		return Equatorial{}
	}
	// atan2 against the equatorial component equals asin(z/|v|) and keeps
	// full precision near the poles.
	dec := math.Atan2(v.Z, math.Hypot(v.X, v.Y))
	ra := math.Atan2(v.Y, v.X)
	return Equatorial{
		RA:  normalizeAngle360(radToDeg(ra)),
		Dec: ClampDec(radToDeg(dec)),
	}
}

// Obliquity is the Earth's axial tilt (J2000 epoch) in radians.
const obliquityRad = 23.439291 * math.Pi / 180

// EquatorialToEcliptic converts equatorial XYZ to ecliptic XYZ.
// Input is in any units (km, AU, etc); output is in the same units.
func EquatorialToEcliptic(eq Vec3) Vec3 {
	cosE := math.Cos(obliquityRad)
	sinE := math.Sin(obliquityRad)

	return Vec3{
		X: eq.X,
		Y: eq.Y*cosE + eq.Z*sinE,
		Z: -eq.Y*sinE + eq.Z*cosE,
	}
}

// EclipticToEquatorial converts ecliptic XYZ to equatorial XYZ.
func EclipticToEquatorial(ecl Vec3) Vec3 {
	cosE := math.Cos(obliquityRad)
	sinE := math.Sin(obliquityRad)

	return Vec3{
		X: ecl.X,
		Y: ecl.Y*cosE - ecl.Z*sinE,
		Z: ecl.Y*sinE + ecl.Z*cosE,
	}
}

// Galactic pole and node (J2000).
const (
	galNorthPoleRA  = 192.85948
	galNorthPoleDec = 27.12825
	galNCPLon       = 122.93192 // galactic longitude of the north celestial pole
)

// EquatorialToGalactic returns galactic longitude l and latitude b in degrees.
func EquatorialToGalactic(ra, dec float64) (l, b float64) {
	d := degToRad(dec)
	dg := degToRad(galNorthPoleDec)
	dra := degToRad(ra - galNorthPoleRA)

	sinB := math.Sin(d)*math.Sin(dg) + math.Cos(d)*math.Cos(dg)*math.Cos(dra)
	b = radToDeg(math.Asin(clampUnit(sinB)))

	y := math.Cos(d) * math.Sin(dra)
	x := math.Sin(d)*math.Cos(dg) - math.Cos(d)*math.Sin(dg)*math.Cos(dra)
	l = normalizeAngle360(galNCPLon - radToDeg(math.Atan2(y, x)))
	return l, b
}

// GalacticToEquatorial is the inverse of EquatorialToGalactic.
func GalacticToEquatorial(l, b float64) Equatorial {
	bb := degToRad(b)
	dg := degToRad(galNorthPoleDec)
	dl := degToRad(galNCPLon - l)

	sinDec := math.Sin(bb)*math.Sin(dg) + math.Cos(bb)*math.Cos(dg)*math.Cos(dl)
	dec := radToDeg(math.Asin(clampUnit(sinDec)))

	y := math.Cos(bb) * math.Sin(dl)
	x := math.Sin(bb)*math.Cos(dg) - math.Cos(bb)*math.Sin(dg)*math.Cos(dl)
	ra := galNorthPoleRA + radToDeg(math.Atan2(y, x))
	return NewEquatorial(ra, dec)
}
