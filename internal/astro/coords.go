// Package astro provides astronomical coordinate transformations and sky math.
//
// Angles are degrees at the package boundary and radians internally. The
// functions are pure; callers validate input upstream.
package astro

import (
	"math"
	"time"
)

// Equatorial is a celestial coordinate (J2000).
type Equatorial struct {
	RA  float64 // Right Ascension in degrees [0, 360)
	Dec float64 // Declination in degrees [-90, 90]
}

// NewEquatorial returns a normalized coordinate: RA wrapped into [0, 360) and
// Dec clamped to [-90, 90].
func NewEquatorial(ra, dec float64) Equatorial {
	return Equatorial{RA: NormalizeRA(ra), Dec: ClampDec(dec)}
}

// Horizontal is an observer-relative coordinate.
type Horizontal struct {
	Alt float64 // Altitude in degrees (0=horizon, 90=zenith)
	Az  float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// EquatorialToHorizontal converts RA/Dec to Alt/Az for a local sidereal time
// (hours) and observer latitude (degrees).
//
// Uses standard astronomical conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Altitude: 0° = horizon, 90° = zenith
func EquatorialToHorizontal(ra, dec, lstHours, latDeg float64) Horizontal {
	ha := degToRad(normalizeAngle360(lstHours*15 - ra))
	d := degToRad(dec)
	lat := degToRad(latDeg)

	sinAlt := math.Sin(d)*math.Sin(lat) + math.Cos(d)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clampUnit(sinAlt))

	// At the zenith/nadir the azimuth is undefined; pin it to north.
	if math.Cos(alt) < minCosAlt {
		return Horizontal{Alt: radToDeg(alt), Az: 0}
	}

	// Both terms carry a common cos(alt) factor, which atan2 cancels.
	y := -math.Sin(ha) * math.Cos(d)
	x := math.Sin(d)*math.Cos(lat) - math.Cos(d)*math.Sin(lat)*math.Cos(ha)
	az := math.Atan2(y, x)

	return Horizontal{
		Alt: radToDeg(alt),
		Az:  normalizeAngle360(radToDeg(az)),
	}
}

// HorizontalToEquatorial is the inverse of EquatorialToHorizontal.
func HorizontalToEquatorial(alt, az, lstHours, latDeg float64) Equatorial {
	a := degToRad(alt)
	z := degToRad(az)
	lat := degToRad(latDeg)

	sinDec := math.Sin(a)*math.Sin(lat) + math.Cos(a)*math.Cos(lat)*math.Cos(z)
	dec := math.Asin(clampUnit(sinDec))

	// At the celestial poles the hour angle is undefined.
	if math.Cos(dec) < minCosAlt {
		return NewEquatorial(lstHours*15, radToDeg(dec))
	}

	y := -math.Sin(z) * math.Cos(a)
	x := math.Sin(a)*math.Cos(lat) - math.Cos(a)*math.Sin(lat)*math.Cos(z)
	ha := radToDeg(math.Atan2(y, x))

	return NewEquatorial(lstHours*15-ha, radToDeg(dec))
}

// minCosAlt keeps cos(alt) away from zero near the zenith and nadir.
const minCosAlt = 1e-12

// LocalSiderealTime returns the Local Sidereal Time in hours [0, 24) for a UTC
// time and observer longitude.
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	return localSiderealTime(t, lonDeg) / 15
}

// localSiderealTime calculates the Local Sidereal Time in degrees
// for a given UTC time and observer longitude.
func localSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeAngle360(greenwichMeanSiderealTime(t) + lonDeg)
}

// greenwichMeanSiderealTime calculates GMST in degrees for a given UTC time.
// Uses the IAU formula based on Julian Date.
func greenwichMeanSiderealTime(t time.Time) float64 {
	jd := julianDate(t)

	// Julian centuries since J2000.0
	T := (jd - 2451545.0) / 36525.0

	// GMST in degrees (IAU 1982 formula)
	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalizeAngle360(gmst)
}

// julianDate calculates the Julian Date for a given time.
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// Treat January/February as months 13/14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// daysSinceJ2000 returns fractional days since 2000-01-01 12:00 TT (≈UTC).
func daysSinceJ2000(t time.Time) float64 {
	return julianDate(t) - 2451545.0
}

// JulianCenturies returns Julian centuries since J2000.0.
func JulianCenturies(t time.Time) float64 {
	return daysSinceJ2000(t) / 36525.0
}

// NormalizeRA wraps an angle into [0, 360).
func NormalizeRA(ra float64) float64 {
	return normalizeAngle360(ra)
}

// ClampDec clamps a declination to [-90, 90].
func ClampDec(dec float64) float64 {
	return math.Max(-90, math.Min(90, dec))
}

// NormalizeAngle180 wraps an angle to (-180, 180].
func NormalizeAngle180(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

// normalizeAngle360 normalizes an angle to [0, 360).
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod can round a tiny negative up to exactly 360
	if a >= 360 {
		a = 0
	}
	return a
}

// clampUnit clamps x to [-1, 1] before inverse trig.
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
