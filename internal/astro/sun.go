package astro

import (
	"math"
	"time"
)

// SunPosition calculates the apparent equatorial coordinates of the Sun.
// Uses a simplified solar ephemeris based on the Astronomical Almanac.
// Accuracy: ~0.01 degrees for RA, ~0.001 degrees for Dec.
func SunPosition(t time.Time) Equatorial {
	T := daysSinceJ2000(t) / 36525.0

	// Mean longitude of the Sun (degrees)
	L0 := normalizeAngle360(280.46646 + 36000.76983*T + 0.0003032*T*T)

	// Mean anomaly of the Sun (degrees)
	M := normalizeAngle360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of center (degrees)
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	sunLon := L0 + C

	// Apparent longitude (aberration and nutation)
	omega := 125.04 - 1934.136*T
	sunLonApp := sunLon - 0.00569 - 0.00478*math.Sin(degToRad(omega))

	// Mean obliquity of the ecliptic, corrected
	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := eps0 + 0.00256*math.Cos(degToRad(omega))

	return eclipticToEquatorialDeg(sunLonApp, 0, eps)
}

// MoonPosition returns an approximate geocentric RA/Dec of the Moon using the
// dominant periodic terms of the lunar theory. Good to a few tenths of a
// degree, which is well inside the moon's rendered disc.
func MoonPosition(t time.Time) Equatorial {
	d := daysSinceJ2000(t)

	Lp := normalizeAngle360(218.3164477 + 13.17639648*d) // mean longitude
	M := normalizeAngle360(357.5291092 + 0.98560028*d)   // sun mean anomaly
	Mm := normalizeAngle360(134.9633964 + 13.06499295*d) // moon mean anomaly
	D := normalizeAngle360(297.8501921 + 12.19074912*d)  // mean elongation
	F := normalizeAngle360(93.2720950 + 13.22935024*d)   // argument of latitude

	Mr, Mmr, Dr, Fr := degToRad(M), degToRad(Mm), degToRad(D), degToRad(F)

	lon := Lp +
		6.289*math.Sin(Mmr) +
		1.274*math.Sin(2*Dr-Mmr) +
		0.658*math.Sin(2*Dr) +
		0.214*math.Sin(2*Mmr) -
		0.186*math.Sin(Mr) -
		0.114*math.Sin(2*Fr)

	lat := 5.128*math.Sin(Fr) +
		0.280*math.Sin(Mmr+Fr) +
		0.277*math.Sin(Mmr-Fr) +
		0.173*math.Sin(2*Dr-Fr)

	eps := 23.439291 - 0.0000137*d
	return eclipticToEquatorialDeg(lon, lat, eps)
}

// MoonIllumination returns the illuminated fraction of the lunar disc [0, 1]
// from the sun-moon elongation.
func MoonIllumination(sun, moon Equatorial) float64 {
	elong := degToRad(Separation(sun, moon))
	// Phase angle ≈ 180° − elongation for a geocentric observer.
	phase := math.Pi - elong
	return (1 + math.Cos(phase)) / 2
}

// eclipticToEquatorialDeg converts ecliptic longitude/latitude to RA/Dec for
// an obliquity, all in degrees.
func eclipticToEquatorialDeg(lonDeg, latDeg, epsDeg float64) Equatorial {
	lon := degToRad(lonDeg)
	lat := degToRad(latDeg)
	eps := degToRad(epsDeg)

	ra := math.Atan2(math.Sin(lon)*math.Cos(eps)-math.Tan(lat)*math.Sin(eps), math.Cos(lon))
	dec := math.Asin(clampUnit(math.Sin(lat)*math.Cos(eps) + math.Cos(lat)*math.Sin(eps)*math.Sin(lon)))

	return NewEquatorial(radToDeg(ra), radToDeg(dec))
}

// TwilightPhase classifies the sky by sun altitude.
type TwilightPhase int

const (
	PhaseNight         TwilightPhase = iota // sun < -18°
	PhaseAstroNautical                      // -18° to -6°
	PhaseCivil                              // -6° to 0°
	PhaseDay                                // sun > 0°
)

// String returns the phase name.
func (p TwilightPhase) String() string {
	switch p {
	case PhaseNight:
		return "night"
	case PhaseAstroNautical:
		return "twilight"
	case PhaseCivil:
		return "civil twilight"
	case PhaseDay:
		return "day"
	default:
		return "unknown"
	}
}

// GetTwilightPhase returns the phase for a sun altitude in degrees.
func GetTwilightPhase(sunAltDeg float64) TwilightPhase {
	switch {
	case sunAltDeg < -18:
		return PhaseNight
	case sunAltDeg < -6:
		return PhaseAstroNautical
	case sunAltDeg <= 0:
		return PhaseCivil
	default:
		return PhaseDay
	}
}
