package astro

import (
	"math"
	"testing"
)

func TestRaDecToVector_RoundTrip(t *testing.T) {
	for ra := 0.0; ra < 360; ra += 15 {
		for dec := -89.0; dec <= 89; dec += 8.9 {
			v := RaDecToVector(ra, dec, SphereRadius)

			if math.Abs(v.Norm()-SphereRadius) > 1e-9 {
				t.Errorf("(%v,%v): |v| = %v, want %v", ra, dec, v.Norm(), SphereRadius)
			}

			back := VectorToRaDec(v)
			if d := math.Abs(NormalizeAngle180(back.RA - ra)); d > 1e-6 {
				t.Errorf("(%v,%v): RA round trip off by %v°", ra, dec, d)
			}
			if d := math.Abs(back.Dec - dec); d > 1e-6 {
				t.Errorf("(%v,%v): Dec round trip off by %v°", ra, dec, d)
			}
		}
	}
}

func TestRaDecToVector_Axes(t *testing.T) {
	tests := []struct {
		name    string
		ra, dec float64
		want    Vec3
	}{
		{"vernal equinox", 0, 0, Vec3{X: 1}},
		{"6h", 90, 0, Vec3{Y: 1}},
		{"north pole", 0, 90, Vec3{Z: 1}},
		{"south pole", 123, -90, Vec3{Z: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RaDecToVector(tt.ra, tt.dec, 1)
			if got.Sub(tt.want).Norm() > 1e-12 {
				t.Errorf("RaDecToVector(%v, %v) = %+v, want %+v", tt.ra, tt.dec, got, tt.want)
			}
		})
	}
}

func TestVectorToRaDec_Poles(t *testing.T) {
	if got := VectorToRaDec(Vec3{Z: 5}); got.Dec != 90 {
		t.Errorf("north pole Dec = %v, want 90", got.Dec)
	}
	if got := VectorToRaDec(Vec3{Z: -5}); got.Dec != -90 {
		t.Errorf("south pole Dec = %v, want -90", got.Dec)
	}
	if got := VectorToRaDec(Vec3{}); got != (Equatorial{}) {
		t.Errorf("zero vector = %+v, want {0 0}", got)
	}
}

func TestVec3_Ops(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}

	if got := x.Cross(y); got != (Vec3{Z: 1}) {
		t.Errorf("x × y = %+v, want z", got)
	}
	if got := x.Dot(y); got != 0 {
		t.Errorf("x · y = %v, want 0", got)
	}
	if got := (Vec3{X: 3, Y: 4}).Normalized(); math.Abs(got.Norm()-1) > 1e-12 {
		t.Errorf("Normalized() norm = %v", got.Norm())
	}
	if got := (Vec3{}).Normalized(); got != (Vec3{}) {
		t.Errorf("zero Normalized() = %+v", got)
	}
}

func TestEclipticRoundTrip(t *testing.T) {
	v := RaDecToVector(200, -17, 1)
	back := EclipticToEquatorial(EquatorialToEcliptic(v))
	if back.Sub(v).Norm() > 1e-12 {
		t.Errorf("ecliptic round trip = %+v, want %+v", back, v)
	}
}

func TestGalactic(t *testing.T) {
	// Galactic centre, Sgr A*: RA 266.405, Dec -28.936.
	l, b := EquatorialToGalactic(266.405, -28.936)
	if d := math.Abs(NormalizeAngle180(l)); d > 0.1 {
		t.Errorf("galactic centre l = %v, want ~0", l)
	}
	if math.Abs(b) > 0.1 {
		t.Errorf("galactic centre b = %v, want ~0", b)
	}

	// North galactic pole maps to b = 90.
	_, b = EquatorialToGalactic(galNorthPoleRA, galNorthPoleDec)
	if math.Abs(b-90) > 1e-5 {
		t.Errorf("NGP b = %v, want 90", b)
	}

	for l := 0.0; l < 360; l += 30 {
		for _, b := range []float64{-60, -10, 0, 25, 70} {
			eq := GalacticToEquatorial(l, b)
			gl, gb := EquatorialToGalactic(eq.RA, eq.Dec)
			if math.Abs(NormalizeAngle180(gl-l)) > 1e-6 || math.Abs(gb-b) > 1e-6 {
				t.Errorf("galactic round trip (%v,%v) -> (%v,%v)", l, b, gl, gb)
			}
		}
	}
}
