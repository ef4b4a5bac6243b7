package ephem

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-planetarium/internal/astro"
)

func TestSolveKepler(t *testing.T) {
	for _, e := range []float64{0, 0.0167, 0.2056, 0.5} {
		for _, M := range []float64{0.1, 1, 2.5, 4, 6} {
			E := solveKepler(M, e)
			if got := E - e*math.Sin(E); math.Abs(got-M) > 1e-10 {
				t.Errorf("e=%v M=%v: residual %v", e, M, got-M)
			}
		}
	}
}

func TestSunFromElements_MatchesSolarEphemeris(t *testing.T) {
	times := []time.Time{
		time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC),
		time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC),
	}
	for _, tm := range times {
		a := SunFromElements(tm)
		b := astro.SunPosition(tm)
		// Frames differ by precession (J2000 vs of-date), well under half a degree here.
		if d := astro.Separation(a, b); d > 0.5 {
			t.Errorf("%s: sun from elements differs by %.3f°", tm.Format(time.DateOnly), d)
		}
	}
}

func TestElementsProvider_Elongations(t *testing.T) {
	p := NewElementsProvider()
	ctx := context.Background()

	// Sample a year: Mercury and Venus never stray far from the Sun.
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 365; day += 7 {
		tm := start.AddDate(0, 0, day)
		snap, err := p.Snapshot(ctx, tm, astro.Observer{})
		if err != nil {
			t.Fatal(err)
		}
		sun := astro.SunPosition(tm)
		for body, max := range map[Body]float64{Mercury: 29, Venus: 48.5} {
			pos, _ := snap.Find(body)
			if e := astro.Separation(pos.Coord, sun); e > max {
				t.Errorf("%s elongation %.1f° on %s, max %.1f", body, e, tm.Format(time.DateOnly), max)
			}
		}
	}
}

func TestElementsProvider_JupiterOpposition(t *testing.T) {
	// Jupiter reached opposition on 2024-12-07.
	tm := time.Date(2024, 12, 7, 12, 0, 0, 0, time.UTC)
	snap, err := NewElementsProvider().Snapshot(context.Background(), tm, astro.Observer{})
	if err != nil {
		t.Fatal(err)
	}
	jup, ok := snap.Find(Jupiter)
	if !ok {
		t.Fatal("no Jupiter in snapshot")
	}
	if e := astro.Separation(jup.Coord, astro.SunPosition(tm)); e < 175 {
		t.Errorf("elongation = %.2f°, want ≈180", e)
	}
	if jup.DistanceAU < 4 || jup.DistanceAU > 4.3 {
		t.Errorf("distance = %.3f AU, want ≈4.1", jup.DistanceAU)
	}
	if jup.Magnitude > -2 || jup.Magnitude < -3.5 {
		t.Errorf("magnitude = %.2f, want ≈-2.8", jup.Magnitude)
	}
}

func TestElementsProvider_ValidCoordinates(t *testing.T) {
	snap, err := NewElementsProvider().Snapshot(context.Background(), time.Now(), astro.Observer{})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range snap.Positions {
		if p.Coord.RA < 0 || p.Coord.RA >= 360 || math.Abs(p.Coord.Dec) > 30 {
			t.Errorf("%s: implausible coordinate %+v", p.Body, p.Coord)
		}
		if math.IsNaN(p.Magnitude) || p.DistanceAU <= 0 {
			t.Errorf("%s: bad magnitude/distance %v %v", p.Body, p.Magnitude, p.DistanceAU)
		}
	}
}

func TestElementsProvider_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewElementsProvider().Snapshot(ctx, time.Now(), astro.Observer{}); err == nil {
		t.Error("expected error from cancelled context")
	}
}
