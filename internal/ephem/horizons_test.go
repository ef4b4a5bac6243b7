package ephem

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/litescript/ls-planetarium/internal/astro"
)

const sampleTable = `*******************************************************************************
 Date__(UT)__HR:MN     R.A.___(ICRF)___DEC  APmag   S-brt            delta      deldot
*******************************************************************************
$$SOE
 2025-Dec-05 00:00 *m  197.34888  -6.78506  -3.890   1.126  1.51234567890000 -12.3456
 2025-Dec-05 00:01 *m  197.35001  -6.78550  -3.890   1.126  1.51234000000000 -12.3456
$$EOE
*******************************************************************************`

func TestParseEphemerisLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		ra, dec float64
		mag     float64
		delta   float64
		wantErr bool
	}{
		{
			name: "flags",
			line: "2025-Dec-05 00:00 *m  197.34888  -6.78506  -3.890   1.126  1.5123 -12.3",
			ra:   197.34888, dec: -6.78506, mag: -3.89, delta: 1.5123,
		},
		{
			name: "no flags",
			line: "2025-Dec-05 00:00     10.00000  20.00000   5.700   6.800  29.000  0.1",
			ra:   10, dec: 20, mag: 5.7, delta: 29,
		},
		{
			name: "magnitude n.a.",
			line: "2025-Dec-05 00:00 A   300.5  -20.25  n.a.  n.a.  9.75  1.0",
			ra:   300.5, dec: -20.25, mag: 0, delta: 9.75,
		},
		{name: "too short", line: "2025-Dec-05 00:00", wantErr: true},
		{name: "bad date", line: "yesterday noon 1 2 3", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseEphemerisLine(tc.line)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got.Coord.RA-tc.ra) > 1e-9 || math.Abs(got.Coord.Dec-tc.dec) > 1e-9 {
				t.Errorf("coord = %+v, want (%v, %v)", got.Coord, tc.ra, tc.dec)
			}
			if math.Abs(got.Magnitude-tc.mag) > 1e-9 {
				t.Errorf("mag = %v, want %v", got.Magnitude, tc.mag)
			}
			if math.Abs(got.DistanceAU-tc.delta) > 1e-9 {
				t.Errorf("delta = %v, want %v", got.DistanceAU, tc.delta)
			}
		})
	}
}

func TestParseEphemerisTable(t *testing.T) {
	rows, err := parseEphemerisTable(sampleTable)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := time.Date(2025, 12, 5, 0, 1, 0, 0, time.UTC)
	if !rows[1].Time.Equal(want) {
		t.Errorf("row time = %v, want %v", rows[1].Time, want)
	}

	if _, err := parseEphemerisTable("no markers here"); err == nil {
		t.Error("expected error for missing markers")
	}
}

func TestParseHorizonsResponse_Error(t *testing.T) {
	body, _ := json.Marshal(map[string]string{"error": "Unknown target"})
	if _, err := parseHorizonsResponse(body); err == nil || !strings.Contains(err.Error(), "Unknown target") {
		t.Errorf("err = %v", err)
	}
	if _, err := parseHorizonsResponse([]byte("{")); err == nil {
		t.Error("expected JSON error")
	}
}

func newHorizonsServer(t *testing.T, handler func(cmd string) (int, string)) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		status, result := handler(r.URL.Query().Get("COMMAND"))
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"result": result})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestHorizonsProvider_Snapshot(t *testing.T) {
	srv, calls := newHorizonsServer(t, func(cmd string) (int, string) {
		return http.StatusOK, sampleTable
	})
	p := NewHorizonsProvider(WithBaseURL(srv.URL), WithClient(srv.Client()))
	obs := astro.Observer{LatDeg: 35.4, LonDeg: -116.9}
	tm := time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)

	snap, err := p.Snapshot(context.Background(), tm, obs)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Positions) != len(Planets) {
		t.Fatalf("got %d positions", len(snap.Positions))
	}
	for i, pos := range snap.Positions {
		if pos.Body != Planets[i] || pos.Source != "Horizons" {
			t.Errorf("position %d = %+v", i, pos)
		}
	}
	first := calls.Load()
	if int(first) != len(Planets) {
		t.Errorf("requests = %d, want %d", first, len(Planets))
	}

	// Within the TTL for the same observer the cache answers.
	if _, err := p.Snapshot(context.Background(), tm.Add(time.Minute), obs); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != first {
		t.Errorf("cached snapshot issued %d new requests", calls.Load()-first)
	}

	p.InvalidateCache()
	if _, err := p.Snapshot(context.Background(), tm, obs); err != nil {
		t.Fatal(err)
	}
	if calls.Load() == first {
		t.Error("InvalidateCache did not force a refetch")
	}
}

func TestHorizonsProvider_HTTPError(t *testing.T) {
	srv, _ := newHorizonsServer(t, func(cmd string) (int, string) {
		if cmd == fmt.Sprintf("'%d'", Saturn) {
			return http.StatusServiceUnavailable, ""
		}
		return http.StatusOK, sampleTable
	})
	p := NewHorizonsProvider(WithBaseURL(srv.URL), WithClient(srv.Client()))
	_, err := p.Snapshot(context.Background(), time.Now(), astro.Observer{})
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Errorf("err = %v, want status 503", err)
	}
}

func TestAutoProvider_HorizonsDown(t *testing.T) {
	srv, _ := newHorizonsServer(t, func(cmd string) (int, string) {
		return http.StatusInternalServerError, ""
	})
	p := NewAutoProvider(NewHorizonsProvider(WithBaseURL(srv.URL), WithClient(srv.Client())), nil)
	snap, err := p.Snapshot(context.Background(), time.Now(), astro.Observer{})
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Positions) == 0 || snap.Positions[0].Source != "Elements" {
		t.Errorf("expected element fallback, got %+v", snap.Positions)
	}
}

func TestObserverMatch(t *testing.T) {
	a := astro.Observer{LatDeg: 35.4, LonDeg: -116.9}
	if !observerMatch(a, astro.Observer{LatDeg: 35.45, LonDeg: -116.85}) {
		t.Error("nearby observers should match")
	}
	if observerMatch(a, astro.Observer{LatDeg: -35.4, LonDeg: -116.9}) {
		t.Error("distant observers should not match")
	}
}
