package picker

import (
	"math"
	"testing"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/feed"
)

func TestFindNearest(t *testing.T) {
	near := Candidate{ID: "near", Coord: astro.NewEquatorial(10.4, 0)}
	far := Candidate{ID: "far", Coord: astro.NewEquatorial(10, 0.6)}

	tests := []struct {
		name    string
		cands   []Candidate
		maxDeg  float64
		wantID  string
		wantHit bool
	}{
		{"picks 0.4 over 0.6", []Candidate{far, near}, 1, "near", true},
		{"order independent", []Candidate{near, far}, 1, "near", true},
		{"none within threshold", []Candidate{{ID: "x", Coord: astro.NewEquatorial(11.5, 0)}}, 1, "", false},
		{"empty", nil, 1, "", false},
		{"default threshold", []Candidate{near}, 0, "near", true},
		{"tighter threshold", []Candidate{near, far}, 0.3, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FindNearest(10, 0, tc.cands, tc.maxDeg)
			if ok != tc.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tc.wantHit)
			}
			if ok && got.ID != tc.wantID {
				t.Errorf("ID = %q, want %q", got.ID, tc.wantID)
			}
		})
	}
}

func TestFindNearest_DistanceAndWrap(t *testing.T) {
	c := []Candidate{{ID: "wrap", Coord: astro.NewEquatorial(359.7, 0)}}
	got, ok := FindNearest(0.2, 0, c, 1)
	if !ok {
		t.Fatal("candidate across RA=0 not found")
	}
	if math.Abs(got.Distance-0.5) > 1e-9 {
		t.Errorf("Distance = %v, want 0.5", got.Distance)
	}
}

func connected() feed.MountObservation { return feed.MountObservation{Connected: true} }

func findItem(items []Item, a Action) (Item, bool) {
	for _, it := range items {
		if it.Action == a {
			return it, true
		}
	}
	return Item{}, false
}

func TestBuildItems_SlewAvailability(t *testing.T) {
	target := &Result{Candidate: Candidate{ID: "M31", Name: "Andromeda Galaxy"}}

	tests := []struct {
		name        string
		mount       feed.MountObservation
		wantPresent bool
		wantEnabled bool
	}{
		{"disconnected", feed.MountObservation{}, false, false},
		{"connected", connected(), true, true},
		{"parked", feed.MountObservation{Connected: true, Parked: true}, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items := BuildItems(target, tc.mount)
			for _, a := range []Action{ActionSlewHere, ActionSlewToObject} {
				it, ok := findItem(items, a)
				if ok != tc.wantPresent {
					t.Fatalf("%v present = %v, want %v", a, ok, tc.wantPresent)
				}
				if !ok {
					continue
				}
				if it.Enabled != tc.wantEnabled {
					t.Errorf("%v enabled = %v, want %v", a, it.Enabled, tc.wantEnabled)
				}
				if !tc.wantEnabled && it.Hint == "" {
					t.Errorf("%v disabled without hint", a)
				}
			}
			if _, ok := findItem(items, ActionSelect); !ok {
				t.Error("select missing")
			}
			if _, ok := findItem(items, ActionCenter); !ok {
				t.Error("center missing")
			}
		})
	}
}

func TestBuildItems_NoTarget(t *testing.T) {
	items := BuildItems(nil, connected())
	if _, ok := findItem(items, ActionSlewToObject); ok {
		t.Error("slew-to-object without target")
	}
	if _, ok := findItem(items, ActionSelect); ok {
		t.Error("select without target")
	}
	if len(items) != 2 {
		t.Errorf("items = %+v", items)
	}
}

func TestMenu_ClampedToViewport(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"bottom right", 79, 23},
		{"top left", -5, -5},
		{"inside", 10, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var m Menu
			m.OpenAt(tc.x, tc.y, 80, 24, astro.NewEquatorial(0, 0), &Result{Candidate: Candidate{ID: "M42"}}, connected())
			x, y := m.Position()
			w, h := m.Size()
			if x < 0 || y < 0 || x+w > 80 || y+h > 24 {
				t.Errorf("menu at (%d,%d) size %dx%d leaves 80x24", x, y, w, h)
			}
		})
	}
}

func TestMenu_CloseTriggers(t *testing.T) {
	open := func() *Menu {
		m := &Menu{}
		m.OpenAt(10, 5, 80, 24, astro.NewEquatorial(0, 0), nil, connected())
		return m
	}

	m := open()
	if _, ok := m.Click(0, 0); ok || m.Open() {
		t.Error("outside click should close without acting")
	}

	m = open()
	if _, _, consumed := m.Key("esc"); !consumed || m.Open() {
		t.Error("escape should close")
	}

	m = open()
	m.Dismiss()
	if m.Open() {
		t.Error("dismiss (scroll/zoom) should close")
	}

	m = open()
	m.Close()
	if m.Open() {
		t.Error("explicit close")
	}
}

func TestMenu_Activate(t *testing.T) {
	at := astro.NewEquatorial(83.8, -5.4)
	target := &Result{Candidate: Candidate{ID: "M42", Name: "Orion Nebula", Coord: astro.NewEquatorial(83.82, -5.39)}}

	var m Menu
	m.OpenAt(10, 5, 80, 24, at, target, connected())

	// Rows: slew here, slew to M42, select, center.
	x, y := m.Position()
	ev, ok := m.Click(x+1, y+2)
	if !ok || ev.Type != feed.EventSlew || ev.ObjectID != "M42" || ev.Coord != target.Coord {
		t.Errorf("slew-to-object = %+v, %v", ev, ok)
	}
	if m.Open() {
		t.Error("menu should close after activation")
	}

	m.OpenAt(10, 5, 80, 24, at, target, connected())
	m.Key("down")
	m.Key("down")
	ev, ok, _ = m.Key("enter")
	if !ok || ev.Type != feed.EventSelection || ev.ObjectID != "M42" {
		t.Errorf("select = %+v, %v", ev, ok)
	}

	m.OpenAt(10, 5, 80, 24, at, nil, feed.MountObservation{})
	ev, ok, _ = m.Key("enter")
	if !ok || ev.Type != feed.EventCenterView || ev.Coord != at {
		t.Errorf("center = %+v, %v", ev, ok)
	}
}

func TestMenu_DisabledRowDoesNothing(t *testing.T) {
	var m Menu
	m.OpenAt(10, 5, 80, 24, astro.NewEquatorial(0, 0), nil, feed.MountObservation{Connected: true, Parked: true})
	x, y := m.Position()

	if _, ok := m.Click(x+1, y+1); ok {
		t.Error("disabled slew row produced an event")
	}
	if !m.Open() {
		t.Error("click on disabled row should keep the menu open")
	}
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d, want first enabled row", m.Cursor())
	}
}
