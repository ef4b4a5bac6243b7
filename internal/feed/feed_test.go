package feed

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/catalog"
	"github.com/litescript/ls-planetarium/internal/observability"
)

func TestManager_Empty(t *testing.T) {
	m := NewManager()
	snap := m.Snapshot()
	if snap.Sky != nil {
		t.Error("sky should be empty before any update")
	}
	if snap.MountSeen || snap.Mount.Connected {
		t.Error("mount should read as disconnected before any update")
	}
}

func TestManager_UpdateMount_Replaces(t *testing.T) {
	m := NewManager()
	m.UpdateMount(Observe(45, 180, true))

	if hz, ok := m.Mount().Position(); !ok || hz.Alt != 45 || hz.Az != 180 {
		t.Fatalf("Position() = %+v, %v", hz, ok)
	}

	// A report without angles clears the position; nothing is merged.
	m.UpdateMount(MountObservation{Connected: true})
	got := m.Mount()
	if got.HasPosition() {
		t.Error("position survived a report without angles")
	}
	if got.Slewing {
		t.Error("slewing flag survived a replacing report")
	}
}

func TestManager_MountCopy(t *testing.T) {
	m := NewManager()
	alt, az := 10.0, 20.0
	m.UpdateMount(MountObservation{Alt: &alt, Az: &az, Connected: true})
	alt = 99

	if got := *m.Mount().Alt; got != 10 {
		t.Errorf("stored alt = %v, caller mutation leaked", got)
	}
	snap := m.Snapshot()
	*snap.Mount.Alt = 55
	if got := *m.Mount().Alt; got != 10 {
		t.Errorf("stored alt = %v, snapshot mutation leaked", got)
	}
}

func TestManager_UpdateSky(t *testing.T) {
	m := NewManager()
	data := &SkyData{LST: 3, Objects: []VisibleObject{{Object: catalog.Object{ID: "M31"}}}}
	m.UpdateSky(data, nil)
	data.Objects[0].ID = "changed"

	snap := m.Snapshot()
	if snap.Sky == nil || snap.Sky.Objects[0].ID != "M31" {
		t.Fatalf("sky = %+v", snap.Sky)
	}

	// A failed update keeps the previous sky.
	m.UpdateSky(nil, context.DeadlineExceeded)
	snap = m.Snapshot()
	if snap.Sky == nil || snap.LastError == nil {
		t.Errorf("after failed update: sky=%v err=%v", snap.Sky, snap.LastError)
	}
}

func TestManager_Concurrent(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			m.UpdateMount(Observe(float64(i), 0, false))
		}(i)
		go func() {
			defer wg.Done()
			_ = m.Snapshot()
		}()
	}
	wg.Wait()
}

func TestMountObservation_CanSlew(t *testing.T) {
	tests := []struct {
		name string
		obs  MountObservation
		want bool
	}{
		{"disconnected", MountObservation{}, false},
		{"connected", MountObservation{Connected: true}, true},
		{"parked", MountObservation{Connected: true, Parked: true}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.obs.CanSlew(); got != tc.want {
				t.Errorf("CanSlew() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBus_PublishAndDrop(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewCollector(reg)
	if err != nil {
		t.Fatal(err)
	}
	b := NewBus(2, nil, metrics)

	at := astro.NewEquatorial(10, 20)
	if !b.Publish(Selection("M31", at)) || !b.Publish(SlewRequest("", at)) {
		t.Fatal("publish into empty buffer failed")
	}
	if b.Publish(CenterView(at)) {
		t.Error("publish into full buffer should report false")
	}
	if got := testutil.ToFloat64(metrics.EventsDropped.WithLabelValues(string(EventCenterView))); got != 1 {
		t.Errorf("dropped = %v, want 1", got)
	}

	e := <-b.Events()
	if e.Type != EventSelection || e.ObjectID != "M31" {
		t.Errorf("first event = %+v", e)
	}

	if e := <-b.Events(); e.Type != EventSlew {
		t.Errorf("second event = %+v", e)
	}
	if !b.Publish(CenterView(at)) {
		t.Error("publish after the consumer caught up failed")
	}

	b.Close()
	b.Close()
	if b.Publish(Selection("x", at)) {
		t.Error("publish after close should fail")
	}
}

func TestReadObservations(t *testing.T) {
	input := `# recorded session
{"alt": 45.5, "az": 120, "slewing": true, "connected": true}

{"connected": true, "parked": true}
{"connected": false}
`
	obs, err := ReadObservations(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(obs) != 3 {
		t.Fatalf("got %d observations, want 3", len(obs))
	}
	if hz, ok := obs[0].Position(); !ok || hz.Alt != 45.5 || !obs[0].Slewing {
		t.Errorf("obs[0] = %+v", obs[0])
	}
	if obs[1].HasPosition() || !obs[1].Parked {
		t.Errorf("obs[1] = %+v", obs[1])
	}

	_, err = ReadObservations(strings.NewReader("{\"alt\": 1}\nnot json\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v, want line 2 error", err)
	}
}

func TestReplay(t *testing.T) {
	m := NewManager()
	obs := []MountObservation{Observe(10, 0, false), Observe(20, 0, true)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Replay(ctx, obs, m, 5*time.Millisecond, nil)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if o := m.Mount(); o.HasPosition() && *o.Alt == 20 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done

	if !m.Snapshot().MountSeen {
		t.Error("replay never updated the mount")
	}
}

func TestReplay_Empty(t *testing.T) {
	m := NewManager()
	Replay(context.Background(), nil, m, time.Second, nil)
	snap := m.Snapshot()
	if !snap.MountSeen || snap.Mount.Connected {
		t.Errorf("empty replay should report disconnected: %+v", snap)
	}
}

func TestSimulatedSky(t *testing.T) {
	tm := time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)
	obs := astro.Observer{LatDeg: 35.4267, LonDeg: -116.89}
	sky := NewSimulatedSky(obs, catalog.Builtin, WithClock(func() time.Time { return tm }))

	data := sky.Sky()
	if !data.Time.Equal(tm) {
		t.Errorf("time = %v", data.Time)
	}
	if want := astro.LocalSiderealTime(tm, obs.LonDeg); math.Abs(data.LST-want) > 1e-9 {
		t.Errorf("LST = %v, want %v", data.LST, want)
	}
	if data.SunAlt > 0 {
		t.Errorf("sun altitude %v at 22:00 local in January, want below horizon", data.SunAlt)
	}
	if data.MoonIllumination < 0 || data.MoonIllumination > 1 {
		t.Errorf("moon illumination = %v", data.MoonIllumination)
	}
	if len(data.Objects) != len(catalog.Builtin().Objects) {
		t.Fatalf("objects = %d", len(data.Objects))
	}
	for _, o := range data.Objects {
		if o.Horizontal.Alt > 0 && (o.Airmass < 0.99 || math.IsInf(o.Airmass, 0)) {
			t.Errorf("%s: alt %v airmass %v", o.ID, o.Horizontal.Alt, o.Airmass)
		}
		if o.Horizontal.Alt <= 0 && !math.IsInf(o.Airmass, 1) {
			t.Errorf("%s below horizon has airmass %v", o.ID, o.Airmass)
		}
	}
}

func TestSimulatedSky_NilCatalog(t *testing.T) {
	sky := NewSimulatedSky(astro.Observer{}, func() *catalog.Catalog { return nil })
	if data := sky.Sky(); len(data.Objects) != 0 {
		t.Errorf("objects = %d, want 0", len(data.Objects))
	}
}
