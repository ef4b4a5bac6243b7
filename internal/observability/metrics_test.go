package observability

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	c.ObserveFrame(3 * time.Millisecond)
	c.SetLayerPrimitives("stars", 167)
	c.TextureResult("hit")
	c.TextureResult("hit")
	c.TextureResult("miss")
	c.RefreshResult("planets", nil)
	c.RefreshResult("planets", errors.New("timeout"))
	c.EventDropped("selection")

	if got := testutil.ToFloat64(c.LayerPrimitives.WithLabelValues("stars")); got != 167 {
		t.Errorf("layer_primitives{stars} = %v, want 167", got)
	}
	if got := testutil.ToFloat64(c.TextureRequests.WithLabelValues("hit")); got != 2 {
		t.Errorf("texture_requests{hit} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.Refreshes.WithLabelValues("planets", "error")); got != 1 {
		t.Errorf("refresh{planets,error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.EventsDropped.WithLabelValues("selection")); got != 1 {
		t.Errorf("events_dropped{selection} = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(c.FrameDuration); n != 1 {
		t.Errorf("frame histogram collected %d metrics, want 1", n)
	}
}

func TestNewCollector_Reregister(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("first NewCollector: %v", err)
	}
	b, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("second NewCollector: %v", err)
	}

	a.TextureResult("miss")
	if got := testutil.ToFloat64(b.TextureRequests.WithLabelValues("miss")); got != 1 {
		t.Errorf("re-registered collector does not share counters: %v", got)
	}
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	c.ObserveFrame(time.Second)
	c.SetLayerPrimitives("stars", 1)
	c.TextureResult("hit")
	c.RefreshResult("planets", nil)
	c.EventDropped("slew")
	if c.Gatherer() == nil {
		t.Error("nil collector Gatherer() = nil")
	}
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	c.RefreshResult("catalog", nil)

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(body), `planetarium_refresh_total{result="ok",task="catalog"} 1`) {
		t.Errorf("metrics output missing refresh counter:\n%s", body)
	}
}
