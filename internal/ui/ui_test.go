package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/catalog"
	"github.com/litescript/ls-planetarium/internal/feed"
	"github.com/litescript/ls-planetarium/internal/picker"
	"github.com/litescript/ls-planetarium/internal/scene"
	"github.com/litescript/ls-planetarium/internal/view"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

type harness struct {
	m        Model
	composer *scene.Composer
	ctrl     *view.Controller
	feeds    *feed.Manager
	bus      *feed.Bus
}

func newHarness(t *testing.T, home view.State, vis *scene.Visibility, withBus bool) *harness {
	t.Helper()
	h := &harness{feeds: feed.NewManager()}
	h.composer = scene.NewComposer(scene.Config{Feeds: h.feeds, Visibility: vis})
	h.ctrl = view.NewController(home)
	if withBus {
		h.bus = feed.NewBus(8, nil, nil)
		t.Cleanup(h.bus.Close)
	}
	h.m = New(Deps{Composer: h.composer, Controller: h.ctrl, Bus: h.bus, Feeds: h.feeds})
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) {
	next, _ := h.m.Update(msg)
	h.m = next.(Model)
}

// deliver moves one published event from the bus back into the model.
func (h *harness) deliver(t *testing.T) feed.Event {
	t.Helper()
	select {
	case ev := <-h.bus.Events():
		h.send(EventMsg(ev))
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event published")
		return feed.Event{}
	}
}

// centre returns the screen cell at the viewport centre.
func (h *harness) centre() (x, y int) {
	vp := h.ctrl.Viewport()
	return int(vp.Width / 2), int(vp.Height/2) + headerRows
}

func TestCanvas_StarAtCentre(t *testing.T) {
	snap := view.NewSnapshot(view.State{CenterRA: 180, CenterDec: 0, FOV: 60},
		view.Viewport{Width: 81, Height: 41, PixelAspect: CellAspect})
	cat := &catalog.Catalog{Stars: astro.StarCatalog{Stars: []astro.Star{{ID: "x", RA: 180, Dec: 0, Mag: 0}}}}
	frame := scene.Render(scene.Input{View: snap, Catalog: cat}, scene.NewVisibility(scene.LayerStars), nil)

	c := Rasterize(frame, 81, 41)
	if got := c.Rune(40, 20); got != glyphStarMedium {
		t.Errorf("centre glyph = %q, want %q", got, glyphStarMedium)
	}
	if got := c.Rune(0, 0); got != ' ' {
		t.Errorf("corner glyph = %q, want blank", got)
	}
	plain := RenderFrame(frame, 81, 41, false)
	if lines := strings.Split(plain, "\n"); len(lines) != 41 {
		t.Errorf("plain render has %d lines", len(lines))
	}
}

func TestStarGlyph(t *testing.T) {
	tests := []struct {
		size float64
		want rune
	}{
		{6, glyphStarBright},
		{3, glyphStarMedium},
		{1.2, glyphStarDim},
		{0.5, glyphStarVeryDim},
	}
	for _, tt := range tests {
		if got := starGlyph(tt.size); got != tt.want {
			t.Errorf("starGlyph(%v) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestSplitGoto(t *testing.T) {
	tests := []struct {
		in      string
		ra, dec string
		ok      bool
	}{
		{"5h35m17s -5d23m28s", "5h35m17s", "-5d23m28s", true},
		{"83.8, -5.4", "83.8", " -5.4", true},
		{"83.8", "", "", false},
		{"5 35 17 -5 23 28", "", "", false},
	}
	for _, tt := range tests {
		ra, dec, ok := splitGoto(tt.in)
		if ok != tt.ok || ra != tt.ra || dec != tt.dec {
			t.Errorf("splitGoto(%q) = %q, %q, %v", tt.in, ra, dec, ok)
		}
	}
}

func TestModel_LayerToggle(t *testing.T) {
	h := newHarness(t, view.Default(), nil, false)

	h.send(keyMsg("s"))
	if h.composer.Visibility().Enabled(scene.LayerStars) {
		t.Error("s did not turn stars off")
	}
	if !strings.Contains(h.m.statusMsg, "stars off") {
		t.Errorf("status = %q", h.m.statusMsg)
	}
	h.send(keyMsg("i"))
	if h.composer.Visibility().Enabled(scene.LayerImageOverlays) {
		t.Error("i did not turn image overlays off")
	}
	h.send(keyMsg("s"))
	if !h.composer.Visibility().Enabled(scene.LayerStars) {
		t.Error("second s did not turn stars back on")
	}
}

func TestModel_GotoPrompt(t *testing.T) {
	h := newHarness(t, view.Default(), nil, false)

	h.send(keyMsg("/"))
	if !h.m.gotoInput.Focused() {
		t.Fatal("prompt not focused")
	}
	// Layer letters go to the prompt while it has focus.
	h.send(keyMsg("s"))
	if !h.composer.Visibility().Enabled(scene.LayerStars) {
		t.Error("typing in the prompt toggled a layer")
	}

	h.m.gotoInput.SetValue("25h 10")
	h.send(keyMsg("enter"))
	if h.m.gotoErr == "" || !h.m.gotoInput.Focused() {
		t.Fatalf("bad input accepted: err=%q focused=%v", h.m.gotoErr, h.m.gotoInput.Focused())
	}
	if !strings.Contains(h.m.renderFooter(), h.m.gotoErr) {
		t.Error("error not shown inline")
	}

	h.m.gotoInput.SetValue("5h35m17s -5d23m28s")
	h.send(keyMsg("enter"))
	if h.m.gotoErr != "" || h.m.gotoInput.Focused() {
		t.Fatalf("good input rejected: %q", h.m.gotoErr)
	}
	target := h.ctrl.Target()
	if math.Abs(target.CenterRA-83.82) > 0.01 || math.Abs(target.CenterDec+5.391) > 0.01 {
		t.Errorf("target = %+v, want Orion Nebula", target)
	}
}

func TestModel_ContextMenu(t *testing.T) {
	h := newHarness(t, view.Default(), nil, false)
	parked := feed.Observe(45, 180, false)
	parked.Parked = true
	h.feeds.UpdateMount(parked)

	x, y := h.centre()
	h.send(mouse(x, y, tea.MouseActionPress, tea.MouseButtonRight))
	if !h.m.menu.Open() {
		t.Fatal("right click did not open the menu")
	}
	items := h.m.menu.Items()
	if items[0].Action != picker.ActionSlewHere || items[0].Enabled || items[0].Hint != picker.ParkedHint {
		t.Errorf("first item = %+v, want disabled slew with hint", items[0])
	}
	if !strings.Contains(h.m.View(), "Center view here") {
		t.Error("menu not drawn")
	}

	h.send(keyMsg("esc"))
	if h.m.menu.Open() {
		t.Error("esc did not close the menu")
	}

	for _, row := range []int{0, 39} {
		h.send(mouse(x, y, tea.MouseActionPress, tea.MouseButtonRight))
		if !h.m.menu.Open() {
			t.Fatal("right click did not reopen the menu")
		}
		h.send(mouse(2, row, tea.MouseActionPress, tea.MouseButtonLeft))
		if h.m.menu.Open() {
			t.Errorf("click on screen row %d left the menu open", row)
		}
	}

	h.send(mouse(x, y, tea.MouseActionPress, tea.MouseButtonRight))
	fov := h.ctrl.Target().FOV
	h.send(mouse(x, y, tea.MouseActionPress, tea.MouseButtonWheelUp))
	if h.m.menu.Open() {
		t.Error("zoom did not dismiss the menu")
	}
	if h.ctrl.Target().FOV >= fov {
		t.Errorf("wheel up FOV = %v, want below %v", h.ctrl.Target().FOV, fov)
	}
}

func TestModel_MenuCenterView(t *testing.T) {
	vis := scene.AllVisible()
	vis.Set(scene.LayerDeepSky, false)
	h := newHarness(t, view.Default(), vis, true)
	x, y := h.centre()
	h.send(mouse(x+20, y+5, tea.MouseActionPress, tea.MouseButtonRight))
	want := h.m.menu.Coord()

	// Nothing to pick and no mount: "Center view here" is the only row.
	h.send(keyMsg("enter"))
	ev := h.deliver(t)
	if ev.Type != feed.EventCenterView {
		t.Fatalf("event = %v, want center view", ev.Type)
	}
	got := h.ctrl.Target()
	if astro.AngularDistance(got.CenterRA, got.CenterDec, want.RA, want.Dec) > 1e-9 {
		t.Errorf("target = %+v, want %+v", got, want)
	}
}

func TestModel_ClickSelectsThenSlews(t *testing.T) {
	ring, err := catalog.Builtin().Object("m57")
	if err != nil {
		t.Fatal(err)
	}
	h := newHarness(t, view.State{CenterRA: ring.RA, CenterDec: ring.Dec, FOV: 30}, nil, true)
	x, y := h.centre()

	h.send(mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	ev := h.deliver(t)
	if ev.Type != feed.EventSelection || ev.ObjectID != "m57" {
		t.Fatalf("event = %+v, want selection of m57", ev)
	}
	if h.composer.Selected() != "m57" {
		t.Errorf("Selected() = %q", h.composer.Selected())
	}
	h.send(mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft))

	// A second click while the mount cannot slew only reselects.
	h.send(mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	if ev := h.deliver(t); ev.Type != feed.EventSelection {
		t.Errorf("double click with mount off = %v", ev.Type)
	}

	// The previous click is still inside the window, so this one is the second
	// half of a double click.
	h.feeds.UpdateMount(feed.Observe(30, 90, false))
	h.send(mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	if ev := h.deliver(t); ev.Type != feed.EventSlew || ev.ObjectID != "m57" {
		t.Errorf("double click = %+v, want slew to m57", ev)
	}
}

func TestModel_DragPans(t *testing.T) {
	vis := scene.AllVisible()
	vis.Set(scene.LayerDeepSky, false)
	h := newHarness(t, view.State{CenterRA: 100, CenterDec: 0, FOV: 40}, vis, false)
	x, y := h.centre()

	h.send(mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
	if h.ctrl.Mode() != view.ModeDragging {
		t.Fatal("press on empty sky did not start a drag")
	}
	h.send(mouse(x+10, y, tea.MouseActionMotion, tea.MouseButtonLeft))
	h.send(mouse(x+10, y, tea.MouseActionRelease, tea.MouseButtonLeft))

	if h.ctrl.Mode() != view.ModeIdle {
		t.Error("release did not end the drag")
	}
	if h.ctrl.Target().CenterRA == 100 {
		t.Error("drag did not pan the view")
	}
}

func TestModel_FrameAdvancesAnimation(t *testing.T) {
	h := newHarness(t, view.Default(), nil, false)
	h.send(keyMsg("+"))
	start := time.Now()
	h.send(FrameMsg(start))
	h.send(FrameMsg(start.Add(100 * time.Millisecond)))
	if h.ctrl.Current().FOV >= view.DefaultFOV {
		t.Errorf("current FOV = %v, want moving toward zoom target", h.ctrl.Current().FOV)
	}
	if h.m.frame == nil || len(h.m.frame.Layers) == 0 {
		t.Error("no frame composed")
	}
}
