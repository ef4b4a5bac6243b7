// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/feed"
	"github.com/litescript/ls-planetarium/internal/logging"
	"github.com/litescript/ls-planetarium/internal/picker"
	"github.com/litescript/ls-planetarium/internal/scene"
	"github.com/litescript/ls-planetarium/internal/version"
	"github.com/litescript/ls-planetarium/internal/view"
)

// Screen rows outside the sky canvas.
const (
	headerRows = 1
	footerRows = 2
)

// DefaultFPS is the frame tick rate.
const DefaultFPS = 30

// doubleClick is the window for a second click on a marker to request a slew.
const doubleClick = 400 * time.Millisecond

// Msg types for Bubble Tea
type (
	// FrameMsg advances the render loop by one frame.
	FrameMsg time.Time

	// EventMsg delivers an event from the bus back to the render loop.
	EventMsg feed.Event
)

// Deps are the engine parts the UI drives.
type Deps struct {
	Composer   *scene.Composer
	Controller *view.Controller
	Bus        *feed.Bus
	Feeds      *feed.Manager
	Log        *logging.Logger
	FPS        int

	// OnSlew receives slew requests for the mount collaborator.
	OnSlew func(feed.Event)
}

// Model is the root Bubble Tea model.
type Model struct {
	composer   *scene.Composer
	controller *view.Controller
	bus        *feed.Bus
	feeds      *feed.Manager
	log        *logging.Logger
	onSlew     func(feed.Event)
	frameEvery time.Duration

	width  int
	height int
	ready  bool

	frame     *scene.Frame
	lastFrame time.Time
	menu      *picker.Menu

	gotoInput textinput.Model
	gotoErr   string
	statusMsg string

	lastClickID string
	lastClickAt time.Time
}

// New creates the root UI model.
func New(d Deps) Model {
	if d.Log == nil {
		d.Log = logging.Discard()
	}
	if d.FPS <= 0 {
		d.FPS = DefaultFPS
	}
	ti := textinput.New()
	ti.Prompt = "goto> "
	ti.Placeholder = "RA Dec (5h35m17s -5d23m28s)"
	ti.CharLimit = 64
	ti.Width = 40

	return Model{
		composer:   d.Composer,
		controller: d.Controller,
		bus:        d.Bus,
		feeds:      d.Feeds,
		log:        d.Log,
		onSlew:     d.OnSlew,
		frameEvery: time.Second / time.Duration(d.FPS),
		menu:       &picker.Menu{},
		gotoInput:  ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.frameCmd(), m.waitForEvent())
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.frameEvery, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// waitForEvent blocks on the bus off the render loop and hands the next
// event back as a message.
func (m Model) waitForEvent() tea.Cmd {
	if m.bus == nil {
		return nil
	}
	events := m.bus.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return EventMsg(ev)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.controller.SetViewport(m.viewport())
		m.menu.Close()
		m.compose(time.Now())
		return m, nil

	case FrameMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			m.controller.Update(now.Sub(m.lastFrame))
		}
		m.lastFrame = now
		m.compose(now)
		return m, m.frameCmd()

	case EventMsg:
		m.applyEvent(feed.Event(msg))
		return m, m.waitForEvent()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}

	if m.gotoInput.Focused() {
		var cmd tea.Cmd
		m.gotoInput, cmd = m.gotoInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) viewport() view.Viewport {
	h := m.height - headerRows - footerRows
	if h < 1 {
		h = 1
	}
	return view.Viewport{Width: float64(m.width), Height: float64(h), PixelAspect: CellAspect}
}

func (m *Model) compose(now time.Time) {
	if m.composer == nil || !m.ready {
		return
	}
	m.frame = m.composer.Compose(m.controller.Snapshot(), now)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.gotoInput.Focused() {
		switch key {
		case "esc":
			m.gotoInput.Blur()
			m.gotoInput.SetValue("")
			m.gotoErr = ""
			return m, nil
		case "enter":
			m.submitGoto()
			return m, nil
		}
		var cmd tea.Cmd
		m.gotoInput, cmd = m.gotoInput.Update(msg)
		return m, cmd
	}

	if m.menu.Open() {
		if ev, ok, _ := m.menu.Key(key); ok {
			m.publish(ev)
		}
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/", ":":
		m.gotoErr = ""
		cmd := m.gotoInput.Focus()
		return m, cmd
	case "esc":
		m.composer.Select("")
		m.statusMsg = ""
		return m, nil
	}

	if m.controller.Key(key, false) {
		return m, nil
	}
	if len(msg.Runes) == 1 {
		if id, ok := scene.LayerForKey(msg.Runes[0]); ok {
			on := m.composer.Visibility().Toggle(id)
			m.statusMsg = fmt.Sprintf("%s %s", id, onOff(on))
		}
	}
	return m, nil
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// submitGoto parses the prompt and centres the view. Malformed input keeps
// the prompt open with the reason shown inline.
func (m *Model) submitGoto() {
	raText, decText, ok := splitGoto(m.gotoInput.Value())
	if !ok {
		m.gotoErr = "enter RA and Dec, e.g. 5h35m17s -5d23m28s"
		return
	}
	coord, err := astro.ParseCoordinate(raText, decText)
	if err != nil {
		m.gotoErr = err.Error()
		return
	}
	m.gotoErr = ""
	m.gotoInput.Blur()
	m.gotoInput.SetValue("")
	m.publish(feed.CenterView(coord))
}

// splitGoto separates RA and Dec on a comma, or on whitespace when there
// are exactly two fields.
func splitGoto(s string) (ra, dec string, ok bool) {
	if i := strings.IndexByte(s, ','); i >= 0 {
		return s[:i], s[i+1:], true
	}
	f := strings.Fields(s)
	if len(f) != 2 {
		return "", "", false
	}
	return f[0], f[1], true
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := msg.X, msg.Y-headerRows
	px, py := float64(x)+0.5, float64(y)+0.5
	vp := m.controller.Viewport()
	inside := y >= 0 && float64(y) < vp.Height

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.menu.Dismiss()
		m.controller.Wheel(-1)
		return
	case msg.Button == tea.MouseButtonWheelDown:
		m.menu.Dismiss()
		m.controller.Wheel(1)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if !inside {
			// Header and footer rows are outside the menu too.
			m.menu.Dismiss()
			return
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.primaryClick(x, y, px, py)
		case tea.MouseButtonRight:
			ce, ok := m.controller.PointerDown(px, py, view.ButtonSecondary)
			if !ok {
				return
			}
			var target *picker.Result
			if r, found := m.pick(ce.Coord); found {
				target = &r
			}
			m.menu.OpenAt(int(ce.X), int(ce.Y), int(vp.Width), int(vp.Height), ce.Coord, target, m.mount())
		}
	case tea.MouseActionMotion:
		if !inside {
			m.controller.PointerLeave()
			return
		}
		m.controller.PointerMove(px, py)
	case tea.MouseActionRelease:
		m.controller.PointerUp()
	}
}

// primaryClick routes a left click: to the menu when open, to a marker under
// the pointer, or to a drag.
func (m *Model) primaryClick(x, y int, px, py float64) {
	if m.menu.Open() {
		if ev, ok := m.menu.Click(x, y); ok {
			m.publish(ev)
		}
		return
	}
	snap := m.controller.Snapshot()
	if r, ok := m.pick(snap.Unproject(px, py)); ok {
		now := time.Now()
		double := r.ID == m.lastClickID && now.Sub(m.lastClickAt) < doubleClick
		m.lastClickID, m.lastClickAt = r.ID, now
		if double && m.mount().CanSlew() {
			m.publish(feed.SlewRequest(r.ID, r.Coord))
			return
		}
		m.publish(feed.Selection(r.ID, r.Coord))
		return
	}
	m.controller.PointerDown(px, py, view.ButtonPrimary)
}

// pick finds the object nearest coord. The tolerance is at least a couple
// of cells so coarse terminal zoom levels stay clickable.
func (m *Model) pick(coord astro.Equatorial) (picker.Result, bool) {
	if m.frame == nil {
		return picker.Result{}, false
	}
	maxDeg := math.Max(picker.DefaultMaxDeg, 2*m.frame.View.DegreesPerPixel())
	return picker.FindNearest(coord.RA, coord.Dec, m.frame.Pickables, maxDeg)
}

func (m *Model) mount() feed.MountObservation {
	if m.feeds == nil {
		return feed.MountObservation{}
	}
	return m.feeds.Mount()
}

// publish sends an event without blocking. The render loop applies it when
// it comes back off the bus.
func (m *Model) publish(ev feed.Event) {
	if m.bus == nil {
		m.applyEvent(ev)
		return
	}
	if !m.bus.Publish(ev) {
		m.statusMsg = "event queue full, dropped " + string(ev.Type)
	}
}

func (m *Model) applyEvent(ev feed.Event) {
	switch ev.Type {
	case feed.EventCenterView:
		m.controller.CenterOn(ev.Coord.RA, ev.Coord.Dec)
		m.statusMsg = "centered on " + astro.FormatRA(ev.Coord.RA) + " " + astro.FormatDec(ev.Coord.Dec)
	case feed.EventSelection:
		m.composer.Select(ev.ObjectID)
		m.statusMsg = "selected " + ev.ObjectID
	case feed.EventSlew:
		target := ev.ObjectID
		if target == "" {
			target = astro.FormatRA(ev.Coord.RA) + " " + astro.FormatDec(ev.Coord.Dec)
		}
		m.statusMsg = "slew requested: " + target
		m.log.Info("slew requested", "object", ev.ObjectID, "ra", ev.Coord.RA, "dec", ev.Coord.Dec)
		if m.onSlew != nil {
			m.onSlew(ev)
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	vp := m.controller.Viewport()
	canvas := Rasterize(m.frame, int(vp.Width), int(vp.Height))
	m.drawMenu(canvas)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(canvas.String())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	onStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
)

var (
	menuFg       = colorful.Color{R: 0.9, G: 0.9, B: 0.95}
	menuDisabled = colorful.Color{R: 0.45, G: 0.45, B: 0.5}
	menuBg       = colorful.Color{R: 0.12, G: 0.1, B: 0.2}
	menuCursorBg = colorful.Color{R: 0.36, G: 0.2, B: 0.55}
)

func (m Model) drawMenu(c *Canvas) {
	if !m.menu.Open() {
		return
	}
	x, y := m.menu.Position()
	w, h := m.menu.Size()
	inner := w - 2

	c.drawText(x, y, "┌"+strings.Repeat("─", inner)+"┐", menuFg, menuBg)
	for i, it := range m.menu.Items() {
		label := it.Label
		fg := menuFg
		if !it.Enabled {
			fg = menuDisabled
			if it.Hint != "" {
				label += " (" + it.Hint + ")"
			}
		}
		text := " " + label + strings.Repeat(" ", max(0, inner-1-len([]rune(label))))
		bg := menuBg
		if i == m.menu.Cursor() {
			bg = menuCursorBg
		}
		c.drawText(x, y+1+i, "│", menuFg, menuBg)
		c.drawText(x+1, y+1+i, text, fg, bg)
		c.drawText(x+w-1, y+1+i, "│", menuFg, menuBg)
	}
	c.drawText(x, y+h-1, "└"+strings.Repeat("─", inner)+"┘", menuFg, menuBg)
}

func (m Model) renderHeader() string {
	title := gradientText(" ls-planetarium ")
	parts := []string{title + dimStyle.Render("v"+version.Version)}

	if m.composer != nil {
		if name := m.composer.Observer().Name; name != "" {
			parts = append(parts, accentStyle.Render(name))
		}
	}
	s := m.controller.Current()
	parts = append(parts, dimStyle.Render(fmt.Sprintf("RA %s  Dec %s  FOV %.1f°",
		astro.FormatRA(s.CenterRA), astro.FormatDec(s.CenterDec), s.FOV)))

	if m.frame != nil {
		sky := m.frame.Sky
		parts = append(parts, dimStyle.Render(fmt.Sprintf("LST %.2fh  %s  sun %.0f°",
			sky.LST, sky.Phase, sky.SunAlt)))
	}
	return strings.Join(parts, dimStyle.Render(" | "))
}

func (m Model) renderFooter() string {
	status := m.renderStatus()
	if m.gotoInput.Focused() {
		line := m.gotoInput.View()
		if m.gotoErr != "" {
			line += "  " + errorStyle.Render(m.gotoErr)
		}
		return status + "\n" + line
	}
	help := dimStyle.Render("drag/arrows: pan | wheel/+-: zoom | space: reset | right-click: menu | /: goto | q: quit")
	return status + "\n" + m.renderLayerFlags() + "  " + help
}

func (m Model) renderStatus() string {
	var parts []string
	parts = append(parts, renderMount(m.mount()))
	if m.composer != nil {
		if id := m.composer.Selected(); id != "" {
			parts = append(parts, accentStyle.Render(">>> "+m.describe(id)))
		}
	}
	if m.statusMsg != "" {
		parts = append(parts, dimStyle.Render(m.statusMsg))
	}
	return "  " + strings.Join(parts, dimStyle.Render(" | "))
}

// describe formats the selected object for the status line.
func (m Model) describe(id string) string {
	if m.frame != nil {
		for _, c := range m.frame.Pickables {
			if c.ID == id {
				return fmt.Sprintf("%s  %s %s", c.Name, astro.FormatRA(c.Coord.RA), astro.FormatDec(c.Coord.Dec))
			}
		}
	}
	return id
}

func renderMount(o feed.MountObservation) string {
	switch {
	case !o.Connected:
		return dimStyle.Render("mount: off")
	case o.Parked:
		return errorStyle.Render("mount: parked")
	case o.Slewing:
		return accentStyle.Render("mount: slewing")
	default:
		return onStyle.Render("mount: tracking")
	}
}

// renderLayerFlags shows each toggle letter, bright when its layer is on.
func (m Model) renderLayerFlags() string {
	if m.composer == nil {
		return ""
	}
	vis := m.composer.Visibility()
	var b strings.Builder
	b.WriteString("  ")
	for _, id := range scene.AllLayers() {
		k := string(id.Key())
		if vis.Enabled(id) {
			b.WriteString(onStyle.Render(strings.ToUpper(k)))
		} else {
			b.WriteString(dimStyle.Render(k))
		}
	}
	return b.String()
}

// gradientText renders s with a horizontal blue to magenta gradient.
func gradientText(s string) string {
	from := colorful.Color{R: 0.23, G: 0.51, B: 0.96}
	to := colorful.Color{R: 0.85, G: 0.27, B: 0.94}
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := from.BlendLab(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Bold(true).Render(string(r)))
	}
	return b.String()
}

// RenderFrame draws a frame at the given size for headless output. Without
// colour only the glyphs are emitted.
func RenderFrame(f *scene.Frame, width, height int, color bool) string {
	c := Rasterize(f, width, height)
	if color {
		return c.String()
	}
	return c.Plain()
}
