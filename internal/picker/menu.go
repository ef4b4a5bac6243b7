package picker

import (
	"fmt"
	"unicode/utf8"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/feed"
)

// Action is a context menu command.
type Action int

const (
	ActionSlewHere Action = iota
	ActionSlewToObject
	ActionSelect
	ActionCenter
)

func (a Action) String() string {
	switch a {
	case ActionSlewHere:
		return "slew-here"
	case ActionSlewToObject:
		return "slew-to-object"
	case ActionSelect:
		return "select"
	case ActionCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParkedHint explains why slew items are disabled.
const ParkedHint = "mount is parked, unpark to slew"

// Item is one row of the context menu.
type Item struct {
	Action  Action
	Label   string
	Enabled bool
	Hint    string
}

// BuildItems returns the menu rows for a click with an optional picked
// target. Slew rows are omitted entirely while the mount is
// disconnected and shown disabled while it is parked.
func BuildItems(target *Result, mount feed.MountObservation) []Item {
	var items []Item
	if mount.Connected {
		slewable := !mount.Parked
		hint := ""
		if !slewable {
			hint = ParkedHint
		}
		items = append(items, Item{Action: ActionSlewHere, Label: "Slew here", Enabled: slewable, Hint: hint})
		if target != nil {
			items = append(items, Item{
				Action:  ActionSlewToObject,
				Label:   fmt.Sprintf("Slew to %s", target.displayName()),
				Enabled: slewable,
				Hint:    hint,
			})
		}
	}
	if target != nil {
		items = append(items, Item{
			Action:  ActionSelect,
			Label:   fmt.Sprintf("Select %s", target.displayName()),
			Enabled: true,
		})
	}
	items = append(items, Item{Action: ActionCenter, Label: "Center view here", Enabled: true})
	return items
}

func (r *Result) displayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// Menu is the context menu state. Coordinates are in viewport cells.
type Menu struct {
	open   bool
	x, y   int
	coord  astro.Equatorial
	target *Result
	items  []Item
	cursor int
}

// Open reports whether the menu is showing.
func (m *Menu) Open() bool { return m.open }

// Position returns the clamped top-left corner.
func (m *Menu) Position() (x, y int) { return m.x, m.y }

// Coord returns the sky coordinate the menu was opened at.
func (m *Menu) Coord() astro.Equatorial { return m.coord }

// Target returns the picked object, if any.
func (m *Menu) Target() (Result, bool) {
	if m.target == nil {
		return Result{}, false
	}
	return *m.target, true
}

// Items returns the menu rows.
func (m *Menu) Items() []Item { return m.items }

// Cursor returns the highlighted row.
func (m *Menu) Cursor() int { return m.cursor }

// Size returns the menu's width and height in cells, border included.
func (m *Menu) Size() (w, h int) {
	w = 0
	for _, it := range m.items {
		n := utf8.RuneCountInString(it.Label)
		if it.Hint != "" {
			n += utf8.RuneCountInString(it.Hint) + 3
		}
		w = max(w, n)
	}
	return w + 4, len(m.items) + 2
}

// OpenAt shows the menu at (x, y), moved as needed to stay fully inside a
// vpW×vpH viewport.
func (m *Menu) OpenAt(x, y, vpW, vpH int, coord astro.Equatorial, target *Result, mount feed.MountObservation) {
	m.items = BuildItems(target, mount)
	m.coord = coord
	if target != nil {
		t := *target
		m.target = &t
	} else {
		m.target = nil
	}
	m.open = true
	m.cursor = firstEnabled(m.items)

	w, h := m.Size()
	m.x = clampInt(x, 0, vpW-w)
	m.y = clampInt(y, 0, vpH-h)
}

func firstEnabled(items []Item) int {
	for i, it := range items {
		if it.Enabled {
			return i
		}
	}
	return 0
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}

// Close hides the menu.
func (m *Menu) Close() {
	m.open = false
	m.items = nil
	m.target = nil
	m.cursor = 0
}

// Contains reports whether (x, y) falls inside the open menu.
func (m *Menu) Contains(x, y int) bool {
	if !m.open {
		return false
	}
	w, h := m.Size()
	return x >= m.x && x < m.x+w && y >= m.y && y < m.y+h
}

// ItemAt returns the row index under (x, y).
func (m *Menu) ItemAt(x, y int) (int, bool) {
	if !m.Contains(x, y) {
		return 0, false
	}
	row := y - m.y - 1
	if row < 0 || row >= len(m.items) {
		return 0, false
	}
	return row, true
}

// Click handles a primary click while the menu is open. A click outside
// closes the menu without acting; a click on an enabled row activates it.
func (m *Menu) Click(x, y int) (feed.Event, bool) {
	if !m.open {
		return feed.Event{}, false
	}
	row, ok := m.ItemAt(x, y)
	if !ok {
		if !m.Contains(x, y) {
			m.Close()
		}
		return feed.Event{}, false
	}
	return m.activate(row)
}

// Key handles a key while the menu is open. It reports whether the key was
// consumed and any event produced.
func (m *Menu) Key(key string) (feed.Event, bool, bool) {
	if !m.open {
		return feed.Event{}, false, false
	}
	switch key {
	case "esc":
		m.Close()
		return feed.Event{}, false, true
	case "up", "k":
		m.move(-1)
		return feed.Event{}, false, true
	case "down", "j":
		m.move(1)
		return feed.Event{}, false, true
	case "enter":
		ev, ok := m.activate(m.cursor)
		return ev, ok, true
	}
	return feed.Event{}, false, true
}

// Dismiss closes the menu on scroll or zoom.
func (m *Menu) Dismiss() {
	if m.open {
		m.Close()
	}
}

func (m *Menu) move(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// activate returns the event for row and closes the menu. Disabled rows do
// nothing and keep the menu open.
func (m *Menu) activate(row int) (feed.Event, bool) {
	if row < 0 || row >= len(m.items) {
		return feed.Event{}, false
	}
	it := m.items[row]
	if !it.Enabled {
		return feed.Event{}, false
	}

	var ev feed.Event
	switch it.Action {
	case ActionSlewHere:
		ev = feed.SlewRequest("", m.coord)
	case ActionSlewToObject:
		ev = feed.SlewRequest(m.target.ID, m.target.Coord)
	case ActionSelect:
		ev = feed.Selection(m.target.ID, m.target.Coord)
	case ActionCenter:
		ev = feed.CenterView(m.coord)
	}
	m.Close()
	return ev, true
}
