// Package feed carries data across the engine boundary: inbound sky and
// mount feeds, and outbound selection, slew and center events.
package feed

import (
	"time"

	"github.com/litescript/ls-planetarium/internal/astro"
	"github.com/litescript/ls-planetarium/internal/catalog"
)

// VisibleObject is a catalog object placed in the observer's sky.
type VisibleObject struct {
	catalog.Object
	Horizontal astro.Horizontal
	Airmass    float64 // +Inf below the horizon
}

// SkyData is one update of the sky feed. Each update replaces the previous.
type SkyData struct {
	Time     time.Time
	Observer astro.Observer
	LST      float64 // local sidereal time, hours

	Sun              astro.Equatorial
	SunAlt           float64
	Moon             astro.Equatorial
	MoonAlt          float64
	MoonIllumination float64 // illuminated fraction [0, 1]

	Objects []VisibleObject
}

// MountObservation is one report from the mount collaborator. Alt and Az are
// nil when the device has not reported a position.
type MountObservation struct {
	Alt       *float64  `json:"alt,omitempty"`
	Az        *float64  `json:"az,omitempty"`
	Slewing   bool      `json:"slewing"`
	Parked    bool      `json:"parked"`
	Connected bool      `json:"connected"`
	Time      time.Time `json:"time,omitzero"`
}

// HasPosition reports whether both angles are present.
func (o MountObservation) HasPosition() bool {
	return o.Alt != nil && o.Az != nil
}

// CanSlew reports whether slew commands may be sent.
func (o MountObservation) CanSlew() bool {
	return o.Connected && !o.Parked
}

// Position returns the reported alt/az. ok is false when either is absent.
func (o MountObservation) Position() (astro.Horizontal, bool) {
	if !o.HasPosition() {
		return astro.Horizontal{}, false
	}
	return astro.Horizontal{Alt: *o.Alt, Az: *o.Az}, true
}

// Observe builds a connected observation at alt/az.
func Observe(alt, az float64, slewing bool) MountObservation {
	return MountObservation{Alt: &alt, Az: &az, Slewing: slewing, Connected: true}
}

// EventType represents the type of outbound event.
type EventType string

const (
	EventSelection  EventType = "SELECTION"
	EventSlew       EventType = "SLEW_REQUEST"
	EventCenterView EventType = "CENTER_VIEW"
)

// Event is emitted at the engine boundary for collaborators to act on.
type Event struct {
	Type      EventType        `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	ObjectID  string           `json:"object_id,omitempty"`
	Coord     astro.Equatorial `json:"coord"`
}

// Selection builds a selection event.
func Selection(id string, at astro.Equatorial) Event {
	return Event{Type: EventSelection, Timestamp: time.Now(), ObjectID: id, Coord: at}
}

// SlewRequest builds a slew request. id is empty for "slew here".
func SlewRequest(id string, to astro.Equatorial) Event {
	return Event{Type: EventSlew, Timestamp: time.Now(), ObjectID: id, Coord: to}
}

// CenterView builds a center-view command.
func CenterView(at astro.Equatorial) Event {
	return Event{Type: EventCenterView, Timestamp: time.Now(), Coord: at}
}
