package feed

import (
	"sync"
	"time"
)

// Manager holds the latest inbound feed values with thread-safe access.
// Feeds write from their own goroutines; the render loop reads snapshots.
type Manager struct {
	mu sync.RWMutex

	sky       *SkyData
	skyAt     time.Time
	lastError error

	mount     MountObservation
	mountSeen bool
	mountAt   time.Time
}

// NewManager creates an empty manager. Until the first mount update the
// mount reads as disconnected.
func NewManager() *Manager {
	return &Manager{}
}

// UpdateSky replaces the sky data. A nil data with an error records the
// failure and keeps the previous sky.
func (m *Manager) UpdateSky(data *SkyData, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastError = err
	if data == nil {
		return
	}
	objs := make([]VisibleObject, len(data.Objects))
	copy(objs, data.Objects)
	cp := *data
	cp.Objects = objs
	m.sky = &cp
	m.skyAt = time.Now()
}

// UpdateMount replaces the mount observation. There is no partial merge: a
// report without angles clears the previous position.
func (m *Manager) UpdateMount(o MountObservation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mount = copyObservation(o)
	m.mountSeen = true
	m.mountAt = time.Now()
}

func copyObservation(o MountObservation) MountObservation {
	if o.Alt != nil {
		v := *o.Alt
		o.Alt = &v
	}
	if o.Az != nil {
		v := *o.Az
		o.Az = &v
	}
	return o
}

// Snapshot represents an immutable snapshot of current feed state.
type Snapshot struct {
	Sky       *SkyData
	SkyAt     time.Time
	LastError error
	Mount     MountObservation
	MountSeen bool
	MountAt   time.Time
}

// Snapshot returns a consistent snapshot of current state. The returned
// values are copies and safe to read without locking.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var sky *SkyData
	if m.sky != nil {
		cp := *m.sky
		cp.Objects = make([]VisibleObject, len(m.sky.Objects))
		copy(cp.Objects, m.sky.Objects)
		sky = &cp
	}
	return Snapshot{
		Sky:       sky,
		SkyAt:     m.skyAt,
		LastError: m.lastError,
		Mount:     copyObservation(m.mount),
		MountSeen: m.mountSeen,
		MountAt:   m.mountAt,
	}
}

// Mount returns the latest mount observation.
func (m *Manager) Mount() MountObservation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyObservation(m.mount)
}
