package pkg

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound = errors.New("room does not exist")
	ErrRoomFull     = errors.New("room full")
)

// Registry is the in-memory room table. It is the only shared mutable state
// in the process; every operation is a short map access under the lock, no
// operation blocks or performs I/O.
type Registry struct {
	lock  sync.Mutex
	rooms map[string]*Room
	now   func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
		now:   time.Now,
	}
}

// CreateRoom inserts a fresh room for roomID with hostID as host and an empty
// joiner slot. An existing room under the same id is replaced unconditionally;
// the displaced room is returned so the caller can notify its occupants.
func (g *Registry) CreateRoom(roomID string, hostID uuid.UUID) (prev Room, replaced bool) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if old, ok := g.rooms[roomID]; ok {
		prev = *old
		replaced = true
	}

	g.rooms[roomID] = &Room{
		ID:       roomID,
		Host:     hostID,
		LastSeen: g.now(),
	}

	SignalServerRoomsGauge.Set(float64(len(g.rooms)))

	return prev, replaced
}

// JoinRoom fills the joiner slot of an existing room. It returns a snapshot
// of the room after the mutation so the caller can notify the host.
func (g *Registry) JoinRoom(roomID string, joinerID uuid.UUID) (Room, error) {
	g.lock.Lock()
	defer g.lock.Unlock()

	room, ok := g.rooms[roomID]
	if !ok {
		return Room{}, ErrRoomNotFound
	}

	if room.Joiner != uuid.Nil {
		return Room{}, ErrRoomFull
	}

	room.Joiner = joinerID
	room.LastSeen = g.now()

	return *room, nil
}

// Lookup returns a snapshot of the room, never mutating it.
func (g *Registry) Lookup(roomID string) (Room, bool) {
	g.lock.Lock()
	defer g.lock.Unlock()

	room, ok := g.rooms[roomID]
	if !ok {
		return Room{}, false
	}

	return *room, true
}

// Touch records relay activity on a room for idle eviction purposes.
func (g *Registry) Touch(roomID string) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if room, ok := g.rooms[roomID]; ok {
		room.LastSeen = g.now()
	}
}

// RemoveParticipant deletes every room in which connID holds either role,
// both roles invalidated together. It returns pre-deletion snapshots so the
// caller can notify the surviving peers. A linear scan is fine at the room
// counts this server sees.
func (g *Registry) RemoveParticipant(connID uuid.UUID) []Room {
	g.lock.Lock()
	defer g.lock.Unlock()

	var removed []Room
	for id, room := range g.rooms {
		if room.Host == connID || room.Joiner == connID {
			removed = append(removed, *room)
			delete(g.rooms, id)
		}
	}

	SignalServerRoomsGauge.Set(float64(len(g.rooms)))

	return removed
}

// SweepIdle deletes every room whose last activity is older than ttl and
// returns their pre-deletion snapshots.
func (g *Registry) SweepIdle(ttl time.Duration) []Room {
	g.lock.Lock()
	defer g.lock.Unlock()

	cutoff := g.now().Add(-ttl)

	var removed []Room
	for id, room := range g.rooms {
		if room.LastSeen.Before(cutoff) {
			removed = append(removed, *room)
			delete(g.rooms, id)
		}
	}

	SignalServerRoomsGauge.Set(float64(len(g.rooms)))

	return removed
}
