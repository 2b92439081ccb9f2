package pkg

import (
	"time"

	"github.com/google/uuid"
)

// Room pairs the connection that created it with at most one joiner.
// The joiner slot is uuid.Nil until a join succeeds.
type Room struct {
	ID       string
	Host     uuid.UUID
	Joiner   uuid.UUID
	LastSeen time.Time
}

func (r Room) HasJoiner() bool {
	return r.Joiner != uuid.Nil
}

// Counterpart returns the other participant of the room relative to connID,
// or uuid.Nil if connID holds neither role or the other slot is empty.
func (r Room) Counterpart(connID uuid.UUID) uuid.UUID {
	switch connID {
	case r.Host:
		return r.Joiner
	case r.Joiner:
		return r.Host
	}
	return uuid.Nil
}
