package pkg

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// PeerSender delivers an envelope to a single connection. Implementations
// must treat unknown or already-closed targets as a silent no-op; the router
// has no synchronous way to know a peer is gone and never wants one.
type PeerSender interface {
	SendTo(connID uuid.UUID, env *Envelope)
}

// Router owns the per-event handlers. Handlers only read and mutate the
// registry and emit envelopes through the sender; they perform no I/O of
// their own, which keeps them testable against a fake sender.
type Router struct {
	registry *Registry
	sender   PeerSender
}

func NewRouter(registry *Registry, sender PeerSender) *Router {
	return &Router{
		registry: registry,
		sender:   sender,
	}
}

// Dispatch routes one inbound envelope from senderID. Unknown event types
// are logged and dropped.
func (r *Router) Dispatch(senderID uuid.UUID, env *Envelope) {
	switch env.Event {
	case EventTypeHost:
		r.handleHost(senderID, env.RoomID)
	case EventTypeJoin:
		r.handleJoin(senderID, env.RoomID)
	case EventTypeOffer:
		r.handleOffer(senderID, env)
	case EventTypeAnswer:
		r.handleAnswer(senderID, env)
	case EventTypeICECandidate:
		r.handleICECandidate(senderID, env)
	default:
		log.WithFields(log.Fields{
			"session": senderID,
			"event":   env.Event,
		}).Warn("Unknown event type")
	}
}

func (r *Router) handleHost(senderID uuid.UUID, roomID string) {
	if roomID == "" {
		return
	}

	prev, replaced := r.registry.CreateRoom(roomID, senderID)

	log.WithFields(log.Fields{
		"room": roomID,
		"host": senderID,
	}).Info("Room created")

	r.sender.SendTo(senderID, &Envelope{Event: EventTypeHostReady})

	if !replaced {
		return
	}

	// The previous occupants were never told their room went away; tell
	// them now. A re-host over the sender's own stale room skips the
	// sender itself.
	log.WithField("room", roomID).Info("Existing room reclaimed by new host")
	for _, orphan := range []uuid.UUID{prev.Host, prev.Joiner} {
		if orphan != uuid.Nil && orphan != senderID {
			r.sender.SendTo(orphan, &Envelope{Event: EventTypePeerDisconnected})
		}
	}
}

func (r *Router) handleJoin(senderID uuid.UUID, roomID string) {
	if roomID == "" {
		return
	}

	room, err := r.registry.JoinRoom(roomID, senderID)
	switch err {
	case nil:
	case ErrRoomNotFound:
		SignalServerJoinFailuresCounter.WithLabelValues("not_found").Inc()
		r.sender.SendTo(senderID, &Envelope{
			Event:   EventTypeError,
			Message: "Room does not exist",
		})
		return
	case ErrRoomFull:
		SignalServerJoinFailuresCounter.WithLabelValues("full").Inc()
		r.sender.SendTo(senderID, &Envelope{
			Event:   EventTypeError,
			Message: "Room full",
		})
		return
	default:
		return
	}

	log.WithFields(log.Fields{
		"room":   roomID,
		"joiner": senderID,
	}).Info("Joiner joined room")

	r.sender.SendTo(room.Host, &Envelope{Event: EventTypeJoinerConnected})
	r.sender.SendTo(senderID, &Envelope{Event: EventTypeJoinSuccess})
}

func (r *Router) handleOffer(senderID uuid.UUID, env *Envelope) {
	room, ok := r.registry.Lookup(env.RoomID)
	if !ok || !room.HasJoiner() {
		return
	}

	r.relay(senderID, room.Joiner, EventTypeOffer, env)
}

func (r *Router) handleAnswer(senderID uuid.UUID, env *Envelope) {
	room, ok := r.registry.Lookup(env.RoomID)
	if !ok {
		return
	}

	r.relay(senderID, room.Host, EventTypeAnswer, env)
}

func (r *Router) handleICECandidate(senderID uuid.UUID, env *Envelope) {
	room, ok := r.registry.Lookup(env.RoomID)
	if !ok {
		return
	}

	target := room.Counterpart(senderID)
	if target == uuid.Nil {
		return
	}

	r.relay(senderID, target, EventTypeICECandidate, env)
}

func (r *Router) relay(senderID, target uuid.UUID, event EventType, env *Envelope) {
	r.registry.Touch(env.RoomID)
	SignalServerRelayedCounter.WithLabelValues(string(event)).Inc()

	log.WithFields(log.Fields{
		"room":   env.RoomID,
		"event":  event,
		"from":   senderID,
		"target": target,
	}).Debug("Relaying signal")

	r.sender.SendTo(target, &Envelope{Event: event, Data: env.Data})
}

// HandleDisconnect removes connID from every room it occupies and notifies
// both former participants of each deleted room. The send to the departed
// connection itself is a harmless no-op since its session is already gone.
func (r *Router) HandleDisconnect(connID uuid.UUID) {
	for _, room := range r.registry.RemoveParticipant(connID) {
		log.WithFields(log.Fields{
			"room":    room.ID,
			"session": connID,
		}).Info("Room deleted")

		r.sender.SendTo(room.Host, &Envelope{Event: EventTypePeerDisconnected})
		if room.HasJoiner() {
			r.sender.SendTo(room.Joiner, &Envelope{Event: EventTypePeerDisconnected})
		}
	}
}

// ExpireIdle evicts rooms with no activity for ttl and notifies any
// participants still connected.
func (r *Router) ExpireIdle(ttl time.Duration) {
	for _, room := range r.registry.SweepIdle(ttl) {
		log.WithField("room", room.ID).Info("Idle room evicted")

		r.sender.SendTo(room.Host, &Envelope{Event: EventTypePeerDisconnected})
		if room.HasJoiner() {
			r.sender.SendTo(room.Joiner, &Envelope{Event: EventTypePeerDisconnected})
		}
	}
}
