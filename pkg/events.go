package pkg

type EventType string

// Events received from clients.
const (
	EventTypeHost         EventType = "host"
	EventTypeJoin                   = "join"
	EventTypeOffer                  = "offer"
	EventTypeAnswer                 = "answer"
	EventTypeICECandidate           = "ice-candidate"
)

// Events sent to clients.
const (
	EventTypeHostReady        EventType = "host-ready"
	EventTypeJoinSuccess                = "join-success"
	EventTypeJoinerConnected            = "joiner-connected"
	EventTypeError                      = "error"
	EventTypePeerDisconnected           = "peer-disconnected"
)
