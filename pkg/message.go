package pkg

import "encoding/json"

// Envelope is the JSON frame exchanged with clients over the websocket.
// RoomID addresses the room on inbound events; Data carries the opaque
// offer/answer/candidate blob, relayed without inspection; Message carries
// the human-readable text of error events.
type Envelope struct {
	Event   EventType       `json:"event"`
	RoomID  string          `json:"roomId,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// decodeEnvelope parses a raw frame. Missing fields decode to zero values;
// the router treats those as absent rather than erroring.
func decodeEnvelope(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	return &env, nil
}
