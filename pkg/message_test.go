package pkg

import "testing"

func TestDecodeEnvelope(t *testing.T) {
	env, err := decodeEnvelope([]byte(`{"event":"offer","roomId":"kitchen","data":{"sdp":"v=0"}}`))
	if err != nil {
		t.Fatalf("decodeEnvelope failed: %v", err)
	}
	if env.Event != EventTypeOffer {
		t.Errorf("Event = %q, want %q", env.Event, EventTypeOffer)
	}
	if env.RoomID != "kitchen" {
		t.Errorf("RoomID = %q, want %q", env.RoomID, "kitchen")
	}
	if string(env.Data) != `{"sdp":"v=0"}` {
		t.Errorf("Data = %s, want the raw blob untouched", env.Data)
	}
}

func TestDecodeEnvelope_MissingFields(t *testing.T) {
	env, err := decodeEnvelope([]byte(`{"event":"host"}`))
	if err != nil {
		t.Fatalf("decodeEnvelope failed: %v", err)
	}
	if env.RoomID != "" {
		t.Errorf("RoomID = %q, want empty", env.RoomID)
	}
	if env.Data != nil {
		t.Errorf("Data = %s, want nil", env.Data)
	}
}

func TestDecodeEnvelope_Malformed(t *testing.T) {
	if _, err := decodeEnvelope([]byte(`not json`)); err == nil {
		t.Error("decodeEnvelope accepted malformed input")
	}
}
