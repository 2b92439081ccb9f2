package pkg

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("METRICS_PORT", "")
	t.Setenv("ROOM_TTL", "")

	config := LoadConfig()

	if config.Port != "3000" {
		t.Errorf("Port = %q, want %q", config.Port, "3000")
	}
	if config.MetricsPort != "9091" {
		t.Errorf("MetricsPort = %q, want %q", config.MetricsPort, "9091")
	}
	if config.RoomTTL != 0 {
		t.Errorf("RoomTTL = %d, want 0", config.RoomTTL)
	}
	if config.RoomTTLDuration() != 0 {
		t.Errorf("RoomTTLDuration = %v, want 0", config.RoomTTLDuration())
	}
}

func TestLoadConfig_CustomValues(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("METRICS_PORT", "8081")
	t.Setenv("ROOM_TTL", "300")

	config := LoadConfig()

	if config.Port != "8080" {
		t.Errorf("Port = %q, want %q", config.Port, "8080")
	}
	if config.MetricsPort != "8081" {
		t.Errorf("MetricsPort = %q, want %q", config.MetricsPort, "8081")
	}
	if config.RoomTTLDuration() != 5*time.Minute {
		t.Errorf("RoomTTLDuration = %v, want 5m", config.RoomTTLDuration())
	}
}

func TestLoadConfig_InvalidRoomTTL(t *testing.T) {
	t.Setenv("ROOM_TTL", "soon")

	config := LoadConfig()

	if config.RoomTTL != 0 {
		t.Errorf("RoomTTL = %d, want 0 (fallback)", config.RoomTTL)
	}
}
