package pkg

import (
	"os"
	"strconv"
	"time"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port        string
	MetricsPort string
	RoomTTL     int // seconds; 0 disables idle room eviction
}

func LoadConfig() Config {
	return Config{
		Port:        getEnv("PORT", "3000"),
		MetricsPort: getEnv("METRICS_PORT", "9091"),
		RoomTTL:     getEnvInt("ROOM_TTL", 0),
	}
}

func (c Config) RoomTTLDuration() time.Duration {
	return time.Duration(c.RoomTTL) * time.Second
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
