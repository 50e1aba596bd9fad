package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds tunables loaded from the data directory. Values of zero
// fall back to the package defaults.
type GameConfig struct {
	// BiddingDurationSeconds bounds each seat's turn during the auction.
	BiddingDurationSeconds int `json:"bidding_duration_seconds"`
	// TurnDurationSeconds bounds each seat's turn during trick play.
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// RoomTokenTTLSeconds is the lifetime of issued room session tokens.
	RoomTokenTTLSeconds int `json:"room_token_ttl_seconds"`
}

const (
	defaultBiddingDurationSeconds = 30
	defaultTurnDurationSeconds    = 45
	defaultRoomTokenTTLSeconds    = 3600
)

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. It is
// safe to call more than once; only the first call reads the file.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the loaded configuration, or nil when no file was
// loaded. Callers should prefer the typed getters below.
func GetGameConfig() *GameConfig {
	return cfg
}

// BiddingDurationSeconds returns the configured auction turn limit.
func BiddingDurationSeconds() int {
	if cfg != nil && cfg.BiddingDurationSeconds > 0 {
		return cfg.BiddingDurationSeconds
	}
	return defaultBiddingDurationSeconds
}

// TurnDurationSeconds returns the configured play turn limit.
func TurnDurationSeconds() int {
	if cfg != nil && cfg.TurnDurationSeconds > 0 {
		return cfg.TurnDurationSeconds
	}
	return defaultTurnDurationSeconds
}

// RoomTokenTTLSeconds returns the configured room token lifetime.
func RoomTokenTTLSeconds() int {
	if cfg != nil && cfg.RoomTokenTTLSeconds > 0 {
		return cfg.RoomTokenTTLSeconds
	}
	return defaultRoomTokenTTLSeconds
}
