package config

import "testing"

func TestDurationDefaults(t *testing.T) {
	if cfg != nil {
		t.Skip("config file already loaded; defaults not observable")
	}
	if got := BiddingDurationSeconds(); got != defaultBiddingDurationSeconds {
		t.Errorf("BiddingDurationSeconds() = %d, want %d", got, defaultBiddingDurationSeconds)
	}
	if got := TurnDurationSeconds(); got != defaultTurnDurationSeconds {
		t.Errorf("TurnDurationSeconds() = %d, want %d", got, defaultTurnDurationSeconds)
	}
	if got := RoomTokenTTLSeconds(); got != defaultRoomTokenTTLSeconds {
		t.Errorf("RoomTokenTTLSeconds() = %d, want %d", got, defaultRoomTokenTTLSeconds)
	}
}

func TestZeroValuesFallBackToDefaults(t *testing.T) {
	old := cfg
	t.Cleanup(func() { cfg = old })

	cfg = &GameConfig{BiddingDurationSeconds: 10}
	if got := BiddingDurationSeconds(); got != 10 {
		t.Errorf("BiddingDurationSeconds() = %d, want 10", got)
	}
	if got := TurnDurationSeconds(); got != defaultTurnDurationSeconds {
		t.Errorf("TurnDurationSeconds() = %d, want default %d", got, defaultTurnDurationSeconds)
	}
}
