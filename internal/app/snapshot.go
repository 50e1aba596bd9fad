package app

import "doudizhu/internal/domain"

// Snapshot is the seat-scoped projection of a round broadcast after every
// accepted transition. Hand only ever carries the receiving seat's own
// cards; other hands appear as counts.
type Snapshot struct {
	Phase                domain.Phase           `json:"phase"`
	Seat                 int                    `json:"seat"`
	CurrentSeat          int                    `json:"current_seat"`
	HighestBid           int                    `json:"highest_bid"`
	LandlordSeat         int                    `json:"landlord_seat"`
	CardCounts           [domain.NumSeats]int   `json:"card_counts"`
	LastPlaySeat         int                    `json:"last_play_seat"`
	LastPlay             []domain.Card          `json:"last_play,omitempty"`
	LastPlayKind         string                 `json:"last_play_kind,omitempty"`
	Kitty                []domain.Card          `json:"kitty,omitempty"`
	Hand                 []domain.Card          `json:"hand"`
	TurnSecondsRemaining int64                  `json:"turn_seconds_remaining"`
}

// SnapshotFor builds the projection for one seat. Every card slice is a
// copy taken at emission time, never an alias into the live round, so a
// consumer can never observe a partially-mutated hand.
func SnapshotFor(r *domain.Round, seat int, secondsRemaining int64) Snapshot {
	snap := Snapshot{
		Phase:                r.Phase,
		Seat:                 seat,
		CurrentSeat:          r.CurrentSeat,
		HighestBid:           r.HighestBid,
		LandlordSeat:         r.LandlordSeat,
		CardCounts:           r.CardCounts(),
		LastPlaySeat:         r.LastPlaySeat,
		Hand:                 append([]domain.Card{}, r.Seats[seat].Hand...),
		TurnSecondsRemaining: secondsRemaining,
	}

	if r.LastPlay != nil {
		snap.LastPlay = append([]domain.Card{}, r.LastPlay.Cards...)
		snap.LastPlayKind = r.LastPlay.Kind.String()
	}
	// The kitty stays face-down until the auction resolves.
	if r.LandlordSeat != domain.NoSeat {
		snap.Kitty = append([]domain.Card{}, r.Kitty...)
	}
	return snap
}
