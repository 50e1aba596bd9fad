package domain

// Phase represents the lifecycle stage of a round.
type Phase string

const (
	// PhasePreparing is the pre-deal state while seats fill.
	PhasePreparing Phase = "preparing"
	// PhaseBidding is the landlord auction after the deal.
	PhaseBidding Phase = "bidding"
	// PhasePlaying is the active trick-play state.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after a round concludes or aborts.
	PhaseEnded Phase = "ended"
)

// NumSeats is fixed; the landlord game is always three-handed.
const NumSeats = 3

// MaxBid ends the auction immediately when bid.
const MaxBid = 3

// NoSeat marks seat-index fields that have no holder yet.
const NoSeat = -1

// SeatState holds the per-seat state within a round. Hand is exclusively
// owned by the seat and mutated only by removing the cards of an accepted
// play.
type SeatState struct {
	UserID     string
	Hand       []Card
	Bid        int
	IsLandlord bool
}

// Action identifies a history entry's type.
type Action string

const (
	ActionBid  Action = "bid"
	ActionPlay Action = "play"
	ActionPass Action = "pass"
)

// PlayRecord is one accepted action in the round history.
type PlayRecord struct {
	Seat   int    `json:"seat"`
	Action Action `json:"action"`
	Bid    int    `json:"bid,omitempty"`
	Cards  []Card `json:"cards,omitempty"`
}

// Round is the authoritative state for one hand of the game. It is the unit
// of isolation: all mutation happens on the hosting match's single-threaded
// loop, never concurrently.
type Round struct {
	Phase Phase
	Seats [NumSeats]*SeatState
	Kitty []Card

	CurrentSeat int

	// Bidding state.
	HighestBid    int
	BidWinnerSeat int // NoSeat until a positive bid registers
	BidPassStreak int // consecutive bid passes since the last raise

	// Playing state.
	LandlordSeat int // NoSeat until the auction resolves
	LastPlay     *Combination
	LastPlaySeat int
	PassStreak   int

	WinnerSeat int // NoSeat until the round ends with a winner
	Aborted    bool

	History []PlayRecord
}

// LandlordWon reports whether the winning seat was the landlord. Only
// meaningful once Phase is PhaseEnded with a winner.
func (r *Round) LandlordWon() bool {
	return r.WinnerSeat != NoSeat && r.WinnerSeat == r.LandlordSeat
}

// CardCounts returns the remaining hand size per seat, denormalized for
// broadcast.
func (r *Round) CardCounts() [NumSeats]int {
	var counts [NumSeats]int
	for i, seat := range r.Seats {
		counts[i] = len(seat.Hand)
	}
	return counts
}
