package app

import "doudizhu/internal/domain"

// EventKind identifies emitted app events for transport dispatch.
type EventKind string

const (
	EventRoundStarted     EventKind = "round_started"
	EventHandDealt        EventKind = "hand_dealt"
	EventBidPlaced        EventKind = "bid_placed"
	EventBiddingRestarted EventKind = "bidding_restarted"
	EventLandlordAssigned EventKind = "landlord_assigned"
	EventCardsPlayed      EventKind = "cards_played"
	EventTurnPassed       EventKind = "turn_passed"
	EventRoundEnded       EventKind = "round_ended"
	EventRoundAborted     EventKind = "round_aborted"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type RoundStartedPayload struct {
	Phase     domain.Phase `json:"phase"`
	FirstSeat int          `json:"first_seat"`
}

// HandDealtPayload is always targeted at its seat's user; hands are never
// broadcast.
type HandDealtPayload struct {
	Seat int           `json:"seat"`
	Hand []domain.Card `json:"hand"`
}

type BidPlacedPayload struct {
	Seat       int `json:"seat"`
	Bid        int `json:"bid"` // 0 means pass
	HighestBid int `json:"highest_bid"`
	NextSeat   int `json:"next_seat"`
}

// BiddingRestartedPayload signals a re-deal after all three seats passed
// without a bid.
type BiddingRestartedPayload struct {
	FirstSeat int `json:"first_seat"`
}

type LandlordAssignedPayload struct {
	Seat       int           `json:"seat"`
	HighestBid int           `json:"highest_bid"`
	Kitty      []domain.Card `json:"kitty"` // revealed to all once awarded
}

type CardsPlayedPayload struct {
	Seat     int           `json:"seat"`
	Cards    []domain.Card `json:"cards"`
	Kind     string        `json:"kind"`
	NextSeat int           `json:"next_seat"`
}

type TurnPassedPayload struct {
	Seat     int  `json:"seat"`
	NextSeat int  `json:"next_seat"`
	NewRound bool `json:"new_round"` // true when free play reopened
}

type RoundEndedPayload struct {
	WinnerSeat  int                            `json:"winner_seat"`
	LandlordWon bool                           `json:"landlord_won"`
	Hands       [domain.NumSeats][]domain.Card `json:"hands"` // final snapshot, revealed
	History     []domain.PlayRecord            `json:"history"`
}

type RoundAbortedPayload struct {
	Reason string `json:"reason"`
}
