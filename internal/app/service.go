package app

import (
	"math/rand"
	"time"

	"doudizhu/internal/domain"
)

// Service contains the landlord-game use-cases operating on domain state.
// All methods that mutate a round must be invoked from the hosting match's
// single-threaded loop; the service itself holds no per-round locks.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// StartRound deals a fresh hand for three seated players and opens bidding.
// The starter seat is chosen uniformly at random and the choice is fixed for
// the round.
func (s *Service) StartRound(userIDs [domain.NumSeats]string) (*domain.Round, []Event, error) {
	for _, id := range userIDs {
		if id == "" {
			return nil, nil, ErrRoomNotReady
		}
	}

	r := &domain.Round{
		Phase:         domain.PhaseBidding,
		BidWinnerSeat: domain.NoSeat,
		LandlordSeat:  domain.NoSeat,
		LastPlaySeat:  domain.NoSeat,
		WinnerSeat:    domain.NoSeat,
	}
	for i := range r.Seats {
		r.Seats[i] = &domain.SeatState{UserID: userIDs[i]}
	}

	events := s.deal(r)
	r.CurrentSeat = s.rng.Intn(domain.NumSeats)

	events = append(events, Event{
		Kind:    EventRoundStarted,
		Payload: RoundStartedPayload{Phase: r.Phase, FirstSeat: r.CurrentSeat},
	})
	return r, events, nil
}

// deal shuffles a fresh deck into the three hands and the kitty, emitting a
// private hand event per seat.
func (s *Service) deal(r *domain.Round) []Event {
	deck := domain.NewDeck()
	s.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	hands, kitty := domain.Deal(deck)
	r.Kitty = kitty

	events := make([]Event, 0, domain.NumSeats)
	for i, seat := range r.Seats {
		domain.SortCards(hands[i])
		seat.Hand = hands[i]
		seat.Bid = 0
		seat.IsLandlord = false

		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: i, Hand: seat.Hand},
			Recipients: []string{seat.UserID},
		})
	}
	return events
}

// SubmitBid processes one auction action. Bid 0 is an explicit pass; a
// positive bid must exceed the current highest bid, and MaxBid ends the
// auction immediately.
func (s *Service) SubmitBid(r *domain.Round, seat, bid int) ([]Event, error) {
	if r.Phase != domain.PhaseBidding {
		return nil, ErrInvalidPhase
	}
	if seat != r.CurrentSeat {
		return nil, ErrNotYourTurn
	}
	if bid < 0 || bid > domain.MaxBid {
		return nil, ErrBidNotHigher
	}
	if bid > 0 && bid <= r.HighestBid {
		return nil, ErrBidNotHigher
	}

	if bid > 0 {
		r.HighestBid = bid
		r.BidWinnerSeat = seat
		r.BidPassStreak = 0
		r.Seats[seat].Bid = bid
	} else {
		r.BidPassStreak++
	}
	r.History = append(r.History, domain.PlayRecord{Seat: seat, Action: domain.ActionBid, Bid: bid})

	next := domain.NextSeat(seat)
	events := []Event{{
		Kind:    EventBidPlaced,
		Payload: BidPlacedPayload{Seat: seat, Bid: bid, HighestBid: r.HighestBid, NextSeat: next},
	}}

	switch {
	case bid == domain.MaxBid:
		return append(events, s.assignLandlord(r, seat)), nil
	case r.BidWinnerSeat != domain.NoSeat && r.BidPassStreak >= domain.NumSeats-1:
		// Two seats in a row declined to raise; the standing bid wins.
		return append(events, s.assignLandlord(r, r.BidWinnerSeat)), nil
	case r.BidWinnerSeat == domain.NoSeat && r.BidPassStreak >= domain.NumSeats:
		// Nobody wants the kitty: re-deal and restart the auction.
		return append(events, s.restartBidding(r)...), nil
	default:
		r.CurrentSeat = next
		return events, nil
	}
}

// assignLandlord closes the auction: the winner takes the kitty, leads the
// first free play, and the round enters the playing phase.
func (s *Service) assignLandlord(r *domain.Round, seat int) Event {
	winner := r.Seats[seat]
	winner.IsLandlord = true
	winner.Hand = append(winner.Hand, r.Kitty...)
	domain.SortCards(winner.Hand)

	r.LandlordSeat = seat
	r.CurrentSeat = seat
	r.Phase = domain.PhasePlaying
	r.LastPlay = nil
	r.LastPlaySeat = domain.NoSeat
	r.PassStreak = 0

	return Event{
		Kind: EventLandlordAssigned,
		Payload: LandlordAssignedPayload{
			Seat:       seat,
			HighestBid: r.HighestBid,
			Kitty:      append([]domain.Card{}, r.Kitty...),
		},
	}
}

// restartBidding re-deals the hand after three consecutive zero bids.
func (s *Service) restartBidding(r *domain.Round) []Event {
	r.HighestBid = 0
	r.BidWinnerSeat = domain.NoSeat
	r.BidPassStreak = 0
	r.History = nil

	events := s.deal(r)
	r.CurrentSeat = s.rng.Intn(domain.NumSeats)
	return append(events, Event{
		Kind:    EventBiddingRestarted,
		Payload: BiddingRestartedPayload{FirstSeat: r.CurrentSeat},
	})
}

// SubmitPlay processes a card play. Ownership is verified before
// classification; a rejection leaves the round untouched.
func (s *Service) SubmitPlay(r *domain.Round, seat int, cards []domain.Card) ([]Event, error) {
	if r.Phase != domain.PhasePlaying {
		return nil, ErrInvalidPhase
	}
	if seat != r.CurrentSeat {
		return nil, ErrNotYourTurn
	}
	if len(cards) == 0 {
		return nil, ErrInvalidCombination
	}

	actor := r.Seats[seat]
	if !domain.HandContains(actor.Hand, cards) {
		return nil, ErrCardsNotOwned
	}

	combo := domain.Classify(cards)
	if combo.Kind == domain.KindInvalid {
		return nil, ErrInvalidCombination
	}
	if !domain.CanBeat(combo, r.LastPlay) {
		return nil, ErrMustBeatLastPlay
	}

	actor.Hand = domain.RemoveCards(actor.Hand, cards)
	r.LastPlay = &combo
	r.LastPlaySeat = seat
	r.PassStreak = 0
	r.History = append(r.History, domain.PlayRecord{Seat: seat, Action: domain.ActionPlay, Cards: combo.Cards})

	next := domain.NextSeat(seat)
	events := []Event{{
		Kind: EventCardsPlayed,
		Payload: CardsPlayedPayload{
			Seat:     seat,
			Cards:    combo.Cards,
			Kind:     combo.Kind.String(),
			NextSeat: next,
		},
	}}

	if len(actor.Hand) == 0 {
		return append(events, s.endRound(r, seat)), nil
	}

	r.CurrentSeat = next
	return events, nil
}

// SubmitPass processes a pass action. Passing is illegal only when the seat
// must lead (no combination on the table).
func (s *Service) SubmitPass(r *domain.Round, seat int) ([]Event, error) {
	if r.Phase != domain.PhasePlaying {
		return nil, ErrInvalidPhase
	}
	if seat != r.CurrentSeat {
		return nil, ErrNotYourTurn
	}
	if r.LastPlay == nil {
		return nil, ErrCannotPassWhenLeading
	}

	r.PassStreak++
	r.History = append(r.History, domain.PlayRecord{Seat: seat, Action: domain.ActionPass})

	newRound := false
	if r.PassStreak >= domain.NumSeats-1 {
		// Both opponents declined; the table clears and the last player
		// leads a free play. PassStreak is reset by the next accepted play.
		r.LastPlay = nil
		newRound = true
	}
	r.CurrentSeat = domain.NextSeat(seat)

	return []Event{{
		Kind:    EventTurnPassed,
		Payload: TurnPassedPayload{Seat: seat, NextSeat: r.CurrentSeat, NewRound: newRound},
	}}, nil
}

// endRound finishes the round with a winner. The winning side is the
// landlord when the emptied seat is the landlord, the peasants otherwise.
func (s *Service) endRound(r *domain.Round, seat int) Event {
	r.Phase = domain.PhaseEnded
	r.WinnerSeat = seat

	var hands [domain.NumSeats][]domain.Card
	for i, st := range r.Seats {
		hands[i] = append([]domain.Card{}, st.Hand...)
	}

	return Event{
		Kind: EventRoundEnded,
		Payload: RoundEndedPayload{
			WinnerSeat:  seat,
			LandlordWon: r.LandlordWon(),
			Hands:       hands,
			History:     r.History,
		},
	}
}

// AbortRound ends a round without a winner, typically because a seat left
// mid-round. The round cannot be continued afterwards.
func (s *Service) AbortRound(r *domain.Round, reason string) []Event {
	if r.Phase == domain.PhaseEnded {
		return nil
	}
	r.Phase = domain.PhaseEnded
	r.WinnerSeat = domain.NoSeat
	r.Aborted = true

	return []Event{{
		Kind:    EventRoundAborted,
		Payload: RoundAbortedPayload{Reason: reason},
	}}
}
