package app

import (
	"doudizhu/internal/config"
	"doudizhu/internal/domain"
)

// TurnDurationSeconds returns the deadline budget for the round's current
// phase. Ended rounds have no deadline.
func TurnDurationSeconds(r *domain.Round) int {
	switch r.Phase {
	case domain.PhaseBidding:
		return config.BiddingDurationSeconds()
	case domain.PhasePlaying:
		return config.TurnDurationSeconds()
	default:
		return 0
	}
}

// HandleDeadline synthesizes the default action for the seat on turn when
// its deadline expires: a zero bid during the auction, a pass during play,
// or the lowest single card when the seat is required to lead. The
// synthesized action runs through the normal transition path, so every
// invariant and event of a real action applies.
func (s *Service) HandleDeadline(r *domain.Round) ([]Event, error) {
	switch r.Phase {
	case domain.PhaseBidding:
		return s.SubmitBid(r, r.CurrentSeat, 0)
	case domain.PhasePlaying:
		if r.LastPlay != nil {
			return s.SubmitPass(r, r.CurrentSeat)
		}
		low := domain.LowestCard(r.Seats[r.CurrentSeat].Hand)
		return s.SubmitPlay(r, r.CurrentSeat, []domain.Card{low})
	default:
		return nil, ErrInvalidPhase
	}
}
