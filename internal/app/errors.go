package app

import "errors"

// Rejection reasons returned to the caller. A rejection never mutates round
// state; the caller re-presents the previous accepted snapshot.
var (
	ErrRoomNotReady          = errors.New("room does not have three seated players")
	ErrInvalidPhase          = errors.New("action does not apply to the current phase")
	ErrNotYourTurn           = errors.New("it is not this seat's turn")
	ErrCardsNotOwned         = errors.New("cards are not all in the acting seat's hand")
	ErrInvalidCombination    = errors.New("cards do not form a playable combination")
	ErrMustBeatLastPlay      = errors.New("combination does not beat the last play")
	ErrBidNotHigher          = errors.New("bid must exceed the current highest bid")
	ErrCannotPassWhenLeading = errors.New("cannot pass when leading a free play")
)
