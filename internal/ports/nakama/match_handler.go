package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"doudizhu/internal/app"
	"doudizhu/internal/config"
	"doudizhu/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats            [domain.NumSeats]string     `json:"seats"`      // user IDs, empty string means seat is empty
	OwnerSeat        int                         `json:"owner_seat"` // seat index of the match owner
	Tick             int64                       `json:"tick"`
	TurnDeadlineTick int64                       `json:"turn_deadline_tick"` // tick at which the seat on turn is forced to act
	Presences        map[string]runtime.Presence `json:"-"`                  // userId -> presence for targeted messaging
	App              *app.Service                `json:"-"`
	Round            *domain.Round               `json:"-"` // nil while the lobby is open
}

func (ms *MatchState) OpenSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat == userID {
			return i
		}
	}
	return domain.NoSeat
}

// roundActive reports whether a round is in progress, as opposed to a lobby
// or a finished round waiting for a restart.
func (ms *MatchState) roundActive() bool {
	return ms.Round != nil && ms.Round.Phase != domain.PhaseEnded
}

func firstOccupiedSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" {
			return i
		}
	}
	return domain.NoSeat
}

// matchLabel is the queryable label kept in sync with the room lifecycle.
type matchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// Client request payloads.
type placeBidRequest struct {
	Bid int `json:"bid"`
}

type playCardsRequest struct {
	Cards []domain.Card `json:"cards"`
}

type playerJoinedEvent struct {
	UserID string `json:"user_id"`
	Seat   int    `json:"seat"`
	Owner  bool   `json:"owner"`
}

type playerLeftEvent struct {
	UserID string `json:"user_id"`
	Seat   int    `json:"seat"`
}

type gameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config, using defaults: %v", err)
	}

	state := &MatchState{
		OwnerSeat: domain.NoSeat,
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(nil),
	}

	labelBytes, err := json.Marshal(matchLabel{Open: state.OpenSeatCount(), Game: "doudizhu", Phase: string(domain.PhasePreparing)})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1 // one tick per second drives the turn countdown
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// A seated player may always rejoin after a disconnect.
	if matchState.seatOf(presence.GetUserId()) != domain.NoSeat {
		return state, true, ""
	}
	if matchState.roundActive() {
		return state, false, "match_in_progress"
	}
	if matchState.OpenSeatCount() == 0 {
		return state, false, "match_full"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		uid := p.GetUserId()
		matchState.Presences[uid] = p

		seat := matchState.seatOf(uid)
		if seat == domain.NoSeat {
			for i, seatUserID := range matchState.Seats {
				if seatUserID == "" {
					matchState.Seats[i] = uid
					seat = i
					break
				}
			}
			if seat == domain.NoSeat {
				logger.Warn("MatchJoin: User %s joined but no seat was available.", uid)
				continue
			}
		}

		if matchState.OwnerSeat == domain.NoSeat {
			matchState.OwnerSeat = seat
		}

		payload, _ := json.Marshal(playerJoinedEvent{UserID: uid, Seat: seat, Owner: seat == matchState.OwnerSeat})
		_ = dispatcher.BroadcastMessage(OpPlayerJoined, payload, nil, nil, true)

		// A reconnecting seat gets its private projection straight away.
		if matchState.Round != nil {
			mh.sendSnapshot(matchState, dispatcher, logger, seat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave frees seats and aborts an in-progress round when a seated player
// drops out.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		uid := p.GetUserId()
		delete(matchState.Presences, uid)

		seat := matchState.seatOf(uid)
		if seat == domain.NoSeat {
			continue
		}
		matchState.Seats[seat] = ""
		logger.Debug("MatchLeave: User %s left, seat %d freed.", uid, seat)

		payload, _ := json.Marshal(playerLeftEvent{UserID: uid, Seat: seat})
		_ = dispatcher.BroadcastMessage(OpPlayerLeft, payload, nil, nil, true)

		if matchState.roundActive() {
			events := matchState.App.AbortRound(matchState.Round, "player left mid-round")
			for _, ev := range events {
				mh.broadcastEvent(matchState, dispatcher, logger, ev)
			}
			matchState.TurnDeadlineTick = 0
		}
	}

	if firstOccupiedSeat(matchState.Seats[:]) == domain.NoSeat {
		logger.Info("MatchLeave: Terminating empty match.")
		return nil
	}

	if matchState.OwnerSeat == domain.NoSeat || matchState.Seats[matchState.OwnerSeat] == "" {
		matchState.OwnerSeat = firstOccupiedSeat(matchState.Seats[:])
		logger.Debug("MatchLeave: Owner moved to seat %d.", matchState.OwnerSeat)
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(matchState, dispatcher, logger, msg)
		case OpPlaceBid:
			mh.handlePlaceBid(matchState, dispatcher, logger, msg)
		case OpPlayCards:
			mh.handlePlayCards(matchState, dispatcher, logger, msg)
		case OpPassTurn:
			mh.handlePassTurn(matchState, dispatcher, logger, msg)
		case OpRequestNewGame:
			mh.handleRequestNewGame(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	// Deadline enforcement: when the seat on turn runs out of time the
	// service synthesizes its default action.
	if matchState.roundActive() && matchState.TurnDeadlineTick > 0 && tick >= matchState.TurnDeadlineTick {
		seat := matchState.Round.CurrentSeat
		events, err := matchState.App.HandleDeadline(matchState.Round)
		if err != nil {
			logger.Error("MatchLoop: Deadline handling failed for seat %d: %v", seat, err)
			matchState.TurnDeadlineTick = 0
		} else {
			logger.Info("MatchLoop: Seat %d timed out, default action applied.", seat)
			mh.afterTransition(matchState, dispatcher, logger, events)
		}
	}

	return matchState
}

func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())
	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start but is not owner (owner_seat=%d)", msg.GetUserId(), state.OwnerSeat)
		return
	}
	if state.roundActive() {
		logger.Warn("StartGame: Round already in progress.")
		return
	}
	if state.OpenSeatCount() > 0 {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), app.ErrRoomNotReady)
		return
	}

	round, events, err := state.App.StartRound(state.Seats)
	if err != nil {
		logger.Error("StartGame: Failed to start round: %v", err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), err)
		return
	}
	state.Round = round

	logger.Info("StartGame: Round started, seat %d opens the auction.", round.CurrentSeat)
	mh.afterTransition(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlaceBid(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())
	if senderSeat == domain.NoSeat || state.Round == nil {
		return
	}

	var request placeBidRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handlePlaceBid: Invalid payload from %s: %v", msg.GetUserId(), err)
		return
	}

	events, err := state.App.SubmitBid(state.Round, senderSeat, request.Bid)
	if err != nil {
		logger.Warn("handlePlaceBid: User %s (seat %d) bid %d rejected: %v", msg.GetUserId(), senderSeat, request.Bid, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), err)
		return
	}
	mh.afterTransition(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlayCards(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())
	if senderSeat == domain.NoSeat || state.Round == nil {
		return
	}

	var request playCardsRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handlePlayCards: Invalid payload from %s: %v", msg.GetUserId(), err)
		return
	}

	events, err := state.App.SubmitPlay(state.Round, senderSeat, request.Cards)
	if err != nil {
		logger.Warn("handlePlayCards: User %s (seat %d) play rejected: %v", msg.GetUserId(), senderSeat, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), err)
		return
	}
	mh.afterTransition(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePassTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())
	if senderSeat == domain.NoSeat || state.Round == nil {
		return
	}

	events, err := state.App.SubmitPass(state.Round, senderSeat)
	if err != nil {
		logger.Warn("handlePassTurn: User %s (seat %d) pass rejected: %v", msg.GetUserId(), senderSeat, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), err)
		return
	}
	mh.afterTransition(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleRequestNewGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())
	if senderSeat != state.OwnerSeat {
		return
	}
	if state.Round == nil || state.Round.Phase != domain.PhaseEnded {
		return
	}
	state.Round = nil
	mh.handleStartGame(state, dispatcher, logger, msg)
}

// afterTransition runs after every accepted state change: broadcast the
// resulting events, rearm the turn deadline, refresh each seat's private
// projection and the match label.
func (mh *matchHandler) afterTransition(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}

	if state.roundActive() {
		state.TurnDeadlineTick = state.Tick + int64(app.TurnDurationSeconds(state.Round))
	} else {
		state.TurnDeadlineTick = 0
	}

	for seat := range state.Seats {
		mh.sendSnapshot(state, dispatcher, logger, seat)
	}
	mh.updateLabel(state, dispatcher, logger)
}

// broadcastEvent maps an app event to its opcode and dispatches it, honoring
// targeted recipients.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	switch ev.Kind {
	case app.EventRoundStarted:
		opCode = OpRoundStarted
	case app.EventHandDealt:
		opCode = OpHandDealt
	case app.EventBidPlaced:
		opCode = OpBidPlaced
	case app.EventBiddingRestarted:
		opCode = OpBiddingRestarted
	case app.EventLandlordAssigned:
		opCode = OpLandlordAssigned
	case app.EventCardsPlayed:
		opCode = OpCardsPlayed
	case app.EventTurnPassed:
		opCode = OpTurnPassed
	case app.EventRoundEnded:
		opCode = OpRoundEnded
	case app.EventRoundAborted:
		opCode = OpRoundAborted
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Determine recipients (default to broadcast).
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}
		// A targeted event with no connected recipient must not fall back
		// to a broadcast.
		if len(recipients) == 0 {
			return
		}
	}

	_ = dispatcher.BroadcastMessage(opCode, payload, recipients, nil, true)
}

// sendSnapshot delivers one seat's private projection of the round.
func (mh *matchHandler) sendSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat int) {
	if state.Round == nil {
		return
	}
	presence, ok := state.Presences[state.Seats[seat]]
	if !ok {
		return
	}

	remaining := int64(0)
	if state.roundActive() && state.TurnDeadlineTick > state.Tick {
		remaining = state.TurnDeadlineTick - state.Tick
	}

	payload, err := json.Marshal(app.SnapshotFor(state.Round, seat, remaining))
	if err != nil {
		logger.Error("Failed to marshal snapshot for seat %d: %v", seat, err)
		return
	}
	_ = dispatcher.BroadcastMessage(OpStateSnapshot, payload, []runtime.Presence{presence}, nil, true)
}

// errorCode gives clients a stable numeric code per rejection reason.
func errorCode(err error) int {
	switch {
	case errors.Is(err, app.ErrRoomNotReady):
		return 1001
	case errors.Is(err, app.ErrInvalidPhase):
		return 1002
	case errors.Is(err, app.ErrNotYourTurn):
		return 1003
	case errors.Is(err, app.ErrCardsNotOwned):
		return 1004
	case errors.Is(err, app.ErrInvalidCombination):
		return 1005
	case errors.Is(err, app.ErrMustBeatLastPlay):
		return 1006
	case errors.Is(err, app.ErrBidNotHigher):
		return 1007
	case errors.Is(err, app.ErrCannotPassWhenLeading):
		return 1008
	default:
		return 1000
	}
}

// sendError delivers a rejection to the offending user only.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, cause error) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	payload, err := json.Marshal(gameErrorEvent{Code: errorCode(cause), Message: cause.Error()})
	if err != nil {
		logger.Error("Failed to marshal error event: %v", err)
		return
	}
	_ = dispatcher.BroadcastMessage(OpGameError, payload, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := string(domain.PhasePreparing)
	if state.Round != nil {
		phase = string(state.Round.Phase)
	}

	labelBytes, err := json.Marshal(matchLabel{Open: state.OpenSeatCount(), Game: "doudizhu", Phase: phase})
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d seconds grace.", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
