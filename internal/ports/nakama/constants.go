package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// RpcRoomToken is the Nakama RPC id clients call to obtain a signed room session token.
	RpcRoomToken = "room_token"

	// MatchNameDoudizhu is the authoritative match handler name registered with Nakama.
	MatchNameDoudizhu = "doudizhu_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame      int64 = 1
	OpPlaceBid       int64 = 2
	OpPlayCards      int64 = 3
	OpPassTurn       int64 = 4
	OpRequestNewGame int64 = 5

	// Server -> Client events
	OpPlayerJoined     int64 = 101
	OpPlayerLeft       int64 = 102
	OpRoundStarted     int64 = 103
	OpHandDealt        int64 = 104 // send privately
	OpBidPlaced        int64 = 105
	OpBiddingRestarted int64 = 106
	OpLandlordAssigned int64 = 107
	OpCardsPlayed      int64 = 108
	OpTurnPassed       int64 = 109
	OpRoundEnded       int64 = 110
	OpRoundAborted     int64 = 111
	OpGameError        int64 = 112
	OpStateSnapshot    int64 = 113 // send privately, one projection per seat
)
