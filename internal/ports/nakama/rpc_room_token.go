package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"doudizhu/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RpcRoomTokenRequest is the client payload for the room token RPC.
type RpcRoomTokenRequest struct {
	MatchID string `json:"match_id"`
}

// RpcRoomTokenResponse carries the signed token back to the client.
type RpcRoomTokenResponse struct {
	Token string `json:"token"`
}

// rpcRoomToken issues a signed room session token binding the calling user
// to the match they intend to hand to companion services.
func rpcRoomToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("Authentication required", 16) // UNAUTHENTICATED
	}

	var req RpcRoomTokenRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}
	if req.MatchID == "" {
		return "", runtime.NewError("Match ID required", 3)
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	secret := env["doudizhu_token_secret"]
	issuer := env["doudizhu_token_issuer"]
	if issuer == "" {
		issuer = "doudizhu"
	}
	if secret == "" {
		secret = "test-secret"
		logger.Warn("Room token secret missing from env, using test default.")
	}

	token, err := app.NewRoomTokenService(secret, issuer).GenerateToken(userID, req.MatchID)
	if err != nil {
		logger.Error("Failed to generate room token: %v", err)
		return "", runtime.NewError("Internal error", 13) // INTERNAL
	}

	resBytes, _ := json.Marshal(RpcRoomTokenResponse{Token: token})
	return string(resBytes), nil
}
