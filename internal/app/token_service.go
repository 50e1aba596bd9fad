package app

import (
	"fmt"
	"time"

	"doudizhu/internal/config"

	"github.com/form3tech-oss/jwt-go"
)

// RoomTokenService issues short-lived HS256 tokens binding a user to a
// match, for clients that hand the room reference to companion services.
type RoomTokenService struct {
	secret string
	issuer string
}

func NewRoomTokenService(secret, issuer string) *RoomTokenService {
	return &RoomTokenService{secret: secret, issuer: issuer}
}

// GenerateToken signs a room session token for the given user and match.
func (s *RoomTokenService) GenerateToken(userID, matchID string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("room token service is nil")
	}
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	if matchID == "" {
		return "", fmt.Errorf("match id is required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("room token config is incomplete")
	}

	ttl := time.Duration(config.RoomTokenTTLSeconds()) * time.Second
	claims := jwt.MapClaims{
		"iss": s.issuer,
		"sub": userID,
		"mid": matchID,
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// VerifyToken parses a room session token and returns its user and match
// ids after validating the signature and expiry.
func (s *RoomTokenService) VerifyToken(raw string) (userID, matchID string, err error) {
	if s == nil || s.secret == "" {
		return "", "", fmt.Errorf("room token config is incomplete")
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid room token")
	}

	userID, _ = claims["sub"].(string)
	matchID, _ = claims["mid"].(string)
	if userID == "" || matchID == "" {
		return "", "", fmt.Errorf("room token claims missing sub or mid")
	}
	return userID, matchID, nil
}
