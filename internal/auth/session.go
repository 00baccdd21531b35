// internal/auth/session.go
package auth

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidSeat = errors.New("invalid seat token")

// Seat identifies one player at one table.
type Seat struct {
	GameID uuid.UUID
	Player string
}

// SeatIssuer signs and verifies the tokens players present when they open
// a game websocket. Keys are generated per process, so tokens do not
// survive a restart.
type SeatIssuer struct {
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey
	ttl        time.Duration // 0 means no expiry
}

// NewSeatIssuer generates a fresh ed25519 key pair.
func NewSeatIssuer(ttl time.Duration) (*SeatIssuer, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, fmt.Errorf("generate ed25519 key pair: %w", err)
	}
	return &SeatIssuer{privateKey: priv, publicKey: pub, ttl: ttl}, nil
}

// Issue returns a signed token with "sub" = player and "gid" = game ID.
func (s *SeatIssuer) Issue(seat Seat) (string, error) {
	claims := jwt.MapClaims{
		"sub": seat.Player,
		"gid": seat.GameID.String(),
		"iat": time.Now().Unix(),
	}
	if s.ttl != 0 {
		claims["exp"] = time.Now().Add(s.ttl).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", fmt.Errorf("sign seat token: %w", err)
	}
	return signed, nil
}

// Verify checks a token and returns the seat it grants.
func (s *SeatIssuer) Verify(tokenString string) (Seat, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.publicKey, nil
	})
	if err != nil {
		return Seat{}, fmt.Errorf("%w: %v", ErrInvalidSeat, err)
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok || !t.Valid {
		return Seat{}, ErrInvalidSeat
	}

	player, _ := claims["sub"].(string)
	gid, _ := claims["gid"].(string)
	gameID, err := uuid.Parse(gid)
	if player == "" || err != nil {
		return Seat{}, fmt.Errorf("%w: missing claims", ErrInvalidSeat)
	}
	return Seat{GameID: gameID, Player: player}, nil
}
