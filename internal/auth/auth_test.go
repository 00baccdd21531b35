package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablePassword(t *testing.T) {
	hash, err := HashTablePassword("high noon")
	require.NoError(t, err)

	ok, err := CheckTablePassword("high noon", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckTablePassword("low noon", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckTablePassword("x", "not-a-hash")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestSeatTokens(t *testing.T) {
	issuer, err := NewSeatIssuer(time.Hour)
	require.NoError(t, err)
	seat := Seat{GameID: uuid.New(), Player: "calamity"}

	token, err := issuer.Issue(seat)
	require.NoError(t, err)

	got, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, seat, got)

	other, err := NewSeatIssuer(0)
	require.NoError(t, err)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSeat, "signed by another key")

	_, err = issuer.Verify("garbage")
	assert.ErrorIs(t, err, ErrInvalidSeat)
}

func TestExpiredSeatToken(t *testing.T) {
	issuer, err := NewSeatIssuer(-time.Minute)
	require.NoError(t, err)

	token, err := issuer.Issue(Seat{GameID: uuid.New(), Player: "sam"})
	require.NoError(t, err)
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSeat)
}
