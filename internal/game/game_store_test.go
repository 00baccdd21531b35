package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGameStore(t *testing.T) {
	s := NewGameStore()
	running, _, _ := setupTestGame(t, Options{}, neutralSeats[:2]...)
	done := New(Options{Logger: quietLogger()})
	done.over = true

	s.AddGame(running)
	s.AddGame(done)
	assert.Equal(t, 2, s.Len())

	got, ok := s.GetGame(running.ID)
	assert.True(t, ok)
	assert.Same(t, running, got)
	_, ok = s.GetGame(uuid.New())
	assert.False(t, ok)

	assert.Equal(t, []uuid.UUID{done.ID}, s.Finished())

	s.DeleteGame(done.ID)
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, s.Finished())
}
