// internal/handlers/game_server.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/jason-s-yu/bang/internal/auth"
	"github.com/jason-s-yu/bang/internal/cache"
	"github.com/jason-s-yu/bang/internal/game"
	"github.com/jason-s-yu/bang/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrWrongPassword = errors.New("wrong table password")
)

// table is the connection-side state of one game.
type table struct {
	passwordHash string
	conns        map[string]*websocket.Conn // by player name
	overSeen     bool
}

// GameServer is a high-level struct that holds a reference to a GameStore
// and the live connections of every table.
type GameServer struct {
	GameStore *game.GameStore
	Publisher *cache.Publisher
	Seats     *auth.SeatIssuer
	Defaults  game.Options
	Logger    *logrus.Logger

	mu     sync.Mutex
	tables map[uuid.UUID]*table
}

func NewGameServer(logger *logrus.Logger, seats *auth.SeatIssuer, publisher *cache.Publisher, defaults game.Options) *GameServer {
	if defaults.Logger == nil {
		defaults.Logger = logger
	}
	return &GameServer{
		GameStore: game.NewGameStore(),
		Publisher: publisher,
		Seats:     seats,
		Defaults:  defaults,
		Logger:    logger,
		tables:    make(map[uuid.UUID]*table),
	}
}

// CreateGame opens a new table. settings override the server defaults; an
// empty password leaves the table open.
func (gs *GameServer) CreateGame(settings map[string]interface{}, password string) (*game.Game, error) {
	opts, err := game.ParseOptions(settings, gs.Defaults)
	if err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	opts.Logger = gs.Defaults.Logger

	t := &table{conns: make(map[string]*websocket.Conn)}
	if password != "" {
		hash, err := auth.HashTablePassword(password)
		if err != nil {
			return nil, err
		}
		t.passwordHash = hash
	}

	g := game.New(opts)
	gs.GameStore.AddGame(g)
	gs.mu.Lock()
	gs.tables[g.ID] = t
	gs.mu.Unlock()
	gs.Logger.WithFields(logrus.Fields{"game": g.ID, "expansions": opts.Expansions, "private": password != ""}).Info("game created")
	return g, nil
}

// JoinGame seats name at the table and returns the seat token the player
// uses to open the game websocket.
func (gs *GameServer) JoinGame(gameID uuid.UUID, name, password string) (string, error) {
	g, t, err := gs.lookup(gameID)
	if err != nil {
		return "", err
	}
	if t.passwordHash != "" {
		ok, err := auth.CheckTablePassword(password, t.passwordHash)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrWrongPassword
		}
	}

	g.Mu.Lock()
	err = g.AddPlayer(models.NewPlayer(name))
	g.Mu.Unlock()
	if err != nil {
		return "", err
	}
	gs.broadcast(context.Background(), g)
	return gs.Seats.Issue(auth.Seat{GameID: gameID, Player: name})
}

// StartGame deals the table and pushes the first state to everyone.
func (gs *GameServer) StartGame(ctx context.Context, gameID uuid.UUID) error {
	g, _, err := gs.lookup(gameID)
	if err != nil {
		return err
	}
	g.Mu.Lock()
	err = g.StartGame()
	g.Mu.Unlock()
	if err != nil {
		return err
	}
	gs.broadcast(ctx, g)
	return nil
}

// Verify checks a seat token against a specific table.
func (gs *GameServer) Verify(gameID uuid.UUID, token string) (auth.Seat, error) {
	seat, err := gs.Seats.Verify(token)
	if err != nil {
		return auth.Seat{}, err
	}
	if seat.GameID != gameID {
		return auth.Seat{}, fmt.Errorf("%w: seat belongs to another game", auth.ErrInvalidSeat)
	}
	return seat, nil
}

func (gs *GameServer) lookup(gameID uuid.UUID) (*game.Game, *table, error) {
	g, ok := gs.GameStore.GetGame(gameID)
	if !ok {
		return nil, nil, ErrGameNotFound
	}
	gs.mu.Lock()
	t, ok := gs.tables[gameID]
	gs.mu.Unlock()
	if !ok {
		return nil, nil, ErrGameNotFound
	}
	return g, t, nil
}

// attach registers c as the live connection of player, replacing and
// closing any previous one.
func (gs *GameServer) attach(gameID uuid.UUID, player string, c *websocket.Conn) {
	gs.mu.Lock()
	t, ok := gs.tables[gameID]
	if !ok {
		gs.mu.Unlock()
		return
	}
	old := t.conns[player]
	t.conns[player] = c
	gs.mu.Unlock()

	if old != nil && old != c {
		old.Close(websocket.StatusPolicyViolation, "Connected from another session.")
	}
}

func (gs *GameServer) detach(gameID uuid.UUID, player string, c *websocket.Conn) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if t, ok := gs.tables[gameID]; ok && t.conns[player] == c {
		delete(t.conns, player)
	}
}

// broadcast sends every connected player their own view of g and publishes
// the spectator view. Views are built under the game lock and written
// after it is released.
func (gs *GameServer) broadcast(ctx context.Context, g *game.Game) {
	gs.mu.Lock()
	var conns map[string]*websocket.Conn
	if t, ok := gs.tables[g.ID]; ok {
		conns = make(map[string]*websocket.Conn, len(t.conns))
		for name, c := range t.conns {
			conns[name] = c
		}
	}
	gs.mu.Unlock()

	g.Mu.Lock()
	views := make(map[string]game.Snapshot, len(conns))
	for name := range conns {
		views[name] = g.Snapshot(name)
	}
	public := g.Snapshot("")
	g.Mu.Unlock()

	for name, c := range conns {
		sendWsMessage(ctx, gs.Logger, c, stateMessage{Type: "state", State: views[name]})
	}
	if err := gs.Publisher.PublishSnapshot(ctx, g.ID, public); err != nil {
		gs.Logger.WithError(err).WithField("game", g.ID).Warn("failed to publish snapshot")
	}
}

// PublicState returns the spectator view of a game. Games no longer held
// in memory fall back to the last snapshot published to Redis.
func (gs *GameServer) PublicState(ctx context.Context, gameID uuid.UUID) (json.RawMessage, error) {
	if g, ok := gs.GameStore.GetGame(gameID); ok {
		g.Mu.Lock()
		s := g.Snapshot("")
		g.Mu.Unlock()
		return json.Marshal(s)
	}
	latest, err := gs.Publisher.Latest(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, ErrGameNotFound
	}
	return latest, nil
}

// Sweep drops finished games. A game is removed on the first sweep after
// the one that saw it finish, so clients get time to read the result.
func (gs *GameServer) Sweep(ctx context.Context) int {
	removed := 0
	for _, id := range gs.GameStore.Finished() {
		gs.mu.Lock()
		t, ok := gs.tables[id]
		if ok && !t.overSeen {
			t.overSeen = true
			gs.mu.Unlock()
			continue
		}
		delete(gs.tables, id)
		gs.mu.Unlock()

		if t != nil {
			for _, c := range t.conns {
				c.Close(websocket.StatusNormalClosure, "Game over.")
			}
		}
		gs.GameStore.DeleteGame(id)
		removed++
		gs.Logger.WithField("game", id).Info("finished game removed")
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (gs *GameServer) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gs.Sweep(ctx)
		}
	}
}
