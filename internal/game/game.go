// internal/game/game.go
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/jason-s-yu/bang/internal/models"
	"github.com/sirupsen/logrus"
)

// Phase is the step of the current player's turn.
type Phase string

const (
	PhaseWaiting Phase = "waiting"
	PhaseDraw    Phase = "draw"
	PhasePlay    Phase = "play"
	PhaseDiscard Phase = "discard"
	PhaseOver    Phase = "over"
)

const (
	minPlayers = 2
	maxPlayers = 8
)

var (
	ErrNoCharacter      = errors.New("player has no character")
	ErrUnknownPlayer    = errors.New("unknown player")
	ErrDuplicatePlayer  = errors.New("player name already taken")
	ErrGameStarted      = errors.New("game already started")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrTooManyPlayers   = errors.New("too many players")
)

// Game holds the entire state for a single game instance in memory.
//
// None of the methods lock Mu themselves; callers that share a Game between
// goroutines must hold Mu around every call, the way the websocket handler
// does.
type Game struct {
	ID      uuid.UUID
	Options Options
	Log     *logrus.Entry
	Mu      sync.Mutex

	// Listeners fire in registration order. Characters append to them when
	// their ability is first installed on a player.
	Listeners Listeners

	Deck *Deck

	players   []*models.Player
	turnOrder []int // seat indices of living players, ghosts included
	current   *models.Player
	phase     Phase
	started   bool
	over      bool
	winner    string

	flags        EventFlags
	eventDeck    []*EventCard
	currentEvent *EventCard
	sheriffTurns int

	characterPool []models.CharacterID // undealt characters, for New Identity
	firstDead     *models.Player

	store     *generalStore
	frame     *playFrame
	lastDrawn *models.Card
	created   int // bonus cards currently in the game

	hooked map[hookKey]bool
	rng    *rand.Rand
}

type hookKey struct {
	player *models.Player
	id     models.CharacterID
}

// New creates an empty game. Players join with AddPlayer before StartGame.
func New(opts Options) *Game {
	opts = opts.withDefaults()
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id := uuid.New()
	g := &Game{
		ID:      id,
		Options: opts,
		Log:     logger.WithField("game", id.String()),
		phase:   PhaseWaiting,
		flags:   EventFlags{},
		hooked:  make(map[hookKey]bool),
		rng:     rand.New(rand.NewSource(opts.Seed)),
	}
	g.Deck = newDeck(models.BuildDeck(opts.Expansions), g.rng, g.Log)
	g.Deck.Shuffle()
	g.Log.WithFields(logrus.Fields{
		"seed":       opts.Seed,
		"expansions": opts.Expansions,
		"deck":       len(g.Deck.Cards),
	}).Debug("game created")
	return g
}

// AddPlayer seats p at the end of the table.
func (g *Game) AddPlayer(p *models.Player) error {
	if g.started {
		return fmt.Errorf("add player %q: %w", p.Name, ErrGameStarted)
	}
	if g.Player(p.Name) != nil {
		return fmt.Errorf("add player %q: %w", p.Name, ErrDuplicatePlayer)
	}
	if len(g.players) >= maxPlayers {
		return fmt.Errorf("add player %q: %w", p.Name, ErrTooManyPlayers)
	}
	g.players = append(g.players, p)
	g.Log.WithField("player", p.Name).Info("player joined")
	return nil
}

// RemovePlayer takes p out of the game. Before the start it simply leaves
// the table; afterwards it counts as an elimination with no killer.
func (g *Game) RemovePlayer(p *models.Player) error {
	idx := g.seat(p)
	if idx < 0 {
		return fmt.Errorf("remove player %q: %w", p.Name, ErrUnknownPlayer)
	}
	if !g.started {
		g.players = append(g.players[:idx], g.players[idx+1:]...)
		g.Log.WithField("player", p.Name).Info("player left")
		return nil
	}
	if g.over || p.Dead {
		return nil
	}
	g.Log.WithField("player", p.Name).Info("player left mid-game")
	p.Meta.Ghost = false
	g.kill(p, nil)
	g.settle()
	return nil
}

// StartGame deals roles and characters to every player that has none,
// sets health, deals opening hands and begins the Sheriff's turn.
func (g *Game) StartGame() error {
	if g.started {
		return ErrGameStarted
	}
	n := len(g.players)
	if n < minPlayers {
		return fmt.Errorf("start game with %d players: %w", n, ErrNotEnoughPlayers)
	}

	g.dealRoles()
	g.dealCharacters()

	for _, p := range g.players {
		char := models.Characters[p.Character]
		p.MaxHealth = char.MaxHealth
		if p.Role == models.Sheriff {
			p.MaxHealth++
		}
		p.Health = p.MaxHealth
		p.Dead = false
		p.Abilities = models.AbilitySet{}
		p.Abilities.Add(p.Character)
		g.installAbility(p, p.Character)
		g.refreshAbilities(p)
	}
	for _, p := range g.players {
		g.drawCards(p, p.Health)
	}

	g.eventDeck = buildEventDeck(g.Options.Expansions, g.rng)
	g.started = true
	g.rebuildTurnOrder()

	first := g.players[0]
	for _, p := range g.players {
		if p.Role == models.Sheriff {
			first = p
			break
		}
	}
	g.Log.WithFields(logrus.Fields{"players": n, "sheriff": first.Name}).Info("game started")
	g.beginTurn(first, false)
	g.settle()
	return nil
}

// dealRoles hands out the standard distribution for the table size,
// skipping players whose role was preset.
func (g *Game) dealRoles() {
	pool := models.RolesFor(len(g.players))
	for _, p := range g.players {
		if p.Role == models.RoleNone {
			continue
		}
		for i, r := range pool {
			if r == p.Role {
				pool = append(pool[:i], pool[i+1:]...)
				break
			}
		}
	}
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	for _, p := range g.players {
		if p.Role != models.RoleNone {
			continue
		}
		if len(pool) == 0 {
			p.Role = models.Outlaw
			continue
		}
		p.Role, pool = pool[0], pool[1:]
	}
}

func (g *Game) dealCharacters() {
	taken := map[models.CharacterID]bool{}
	for _, p := range g.players {
		taken[p.Character] = true
	}
	var pool []models.CharacterID
	for _, id := range models.CharacterPool(g.Options.Expansions) {
		if !taken[id] {
			pool = append(pool, id)
		}
	}
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	for _, p := range g.players {
		if p.Character != models.CharacterNone || len(pool) == 0 {
			continue
		}
		p.Character, pool = pool[0], pool[1:]
	}
	g.characterPool = pool
}

// Players returns the seating order, dead players included.
func (g *Game) Players() []*models.Player {
	out := make([]*models.Player, len(g.players))
	copy(out, g.players)
	return out
}

// Player looks a player up by name.
func (g *Game) Player(name string) *models.Player {
	for _, p := range g.players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// TurnOrder returns the seat indices of the players still taking turns.
func (g *Game) TurnOrder() []int {
	out := make([]int, len(g.turnOrder))
	copy(out, g.turnOrder)
	return out
}

func (g *Game) DiscardPile() []*models.Card { return g.Deck.Discard }

func (g *Game) CurrentEvent() *EventCard { return g.currentEvent }

func (g *Game) EventFlags() EventFlags { return g.flags }

func (g *Game) CurrentPlayer() *models.Player { return g.current }

func (g *Game) Phase() Phase { return g.phase }

func (g *Game) Started() bool { return g.started }

func (g *Game) IsOver() bool { return g.over }

// Winner is the game-over message, empty while the game runs.
func (g *Game) Winner() string { return g.winner }

func (g *Game) EventsLeft() int { return len(g.eventDeck) }

// AwaitingDraw reports whether the current player must resume the draw
// phase with an explicit choice.
func (g *Game) AwaitingDraw() bool {
	return g.current != nil && g.phase == PhaseDraw && g.current.Meta.AwaitingDraw
}

// CardCount totals every card the game tracks: deck, discard pile, hands,
// equipment and an open General Store.
func (g *Game) CardCount() int {
	n := len(g.Deck.Cards) + len(g.Deck.Discard)
	for _, p := range g.players {
		n += len(p.Hand) + len(p.Equipment)
	}
	if g.store != nil {
		n += len(g.store.cards)
	}
	return n
}

// CreatedCards is the number of bonus cards (Doc Holyday's Bang!) still in
// the game. They leave it when discarded.
func (g *Game) CreatedCards() int { return g.created }

// SetAutoResponse toggles automatic Missed!/Beer responses for p.
func (g *Game) SetAutoResponse(p *models.Player, enabled bool) {
	p.Meta.NoAutoResponse = !enabled
}

func (g *Game) seat(p *models.Player) int {
	for i, x := range g.players {
		if x == p {
			return i
		}
	}
	return -1
}

func (g *Game) rebuildTurnOrder() {
	g.turnOrder = g.turnOrder[:0]
	for i, p := range g.players {
		if p.Alive() {
			g.turnOrder = append(g.turnOrder, i)
		}
	}
}

// living returns the players still in the game, ghosts excluded.
func (g *Game) living() []*models.Player {
	var out []*models.Player
	for _, p := range g.players {
		if !p.Dead {
			out = append(out, p)
		}
	}
	return out
}

// direction is +1 clockwise, -1 under Gold Rush.
func (g *Game) direction() int {
	if g.flags.Bool(FlagReverseTurn) {
		return -1
	}
	return 1
}

// nextAlive returns the next player after p in turn direction who takes
// turns, or p itself when nobody else does.
func (g *Game) nextAlive(p *models.Player) *models.Player {
	n := len(g.players)
	start := g.seat(p)
	dir := g.direction()
	for i := 1; i <= n; i++ {
		c := g.players[((start+dir*i)%n+n)%n]
		if c.Alive() {
			return c
		}
	}
	return p
}

// othersFrom lists the other active players in turn order starting after p.
func (g *Game) othersFrom(p *models.Player) []*models.Player {
	var out []*models.Player
	n := len(g.players)
	start := g.seat(p)
	dir := g.direction()
	for i := 1; i < n; i++ {
		c := g.players[((start+dir*i)%n+n)%n]
		if c.Alive() {
			out = append(out, c)
		}
	}
	return out
}

func (g *Game) ignore(p *models.Player, action, reason string) {
	name := ""
	if p != nil {
		name = p.Name
	}
	g.Log.WithFields(logrus.Fields{"player": name, "action": action}).Debugf("ignored: %s", reason)
}
