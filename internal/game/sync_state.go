package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/bang/internal/models"
)

// CardView is a card as a given viewer may see it. Hidden cards carry no
// identity at all.
type CardView struct {
	ID     uuid.UUID       `json:"id"`
	Name   models.CardName `json:"name"`
	Suit   models.Suit     `json:"suit"`
	Rank   int             `json:"rank,omitempty"`
	Active bool            `json:"active,omitempty"`
}

func viewOf(c *models.Card) CardView {
	return CardView{ID: c.ID, Name: c.Name, Suit: c.Suit, Rank: c.Rank, Active: c.Active}
}

func viewsOf(cards []*models.Card) []CardView {
	out := make([]CardView, 0, len(cards))
	for _, c := range cards {
		out = append(out, viewOf(c))
	}
	return out
}

// PlayerView is one seat from the perspective of the requesting player.
type PlayerView struct {
	Name          string      `json:"name"`
	Role          models.Role `json:"role,omitempty"`
	Character     string      `json:"character,omitempty"`
	Health        int         `json:"health"`
	MaxHealth     int         `json:"maxHealth"`
	HandSize      int         `json:"handSize"`
	Hand          []CardView  `json:"hand,omitempty"`
	Equipment     []CardView  `json:"equipment"`
	Dead          bool        `json:"dead"`
	Ghost         bool        `json:"ghost,omitempty"`
	IsCurrentTurn bool        `json:"isCurrentTurn"`
	Distance      int         `json:"distance,omitempty"`
}

// Snapshot is the serializable game state sent to one viewer.
type Snapshot struct {
	GameID       uuid.UUID    `json:"gameId"`
	Started      bool         `json:"started"`
	GameOver     bool         `json:"gameOver"`
	Winner       string       `json:"winner,omitempty"`
	Phase        Phase        `json:"phase"`
	CurrentTurn  string       `json:"currentTurn,omitempty"`
	AwaitingDraw bool         `json:"awaitingDraw"`
	DeckSize     int          `json:"deckSize"`
	DiscardSize  int          `json:"discardSize"`
	DiscardTop   *CardView    `json:"discardTop,omitempty"`
	Event        *EventCard   `json:"event,omitempty"`
	EventsLeft   int          `json:"eventsLeft"`
	Flags        []string     `json:"flags,omitempty"`
	GeneralStore []CardView   `json:"generalStore,omitempty"`
	StorePicker  string       `json:"storePicker,omitempty"`
	Players      []PlayerView `json:"players"`
}

// Snapshot builds the view of the game for viewer. Roles stay hidden except
// the Sheriff's, the viewer's own and those of eliminated players; only the
// viewer's hand is revealed. Everything is revealed once the game is over.
// Assumes Mu is held by the caller.
func (g *Game) Snapshot(viewer string) Snapshot {
	s := Snapshot{
		GameID:       g.ID,
		Started:      g.started,
		GameOver:     g.over,
		Winner:       g.winner,
		Phase:        g.phase,
		AwaitingDraw: g.AwaitingDraw(),
		DeckSize:     g.Deck.Len(),
		DiscardSize:  len(g.Deck.Discard),
		Event:        g.currentEvent,
		EventsLeft:   len(g.eventDeck),
		Flags:        g.flags.Names(),
	}
	if g.current != nil {
		s.CurrentTurn = g.current.Name
	}
	if top := g.Deck.DiscardTop(); top != nil {
		v := viewOf(top)
		s.DiscardTop = &v
	}
	if g.store != nil {
		s.GeneralStore = viewsOf(g.store.cards)
		if picker := g.GeneralStoreTurn(); picker != nil {
			s.StorePicker = picker.Name
		}
	}

	me := g.Player(viewer)
	for _, p := range g.players {
		pv := PlayerView{
			Name:          p.Name,
			Health:        p.Health,
			MaxHealth:     p.MaxHealth,
			HandSize:      len(p.Hand),
			Equipment:     viewsOf(p.Equipment),
			Dead:          p.Dead,
			Ghost:         p.Meta.Ghost,
			IsCurrentTurn: p == g.current,
		}
		if p.Character != models.CharacterNone {
			pv.Character = p.Character.String()
		}
		if p == me || p.Role == models.Sheriff || p.Dead || g.over {
			pv.Role = p.Role
		}
		if p == me || g.over {
			pv.Hand = viewsOf(p.Hand)
		}
		if me != nil && p != me && g.started && p.Alive() && me.Alive() {
			pv.Distance = g.DistanceTo(me, p)
		}
		s.Players = append(s.Players, pv)
	}
	return s
}
