package game

import (
	"github.com/jason-s-yu/bang/internal/models"
	"github.com/sirupsen/logrus"
)

// generalStore is an open General Store: revealed cards waiting to be
// picked in seating order.
type generalStore struct {
	cards []*models.Card
	order []*models.Player
	next  int
}

// StartGeneralStore reveals one card per living player; p picks first.
// Only the current player can open a store, and only one at a time.
func (g *Game) StartGeneralStore(p *models.Player) bool {
	if !g.canAct(p, "start_general_store") {
		return false
	}
	return g.startGeneralStore(p)
}

func (g *Game) startGeneralStore(p *models.Player) bool {
	order := append([]*models.Player{p}, g.othersFrom(p)...)
	var live []*models.Player
	for _, o := range order {
		if !o.Dead {
			live = append(live, o)
		}
	}
	var cards []*models.Card
	for range live {
		c := g.Deck.Draw()
		if c == nil {
			break
		}
		cards = append(cards, c)
	}
	if len(cards) == 0 {
		return false
	}
	g.store = &generalStore{cards: cards, order: live}
	g.Log.WithFields(logrus.Fields{"player": p.Name, "cards": len(cards)}).Info("general store opened")
	return true
}

// GeneralStoreCards returns the cards still on offer, nil when closed.
func (g *Game) GeneralStoreCards() []*models.Card {
	if g.store == nil {
		return nil
	}
	return g.store.cards
}

// GeneralStoreTurn is the player whose pick it is, nil when closed.
func (g *Game) GeneralStoreTurn() *models.Player {
	if g.store == nil || g.store.next >= len(g.store.order) {
		return nil
	}
	return g.store.order[g.store.next]
}

// GeneralStorePick takes the card at index for p. The last pick closes the
// store.
func (g *Game) GeneralStorePick(p *models.Player, index int) bool {
	const action = "general_store_pick"
	s := g.store
	switch {
	case s == nil:
		g.ignore(p, action, "no general store open")
		return false
	case p == nil || g.GeneralStoreTurn() != p:
		g.ignore(p, action, "not this player's pick")
		return false
	case index < 0 || index >= len(s.cards):
		g.ignore(p, action, "index out of range")
		return false
	}
	c := s.cards[index]
	s.cards = append(s.cards[:index], s.cards[index+1:]...)
	p.Hand = append(p.Hand, c)
	s.next++
	g.Log.WithFields(logrus.Fields{"player": p.Name, "card": c.Name}).Debug("general store pick")

	if len(s.cards) == 0 || s.next >= len(s.order) {
		for _, left := range s.cards {
			g.discard(left)
		}
		g.store = nil
		g.settle()
	}
	return true
}
