package game

import (
	"math/rand"

	"github.com/jason-s-yu/bang/internal/models"
	"github.com/sirupsen/logrus"
)

// Deck is the draw pile (Cards[0] is the top) plus the discard pile (the
// last element is the top).
type Deck struct {
	Cards   []*models.Card
	Discard []*models.Card

	rng *rand.Rand
	log *logrus.Entry
}

func newDeck(cards []*models.Card, rng *rand.Rand, log *logrus.Entry) *Deck {
	return &Deck{Cards: cards, rng: rng, log: log}
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw takes the top card. An empty draw pile is refilled by shuffling the
// discard pile; if that is empty too, Draw returns nil.
func (d *Deck) Draw() *models.Card {
	if len(d.Cards) == 0 {
		if len(d.Discard) == 0 {
			d.log.Debug("deck and discard pile empty, nothing to draw")
			return nil
		}
		d.Cards = append(d.Cards, d.Discard...)
		d.Discard = nil
		d.Shuffle()
		d.log.WithField("size", len(d.Cards)).Info("reshuffled discard pile into deck")
	}
	c := d.Cards[0]
	d.Cards = d.Cards[1:]
	return c
}

// PushTop places cards on top of the draw pile so that the first argument
// is drawn first.
func (d *Deck) PushTop(cards ...*models.Card) {
	d.Cards = append(append(make([]*models.Card, 0, len(cards)+len(d.Cards)), cards...), d.Cards...)
}

func (d *Deck) PushBottom(cards ...*models.Card) {
	d.Cards = append(d.Cards, cards...)
}

// Top returns the top of the draw pile without drawing it.
func (d *Deck) Top() *models.Card {
	if len(d.Cards) == 0 {
		return nil
	}
	return d.Cards[0]
}

func (d *Deck) Len() int { return len(d.Cards) }

// Put adds c to the discard pile.
func (d *Deck) Put(c *models.Card) {
	c.Active = c.Kind != models.KindGreen
	d.Discard = append(d.Discard, c)
}

// DiscardTop returns the top of the discard pile.
func (d *Deck) DiscardTop() *models.Card {
	if len(d.Discard) == 0 {
		return nil
	}
	return d.Discard[len(d.Discard)-1]
}

// TakeDiscardTop removes and returns the top of the discard pile.
func (d *Deck) TakeDiscardTop() *models.Card {
	c := d.DiscardTop()
	if c != nil {
		d.Discard = d.Discard[:len(d.Discard)-1]
	}
	return c
}
