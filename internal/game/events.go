package game

import (
	"math/rand"

	"github.com/jason-s-yu/bang/internal/models"
	"github.com/sirupsen/logrus"
)

// EventCard is a global rule modifier from High Noon or A Fistful of Cards.
type EventCard struct {
	Name      string `json:"name"`
	Expansion string `json:"expansion"`
	Final     bool   `json:"final,omitempty"`

	apply func(g *Game)
}

// High Noon.
const (
	EventBlessing     = "Blessing"
	EventCurse        = "Curse"
	EventDaltons      = "The Daltons"
	EventDoctor       = "The Doctor"
	EventGhostTown    = "Ghost Town"
	EventGoldRush     = "Gold Rush"
	EventHangover     = "Hangover"
	EventHandcuffs    = "Handcuffs"
	EventNewIdentity  = "New Identity"
	EventSermon       = "The Sermon"
	EventShootout     = "Shootout"
	EventReverend     = "The Reverend"
	EventThirst       = "Thirst"
	EventTrainArrival = "Train Arrival"
	EventHighNoon     = "High Noon"
)

// A Fistful of Cards.
const (
	EventAbandonedMine   = "Abandoned Mine"
	EventAmbush          = "Ambush"
	EventBloodBrothers   = "Blood Brothers"
	EventDeadMan         = "Dead Man"
	EventHardLiquor      = "Hard Liquor"
	EventJudge           = "The Judge"
	EventRiver           = "River"
	EventLawOfTheWest    = "Law of the West"
	EventPeyote          = "Peyote"
	EventRanch           = "Ranch"
	EventRicochet        = "Ricochet"
	EventRussianRoulette = "Russian Roulette"
	EventSniper          = "Sniper"
	EventVendetta        = "Vendetta"
	EventFistfulOfCards  = "A Fistful of Cards"
)

func setsBool(names ...string) func(g *Game) {
	return func(g *Game) {
		for _, n := range names {
			g.flags.SetBool(n)
		}
	}
}

func setsInt(name string, v int) func(g *Game) {
	return func(g *Game) { g.flags.SetInt(name, v) }
}

func setsStr(name, v string) func(g *Game) {
	return func(g *Game) { g.flags.SetStr(name, v) }
}

func highNoonDeck() []*EventCard {
	e := models.ExpansionHighNoon
	return []*EventCard{
		{Name: EventBlessing, Expansion: e, apply: setsStr(FlagSuitOverride, models.Hearts.String())},
		{Name: EventCurse, Expansion: e, apply: setsStr(FlagSuitOverride, models.Spades.String())},
		{Name: EventDaltons, Expansion: e, apply: applyDaltons},
		{Name: EventDoctor, Expansion: e, apply: applyDoctor},
		{Name: EventGhostTown, Expansion: e, apply: applyGhostTown},
		{Name: EventGoldRush, Expansion: e, apply: setsBool(FlagReverseTurn)},
		{Name: EventHangover, Expansion: e, apply: setsBool(FlagNoAbilities)},
		{Name: EventHandcuffs, Expansion: e, apply: setsBool(FlagHandcuffs)},
		{Name: EventNewIdentity, Expansion: e, apply: setsBool(FlagNewIdentity)},
		{Name: EventSermon, Expansion: e, apply: setsBool(FlagNoBang)},
		{Name: EventShootout, Expansion: e, apply: setsInt(FlagBangLimit, 2)},
		{Name: EventReverend, Expansion: e, apply: func(g *Game) {
			g.flags.SetBool(FlagNoBeer)
			g.flags.SetInt(FlagHandLimit, 2)
		}},
		{Name: EventThirst, Expansion: e, apply: setsInt(FlagDrawCount, 1)},
		{Name: EventTrainArrival, Expansion: e, apply: setsInt(FlagDrawCount, 3)},
		{Name: EventHighNoon, Expansion: e, Final: true, apply: setsBool(FlagStartDamage)},
	}
}

func fistfulDeck() []*EventCard {
	e := models.ExpansionFistful
	return []*EventCard{
		{Name: EventAbandonedMine, Expansion: e, apply: setsBool(FlagAbandonedMine)},
		{Name: EventAmbush, Expansion: e, apply: setsBool(FlagAmbush)},
		{Name: EventBloodBrothers, Expansion: e, apply: setsBool(FlagBloodBrothers)},
		{Name: EventDeadMan, Expansion: e, apply: setsBool(FlagDeadMan)},
		{Name: EventHardLiquor, Expansion: e, apply: setsBool(FlagHardLiquor)},
		{Name: EventJudge, Expansion: e, apply: setsBool(FlagJudge)},
		{Name: EventRiver, Expansion: e, apply: setsBool(FlagRiver)},
		{Name: EventLawOfTheWest, Expansion: e, apply: setsBool(FlagLawOfTheWest)},
		{Name: EventPeyote, Expansion: e, apply: setsBool(FlagPeyote, FlagNoDraw)},
		{Name: EventRanch, Expansion: e, apply: setsBool(FlagRanch)},
		{Name: EventRicochet, Expansion: e, apply: setsBool(FlagRicochet)},
		{Name: EventRussianRoulette, Expansion: e, apply: applyRussianRoulette},
		{Name: EventSniper, Expansion: e, apply: setsBool(FlagSniper)},
		{Name: EventVendetta, Expansion: e, apply: setsBool(FlagVendetta)},
		{Name: EventFistfulOfCards, Expansion: e, Final: true, apply: setsBool(FlagHandDamage)},
	}
}

// buildEventDeck shuffles the event deck of the first enabled event
// expansion and forces its final card to the bottom.
func buildEventDeck(expansions []string, rng *rand.Rand) []*EventCard {
	var cards []*EventCard
	for _, e := range expansions {
		switch e {
		case models.ExpansionHighNoon:
			cards = highNoonDeck()
		case models.ExpansionFistful:
			cards = fistfulDeck()
		default:
			continue
		}
		break
	}
	if len(cards) == 0 {
		return nil
	}
	var deck []*EventCard
	var final *EventCard
	for _, c := range cards {
		if c.Final {
			final = c
			continue
		}
		deck = append(deck, c)
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	if final != nil {
		deck = append(deck, final)
	}
	return deck
}

// DrawEventCard reveals the next event: every flag is cleared, then the new
// card's effect is applied. It returns nil when the event deck is spent, in
// which case the current event stays in force.
func (g *Game) DrawEventCard() *EventCard {
	if len(g.eventDeck) == 0 {
		return nil
	}
	ev := g.eventDeck[0]
	g.eventDeck = g.eventDeck[1:]

	if g.flags.Bool(FlagGhostTown) {
		for _, p := range g.players {
			if p.Meta.Ghost && p != g.current {
				g.exorcise(p)
			}
		}
	}
	g.flags.Clear()
	g.currentEvent = ev
	ev.apply(g)
	for _, p := range g.players {
		g.refreshAbilities(p)
	}
	g.rebuildTurnOrder()
	g.Log.WithFields(logrus.Fields{"event": ev.Name, "flags": g.flags.Names()}).Info("event drawn")
	return ev
}

// applyDaltons makes everyone with a blue card in play discard one.
func applyDaltons(g *Game) {
	for _, p := range g.living() {
		for _, c := range p.Equipment {
			if c.Kind == models.KindBlue {
				p.Equipment.Remove(c)
				g.discard(c)
				break
			}
		}
	}
}

// applyDoctor heals the most wounded players by one.
func applyDoctor(g *Game) {
	low := -1
	for _, p := range g.living() {
		if low < 0 || p.Health < low {
			low = p.Health
		}
	}
	for _, p := range g.living() {
		if p.Health == low {
			g.heal(p, 1)
		}
	}
}

// applyGhostTown brings eliminated players back as ghosts for one turn.
func applyGhostTown(g *Game) {
	g.flags.SetBool(FlagGhostTown)
	for _, p := range g.players {
		if p.Dead {
			p.Meta.Ghost = true
			g.Log.WithField("player", p.Name).Info("ghost returns")
		}
	}
}

// applyRussianRoulette passes a Missed! round starting at the Sheriff; the
// first player who cannot discard one loses two health.
func applyRussianRoulette(g *Game) {
	var start *models.Player
	for _, p := range g.living() {
		if p.Role == models.Sheriff {
			start = p
			break
		}
	}
	if start == nil {
		return
	}
	order := append([]*models.Player{start}, g.othersFrom(start)...)
	for _, p := range order {
		if p.Dead {
			continue
		}
		if m := p.FindInHand(models.Missed); m != nil && !p.Meta.NoAutoResponse {
			g.respond(p, m, false)
			continue
		}
		g.damage(p, nil, 2)
		return
	}
}
