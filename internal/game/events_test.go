package game

import (
	"math/rand"
	"testing"

	"github.com/jason-s-yu/bang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventNamed(t *testing.T, name string) *EventCard {
	t.Helper()
	for _, e := range append(highNoonDeck(), fistfulDeck()...) {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("no event card %q", name)
	return nil
}

// forceEvent puts the named event on top of the event deck and draws it.
func forceEvent(t *testing.T, g *Game, name string) {
	t.Helper()
	g.eventDeck = append([]*EventCard{eventNamed(t, name)}, g.eventDeck...)
	ev := g.DrawEventCard()
	require.NotNil(t, ev)
	require.Equal(t, name, ev.Name)
}

// finishTurn resolves a pending draw if needed, empties every hand and ends
// the current turn.
func finishTurn(g *Game) {
	if g.AwaitingDraw() {
		g.DrawPhase(g.CurrentPlayer(), DrawChoice{Suit: "hearts"})
	}
	clearHands(g)
	g.EndTurn()
}

func TestBuildEventDeck(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	noon := buildEventDeck([]string{models.ExpansionHighNoon}, rng)
	require.Len(t, noon, 15)
	assert.Equal(t, EventHighNoon, noon[14].Name)
	assert.True(t, noon[14].Final)
	for _, e := range noon[:14] {
		assert.False(t, e.Final, e.Name)
	}

	fistful := buildEventDeck([]string{models.ExpansionFistful}, rng)
	require.Len(t, fistful, 15)
	assert.Equal(t, EventFistfulOfCards, fistful[14].Name)

	both := buildEventDeck([]string{models.ExpansionDodgeCity, models.ExpansionFistful, models.ExpansionHighNoon}, rng)
	assert.Equal(t, models.ExpansionFistful, both[0].Expansion)

	assert.Empty(t, buildEventDeck([]string{models.ExpansionDodgeCity}, rng))
	assert.Empty(t, buildEventDeck(nil, rng))
}

func TestEventDrawClearsFlags(t *testing.T) {
	g, _, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	g.flags.SetBool(FlagNoBang)
	g.flags.SetStr(FlagTurnSuit, "spades")

	forceEvent(t, g, EventThirst)

	assert.Equal(t, []string{FlagDrawCount}, g.EventFlags().Names())
	assert.Equal(t, EventThirst, g.CurrentEvent().Name)
}

func TestSpentEventDeckKeepsCurrentEvent(t *testing.T) {
	g, _, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	forceEvent(t, g, EventSermon)
	g.eventDeck = nil

	assert.Nil(t, g.DrawEventCard())
	assert.Equal(t, EventSermon, g.CurrentEvent().Name)
	assert.True(t, g.EventFlags().Bool(FlagNoBang))
}

func TestEventCadence(t *testing.T) {
	g, _, _ := setupTestGame(t, Options{Expansions: []string{models.ExpansionHighNoon}, EventCadence: 2}, neutralSeats[:2]...)
	require.Equal(t, 15, g.EventsLeft())
	require.Nil(t, g.CurrentEvent(), "no event on the first Sheriff turn")

	// Sheriff turns 2 and 4 draw; turn 3 does not.
	finishTurn(g)
	finishTurn(g)
	assert.Equal(t, 14, g.EventsLeft())
	assert.NotNil(t, g.CurrentEvent())

	finishTurn(g)
	finishTurn(g)
	assert.Equal(t, 14, g.EventsLeft())

	finishTurn(g)
	finishTurn(g)
	assert.Equal(t, 13, g.EventsLeft())
}

func TestSermonBansBang(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	clearHands(g)
	forceEvent(t, g, EventSermon)
	bang := card(models.Bang)
	give(players[0], bang)

	g.PlayCard(players[0], bang, players[1])

	assert.Contains(t, players[0].Hand, bang)
	assert.Equal(t, players[1].MaxHealth, players[1].Health)
}

func TestShootoutAllowsTwoBangs(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p0, p1 := players[0], players[1]
	clearHands(g)
	forceEvent(t, g, EventShootout)
	bangs := []*models.Card{card(models.Bang), card(models.Bang), card(models.Bang)}
	give(p0, bangs...)

	for _, b := range bangs {
		g.PlayCard(p0, b, p1)
	}

	assert.Equal(t, p1.MaxHealth-2, p1.Health)
	assert.Len(t, p0.Hand, 1)
}

func TestThirstAndTrainArrival(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	forceEvent(t, g, EventThirst)
	finishTurn(g)
	assert.Len(t, players[1].Hand, 1)

	forceEvent(t, g, EventTrainArrival)
	finishTurn(g)
	assert.Len(t, players[2].Hand, 3)
}

func TestDoctorHealsTheWeakest(t *testing.T) {
	g, players, rec := setupTestGame(t, Options{}, neutralSeats[:3]...)
	players[1].Health = 2
	players[2].Health = 3

	forceEvent(t, g, EventDoctor)

	assert.Equal(t, 3, players[1].Health)
	assert.Equal(t, 3, players[2].Health)
	assert.Equal(t, []string{"p1:1"}, rec.healed)
}

func TestReverendBansBeerAndCapsHand(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p0 := players[0]
	clearHands(g)
	forceEvent(t, g, EventReverend)
	p0.Health = 3
	beer := card(models.Beer)
	give(p0, beer)

	g.PlayCard(p0, beer, nil)
	assert.Equal(t, 3, p0.Health)
	assert.Contains(t, p0.Hand, beer)

	give(p0, card(models.Bang), card(models.Missed), card(models.Saloon))
	g.EndTurn()
	assert.Len(t, p0.Hand, 2)
}

func TestDaltonsDiscardBlueCards(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p1, p2 := players[1], players[2]
	barrel, mustang, scope := card(models.Barrel), card(models.Mustang), card(models.Scope)
	p1.Equipment.Add(barrel)
	p2.Equipment.Add(mustang)
	p2.Equipment.Add(scope)

	forceEvent(t, g, EventDaltons)

	assert.Empty(t, p1.Equipment)
	assert.Equal(t, models.Equipment{scope}, p2.Equipment)
}

func TestBlessingAndCurseOverrideDrawChecks(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p0, p1 := players[0], players[1]
	clearHands(g)
	p1.Equipment.Add(card(models.Barrel))

	forceEvent(t, g, EventCurse)
	g.Deck.PushTop(models.MustCard(models.Beer, models.Hearts, 4))
	give(p0, card(models.Bang))
	g.PlayCard(p0, p0.Hand[0], p1)
	assert.Equal(t, p1.MaxHealth-1, p1.Health, "every check reads as a Spade")

	forceEvent(t, g, EventBlessing)
	p1.Equipment.Add(card(models.Jail))
	g.Deck.PushTop(models.MustCard(models.Beer, models.Spades, 4))
	g.EndTurn()
	assert.Same(t, p1, g.CurrentPlayer(), "every check reads as a Heart")
}

func TestGoldRushReversesTurns(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	forceEvent(t, g, EventGoldRush)
	finishTurn(g)
	assert.Same(t, players[2], g.CurrentPlayer())
}

func TestHangoverSuspendsAbilities(t *testing.T) {
	seats := []seatSetup{
		{models.Sheriff, models.WillyTheKid},
		{models.Outlaw, models.ChuckWengam},
		{models.Renegade, models.DocHolyday},
	}
	g, players, _ := setupTestGame(t, Options{}, seats...)
	p0, p1 := players[0], players[1]
	clearHands(g)
	require.True(t, p0.Meta.UnlimitedBang)

	forceEvent(t, g, EventHangover)
	assert.False(t, p0.Meta.UnlimitedBang)

	bangs := []*models.Card{card(models.Bang), card(models.Bang)}
	give(p0, bangs...)
	for _, b := range bangs {
		g.PlayCard(p0, b, p1)
	}
	assert.Equal(t, p1.MaxHealth-1, p1.Health)

	forceEvent(t, g, EventThirst)
	assert.True(t, p0.Meta.UnlimitedBang)
}

func TestHandcuffsLockTheSuit(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p1, p2 := players[1], players[2]
	forceEvent(t, g, EventHandcuffs)
	clearHands(g)
	g.EndTurn()
	require.Same(t, p1, g.CurrentPlayer())
	require.True(t, g.AwaitingDraw())

	g.DrawPhase(p1, DrawChoice{})
	require.True(t, g.AwaitingDraw(), "a suit must be named")

	g.DrawPhase(p1, DrawChoice{Suit: "hearts"})
	require.False(t, g.AwaitingDraw())
	assert.Equal(t, "hearts", g.EventFlags().Str(FlagTurnSuit))

	clearHands(g)
	clubs := models.MustCard(models.Bang, models.Clubs, 3)
	hearts := models.MustCard(models.Bang, models.Hearts, 3)
	give(p1, clubs, hearts)
	g.PlayCard(p1, clubs, p2)
	assert.Contains(t, p1.Hand, clubs)
	g.PlayCard(p1, hearts, p2)
	assert.Equal(t, p2.MaxHealth-1, p2.Health)

	g.EndTurn()
	assert.False(t, g.EventFlags().Has(FlagTurnSuit))
}

func TestGhostTown(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats...)
	p3 := players[3]
	clearHands(g)
	g.damage(p3, nil, p3.Health)
	require.True(t, p3.Dead)
	require.NotContains(t, g.TurnOrder(), 3)

	forceEvent(t, g, EventGhostTown)
	assert.True(t, p3.Alive())
	assert.True(t, p3.Meta.Ghost)
	assert.Contains(t, g.TurnOrder(), 3)

	g.damage(p3, nil, 1)
	assert.Equal(t, 0, p3.Health)
	assert.True(t, p3.Alive(), "ghosts cannot be hurt")

	forceEvent(t, g, EventSermon)
	assert.False(t, p3.Alive())
	assert.NotContains(t, g.TurnOrder(), 3)
}

func TestGhostPlaysOneTurn(t *testing.T) {
	g, players, rec := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p0, p1 := players[0], players[1]
	clearHands(g)
	g.damage(p1, nil, p1.Health)
	require.True(t, p1.Dead)
	forceEvent(t, g, EventGhostTown)

	g.EndTurn()
	require.Same(t, p1, g.CurrentPlayer())
	assert.Len(t, p1.Hand, 2)

	g.EndTurn()
	assert.False(t, p1.Alive())
	assert.Empty(t, p1.Hand)
	assert.Equal(t, []string{"p1", "p2"}, rec.turns)
	assert.False(t, p0.Dead)
}

func TestRussianRoulette(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p0, p1, p2 := players[0], players[1], players[2]
	clearHands(g)
	give(p0, card(models.Missed))

	forceEvent(t, g, EventRussianRoulette)

	assert.Empty(t, p0.Hand)
	assert.Equal(t, p0.MaxHealth, p0.Health)
	assert.Equal(t, p1.MaxHealth-2, p1.Health)
	assert.Equal(t, p2.MaxHealth, p2.Health)
}

func TestPeyoteGuessing(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p1 := players[1]
	forceEvent(t, g, EventPeyote)
	clearHands(g)
	g.EndTurn()
	require.True(t, g.AwaitingDraw())

	g.Deck.PushTop(
		models.MustCard(models.Bang, models.Hearts, 2),
		models.MustCard(models.Bang, models.Diamonds, 3),
		models.MustCard(models.Bang, models.Hearts, 4),
	)
	g.DrawPhase(p1, DrawChoice{Guesses: []string{"red", "red", "black"}})

	assert.Len(t, p1.Hand, 2)
	assert.Equal(t, PhasePlay, g.Phase())
}

func TestHardLiquorHealsInsteadOfDrawing(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p1 := players[1]
	forceEvent(t, g, EventHardLiquor)
	clearHands(g)
	p1.Health = 2
	g.EndTurn()
	require.True(t, g.AwaitingDraw())

	g.DrawPhase(p1, DrawChoice{Heal: true})

	assert.Equal(t, 3, p1.Health)
	assert.Empty(t, p1.Hand)
}

func TestAbandonedMineDrawsFromDiscard(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p1 := players[1]
	forceEvent(t, g, EventAbandonedMine)
	clearHands(g)
	x, y := card(models.Beer), card(models.Saloon)
	g.discard(x)
	g.discard(y)

	g.EndTurn()

	assert.Equal(t, []*models.Card{y, x}, p1.Hand)
}

func TestLawOfTheWest(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p1, p2 := players[1], players[2]
	forceEvent(t, g, EventLawOfTheWest)
	clearHands(g)
	beer, bang := card(models.Beer), card(models.Bang)
	g.Deck.PushTop(beer, bang)

	g.EndTurn()
	require.Equal(t, []*models.Card{beer, bang}, p1.Hand)
	require.Same(t, bang, p1.Meta.MustPlay)

	g.PlayCard(p1, beer, nil)
	assert.Contains(t, p1.Hand, beer)

	g.PlayCard(p1, bang, p2)
	assert.Equal(t, p2.MaxHealth-1, p2.Health)
	assert.Nil(t, p1.Meta.MustPlay)
}

func TestRanchRedraw(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p1 := players[1]
	forceEvent(t, g, EventRanch)
	clearHands(g)
	a, b, c := card(models.Beer), card(models.Bang), card(models.Missed)
	g.Deck.PushTop(a, b, c)
	g.EndTurn()
	require.True(t, g.AwaitingDraw())

	g.DrawPhase(p1, DrawChoice{RanchDiscards: []int{0}})

	assert.Equal(t, []*models.Card{b, c}, p1.Hand)
}

func TestVendettaRepeatsTurnOnce(t *testing.T) {
	g, players, rec := setupTestGame(t, Options{}, neutralSeats[:3]...)
	forceEvent(t, g, EventVendetta)
	clearHands(g)
	g.Deck.PushTop(models.MustCard(models.Beer, models.Hearts, 9))

	g.EndTurn()
	require.Same(t, players[0], g.CurrentPlayer())
	assert.True(t, players[0].Meta.TurnRepeated)

	g.Deck.PushTop(models.MustCard(models.Beer, models.Hearts, 9))
	clearHands(g)
	g.EndTurn()
	assert.Same(t, players[1], g.CurrentPlayer())
	assert.Equal(t, []string{"p0", "p1"}, rec.turns)
}

func TestDeadManReturns(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p1 := players[1]
	clearHands(g)
	g.damage(p1, nil, p1.Health)
	require.True(t, p1.Dead)
	forceEvent(t, g, EventDeadMan)

	g.EndTurn()

	assert.Same(t, p1, g.CurrentPlayer())
	assert.False(t, p1.Dead)
	assert.Equal(t, 2, p1.Health)
	assert.Len(t, p1.Hand, 4)
	assert.Contains(t, g.TurnOrder(), 1)
}

func TestAmbushDistance(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats...)
	players[2].Equipment.Add(card(models.Mustang))
	require.Equal(t, 3, g.DistanceTo(players[0], players[2]))

	forceEvent(t, g, EventAmbush)
	assert.Equal(t, 1, g.DistanceTo(players[0], players[2]))
}

func TestBloodBrothers(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p1, p2 := players[1], players[2]
	forceEvent(t, g, EventBloodBrothers)
	p2.Health = 2
	clearHands(g)
	g.EndTurn()
	require.True(t, g.AwaitingDraw())

	g.DrawPhase(p1, DrawChoice{GiveLife: "p2"})

	assert.Equal(t, p1.MaxHealth-1, p1.Health)
	assert.Equal(t, 3, p2.Health)
	assert.Len(t, p1.Hand, 2)
}

func TestNewIdentitySwap(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p1 := players[1]
	forceEvent(t, g, EventNewIdentity)
	clearHands(g)
	g.EndTurn()
	require.True(t, g.AwaitingDraw())
	offer := p1.Meta.IdentityOffer
	require.NotEqual(t, models.CharacterNone, offer)

	g.DrawPhase(p1, DrawChoice{NewIdentity: true})

	assert.Equal(t, offer, p1.Character)
	assert.True(t, p1.HasAbility(offer))
	assert.False(t, p1.HasAbility(models.ChuckWengam))
	assert.Equal(t, 2, p1.Health)
	assert.Contains(t, g.characterPool, models.ChuckWengam)
	assert.NotContains(t, g.characterPool, offer)
}

func TestStartAndHandDamage(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p1, p2 := players[1], players[2]
	forceEvent(t, g, EventHighNoon)
	clearHands(g)
	g.EndTurn()
	assert.Equal(t, p1.MaxHealth-1, p1.Health)

	forceEvent(t, g, EventFistfulOfCards)
	clearHands(g)
	give(p2, card(models.Beer), card(models.Bang))
	g.EndTurn()
	assert.Equal(t, p2.MaxHealth-2, p2.Health)
}
