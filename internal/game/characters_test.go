package game

import (
	"testing"

	"github.com/jason-s-yu/bang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seatsWith replaces the character of one neutral seat.
func seatsWith(n, seat int, id models.CharacterID) []seatSetup {
	seats := append([]seatSetup(nil), neutralSeats[:n]...)
	seats[seat].char = id
	return seats
}

// shootAt has the current player fire a fresh Bang! at target.
func shootAt(g *Game, target *models.Player) {
	p := g.CurrentPlayer()
	b := card(models.Bang)
	give(p, b)
	g.PlayCard(p, b, target)
}

func TestBartCassidyDrawsOnDamage(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 1, models.BartCassidy)...)
	clearHands(g)

	shootAt(g, players[1])

	assert.Equal(t, players[1].MaxHealth-1, players[1].Health)
	assert.Len(t, players[1].Hand, 1)
}

func TestElGringoTakesFromAttacker(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 1, models.ElGringo)...)
	p0, p1 := players[0], players[1]
	clearHands(g)
	beer := card(models.Beer)
	give(p0, beer)

	shootAt(g, p1)

	assert.Empty(t, p0.Hand)
	assert.Equal(t, []*models.Card{beer}, p1.Hand)
}

func TestJourdonnaisBuiltinBarrel(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 1, models.Jourdonnais)...)
	p1 := players[1]
	clearHands(g)
	g.Deck.PushTop(models.MustCard(models.Beer, models.Hearts, 6))

	shootAt(g, p1)

	assert.Equal(t, p1.MaxHealth, p1.Health)
	assert.True(t, p1.Meta.Dodged)
}

func TestLuckyDukeFlipsTwice(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 1, models.LuckyDuke)...)
	p1 := players[1]
	clearHands(g)
	p1.Equipment.Add(card(models.Barrel))
	g.Deck.PushTop(
		models.MustCard(models.Beer, models.Spades, 6),
		models.MustCard(models.Beer, models.Hearts, 6),
	)

	shootAt(g, p1)

	assert.Equal(t, p1.MaxHealth, p1.Health)
}

func TestLuckyDukeDynamiteKeepsSafeFlip(t *testing.T) {
	g, players, rec := setupTestGame(t, Options{}, seatsWith(3, 1, models.LuckyDuke)...)
	p1, p2 := players[1], players[2]
	clearHands(g)
	dynamite := card(models.Dynamite)
	_, ok := p1.Equipment.Add(dynamite)
	require.True(t, ok)
	g.Deck.PushTop(
		models.MustCard(models.Beer, models.Hearts, 6),
		models.MustCard(models.Beer, models.Spades, 5),
	)

	g.EndTurn()

	assert.Equal(t, p1.MaxHealth, p1.Health)
	assert.Empty(t, rec.damaged)
	assert.Same(t, dynamite, p2.Equipment.Get(models.Dynamite))
}

func TestLuckyDukeDynamiteBothFlipsBlast(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 1, models.LuckyDuke)...)
	p1 := players[1]
	clearHands(g)
	_, ok := p1.Equipment.Add(card(models.Dynamite))
	require.True(t, ok)
	g.Deck.PushTop(
		models.MustCard(models.Beer, models.Spades, 3),
		models.MustCard(models.Beer, models.Spades, 9),
	)

	g.EndTurn()

	assert.Equal(t, p1.MaxHealth-3, p1.Health)
	assert.False(t, p1.Equipment.Has(models.Dynamite))
}

func TestSlabTheKillerNeedsTwoMissed(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.SlabTheKiller)...)
	p0, p1 := players[0], players[1]
	clearHands(g)
	first := card(models.Missed)
	give(p1, first)

	shootAt(g, p1)
	assert.Equal(t, p1.MaxHealth-1, p1.Health)
	assert.Equal(t, []*models.Card{first}, p1.Hand, "a lone Missed! is not spent")

	p0.Meta.BangsPlayed = 0
	give(p1, card(models.Missed))
	shootAt(g, p1)
	assert.Equal(t, p1.MaxHealth-1, p1.Health)
	assert.Empty(t, p1.Hand)
}

func TestWillyTheKidUnlimitedBang(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.WillyTheKid)...)
	p1 := players[1]
	clearHands(g)

	for i := 0; i < 3; i++ {
		shootAt(g, p1)
	}

	assert.Equal(t, p1.MaxHealth-3, p1.Health)
}

func TestCalamityJanetPlaysMissedAsBang(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.CalamityJanet)...)
	p0, p1 := players[0], players[1]
	clearHands(g)
	missed := card(models.Missed)
	give(p0, missed)

	g.PlayCard(p0, missed, p1)

	assert.Equal(t, p1.MaxHealth-1, p1.Health)
	assert.Equal(t, 1, p0.Meta.BangsPlayed)
}

func TestSuzyLafayetteRefillsEmptyHand(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.SuzyLafayette)...)
	clearHands(g)

	shootAt(g, players[1])

	assert.Len(t, players[0].Hand, 1)
}

func TestVultureSamCollectsTheDead(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 2, models.VultureSam)...)
	p1, p2 := players[1], players[2]
	clearHands(g)
	bang, mustang := card(models.Bang), card(models.Mustang)
	give(p1, bang)
	p1.Equipment.Add(mustang)
	discards := len(g.DiscardPile())

	g.damage(p1, nil, p1.Health)

	require.True(t, p1.Dead)
	assert.ElementsMatch(t, []*models.Card{bang, mustang}, p2.Hand)
	assert.Len(t, g.DiscardPile(), discards)
}

func TestKitCarlsonPutsOneBack(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.KitCarlson)...)
	p0 := players[0]
	require.True(t, g.AwaitingDraw())
	a, b, c := card(models.Beer), card(models.Bang), card(models.Missed)
	g.Deck.PushTop(a, b, c)
	dealt := len(p0.Hand)

	g.DrawPhase(p0, DrawChoice{Discard: 1})

	assert.Len(t, p0.Hand, dealt+2)
	assert.Contains(t, p0.Hand, a)
	assert.Contains(t, p0.Hand, c)
	assert.Same(t, b, g.Deck.Top())
	assert.Equal(t, PhasePlay, g.Phase())
}

func TestJesseJonesDrawsFromAPlayer(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.JesseJones)...)
	p0, p1 := players[0], players[1]
	require.True(t, g.AwaitingDraw())
	clearHands(g)
	beer := card(models.Beer)
	give(p1, beer)

	g.DrawPhase(p0, DrawChoice{Target: "p1"})

	assert.Len(t, p0.Hand, 2)
	assert.Contains(t, p0.Hand, beer)
	assert.Empty(t, p1.Hand)
}

func TestJesseJonesFallsBackToDeck(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.JesseJones)...)
	p0 := players[0]
	clearHands(g)

	g.DrawPhase(p0, DrawChoice{Target: "p1"})

	assert.Len(t, p0.Hand, 2)
}

func TestPedroRamirezTakesDiscard(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.PedroRamirez)...)
	p0 := players[0]
	clearHands(g)
	x := card(models.Saloon)
	g.discard(x)

	g.DrawPhase(p0, DrawChoice{FromDiscard: true})

	require.Len(t, p0.Hand, 2)
	assert.Same(t, x, p0.Hand[0])
}

func TestBlackJackShowsSecondCard(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 1, models.BlackJack)...)
	p1 := players[1]
	clearHands(g)
	g.Deck.PushTop(
		models.MustCard(models.Bang, models.Clubs, 2),
		models.MustCard(models.Bang, models.Hearts, 3),
		models.MustCard(models.Bang, models.Spades, 4),
	)

	g.EndTurn()

	assert.Len(t, p1.Hand, 3)
}

func TestBillNofaceDrawsPerWound(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 1, models.BillNoface)...)
	p1 := players[1]
	clearHands(g)
	p1.Health = p1.MaxHealth - 2

	g.EndTurn()

	assert.Len(t, p1.Hand, 3)
}

func TestPixiePeteDrawsThree(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 1, models.PixiePete)...)
	clearHands(g)

	g.EndTurn()

	assert.Len(t, players[1].Hand, 3)
}

func TestSeanMalloryKeepsTen(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.SeanMallory)...)
	p0 := players[0]
	clearHands(g)
	for i := 0; i < 8; i++ {
		give(p0, card(models.Missed))
	}

	g.EndTurn()

	assert.Len(t, p0.Hand, 8)
}

func TestTequilaJoeBeerHealsTwo(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.TequilaJoe)...)
	p0 := players[0]
	clearHands(g)
	p0.Health = 1
	beer := card(models.Beer)
	give(p0, beer)

	g.PlayCard(p0, beer, nil)

	assert.Equal(t, 3, p0.Health)
}

func TestGregDiggerAndHerbHunterProfitFromDeath(t *testing.T) {
	seats := []seatSetup{
		{models.Sheriff, models.GregDigger},
		{models.Outlaw, models.ChuckWengam},
		{models.Renegade, models.HerbHunter},
	}
	g, players, _ := setupTestGame(t, Options{}, seats...)
	p0, p1, p2 := players[0], players[1], players[2]
	clearHands(g)
	p0.Health = 1

	g.damage(p1, nil, p1.Health)

	assert.Equal(t, 3, p0.Health)
	assert.Len(t, p2.Hand, 2)
}

func TestApacheKidIgnoresDiamonds(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 1, models.ApacheKid)...)
	p0, p1 := players[0], players[1]
	clearHands(g)
	diamond := models.MustCard(models.Bang, models.Diamonds, 8)
	give(p0, diamond)

	g.PlayCard(p0, diamond, p1)
	assert.Contains(t, p0.Hand, diamond)
	assert.Equal(t, p1.MaxHealth, p1.Health)

	shootAt(g, p1)
	assert.Equal(t, p1.MaxHealth-1, p1.Health)
}

func TestBelleStarIgnoresEquipment(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.BelleStar)...)
	p1 := players[1]
	clearHands(g)
	p1.Equipment.Add(card(models.Barrel))
	g.Deck.PushTop(models.MustCard(models.Beer, models.Hearts, 6))

	shootAt(g, p1)

	assert.Equal(t, p1.MaxHealth-1, p1.Health)
}

func TestElenaFuenteAnyCardAsMissed(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 1, models.ElenaFuente)...)
	p1 := players[1]
	clearHands(g)
	give(p1, card(models.Saloon))

	shootAt(g, p1)

	assert.Equal(t, p1.MaxHealth, p1.Health)
	assert.Empty(t, p1.Hand)
}

func TestMollyStarkDrawsOutOfTurn(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 1, models.MollyStark)...)
	p1 := players[1]
	clearHands(g)
	missed := card(models.Missed)
	give(p1, missed)

	shootAt(g, p1)

	assert.Equal(t, p1.MaxHealth, p1.Health)
	require.Len(t, p1.Hand, 1)
	assert.NotSame(t, missed, p1.Hand[0])
}

func TestJohnnyKischDiscardsCopies(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.JohnnyKisch)...)
	p0, p1 := players[0], players[1]
	clearHands(g)
	theirs, mine := card(models.Mustang), card(models.Mustang)
	p1.Equipment.Add(theirs)
	give(p0, mine)

	g.PlayCard(p0, mine, nil)

	assert.True(t, p0.Equipment.Has(models.Mustang))
	assert.Empty(t, p1.Equipment)
	assert.Same(t, theirs, g.Deck.DiscardTop())
}

func TestPatBrennanTakesCardInPlay(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.PatBrennan)...)
	p0, p1 := players[0], players[1]
	require.True(t, g.AwaitingDraw())
	barrel := card(models.Barrel)
	p1.Equipment.Add(barrel)
	dealt := len(p0.Hand)

	assert.False(t, g.PatBrennanDraw(p0, p1, card(models.Scope)))
	assert.True(t, g.PatBrennanDraw(p0, p1, barrel))

	assert.Len(t, p0.Hand, dealt+1)
	assert.Contains(t, p0.Hand, barrel)
	assert.Empty(t, p1.Equipment)
	assert.Equal(t, PhasePlay, g.Phase())
}

func TestJoseDelgadoTradesBlueCard(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, seatsWith(3, 0, models.JoseDelgado)...)
	p0 := players[0]
	clearHands(g)
	mustang := card(models.Mustang)
	give(p0, mustang)

	g.DrawPhase(p0, DrawChoice{BlueCard: mustang.ID.String()})

	assert.Len(t, p0.Hand, 4)
	assert.NotContains(t, p0.Hand, mustang)
}

func TestPaulRegretAndRoseDoolanDistance(t *testing.T) {
	seats := []seatSetup{
		{models.Sheriff, models.RoseDoolan},
		{models.Outlaw, models.PaulRegret},
		{models.Renegade, models.DocHolyday},
		{models.Outlaw, models.UncleWill},
	}
	g, players, _ := setupTestGame(t, Options{}, seats...)
	p0, p1, p2 := players[0], players[1], players[2]

	assert.Equal(t, 1, g.DistanceTo(p0, p1), "Paul Regret +1, Rose Doolan -1")
	assert.Equal(t, 1, g.DistanceTo(p0, p2))
	assert.Equal(t, 2, g.DistanceTo(p1, players[3]), "Paul sees others normally")
	assert.Equal(t, 2, g.DistanceTo(p2, p1))
}
