package game

import (
	"testing"

	"github.com/jason-s-yu/bang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidKetchumHealsAnyTime(t *testing.T) {
	g, players, rec := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p0 := players[0]
	clearHands(g)
	a, b := card(models.Bang), card(models.Beer)
	give(p0, a, b)

	assert.False(t, g.SidKetchumAbility(p0, a, b), "already at full health")
	assert.Len(t, p0.Hand, 2)

	p0.Health = 3
	g.EndTurn()
	require.NotSame(t, p0, g.CurrentPlayer())
	assert.False(t, g.SidKetchumAbility(p0, a, a), "needs two distinct cards")
	assert.True(t, g.SidKetchumAbility(p0, a, b))

	assert.Equal(t, 4, p0.Health)
	assert.Empty(t, p0.Hand)
	assert.Contains(t, rec.healed, "p0:1")
}

func TestDocHolydayBonusBang(t *testing.T) {
	seats := []seatSetup{
		{models.Sheriff, models.DocHolyday},
		{models.Outlaw, models.ChuckWengam},
		{models.Renegade, models.UncleWill},
	}
	g, players, _ := setupTestGame(t, Options{}, seats...)
	p0, p1 := players[0], players[1]
	clearHands(g)
	bang := card(models.Bang)
	x, y := card(models.Beer), card(models.Saloon)
	give(p0, bang, x, y)
	before := g.CardCount()

	require.True(t, g.DocHolydayAbility(p0, x, y))
	require.Len(t, p0.Hand, 2)
	bonus := p0.Hand[1]
	assert.True(t, bonus.Bonus)
	assert.Equal(t, models.Bang, bonus.Name)
	assert.Equal(t, before+1, g.CardCount())
	assert.Equal(t, 1, g.CreatedCards())

	give(p0, card(models.Missed), card(models.Missed))
	assert.False(t, g.DocHolydayAbility(p0, p0.Hand[2], p0.Hand[3]), "once per turn")

	g.PlayCard(p0, bang, p1)
	g.PlayCard(p0, bonus, p1)
	assert.Equal(t, p1.MaxHealth-2, p1.Health)
	assert.Equal(t, 1, p0.Meta.BangsPlayed)
	assert.Equal(t, 0, p0.Meta.DocFreeBang)
	assert.NotContains(t, g.DiscardPile(), bonus, "bonus Bang! leaves the game")
	assert.Zero(t, g.CreatedCards())
	assert.Equal(t, before+2, g.CardCount(), "two Missed! were added")
}

func TestBonusBangOutsideDocTurnCountsTowardsLimit(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p0, p1 := players[0], players[1]
	clearHands(g)
	taken := card(models.Bang)
	taken.Bonus = true
	bang := card(models.Bang)
	give(p0, bang, taken)

	g.PlayCard(p0, bang, p1)
	g.PlayCard(p0, taken, p1)

	assert.Equal(t, p1.MaxHealth-1, p1.Health)
	assert.Contains(t, p0.Hand, taken)
	assert.Equal(t, 1, p0.Meta.BangsPlayed)
}

func TestChuckWengamTradesLifeForCards(t *testing.T) {
	g, players, rec := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p1 := players[1]
	assert.False(t, g.ChuckWengamAbility(p1), "not his turn")

	finishTurn(g)
	require.Same(t, p1, g.CurrentPlayer())
	clearHands(g)

	require.True(t, g.ChuckWengamAbility(p1))
	assert.Equal(t, p1.MaxHealth-1, p1.Health)
	assert.Len(t, p1.Hand, 2)
	assert.Equal(t, []string{"p1:1"}, rec.damaged)

	p1.Health = 1
	assert.False(t, g.ChuckWengamAbility(p1), "cannot spend the last life")
	assert.Equal(t, 1, p1.Health)
}

func TestUncleWillOpensGeneralStore(t *testing.T) {
	g, players, rec := setupTestGame(t, Options{}, seatsWith(3, 0, models.UncleWill)...)
	p0, p1, p2 := players[0], players[1], players[2]
	clearHands(g)
	missed := card(models.Missed)
	give(p0, missed)

	require.True(t, g.UncleWillAbility(p0, missed))
	assert.Len(t, g.GeneralStoreCards(), 3)
	assert.Equal(t, []models.CardName{models.Missed}, rec.played)

	g.EndTurn()
	assert.Same(t, p0, g.CurrentPlayer(), "turn cannot end while the store is open")

	for _, p := range []*models.Player{p0, p1, p2} {
		require.Same(t, p, g.GeneralStoreTurn())
		require.True(t, g.GeneralStorePick(p, 0))
	}
	assert.Nil(t, g.GeneralStoreCards())
	for _, p := range players {
		assert.Len(t, p.Hand, 1)
	}

	other := card(models.Beer)
	give(p0, other)
	assert.False(t, g.UncleWillAbility(p0, other), "once per turn")
}

func TestVeraCusterCopiesUntilNextTurn(t *testing.T) {
	seats := []seatSetup{
		{models.Sheriff, models.VeraCuster},
		{models.Outlaw, models.WillyTheKid},
		{models.Renegade, models.ChuckWengam},
	}
	g, players, _ := setupTestGame(t, Options{}, seats...)
	p0, p1 := players[0], players[1]

	ok, err := g.VeraCusterCopy(p0, nil)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	ok, err = g.VeraCusterCopy(p0, models.NewPlayer("stranger"))
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNoCharacter)

	ok, err = g.VeraCusterCopy(p0, p0)
	assert.False(t, ok)
	assert.NoError(t, err)

	ok, err = g.VeraCusterCopy(p0, p1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, p0.HasAbility(models.WillyTheKid))
	assert.True(t, p0.Meta.UnlimitedBang)

	ok, err = g.VeraCusterCopy(p0, players[2])
	assert.False(t, ok, "one copy per turn")
	assert.NoError(t, err)

	finishTurn(g)
	finishTurn(g)
	finishTurn(g)
	require.Same(t, p0, g.CurrentPlayer())
	assert.False(t, p0.HasAbility(models.WillyTheKid))
	assert.False(t, p0.Meta.UnlimitedBang)
	assert.True(t, p0.HasAbility(models.VeraCuster))
}

func TestRicochetShootsEquipment(t *testing.T) {
	g, players, _ := setupTestGame(t, Options{}, neutralSeats...)
	p0, p2 := players[0], players[2]
	clearHands(g)
	mustang := card(models.Mustang)
	p2.Equipment.Add(mustang)
	bang := card(models.Bang)
	give(p0, bang)

	assert.False(t, g.RicochetShoot(p0, bang, p2, mustang), "needs the event")

	forceEvent(t, g, EventRicochet)
	require.True(t, g.RicochetShoot(p0, bang, p2, mustang))
	assert.Empty(t, p2.Equipment)
	assert.Equal(t, 0, p0.Meta.BangsPlayed)

	barrel := card(models.Barrel)
	p2.Equipment.Add(barrel)
	missed := card(models.Missed)
	give(p2, missed)
	second := card(models.Bang)
	give(p0, second)
	require.True(t, g.RicochetShoot(p0, second, p2, barrel))
	assert.True(t, p2.Equipment.Has(models.Barrel))
	assert.NotContains(t, p2.Hand, missed)
}

func TestSniperNeedsTwoMissed(t *testing.T) {
	g, players, rec := setupTestGame(t, Options{}, neutralSeats[:3]...)
	p0, p1 := players[0], players[1]
	clearHands(g)
	b1, b2 := card(models.Bang), card(models.Bang)
	give(p0, b1, b2)
	missed := card(models.Missed)
	give(p1, missed)

	assert.False(t, g.SniperShoot(p0, b1, b2, p1), "needs the event")

	forceEvent(t, g, EventSniper)
	assert.False(t, g.SniperShoot(p0, b1, b1, p1), "needs two cards")
	require.True(t, g.SniperShoot(p0, b1, b2, p1))

	assert.Equal(t, p1.MaxHealth-1, p1.Health)
	assert.Contains(t, p1.Hand, missed)
	assert.Empty(t, p0.Hand)
	assert.Equal(t, 1, p0.Meta.BangsPlayed)
	bangs := 0
	for _, name := range rec.played {
		if name == models.Bang {
			bangs++
		}
	}
	assert.Equal(t, 2, bangs, "both Bang! cards are announced")

	b3, b4 := card(models.Bang), card(models.Bang)
	give(p0, b3, b4)
	assert.False(t, g.SniperShoot(p0, b3, b4, p1), "counts as the turn's Bang!")
}
