package game

import "github.com/jason-s-yu/bang/internal/models"

// Bible, Iron Plate, Sombrero and Ten Gallon Hat have no entry: they only
// ever fire as automatic Missed! responses.
func init() {
	greenCards = map[models.CardName]greenHandler{
		models.Canteen:      {conv: selfOnly, use: useHeal},
		models.CanCan:       {conv: targetAndPlayer, check: targetHasCards, use: useDiscardRandom},
		models.Conestoga:    {conv: targetAndPlayer, check: targetHasCards, use: useSteal},
		models.Derringer:    {conv: targetAndPlayer, check: withinOne, use: useDerringer},
		models.Knife:        {conv: targetAndPlayer, check: withinOne, use: useShot},
		models.Pepperbox:    {conv: targetAndPlayer, check: inRange, use: useShot},
		models.BuffaloRifle: {conv: targetAndPlayer, use: useShot},
		models.Howitzer:     {conv: selfOnly, use: useHowitzer},
		models.PonyExpress:  {conv: selfOnly, use: useDraw(3)},
	}
}

func useHeal(g *Game, p *models.Player, _ *models.Card, _ *models.Player) {
	g.heal(p, 1)
}

func useDiscardRandom(g *Game, _ *models.Player, _ *models.Card, target *models.Player) {
	g.discardRandomFrom(target)
}

func useSteal(g *Game, p *models.Player, _ *models.Card, target *models.Player) {
	g.steal(p, target)
}

func useShot(g *Game, p *models.Player, _ *models.Card, target *models.Player) {
	g.missOrDamage(p, target)
}

func useDerringer(g *Game, p *models.Player, _ *models.Card, target *models.Player) {
	g.missOrDamage(p, target)
	g.drawTo(p)
}

func useHowitzer(g *Game, p *models.Player, _ *models.Card, _ *models.Player) {
	for _, o := range g.othersFrom(p) {
		g.missOrDamage(p, o)
	}
}

func useDraw(n int) func(g *Game, p *models.Player, c *models.Card, target *models.Player) {
	return func(g *Game, p *models.Player, _ *models.Card, _ *models.Player) {
		g.drawCards(p, n)
	}
}
