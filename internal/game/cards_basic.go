package game

import "github.com/jason-s-yu/bang/internal/models"

func init() {
	basicCards = map[models.CardName]cardHandler{
		models.Bang:         {conv: targetAndPlayer, check: inRange, play: playBang},
		models.Beer:         {conv: selfOnly, play: playBeer},
		models.Saloon:       {conv: selfOnly, play: playSaloon},
		models.Stagecoach:   {conv: selfOnly, play: drawsCards(2)},
		models.WellsFargo:   {conv: selfOnly, play: drawsCards(3)},
		models.Panic:        {conv: targetAndPlayer, check: all(withinOne, targetHasCards), play: stealRandom},
		models.CatBalou:     {conv: targetAndPlayer, check: targetHasCards, play: discardRandom},
		models.Gatling:      {conv: selfOnly, play: playGatling},
		models.Indians:      {conv: selfOnly, play: playIndians},
		models.Duel:         {conv: targetAndPlayer, play: playDuel},
		models.GeneralStore: {conv: selfOnly, play: playGeneralStore},

		models.Punch:       {conv: targetAndPlayer, check: withinOne, play: shootOnce},
		models.Springfield: {conv: targetAndPlayer, check: hasExtraCard, play: withExtra(shootOnce)},
		models.Whisky:      {conv: selfOnly, check: hasExtraCard, play: withExtra(healSelf(2))},
		models.Tequila:     {conv: targetOrSelf, check: hasExtraCard, play: withExtra(healTarget(1))},
		models.RagTime:     {conv: targetAndPlayer, check: all(hasExtraCard, targetHasCards), play: withExtra(stealRandom)},
		models.Brawl:       {conv: selfOnly, check: hasExtraCard, play: withExtra(playBrawl)},
	}
}

type cardCheck = func(g *Game, p *models.Player, c *models.Card, target *models.Player) bool
type cardPlay = func(g *Game, p *models.Player, c *models.Card, target *models.Player) bool

func all(checks ...cardCheck) cardCheck {
	return func(g *Game, p *models.Player, c *models.Card, target *models.Player) bool {
		for _, chk := range checks {
			if !chk(g, p, c, target) {
				return false
			}
		}
		return true
	}
}

func inRange(g *Game, p *models.Player, _ *models.Card, target *models.Player) bool {
	return g.DistanceTo(p, target) <= g.AttackRange(p)
}

func withinOne(g *Game, p *models.Player, _ *models.Card, target *models.Player) bool {
	return g.DistanceTo(p, target) <= 1
}

func targetHasCards(_ *Game, _ *models.Player, _ *models.Card, target *models.Player) bool {
	return len(target.Hand)+len(target.Equipment) > 0
}

// hasExtraCard requires a second card in hand to pay for the played one.
func hasExtraCard(_ *Game, p *models.Player, _ *models.Card, _ *models.Player) bool {
	return len(p.Hand) >= 2
}

// withExtra discards the last card left in hand before resolving play.
func withExtra(play cardPlay) cardPlay {
	return func(g *Game, p *models.Player, c *models.Card, target *models.Player) bool {
		if n := len(p.Hand); n > 0 {
			extra := p.Hand[n-1]
			p.Hand = p.Hand[:n-1]
			g.discard(extra)
		}
		return play(g, p, c, target)
	}
}

func playBang(g *Game, p *models.Player, _ *models.Card, target *models.Player) bool {
	g.bangHit(p, target, 1)
	return false
}

func shootOnce(g *Game, p *models.Player, _ *models.Card, target *models.Player) bool {
	g.missOrDamage(p, target)
	return false
}

// playBeer heals one (Tequila Joe two) unless only two players are left.
func playBeer(g *Game, p *models.Player, _ *models.Card, _ *models.Player) bool {
	if len(g.living()) <= 2 {
		return false
	}
	amount := 1
	if p.Meta.BeerHeal > 0 {
		amount = p.Meta.BeerHeal
	}
	g.heal(p, amount)
	return false
}

func playSaloon(g *Game, p *models.Player, _ *models.Card, _ *models.Player) bool {
	for _, o := range g.living() {
		g.heal(o, 1)
	}
	return false
}

func drawsCards(n int) cardPlay {
	return func(g *Game, p *models.Player, _ *models.Card, _ *models.Player) bool {
		g.drawCards(p, n)
		return false
	}
}

func healSelf(n int) cardPlay {
	return func(g *Game, p *models.Player, _ *models.Card, _ *models.Player) bool {
		g.heal(p, n)
		return false
	}
}

func healTarget(n int) cardPlay {
	return func(g *Game, _ *models.Player, _ *models.Card, target *models.Player) bool {
		g.heal(target, n)
		return false
	}
}

func stealRandom(g *Game, p *models.Player, _ *models.Card, target *models.Player) bool {
	g.steal(p, target)
	return false
}

func (g *Game) steal(p, target *models.Player) {
	taken, fromPlay := g.randomCard(target)
	if taken == nil {
		return
	}
	takeCard(target, taken, fromPlay)
	taken.Active = taken.Kind != models.KindGreen
	p.Hand = append(p.Hand, taken)
	g.checkEmptyHand(target)
}

func discardRandom(g *Game, _ *models.Player, _ *models.Card, target *models.Player) bool {
	g.discardRandomFrom(target)
	return false
}

func (g *Game) discardRandomFrom(target *models.Player) {
	taken, fromPlay := g.randomCard(target)
	if taken == nil {
		return
	}
	takeCard(target, taken, fromPlay)
	g.discard(taken)
	g.checkEmptyHand(target)
}

func playGatling(g *Game, p *models.Player, _ *models.Card, _ *models.Player) bool {
	for _, o := range g.othersFrom(p) {
		g.missOrDamage(p, o)
	}
	return false
}

// playIndians makes every other player give up a Bang! or lose one health.
func playIndians(g *Game, p *models.Player, _ *models.Card, _ *models.Player) bool {
	for _, o := range g.othersFrom(p) {
		if b := g.bangFor(o); b != nil {
			g.respond(o, b, false)
			continue
		}
		g.damage(o, p, 1)
	}
	return false
}

// playDuel alternates Bang! discards, target first, until someone cannot.
func playDuel(g *Game, p *models.Player, _ *models.Card, target *models.Player) bool {
	cur, other := target, p
	for !cur.Dead && !other.Dead {
		b := g.bangFor(cur)
		if b == nil {
			g.damage(cur, other, 1)
			return false
		}
		g.respond(cur, b, false)
		cur, other = other, cur
	}
	return false
}

func playGeneralStore(g *Game, p *models.Player, _ *models.Card, _ *models.Player) bool {
	g.startGeneralStore(p)
	return false
}

func playBrawl(g *Game, p *models.Player, _ *models.Card, _ *models.Player) bool {
	for _, o := range g.othersFrom(p) {
		g.discardRandomFrom(o)
	}
	return false
}
