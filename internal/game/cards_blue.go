package game

import "github.com/jason-s-yu/bang/internal/models"

func init() {
	blueCards = map[models.CardName]cardHandler{
		models.Jail:     {conv: targetOnly, check: canJail, play: playJail},
		models.Dynamite: {conv: selfOnly, check: canEquip, play: playEquip},
	}
}

// canJail refuses the Sheriff and players already in Jail.
func canJail(_ *Game, _ *models.Player, c *models.Card, target *models.Player) bool {
	return target.Role != models.Sheriff && !target.Equipment.Has(c.Name)
}

func playJail(g *Game, _ *models.Player, c *models.Card, target *models.Player) bool {
	c.Active = true
	_, ok := target.Equipment.Add(c)
	return ok
}

// resolveDynamite runs the start-of-turn Draw! for p's Dynamite: a Spade
// from 2 to 9 explodes for three damage, anything else passes it on.
func (g *Game) resolveDynamite(p *models.Player) {
	d := p.Equipment.Get(models.Dynamite)
	if d == nil {
		return
	}
	p.Equipment.Remove(d)
	if !g.drawCheck(p, isDynamiteSafe) {
		g.Log.WithField("player", p.Name).Info("dynamite exploded")
		g.discard(d)
		g.damage(p, nil, 3)
		return
	}
	next := g.nextAlive(p)
	if _, ok := next.Equipment.Add(d); !ok {
		g.discard(d)
	}
}

// resolveJail runs the start-of-turn Draw! for p's Jail. The Jail card is
// discarded either way; anything but a Heart costs the turn.
func (g *Game) resolveJail(p *models.Player) {
	j := p.Equipment.Get(models.Jail)
	if j == nil {
		return
	}
	p.Equipment.Remove(j)
	g.discard(j)
	if !g.drawCheck(p, isHeart) {
		p.Meta.SkipTurn = true
		g.Log.WithField("player", p.Name).Info("stays in jail")
	}
}
