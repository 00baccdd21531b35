package game

import (
	"fmt"

	"github.com/jason-s-yu/bang/internal/models"
	"github.com/sirupsen/logrus"
)

// spendPair removes two distinct cards from p's hand and discards them.
func (g *Game) spendPair(p *models.Player, c1, c2 *models.Card) bool {
	if c1 == nil || c2 == nil || c1 == c2 || !p.InHand(c1) || !p.InHand(c2) {
		return false
	}
	for _, c := range []*models.Card{c1, c2} {
		p.RemoveFromHand(c)
		g.discardPlayed(p, c)
	}
	return true
}

// SidKetchumAbility discards two cards to regain one life. It may be used
// at any time, including out of turn.
func (g *Game) SidKetchumAbility(p *models.Player, c1, c2 *models.Card) bool {
	const action = "sid_ketchum"
	switch {
	case !g.started || g.over || g.store != nil:
		g.ignore(p, action, "game not accepting actions")
		return false
	case p == nil || p.Dead || !g.hasAbility(p, models.SidKetchum):
		g.ignore(p, action, "ability not available")
		return false
	case p.Health >= p.MaxHealth:
		g.ignore(p, action, "already at full health")
		return false
	}
	if !g.spendPair(p, c1, c2) {
		g.ignore(p, action, "needs two cards from hand")
		return false
	}
	g.heal(p, 1)
	g.Log.WithField("player", p.Name).Info("sid ketchum heals")
	g.checkEmptyHand(p)
	return true
}

// DocHolydayAbility discards two cards once per turn for a bonus Bang!
// that does not count towards the Bang! limit.
func (g *Game) DocHolydayAbility(p *models.Player, c1, c2 *models.Card) bool {
	const action = "doc_holyday"
	if !g.canAct(p, action) {
		return false
	}
	if !g.hasAbility(p, models.DocHolyday) || p.Meta.DocUsed {
		g.ignore(p, action, "ability not available")
		return false
	}
	if !g.spendPair(p, c1, c2) {
		g.ignore(p, action, "needs two cards from hand")
		return false
	}
	bang := models.MustCard(models.Bang, models.SuitNone, 0)
	bang.Bonus = true
	p.Hand = append(p.Hand, bang)
	g.created++
	p.Meta.DocUsed = true
	p.Meta.DocFreeBang++
	g.Log.WithField("player", p.Name).Info("doc holyday takes a bonus Bang!")
	return true
}

// ChuckWengamAbility trades one life for two cards. Chuck cannot spend his
// last life point this way.
func (g *Game) ChuckWengamAbility(p *models.Player) bool {
	const action = "chuck_wengam"
	if !g.canAct(p, action) {
		return false
	}
	if !g.hasAbility(p, models.ChuckWengam) || p.Health <= 1 {
		g.ignore(p, action, "ability not available")
		return false
	}
	g.damage(p, nil, 1)
	g.drawCards(p, 2)
	g.Log.WithField("player", p.Name).Info("chuck wengam draws")
	return true
}

// UncleWillAbility plays any hand card as a General Store, once per turn.
func (g *Game) UncleWillAbility(p *models.Player, c *models.Card) bool {
	const action = "uncle_will"
	if !g.canAct(p, action) {
		return false
	}
	if !g.hasAbility(p, models.UncleWill) || p.Meta.UncleWillUsed {
		g.ignore(p, action, "ability not available")
		return false
	}
	if c == nil || !p.InHand(c) {
		g.ignore(p, action, "card not in hand")
		return false
	}
	p.RemoveFromHand(c)
	g.discardPlayed(p, c)
	p.Meta.UncleWillUsed = true
	g.fireCardPlayed(p, c, nil)
	g.checkEmptyHand(p)
	return g.startGeneralStore(p)
}

// VeraCusterCopy gives Vera the ability of source's character until her
// next turn. Copying from a player without a character is a caller error.
func (g *Game) VeraCusterCopy(p, source *models.Player) (bool, error) {
	const action = "vera_custer"
	switch {
	case !g.started || g.over:
		g.ignore(p, action, "game not running")
		return false, nil
	case p == nil || p != g.current:
		g.ignore(p, action, "not this player's turn")
		return false, nil
	case !g.hasAbility(p, models.VeraCuster) || p.Meta.VeraCopy != models.CharacterNone:
		g.ignore(p, action, "ability not available")
		return false, nil
	case source == nil:
		return false, fmt.Errorf("vera custer copy: %w", ErrUnknownPlayer)
	case source.Character == models.CharacterNone:
		return false, fmt.Errorf("vera custer copy from %s: %w", source.Name, ErrNoCharacter)
	case source == p || !source.Alive():
		g.ignore(p, action, "invalid source")
		return false, nil
	}
	id := source.Character
	p.Meta.VeraCopy = id
	if id != p.Character {
		p.Abilities.Add(id)
	}
	g.installAbility(p, id)
	g.refreshAbilities(p)
	g.Log.WithFields(logrus.Fields{"player": p.Name, "copied": id.String()}).Info("vera custer copies")
	return true, nil
}

// RicochetShoot spends a Bang! on a card target has in play. The owner can
// save the card with a Missed!. The shot does not count as the turn's Bang!.
func (g *Game) RicochetShoot(p *models.Player, bang *models.Card, target *models.Player, equip *models.Card) bool {
	const action = "ricochet"
	if !g.canAct(p, action) {
		return false
	}
	switch {
	case !g.flags.Bool(FlagRicochet):
		g.ignore(p, action, "ricochet not in force")
		return false
	case bang == nil || !p.InHand(bang) || g.effectiveName(p, bang) != models.Bang:
		g.ignore(p, action, "needs a Bang! from hand")
		return false
	case target == nil || target == p || !target.Alive():
		g.ignore(p, action, "invalid target")
		return false
	case equip == nil || target.Equipment.Get(equip.Name) != equip:
		g.ignore(p, action, "card not in play")
		return false
	}
	if reason := g.legal(p, bang, models.Bang, target, cardHandler{}); reason != "" {
		g.ignore(p, action, reason)
		return false
	}

	p.RemoveFromHand(bang)
	g.discardPlayed(p, bang)
	g.fireCardPlayed(p, bang, target)
	fields := logrus.Fields{"player": p.Name, "target": target.Name, "card": equip.Name}
	if m := target.FindInHand(models.Missed); m != nil && !target.Meta.NoAutoResponse && !g.flags.Bool(FlagNoMissed) {
		g.respond(target, m, false)
		g.Log.WithFields(fields).Info("ricochet missed")
	} else {
		target.Equipment.Remove(equip)
		g.discard(equip)
		g.Log.WithFields(fields).Info("ricochet hit")
	}
	g.checkEmptyHand(p)
	g.settle()
	return true
}

// SniperShoot discards two Bang! cards as one shot that needs two Missed!
// to cancel. It counts as the turn's Bang!.
func (g *Game) SniperShoot(p *models.Player, b1, b2 *models.Card, target *models.Player) bool {
	const action = "sniper"
	if !g.canAct(p, action) {
		return false
	}
	switch {
	case !g.flags.Bool(FlagSniper):
		g.ignore(p, action, "sniper not in force")
		return false
	case b1 == nil || b2 == nil || b1 == b2 || !p.InHand(b1) || !p.InHand(b2):
		g.ignore(p, action, "needs two Bang! cards from hand")
		return false
	case g.effectiveName(p, b1) != models.Bang || g.effectiveName(p, b2) != models.Bang:
		g.ignore(p, action, "needs two Bang! cards from hand")
		return false
	case target == nil || target == p || !target.Alive():
		g.ignore(p, action, "invalid target")
		return false
	}
	h := basicCards[models.Bang]
	for _, c := range []*models.Card{b1, b2} {
		if reason := g.legal(p, c, models.Bang, target, h); reason != "" {
			g.ignore(p, action, reason)
			return false
		}
	}
	if !g.bangAllowed(p, b1) {
		g.ignore(p, action, "Bang! limit reached")
		return false
	}

	p.RemoveFromHand(b1)
	p.RemoveFromHand(b2)
	g.Log.WithFields(logrus.Fields{"player": p.Name, "target": target.Name}).Info("sniper shot")
	g.openFrame()
	g.bangHit(p, target, 2)
	g.fireCardPlayed(p, b1, target)
	g.fireCardPlayed(p, b2, target)
	g.flushFrame()
	g.discardPlayed(p, b1)
	g.discardPlayed(p, b2)
	p.Meta.BangsPlayed++
	g.checkEmptyHand(p)
	g.settle()
	return true
}
