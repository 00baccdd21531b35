package game

import (
	"github.com/jason-s-yu/bang/internal/models"
	"github.com/sirupsen/logrus"
)

// playFrame collects health changes during a single play so that damage
// and heal notifications fire once per player with the net difference.
type playFrame struct {
	before   map[*models.Player]int
	attacker map[*models.Player]*models.Player
	order    []*models.Player
}

func (g *Game) openFrame() {
	g.frame = &playFrame{
		before:   make(map[*models.Player]int),
		attacker: make(map[*models.Player]*models.Player),
	}
}

func (f *playFrame) touch(p *models.Player, before int) {
	if _, ok := f.before[p]; ok {
		return
	}
	f.before[p] = before
	f.order = append(f.order, p)
}

// flushFrame closes the open frame and fires the notifications it held.
func (g *Game) flushFrame() {
	f := g.frame
	g.frame = nil
	if f == nil {
		return
	}
	for _, p := range f.order {
		diff := p.Health - f.before[p]
		switch {
		case diff < 0:
			g.fireDamaged(p, f.attacker[p], -diff)
		case diff > 0:
			g.fireHealed(p, diff)
		}
	}
}

// drawTo moves the top card of the deck into p's hand.
func (g *Game) drawTo(p *models.Player) *models.Card {
	c := g.Deck.Draw()
	if c == nil {
		return nil
	}
	p.Hand = append(p.Hand, c)
	g.lastDrawn = c
	return c
}

func (g *Game) drawCards(p *models.Player, n int) {
	for i := 0; i < n; i++ {
		if g.drawTo(p) == nil {
			return
		}
	}
}

// discard puts c on the discard pile. A bonus Bang! leaves the game
// instead.
func (g *Game) discard(c *models.Card) {
	if c.Bonus {
		g.created--
		g.Log.WithField("card", c.ID).Debug("bonus card retired")
		return
	}
	g.Deck.Put(c)
}

// discardPlayed routes a card that was just played: to the next living
// player's hand under River, to the discard pile otherwise.
func (g *Game) discardPlayed(p *models.Player, c *models.Card) {
	if g.flags.Bool(FlagRiver) {
		if next := g.nextAlive(p); next != p {
			next.Hand = append(next.Hand, c)
			g.Log.WithFields(logrus.Fields{"card": c.Name, "to": next.Name}).Debug("river passed card")
			return
		}
	}
	g.discard(c)
}

// checkSuit is the suit a Draw! check reads, after Blessing/Curse.
func (g *Game) checkSuit(c *models.Card) models.Suit {
	if s, ok := models.ParseSuit(g.flags.Str(FlagSuitOverride)); ok {
		return s
	}
	return c.Suit
}

// drawCheck flips the top card for a Draw! and discards it. pass is the
// outcome good for p; Lucky Duke flips two and keeps the better one.
func (g *Game) drawCheck(p *models.Player, pass func(suit models.Suit, rank int) bool) bool {
	flips := 1
	if p.Meta.LuckyDraw {
		flips = 2
	}
	ok := false
	for i := 0; i < flips; i++ {
		c := g.Deck.Draw()
		if c == nil {
			break
		}
		g.discard(c)
		if pass(g.checkSuit(c), c.Rank) {
			ok = true
		}
	}
	return ok
}

func isHeart(s models.Suit, _ int) bool { return s == models.Hearts }

func isDynamiteBlast(s models.Suit, rank int) bool {
	return s == models.Spades && rank >= 2 && rank <= 9
}

func isDynamiteSafe(s models.Suit, rank int) bool { return !isDynamiteBlast(s, rank) }

// damage removes n health from p. Reaching zero offers the last-chance Beer
// and otherwise eliminates p.
func (g *Game) damage(p, attacker *models.Player, n int) {
	if n <= 0 || p.Dead {
		return
	}
	before := p.Health
	p.Health -= n
	if p.Health < 0 {
		p.Health = 0
	}
	g.Log.WithFields(logrus.Fields{"player": p.Name, "amount": before - p.Health, "health": p.Health}).Debug("damage")
	if g.frame != nil {
		g.frame.touch(p, before)
		if attacker != nil {
			g.frame.attacker[p] = attacker
		}
	} else {
		g.fireDamaged(p, attacker, before-p.Health)
	}
	if p.Health > 0 {
		return
	}
	g.lastChance(p)
	if p.Health <= 0 {
		g.kill(p, attacker)
	}
}

// heal raises p's health by up to n and returns the amount restored.
func (g *Game) heal(p *models.Player, n int) int {
	if p.Dead {
		return 0
	}
	before := p.Health
	healed := p.Heal(n)
	if healed == 0 {
		return 0
	}
	if g.frame != nil {
		g.frame.touch(p, before)
	} else {
		g.fireHealed(p, healed)
	}
	return healed
}

// lastChance lets a dying player drink Beers from hand while more than two
// players remain.
func (g *Game) lastChance(p *models.Player) {
	if p.Meta.NoAutoResponse || g.flags.Bool(FlagNoBeer) || len(g.living()) <= 2 {
		return
	}
	for p.Health <= 0 {
		beer := p.FindInHand(models.Beer)
		if beer == nil {
			return
		}
		g.respond(p, beer, false)
		p.Health++
		if g.frame == nil {
			g.fireHealed(p, 1)
		}
		g.Log.WithField("player", p.Name).Info("saved by a Beer")
	}
}

// kill eliminates p, hands the death to the listeners, discards what they
// left behind and applies the role penalties.
func (g *Game) kill(p, killer *models.Player) {
	if p.Dead {
		return
	}
	p.Health = 0
	p.Dead = true
	p.Meta.AwaitingDraw = false
	g.rebuildTurnOrder()
	if g.firstDead == nil {
		g.firstDead = p
	}
	fields := logrus.Fields{"player": p.Name, "role": p.Role.String()}
	if killer != nil {
		fields["killer"] = killer.Name
	}
	g.Log.WithFields(fields).Info("player eliminated")

	for _, fn := range g.Listeners.PlayerDeath {
		fn(p, killer)
	}

	for _, c := range p.Hand {
		g.discard(c)
	}
	p.Hand = nil
	for _, c := range p.Equipment {
		g.discard(c)
	}
	p.Equipment = nil

	if killer != nil && killer != p && !killer.Dead {
		switch {
		case p.Role == models.Outlaw:
			g.drawCards(killer, 3)
		case p.Role == models.Deputy && killer.Role == models.Sheriff:
			for _, c := range killer.Hand {
				g.discard(c)
			}
			killer.Hand = nil
			for _, c := range killer.Equipment {
				g.discard(c)
			}
			killer.Equipment = nil
		}
	}
	g.checkWin()
}

// respond spends a card from p's hand (or, for green defensive cards, from
// play) as a reaction outside the normal play pipeline.
func (g *Game) respond(p *models.Player, c *models.Card, fromPlay bool) {
	if fromPlay {
		p.Equipment.Remove(c)
	} else if !p.RemoveFromHand(c) {
		return
	}
	g.discard(c)
	g.fireCardPlayed(p, c, nil)
	g.checkEmptyHand(p)
}

// checkEmptyHand gives draw-when-empty players their card.
func (g *Game) checkEmptyHand(p *models.Player) {
	if len(p.Hand) == 0 && p.Meta.DrawWhenEmpty && !p.Dead {
		g.drawTo(p)
	}
}

type missResponse struct {
	card     *models.Card
	fromPlay bool
	draw     int
}

// autoMiss tries to cancel a shot at target needing the given number of
// Missed! effects. Barrel checks come first, then hand and play responses.
// Cards are only spent when the full requirement can be met.
func (g *Game) autoMiss(target, attacker *models.Player, needed int) bool {
	if g.flags.Bool(FlagNoMissed) || target.Meta.NoAutoResponse {
		return false
	}
	dodged := 0
	barrels := 0
	if b := target.Equipment.Get(models.Barrel); b != nil && g.equipmentActive(target, b) {
		barrels++
	}
	if target.Meta.BuiltinBarrel {
		barrels++
	}
	for i := 0; i < barrels && dodged < needed; i++ {
		if g.drawCheck(target, isHeart) {
			dodged++
		}
	}

	var plan []missResponse
	used := map[*models.Card]bool{}
	add := func(r missResponse) {
		if dodged+len(plan) < needed && !used[r.card] {
			used[r.card] = true
			plan = append(plan, r)
		}
	}
	for _, c := range target.Hand {
		switch c.Name {
		case models.Missed:
			add(missResponse{card: c})
		case models.Dodge:
			add(missResponse{card: c, draw: 1})
		}
	}
	for _, c := range target.Equipment {
		if !c.GreenBorder || !c.Active || !g.equipmentActive(target, c) {
			continue
		}
		switch c.Name {
		case models.Bible:
			add(missResponse{card: c, fromPlay: true, draw: 1})
		case models.IronPlate, models.Sombrero, models.TenGallonHat:
			add(missResponse{card: c, fromPlay: true})
		}
	}
	if target.Meta.BangAsMissed {
		for _, c := range target.Hand {
			if c.Name == models.Bang {
				add(missResponse{card: c})
			}
		}
	}
	if target.Meta.AnyAsMissed {
		for i := len(target.Hand) - 1; i >= 0; i-- {
			add(missResponse{card: target.Hand[i]})
		}
	}

	if dodged+len(plan) < needed {
		return false
	}
	for _, r := range plan {
		g.respond(target, r.card, r.fromPlay)
		g.drawCards(target, r.draw)
	}
	target.Meta.Dodged = true
	g.Log.WithFields(logrus.Fields{"player": target.Name, "barrels": dodged, "cards": len(plan)}).Debug("shot missed")
	return true
}

// bangHit resolves a Bang! from p at target. Double-miss shooters raise the
// requirement to two.
func (g *Game) bangHit(p, target *models.Player, needed int) {
	if p.Meta.DoubleMiss && needed < 2 {
		needed = 2
	}
	if g.autoMiss(target, p, needed) {
		return
	}
	g.damage(target, p, 1)
}

// missOrDamage resolves an attack that a single Missed! cancels.
func (g *Game) missOrDamage(p, target *models.Player) {
	if g.autoMiss(target, p, 1) {
		return
	}
	g.damage(target, p, 1)
}

// bangFor finds a card p can give up as a Bang! in a Duel or to Indians!.
func (g *Game) bangFor(p *models.Player) *models.Card {
	if p.Meta.NoAutoResponse {
		return nil
	}
	if c := p.FindInHand(models.Bang); c != nil {
		return c
	}
	if p.Meta.MissedAsBang {
		return p.FindInHand(models.Missed)
	}
	return nil
}

// randomCard picks a random card from target's hand and equipment.
func (g *Game) randomCard(target *models.Player) (*models.Card, bool) {
	total := len(target.Hand) + len(target.Equipment)
	if total == 0 {
		return nil, false
	}
	i := g.rng.Intn(total)
	if i < len(target.Hand) {
		return target.Hand[i], false
	}
	return target.Equipment[i-len(target.Hand)], true
}

// takeCard removes c from target, wherever it sits.
func takeCard(target *models.Player, c *models.Card, fromPlay bool) {
	if fromPlay {
		target.Equipment.Remove(c)
		return
	}
	target.RemoveFromHand(c)
}

// equipmentActive reports whether owner's card in play currently has any
// effect.
func (g *Game) equipmentActive(owner *models.Player, c *models.Card) bool {
	if !c.Active || g.flags.Bool(FlagLasso) {
		return false
	}
	if cur := g.current; cur != nil && cur != owner && cur.Meta.IgnoreOthersEquipment {
		return false
	}
	return true
}

// DistanceTo is the distance from one player to another as seen by from.
func (g *Game) DistanceTo(from, to *models.Player) int {
	if from == to {
		return 0
	}
	if g.flags.Bool(FlagAmbush) {
		return 1
	}
	fi, ti := -1, -1
	for i, s := range g.turnOrder {
		switch g.players[s] {
		case from:
			fi = i
		case to:
			ti = i
		}
	}
	var base int
	if fi < 0 || ti < 0 {
		base = len(g.players)
	} else {
		d := fi - ti
		if d < 0 {
			d = -d
		}
		if alt := len(g.turnOrder) - d; alt < d {
			d = alt
		}
		base = d
	}
	for _, c := range to.Equipment {
		if c.DistanceModifier != 0 && g.equipmentActive(to, c) {
			base += c.DistanceModifier
		}
	}
	base += to.Meta.DistanceBonus
	for _, c := range from.Equipment {
		if c.RangeModifier != 0 && g.equipmentActive(from, c) {
			base -= c.RangeModifier
		}
	}
	base -= from.Meta.RangeBonus
	if base < 1 {
		base = 1
	}
	return base
}

// AttackRange is the reach of p's weapon, 1 without one.
func (g *Game) AttackRange(p *models.Player) int {
	if gun := p.Equipment.Gun(); gun != nil && g.equipmentActive(p, gun) {
		return gun.Range
	}
	return 1
}
