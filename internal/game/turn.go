package game

import (
	"github.com/jason-s-yu/bang/internal/models"
	"github.com/sirupsen/logrus"
)

// beginTurn starts p's turn: per-turn resets, event draws, start-of-turn
// damage, Dynamite and Jail. It then either auto-draws or suspends until
// DrawPhase is called with a choice. repeat marks a Vendetta extra turn.
func (g *Game) beginTurn(p *models.Player, repeat bool) {
	if g.over {
		return
	}
	g.current = p
	g.phase = PhaseDraw
	g.lastDrawn = nil

	if v := p.Meta.VeraCopy; v != models.CharacterNone && v != p.Character {
		p.Abilities.Remove(v)
	}
	p.Meta.ResetTurn()
	p.Meta.TurnRepeated = repeat
	g.refreshAbilities(p)
	g.Log.WithFields(logrus.Fields{"player": p.Name, "repeat": repeat}).Info("turn started")

	if p.Role == models.Sheriff && !repeat {
		g.sheriffTurns++
		if g.sheriffTurns >= 2 && (g.sheriffTurns-2)%g.Options.EventCadence == 0 {
			g.DrawEventCard()
		}
	}

	for _, fn := range g.Listeners.TurnStarted {
		fn(p)
	}

	if g.flags.Bool(FlagStartDamage) {
		g.damage(p, nil, 1)
	}
	if g.flags.Bool(FlagHandDamage) && len(p.Hand) > 0 {
		g.damage(p, nil, len(p.Hand))
	}
	if !p.Alive() {
		g.advance()
		return
	}
	if g.flags.Bool(FlagNewIdentity) && len(g.characterPool) > 0 {
		p.Meta.IdentityOffer = g.characterPool[0]
	}

	g.resolveDynamite(p)
	if !p.Alive() {
		g.advance()
		return
	}
	g.resolveJail(p)
	if p.Meta.SkipTurn {
		p.Meta.SkipTurn = false
		p.Meta.IdentityOffer = models.CharacterNone
		g.Log.WithField("player", p.Name).Info("turn skipped")
		g.advance()
		return
	}

	if g.needsChoice(p) {
		p.Meta.AwaitingDraw = true
		g.Log.WithField("player", p.Name).Debug("waiting for draw choice")
		return
	}
	g.resolveDraw(p, DrawChoice{})
}

// DrawPhase resumes a suspended draw phase with the player's choice.
func (g *Game) DrawPhase(p *models.Player, choice DrawChoice) {
	const action = "draw_phase"
	switch {
	case !g.started || g.over:
		g.ignore(p, action, "game not running")
		return
	case p == nil || p != g.current:
		g.ignore(p, action, "not this player's turn")
		return
	case g.phase != PhaseDraw || !p.Meta.AwaitingDraw:
		g.ignore(p, action, "not waiting for a draw")
		return
	}
	if g.flags.Bool(FlagHandcuffs) {
		if _, ok := models.ParseSuit(choice.Suit); !ok {
			g.ignore(p, action, "handcuffs need a suit")
			return
		}
	}
	g.resolveDraw(p, choice)
	g.settle()
}

// PatBrennanDraw resumes Pat Brennan's draw by taking card from owner's
// equipment.
func (g *Game) PatBrennanDraw(p, owner *models.Player, c *models.Card) bool {
	if p == nil || owner == nil || c == nil || !g.hasAbility(p, models.PatBrennan) || !g.AwaitingDraw() || g.current != p {
		g.ignore(p, "pat_brennan_draw", "not available")
		return false
	}
	if owner.Equipment.Get(c.Name) != c {
		g.ignore(p, "pat_brennan_draw", "card not in play")
		return false
	}
	g.DrawPhase(p, DrawChoice{EquipmentOwner: owner.Name, EquipmentCard: c.ID.String()})
	return !p.Meta.AwaitingDraw
}

func (g *Game) resolveDraw(p *models.Player, choice DrawChoice) {
	p.Meta.AwaitingDraw = false

	if offer := p.Meta.IdentityOffer; offer != models.CharacterNone {
		p.Meta.IdentityOffer = models.CharacterNone
		if choice.NewIdentity {
			g.swapIdentity(p, offer)
		}
	}

	if g.flags.Bool(FlagBloodBrothers) && choice.GiveLife != "" && p.Health > 1 {
		if t := g.Player(choice.GiveLife); t != nil && t != p && !t.Dead && t.Health < t.MaxHealth {
			g.damage(p, nil, 1)
			g.heal(t, 1)
		}
	}

	g.lastDrawn = nil
	if g.flags.Bool(FlagHardLiquor) && choice.Heal {
		g.heal(p, 1)
	} else {
		g.performDraw(p, choice)
	}
	g.postDraw(p, choice)

	p.Meta.DrawnThisTurn = true
	g.phase = PhasePlay
}

func (g *Game) performDraw(p *models.Player, choice DrawChoice) {
	if g.flags.Bool(FlagPeyote) {
		g.peyote(p, choice.Guesses)
		return
	}
	if g.flags.Bool(FlagNoDraw) {
		return
	}
	for _, fn := range g.Listeners.DrawPhase {
		if fn(p) {
			return
		}
	}
	for _, id := range p.Abilities {
		ch := characters[id]
		if ch.Draw != nil && g.hasAbility(p, id) && ch.Draw(g, p, choice) {
			return
		}
	}
	if g.flags.Bool(FlagAbandonedMine) {
		for i := 0; i < g.drawCount(p); i++ {
			c := g.Deck.TakeDiscardTop()
			if c == nil {
				c = g.drawTo(p)
				if c == nil {
					return
				}
				continue
			}
			p.Hand = append(p.Hand, c)
			g.lastDrawn = c
		}
		return
	}
	g.drawCards(p, g.drawCount(p))
}

func (g *Game) drawCount(p *models.Player) int {
	if g.flags.Has(FlagDrawCount) {
		return g.flags.Int(FlagDrawCount, 2)
	}
	if p.Meta.DrawCount > 0 {
		return p.Meta.DrawCount
	}
	return 2
}

// peyote draws while the player guesses the colour right. A wrong guess
// discards the card and ends the draw.
func (g *Game) peyote(p *models.Player, guesses []string) {
	for _, guess := range guesses {
		c := g.Deck.Draw()
		if c == nil {
			return
		}
		if (guess == "red") != c.Suit.IsRed() {
			g.discard(c)
			return
		}
		p.Hand = append(p.Hand, c)
		g.lastDrawn = c
	}
}

func (g *Game) postDraw(p *models.Player, choice DrawChoice) {
	if g.flags.Bool(FlagLawOfTheWest) && g.lastDrawn != nil && p.InHand(g.lastDrawn) {
		p.Meta.MustPlay = g.lastDrawn
	}
	if g.flags.Bool(FlagRanch) && len(choice.RanchDiscards) > 0 {
		var out []*models.Card
		seen := map[int]bool{}
		for _, i := range choice.RanchDiscards {
			if i >= 0 && i < len(p.Hand) && !seen[i] {
				seen[i] = true
				out = append(out, p.Hand[i])
			}
		}
		for _, c := range out {
			p.RemoveFromHand(c)
			g.discard(c)
		}
		g.drawCards(p, len(out))
	}
	if g.flags.Bool(FlagHandcuffs) {
		if s, ok := models.ParseSuit(choice.Suit); ok {
			g.flags.SetStr(FlagTurnSuit, s.String())
		}
	}
}

// handLimit is the number of cards p may keep at the end of the turn, or
// -1 for no limit.
func (g *Game) handLimit(p *models.Player) int {
	limit := p.Health
	if p.Meta.HandLimit > limit {
		limit = p.Meta.HandLimit
	}
	if p.Meta.NoHandLimit {
		limit = -1
	}
	if g.flags.Has(FlagHandLimit) {
		if reverend := g.flags.Int(FlagHandLimit, 0); limit < 0 || reverend < limit {
			limit = reverend
		}
	}
	return limit
}

// discardPhase drops excess cards from the end of the hand.
func (g *Game) discardPhase(p *models.Player) {
	g.phase = PhaseDiscard
	limit := g.handLimit(p)
	if limit < 0 {
		return
	}
	for len(p.Hand) > limit {
		c := p.Hand[len(p.Hand)-1]
		p.Hand = p.Hand[:len(p.Hand)-1]
		if g.flags.Bool(FlagAbandonedMine) {
			g.Deck.PushTop(c)
			continue
		}
		g.discard(c)
	}
}

// EndTurn finishes the current player's turn and starts the next one.
func (g *Game) EndTurn() {
	const action = "end_turn"
	p := g.current
	switch {
	case !g.started || g.over:
		g.ignore(p, action, "game not running")
		return
	case g.store != nil:
		g.ignore(p, action, "general store open")
		return
	case g.phase != PhasePlay:
		g.ignore(p, action, "draw phase not finished")
		return
	}

	g.discardPhase(p)
	g.flags.Delete(FlagTurnSuit)
	for _, c := range p.Equipment {
		if c.GreenBorder {
			c.Active = true
		}
	}
	p.Meta.MustPlay = nil

	repeat := false
	if g.flags.Bool(FlagVendetta) && !p.Meta.TurnRepeated && !p.Dead {
		repeat = g.drawCheck(p, isHeart)
	}
	if p.Meta.Ghost {
		g.exorcise(p)
		repeat = false
	}
	g.Log.WithField("player", p.Name).Info("turn ended")

	if repeat && p.Alive() {
		g.Log.WithField("player", p.Name).Info("vendetta grants another turn")
		g.beginTurn(p, true)
	} else {
		g.advance()
	}
	g.settle()
}

// advance begins the next player's turn in the current direction.
func (g *Game) advance() {
	if g.over || g.current == nil {
		return
	}
	if next := g.nextTurnPlayer(g.current); next != nil {
		g.beginTurn(next, false)
	}
}

// nextTurnPlayer scans seats from p. Under Dead Man the first eliminated
// player comes back when the scan reaches their seat.
func (g *Game) nextTurnPlayer(p *models.Player) *models.Player {
	n := len(g.players)
	start := g.seat(p)
	dir := g.direction()
	for i := 1; i <= n; i++ {
		c := g.players[((start+dir*i)%n+n)%n]
		if c.Alive() {
			return c
		}
		if c == g.firstDead && g.flags.Bool(FlagDeadMan) && g.flags.Int(FlagDeadMan, 0) == 0 {
			g.reviveDeadMan(c)
			return c
		}
	}
	return nil
}

// settle moves play on when the current player died during an action.
func (g *Game) settle() {
	if g.over || !g.started || g.store != nil || g.current == nil {
		return
	}
	if !g.current.Alive() {
		g.advance()
	}
}

func (g *Game) reviveDeadMan(p *models.Player) {
	g.flags.SetInt(FlagDeadMan, 1)
	p.Dead = false
	p.Health = 2
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	g.drawCards(p, 2)
	g.rebuildTurnOrder()
	g.Log.WithField("player", p.Name).Info("dead man returns")
}

// exorcise removes a Ghost Town ghost after their turn.
func (g *Game) exorcise(p *models.Player) {
	p.Meta.Ghost = false
	for _, c := range p.Hand {
		g.discard(c)
	}
	p.Hand = nil
	for _, c := range p.Equipment {
		g.discard(c)
	}
	p.Equipment = nil
	g.refreshAbilities(p)
	g.rebuildTurnOrder()
	g.Log.WithField("player", p.Name).Info("ghost leaves the table")
}

// swapIdentity gives p a new character from the undealt pool and restarts
// them at two health.
func (g *Game) swapIdentity(p *models.Player, id models.CharacterID) {
	for i, c := range g.characterPool {
		if c == id {
			g.characterPool = append(g.characterPool[:i], g.characterPool[i+1:]...)
			break
		}
	}
	old := p.Character
	p.Abilities.Remove(old)
	g.characterPool = append(g.characterPool, old)
	p.Character = id
	p.Abilities.Add(id)
	p.MaxHealth = models.Characters[id].MaxHealth
	if p.Role == models.Sheriff {
		p.MaxHealth++
	}
	p.Health = 2
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	g.installAbility(p, id)
	g.refreshAbilities(p)
	g.Log.WithFields(logrus.Fields{"player": p.Name, "from": old.String(), "to": id.String()}).Info("new identity")
}
