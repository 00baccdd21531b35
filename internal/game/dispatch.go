package game

import (
	"github.com/jason-s-yu/bang/internal/models"
	"github.com/sirupsen/logrus"
)

// convention is how a card handler treats the target argument.
type convention int

const (
	selfOnly        convention = iota // target ignored
	targetOnly                        // another living player, effect lands on them
	targetAndPlayer                   // another living player, effect involves both
	targetOrSelf                      // nil target means the player
)

// cardHandler resolves one card type. play reports whether the card stays
// where the handler put it instead of going to the discard pile.
type cardHandler struct {
	conv  convention
	check func(g *Game, p *models.Player, c *models.Card, target *models.Player) bool
	play  func(g *Game, p *models.Player, c *models.Card, target *models.Player) bool
}

// greenHandler resolves the use of an active green card from play.
type greenHandler struct {
	conv  convention
	check func(g *Game, p *models.Player, c *models.Card, target *models.Player) bool
	use   func(g *Game, p *models.Player, c *models.Card, target *models.Player)
}

// The dispatch table, partitioned by card category. Populated in init so
// handlers may call back into the pipeline.
var (
	basicCards map[models.CardName]cardHandler
	blueCards  map[models.CardName]cardHandler
	greenCards map[models.CardName]greenHandler
)

// equipHandler is the fallback for equipment with no bespoke rule.
var equipHandler = cardHandler{conv: selfOnly, check: canEquip, play: playEquip}

func (g *Game) handlerFor(name models.CardName, c *models.Card) (cardHandler, bool) {
	if h, ok := basicCards[name]; ok {
		return h, true
	}
	if h, ok := blueCards[name]; ok {
		return h, true
	}
	if c.IsEquipment() {
		return equipHandler, true
	}
	return cardHandler{}, false
}

// effectiveName is the card type c is played as by p.
func (g *Game) effectiveName(p *models.Player, c *models.Card) models.CardName {
	if c.Name == models.Missed && p.Meta.MissedAsBang {
		return models.Bang
	}
	return c.Name
}

func resolveTarget(conv convention, p, target *models.Player) (*models.Player, bool) {
	switch conv {
	case selfOnly:
		return nil, true
	case targetOrSelf:
		if target == nil || target == p {
			return p, true
		}
		return target, target.Alive()
	default:
		if target == nil || target == p || !target.Alive() {
			return nil, false
		}
		return target, true
	}
}

// canAct reports whether p may take a play-phase action right now.
func (g *Game) canAct(p *models.Player, action string) bool {
	reason := ""
	switch {
	case !g.started:
		reason = "game not started"
	case g.over:
		reason = "game over"
	case g.store != nil:
		reason = "general store open"
	case p == nil || p != g.current:
		reason = "not this player's turn"
	case g.phase != PhasePlay:
		reason = "not in play phase"
	}
	if reason != "" {
		g.ignore(p, action, reason)
		return false
	}
	return true
}

// legal runs the rule and event checks shared by every card. It returns the
// reason a play is refused, or "".
func (g *Game) legal(p *models.Player, c *models.Card, name models.CardName, target *models.Player, h cardHandler) string {
	if c.IsEquipment() && g.flags.Bool(FlagJudge) {
		return "equipment banned by the Judge"
	}
	if suit := g.flags.Str(FlagTurnSuit); suit != "" && p == g.current && c.Suit.String() != suit {
		return "suit locked by Handcuffs"
	}
	if name == models.Jail && g.flags.Bool(FlagNoJail) {
		return "Jail banned"
	}
	if name == models.Beer && g.flags.Bool(FlagNoBeer) {
		return "Beer banned"
	}
	if !g.checksPass(p, c, target) {
		return "vetoed by an ability"
	}
	if h.check != nil && !h.check(g, p, c, target) {
		return "card rule not met"
	}
	return ""
}

// bangAllowed applies the one-Bang!-per-turn quota and its exceptions.
func (g *Game) bangAllowed(p *models.Player, c *models.Card) bool {
	if g.flags.Bool(FlagNoBang) {
		return false
	}
	if (c.Bonus && p.Meta.DocFreeBang > 0) || p.Meta.UnlimitedBang {
		return true
	}
	if gun := p.Equipment.Gun(); gun != nil && gun.UnlimitedBang && g.equipmentActive(p, gun) {
		return true
	}
	return p.Meta.BangsPlayed < g.flags.Int(FlagBangLimit, 1)
}

// PlayCard plays c from p's hand, optionally at target. Illegal plays are
// ignored and leave the game untouched.
func (g *Game) PlayCard(p *models.Player, c *models.Card, target *models.Player) {
	const action = "play_card"
	if !g.canAct(p, action) {
		return
	}
	if c == nil || !p.InHand(c) {
		g.ignore(p, action, "card not in hand")
		return
	}
	if mp := p.Meta.MustPlay; mp != nil && mp != c && p.InHand(mp) {
		g.ignore(p, action, "must play the last drawn card first")
		return
	}
	name := g.effectiveName(p, c)
	h, ok := g.handlerFor(name, c)
	if !ok {
		g.ignore(p, action, string(c.Name)+" cannot be played")
		return
	}
	target, ok = resolveTarget(h.conv, p, target)
	if !ok {
		g.ignore(p, action, "invalid target")
		return
	}
	if reason := g.legal(p, c, name, target, h); reason != "" {
		g.ignore(p, action, reason)
		return
	}
	isBang := name == models.Bang
	if isBang && !g.bangAllowed(p, c) {
		g.ignore(p, action, "Bang! limit reached")
		return
	}

	p.RemoveFromHand(c)
	fields := logrus.Fields{"player": p.Name, "card": c.Name}
	if target != nil {
		fields["target"] = target.Name
	}
	g.Log.WithFields(fields).Info("card played")

	g.openFrame()
	kept := h.play(g, p, c, target)
	g.fireCardPlayed(p, c, target)
	g.flushFrame()

	if !kept {
		g.discardPlayed(p, c)
	}
	if isBang {
		if c.Bonus && p.Meta.DocFreeBang > 0 {
			p.Meta.DocFreeBang--
		} else {
			p.Meta.BangsPlayed++
		}
	}
	if p.Meta.MustPlay == c {
		p.Meta.MustPlay = nil
	}
	g.checkEmptyHand(p)
	g.settle()
}

// UseGreenCard activates a green card p has in play.
func (g *Game) UseGreenCard(p *models.Player, c *models.Card, target *models.Player) {
	const action = "use_green"
	if !g.canAct(p, action) {
		return
	}
	if c == nil || !c.GreenBorder || p.Equipment.Get(c.Name) != c {
		g.ignore(p, action, "card not in play")
		return
	}
	if !c.Active {
		g.ignore(p, action, "card not active yet")
		return
	}
	h, ok := greenCards[c.Name]
	if !ok || h.use == nil {
		g.ignore(p, action, string(c.Name)+" is only used as a response")
		return
	}
	target, ok = resolveTarget(h.conv, p, target)
	if !ok {
		g.ignore(p, action, "invalid target")
		return
	}
	if !g.checksPass(p, c, target) || (h.check != nil && !h.check(g, p, c, target)) {
		g.ignore(p, action, "card rule not met")
		return
	}

	p.Equipment.Remove(c)
	g.Log.WithFields(logrus.Fields{"player": p.Name, "card": c.Name}).Info("green card used")
	g.openFrame()
	h.use(g, p, c, target)
	g.flushFrame()
	g.discard(c)
	g.settle()
}

// DiscardCard throws c away from p's hand. Players may discard at any time,
// including out of turn.
func (g *Game) DiscardCard(p *models.Player, c *models.Card) {
	const action = "discard_card"
	if !g.started || g.over || p == nil || !p.Alive() {
		g.ignore(p, action, "player cannot act")
		return
	}
	if g.store != nil {
		g.ignore(p, action, "general store open")
		return
	}
	if c == nil || !p.RemoveFromHand(c) {
		g.ignore(p, action, "card not in hand")
		return
	}
	g.discardPlayed(p, c)
	g.fireCardPlayed(p, c, nil)
	if p.Meta.MustPlay == c {
		p.Meta.MustPlay = nil
	}
	g.checkEmptyHand(p)
}

func canEquip(g *Game, p *models.Player, c *models.Card, _ *models.Player) bool {
	return !p.Equipment.Has(c.Name)
}

func playEquip(g *Game, p *models.Player, c *models.Card, _ *models.Player) bool {
	c.Active = !c.GreenBorder
	replaced, ok := p.Equipment.Add(c)
	if !ok {
		return false
	}
	if replaced != nil {
		g.discard(replaced)
	}
	return true
}
