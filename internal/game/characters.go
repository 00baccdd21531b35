package game

import (
	"github.com/jason-s-yu/bang/internal/models"
	"github.com/sirupsen/logrus"
)

// Character is the capability table entry for one character ability.
//
// Passive sets the static metadata grants. Hooks subscribes the reactive
// parts to the game's listeners; every hook checks hasAbility when it
// fires, so copied abilities and Hangover need no reinstall. Draw replaces
// the default draw phase and reports whether it did; ChoiceDraw marks
// abilities that suspend the turn until the player supplies a DrawChoice.
type Character struct {
	Passive    func(m *models.Metadata)
	Hooks      func(g *Game, p *models.Player)
	Draw       func(g *Game, p *models.Player, choice DrawChoice) bool
	ChoiceDraw bool
}

var characters map[models.CharacterID]Character

func init() {
	characters = map[models.CharacterID]Character{
		models.BartCassidy: {Hooks: bartCassidyHooks},
		models.BlackJack:   {Hooks: blackJackHooks},
		models.CalamityJanet: {Passive: func(m *models.Metadata) {
			m.BangAsMissed = true
			m.MissedAsBang = true
		}},
		models.ElGringo:      {Hooks: elGringoHooks},
		models.JesseJones:    {Draw: jesseJonesDraw, ChoiceDraw: true},
		models.Jourdonnais:   {Passive: func(m *models.Metadata) { m.BuiltinBarrel = true }},
		models.KitCarlson:    {Draw: kitCarlsonDraw, ChoiceDraw: true},
		models.LuckyDuke:     {Passive: func(m *models.Metadata) { m.LuckyDraw = true }},
		models.PaulRegret:    {Passive: func(m *models.Metadata) { m.DistanceBonus++ }},
		models.PedroRamirez:  {Draw: pedroRamirezDraw, ChoiceDraw: true},
		models.RoseDoolan:    {Passive: func(m *models.Metadata) { m.RangeBonus++ }},
		models.SidKetchum:    {},
		models.SlabTheKiller: {Passive: func(m *models.Metadata) { m.DoubleMiss = true }},
		models.SuzyLafayette: {Passive: func(m *models.Metadata) { m.DrawWhenEmpty = true }},
		models.VultureSam:    {Hooks: vultureSamHooks},
		models.WillyTheKid:   {Passive: func(m *models.Metadata) { m.UnlimitedBang = true }},

		models.ApacheKid:   {Hooks: apacheKidHooks},
		models.BelleStar:   {Passive: func(m *models.Metadata) { m.IgnoreOthersEquipment = true }},
		models.BillNoface:  {Draw: billNofaceDraw},
		models.ChuckWengam: {},
		models.DocHolyday:  {},
		models.ElenaFuente: {Passive: func(m *models.Metadata) { m.AnyAsMissed = true }},
		models.GregDigger:  {Hooks: gregDiggerHooks},
		models.HerbHunter:  {Hooks: herbHunterHooks},
		models.JoseDelgado: {Draw: joseDelgadoDraw, ChoiceDraw: true},
		models.MollyStark:  {Hooks: mollyStarkHooks},
		models.PatBrennan:  {Draw: patBrennanDraw, ChoiceDraw: true},
		models.PixiePete:   {Passive: func(m *models.Metadata) { m.DrawCount = 3 }},
		models.SeanMallory: {Passive: func(m *models.Metadata) { m.HandLimit = 10 }},
		models.TequilaJoe:  {Passive: func(m *models.Metadata) { m.BeerHeal = 2 }},
		models.VeraCuster:  {},

		models.UncleWill:   {},
		models.JohnnyKisch: {Hooks: johnnyKischHooks},
	}
}

// hasAbility is the fire-time ability check every hook goes through.
func (g *Game) hasAbility(p *models.Player, id models.CharacterID) bool {
	return !g.flags.Bool(FlagNoAbilities) && p.HasAbility(id)
}

// installAbility subscribes id's hooks for p, once per player and ability.
func (g *Game) installAbility(p *models.Player, id models.CharacterID) {
	key := hookKey{player: p, id: id}
	if g.hooked[key] {
		return
	}
	g.hooked[key] = true
	if ch, ok := characters[id]; ok && ch.Hooks != nil {
		ch.Hooks(g, p)
	}
}

// refreshAbilities rebuilds p's ability-derived metadata.
func (g *Game) refreshAbilities(p *models.Player) {
	p.Meta.ResetDerived()
	if p.Meta.Ghost {
		p.Meta.NoHandLimit = true
	}
	if g.flags.Bool(FlagNoAbilities) {
		return
	}
	for _, id := range p.Abilities {
		if ch, ok := characters[id]; ok && ch.Passive != nil {
			ch.Passive(&p.Meta)
		}
	}
}

// needsChoice reports whether p's draw phase must wait for a DrawChoice.
func (g *Game) needsChoice(p *models.Player) bool {
	for _, f := range []string{FlagPeyote, FlagHardLiquor, FlagRanch, FlagHandcuffs} {
		if g.flags.Bool(f) {
			return true
		}
	}
	if g.flags.Bool(FlagBloodBrothers) && p.Health > 1 {
		return true
	}
	if p.Meta.IdentityOffer != models.CharacterNone {
		return true
	}
	for _, id := range p.Abilities {
		if characters[id].ChoiceDraw && g.hasAbility(p, id) {
			return true
		}
	}
	return false
}

func bartCassidyHooks(g *Game, p *models.Player) {
	g.Listeners.OnPlayerDamaged(func(victim, _ *models.Player, amount int) {
		if victim != p || p.Dead || !g.hasAbility(p, models.BartCassidy) {
			return
		}
		g.drawCards(p, amount)
	})
}

// Black Jack shows his second card; a red one earns a third.
func blackJackHooks(g *Game, p *models.Player) {
	g.Listeners.OnDrawPhase(func(drawer *models.Player) bool {
		if drawer != p || !g.hasAbility(p, models.BlackJack) {
			return false
		}
		g.drawTo(p)
		second := g.drawTo(p)
		if second != nil && second.Suit.IsRed() {
			g.Log.WithFields(logrus.Fields{"player": p.Name, "card": second.String()}).Debug("black jack draws again")
			g.drawTo(p)
		}
		return true
	})
}

func elGringoHooks(g *Game, p *models.Player) {
	g.Listeners.OnPlayerDamaged(func(victim, attacker *models.Player, amount int) {
		if victim != p || p.Dead || attacker == nil || attacker == p || !g.hasAbility(p, models.ElGringo) {
			return
		}
		for i := 0; i < amount && len(attacker.Hand) > 0; i++ {
			c := attacker.Hand[g.rng.Intn(len(attacker.Hand))]
			attacker.RemoveFromHand(c)
			p.Hand = append(p.Hand, c)
			g.checkEmptyHand(attacker)
		}
	})
}

func vultureSamHooks(g *Game, p *models.Player) {
	g.Listeners.OnPlayerDeath(func(dead, _ *models.Player) {
		if dead == p || p.Dead || !g.hasAbility(p, models.VultureSam) {
			return
		}
		for _, c := range dead.Equipment {
			c.Active = c.Kind != models.KindGreen
			p.Hand = append(p.Hand, c)
		}
		p.Hand = append(p.Hand, dead.Hand...)
		dead.Hand = nil
		dead.Equipment = nil
	})
}

// Apache Kid cannot be targeted by Diamond cards played by others.
func apacheKidHooks(g *Game, p *models.Player) {
	g.Listeners.AddCardPlayCheck(func(player *models.Player, c *models.Card, target *models.Player) bool {
		if target != p || player == p || !g.hasAbility(p, models.ApacheKid) {
			return true
		}
		return c.Suit != models.Diamonds
	})
}

func gregDiggerHooks(g *Game, p *models.Player) {
	g.Listeners.OnPlayerDeath(func(dead, _ *models.Player) {
		if dead == p || p.Dead || !g.hasAbility(p, models.GregDigger) {
			return
		}
		g.heal(p, 2)
	})
}

func herbHunterHooks(g *Game, p *models.Player) {
	g.Listeners.OnPlayerDeath(func(dead, _ *models.Player) {
		if dead == p || p.Dead || !g.hasAbility(p, models.HerbHunter) {
			return
		}
		g.drawCards(p, 2)
	})
}

// Molly Stark draws whenever she gives up a hand card outside her turn.
func mollyStarkHooks(g *Game, p *models.Player) {
	g.Listeners.OnCardPlayed(func(player *models.Player, c *models.Card, _ *models.Player) {
		if player != p || p == g.current || p.Dead || c.GreenBorder || !g.hasAbility(p, models.MollyStark) {
			return
		}
		g.drawTo(p)
	})
}

// Johnny Kisch: putting a card in play discards every other copy in play.
func johnnyKischHooks(g *Game, p *models.Player) {
	g.Listeners.OnCardPlayed(func(player *models.Player, c *models.Card, _ *models.Player) {
		if player != p || !c.IsEquipment() || p.Equipment.Get(c.Name) != c || !g.hasAbility(p, models.JohnnyKisch) {
			return
		}
		for _, o := range g.players {
			if o == p {
				continue
			}
			if dup := o.Equipment.Get(c.Name); dup != nil {
				o.Equipment.Remove(dup)
				g.discard(dup)
			}
		}
	})
}

// jesseJonesDraw takes his first card at random from the chosen player's
// hand and the second from the deck.
func jesseJonesDraw(g *Game, p *models.Player, choice DrawChoice) bool {
	from := g.Player(choice.Target)
	if from == nil || from == p || !from.Alive() || len(from.Hand) == 0 {
		return false
	}
	c := from.Hand[g.rng.Intn(len(from.Hand))]
	from.RemoveFromHand(c)
	p.Hand = append(p.Hand, c)
	g.checkEmptyHand(from)
	g.drawTo(p)
	return true
}

// kitCarlsonDraw looks at three cards and puts the chosen one back on top.
func kitCarlsonDraw(g *Game, p *models.Player, choice DrawChoice) bool {
	var seen []*models.Card
	for i := 0; i < 3; i++ {
		if c := g.Deck.Draw(); c != nil {
			seen = append(seen, c)
		}
	}
	if len(seen) == 0 {
		return true
	}
	back := choice.Discard
	if back < 0 || back >= len(seen) {
		back = len(seen) - 1
	}
	for i, c := range seen {
		if i == back && len(seen) == 3 {
			g.Deck.PushTop(c)
			continue
		}
		p.Hand = append(p.Hand, c)
		g.lastDrawn = c
	}
	return true
}

// pedroRamirezDraw takes the first card from the discard pile.
func pedroRamirezDraw(g *Game, p *models.Player, choice DrawChoice) bool {
	if !choice.FromDiscard || g.Deck.DiscardTop() == nil {
		return false
	}
	c := g.Deck.TakeDiscardTop()
	p.Hand = append(p.Hand, c)
	g.drawTo(p)
	return true
}

// joseDelgadoDraw may discard a blue card from hand for two extra cards,
// then draws normally.
func joseDelgadoDraw(g *Game, p *models.Player, choice DrawChoice) bool {
	if c := findCard(p.Hand, choice.BlueCard); c != nil && c.Kind == models.KindBlue {
		p.RemoveFromHand(c)
		g.discard(c)
		g.drawCards(p, 2)
	}
	return false
}

// patBrennanDraw takes one card in play instead of drawing.
func patBrennanDraw(g *Game, p *models.Player, choice DrawChoice) bool {
	owner := g.Player(choice.EquipmentOwner)
	if owner == nil || !owner.Alive() {
		return false
	}
	c := findCard(owner.Equipment, choice.EquipmentCard)
	if c == nil {
		return false
	}
	owner.Equipment.Remove(c)
	c.Active = c.Kind != models.KindGreen
	p.Hand = append(p.Hand, c)
	g.lastDrawn = c
	return true
}

// billNofaceDraw draws one plus one per missing health.
func billNofaceDraw(g *Game, p *models.Player, _ DrawChoice) bool {
	if g.flags.Has(FlagDrawCount) {
		return false
	}
	g.drawCards(p, 1+p.MaxHealth-p.Health)
	return true
}

func findCard(cards []*models.Card, id string) *models.Card {
	if id == "" {
		return nil
	}
	for _, c := range cards {
		if c.ID.String() == id {
			return c
		}
	}
	return nil
}
