package game

import "github.com/jason-s-yu/bang/internal/models"

// Listeners are the extension points abilities and callers subscribe to.
// Each list fires in the order functions were appended.
type Listeners struct {
	PlayerDamaged  []func(p, attacker *models.Player, amount int)
	PlayerHealed   []func(p *models.Player, amount int)
	PlayerDeath    []func(p, killer *models.Player)
	CardPlayed     []func(p *models.Player, c *models.Card, target *models.Player)
	DrawPhase      []func(p *models.Player) bool // true suppresses the default draw
	TurnStarted    []func(p *models.Player)
	CardPlayChecks []func(p *models.Player, c *models.Card, target *models.Player) bool // false vetoes the play
	GameOver       []func(msg string)
}

func (l *Listeners) OnPlayerDamaged(fn func(p, attacker *models.Player, amount int)) {
	l.PlayerDamaged = append(l.PlayerDamaged, fn)
}

func (l *Listeners) OnPlayerHealed(fn func(p *models.Player, amount int)) {
	l.PlayerHealed = append(l.PlayerHealed, fn)
}

func (l *Listeners) OnPlayerDeath(fn func(p, killer *models.Player)) {
	l.PlayerDeath = append(l.PlayerDeath, fn)
}

func (l *Listeners) OnCardPlayed(fn func(p *models.Player, c *models.Card, target *models.Player)) {
	l.CardPlayed = append(l.CardPlayed, fn)
}

func (l *Listeners) OnDrawPhase(fn func(p *models.Player) bool) {
	l.DrawPhase = append(l.DrawPhase, fn)
}

func (l *Listeners) OnTurnStarted(fn func(p *models.Player)) {
	l.TurnStarted = append(l.TurnStarted, fn)
}

func (l *Listeners) AddCardPlayCheck(fn func(p *models.Player, c *models.Card, target *models.Player) bool) {
	l.CardPlayChecks = append(l.CardPlayChecks, fn)
}

func (l *Listeners) OnGameOver(fn func(msg string)) {
	l.GameOver = append(l.GameOver, fn)
}

func (g *Game) fireDamaged(p, attacker *models.Player, amount int) {
	for _, fn := range g.Listeners.PlayerDamaged {
		fn(p, attacker, amount)
	}
}

func (g *Game) fireHealed(p *models.Player, amount int) {
	for _, fn := range g.Listeners.PlayerHealed {
		fn(p, amount)
	}
}

func (g *Game) fireCardPlayed(p *models.Player, c *models.Card, target *models.Player) {
	for _, fn := range g.Listeners.CardPlayed {
		fn(p, c, target)
	}
}

// checksPass runs every registered card-play check; all must agree.
func (g *Game) checksPass(p *models.Player, c *models.Card, target *models.Player) bool {
	for _, fn := range g.Listeners.CardPlayChecks {
		if !fn(p, c, target) {
			return false
		}
	}
	return true
}
