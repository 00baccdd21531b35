package game

import "github.com/jason-s-yu/bang/internal/models"

// Game-over messages.
const (
	WinOutlaws  = "Outlaws win!"
	WinRenegade = "Renegade wins!"
	WinSheriff  = "Sheriff and Deputies win!"
)

// checkWin applies the role victory rules after an elimination.
func (g *Game) checkWin() {
	if g.over {
		return
	}
	living := g.living()
	sheriff, bandits := false, 0
	for _, p := range living {
		switch p.Role {
		case models.Sheriff:
			sheriff = true
		case models.Outlaw, models.Renegade:
			bandits++
		}
	}
	switch {
	case !sheriff && len(living) == 1 && living[0].Role == models.Renegade:
		g.endGame(WinRenegade)
	case !sheriff:
		g.endGame(WinOutlaws)
	case bandits == 0:
		g.endGame(WinSheriff)
	}
}

// endGame emits the winner once; every later call is a no-op.
func (g *Game) endGame(msg string) {
	if g.over {
		return
	}
	g.over = true
	g.winner = msg
	g.phase = PhaseOver
	if g.store != nil {
		for _, c := range g.store.cards {
			g.discard(c)
		}
		g.store = nil
	}
	g.Log.WithField("result", msg).Info("game over")
	for _, fn := range g.Listeners.GameOver {
		fn(msg)
	}
}
