// internal/handlers/actions.go
package handlers

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jason-s-yu/bang/internal/game"
	"github.com/jason-s-yu/bang/internal/models"
)

var (
	errUnknownAction = errors.New("unknown action type")
	errUnknownCard   = errors.New("card not found")
	errUnknownTarget = errors.New("target player not found")
	errNotYourTurn   = errors.New("not your turn")
	errMissingCards  = errors.New("action needs two cards")
)

// applyAction routes a client action to the engine. Malformed requests
// return an error for the client; moves the rules forbid are dropped by the
// engine and leave the game unchanged. Assumes g.Mu is held.
func applyAction(g *game.Game, p *models.Player, a models.GameAction) error {
	target, err := actionTarget(g, a.Target)
	if err != nil {
		return err
	}

	switch a.ActionType {
	case models.ActionPlayCard:
		c, err := handCard(p, a.Card)
		if err != nil {
			return err
		}
		g.PlayCard(p, c, target)

	case models.ActionDiscardCard:
		c, err := handCard(p, a.Card)
		if err != nil {
			return err
		}
		g.DiscardCard(p, c)

	case models.ActionUseGreen:
		c, err := equipCard(p, a.Card)
		if err != nil {
			return err
		}
		g.UseGreenCard(p, c, target)

	case models.ActionDrawCard:
		choice, err := game.DecodeDrawChoice(a.Payload)
		if err != nil {
			return err
		}
		g.DrawPhase(p, choice)

	case models.ActionPatBrennan:
		if target == nil {
			return errUnknownTarget
		}
		c, err := equipCard(target, a.Card)
		if err != nil {
			return err
		}
		g.PatBrennanDraw(p, target, c)

	case models.ActionEndTurn:
		if g.CurrentPlayer() != p {
			return errNotYourTurn
		}
		g.EndTurn()

	case models.ActionStoreStart:
		g.StartGeneralStore(p)

	case models.ActionStorePick:
		g.GeneralStorePick(p, a.Index)

	case models.ActionAutoResponse:
		g.SetAutoResponse(p, a.Enabled)

	case models.ActionSidKetchum, models.ActionDocHolyday:
		c1, c2, err := handPair(p, a.Cards)
		if err != nil {
			return err
		}
		if a.ActionType == models.ActionSidKetchum {
			g.SidKetchumAbility(p, c1, c2)
		} else {
			g.DocHolydayAbility(p, c1, c2)
		}

	case models.ActionChuckWengam:
		g.ChuckWengamAbility(p)

	case models.ActionUncleWill:
		c, err := handCard(p, a.Card)
		if err != nil {
			return err
		}
		g.UncleWillAbility(p, c)

	case models.ActionVeraCuster:
		if target == nil {
			return errUnknownTarget
		}
		if _, err := g.VeraCusterCopy(p, target); err != nil {
			return err
		}

	case models.ActionRicochetShoot:
		if target == nil || len(a.Cards) != 1 {
			return fmt.Errorf("ricochet needs a target and one equipment card: %w", errUnknownTarget)
		}
		bang, err := handCard(p, a.Card)
		if err != nil {
			return err
		}
		equip, err := equipCard(target, a.Cards[0])
		if err != nil {
			return err
		}
		g.RicochetShoot(p, bang, target, equip)

	case models.ActionSniperShoot:
		if target == nil {
			return errUnknownTarget
		}
		b1, b2, err := handPair(p, a.Cards)
		if err != nil {
			return err
		}
		g.SniperShoot(p, b1, b2, target)

	default:
		return fmt.Errorf("%w: %q", errUnknownAction, a.ActionType)
	}
	return nil
}

func actionTarget(g *game.Game, name string) (*models.Player, error) {
	if name == "" {
		return nil, nil
	}
	t := g.Player(name)
	if t == nil {
		return nil, fmt.Errorf("%w: %q", errUnknownTarget, name)
	}
	return t, nil
}

func handCard(p *models.Player, id uuid.UUID) (*models.Card, error) {
	for _, c := range p.Hand {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s not in hand", errUnknownCard, id)
}

func equipCard(p *models.Player, id uuid.UUID) (*models.Card, error) {
	for _, c := range p.Equipment {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s not in play", errUnknownCard, id)
}

func handPair(p *models.Player, ids []uuid.UUID) (*models.Card, *models.Card, error) {
	if len(ids) != 2 {
		return nil, nil, errMissingCards
	}
	c1, err := handCard(p, ids[0])
	if err != nil {
		return nil, nil, err
	}
	c2, err := handCard(p, ids[1])
	if err != nil {
		return nil, nil, err
	}
	return c1, c2, nil
}
