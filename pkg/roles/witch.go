package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Witch takes control of a player and sends all of his visits to a second
// player. She hears what the controlled player is told.
type Witch struct {
	game.BaseRole
	possessed game.PlayerRef
}

func NewWitch() *Witch {
	return &Witch{possessed: game.NoPlayer}
}

func (*Witch) Role() game.Role { return game.Witch }

func (*Witch) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	if !g.Alive(actor) || !g.Alive(target) || g.NightJailed(actor) {
		return false
	}
	switch selection := g.Selection(actor); len(selection) {
	case 0:
		return actor != target && !sameEvilTeam(g, actor, target)
	case 1:
		return selection[0] != target
	default:
		return false
	}
}

func (*Witch) ConvertSelectionToVisits(_ *game.Game, _ game.PlayerRef, targets []game.PlayerRef) []game.Visit {
	if len(targets) != 2 {
		return nil
	}
	return []game.Visit{
		game.NewVisit(targets[0], false),
		game.NewAstralVisit(targets[1], false),
	}
}

func (w *Witch) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	switch priority {
	case game.PriorityTop:
		w.possessed = game.NoPlayer

	case game.PriorityPossess:
		visits := g.NightVisits(actor)
		if len(visits) < 2 {
			return
		}
		victim, forced := visits[0].Target, visits[1].Target

		if g.Spec(victim).PossessionImmune {
			g.PushNightMessage(victim, game.YouWerePossessed{Immune: true})
			g.PushNightMessage(actor, game.WitchTargetImmune{})
			return
		}
		rewriteVisits(g, victim, func(v *game.Visit) {
			v.Target = forced
		})
		g.PushNightMessage(victim, game.YouWerePossessed{Immune: false})
		w.possessed = victim

	case game.PriorityStealMessages:
		if w.possessed == game.NoPlayer {
			return
		}
		for _, msg := range g.NightMessages(w.possessed) {
			g.PushNightMessage(actor, game.TargetsMessage{Message: msg})
		}
	}
}
