package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Detective learns whether the target looks suspicious
type Detective struct{ game.BaseRole }

func (Detective) Role() game.Role { return game.Detective }

func (Detective) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return canSelectOther(g, actor, target)
}

func (Detective) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	if priority != game.PriorityInvestigative {
		return
	}
	target, ok := firstTarget(g, actor)
	if !ok {
		return
	}
	g.PushNightMessage(actor, game.DetectiveResult{Suspicious: suspicious(g, target)})
}

func suspicious(g *game.Game, p game.PlayerRef) bool {
	if g.NightFramed(p) {
		return true
	}
	return isMafia(g, p) && !g.Spec(p).InnocentAura
}
