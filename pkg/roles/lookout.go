package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Lookout watches the target and learns who visited it
type Lookout struct{ game.BaseRole }

func (Lookout) Role() game.Role { return game.Lookout }

func (Lookout) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return canSelectOther(g, actor, target)
}

func (Lookout) ConvertSelectionToVisits(_ *game.Game, _ game.PlayerRef, targets []game.PlayerRef) []game.Visit {
	visits := make([]game.Visit, 0, len(targets))
	for _, target := range targets {
		visits = append(visits, game.NewAstralVisit(target, false))
	}
	return visits
}

func (Lookout) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	if priority != game.PriorityInvestigative {
		return
	}
	target, ok := firstTarget(g, actor)
	if !ok {
		return
	}

	var seen []game.PlayerRef
	for _, visitor := range g.Visitors(target) {
		if visitor != actor {
			seen = append(seen, visitor)
		}
	}
	g.PushNightMessage(actor, game.LookoutResult{Players: seen})
}
