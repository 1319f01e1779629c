package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Mafioso is the mafia's killer when there is no Godfather
type Mafioso struct{ game.BaseRole }

func (Mafioso) Role() game.Role { return game.Mafioso }

func (Mafioso) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return canSelectOther(g, actor, target) && g.Day() > 1
}

func (Mafioso) ConvertSelectionToVisits(g *game.Game, actor game.PlayerRef, targets []game.PlayerRef) []game.Visit {
	return attackVisits(g, actor, targets)
}

func (Mafioso) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	if priority != game.PriorityKill || g.Day() == 1 {
		return
	}
	if target, ok := firstTarget(g, actor); ok {
		g.TryNightKill(actor, target, game.KilledByMafia(), game.AttackBasic)
	}
}
