package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Framer makes the target look suspicious tonight
type Framer struct{ game.BaseRole }

func (Framer) Role() game.Role { return game.Framer }

func (Framer) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return canSelectOther(g, actor, target)
}

func (Framer) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	if priority != game.PriorityDeception {
		return
	}
	if target, ok := firstTarget(g, actor); ok {
		g.SetNightFramed(target, true)
	}
}
