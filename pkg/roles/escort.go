package roles

import "github.com/jejutic/mafia_server/pkg/game"

type Escort struct{ game.BaseRole }

func (Escort) Role() game.Role { return game.Escort }

func (Escort) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return canSelectOther(g, actor, target)
}

func (Escort) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	if priority != game.PriorityRoleblock {
		return
	}
	if target, ok := firstTarget(g, actor); ok {
		g.Roleblock(target)
	}
}
