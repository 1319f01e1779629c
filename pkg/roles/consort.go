package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Consort is the mafia's escort
type Consort struct{ game.BaseRole }

func (Consort) Role() game.Role { return game.Consort }

func (Consort) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return canSelectOther(g, actor, target)
}

func (Consort) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	if priority != game.PriorityRoleblock {
		return
	}
	if target, ok := firstTarget(g, actor); ok {
		g.Roleblock(target)
	}
}
