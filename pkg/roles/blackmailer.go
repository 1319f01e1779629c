package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Blackmailer silences the target for the next day
type Blackmailer struct{ game.BaseRole }

func (Blackmailer) Role() game.Role { return game.Blackmailer }

func (Blackmailer) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return canSelectOther(g, actor, target)
}

func (Blackmailer) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	if priority != game.PriorityDeception {
		return
	}
	if target, ok := firstTarget(g, actor); ok {
		g.SetNightSilenced(target, true)
		g.PushNightMessage(target, game.Silenced{})
	}
}
