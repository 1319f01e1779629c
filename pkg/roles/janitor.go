package roles

import "github.com/jejutic/mafia_server/pkg/game"

const janitorCleans = 3

// Janitor hides the role and will of his target if it dies tonight, and learns them
type Janitor struct {
	game.BaseRole
	CleansRemaining int
	cleaned         game.PlayerRef
}

func NewJanitor() *Janitor {
	return &Janitor{
		CleansRemaining: janitorCleans,
		cleaned:         game.NoPlayer,
	}
}

func (*Janitor) Role() game.Role { return game.Janitor }

func (j *Janitor) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return canSelectOther(g, actor, target) && j.CleansRemaining > 0
}

func (j *Janitor) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	switch priority {
	case game.PriorityTop:
		j.cleaned = game.NoPlayer

	case game.PriorityDeception:
		target, ok := firstTarget(g, actor)
		if !ok || j.CleansRemaining <= 0 {
			return
		}
		if g.NightJailed(target) {
			g.PushNightMessage(actor, game.TargetJailed{})
			return
		}
		g.SetNightGraveCleaned(target)
		j.cleaned = target

	case game.PriorityInvestigative:
		if j.cleaned == game.NoPlayer || !g.NightDied(j.cleaned) {
			return
		}
		// a charge is spent only on an actual cleaning
		j.CleansRemaining--
		g.SetRoleState(actor, j)
		g.PushNightMessage(actor, game.PlayerRoleAndWill{
			Role: g.RoleOf(j.cleaned),
			Will: g.NightGraveWill(j.cleaned),
		})
	}
}
