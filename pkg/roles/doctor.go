package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Doctor protects one player a night, himself only once a game
type Doctor struct {
	game.BaseRole
	SelfHealsRemaining int
	healed             game.PlayerRef
}

func NewDoctor() *Doctor {
	return &Doctor{
		SelfHealsRemaining: 1,
		healed:             game.NoPlayer,
	}
}

func (*Doctor) Role() game.Role { return game.Doctor }

func (d *Doctor) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return (actor != target || d.SelfHealsRemaining > 0) && canSelect(g, actor, target)
}

func (d *Doctor) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	switch priority {
	case game.PriorityTop:
		d.healed = game.NoPlayer

	case game.PriorityHeal:
		target, ok := firstTarget(g, actor)
		if !ok {
			return
		}
		g.RaiseDefense(target, game.DefenseProtection)
		d.healed = target
		if target == actor {
			d.SelfHealsRemaining--
			g.SetRoleState(actor, d)
		}

	case game.PriorityInvestigative:
		if d.healed != game.NoPlayer && g.NightAttacked(d.healed) {
			g.PushNightMessage(actor, game.TargetWasAttacked{})
			g.PushNightMessage(d.healed, game.YouWereProtected{})
		}
	}
}
