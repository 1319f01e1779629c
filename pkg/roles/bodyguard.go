package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Bodyguard takes the attacks aimed at his target and fights back
type Bodyguard struct {
	game.BaseRole
	SelfShieldsRemaining int
	protected            game.PlayerRef
	redirected           []game.PlayerRef
}

func NewBodyguard() *Bodyguard {
	return &Bodyguard{
		SelfShieldsRemaining: 1,
		protected:            game.NoPlayer,
	}
}

func (*Bodyguard) Role() game.Role { return game.Bodyguard }

func (b *Bodyguard) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return (actor != target || b.SelfShieldsRemaining > 0) && canSelect(g, actor, target)
}

func (b *Bodyguard) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	switch priority {
	case game.PriorityTop:
		b.protected = game.NoPlayer
		b.redirected = nil

	case game.PriorityBodyguard:
		target, ok := firstTarget(g, actor)
		if !ok || target == actor {
			return
		}
		for _, attacker := range g.Players() {
			if attacker == actor {
				continue
			}
			redirected := false
			rewriteVisits(g, attacker, func(v *game.Visit) {
				if v.Attack && v.Target == target {
					v.Target = actor
					redirected = true
				}
			})
			if redirected {
				b.redirected = append(b.redirected, attacker)
				b.protected = target
			}
		}

	case game.PriorityHeal:
		if target, ok := firstTarget(g, actor); ok && target == actor {
			b.SelfShieldsRemaining--
			g.RaiseDefense(actor, game.DefenseProtection)
			g.SetRoleState(actor, b)
		}

	case game.PriorityKill:
		for _, attacker := range b.redirected {
			g.TryNightKill(actor, attacker, game.KilledByRole(game.Bodyguard), game.AttackArmorPiercing)
		}

	case game.PriorityInvestigative:
		if b.protected != game.NoPlayer {
			g.PushNightMessage(actor, game.TargetWasAttacked{})
			g.PushNightMessage(b.protected, game.YouWereProtected{})
		}
	}
}
