package roles

import "github.com/jejutic/mafia_server/pkg/game"

const vigilanteBullets = 3

// Vigilante shoots from the second night. Killing a town member makes him
// shoot himself the next night.
type Vigilante struct {
	game.BaseRole
	BulletsRemaining int
	willSuicide      bool
}

func NewVigilante() *Vigilante {
	return &Vigilante{BulletsRemaining: vigilanteBullets}
}

func (*Vigilante) Role() game.Role { return game.Vigilante }

func (v *Vigilante) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return canSelectOther(g, actor, target) &&
		g.Day() > 1 &&
		v.BulletsRemaining > 0 &&
		!v.willSuicide
}

func (*Vigilante) ConvertSelectionToVisits(g *game.Game, actor game.PlayerRef, targets []game.PlayerRef) []game.Visit {
	return attackVisits(g, actor, targets)
}

func (v *Vigilante) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	switch priority {
	case game.PriorityTop:
		if v.willSuicide {
			v.willSuicide = false
			g.TryNightKill(actor, actor, game.KilledBySuicide(), game.AttackProtectionPiercing)
			g.PushNightMessage(actor, game.VigilanteSuicide{})
			g.SetRoleState(actor, v)
		}

	case game.PriorityKill:
		target, ok := firstTarget(g, actor)
		if !ok || v.BulletsRemaining <= 0 || g.Day() == 1 {
			return
		}
		v.BulletsRemaining--
		if g.TryNightKill(actor, target, game.KilledByRole(game.Vigilante), game.AttackBasic) &&
			game.RequiresOnlyThisResolutionState(g, target, game.ResolutionTown) {
			v.willSuicide = true
		}
		g.SetRoleState(actor, v)
	}
}
