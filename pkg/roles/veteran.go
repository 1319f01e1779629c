package roles

import "github.com/jejutic/mafia_server/pkg/game"

const veteranAlerts = 3

// Veteran goes on alert by selecting himself and shoots everybody who visits him
type Veteran struct {
	game.BaseRole
	AlertsRemaining int
	alerting        bool
}

func NewVeteran() *Veteran {
	return &Veteran{AlertsRemaining: veteranAlerts}
}

func (*Veteran) Role() game.Role { return game.Veteran }

func (v *Veteran) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return actor == target && canSelect(g, actor, target) &&
		g.Day() > 1 &&
		v.AlertsRemaining > 0
}

func (*Veteran) ConvertSelectionToVisits(_ *game.Game, _ game.PlayerRef, targets []game.PlayerRef) []game.Visit {
	if len(targets) == 0 {
		return nil
	}
	return []game.Visit{game.NewAstralVisit(targets[0], false)}
}

func (v *Veteran) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	switch priority {
	case game.PriorityTop:
		v.alerting = false
		if _, ok := firstTarget(g, actor); ok && v.AlertsRemaining > 0 {
			v.alerting = true
			v.AlertsRemaining--
			g.SetRoleState(actor, v)
		}

	case game.PriorityHeal:
		if v.alerting {
			g.RaiseDefense(actor, game.DefenseProtection)
		}

	case game.PriorityKill:
		if !v.alerting {
			return
		}
		for _, visitor := range g.Visitors(actor) {
			if visitor == actor {
				continue
			}
			g.TryNightKill(actor, visitor, game.KilledByRole(game.Veteran), game.AttackArmorPiercing)
			g.PushNightMessage(visitor, game.VeteranAttackedYou{})
			g.PushNightMessage(actor, game.VeteranAttackedVisitor{})
		}
	}
}
