package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Transporter swaps two players: every visit to one of them lands on the other
type Transporter struct{ game.BaseRole }

func (Transporter) Role() game.Role { return game.Transporter }

func (Transporter) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	selection := g.Selection(actor)
	if !g.Alive(actor) || !g.Alive(target) || g.NightJailed(actor) {
		return false
	}
	return len(selection) == 0 || (len(selection) == 1 && selection[0] != target)
}

func (Transporter) ConvertSelectionToVisits(_ *game.Game, _ game.PlayerRef, targets []game.PlayerRef) []game.Visit {
	if len(targets) != 2 {
		return nil
	}
	return game.VisitsTo(targets, false)
}

func (Transporter) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	if priority != game.PriorityTransporter {
		return
	}
	visits := g.NightVisits(actor)
	if len(visits) < 2 {
		return
	}
	first, second := visits[0].Target, visits[1].Target

	g.PushNightMessage(first, game.Transported{})
	g.PushNightMessage(second, game.Transported{})

	for _, p := range g.Players() {
		if p == actor || g.RoleOf(p) == game.Transporter {
			continue
		}
		rewriteVisits(g, p, func(v *game.Visit) {
			switch v.Target {
			case first:
				v.Target = second
			case second:
				v.Target = first
			}
		})
	}
}
