// Package roles is the role catalog of the game: one game.RoleState
// implementation per role and the components shared by a side.
package roles

import (
	"github.com/jejutic/mafia_server/pkg/game"
)

// canSelect is the usual rule for single target night abilities, self included
func canSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return g.Alive(actor) && g.Alive(target) &&
		!g.NightJailed(actor) &&
		len(g.Selection(actor)) == 0
}

// canSelectOther is canSelect for abilities that can't target the actor or its team
func canSelectOther(g *game.Game, actor, target game.PlayerRef) bool {
	return actor != target && canSelect(g, actor, target) && !sameEvilTeam(g, actor, target)
}

func isMafia(g *game.Game, p game.PlayerRef) bool {
	return g.SideOf(p) == game.MafiaSide
}

func sameEvilTeam(g *game.Game, a, b game.PlayerRef) bool {
	return isMafia(g, a) && isMafia(g, b)
}

// firstTarget returns where the actor's first visit currently leads
func firstTarget(g *game.Game, actor game.PlayerRef) (game.PlayerRef, bool) {
	visits := g.NightVisits(actor)
	if len(visits) == 0 {
		return game.NoPlayer, false
	}
	return visits[0].Target, true
}

// rewriteVisits applies f to a copy of p's visits and stores the result
func rewriteVisits(g *game.Game, p game.PlayerRef, f func(v *game.Visit)) {
	visits := append([]game.Visit(nil), g.NightVisits(p)...)
	for i := range visits {
		f(&visits[i])
	}
	g.SetNightVisits(p, visits)
}

func attackVisits(_ *game.Game, _ game.PlayerRef, targets []game.PlayerRef) []game.Visit {
	return game.VisitsTo(targets, true)
}

func contains(refs []game.PlayerRef, target game.PlayerRef) bool {
	for _, ref := range refs {
		if ref == target {
			return true
		}
	}
	return false
}
