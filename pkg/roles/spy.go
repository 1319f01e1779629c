package roles

import (
	"sort"

	"github.com/jejutic/mafia_server/pkg/game"
)

// Spy sees where the mafia went and bugs one player to hear what happened to him
type Spy struct{ game.BaseRole }

func (Spy) Role() game.Role { return game.Spy }

func (Spy) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return canSelectOther(g, actor, target)
}

func (Spy) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	switch priority {
	case game.PriorityInvestigative:
		if g.NightRoleblocked(actor) || !g.Alive(actor) {
			return
		}
		var targets []game.PlayerRef
		for _, p := range g.Players() {
			if p == actor || !isMafia(g, p) {
				continue
			}
			for _, visit := range g.NightAppearedVisits(p) {
				if !visit.Astral {
					targets = append(targets, visit.Target)
				}
			}
		}
		sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
		g.PushNightMessage(actor, game.SpyMafiaVisit{Players: targets})

	case game.PrioritySpyBug:
		target, ok := firstTarget(g, actor)
		if !ok {
			return
		}
		for _, msg := range g.NightMessages(target) {
			switch msg.(type) {
			case game.Silenced, game.RoleBlocked, game.YouWereProtected, game.Transported, game.YouWerePossessed:
				g.PushNightMessage(actor, game.SpyBug{Message: msg})
			}
		}
	}
}
