package game_test

import (
	. "github.com/jejutic/mafia_server/pkg/game"
)

// Minimal roles exercising the resolver without the real catalog.

type testVillager struct{ BaseRole }

func (testVillager) Role() Role { return Villager }

func canTargetOther(g *Game, actor, target PlayerRef) bool {
	return actor != target && g.Alive(actor) && g.Alive(target) && len(g.Selection(actor)) == 0
}

type testKiller struct{ BaseRole }

func (testKiller) Role() Role { return Mafioso }

func (testKiller) CanSelect(g *Game, actor, target PlayerRef) bool {
	return canTargetOther(g, actor, target)
}

func (testKiller) ConvertSelectionToVisits(_ *Game, _ PlayerRef, targets []PlayerRef) []Visit {
	return VisitsTo(targets, true)
}

func (testKiller) DoNightAction(g *Game, actor PlayerRef, priority Priority) {
	if priority != PriorityKill {
		return
	}
	for _, visit := range g.NightVisits(actor) {
		g.TryNightKill(actor, visit.Target, KilledByMafia(), AttackBasic)
	}
}

type testHealer struct{ BaseRole }

func (testHealer) Role() Role { return Doctor }

func (testHealer) CanSelect(g *Game, actor, target PlayerRef) bool {
	return g.Alive(target) && len(g.Selection(actor)) == 0
}

func (testHealer) DoNightAction(g *Game, actor PlayerRef, priority Priority) {
	if priority != PriorityHeal {
		return
	}
	for _, visit := range g.NightVisits(actor) {
		g.RaiseDefense(visit.Target, DefenseProtection)
	}
}

// testGuard takes every attack aimed at its target
type testGuard struct{ BaseRole }

func (testGuard) Role() Role { return Bodyguard }

func (testGuard) CanSelect(g *Game, actor, target PlayerRef) bool {
	return canTargetOther(g, actor, target)
}

func (testGuard) DoNightAction(g *Game, actor PlayerRef, priority Priority) {
	if priority != PriorityBodyguard || len(g.NightVisits(actor)) == 0 {
		return
	}
	protected := g.NightVisits(actor)[0].Target
	for _, attacker := range g.Players() {
		visits := append([]Visit(nil), g.NightVisits(attacker)...)
		for i := range visits {
			if visits[i].Attack && visits[i].Target == protected {
				visits[i].Target = actor
			}
		}
		g.SetNightVisits(attacker, visits)
	}
}

// testLateRedirector breaks the rules and rewrites its visits after the kill stage
type testLateRedirector struct{ BaseRole }

func (testLateRedirector) Role() Role { return Lookout }

func (testLateRedirector) CanSelect(g *Game, actor, target PlayerRef) bool {
	return canTargetOther(g, actor, target)
}

func (testLateRedirector) DoNightAction(g *Game, actor PlayerRef, priority Priority) {
	if priority == PriorityInvestigative {
		g.SetNightVisits(actor, nil)
	}
}

func testCatalog() *Catalog {
	c := NewCatalog()
	c.Register(RoleSpec{Role: Villager, Side: TownSide, New: func() RoleState { return testVillager{} }})
	c.Register(RoleSpec{Role: Doctor, Side: TownSide, New: func() RoleState { return testHealer{} }})
	c.Register(RoleSpec{Role: Bodyguard, Side: TownSide, New: func() RoleState { return testGuard{} }})
	c.Register(RoleSpec{Role: Lookout, Side: TownSide, New: func() RoleState { return testLateRedirector{} }})
	c.Register(RoleSpec{
		Role:         Mafioso,
		Side:         MafiaSide,
		MaximumCount: 1,
		Defense:      DefenseNone,
		New:          func() RoleState { return testKiller{} },
	})
	return c
}
