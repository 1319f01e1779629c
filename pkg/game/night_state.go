package game

import "fmt"

// nightState is per player scratch data rebuilt at the start of every night
type nightState struct {
	aliveTonight bool
	died         bool
	attacked     bool
	roleblocked  bool
	jailed       bool
	silenced     bool
	framed       bool
	defense      DefensePower

	selection      []PlayerRef
	visits         []Visit
	appearedVisits []Visit
	messages       []ChatMessage

	graveCleaned    bool
	graveKillers    []GraveKiller
	graveWill       string
	graveDeathNotes []string
}

func (g *Game) resetNightState(p PlayerRef) {
	pl := g.players[p]
	pl.night = nightState{
		aliveTonight: pl.alive,
		defense:      g.Spec(p).Defense,
	}
}

func (g *Game) NightAliveTonight(p PlayerRef) bool { return g.players[p].night.aliveTonight }
func (g *Game) NightDied(p PlayerRef) bool { return g.players[p].night.died }
func (g *Game) NightAttacked(p PlayerRef) bool { return g.players[p].night.attacked }
func (g *Game) NightRoleblocked(p PlayerRef) bool { return g.players[p].night.roleblocked }
func (g *Game) NightJailed(p PlayerRef) bool { return g.players[p].night.jailed }
func (g *Game) NightSilenced(p PlayerRef) bool { return g.players[p].night.silenced }
func (g *Game) NightFramed(p PlayerRef) bool { return g.players[p].night.framed }
func (g *Game) NightDefense(p PlayerRef) DefensePower {
	return g.players[p].night.defense
}

// SetNightJailed is used by the jailor when the night starts
func (g *Game) SetNightJailed(p PlayerRef, jailed bool) {
	g.players[p].night.jailed = jailed
}

func (g *Game) SetNightSilenced(p PlayerRef, silenced bool) {
	g.players[p].night.silenced = silenced
}

func (g *Game) SetNightFramed(p PlayerRef, framed bool) {
	g.players[p].night.framed = framed
}

// RaiseDefense increases p's defense to d, lower values are ignored
func (g *Game) RaiseDefense(p PlayerRef, d DefensePower) {
	night := &g.players[p].night
	night.defense = night.defense.Max(d)
}

// Selection is what p has chosen for tonight
func (g *Game) Selection(p PlayerRef) []PlayerRef {
	return g.players[p].night.selection
}

func (g *Game) NightVisits(p PlayerRef) []Visit {
	return g.players[p].night.visits
}

// SetNightVisits replaces p's visits. Visits are frozen once the kill stage starts,
// changing them later is a bug in the calling role.
func (g *Game) SetNightVisits(p PlayerRef, visits []Visit) {
	if g.resolving && !g.priority.CanRedirect() {
		panic(fmt.Sprintf("visits of player %d changed at priority %s", p, g.priority))
	}
	g.players[p].night.visits = visits
}

// NightAppearedVisits are the visits as others see them, taken before any redirection
func (g *Game) NightAppearedVisits(p PlayerRef) []Visit {
	return g.players[p].night.appearedVisits
}

func (g *Game) SetNightAppearedVisits(p PlayerRef, visits []Visit) {
	g.players[p].night.appearedVisits = visits
}

// PushNightMessage stores information for p, delivered when the night ends
func (g *Game) PushNightMessage(p PlayerRef, msg ChatMessage) {
	night := &g.players[p].night
	night.messages = append(night.messages, msg)
}

func (g *Game) NightMessages(p PlayerRef) []ChatMessage {
	return g.players[p].night.messages
}

// Roleblock stops p from acting tonight unless p's role is immune
func (g *Game) Roleblock(p PlayerRef) {
	if g.Spec(p).RoleblockImmune {
		g.PushNightMessage(p, RoleBlocked{Immune: true})
		return
	}
	g.players[p].night.roleblocked = true
	g.SetNightVisits(p, nil)
	g.PushNightMessage(p, RoleBlocked{Immune: false})
}

// Visitors returns who physically visits p tonight with their current visits
func (g *Game) Visitors(p PlayerRef) []PlayerRef {
	var visitors []PlayerRef
	for _, other := range g.Players() {
		for _, visit := range g.NightVisits(other) {
			if visit.Target == p && !visit.Astral {
				visitors = append(visitors, other)
				break
			}
		}
	}
	return visitors
}

// grave fields

func (g *Game) NightGraveWill(p PlayerRef) string {
	return g.players[p].night.graveWill
}

func (g *Game) SetNightGraveWill(p PlayerRef, will string) {
	g.players[p].night.graveWill = will
}

// SetNightGraveCleaned hides role and will on the grave p will get tonight
func (g *Game) SetNightGraveCleaned(p PlayerRef) {
	g.players[p].night.graveCleaned = true
}

func (g *Game) NightGraveKillers(p PlayerRef) []GraveKiller {
	return g.players[p].night.graveKillers
}

func (g *Game) addNightGraveKiller(p PlayerRef, killer GraveKiller) {
	night := &g.players[p].night
	for _, k := range night.graveKillers {
		if k == killer {
			return
		}
	}
	night.graveKillers = append(night.graveKillers, killer)
}

func (g *Game) AddNightGraveDeathNote(p PlayerRef, note string) {
	night := &g.players[p].night
	night.graveDeathNotes = append(night.graveDeathNotes, note)
}
