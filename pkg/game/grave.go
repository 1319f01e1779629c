package game

// GraveRef is an index into the game's graves
type GraveRef int

type GravePhase int

const (
	_ GravePhase = iota
	DiedAtNight
	DiedAtDay
)

type KillerKind int

const (
	_ KillerKind = iota
	KillerMafia
	KillerRole
	KillerSuicide
	KillerLynching
)

// GraveKiller is one cause of death written on a grave
type GraveKiller struct {
	Kind KillerKind
	Role Role // set for KillerRole
}

func KilledByMafia() GraveKiller { return GraveKiller{Kind: KillerMafia} }
func KilledByRole(role Role) GraveKiller { return GraveKiller{Kind: KillerRole, Role: role} }
func KilledBySuicide() GraveKiller { return GraveKiller{Kind: KillerSuicide} }
func KilledByLynching() GraveKiller { return GraveKiller{Kind: KillerLynching} }

// Grave is the public record of a death
type Grave struct {
	Player     PlayerRef
	Phase      GravePhase
	Day        int
	Role       Role // zero if the grave was cleaned
	Will       string
	Killers    []GraveKiller
	DeathNotes []string
}

// Cleaned iff the role of the dead is hidden
func (gr Grave) Cleaned() bool {
	return gr.Role == 0
}

func (g *Game) Graves() []Grave {
	return g.graves
}

func (g *Game) Grave(ref GraveRef) Grave {
	return g.graves[ref]
}

func (g *Game) nightGrave(p PlayerRef) Grave {
	night := g.players[p].night
	grave := Grave{
		Player:     p,
		Phase:      DiedAtNight,
		Day:        g.day,
		Role:       g.RoleOf(p),
		Will:       night.graveWill,
		Killers:    append([]GraveKiller(nil), night.graveKillers...),
		DeathNotes: append([]string(nil), night.graveDeathNotes...),
	}
	if night.graveCleaned {
		grave.Role = 0
		grave.Will = ""
	}
	return grave
}

func (g *Game) lynchGrave(p PlayerRef) Grave {
	return Grave{
		Player:  p,
		Phase:   DiedAtDay,
		Day:     g.day,
		Role:    g.RoleOf(p),
		Will:    g.Will(p),
		Killers: []GraveKiller{KilledByLynching()},
	}
}

// addGraves publishes deaths and runs everybody's death hooks. Every grave is
// built and every victim marked dead before the first hook runs, so hooks
// never see a player dying in the same batch as alive.
func (g *Game) addGraves(graves ...Grave) {
	refs := make([]GraveRef, len(graves))
	for i, grave := range graves {
		g.graves = append(g.graves, grave)
		refs[i] = GraveRef(len(g.graves) - 1)

		g.log.Info().Int("player", int(grave.Player)).Int("day", grave.Day).Msg("player died")
		g.eOutput.HandleAddGrave(AddGraveEvent{
			Users: g.users(),
			Grave: grave,
		})
		g.AddMessageToGroup(AllGroup, PlayerDied{Grave: grave})
		g.setAlive(grave.Player, false)
	}

	for i, grave := range graves {
		for _, p := range g.Players() {
			g.players[p].state.OnAnyDeath(g, p, grave.Player)
		}
		for _, hook := range g.hooks {
			hook.OnAnyDeath(g, grave.Player)
		}
		for _, p := range g.Players() {
			g.players[p].state.OnGraveAdded(g, p, refs[i])
		}
	}
}
