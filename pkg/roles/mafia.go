package roles

import "github.com/jejutic/mafia_server/pkg/game"

// MafiaComponent makes sure the mafia always has a killer: whenever no living
// Godfather or Mafioso is left, the first living mafia member becomes Mafioso.
type MafiaComponent struct{}

func (MafiaComponent) OnPhaseStart(g *game.Game, phase game.PhaseType) {
	if phase == game.Night {
		ensureMafiaKiller(g)
	}
}

func (MafiaComponent) OnAnyDeath(g *game.Game, dead game.PlayerRef) {
	if isMafia(g, dead) {
		ensureMafiaKiller(g)
	}
}

func (MafiaComponent) OnRoleSwitch(g *game.Game, _ game.PlayerRef, from, _ game.Role) {
	if from == game.Godfather || from == game.Mafioso {
		ensureMafiaKiller(g)
	}
}

func isMafiaKiller(role game.Role) bool {
	return role == game.Godfather || role == game.Mafioso
}

func ensureMafiaKiller(g *game.Game) {
	candidate := game.NoPlayer
	for _, p := range g.AlivePlayers() {
		if !isMafia(g, p) {
			continue
		}
		if isMafiaKiller(g.RoleOf(p)) {
			return
		}
		if candidate == game.NoPlayer {
			candidate = p
		}
	}
	if candidate != game.NoPlayer {
		g.SetRole(candidate, Mafioso{})
	}
}
