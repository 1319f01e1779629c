package game

// TryNightKill attacks target on behalf of attacker. It returns true iff target
// is dead tonight after the call. A player can die once a night, further
// successful attacks only add their cause to the grave.
func (g *Game) TryNightKill(attacker, target PlayerRef, killer GraveKiller, power AttackPower) bool {
	if !g.Alive(target) {
		return false
	}

	night := &g.players[target].night
	if night.died {
		g.addNightGraveKiller(target, killer)
		return true
	}

	night.attacked = true
	if night.defense.CanBlock(power) {
		g.log.Debug().Int("attacker", int(attacker)).Int("target", int(target)).
			Stringer("attack", power).Stringer("defense", night.defense).Msg("attack blocked")
		g.PushNightMessage(target, YouSurvivedAttack{})
		g.PushNightMessage(attacker, TargetSurvivedAttack{})
		return false
	}

	g.log.Debug().Int("attacker", int(attacker)).Int("target", int(target)).
		Stringer("attack", power).Msg("player killed")
	night.died = true
	g.addNightGraveKiller(target, killer)
	g.PushNightMessage(target, YouDied{})
	return true
}
