package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Godfather leads the mafia. He kills from the second night and may name a
// backup who kills in his place when he is roleblocked and who inherits the role.
type Godfather struct {
	game.BaseRole
	Backup game.PlayerRef
}

func NewGodfather() *Godfather {
	return &Godfather{Backup: game.NoPlayer}
}

func (*Godfather) Role() game.Role { return game.Godfather }

func (*Godfather) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return canSelectOther(g, actor, target) && g.Day() > 1
}

func (*Godfather) ConvertSelectionToVisits(g *game.Game, actor game.PlayerRef, targets []game.PlayerRef) []game.Visit {
	return attackVisits(g, actor, targets)
}

func (gf *Godfather) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	if priority != game.PriorityKill || g.Day() == 1 {
		return
	}

	if g.NightRoleblocked(actor) {
		if gf.Backup == game.NoPlayer || !g.Alive(gf.Backup) {
			return
		}
		target, ok := firstTarget(g, gf.Backup)
		if !ok {
			return
		}
		for _, p := range g.Players() {
			if isMafia(g, p) {
				g.PushNightMessage(p, game.GodfatherBackupKilled{Backup: gf.Backup})
			}
		}
		g.TryNightKill(gf.Backup, target, game.KilledByMafia(), game.AttackBasic)
		return
	}

	if target, ok := firstTarget(g, actor); ok {
		g.TryNightKill(actor, target, game.KilledByMafia(), game.AttackBasic)
	}
}

func (*Godfather) CanDayTarget(g *game.Game, actor, target game.PlayerRef) bool {
	return actor != target && g.Alive(actor) && g.Alive(target) && isMafia(g, target)
}

// DoDayAction names target as the backup, naming the same player again removes him
func (gf *Godfather) DoDayAction(g *game.Game, actor, target game.PlayerRef) {
	if gf.Backup == target {
		gf.Backup = game.NoPlayer
	} else {
		gf.Backup = target
	}
	g.SetRoleState(actor, gf)
	g.AddMessageToGroup(game.MafiaGroup, game.GodfatherBackup{Backup: gf.Backup})
}

func (gf *Godfather) OnAnyDeath(g *game.Game, actor, dead game.PlayerRef) {
	if actor != dead || gf.Backup == game.NoPlayer {
		return
	}
	backup := gf.Backup
	gf.Backup = game.NoPlayer
	g.SetRoleState(actor, gf)

	if g.Alive(backup) {
		g.SetRole(backup, NewGodfather())
	}
}
