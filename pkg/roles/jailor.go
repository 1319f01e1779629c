package roles

import "github.com/jejutic/mafia_server/pkg/game"

const jailorExecutions = 3

// Jailor picks a prisoner during the day. The prisoner is blocked and talks only
// to the jailor at night, the jailor may execute him.
type Jailor struct {
	game.BaseRole
	ExecutionsRemaining int
	jailTarget          game.PlayerRef // chosen for the coming night
	jailed              game.PlayerRef // in jail tonight
}

func NewJailor() *Jailor {
	return &Jailor{
		ExecutionsRemaining: jailorExecutions,
		jailTarget:          game.NoPlayer,
		jailed:              game.NoPlayer,
	}
}

func (*Jailor) Role() game.Role { return game.Jailor }

// JailTarget is who will be jailed when the night starts
func (j *Jailor) JailTarget() game.PlayerRef {
	return j.jailTarget
}

func (j *Jailor) CanDayTarget(g *game.Game, actor, target game.PlayerRef) bool {
	return actor != target && g.Alive(actor) && g.Alive(target)
}

// DoDayAction toggles the jail target
func (j *Jailor) DoDayAction(g *game.Game, actor, target game.PlayerRef) {
	if j.jailTarget == target {
		j.jailTarget = game.NoPlayer
	} else {
		j.jailTarget = target
	}
	g.SetRoleState(actor, j)
}

func (j *Jailor) OnPhaseStart(g *game.Game, actor game.PlayerRef, phase game.PhaseType) {
	if phase != game.Night {
		return
	}
	j.jailed = game.NoPlayer
	if j.jailTarget != game.NoPlayer && g.Alive(j.jailTarget) && g.Alive(actor) {
		j.jailed = j.jailTarget
		g.SetNightJailed(j.jailed, true)
		g.AddMessageToGroup(game.JailGroup, game.JailedTarget{Player: j.jailed})
	}
	j.jailTarget = game.NoPlayer
	g.SetRoleState(actor, j)
}

func (j *Jailor) jailing(g *game.Game) bool {
	return j.jailed != game.NoPlayer && g.NightJailed(j.jailed)
}

func (j *Jailor) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return target == j.jailed && j.jailing(g) &&
		canSelectOther(g, actor, target) &&
		g.Day() > 1 &&
		j.ExecutionsRemaining > 0
}

func (*Jailor) ConvertSelectionToVisits(g *game.Game, actor game.PlayerRef, targets []game.PlayerRef) []game.Visit {
	return attackVisits(g, actor, targets)
}

func (j *Jailor) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	switch priority {
	case game.PriorityRoleblock:
		if j.jailing(g) {
			g.Roleblock(j.jailed)
		}

	case game.PriorityKill:
		target, ok := firstTarget(g, actor)
		if !ok || !g.NightJailed(target) || j.ExecutionsRemaining <= 0 {
			return
		}
		g.TryNightKill(actor, target, game.KilledByRole(game.Jailor), game.AttackProtectionPiercing)
		g.PushNightMessage(actor, game.JailorExecuted{Player: target})

		if game.RequiresOnlyThisResolutionState(g, target, game.ResolutionTown) {
			j.ExecutionsRemaining = 0
		} else {
			j.ExecutionsRemaining--
		}
		g.SetRoleState(actor, j)
	}
}

func (j *Jailor) SendChatGroups(g *game.Game, actor game.PlayerRef) []game.ChatGroup {
	if g.Phase() == game.Night && g.Alive(actor) && j.jailing(g) {
		return []game.ChatGroup{game.JailGroup}
	}
	return g.DefaultSendChatGroups(actor)
}

func (j *Jailor) ReceiveChatGroups(g *game.Game, actor game.PlayerRef) []game.ChatGroup {
	groups := g.DefaultReceiveChatGroups(actor)
	if g.Phase() == game.Night && g.Alive(actor) && j.jailing(g) {
		groups = append(groups, game.JailGroup)
	}
	return groups
}
