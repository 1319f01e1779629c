package game

import "time"

// Tick advances the phase timer by d. Phases whose time ran out are ended and
// the next ones started, possibly several in one call.
func (g *Game) Tick(d time.Duration) {
	if g.over {
		return
	}
	defer g.flush()

	if g.day >= g.settings.MaxDay {
		g.log.Info().Int("day", g.day).Msg("max day reached")
		g.endGame(ResolutionNone)
		return
	}

	for g.remaining <= 0 && !g.over {
		g.startPhase(g.endPhase())
	}

	g.remaining -= d
	if g.remaining < 0 {
		g.remaining = 0
	}
}

// EndPhase ends the current phase at once and starts the next one
func (g *Game) EndPhase() {
	if g.over {
		return
	}
	defer g.flush()
	g.startPhase(g.endPhase())
}

// StartPhase jumps directly into phase. Meant for tools driving a game by hand.
func (g *Game) StartPhase(phase PhaseType) {
	if g.over {
		return
	}
	defer g.flush()
	g.startPhase(phase)
}

func (g *Game) startPhase(phase PhaseType) {
	g.phase = phase
	g.remaining = g.settings.PhaseTimes.Length(phase)

	switch phase {
	case Morning:
		g.day++
		g.AddMessageToGroup(AllGroup, PhaseChange{Phase: Morning, Day: g.day})
		g.materializeNightGraves()
		if g.checkForEnd() {
			return
		}

	case Discussion:
		g.trialsLeft = g.settings.Trials
		g.AddMessageToGroup(AllGroup, PhaseChange{Phase: Discussion, Day: g.day})

	case Voting:
		g.onTrial = NoPlayer
		for _, pl := range g.players {
			pl.vote = NoPlayer
		}
		g.AddMessageToGroup(AllGroup, PhaseChange{Phase: Voting, Day: g.day})
		g.AddMessageToGroup(AllGroup, TrialInformation{
			RequiredVotes: g.RequiredVotes(),
			TrialsLeft:    g.trialsLeft,
		})
		g.eOutput.HandlePlayerVotes(PlayerVotesEvent{
			Users: g.users(),
			Votes: g.votes(),
		})

	case Testimony:
		if g.onTrial == NoPlayer {
			panic("testimony without a player on trial")
		}
		g.AddMessageToGroup(AllGroup, PhaseChange{Phase: Testimony, Day: g.day})
		g.AddMessageToGroup(AllGroup, PlayerOnTrial{Player: g.onTrial})

	case Judgement:
		if g.onTrial == NoPlayer {
			panic("judgement without a player on trial")
		}
		for _, pl := range g.players {
			pl.verdict = Abstain
		}
		g.AddMessageToGroup(AllGroup, PhaseChange{Phase: Judgement, Day: g.day})

	case Evening:
		g.AddMessageToGroup(AllGroup, PhaseChange{Phase: Evening, Day: g.day})

	case Night:
		if g.checkForEnd() {
			return
		}
		g.startNight()
		g.AddMessageToGroup(AllGroup, PhaseChange{Phase: Night, Day: g.day})
	}

	g.log.Info().Stringer("phase", phase).Int("day", g.day).Msg("phase started")

	for _, hook := range g.hooks {
		hook.OnPhaseStart(g, phase)
	}
	for _, p := range g.Players() {
		g.players[p].state.OnPhaseStart(g, p, phase)
	}

	g.eOutput.HandlePhaseState(PhaseStateEvent{
		Users:     g.users(),
		Phase:     g.phase,
		Day:       g.day,
		Remaining: g.remaining,
		OnTrial:   g.onTrial,
	})
}

// endPhase finishes the current phase and returns the next one
func (g *Game) endPhase() PhaseType {
	switch g.phase {
	case Morning:
		return Discussion

	case Discussion:
		return Voting

	case Voting:
		return Night

	case Testimony:
		return Judgement

	case Judgement:
		if g.onTrial == NoPlayer {
			panic("judgement without a player on trial")
		}
		guilty, innocent := g.judgementResult()
		for _, p := range g.AlivePlayers() {
			if p != g.onTrial {
				g.AddMessageToGroup(AllGroup, JudgementVerdict{Voter: p, Verdict: g.players[p].verdict})
			}
		}
		g.AddMessageToGroup(AllGroup, TrialVerdict{Player: g.onTrial, Innocent: innocent, Guilty: guilty})

		g.trialsLeft--
		switch {
		case guilty > innocent:
			return Evening
		case g.trialsLeft <= 0:
			g.onTrial = NoPlayer
			g.AddMessageToGroup(AllGroup, NoTrialsLeft{})
			return Evening
		default:
			return Voting
		}

	case Evening:
		if g.onTrial != NoPlayer {
			lynched := g.onTrial
			g.onTrial = NoPlayer
			g.addGraves(g.lynchGrave(lynched))
		}
		return Night

	case Night:
		g.resolveNight()
		return Morning

	default:
		panic("unknown phase")
	}
}

// materializeNightGraves records the roles the victims died with before any
// death hook can change a role
func (g *Game) materializeNightGraves() {
	var graves []Grave
	for _, p := range g.Players() {
		if g.players[p].night.died && g.Alive(p) {
			graves = append(graves, g.nightGrave(p))
		}
	}
	if len(graves) != 0 {
		g.addGraves(graves...)
	}
}
