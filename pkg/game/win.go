package game

// Resolution returns the state p's role needs to win
func (g *Game) Resolution(p PlayerRef) ResolutionState {
	return g.SideOf(p).Resolution()
}

// RequiresOnlyThisResolutionState iff p wins exactly when the game ends with state
func RequiresOnlyThisResolutionState(g *Game, p PlayerRef, state ResolutionState) bool {
	return g.Resolution(p) == state
}

// CanWinTogether iff a and b don't play for different outcomes
func CanWinTogether(g *Game, a, b PlayerRef) bool {
	ra, rb := g.Resolution(a), g.Resolution(b)
	return ra == ResolutionNone || rb == ResolutionNone || ra == rb
}

// DefaultWonGame wins with the own side
func (g *Game) DefaultWonGame(p PlayerRef) bool {
	state := g.Resolution(p)
	return g.over && state != ResolutionNone && state == g.winner
}

// resolvedState returns the outcome if everybody alive can win together
func (g *Game) resolvedState() (ResolutionState, bool) {
	state := ResolutionNone
	for _, p := range g.AlivePlayers() {
		switch s := g.Resolution(p); {
		case s == ResolutionNone:
		case state == ResolutionNone:
			state = s
		case state != s:
			return ResolutionNone, false
		}
	}
	return state, true
}

func (g *Game) checkForEnd() bool {
	state, ok := g.resolvedState()
	if !ok {
		return false
	}
	g.endGame(state)
	return true
}

func (g *Game) endGame(state ResolutionState) {
	g.over = true
	g.winner = state
	g.AddMessageToGroup(AllGroup, GameOver{State: state})

	for _, p := range g.Players() {
		g.players[p].state.OnGameEnding(g, p)
	}

	e := WinEvent{
		Users: g.users(),
		State: state,
	}
	for _, p := range g.Players() {
		if g.players[p].state.WonGame(g, p) {
			e.Winners = append(e.Winners, g.Name(p))
		}
	}
	g.log.Info().Stringer("state", state).Strs("winners", e.Winners).Msg("game over")
	g.eOutput.HandleWin(e)
}
