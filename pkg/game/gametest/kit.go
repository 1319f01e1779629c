package gametest

import (
	"fmt"
	"testing"
	"time"

	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/stretchr/testify/require"
)

// Settings returns settings with long phases, so that only explicit EndPhase
// calls move a test game forward
func Settings(roles ...game.Role) game.Settings {
	settings := game.DefaultSettings(roles)
	for _, d := range []*time.Duration{
		&settings.PhaseTimes.Morning, &settings.PhaseTimes.Discussion,
		&settings.PhaseTimes.Voting, &settings.PhaseTimes.Testimony,
		&settings.PhaseTimes.Judgement, &settings.PhaseTimes.Evening,
		&settings.PhaseTimes.Night,
	} {
		*d = time.Hour
	}
	return settings
}

// Players seats roles in order as p0, p1, ... with users 100, 101, ...
func Players(roles ...game.Role) []game.Player {
	players := make([]game.Player, len(roles))
	for i, role := range roles {
		players[i] = game.Player{
			User: int64(100 + i),
			Name: fmt.Sprintf("p%d", i),
			Role: role,
		}
	}
	return players
}

// NewGame starts a game where player i has roles[i]
func NewGame(t testing.TB, catalog *game.Catalog, roles ...game.Role) (*game.Game, *Recorder) {
	t.Helper()

	r := NewRecorder()
	g, err := game.NewGame(r, catalog, Settings(roles...), Players(roles...))
	require.NoError(t, err)
	g.Start()
	return g, r
}

// ToPhase ends phases until phase starts
func ToPhase(t testing.TB, g *game.Game, phase game.PhaseType) {
	t.Helper()

	for i := 0; g.Phase() != phase; i++ {
		require.False(t, g.Over(), "game is over before %s", phase)
		require.Less(t, i, 16, "%s never reached", phase)
		g.EndPhase()
	}
}

// Night moves to the next night, commits the selections and resolves it.
// The game is in the morning afterwards, unless it ended.
func Night(t testing.TB, g *game.Game, selections map[game.PlayerRef][]game.PlayerRef) {
	t.Helper()

	ToPhase(t, g, game.Night)
	for _, p := range g.Players() {
		if targets, ok := selections[p]; ok {
			require.True(t, g.SetSelection(p, targets), "selection of %s", g.Name(p))
		}
	}
	g.EndPhase()
}

// Select is a shortcut for a selections map entry
func Select(targets ...game.PlayerRef) []game.PlayerRef {
	return targets
}
