package roles_test

import (
	"testing"

	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/jejutic/mafia_server/pkg/game/gametest"
	"github.com/jejutic/mafia_server/pkg/roles"
	"github.com/stretchr/testify/require"
)

type selections = map[game.PlayerRef][]game.PlayerRef

var sel = gametest.Select

// newGame starts a game with the full catalog and lets the first night pass,
// so that killing roles can act on the next one
func newGame(t *testing.T, roleList ...game.Role) (*game.Game, *gametest.Recorder) {
	t.Helper()

	g, r := gametest.NewGame(t, roles.Catalog(), roleList...)
	gametest.Night(t, g, nil)
	require.Equal(t, 2, g.Day())
	r.Reset()
	return g, r
}

// lynch puts p on trial with the votes of voters, who then vote guilty.
// The game is in the night afterwards.
func lynch(t *testing.T, g *game.Game, p game.PlayerRef, voters ...game.PlayerRef) {
	t.Helper()

	gametest.ToPhase(t, g, game.Voting)
	for _, voter := range voters {
		require.True(t, g.Vote(voter, p))
	}
	require.Equal(t, game.Testimony, g.Phase())
	require.Equal(t, p, g.OnTrial())

	g.EndPhase()
	for _, voter := range voters {
		require.True(t, g.SetVerdict(voter, game.Guilty))
	}
	g.EndPhase()
	require.Equal(t, game.Evening, g.Phase())
	g.EndPhase()
	require.False(t, g.Alive(p))
}
