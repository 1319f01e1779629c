package roles_test

import (
	"testing"

	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/jejutic/mafia_server/pkg/game/gametest"
	"github.com/jejutic/mafia_server/pkg/roles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJester(t *testing.T) {
	assert := assert.New(t)
	g, r := newGame(t, game.Jester, game.Villager, game.Villager, game.Mafioso, game.Villager)

	gametest.ToPhase(t, g, game.Voting)
	for _, voter := range []game.PlayerRef{1, 2, 4} {
		require.True(t, g.Vote(voter, 0))
	}
	g.EndPhase()
	require.True(t, g.SetVerdict(1, game.Guilty))
	require.True(t, g.SetVerdict(2, game.Guilty))
	require.True(t, g.SetVerdict(4, game.Innocent))
	g.EndPhase()
	g.EndPhase()
	require.Equal(t, game.Night, g.Phase())
	require.False(t, g.Alive(0))

	jester := g.RoleState(0).(*roles.Jester)
	assert.True(jester.Lynched)
	assert.True(jester.WonGame(g, 0))

	assert.Equal([]game.PlayerRef{1, 2}, g.AllowedSelections(0), "only guilty voters can be haunted")
	assert.False(g.SetSelection(0, []game.PlayerRef{4}))
	require.True(t, g.SetSelection(0, []game.PlayerRef{1}))
	g.EndPhase()

	assert.False(g.Alive(1))
	assert.Contains(r.Messages(1), game.JesterHaunted{})
	require.Len(t, r.Graves, 2)
	assert.Equal([]game.GraveKiller{game.KilledByRole(game.Jester)}, r.Graves[1].Killers)

	gametest.ToPhase(t, g, game.Night)
	assert.Empty(g.AllowedSelections(0), "a single haunt")
}

func TestJester_notLynched(t *testing.T) {
	g, _ := newGame(t, game.Jester, game.Villager, game.Villager, game.Mafioso)

	gametest.Night(t, g, selections{3: sel(0)})

	require.False(t, g.Alive(0))
	jester := g.RoleState(0).(*roles.Jester)
	assert.False(t, jester.Lynched)
	assert.False(t, jester.WonGame(g, 0))
}
