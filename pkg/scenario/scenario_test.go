package scenario_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/jejutic/mafia_server/pkg/roles"
	"github.com/jejutic/mafia_server/pkg/scenario"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"no players", "nights: []", scenario.ErrNoPlayers},
		{"unknown role", "players: [{name: a, role: wizard}]", scenario.ErrUnknownRole},
		{"duplicate", "players: [{name: a, role: maf}, {name: a, role: doc}]", scenario.ErrDuplicateName},
		{"unknown selection target", `
players: [{name: a, role: maf}, {name: b, role: doc}]
nights: [{selections: {a: [zed]}}]`, scenario.ErrUnknownPlayer},
		{"unknown voter", `
players: [{name: a, role: maf}, {name: b, role: doc}]
nights: [{votes: {zed: a}}]`, scenario.ErrUnknownPlayer},
		{"bad verdict", `
players: [{name: a, role: maf}, {name: b, role: doc}]
nights: [{verdicts: {a: maybe}}]`, scenario.ErrBadVerdict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.Load(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad_unknownField(t *testing.T) {
	_, err := scenario.Load(strings.NewReader("players: [{name: a, role: maf, hat: red}]"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	s, err := scenario.LoadFile("testdata/lynch.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob", "carol", "dave", "eve"}, s.Names())
	assert.Equal(t, []game.Role{game.Mafioso, game.Doctor, game.Villager, game.Villager, game.Detective}, s.Roles())
	require.NotNil(t, s.PhaseTimes)
	assert.Equal(t, 20*time.Second, s.PhaseTimes.Judgement)
	assert.Equal(t, 2, s.Trials)
	assert.Len(t, s.Days, 3)

	_, err = scenario.LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	assert := assert.New(t)
	s, err := scenario.LoadFile("testdata/lynch.yaml")
	require.NoError(t, err)

	rep, err := scenario.Run(s, roles.Catalog(), zerolog.Nop())
	require.NoError(t, err)

	require.Len(t, rep.Days, 2, "the game ends before the third day")
	first, second := rep.Days[0], rep.Days[1]

	assert.Equal(2, first.Day)
	assert.Empty(first.Graves)
	assert.Equal([]string{"alice can't select [carol]"}, first.Rejected)
	assert.Contains(first.Messages["eve"], "Your target is suspicious")

	assert.Equal(2, second.Day, "the game ends as the night after the lynch would start")
	assert.Equal([]string{"eve can't vote for alice"}, second.Rejected, "alice is on trial after three votes")
	require.Len(t, second.Graves, 1)
	assert.Equal(game.PlayerRef(0), second.Graves[0].Player)
	assert.Equal(game.DiedAtDay, second.Graves[0].Phase)
	assert.Equal([]game.GraveKiller{game.KilledByLynching()}, second.Graves[0].Killers)

	assert.True(rep.Over)
	assert.Equal(game.ResolutionTown, rep.Winner)
	assert.Equal([]string{"bob", "carol", "dave", "eve"}, rep.Winners)

	var out bytes.Buffer
	rep.Print(&out, s.Names())
	assert.Contains(out.String(), "grave: alice died on day 2, killed by the town. Role: mafioso")
	assert.Contains(out.String(), "rejected: eve can't vote for alice")
	assert.Contains(out.String(), "eve <- Your target is suspicious")
	assert.Contains(out.String(), "game over: town, winners [bob carol dave eve]")
}

func TestRun_badSettings(t *testing.T) {
	s, err := scenario.Load(strings.NewReader(`
players: [{name: a, role: maf}, {name: b, role: maf}]`))
	require.NoError(t, err)

	_, err = scenario.Run(s, roles.Catalog(), zerolog.Nop())
	assert.ErrorIs(t, err, game.ErrTooManyOfRole)
}
