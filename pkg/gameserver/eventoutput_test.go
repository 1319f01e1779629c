package gameserver

import (
	"testing"

	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestEventOutput_render(t *testing.T) {
	o := newEventOutput[UserMessage](newFakeServer(), []game.Player{
		{User: 1, Name: "ann", Role: game.Villager},
		{User: 2, Name: "bob", Role: game.Mafioso},
	}, zerolog.Nop())

	tests := []struct {
		msg  game.ChatMessage
		want string
	}{
		{game.Normal{Sender: 0, Group: game.AllGroup, Text: "hi"}, "ann: hi"},
		{game.Normal{Sender: 1, Group: game.MafiaGroup, Text: "psst"}, "[mafia] bob: psst"},
		{game.Voted{Voter: 0, Votee: 1}, "ann voted for bob"},
		{game.Voted{Voter: 0, Votee: game.NoPlayer}, "ann withdrew the vote"},
		{game.LookoutResult{Players: []game.PlayerRef{0, 1}}, "Your target was visited by ann, bob"},
		{game.LookoutResult{}, "Your target was visited by nobody"},
		{game.SpyBug{Message: game.Silenced{}}, "Your bugged target was told: You were blackmailed, you can't talk or vote tomorrow"},
		{game.DetectiveResult{Suspicious: true}, "Your target is suspicious"},
		{game.RoleAssignment{Role: game.Godfather}, "Your role: godfather"},
		{game.GameOver{State: game.ResolutionTown}, "Game over: the town wins"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, o.Render(tt.msg))
	}
}

func TestEventOutput_grave(t *testing.T) {
	o := newEventOutput[UserMessage](newFakeServer(), []game.Player{
		{User: 1, Name: "ann", Role: game.Villager},
		{User: 2, Name: "bob", Role: game.Mafioso},
	}, zerolog.Nop())

	assert.Equal(t, "ann died on night 2, killed by the mafia. Role: villager\nWill: hello", o.Render(game.PlayerDied{Grave: game.Grave{
		Player:  0,
		Phase:   game.DiedAtNight,
		Day:     2,
		Role:    game.Villager,
		Will:    "hello",
		Killers: []game.GraveKiller{game.KilledByMafia()},
	}}))
	assert.Equal(t, "bob died on day 3, killed by the town. The role was cleaned", o.Render(game.PlayerDied{Grave: game.Grave{
		Player:  1,
		Phase:   game.DiedAtDay,
		Day:     3,
		Killers: []game.GraveKiller{game.KilledByLynching()},
	}}))
}

func TestEventOutput_votingKeyboard(t *testing.T) {
	fs := newFakeServer()
	o := newEventOutput[UserMessage](fs, []game.Player{
		{User: 1, Name: "ann"}, {User: 2, Name: "bob"}, {User: 3, Name: "cid"},
	}, zerolog.Nop())

	o.HandlePlayerAlive(game.PlayerAliveEvent{Alive: []bool{true, false, true}})
	o.HandlePhaseState(game.PhaseStateEvent{Users: []int64{1}, Phase: game.Voting, Day: 2})

	if assert.Len(t, fs.sent, 1) {
		assert.Equal(t, []string{"/vote ann", "/vote cid"}, fs.sent[0].Options)
	}
}
