// Package gametest helps testing games and roles: it records everything a game
// outputs and drives games through phases.
package gametest

import (
	"github.com/jejutic/mafia_server/pkg/game"
)

// Recorder is a game.EventOutput keeping every event in memory
type Recorder struct {
	Chat       map[game.PlayerRef][]game.ChatMessage
	Phases     []game.PhaseStateEvent
	Votes      []game.PlayerVotesEvent
	Graves     []game.Grave
	Alive      [][]bool
	Selections map[game.PlayerRef][]game.PlayerRef // last reported selection
	RoleStates []game.YourRoleStateEvent
	Wins       []game.WinEvent
	Stopped    bool
}

func NewRecorder() *Recorder {
	return &Recorder{
		Chat:       make(map[game.PlayerRef][]game.ChatMessage),
		Selections: make(map[game.PlayerRef][]game.PlayerRef),
	}
}

// Messages returns everything delivered to p so far
func (r *Recorder) Messages(p game.PlayerRef) []game.ChatMessage {
	return r.Chat[p]
}

// Reset forgets chat history, other events are kept
func (r *Recorder) Reset() {
	r.Chat = make(map[game.PlayerRef][]game.ChatMessage)
}

func (r *Recorder) HandleChatMessages(e game.ChatMessagesEvent) {
	r.Chat[e.Player] = append(r.Chat[e.Player], e.Messages...)
}

func (r *Recorder) HandlePhaseState(e game.PhaseStateEvent) {
	r.Phases = append(r.Phases, e)
}

func (r *Recorder) HandlePlayerVotes(e game.PlayerVotesEvent) {
	r.Votes = append(r.Votes, e)
}

func (r *Recorder) HandleAddGrave(e game.AddGraveEvent) {
	r.Graves = append(r.Graves, e.Grave)
}

func (r *Recorder) HandlePlayerAlive(e game.PlayerAliveEvent) {
	r.Alive = append(r.Alive, e.Alive)
}

func (r *Recorder) HandleYourSelection(e game.YourSelectionEvent) {
	r.Selections[e.Player] = e.Targets
}

func (r *Recorder) HandleYourRoleState(e game.YourRoleStateEvent) {
	r.RoleStates = append(r.RoleStates, e)
}

func (r *Recorder) HandleWin(e game.WinEvent) {
	r.Wins = append(r.Wins, e)
}

func (r *Recorder) HandleNotifyStopGame(game.NotifyStopGameEvent) {
	r.Stopped = true
}
