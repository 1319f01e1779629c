package game

import "time"

// EventOutput receives everything a game wants to tell its players.
// Calls are made synchronously from the goroutine driving the game.
type EventOutput interface {
	HandleChatMessages(ChatMessagesEvent)
	HandlePhaseState(PhaseStateEvent)
	HandlePlayerVotes(PlayerVotesEvent)
	HandleAddGrave(AddGraveEvent)
	HandlePlayerAlive(PlayerAliveEvent)

	HandleYourSelection(YourSelectionEvent)
	HandleYourRoleState(YourRoleStateEvent)

	HandleWin(WinEvent)
	HandleNotifyStopGame(NotifyStopGameEvent) //unnecessary to call when stopping
}

type ChatMessagesEvent struct {
	User     int64
	Player   PlayerRef
	Messages []ChatMessage
}

type PhaseStateEvent struct {
	Users     []int64
	Phase     PhaseType
	Day       int
	Remaining time.Duration
	OnTrial   PlayerRef
}

type PlayerVotesEvent struct {
	Users []int64
	Votes map[PlayerRef]int // votes against each player
}

type AddGraveEvent struct {
	Users []int64
	Grave Grave
}

type PlayerAliveEvent struct {
	Users []int64
	Alive []bool // indexed by PlayerRef
}

// YourSelectionEvent is sent after every selection attempt with what was actually kept
type YourSelectionEvent struct {
	User    int64
	Player  PlayerRef
	Targets []PlayerRef
}

type YourRoleStateEvent struct {
	User   int64
	Player PlayerRef
	Role   Role
	State  RoleState
}

type WinEvent struct {
	Users   []int64
	State   ResolutionState
	Winners []string
}

type NotifyStopGameEvent struct {
	Users []int64
}
