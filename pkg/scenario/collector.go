package scenario

import "github.com/jejutic/mafia_server/pkg/game"

// collector keeps the chat and graves of a replayed game until the end of a day
type collector struct {
	chat   map[game.PlayerRef][]game.ChatMessage
	graves []game.Grave
	win    *game.WinEvent
}

func newCollector() *collector {
	return &collector{chat: make(map[game.PlayerRef][]game.ChatMessage)}
}

func (c *collector) flush() (map[game.PlayerRef][]game.ChatMessage, []game.Grave) {
	chat, graves := c.chat, c.graves
	c.chat = make(map[game.PlayerRef][]game.ChatMessage)
	c.graves = nil
	return chat, graves
}

func (c *collector) HandleChatMessages(e game.ChatMessagesEvent) {
	c.chat[e.Player] = append(c.chat[e.Player], e.Messages...)
}

func (c *collector) HandleAddGrave(e game.AddGraveEvent) {
	c.graves = append(c.graves, e.Grave)
}

func (c *collector) HandleWin(e game.WinEvent) {
	c.win = &e
}

func (c *collector) HandlePhaseState(game.PhaseStateEvent)         {}
func (c *collector) HandlePlayerVotes(game.PlayerVotesEvent)       {}
func (c *collector) HandlePlayerAlive(game.PlayerAliveEvent)       {}
func (c *collector) HandleYourSelection(game.YourSelectionEvent)   {}
func (c *collector) HandleYourRoleState(game.YourRoleStateEvent)   {}
func (c *collector) HandleNotifyStopGame(game.NotifyStopGameEvent) {}
