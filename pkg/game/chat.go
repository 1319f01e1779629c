package game

// ChatGroup is a set of players receiving the same messages
type ChatGroup int

const (
	_ ChatGroup = iota
	AllGroup
	DeadGroup
	MafiaGroup
	JailGroup
)

var groupToName = map[ChatGroup]string{
	AllGroup:   "all",
	DeadGroup:  "dead",
	MafiaGroup: "mafia",
	JailGroup:  "jail",
}

func (c ChatGroup) String() string {
	return groupToName[c]
}

func containsGroup(groups []ChatGroup, target ChatGroup) bool {
	for _, group := range groups {
		if group == target {
			return true
		}
	}
	return false
}

// DefaultSendChatGroups is where a player without special chat abilities may talk
func (g *Game) DefaultSendChatGroups(p PlayerRef) []ChatGroup {
	switch {
	case !g.Alive(p):
		return []ChatGroup{DeadGroup}
	case g.phase == Night && g.NightJailed(p):
		return []ChatGroup{JailGroup}
	case g.phase == Night:
		if g.SideOf(p) == MafiaSide {
			return []ChatGroup{MafiaGroup}
		}
		return nil
	case g.NightSilenced(p):
		return nil
	default:
		return []ChatGroup{AllGroup}
	}
}

// DefaultReceiveChatGroups is what a player without special chat abilities can read
func (g *Game) DefaultReceiveChatGroups(p PlayerRef) []ChatGroup {
	groups := []ChatGroup{AllGroup}
	if !g.Alive(p) {
		groups = append(groups, DeadGroup)
	}
	if g.SideOf(p) == MafiaSide {
		groups = append(groups, MafiaGroup)
	}
	if g.phase == Night && g.NightJailed(p) {
		groups = append(groups, JailGroup)
	}
	return groups
}

func (g *Game) SendChatGroups(p PlayerRef) []ChatGroup {
	return g.players[p].state.SendChatGroups(g, p)
}

func (g *Game) ReceiveChatGroups(p PlayerRef) []ChatGroup {
	return g.players[p].state.ReceiveChatGroups(g, p)
}

// PlayersInGroup evaluates routing at the moment of the call
func (g *Game) PlayersInGroup(group ChatGroup) []PlayerRef {
	var refs []PlayerRef
	for _, p := range g.Players() {
		if containsGroup(g.ReceiveChatGroups(p), group) {
			refs = append(refs, p)
		}
	}
	return refs
}

// AddMessage queues a message for p, it is delivered with the next flush
func (g *Game) AddMessage(p PlayerRef, msg ChatMessage) {
	g.players[p].chat = append(g.players[p].chat, msg)
}

// AddMessageToGroup queues msg for every current member of group
func (g *Game) AddMessageToGroup(group ChatGroup, msg ChatMessage) {
	if normal, ok := msg.(Normal); ok {
		normal.Group = group
		msg = normal
	}
	for _, p := range g.PlayersInGroup(group) {
		g.AddMessage(p, msg)
	}
}

// SendChat posts text from p into every group p may currently talk in
func (g *Game) SendChat(p PlayerRef, text string) bool {
	if !g.valid(p) || g.over {
		return false
	}
	defer g.flush()

	groups := g.SendChatGroups(p)
	for _, group := range groups {
		g.AddMessageToGroup(group, Normal{Sender: p, Text: text})
	}
	return len(groups) != 0
}

func (g *Game) flush() {
	for i, pl := range g.players {
		if len(pl.chat) == 0 {
			continue
		}
		messages := pl.chat
		pl.chat = nil
		g.eOutput.HandleChatMessages(ChatMessagesEvent{
			User:     pl.User,
			Player:   PlayerRef(i),
			Messages: messages,
		})
	}
}
