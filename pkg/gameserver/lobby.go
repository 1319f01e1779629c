package gameserver

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/rs/zerolog"
)

var (
	ErrNickTaken       = errors.New("this nick is already presented in the game")
	ErrNotEnoughPlayer = errors.New("not enough members")
	ErrAlreadyStarted  = errors.New("the game has already started")
)

// Lobby is a game either gathering players or started
type Lobby struct {
	ID         uuid.UUID
	Code       int
	creator    int64            // user which created the lobby
	NickToUser map[string]int64 // mapping from nick in the game to user
	UserToNick map[int64]string // mapping from user to nick in the game
	Roles      []game.Role      // one card per player
	game       *game.Game       // nil iff the lobby hasn't started
	close      func(*Lobby)     // frees the lobby in the server
	stopped    bool
}

func NewLobby(code int, creator int64, roles []game.Role, close func(*Lobby)) *Lobby {
	return &Lobby{
		ID:         uuid.New(),
		Code:       code,
		creator:    creator,
		NickToUser: make(map[string]int64),
		UserToNick: make(map[int64]string),
		Roles:      roles,
		close:      close,
	}
}

// Started iff the game of the lobby has started
func (l *Lobby) Started() bool {
	return l.game != nil
}

func (l *Lobby) Game() *game.Game {
	return l.game
}

// Full iff every role card has a player
func (l *Lobby) Full() bool {
	return len(l.NickToUser) == len(l.Roles)
}

// AddMember adds a player with user id as user and nick as game nickname
func (l *Lobby) AddMember(user int64, nick string) error {
	if l.Started() {
		return ErrAlreadyStarted
	}
	if _, exists := l.NickToUser[nick]; exists {
		return ErrNickTaken
	}

	l.NickToUser[nick] = user
	l.UserToNick[user] = nick
	return nil
}

// Nicks returns the joined nicks sorted
func (l *Lobby) Nicks() []string {
	nicks := make([]string, 0, len(l.NickToUser))
	for nick := range l.NickToUser {
		nicks = append(nicks, nick)
	}
	sort.Strings(nicks)
	return nicks
}

// RandomPlayers deals the role cards to the joined users in a random seating
func (l *Lobby) RandomPlayers(rng *rand.Rand) []game.Player {
	cards := append([]game.Role(nil), l.Roles...)
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	players := make([]game.Player, 0, len(l.NickToUser))
	for _, nick := range l.Nicks() {
		players = append(players, game.Player{
			User: l.NickToUser[nick],
			Name: nick,
			Role: cards[len(players)],
		})
	}
	rng.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})
	return players
}

// Start creates the game and starts it
func (l *Lobby) Start(eOutput game.EventOutput, catalog *game.Catalog, settings game.Settings, players []game.Player, log zerolog.Logger) error {
	if l.Started() {
		return ErrAlreadyStarted
	}
	if !l.Full() || len(players) != len(l.Roles) {
		return ErrNotEnoughPlayer
	}

	g, err := game.NewGame(eOutput, catalog, settings, players,
		game.WithID(l.ID),
		game.WithLogger(log.With().Int("lobby", l.Code).Logger()),
	)
	if err != nil {
		return err
	}
	l.game = g
	g.Start()
	return nil
}

// Users returns every joined user
func (l *Lobby) Users() []int64 {
	users := make([]int64, 0, len(l.UserToNick))
	for _, nick := range l.Nicks() {
		users = append(users, l.NickToUser[nick])
	}
	return users
}

// Stop frees the lobby and stops its game, notifying the players if notify is true
func (l *Lobby) Stop(notify bool) {
	if l.stopped {
		return
	}
	l.stopped = true
	l.close(l)

	if l.game != nil {
		l.game.Stop(notify)
	}
}

func (l *Lobby) player(user int64) (game.PlayerRef, bool) {
	if l.game == nil {
		return game.NoPlayer, false
	}
	return l.game.RefByUser(user)
}

func (l *Lobby) chat(user int64, text string) bool {
	p, ok := l.player(user)
	return ok && l.game.SendChat(p, text)
}
