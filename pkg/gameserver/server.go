package gameserver

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/jejutic/mafia_server/pkg/roles"
	"github.com/rs/zerolog"
)

type UserMessage struct {
	User    int64
	Text    string
	Command bool
}

type ServerMessage struct {
	User    int64
	Text    string
	Options []string // nil keeps the current keyboard, empty removes it
}

func newMessage(user int64, text string, removeOptions bool) ServerMessage {
	msg := ServerMessage{
		User: user,
		Text: text,
	}
	if removeOptions {
		msg.Options = make([]string, 0)
	}
	return msg
}

// Server is a chat transport the mafia server talks through
type Server[T any] interface {
	GetUpdatesChan() <-chan T
	UpdateToMessage(T) *UserMessage // didn't want to make an extra goroutine for casting of updates from chan
	SendMessage(ServerMessage)
	GetDefaultNick(int64) string
}

func sendAll[T any](s Server[T], users []int64, text string, removeOptions bool) {
	for _, user := range users {
		s.SendMessage(newMessage(user, text, removeOptions))
	}
}

// Options configure games created by the server
type Options struct {
	PhaseTimes   game.PhaseTimes
	Trials       int
	MaxDay       int
	TickInterval time.Duration
	Logger       zerolog.Logger
}

func DefaultOptions() Options {
	return Options{
		PhaseTimes:   game.DefaultPhaseTimes(),
		Trials:       game.DefaultTrials,
		MaxDay:       game.DefaultMaxDay,
		TickInterval: time.Second,
		Logger:       zerolog.Nop(),
	}
}

// MafiaServer routes users' messages to lobbies and drives started games.
// Every access to lobbies and games happens under mu.
type MafiaServer[T any] struct {
	Server[T]
	opts            Options
	catalog         *game.Catalog
	log             zerolog.Logger
	userToLobbyCode map[int64]int
	codeToLobby     map[int]*Lobby
	rng             *rand.Rand
	mu              *sync.Mutex
}

func NewMafiaServer[T any](s Server[T], opts Options) *MafiaServer[T] {
	return &MafiaServer[T]{
		Server:          s,
		opts:            opts,
		catalog:         roles.Catalog(),
		log:             opts.Logger.With().Str("component", "gameserver").Logger(),
		userToLobbyCode: make(map[int64]int),
		codeToLobby:     make(map[int]*Lobby),
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
		mu:              &sync.Mutex{},
	}
}

func (ms *MafiaServer[T]) userToLobby(user int64) *Lobby {
	return ms.codeToLobby[ms.userToLobbyCode[user]]
}

// Run handles updates until the updates channel is closed or ctx is done
func Run[T any](ctx context.Context, ms *MafiaServer[T]) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go ms.tickLoop(ctx)

	updates := ms.GetUpdatesChan()
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if msg := ms.UpdateToMessage(update); msg != nil {
				ms.Handle(*msg)
			}
		}
	}
}

// Handle processes one message of a user
func (ms *MafiaServer[T]) Handle(msg UserMessage) {
	if msg.Command {
		handleCommand(ms, msg)
		return
	}

	ms.mu.Lock()
	lobby := ms.userToLobby(msg.User)
	ms.mu.Unlock()

	switch {
	case lobby == nil:
		handleCommand(ms, UserMessage{
			User: msg.User,
			Text: "/join " + msg.Text,
		})
	case !lobby.Started():
		ms.SendMessage(newMessage(msg.User, "Wait for the game to start", false))
	default:
		ms.mu.Lock()
		defer ms.mu.Unlock()
		if !lobby.chat(msg.User, msg.Text) {
			ms.SendMessage(newMessage(msg.User, "Nobody can hear you now", false))
		}
	}
}

func (ms *MafiaServer[T]) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(ms.opts.TickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			ms.Tick(now.Sub(last))
			last = now
		}
	}
}

// Tick advances every started game by d and closes finished ones
func (ms *MafiaServer[T]) Tick(d time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, lobby := range ms.codeToLobby {
		if !lobby.Started() {
			continue
		}
		lobby.game.Tick(d)
		if lobby.game.Over() {
			lobby.Stop(false)
		}
	}
}
