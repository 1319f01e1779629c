package gameserver

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	sent    []ServerMessage
	updates chan UserMessage
}

func newFakeServer() *fakeServer {
	return &fakeServer{updates: make(chan UserMessage, 16)}
}

func (fs *fakeServer) GetUpdatesChan() <-chan UserMessage {
	return fs.updates
}

func (fs *fakeServer) UpdateToMessage(msg UserMessage) *UserMessage {
	return &msg
}

func (fs *fakeServer) SendMessage(msg ServerMessage) {
	fs.sent = append(fs.sent, msg)
}

func (fs *fakeServer) GetDefaultNick(user int64) string {
	return "user" + strconv.FormatInt(user, 10)
}

// textsTo returns everything sent to user
func (fs *fakeServer) textsTo(user int64) []string {
	var texts []string
	for _, msg := range fs.sent {
		if msg.User == user {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

func (fs *fakeServer) received(user int64, substr string) bool {
	for _, text := range fs.textsTo(user) {
		if strings.Contains(text, substr) {
			return true
		}
	}
	return false
}

func newTestServer() (*MafiaServer[UserMessage], *fakeServer) {
	fs := newFakeServer()
	opts := DefaultOptions()
	opts.TickInterval = time.Hour
	ms := NewMafiaServer[UserMessage](fs, opts)
	ms.rng = rand.New(rand.NewSource(1))
	return ms, fs
}

func command(user int64, text string) UserMessage {
	return UserMessage{User: user, Text: text, Command: true}
}

// startGame creates a game by user 1 and joins users 1..len(roles)
func startGame(t *testing.T, ms *MafiaServer[UserMessage], roleTokens ...string) *Lobby {
	t.Helper()

	ms.Handle(command(1, "/create "+strings.Join(roleTokens, " ")))
	require.Len(t, ms.codeToLobby, 1)
	var lobby *Lobby
	for _, l := range ms.codeToLobby {
		lobby = l
	}
	for i := range roleTokens {
		user := int64(i + 1)
		ms.Handle(command(user, "/join "+strconv.Itoa(lobby.Code)+" p"+strconv.Itoa(i)))
	}
	require.True(t, lobby.Started())
	return lobby
}

func TestParseRoles(t *testing.T) {
	ms, _ := newTestServer()

	roles, err := parseRoles(ms.catalog, []string{"gf", "Doctor", "vil", "", "villager"})
	require.NoError(t, err)
	assert.Equal(t, []game.Role{game.Godfather, game.Doctor, game.Villager, game.Villager}, roles)

	_, err = parseRoles(ms.catalog, []string{"gf", "wizard"})
	assert.ErrorContains(t, err, "wizard")

	_, err = parseRoles(ms.catalog, []string{"gf", "gf", "vil"})
	assert.ErrorIs(t, err, game.ErrTooManyOfRole)

	_, err = parseRoles(ms.catalog, nil)
	assert.ErrorIs(t, err, game.ErrEmptyRoleList)
}

func TestCreateAndJoin(t *testing.T) {
	assert := assert.New(t)
	ms, fs := newTestServer()

	ms.Handle(command(1, "/create gf vil vil doc"))
	require.Len(t, ms.codeToLobby, 1)
	var code int
	for c := range ms.codeToLobby {
		code = c
	}
	assert.True(fs.received(1, "/join "+strconv.Itoa(code)))

	ms.Handle(command(1, "/join "+strconv.Itoa(code)))
	assert.True(fs.received(1, "You joined"))
	assert.Equal("user1", ms.codeToLobby[code].UserToNick[1], "default nick")

	ms.Handle(command(2, "/join "+strconv.Itoa(code)+" user1"))
	assert.True(fs.received(2, ErrNickTaken.Error()))
	ms.Handle(command(2, "/join abc"))
	assert.True(fs.received(2, "invalid format"))
	ms.Handle(command(2, "/join "+strconv.Itoa(code)+" two words"))
	assert.True(fs.received(2, "single word"))

	ms.Handle(UserMessage{User: 3, Text: "999"})
	assert.True(fs.received(3, "not valid"), "plain text outside a game is a join")

	ms.Handle(command(2, "/join "+strconv.Itoa(code)+" bob"))
	ms.Handle(command(3, "/join "+strconv.Itoa(code)+" carol"))
	assert.False(ms.codeToLobby[code].Started())
	ms.Handle(UserMessage{User: 2, Text: "hi"})
	assert.True(fs.received(2, "Wait for the game"))

	ms.Handle(command(4, "/join "+strconv.Itoa(code)+" dave"))
	lobby := ms.codeToLobby[code]
	require.True(t, lobby.Started())

	g := lobby.Game()
	for user := int64(1); user <= 4; user++ {
		p, ok := g.RefByUser(user)
		require.True(t, ok)
		assert.True(fs.received(user, "Your role: "+g.RoleOf(p).String()))
		assert.True(fs.received(user, "evening, day 1"))
	}

	ms.Handle(command(5, "/join "+strconv.Itoa(code)+" eve"))
	assert.True(fs.received(5, "already started"))
}

func TestCreate_badRoles(t *testing.T) {
	ms, fs := newTestServer()

	ms.Handle(command(1, "/create gf gf"))
	assert.Empty(t, ms.codeToLobby)
	assert.True(t, fs.received(1, "Couldn't parse the roles"))
}

func TestStop(t *testing.T) {
	assert := assert.New(t)
	ms, fs := newTestServer()
	lobby := startGame(t, ms, "maf", "vil", "vil", "vil")

	ms.Handle(command(2, "/stop"))

	assert.True(lobby.Game().Over())
	assert.Empty(ms.codeToLobby)
	assert.Empty(ms.userToLobbyCode)
	for user := int64(1); user <= 4; user++ {
		assert.True(fs.received(user, "The game was stopped"))
	}

	ms.Handle(command(2, "/stop"))
	assert.True(fs.received(2, "You are not in a game"))
}

func TestStop_beforeStart(t *testing.T) {
	ms, fs := newTestServer()
	ms.Handle(command(1, "/create maf vil vil"))
	for code := range ms.codeToLobby {
		ms.Handle(command(1, "/join "+strconv.Itoa(code)+" ann"))
		ms.Handle(command(2, "/join "+strconv.Itoa(code)+" ben"))
	}

	ms.Handle(command(1, "/stop"))

	assert.Empty(t, ms.codeToLobby)
	assert.True(t, fs.received(2, "The game was stopped"))
}

func TestTick(t *testing.T) {
	assert := assert.New(t)
	ms, _ := newTestServer()
	lobby := startGame(t, ms, "maf", "vil", "vil", "vil")
	g := lobby.Game()

	require.Equal(t, game.Evening, g.Phase())
	ms.Tick(ms.opts.PhaseTimes.Evening)
	assert.Equal(game.Evening, g.Phase())
	ms.Tick(time.Second)
	assert.Equal(game.Night, g.Phase(), "the phase ends on the tick after its time ran out")

	lobby.Game().Stop(false)
	ms.Tick(time.Second)
	assert.Empty(ms.codeToLobby, "finished games are closed")
}

func TestGameCommands(t *testing.T) {
	assert := assert.New(t)
	ms, fs := newTestServer()
	lobby := startGame(t, ms, "jail", "maf", "vil", "vil", "vil")
	g := lobby.Game()

	jailor, mafioso := game.NoPlayer, game.NoPlayer
	for _, p := range g.Players() {
		switch g.RoleOf(p) {
		case game.Jailor:
			jailor = p
		case game.Mafioso:
			mafioso = p
		}
	}
	jailorUser := g.Player(jailor).User
	mafiosoUser := g.Player(mafioso).User

	ms.Handle(command(jailorUser, "/day nobody"))
	assert.True(fs.received(jailorUser, "No player named nobody"))
	ms.Handle(command(jailorUser, "/day "+g.Name(mafioso)))
	assert.Equal(mafioso, g.RoleState(jailor).(interface{ JailTarget() game.PlayerRef }).JailTarget())

	ms.Handle(command(jailorUser, "/will I am the jailor"))
	assert.Equal("I am the jailor", g.Will(jailor))

	ms.Handle(command(mafiosoUser, "/vote "+g.Name(jailor)))
	assert.True(fs.received(mafiosoUser, "can't vote"))

	g.EndPhase()
	require.Equal(t, game.Night, g.Phase())
	ms.Handle(UserMessage{User: mafiosoUser, Text: "let me out"})
	assert.True(fs.received(jailorUser, "[jail] "+g.Name(mafioso)+": let me out"))

	ms.Handle(command(mafiosoUser, "/target "+g.Name(jailor)))
	assert.True(fs.received(mafiosoUser, "Not every target could be chosen"))
	assert.True(fs.received(mafiosoUser, "You have no targets tonight"))

	ms.Handle(command(99, "/guilty"))
	assert.True(fs.received(99, "not in a started game"))
	ms.Handle(command(99, "/dance"))
	assert.True(fs.received(99, "Unknown command: /dance"))
}

func TestRun(t *testing.T) {
	ms, fs := newTestServer()
	fs.updates <- command(1, "/help")
	fs.updates <- command(1, "/roles")
	close(fs.updates)

	Run[UserMessage](context.Background(), ms)

	assert.True(t, fs.received(1, "/create"))
	assert.True(t, fs.received(1, "godfather (mafia)"))
}
