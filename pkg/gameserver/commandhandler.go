package gameserver

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/jejutic/mafia_server/pkg/game"
)

func validNick(nick string) bool {
	return !strings.Contains(nick, "\n") && nick != "" && !strings.HasPrefix(nick, "/")
}

// parseRoles parses role tokens and checks the list against the catalog
func parseRoles(catalog *game.Catalog, tokens []string) ([]game.Role, error) {
	roles := make([]game.Role, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		role, ok := game.ParseRole(token)
		if !ok {
			return nil, fmt.Errorf("unknown role token %q", token)
		}
		roles = append(roles, role)
	}
	return roles, catalog.ValidateRoleList(roles)
}

//go:embed help.txt
var helpText string

func handleCommand[T any](ms *MafiaServer[T], msg UserMessage) {
	words := strings.Fields(msg.Text)
	if len(words) == 0 || !strings.HasPrefix(words[0], "/") {
		ms.SendMessage(newMessage(msg.User, "Unknown command: "+msg.Text, false))
		return
	}
	// telegram appends the bot name in groups: /vote@bot
	command, _, _ := strings.Cut(words[0][1:], "@")
	args := words[1:]

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.log.Debug().Int64("user", msg.User).Str("command", command).Strs("args", args).Msg("command")

	switch command {
	case "start", "help":
		ms.SendMessage(newMessage(msg.User, helpText, false))

	case "roles":
		var lines []string
		for _, role := range ms.catalog.Roles() {
			spec, _ := ms.catalog.Get(role)
			lines = append(lines, role.String()+" ("+spec.Side.String()+")")
		}
		ms.SendMessage(newMessage(msg.User, strings.Join(lines, "\n"), false))

	case "create":
		createLobby(ms, msg.User, args)

	case "join":
		joinLobby(ms, msg.User, args)

	case "stop":
		lobby := ms.userToLobby(msg.User)
		if lobby == nil {
			ms.SendMessage(newMessage(msg.User, "You are not in a game", true))
			return
		}
		if !lobby.Started() {
			users := lobby.Users()
			lobby.Stop(false)
			sendAll[T](ms, users, "The game was stopped", true)
			return
		}
		lobby.Stop(true)

	default:
		handleGameCommand(ms, msg.User, command, args)
	}
}

func createLobby[T any](ms *MafiaServer[T], user int64, args []string) {
	if ms.userToLobby(user) != nil {
		ms.SendMessage(newMessage(user, "You are already in a game", false))
		return
	}
	roles, err := parseRoles(ms.catalog, args)
	if err != nil {
		ms.SendMessage(newMessage(user, "Couldn't parse the roles: "+err.Error(), false))
		return
	}

	var code int
	for {
		code = 1_000 + ms.rng.Intn(9_000)
		if _, exists := ms.codeToLobby[code]; !exists {
			break
		}
	}

	close := func(l *Lobby) { //closure
		delete(ms.codeToLobby, code)
		for _, user := range l.NickToUser {
			delete(ms.userToLobbyCode, user)
		}
	}
	ms.codeToLobby[code] = NewLobby(code, user, roles, close)
	ms.log.Info().Int("code", code).Int64("creator", user).Str("roles", rolesToString(roles)).Msg("lobby created")

	ms.SendMessage(newMessage(user,
		"The game is created. To join it send\n/join "+strconv.Itoa(code)+" <nick>",
		false,
	))
}

func joinLobby[T any](ms *MafiaServer[T], user int64, args []string) {
	if len(args) < 1 {
		ms.SendMessage(newMessage(user, "The game code is missing", false))
		return
	}
	code, err := strconv.Atoi(args[0])
	if err != nil {
		ms.SendMessage(newMessage(user, "The code has an invalid format", false))
		return
	}
	if ms.userToLobby(user) != nil {
		ms.SendMessage(newMessage(user, "You are already in a game", false))
		return
	}
	lobby := ms.codeToLobby[code]
	if lobby == nil {
		ms.SendMessage(newMessage(user, "The code is not valid", false))
		return
	}
	if lobby.Started() {
		ms.SendMessage(newMessage(user, "The game has already started", false))
		return
	}

	var nick string
	switch {
	case len(args) < 2:
		nick = ms.GetDefaultNick(user)
	case len(args) > 2:
		ms.SendMessage(newMessage(user, "A nick must be a single word", false))
		return
	default:
		nick = args[1]
	}
	if !validNick(nick) {
		ms.SendMessage(newMessage(user, "The nick is not valid", false))
		return
	}
	if err := lobby.AddMember(user, nick); err != nil {
		ms.SendMessage(newMessage(user, "Couldn't join: "+err.Error(), false))
		return
	}

	ms.userToLobbyCode[user] = code
	ms.SendMessage(newMessage(user,
		"You joined. Roles: "+rolesToString(lobby.Roles)+"\n\n"+strings.Join(lobby.Nicks(), "\n"),
		true,
	))

	if lobby.Full() {
		startLobby(ms, lobby)
	}
}

func startLobby[T any](ms *MafiaServer[T], lobby *Lobby) {
	players := lobby.RandomPlayers(ms.rng)
	settings := game.Settings{
		Roles:      lobby.Roles,
		PhaseTimes: ms.opts.PhaseTimes,
		Trials:     ms.opts.Trials,
		MaxDay:     ms.opts.MaxDay,
	}
	out := newEventOutput[T](ms, players, ms.log.With().Int("lobby", lobby.Code).Logger())
	if err := lobby.Start(out, ms.catalog, settings, players, ms.log); err != nil {
		ms.log.Error().Err(err).Int("lobby", lobby.Code).Msg("unable to start the game")
		users := lobby.Users()
		lobby.Stop(false)
		sendAll[T](ms, users, "Couldn't start the game: "+err.Error(), true)
	}
}

// handleGameCommand runs commands which need a started game
func handleGameCommand[T any](ms *MafiaServer[T], user int64, command string, args []string) {
	lobby := ms.userToLobby(user)
	if lobby == nil || !lobby.Started() {
		switch command {
		case "target", "clear", "day", "vote", "guilty", "innocent", "abstain", "will":
			ms.SendMessage(newMessage(user, "You are not in a started game", false))
		default:
			ms.SendMessage(newMessage(user, "Unknown command: /"+command, false))
		}
		return
	}
	g := lobby.Game()
	p, _ := lobby.player(user)

	refs := func(names []string) ([]game.PlayerRef, bool) {
		refs := make([]game.PlayerRef, 0, len(names))
		for _, name := range names {
			ref, ok := g.Ref(name)
			if !ok {
				ms.SendMessage(newMessage(user, "No player named "+name, false))
				return nil, false
			}
			refs = append(refs, ref)
		}
		return refs, true
	}
	reply := func(ok bool, failure string) {
		if !ok {
			ms.SendMessage(newMessage(user, failure, false))
		}
	}

	switch command {
	case "target":
		targets, ok := refs(args)
		if !ok {
			return
		}
		reply(g.SetSelection(p, targets), "Not every target could be chosen")

	case "clear":
		reply(g.SetSelection(p, nil), "You can't act now")

	case "day":
		targets, ok := refs(args)
		if !ok {
			return
		}
		if len(targets) != 1 {
			ms.SendMessage(newMessage(user, "Choose exactly one player", false))
			return
		}
		reply(g.DayTarget(p, targets[0]), "You can't target "+args[0])

	case "vote":
		if len(args) != 1 {
			ms.SendMessage(newMessage(user, "Choose exactly one player or none", false))
			return
		}
		target := game.NoPlayer
		if args[0] != "none" {
			targets, ok := refs(args)
			if !ok {
				return
			}
			target = targets[0]
		}
		reply(g.Vote(p, target), "You can't vote for "+args[0]+" now")

	case "guilty":
		reply(g.SetVerdict(p, game.Guilty), "You can't judge now")
	case "innocent":
		reply(g.SetVerdict(p, game.Innocent), "You can't judge now")
	case "abstain":
		reply(g.SetVerdict(p, game.Abstain), "You can't judge now")

	case "will":
		reply(g.SetWill(p, strings.Join(args, " ")), "Only the living can write wills")

	default:
		ms.SendMessage(newMessage(user, "Unknown command: /"+command, false))
	}
}
