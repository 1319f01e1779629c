package gameserver

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/rs/zerolog"
)

// Renderer turns game messages into English text using the players' nicks
type Renderer struct {
	players []game.Player
	log     zerolog.Logger
}

func NewRenderer(players []game.Player, log zerolog.Logger) *Renderer {
	return &Renderer{players: players, log: log}
}

func (r *Renderer) Name(p game.PlayerRef) string {
	if p < 0 || int(p) >= len(r.players) {
		return "nobody"
	}
	return r.players[p].Name
}

func (r *Renderer) Names(refs []game.PlayerRef) string {
	if len(refs) == 0 {
		return "nobody"
	}
	names := make([]string, len(refs))
	for i, p := range refs {
		names[i] = r.Name(p)
	}
	return strings.Join(names, ", ")
}

// eventOutput sends the events of one game to its players
type eventOutput[T any] struct {
	*Renderer
	s     Server[T]
	alive []bool
	roles map[game.PlayerRef]game.Role // last role seen for each player
}

func newEventOutput[T any](s Server[T], players []game.Player, log zerolog.Logger) *eventOutput[T] {
	alive := make([]bool, len(players))
	for i := range alive {
		alive[i] = true
	}
	return &eventOutput[T]{
		Renderer: NewRenderer(players, log),
		s:        s,
		alive:    alive,
		roles:    make(map[game.PlayerRef]game.Role),
	}
}

func (o *eventOutput[T]) aliveNames() []string {
	var names []string
	for i, alive := range o.alive {
		if alive {
			names = append(names, o.players[i].Name)
		}
	}
	return names
}

func rolesToString(roles []game.Role) string {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = role.String()
	}
	return strings.Join(names, ", ")
}

func killerToString(k game.GraveKiller) string {
	switch k.Kind {
	case game.KillerMafia:
		return "the mafia"
	case game.KillerRole:
		return "a " + k.Role.String()
	case game.KillerSuicide:
		return "suicide"
	case game.KillerLynching:
		return "the town"
	default:
		return "unknown causes"
	}
}

// Grave describes a grave
func (r *Renderer) Grave(gr game.Grave) string {
	var b strings.Builder
	when := "night"
	if gr.Phase == game.DiedAtDay {
		when = "day"
	}
	fmt.Fprintf(&b, "%s died on %s %d", r.Name(gr.Player), when, gr.Day)

	killers := make([]string, len(gr.Killers))
	for i, k := range gr.Killers {
		killers[i] = killerToString(k)
	}
	if len(killers) != 0 {
		fmt.Fprintf(&b, ", killed by %s", strings.Join(killers, " and "))
	}

	if gr.Cleaned() {
		b.WriteString(". The role was cleaned")
	} else {
		fmt.Fprintf(&b, ". Role: %s", gr.Role)
		if gr.Will != "" {
			fmt.Fprintf(&b, "\nWill: %s", gr.Will)
		}
	}
	for _, note := range gr.DeathNotes {
		fmt.Fprintf(&b, "\nDeath note: %s", note)
	}
	return b.String()
}

// Render turns a chat message into the text shown to its receiver
func (r *Renderer) Render(msg game.ChatMessage) string {
	switch m := msg.(type) {
	case game.Normal:
		if m.Group == game.AllGroup {
			return r.Name(m.Sender) + ": " + m.Text
		}
		return fmt.Sprintf("[%s] %s: %s", m.Group, r.Name(m.Sender), m.Text)
	case game.PhaseChange:
		return fmt.Sprintf("-- %s %d --", m.Phase, m.Day)
	case game.PlayerDied:
		return r.Grave(m.Grave)
	case game.RoleAssignment:
		return "Your role: " + m.Role.String()
	case game.TrialInformation:
		return fmt.Sprintf("%d votes put a player on trial, %d trials left today", m.RequiredVotes, m.TrialsLeft)
	case game.Voted:
		if m.Votee == game.NoPlayer {
			return r.Name(m.Voter) + " withdrew the vote"
		}
		return r.Name(m.Voter) + " voted for " + r.Name(m.Votee)
	case game.PlayerOnTrial:
		return r.Name(m.Player) + " is on trial"
	case game.JudgementVerdict:
		return r.Name(m.Voter) + " voted " + m.Verdict.String()
	case game.TrialVerdict:
		return fmt.Sprintf("%s: %d guilty, %d innocent", r.Name(m.Player), m.Guilty, m.Innocent)
	case game.NoTrialsLeft:
		return "No trials left today"
	case game.JailedTarget:
		return r.Name(m.Player) + " is in jail"
	case game.JailorExecuted:
		return "The jailor executed " + r.Name(m.Player)
	case game.TargetJailed:
		return "Your target was in jail"
	case game.GameOver:
		return "Game over: " + resolutionToString(m.State)

	case game.RoleBlocked:
		if m.Immune {
			return "Someone tried to roleblock you, you are immune"
		}
		return "You were roleblocked"
	case game.TargetSurvivedAttack:
		return "Your target survived the attack"
	case game.YouSurvivedAttack:
		return "You were attacked but survived"
	case game.YouDied:
		return "You died"
	case game.TargetWasAttacked:
		return "Your target was attacked"
	case game.YouWereProtected:
		return "You were attacked but someone protected you"
	case game.Transported:
		return "You were transported"
	case game.YouWerePossessed:
		if m.Immune {
			return "Someone tried to possess you, you are immune"
		}
		return "You were possessed"
	case game.TargetsMessage:
		return "Your target was told: " + r.Render(m.Message)
	case game.WitchTargetImmune:
		return "Your target is immune to possession"
	case game.Silenced:
		return "You were blackmailed, you can't talk or vote tomorrow"
	case game.PlayerRoleAndWill:
		text := "Your target's role: " + m.Role.String()
		if m.Will != "" {
			text += "\nWill: " + m.Will
		}
		return text
	case game.DetectiveResult:
		if m.Suspicious {
			return "Your target is suspicious"
		}
		return "Your target seems innocent"
	case game.LookoutResult:
		return "Your target was visited by " + r.Names(m.Players)
	case game.SpyMafiaVisit:
		return "The mafia visited " + r.Names(m.Players)
	case game.SpyBug:
		return "Your bugged target was told: " + r.Render(m.Message)
	case game.VeteranAttackedYou:
		return "You were shot by the veteran you visited"
	case game.VeteranAttackedVisitor:
		return "You shot someone who visited you"
	case game.VigilanteSuicide:
		return "You shot yourself over the guilt of killing a town member"
	case game.JesterHaunted:
		return "You were haunted by the jester"
	case game.GodfatherBackup:
		if m.Backup == game.NoPlayer {
			return "The godfather has no backup"
		}
		return "The godfather's backup is " + r.Name(m.Backup)
	case game.GodfatherBackupKilled:
		return r.Name(m.Backup) + " killed in place of the godfather"
	default:
		r.log.Warn().Str("type", fmt.Sprintf("%T", msg)).Msg("message without text")
		return ""
	}
}

func resolutionToString(s game.ResolutionState) string {
	switch s {
	case game.ResolutionTown:
		return "the town wins"
	case game.ResolutionMafia:
		return "the mafia wins"
	default:
		return "nobody wins"
	}
}

func (o *eventOutput[T]) HandleChatMessages(e game.ChatMessagesEvent) {
	lines := make([]string, 0, len(e.Messages))
	for _, msg := range e.Messages {
		if text := o.Render(msg); text != "" {
			lines = append(lines, text)
		}
	}
	if len(lines) != 0 {
		o.s.SendMessage(newMessage(e.User, strings.Join(lines, "\n"), false))
	}
}

func (o *eventOutput[T]) HandlePhaseState(e game.PhaseStateEvent) {
	text := fmt.Sprintf("%s, day %d: %s left", e.Phase, e.Day, e.Remaining.Round(time.Second))
	switch e.Phase {
	case game.Voting:
		var options []string
		for _, name := range o.aliveNames() {
			options = append(options, "/vote "+name)
		}
		for _, user := range e.Users {
			o.s.SendMessage(ServerMessage{User: user, Text: text, Options: options})
		}
	case game.Judgement:
		for _, user := range e.Users {
			o.s.SendMessage(ServerMessage{
				User:    user,
				Text:    text + "\nJudge " + o.Name(e.OnTrial),
				Options: []string{"/guilty", "/innocent", "/abstain"},
			})
		}
	default:
		sendAll(o.s, e.Users, text, true)
	}
}

func (o *eventOutput[T]) HandlePlayerVotes(e game.PlayerVotesEvent) {
	if len(e.Votes) == 0 {
		return
	}
	refs := make([]game.PlayerRef, 0, len(e.Votes))
	for p := range e.Votes {
		refs = append(refs, p)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })

	lines := make([]string, len(refs))
	for i, p := range refs {
		lines[i] = fmt.Sprintf("%s: %d", o.Name(p), e.Votes[p])
	}
	sendAll(o.s, e.Users, "Votes\n"+strings.Join(lines, "\n"), false)
}

func (o *eventOutput[T]) HandleAddGrave(e game.AddGraveEvent) {
	o.log.Debug().Int("player", int(e.Grave.Player)).Int("day", e.Grave.Day).Msg("grave added")
}

func (o *eventOutput[T]) HandlePlayerAlive(e game.PlayerAliveEvent) {
	o.alive = append(o.alive[:0], e.Alive...)
}

func (o *eventOutput[T]) HandleYourSelection(e game.YourSelectionEvent) {
	text := "Your targets: " + o.Names(e.Targets)
	if len(e.Targets) == 0 {
		text = "You have no targets tonight"
	}
	o.s.SendMessage(newMessage(e.User, text, false))
}

func (o *eventOutput[T]) HandleYourRoleState(e game.YourRoleStateEvent) {
	if role, ok := o.roles[e.Player]; ok && role == e.Role {
		return
	}
	o.roles[e.Player] = e.Role
	o.log.Debug().Int("player", int(e.Player)).Stringer("role", e.Role).Msg("role state")
}

func (o *eventOutput[T]) HandleWin(e game.WinEvent) {
	text := "Game over: " + resolutionToString(e.State)
	if len(e.Winners) != 0 {
		text += "\nWinners: " + strings.Join(e.Winners, ", ")
	}
	sendAll(o.s, e.Users, text, true)
}

func (o *eventOutput[T]) HandleNotifyStopGame(e game.NotifyStopGameEvent) {
	sendAll(o.s, e.Users, "The game was stopped", true)
}
