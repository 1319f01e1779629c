package game

import (
	"strings"
)

// Role represents a role in mafia game
type Role int

const (
	_ Role = iota
	Villager
	Doctor
	Bodyguard
	Transporter
	Escort
	Jailor
	Detective
	Lookout
	Spy
	Vigilante
	Veteran
	Godfather
	Mafioso
	Consort
	Janitor
	Blackmailer
	Framer
	Witch
	Jester
)

// Side represents a side in mafia game
type Side int

const (
	_ Side = iota
	TownSide
	MafiaSide
	NeutralSide
)

// ResolutionState is an outcome the game can end with. Players win together
// when their roles require the same state.
type ResolutionState int

const (
	ResolutionNone ResolutionState = iota
	ResolutionTown
	ResolutionMafia
	ResolutionFiends // reserved for neutral killers
)

var roleToName = map[Role]string{
	Villager:    "villager",
	Doctor:      "doctor",
	Bodyguard:   "bodyguard",
	Transporter: "transporter",
	Escort:      "escort",
	Jailor:      "jailor",
	Detective:   "detective",
	Lookout:     "lookout",
	Spy:         "spy",
	Vigilante:   "vigilante",
	Veteran:     "veteran",
	Godfather:   "godfather",
	Mafioso:     "mafioso",
	Consort:     "consort",
	Janitor:     "janitor",
	Blackmailer: "blackmailer",
	Framer:      "framer",
	Witch:       "witch",
	Jester:      "jester",
}

var nameToRole = map[string]Role{
	"vil":  Villager,
	"doc":  Doctor,
	"bg":   Bodyguard,
	"tp":   Transporter,
	"esc":  Escort,
	"jail": Jailor,
	"det":  Detective,
	"lo":   Lookout,
	"vigi": Vigilante,
	"vet":  Veteran,
	"gf":   Godfather,
	"maf":  Mafioso,
	"cons": Consort,
	"jan":  Janitor,
	"bm":   Blackmailer,
	"jest": Jester,
}

func init() {
	for role, name := range roleToName {
		nameToRole[name] = role
	}
}

var sideToName = map[Side]string{
	TownSide:    "town",
	MafiaSide:   "mafia",
	NeutralSide: "neutral",
}

var resolutionToName = map[ResolutionState]string{
	ResolutionNone:   "none",
	ResolutionTown:   "town",
	ResolutionMafia:  "mafia",
	ResolutionFiends: "fiends",
}

func (r Role) String() string {
	if name, ok := roleToName[r]; ok {
		return name
	}
	return "unknown"
}

func (s Side) String() string {
	return sideToName[s]
}

func (s ResolutionState) String() string {
	return resolutionToName[s]
}

// Resolution returns the state a side is playing for
func (s Side) Resolution() ResolutionState {
	switch s {
	case TownSide:
		return ResolutionTown
	case MafiaSide:
		return ResolutionMafia
	default:
		return ResolutionNone
	}
}

// ParseRole accepts a full role name or one of its short aliases, case insensitive
func ParseRole(token string) (Role, bool) {
	role, ok := nameToRole[strings.ToLower(strings.TrimSpace(token))]
	return role, ok
}

// AllRoles returns every known role in declaration order
func AllRoles() []Role {
	roles := make([]Role, 0, len(roleToName))
	for role := Villager; role <= Jester; role++ {
		roles = append(roles, role)
	}
	return roles
}

// RoleState is the behaviour of a role together with the state it keeps between
// nights. Implementations use pointer receivers when they need to remember something.
// The Game is passed for the duration of a call only and must not be retained.
type RoleState interface {
	Role() Role

	// CanSelect reports whether target may be added to actor's night selection.
	// The selection built so far is available through Game.Selection.
	CanSelect(g *Game, actor, target PlayerRef) bool
	// ConvertSelectionToVisits maps a committed selection to visits. No targets, no visits.
	ConvertSelectionToVisits(g *Game, actor PlayerRef, targets []PlayerRef) []Visit
	// DoNightAction is called for every priority of every night, it must tolerate
	// having nothing to do.
	DoNightAction(g *Game, actor PlayerRef, priority Priority)

	CanDayTarget(g *Game, actor, target PlayerRef) bool
	DoDayAction(g *Game, actor, target PlayerRef)

	OnPhaseStart(g *Game, actor PlayerRef, phase PhaseType)
	OnRoleCreation(g *Game, actor PlayerRef)
	OnAnyDeath(g *Game, actor, dead PlayerRef)
	OnGraveAdded(g *Game, actor PlayerRef, grave GraveRef)
	OnGameEnding(g *Game, actor PlayerRef)

	SendChatGroups(g *Game, actor PlayerRef) []ChatGroup
	ReceiveChatGroups(g *Game, actor PlayerRef) []ChatGroup

	// WonGame is asked once the game is over
	WonGame(g *Game, actor PlayerRef) bool
}

// BaseRole gives every RoleState method a default: no abilities, standard chat
// routing and winning with the own side. Embed it and override what the role does.
type BaseRole struct{}

func (BaseRole) CanSelect(*Game, PlayerRef, PlayerRef) bool { return false }

func (BaseRole) ConvertSelectionToVisits(_ *Game, _ PlayerRef, targets []PlayerRef) []Visit {
	return VisitsTo(targets, false)
}

func (BaseRole) DoNightAction(*Game, PlayerRef, Priority) {}
func (BaseRole) CanDayTarget(*Game, PlayerRef, PlayerRef) bool { return false }
func (BaseRole) DoDayAction(*Game, PlayerRef, PlayerRef) {}
func (BaseRole) OnPhaseStart(*Game, PlayerRef, PhaseType) {}
func (BaseRole) OnRoleCreation(*Game, PlayerRef) {}
func (BaseRole) OnAnyDeath(*Game, PlayerRef, PlayerRef) {}
func (BaseRole) OnGraveAdded(*Game, PlayerRef, GraveRef) {}
func (BaseRole) OnGameEnding(*Game, PlayerRef) {}

func (BaseRole) SendChatGroups(g *Game, actor PlayerRef) []ChatGroup {
	return g.DefaultSendChatGroups(actor)
}

func (BaseRole) ReceiveChatGroups(g *Game, actor PlayerRef) []ChatGroup {
	return g.DefaultReceiveChatGroups(actor)
}

func (BaseRole) WonGame(g *Game, actor PlayerRef) bool {
	return g.DefaultWonGame(actor)
}
