package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrPlayersMismatch = errors.New("players don't match the role list")

// Game is one running mafia game. It is not safe for concurrent use: the owner
// serializes calls, every call runs to completion before the next one.
type Game struct {
	ID       uuid.UUID
	eOutput  EventOutput // output of events happening during the game
	catalog  *Catalog
	settings Settings
	log      zerolog.Logger
	hooks    []Hook

	players []*player
	graves  []Grave

	phase      PhaseType
	remaining  time.Duration
	day        int
	trialsLeft int
	onTrial    PlayerRef

	resolving bool // night priorities are running
	priority  Priority

	over   bool
	winner ResolutionState
}

type Option func(*Game)

func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) {
		g.log = log
	}
}

func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.ID = id
	}
}

// NewGame creates a game with the players seated in the given order. Every
// player must hold a role from settings' role list. The game sits in the
// first evening until Start is called.
func NewGame(eOutput EventOutput, catalog *Catalog, settings Settings, players []Player, opts ...Option) (*Game, error) {
	if err := settings.validate(catalog); err != nil {
		return nil, err
	}
	if err := sameRoles(settings.Roles, players); err != nil {
		return nil, err
	}

	g := &Game{
		ID:         uuid.New(),
		eOutput:    eOutput,
		catalog:    catalog,
		settings:   settings,
		log:        zerolog.Nop(),
		hooks:      catalog.hooks,
		phase:      Evening,
		remaining:  settings.PhaseTimes.Evening,
		day:        1,
		trialsLeft: settings.Trials,
		onTrial:    NoPlayer,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With().Str("game", g.ID.String()).Logger()

	for _, seat := range players {
		spec, _ := catalog.Get(seat.Role)
		g.players = append(g.players, &player{
			Player: seat,
			state:  spec.New(),
			alive:  true,
			vote:   NoPlayer,
		})
	}
	for _, p := range g.Players() {
		g.resetNightState(p)
	}

	for _, p := range g.Players() {
		g.players[p].state.OnRoleCreation(g, p)
		g.AddMessage(p, RoleAssignment{Role: g.RoleOf(p)})
	}
	return g, nil
}

func sameRoles(roles []Role, players []Player) error {
	if len(roles) != len(players) {
		return fmt.Errorf("%w: %d roles for %d players", ErrPlayersMismatch, len(roles), len(players))
	}
	roleToCnt := make(map[Role]int)
	for _, role := range roles {
		roleToCnt[role]++
	}
	for _, seat := range players {
		if roleToCnt[seat.Role] == 0 {
			return fmt.Errorf("%w: unexpected %s", ErrPlayersMismatch, seat.Role)
		}
		roleToCnt[seat.Role]--
	}
	return nil
}

// Start announces the first evening and delivers role assignments
func (g *Game) Start() {
	g.log.Info().Int("players", len(g.players)).Msg("game started")
	g.startPhase(Evening)
	g.flush()
}

// Stop ends the game without a winner
func (g *Game) Stop(notify bool) {
	if g.over {
		return
	}
	g.over = true
	g.log.Info().Msg("game stopped")

	if notify {
		g.eOutput.HandleNotifyStopGame(NotifyStopGameEvent{
			Users: g.users(),
		})
	}
}

func (g *Game) Phase() PhaseType {
	return g.phase
}

func (g *Game) Day() int {
	return g.day
}

func (g *Game) Remaining() time.Duration {
	return g.remaining
}

func (g *Game) Over() bool {
	return g.over
}

// Winner is meaningful only when the game is over
func (g *Game) Winner() ResolutionState {
	return g.winner
}

func (g *Game) Settings() Settings {
	return g.settings
}

// Users returns transport users of all seats
func (g *Game) Users() []int64 {
	return g.users()
}
