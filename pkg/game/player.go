package game

// Player represents a seat in a game: who sits there and the role dealt to them
type Player struct {
	User int64  // user ID in the transport
	Name string // nick in the game
	Role Role
}

type player struct {
	Player
	state   RoleState
	alive   bool
	will    string
	night   nightState
	vote    PlayerRef
	verdict Verdict
	chat    []ChatMessage // not yet delivered
}

// Players returns references to all seats, dead included, in index order
func (g *Game) Players() []PlayerRef {
	refs := make([]PlayerRef, len(g.players))
	for i := range g.players {
		refs[i] = PlayerRef(i)
	}
	return refs
}

// AlivePlayers returns living players in index order
func (g *Game) AlivePlayers() []PlayerRef {
	var refs []PlayerRef
	for i, pl := range g.players {
		if pl.alive {
			refs = append(refs, PlayerRef(i))
		}
	}
	return refs
}

func (g *Game) valid(p PlayerRef) bool {
	return p >= 0 && int(p) < len(g.players)
}

// Player returns the seat of p with its current role
func (g *Game) Player(p PlayerRef) Player {
	seat := g.players[p].Player
	seat.Role = g.RoleOf(p)
	return seat
}

func (g *Game) Name(p PlayerRef) string {
	return g.players[p].Name
}

// Ref finds the player by nick
func (g *Game) Ref(name string) (PlayerRef, bool) {
	for i, pl := range g.players {
		if pl.Name == name {
			return PlayerRef(i), true
		}
	}
	return NoPlayer, false
}

// RefByUser finds the player by transport user
func (g *Game) RefByUser(user int64) (PlayerRef, bool) {
	for i, pl := range g.players {
		if pl.User == user {
			return PlayerRef(i), true
		}
	}
	return NoPlayer, false
}

func (g *Game) Alive(p PlayerRef) bool {
	return g.players[p].alive
}

func (g *Game) setAlive(p PlayerRef, alive bool) {
	g.players[p].alive = alive

	e := PlayerAliveEvent{
		Users: g.users(),
		Alive: make([]bool, len(g.players)),
	}
	for i, pl := range g.players {
		e.Alive[i] = pl.alive
	}
	g.eOutput.HandlePlayerAlive(e)
}

func (g *Game) RoleState(p PlayerRef) RoleState {
	return g.players[p].state
}

func (g *Game) RoleOf(p PlayerRef) Role {
	return g.players[p].state.Role()
}

// Spec returns the catalog entry of p's current role
func (g *Game) Spec(p PlayerRef) RoleSpec {
	spec, err := g.catalog.Get(g.RoleOf(p))
	if err != nil {
		panic(err)
	}
	return spec
}

func (g *Game) SideOf(p PlayerRef) Side {
	return g.Spec(p).Side
}

func (g *Game) Will(p PlayerRef) string {
	return g.players[p].will
}

// SetWill replaces p's will, dead players can't edit it anymore
func (g *Game) SetWill(p PlayerRef, will string) bool {
	if !g.valid(p) || !g.Alive(p) {
		return false
	}
	g.players[p].will = will
	return true
}

// SetRoleState replaces the role state of p. Changing the role notifies hooks.
func (g *Game) SetRoleState(p PlayerRef, state RoleState) {
	from := g.RoleOf(p)
	g.players[p].state = state

	pl := g.players[p]
	g.eOutput.HandleYourRoleState(YourRoleStateEvent{
		User:   pl.User,
		Player: p,
		Role:   state.Role(),
		State:  state,
	})

	if from != state.Role() {
		g.log.Debug().Int("player", int(p)).Stringer("from", from).Stringer("to", state.Role()).Msg("role switched")
		for _, hook := range g.hooks {
			hook.OnRoleSwitch(g, p, from, state.Role())
		}
	}
}

// SetRole gives p a brand new role, as if it was dealt to them
func (g *Game) SetRole(p PlayerRef, state RoleState) {
	g.SetRoleState(p, state)
	g.players[p].state.OnRoleCreation(g, p)
	g.AddMessage(p, RoleAssignment{Role: state.Role()})
}

// NewRoleState creates the initial state of role from the catalog
func (g *Game) NewRoleState(role Role) (RoleState, error) {
	spec, err := g.catalog.Get(role)
	if err != nil {
		return nil, err
	}
	return spec.New(), nil
}

func (g *Game) users() []int64 {
	users := make([]int64, 0, len(g.players))
	for _, pl := range g.players {
		users = append(users, pl.User)
	}
	return users
}
