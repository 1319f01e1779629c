package game

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownRole   = errors.New("unknown role")
	ErrTooManyOfRole = errors.New("too many players with the role")
	ErrEmptyRoleList = errors.New("role list is empty")
)

// RoleSpec describes a role for the catalog
type RoleSpec struct {
	Role             Role
	Side             Side
	MaximumCount     int // 0 means no limit
	Defense          DefensePower
	RoleblockImmune  bool
	PossessionImmune bool
	InnocentAura     bool // looks innocent to investigators
	New              func() RoleState
}

// Hook is a game-wide component which reacts to events independently of any player's role
type Hook interface {
	OnPhaseStart(g *Game, phase PhaseType)
	OnAnyDeath(g *Game, dead PlayerRef)
	OnRoleSwitch(g *Game, p PlayerRef, from, to Role)
}

// Catalog maps roles to their specs and holds game-wide hooks
type Catalog struct {
	specs map[Role]RoleSpec
	hooks []Hook
}

func NewCatalog() *Catalog {
	return &Catalog{specs: make(map[Role]RoleSpec)}
}

// Register adds or replaces the spec of a role
func (c *Catalog) Register(spec RoleSpec) {
	c.specs[spec.Role] = spec
}

// AddHook registers a component notified by every game created from the catalog
func (c *Catalog) AddHook(h Hook) {
	c.hooks = append(c.hooks, h)
}

func (c *Catalog) Get(role Role) (RoleSpec, error) {
	spec, ok := c.specs[role]
	if !ok {
		return RoleSpec{}, fmt.Errorf("%w: %d", ErrUnknownRole, role)
	}
	return spec, nil
}

// Roles returns registered roles in declaration order
func (c *Catalog) Roles() []Role {
	roles := make([]Role, 0, len(c.specs))
	for role := range c.specs {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// ValidateRoleList returns nil error iff list of role-cards roles is valid for mafia game
func (c *Catalog) ValidateRoleList(roles []Role) error {
	if len(roles) == 0 {
		return ErrEmptyRoleList
	}

	roleToCnt := make(map[Role]int)
	for _, role := range roles {
		if _, ok := c.specs[role]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownRole, role)
		}
		roleToCnt[role]++
	}

	for _, role := range c.Roles() {
		if limit := c.specs[role].MaximumCount; limit != 0 && roleToCnt[role] > limit {
			return fmt.Errorf("%w: no more than %d %s", ErrTooManyOfRole, limit, role)
		}
	}
	return nil
}
