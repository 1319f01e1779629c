package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Catalog returns a catalog with every role of the game
func Catalog() *game.Catalog {
	c := game.NewCatalog()
	Register(c)
	return c
}

// Register adds all roles and the mafia component to c
func Register(c *game.Catalog) {
	for _, spec := range []game.RoleSpec{
		{Role: game.Villager, Side: game.TownSide, New: func() game.RoleState { return Villager{} }},
		{Role: game.Doctor, Side: game.TownSide, New: func() game.RoleState { return NewDoctor() }},
		{Role: game.Bodyguard, Side: game.TownSide, New: func() game.RoleState { return NewBodyguard() }},
		{
			Role:             game.Transporter,
			Side:             game.TownSide,
			RoleblockImmune:  true,
			PossessionImmune: true,
			New:              func() game.RoleState { return Transporter{} },
		},
		{Role: game.Escort, Side: game.TownSide, RoleblockImmune: true, New: func() game.RoleState { return Escort{} }},
		{Role: game.Jailor, Side: game.TownSide, MaximumCount: 1, New: func() game.RoleState { return NewJailor() }},
		{Role: game.Detective, Side: game.TownSide, New: func() game.RoleState { return Detective{} }},
		{Role: game.Lookout, Side: game.TownSide, New: func() game.RoleState { return Lookout{} }},
		{Role: game.Spy, Side: game.TownSide, New: func() game.RoleState { return Spy{} }},
		{Role: game.Vigilante, Side: game.TownSide, New: func() game.RoleState { return NewVigilante() }},
		{
			Role:             game.Veteran,
			Side:             game.TownSide,
			MaximumCount:     1,
			RoleblockImmune:  true,
			PossessionImmune: true,
			New:              func() game.RoleState { return NewVeteran() },
		},

		{
			Role:         game.Godfather,
			Side:         game.MafiaSide,
			MaximumCount: 1,
			Defense:      game.DefenseArmor,
			InnocentAura: true,
			New:          func() game.RoleState { return NewGodfather() },
		},
		{Role: game.Mafioso, Side: game.MafiaSide, MaximumCount: 1, New: func() game.RoleState { return Mafioso{} }},
		{Role: game.Consort, Side: game.MafiaSide, RoleblockImmune: true, New: func() game.RoleState { return Consort{} }},
		{Role: game.Janitor, Side: game.MafiaSide, MaximumCount: 1, New: func() game.RoleState { return NewJanitor() }},
		{Role: game.Blackmailer, Side: game.MafiaSide, New: func() game.RoleState { return Blackmailer{} }},
		{Role: game.Framer, Side: game.MafiaSide, New: func() game.RoleState { return Framer{} }},
		{
			Role:             game.Witch,
			Side:             game.MafiaSide,
			RoleblockImmune:  true,
			PossessionImmune: true,
			New:              func() game.RoleState { return NewWitch() },
		},

		{Role: game.Jester, Side: game.NeutralSide, New: func() game.RoleState { return NewJester() }},
	} {
		c.Register(spec)
	}
	c.AddHook(MafiaComponent{})
}
