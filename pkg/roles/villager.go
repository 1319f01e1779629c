package roles

import "github.com/jejutic/mafia_server/pkg/game"

type Villager struct{ game.BaseRole }

func (Villager) Role() game.Role { return game.Villager }
