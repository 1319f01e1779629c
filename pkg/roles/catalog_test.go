package roles_test

import (
	"testing"

	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/jejutic/mafia_server/pkg/roles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := roles.Catalog()

	assert.ElementsMatch(t, game.AllRoles(), c.Roles())
	for _, role := range game.AllRoles() {
		spec, err := c.Get(role)
		require.NoError(t, err, role.String())
		state := spec.New()
		require.NotNil(t, state)
		assert.Equal(t, role, state.Role())
	}

	gf, err := c.Get(game.Godfather)
	require.NoError(t, err)
	assert.Equal(t, game.DefenseArmor, gf.Defense)
	assert.True(t, gf.InnocentAura)
	assert.Equal(t, game.MafiaSide, gf.Side)
}

func TestCatalog_ValidateRoleList(t *testing.T) {
	c := roles.Catalog()

	tests := []struct {
		name  string
		roles []game.Role
		err   error
	}{
		{"ok", []game.Role{game.Godfather, game.Doctor, game.Villager, game.Villager}, nil},
		{"many villagers", []game.Role{game.Villager, game.Villager, game.Villager, game.Mafioso}, nil},
		{"empty", nil, game.ErrEmptyRoleList},
		{"two godfathers", []game.Role{game.Godfather, game.Godfather, game.Villager}, game.ErrTooManyOfRole},
		{"two jailors", []game.Role{game.Jailor, game.Jailor, game.Mafioso}, game.ErrTooManyOfRole},
		{"unknown", []game.Role{game.Villager, game.Role(99)}, game.ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.ValidateRoleList(tt.roles)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}
