package roles_test

import (
	"testing"

	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/jejutic/mafia_server/pkg/game/gametest"
	"github.com/jejutic/mafia_server/pkg/roles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGodfather_backupKillsWhenBlocked(t *testing.T) {
	assert := assert.New(t)
	g, r := gametest.NewGame(t, roles.Catalog(),
		game.Godfather, game.Mafioso, game.Escort, game.Villager, game.Villager, game.Villager)

	assert.False(g.DayTarget(0, 2), "backup must be mafia")
	require.True(t, g.DayTarget(0, 1))
	assert.Contains(r.Messages(1), game.GodfatherBackup{Backup: 1})
	assert.NotContains(r.Messages(2), game.GodfatherBackup{Backup: 1})

	gametest.Night(t, g, nil)
	r.Reset()
	gametest.Night(t, g, selections{
		0: sel(3),
		1: sel(4),
		2: sel(0),
	})

	assert.True(g.Alive(3))
	assert.False(g.Alive(4))
	assert.Contains(r.Messages(0), game.GodfatherBackupKilled{Backup: 1})
	assert.Contains(r.Messages(1), game.GodfatherBackupKilled{Backup: 1})
	require.Len(t, r.Graves, 1)
	assert.Equal([]game.GraveKiller{game.KilledByMafia()}, r.Graves[0].Killers, "killers are recorded once")
}

func TestGodfather_backupInherits(t *testing.T) {
	g, r := gametest.NewGame(t, roles.Catalog(),
		game.Godfather, game.Mafioso, game.Villager, game.Villager, game.Villager, game.Villager)
	require.True(t, g.DayTarget(0, 1))

	lynch(t, g, 0, 2, 3, 4, 5)

	assert.Equal(t, game.Godfather, g.RoleOf(1))
	assert.Contains(t, r.Messages(1), game.RoleAssignment{Role: game.Godfather})
	assert.False(t, g.Over())
}

func TestGodfather_defense(t *testing.T) {
	g, r := newGame(t, game.Godfather, game.Vigilante, game.Villager, game.Villager, game.Villager)

	gametest.Night(t, g, selections{1: sel(0)})

	assert.True(t, g.Alive(0))
	assert.Contains(t, r.Messages(0), game.YouSurvivedAttack{})
}

func TestMafiaComponent(t *testing.T) {
	t.Run("promotes at night start", func(t *testing.T) {
		g, r := gametest.NewGame(t, roles.Catalog(), game.Consort, game.Villager, game.Villager, game.Villager)

		gametest.ToPhase(t, g, game.Night)
		assert.Equal(t, game.Mafioso, g.RoleOf(0))
		assert.Contains(t, r.Messages(0), game.RoleAssignment{Role: game.Mafioso})
	})

	t.Run("promotes when the killer dies", func(t *testing.T) {
		g, _ := gametest.NewGame(t, roles.Catalog(),
			game.Godfather, game.Framer, game.Consort, game.Villager, game.Villager, game.Villager, game.Villager)

		lynch(t, g, 0, 3, 4, 5, 6)
		assert.Equal(t, game.Mafioso, g.RoleOf(1), "first living mafia member by index")
		assert.Equal(t, game.Consort, g.RoleOf(2))
	})

	t.Run("keeps an existing killer", func(t *testing.T) {
		g, _ := gametest.NewGame(t, roles.Catalog(), game.Consort, game.Mafioso, game.Villager, game.Villager)

		gametest.ToPhase(t, g, game.Night)
		assert.Equal(t, game.Consort, g.RoleOf(0))
	})
}

func TestJanitor(t *testing.T) {
	assert := assert.New(t)
	g, r := newGame(t, game.Janitor, game.Villager, game.Villager, game.Mafioso, game.Villager, game.Villager)
	require.True(t, g.SetWill(1, "I saw nothing"))

	gametest.Night(t, g, selections{
		0: sel(1),
		3: sel(1),
	})

	assert.False(g.Alive(1))
	require.Len(t, r.Graves, 1)
	assert.True(r.Graves[0].Cleaned())
	assert.Empty(r.Graves[0].Will)
	assert.Contains(r.Messages(0), game.PlayerRoleAndWill{Role: game.Villager, Will: "I saw nothing"})
	assert.Equal(2, g.RoleState(0).(*roles.Janitor).CleansRemaining)
}

func TestBlackmailer(t *testing.T) {
	assert := assert.New(t)
	g, r := newGame(t, game.Villager, game.Villager, game.Villager, game.Mafioso, game.Blackmailer)

	gametest.Night(t, g, selections{4: sel(1)})
	assert.Contains(r.Messages(1), game.Silenced{})

	gametest.ToPhase(t, g, game.Discussion)
	assert.False(g.SendChat(1, "it was 4"))
	assert.True(g.SendChat(2, "hello"))

	gametest.ToPhase(t, g, game.Voting)
	assert.False(g.Vote(1, 4))
	assert.True(g.Vote(2, 4))
}

func TestWitch(t *testing.T) {
	assert := assert.New(t)
	g, r := newGame(t, game.Witch, game.Vigilante, game.Villager, game.Mafioso, game.Villager, game.Villager)

	gametest.ToPhase(t, g, game.Night)
	assert.False(g.SetSelection(0, []game.PlayerRef{3, 1}), "mafia can't be controlled")
	gametest.Night(t, g, selections{
		0: sel(1, 2),
		1: sel(3),
	})

	assert.True(g.Alive(3))
	assert.False(g.Alive(2))
	assert.Contains(r.Messages(1), game.YouWerePossessed{Immune: false})
	assert.Contains(r.Messages(0), game.TargetsMessage{Message: game.YouWerePossessed{Immune: false}})
	assert.Equal([]game.Visit{game.NewVisit(1, false), game.NewAstralVisit(2, false)}, g.NightVisits(0))
}

func TestWitch_immune(t *testing.T) {
	assert := assert.New(t)
	g, r := newGame(t, game.Witch, game.Veteran, game.Villager, game.Mafioso, game.Villager)

	gametest.Night(t, g, selections{
		0: sel(1, 2),
		1: sel(1),
	})

	assert.Contains(r.Messages(1), game.YouWerePossessed{Immune: true})
	assert.Contains(r.Messages(0), game.WitchTargetImmune{})
	assert.Equal([]game.Visit{game.NewAstralVisit(1, false)}, g.NightVisits(1))
	assert.False(g.Alive(0), "the witch visited an alert veteran")
}

func TestNightGraves_roleAtDeath(t *testing.T) {
	t.Run("mafia killer and member die together", func(t *testing.T) {
		assert := assert.New(t)
		g, r := gametest.NewGame(t, roles.Catalog(),
			game.Mafioso, game.Framer, game.Consort, game.Villager, game.Villager, game.Villager, game.Villager)

		gametest.ToPhase(t, g, game.Night)
		r.Reset()
		g.TryNightKill(3, 0, game.KilledByRole(game.Vigilante), game.AttackProtectionPiercing)
		g.TryNightKill(3, 1, game.KilledByRole(game.Vigilante), game.AttackProtectionPiercing)
		g.EndPhase()

		require.Len(t, r.Graves, 2)
		assert.Equal(game.Mafioso, r.Graves[0].Role)
		assert.Equal(game.Framer, r.Graves[1].Role, "the dying framer is not promoted")
		assert.Equal(game.Mafioso, g.RoleOf(2), "the surviving consort takes over")
		assert.Contains(r.Messages(2), game.RoleAssignment{Role: game.Mafioso})
		assert.NotContains(r.Messages(1), game.RoleAssignment{Role: game.Mafioso})
	})

	t.Run("godfather and backup die together", func(t *testing.T) {
		assert := assert.New(t)
		g, r := gametest.NewGame(t, roles.Catalog(),
			game.Godfather, game.Consort, game.Framer, game.Villager, game.Villager, game.Villager, game.Villager)
		require.True(t, g.DayTarget(0, 1))

		gametest.ToPhase(t, g, game.Night)
		r.Reset()
		g.TryNightKill(3, 0, game.KilledByRole(game.Vigilante), game.AttackProtectionPiercing)
		g.TryNightKill(3, 1, game.KilledByRole(game.Vigilante), game.AttackProtectionPiercing)
		g.EndPhase()

		require.Len(t, r.Graves, 2)
		assert.Equal(game.Godfather, r.Graves[0].Role)
		assert.Equal(game.Consort, r.Graves[1].Role, "the dead backup doesn't inherit")
		assert.NotContains(r.Messages(1), game.RoleAssignment{Role: game.Godfather})
		assert.Equal(game.Mafioso, g.RoleOf(2))
		assert.False(g.Over())
	})
}
