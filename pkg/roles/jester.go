package roles

import "github.com/jejutic/mafia_server/pkg/game"

// Jester wins by getting lynched. The night after the lynch he may haunt one
// of the players who voted guilty.
type Jester struct {
	game.BaseRole
	Lynched   bool
	lynchDay  int
	hauntable []game.PlayerRef
}

func NewJester() *Jester {
	return &Jester{}
}

func (*Jester) Role() game.Role { return game.Jester }

func (j *Jester) OnGraveAdded(g *game.Game, actor game.PlayerRef, ref game.GraveRef) {
	grave := g.Grave(ref)
	if grave.Player != actor || grave.Phase != game.DiedAtDay {
		return
	}
	j.Lynched = true
	j.lynchDay = g.Day()
	j.hauntable = nil
	for _, p := range g.AlivePlayers() {
		if g.VerdictOf(p) == game.Guilty {
			j.hauntable = append(j.hauntable, p)
		}
	}
	g.SetRoleState(actor, j)
}

func (j *Jester) haunting(g *game.Game) bool {
	return j.Lynched && g.Day() == j.lynchDay
}

// ActsWhenDead lets the jester haunt on the night of his lynch
func (j *Jester) ActsWhenDead(g *game.Game, _ game.PlayerRef) bool {
	return j.haunting(g)
}

func (j *Jester) CanSelect(g *game.Game, actor, target game.PlayerRef) bool {
	return j.haunting(g) && !g.Alive(actor) &&
		g.Alive(target) && contains(j.hauntable, target) &&
		len(g.Selection(actor)) == 0
}

func (*Jester) ConvertSelectionToVisits(_ *game.Game, _ game.PlayerRef, targets []game.PlayerRef) []game.Visit {
	if len(targets) == 0 {
		return nil
	}
	return []game.Visit{game.NewAstralVisit(targets[0], true)}
}

func (j *Jester) DoNightAction(g *game.Game, actor game.PlayerRef, priority game.Priority) {
	if priority != game.PriorityTop || !j.haunting(g) || g.Alive(actor) {
		return
	}
	target, ok := firstTarget(g, actor)
	if !ok {
		return
	}
	g.TryNightKill(actor, target, game.KilledByRole(game.Jester), game.AttackProtectionPiercing)
	g.PushNightMessage(target, game.JesterHaunted{})
}

func (j *Jester) WonGame(*game.Game, game.PlayerRef) bool {
	return j.Lynched
}
