package game

// DeadActor is implemented by roles which may still act on some nights after death
type DeadActor interface {
	ActsWhenDead(g *Game, actor PlayerRef) bool
}

func (g *Game) canAct(p PlayerRef) bool {
	if g.Alive(p) {
		return true
	}
	dead, ok := g.players[p].state.(DeadActor)
	return ok && dead.ActsWhenDead(g, p)
}

// startNight rebuilds every night state, selections included
func (g *Game) startNight() {
	for _, p := range g.Players() {
		g.resetNightState(p)
	}
}

// resolveNight runs the whole night: visits are built from the selections,
// then every priority runs for every player in index order. A later player
// overrides an earlier one within the same priority.
func (g *Game) resolveNight() {
	for _, p := range g.AlivePlayers() {
		g.SetNightGraveWill(p, g.Will(p))
	}

	for _, p := range g.Players() {
		var visits []Visit
		if selection := g.Selection(p); len(selection) != 0 && g.canAct(p) {
			visits = g.players[p].state.ConvertSelectionToVisits(g, p, selection)
		}
		g.SetNightVisits(p, visits)
		g.SetNightAppearedVisits(p, copyVisits(visits))
	}

	g.resolving = true
	for _, priority := range Priorities() {
		g.priority = priority
		g.log.Debug().Stringer("priority", priority).Msg("resolving")
		for _, p := range g.Players() {
			if !g.canAct(p) {
				continue
			}
			g.players[p].state.DoNightAction(g, p, priority)
		}
	}
	g.resolving = false

	for _, p := range g.Players() {
		for _, msg := range g.NightMessages(p) {
			g.AddMessage(p, msg)
		}
	}
}

// AllowedSelections lists every target p could add to the current selection.
// Once the selection is complete it lists the targets a new selection could
// start with, so a client can always offer a change of mind.
func (g *Game) AllowedSelections(p PlayerRef) []PlayerRef {
	if !g.selecting(p) {
		return nil
	}
	allowed := g.allowedSelections(p)
	night := &g.players[p].night
	if len(allowed) == 0 && len(night.selection) != 0 {
		committed := night.selection
		night.selection = nil
		allowed = g.allowedSelections(p)
		night.selection = committed
	}
	return allowed
}

func (g *Game) allowedSelections(p PlayerRef) []PlayerRef {
	var allowed []PlayerRef
	state := g.players[p].state
	for _, target := range g.Players() {
		if state.CanSelect(g, p, target) {
			allowed = append(allowed, target)
		}
	}
	return allowed
}

func (g *Game) selecting(p PlayerRef) bool {
	return !g.over && g.phase == Night && g.canAct(p) && !g.NightJailed(p)
}

// SetSelection replaces p's selection for tonight. Targets are validated one by
// one in order, invalid ones are dropped. The kept selection is always reported
// back, it returns false if anything was dropped.
func (g *Game) SetSelection(p PlayerRef, targets []PlayerRef) bool {
	if !g.valid(p) {
		return false
	}
	defer g.flush()

	night := &g.players[p].night
	accepted := g.selecting(p)
	if accepted {
		night.selection = nil
		state := g.players[p].state
		for _, target := range targets {
			if !g.valid(target) || !state.CanSelect(g, p, target) {
				accepted = false
				continue
			}
			night.selection = append(night.selection, target)
		}
	}
	if !accepted {
		g.log.Debug().Int("player", int(p)).Ints("targets", refsToInts(targets)).Msg("selection rejected")
	}

	g.eOutput.HandleYourSelection(YourSelectionEvent{
		User:    g.players[p].User,
		Player:  p,
		Targets: append([]PlayerRef(nil), night.selection...),
	})
	return accepted
}

// DayTarget uses p's day ability on target
func (g *Game) DayTarget(p, target PlayerRef) bool {
	if g.over || !g.valid(p) || !g.valid(target) || !g.phase.IsDay() {
		return false
	}
	state := g.players[p].state
	if !state.CanDayTarget(g, p, target) {
		return false
	}
	defer g.flush()
	state.DoDayAction(g, p, target)
	return true
}

func refsToInts(refs []PlayerRef) []int {
	ints := make([]int, len(refs))
	for i, ref := range refs {
		ints[i] = int(ref)
	}
	return ints
}
