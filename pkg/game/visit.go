package game

// PlayerRef is an index of a player inside a Game. Refs are stable for the whole game.
type PlayerRef int

// NoPlayer is used where a reference is optional, e.g. nobody is on trial
const NoPlayer PlayerRef = -1

// Visit is one player's night action directed at a target
type Visit struct {
	Target PlayerRef
	Attack bool // harmful visit, seen by roles protecting the target
	Astral bool // not physical, can't be seen by watching roles
}

// NewVisit returns a physical visit to target
func NewVisit(target PlayerRef, attack bool) Visit {
	return Visit{
		Target: target,
		Attack: attack,
	}
}

// NewAstralVisit returns a visit which leaves no trace at the target
func NewAstralVisit(target PlayerRef, attack bool) Visit {
	return Visit{
		Target: target,
		Attack: attack,
		Astral: true,
	}
}

// VisitsTo converts targets into visits of the same kind
func VisitsTo(targets []PlayerRef, attack bool) []Visit {
	visits := make([]Visit, 0, len(targets))
	for _, target := range targets {
		visits = append(visits, NewVisit(target, attack))
	}
	return visits
}

func copyVisits(visits []Visit) []Visit {
	if visits == nil {
		return nil
	}
	return append(make([]Visit, 0, len(visits)), visits...)
}
