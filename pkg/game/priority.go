package game

// Priority is a stage of the night resolution. Every living player's role acts
// at every stage, the stages run strictly in the order of Priorities.
type Priority int

const (
	PriorityTop Priority = iota
	PriorityWard
	PriorityTransporter
	PriorityPossess
	PriorityRoleblock
	PriorityDeception
	PriorityBodyguard
	PriorityHeal
	PriorityKill
	PriorityInvestigative
	PrioritySpyBug
	PriorityStealMessages
	PriorityConvert
	PriorityFinal
)

var priorityToName = map[Priority]string{
	PriorityTop:           "top",
	PriorityWard:          "ward",
	PriorityTransporter:   "transporter",
	PriorityPossess:       "possess",
	PriorityRoleblock:     "roleblock",
	PriorityDeception:     "deception",
	PriorityBodyguard:     "bodyguard",
	PriorityHeal:          "heal",
	PriorityKill:          "kill",
	PriorityInvestigative: "investigative",
	PrioritySpyBug:        "spy_bug",
	PriorityStealMessages: "steal_messages",
	PriorityConvert:       "convert",
	PriorityFinal:         "final",
}

func (p Priority) String() string {
	if name, ok := priorityToName[p]; ok {
		return name
	}
	return "unknown"
}

// Priorities returns the ladder in resolution order
func Priorities() []Priority {
	ladder := make([]Priority, 0, PriorityFinal+1)
	for p := PriorityTop; p <= PriorityFinal; p++ {
		ladder = append(ladder, p)
	}
	return ladder
}

// CanRedirect reports whether visits may still be rewritten at priority p.
// After the kill stage starts, attacks have already been resolved against the current targets.
func (p Priority) CanRedirect() bool {
	return p < PriorityKill
}
