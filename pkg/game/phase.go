package game

import "time"

// PhaseType is a stage of the day/night cycle
type PhaseType int

const (
	_ PhaseType = iota
	Morning
	Discussion
	Voting
	Testimony
	Judgement
	Evening
	Night
)

var phaseToName = map[PhaseType]string{
	Morning:    "morning",
	Discussion: "discussion",
	Voting:     "voting",
	Testimony:  "testimony",
	Judgement:  "judgement",
	Evening:    "evening",
	Night:      "night",
}

func (p PhaseType) String() string {
	return phaseToName[p]
}

// IsDay iff p is not Night
func (p PhaseType) IsDay() bool {
	return p != Night
}

// PhaseTimes is how long every phase lasts
type PhaseTimes struct {
	Morning    time.Duration `yaml:"morning"`
	Discussion time.Duration `yaml:"discussion"`
	Voting     time.Duration `yaml:"voting"`
	Testimony  time.Duration `yaml:"testimony"`
	Judgement  time.Duration `yaml:"judgement"`
	Evening    time.Duration `yaml:"evening"`
	Night      time.Duration `yaml:"night"`
}

func DefaultPhaseTimes() PhaseTimes {
	return PhaseTimes{
		Morning:    5 * time.Second,
		Discussion: 46 * time.Second,
		Voting:     30 * time.Second,
		Testimony:  24 * time.Second,
		Judgement:  20 * time.Second,
		Evening:    7 * time.Second,
		Night:      39 * time.Second,
	}
}

func (pt PhaseTimes) Length(phase PhaseType) time.Duration {
	switch phase {
	case Morning:
		return pt.Morning
	case Discussion:
		return pt.Discussion
	case Voting:
		return pt.Voting
	case Testimony:
		return pt.Testimony
	case Judgement:
		return pt.Judgement
	case Evening:
		return pt.Evening
	case Night:
		return pt.Night
	default:
		return 0
	}
}

func (pt PhaseTimes) valid() bool {
	for phase := Morning; phase <= Night; phase++ {
		if pt.Length(phase) <= 0 {
			return false
		}
	}
	return true
}
