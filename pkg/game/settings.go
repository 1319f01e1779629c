package game

import (
	"errors"
	"fmt"
)

const (
	DefaultTrials = 3
	DefaultMaxDay = 255
)

var ErrInvalidSettings = errors.New("invalid game settings")

// Settings is the configuration of one game
type Settings struct {
	Roles      []Role
	PhaseTimes PhaseTimes
	Trials     int // trials per day
	MaxDay     int // the game is over when this day is reached
}

// DefaultSettings returns settings for the role list with default timings
func DefaultSettings(roles []Role) Settings {
	return Settings{
		Roles:      roles,
		PhaseTimes: DefaultPhaseTimes(),
		Trials:     DefaultTrials,
		MaxDay:     DefaultMaxDay,
	}
}

func (s Settings) validate(c *Catalog) error {
	if !s.PhaseTimes.valid() {
		return fmt.Errorf("%w: every phase must last", ErrInvalidSettings)
	}
	if s.Trials < 1 {
		return fmt.Errorf("%w: at least one trial a day is needed", ErrInvalidSettings)
	}
	if s.MaxDay < 2 {
		return fmt.Errorf("%w: max day %d", ErrInvalidSettings, s.MaxDay)
	}
	return c.ValidateRoleList(s.Roles)
}
