// Package scenario replays scripted games described in YAML files. A scenario
// seats the players and lists, day by day, what everybody does.
package scenario

import (
	"errors"
	"io"
	"os"

	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoPlayers     = errors.New("scenario has no players")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrUnknownRole   = errors.New("unknown role")
	ErrDuplicateName = errors.New("duplicate player name")
	ErrBadVerdict    = errors.New("verdict must be guilty, innocent or abstain")
)

// Scenario is a scripted game
type Scenario struct {
	Players    []Seat           `yaml:"players"`
	PhaseTimes *game.PhaseTimes `yaml:"phase_times,omitempty"`
	Trials     int              `yaml:"trials,omitempty"`
	Days       []Day            `yaml:"nights"`
}

type Seat struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// Day is what happens from one morning to the end of the following night.
// The first entry starts in the evening of day 1, so it has no voting.
type Day struct {
	DayTargets map[string]string   `yaml:"day_targets,omitempty"`
	Votes      map[string]string   `yaml:"votes,omitempty"`
	Verdicts   map[string]string   `yaml:"verdicts,omitempty"`
	Wills      map[string]string   `yaml:"wills,omitempty"`
	Selections map[string][]string `yaml:"selections,omitempty"`
}

// Load decodes a scenario and checks that it only mentions seated players
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, oops.Wrapf(err, "decode scenario")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile loads the scenario stored at path
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, oops.Wrapf(err, "open scenario %s", path)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, oops.Wrapf(err, "load scenario %s", path)
	}
	return s, nil
}

func (s *Scenario) validate() error {
	if len(s.Players) == 0 {
		return ErrNoPlayers
	}
	names := make(map[string]bool, len(s.Players))
	for _, seat := range s.Players {
		if names[seat.Name] {
			return oops.Wrapf(ErrDuplicateName, "player %q", seat.Name)
		}
		names[seat.Name] = true
		if _, ok := game.ParseRole(seat.Role); !ok {
			return oops.Wrapf(ErrUnknownRole, "player %q has role %q", seat.Name, seat.Role)
		}
	}

	known := func(day int, what, name string) error {
		if !names[name] {
			return oops.Wrapf(ErrUnknownPlayer, "day %d %s: %q", day+1, what, name)
		}
		return nil
	}
	for i, d := range s.Days {
		for actor, target := range d.DayTargets {
			if err := errors.Join(known(i, "day target", actor), known(i, "day target", target)); err != nil {
				return err
			}
		}
		for voter, target := range d.Votes {
			if err := errors.Join(known(i, "vote", voter), known(i, "vote", target)); err != nil {
				return err
			}
		}
		for voter, verdict := range d.Verdicts {
			if err := known(i, "verdict", voter); err != nil {
				return err
			}
			if _, ok := parseVerdict(verdict); !ok {
				return oops.Wrapf(ErrBadVerdict, "day %d verdict of %q: %q", i+1, voter, verdict)
			}
		}
		for name := range d.Wills {
			if err := known(i, "will", name); err != nil {
				return err
			}
		}
		for actor, targets := range d.Selections {
			if err := known(i, "selection", actor); err != nil {
				return err
			}
			for _, target := range targets {
				if err := known(i, "selection", target); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func parseVerdict(s string) (game.Verdict, bool) {
	switch s {
	case "guilty":
		return game.Guilty, true
	case "innocent":
		return game.Innocent, true
	case "abstain", "":
		return game.Abstain, true
	default:
		return game.Abstain, false
	}
}

// Roles returns the role list of the scenario
func (s *Scenario) Roles() []game.Role {
	roles := make([]game.Role, len(s.Players))
	for i, seat := range s.Players {
		roles[i], _ = game.ParseRole(seat.Role)
	}
	return roles
}
