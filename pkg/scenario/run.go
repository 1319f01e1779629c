package scenario

import (
	"fmt"
	"io"

	"github.com/jejutic/mafia_server/pkg/game"
	"github.com/jejutic/mafia_server/pkg/gameserver"
	"github.com/rs/zerolog"
	"github.com/samber/oops"
)

// Report is what happened in a replayed game
type Report struct {
	Days     []DayReport
	Over     bool
	Winner   game.ResolutionState
	Winners  []string
	Renderer *gameserver.Renderer
}

// DayReport holds the outcome of one scripted day
type DayReport struct {
	Day      int                 // day the game is in after the entry: the next morning, or the day it ended
	Messages map[string][]string // rendered chat of every player
	Graves   []game.Grave        // graves added during the day and the night
	Rejected []string            // actions the game refused
}

// Run replays s against a fresh game built from catalog
func Run(s *Scenario, catalog *game.Catalog, log zerolog.Logger) (*Report, error) {
	settings := game.DefaultSettings(s.Roles())
	if s.PhaseTimes != nil {
		settings.PhaseTimes = *s.PhaseTimes
	}
	if s.Trials != 0 {
		settings.Trials = s.Trials
	}

	players := make([]game.Player, len(s.Players))
	for i, seat := range s.Players {
		role, _ := game.ParseRole(seat.Role)
		players[i] = game.Player{User: int64(i), Name: seat.Name, Role: role}
	}

	out := newCollector()
	g, err := game.NewGame(out, catalog, settings, players, game.WithLogger(log))
	if err != nil {
		return nil, oops.Wrapf(err, "create game")
	}
	r := &replay{g: g}
	report := &Report{Renderer: gameserver.NewRenderer(players, log)}

	g.Start()
	for i, day := range s.Days {
		if g.Over() {
			break
		}
		r.rejected = nil
		r.playDay(i, day)

		chat, graves := out.flush()
		dr := DayReport{
			Day:      g.Day(),
			Messages: make(map[string][]string),
			Graves:   graves,
			Rejected: r.rejected,
		}
		for _, p := range g.Players() {
			for _, msg := range chat[p] {
				if text := report.Renderer.Render(msg); text != "" {
					dr.Messages[g.Name(p)] = append(dr.Messages[g.Name(p)], text)
				}
			}
		}
		report.Days = append(report.Days, dr)
	}

	report.Over = g.Over()
	report.Winner = g.Winner()
	if out.win != nil {
		report.Winners = out.win.Winners
	}
	return report, nil
}

type replay struct {
	g        *game.Game
	rejected []string
}

func (r *replay) ref(name string) game.PlayerRef {
	p, _ := r.g.Ref(name)
	return p
}

func (r *replay) reject(format string, args ...any) {
	r.rejected = append(r.rejected, fmt.Sprintf(format, args...))
}

// toPhase ends phases until phase starts. It gives up when the game ends or
// the phase can't be reached in a day.
func (r *replay) toPhase(phase game.PhaseType) bool {
	for i := 0; i < 8 && r.g.Phase() != phase; i++ {
		if r.g.Over() {
			return false
		}
		r.g.EndPhase()
	}
	return r.g.Phase() == phase && !r.g.Over()
}

// playDay acts out d in player order and ends with the night resolved
func (r *replay) playDay(i int, d Day) {
	g := r.g
	if i > 0 {
		r.toPhase(game.Discussion)
	}

	for _, p := range g.Players() {
		name := g.Name(p)
		if will, ok := d.Wills[name]; ok && !g.SetWill(p, will) {
			r.reject("%s can't write a will", name)
		}
		if target, ok := d.DayTargets[name]; ok && !g.DayTarget(p, r.ref(target)) {
			r.reject("%s can't target %s", name, target)
		}
	}

	if len(d.Votes) != 0 && r.toPhase(game.Voting) {
		for _, p := range g.Players() {
			name := g.Name(p)
			if target, ok := d.Votes[name]; ok && !g.Vote(p, r.ref(target)) {
				r.reject("%s can't vote for %s", name, target)
			}
		}
	}

	if g.Phase() == game.Testimony {
		g.EndPhase()
		for _, p := range g.Players() {
			name := g.Name(p)
			if v, ok := d.Verdicts[name]; ok {
				verdict, _ := parseVerdict(v)
				if !g.SetVerdict(p, verdict) {
					r.reject("%s can't judge", name)
				}
			}
		}
		g.EndPhase()
	}

	if !r.toPhase(game.Night) {
		return
	}
	for _, p := range g.Players() {
		name := g.Name(p)
		names, ok := d.Selections[name]
		if !ok {
			continue
		}
		targets := make([]game.PlayerRef, len(names))
		for j, target := range names {
			targets[j] = r.ref(target)
		}
		if !g.SetSelection(p, targets) {
			r.reject("%s can't select %v", name, names)
		}
	}
	g.EndPhase()
}

// Print writes the report in a human readable form
func (rep *Report) Print(w io.Writer, names []string) {
	for i, d := range rep.Days {
		fmt.Fprintf(w, "=== entry %d, now day %d ===\n", i+1, d.Day)
		for _, gr := range d.Graves {
			fmt.Fprintf(w, "grave: %s\n", rep.Renderer.Grave(gr))
		}
		for _, rejected := range d.Rejected {
			fmt.Fprintf(w, "rejected: %s\n", rejected)
		}
		for _, name := range names {
			for _, text := range d.Messages[name] {
				fmt.Fprintf(w, "%s <- %s\n", name, text)
			}
		}
	}
	if rep.Over {
		fmt.Fprintf(w, "=== game over: %s, winners %v ===\n", rep.Winner, rep.Winners)
	}
}

// Names returns the players' names in seat order
func (s *Scenario) Names() []string {
	names := make([]string, len(s.Players))
	for i, seat := range s.Players {
		names[i] = seat.Name
	}
	return names
}
