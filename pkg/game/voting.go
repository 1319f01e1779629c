package game

// Verdict is a judgement vote on the player on trial
type Verdict int

const (
	Abstain Verdict = iota
	Guilty
	Innocent
)

var verdictToName = map[Verdict]string{
	Abstain:  "abstain",
	Guilty:   "guilty",
	Innocent: "innocent",
}

func (v Verdict) String() string {
	return verdictToName[v]
}

// RequiredVotes is how many votes put a player on trial
func (g *Game) RequiredVotes() int {
	return 1 + len(g.AlivePlayers())/2
}

func (g *Game) TrialsLeft() int {
	return g.trialsLeft
}

// OnTrial returns the accused, NoPlayer outside of a trial
func (g *Game) OnTrial() PlayerRef {
	return g.onTrial
}

func (g *Game) VoteOf(p PlayerRef) PlayerRef {
	return g.players[p].vote
}

func (g *Game) VerdictOf(p PlayerRef) Verdict {
	return g.players[p].verdict
}

func (g *Game) canVote(voter PlayerRef) bool {
	return g.phase == Voting && g.Alive(voter) && !g.NightSilenced(voter)
}

// Vote sets voter's vote, NoPlayer withdraws it. A player reaching the required
// number of votes is put on trial at once.
func (g *Game) Vote(voter, target PlayerRef) bool {
	if g.over || !g.valid(voter) || !g.canVote(voter) {
		return false
	}
	if target != NoPlayer && (!g.valid(target) || target == voter || !g.Alive(target)) {
		return false
	}
	defer g.flush()

	if g.players[voter].vote == target {
		return true
	}
	g.players[voter].vote = target
	g.AddMessageToGroup(AllGroup, Voted{Voter: voter, Votee: target})

	votes := g.votes()
	g.eOutput.HandlePlayerVotes(PlayerVotesEvent{
		Users: g.users(),
		Votes: votes,
	})

	if target != NoPlayer && votes[target] >= g.RequiredVotes() {
		g.log.Info().Int("player", int(target)).Msg("player put on trial")
		g.onTrial = target
		g.startPhase(Testimony)
	}
	return true
}

// votes counts living voters for every candidate
func (g *Game) votes() map[PlayerRef]int {
	votes := make(map[PlayerRef]int)
	for _, p := range g.AlivePlayers() {
		if vote := g.players[p].vote; vote != NoPlayer {
			votes[vote]++
		}
	}
	return votes
}

// SetVerdict records p's judgement of the accused
func (g *Game) SetVerdict(p PlayerRef, verdict Verdict) bool {
	if g.over || !g.valid(p) || g.phase != Judgement || !g.Alive(p) || p == g.onTrial {
		return false
	}
	g.players[p].verdict = verdict
	return true
}

// judgementResult counts verdicts of the living, the accused excluded
func (g *Game) judgementResult() (guilty, innocent int) {
	for _, p := range g.AlivePlayers() {
		if p == g.onTrial {
			continue
		}
		switch g.players[p].verdict {
		case Guilty:
			guilty++
		case Innocent:
			innocent++
		}
	}
	return guilty, innocent
}
