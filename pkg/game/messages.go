package game

// ChatMessage is anything shown in a player's chat. Night information is
// collected during the night and delivered as chat messages when it ends.
type ChatMessage interface {
	chatMessage()
}

type message struct{}

func (message) chatMessage() {}

type Normal struct {
	message
	Sender PlayerRef
	Group  ChatGroup
	Text   string
}

type PhaseChange struct {
	message
	Phase PhaseType
	Day   int
}

type PlayerDied struct {
	message
	Grave Grave
}

type RoleAssignment struct {
	message
	Role Role
}

type TrialInformation struct {
	message
	RequiredVotes int
	TrialsLeft    int
}

// Voted is posted when a vote changes, Votee is NoPlayer when the vote was withdrawn
type Voted struct {
	message
	Voter PlayerRef
	Votee PlayerRef
}

type PlayerOnTrial struct {
	message
	Player PlayerRef
}

type JudgementVerdict struct {
	message
	Voter   PlayerRef
	Verdict Verdict
}

type TrialVerdict struct {
	message
	Player   PlayerRef
	Innocent int
	Guilty   int
}

type NoTrialsLeft struct{ message }

type JailedTarget struct {
	message
	Player PlayerRef
}

type JailorExecuted struct {
	message
	Player PlayerRef
}

type TargetJailed struct{ message }

type GameOver struct {
	message
	State ResolutionState
}

// night information

type RoleBlocked struct {
	message
	Immune bool
}

type TargetSurvivedAttack struct{ message }

type YouSurvivedAttack struct{ message }

type YouDied struct{ message }

type TargetWasAttacked struct{ message }

type YouWereProtected struct{ message }

type Transported struct{ message }

type YouWerePossessed struct {
	message
	Immune bool
}

// TargetsMessage wraps a message received by the player someone is controlling
type TargetsMessage struct {
	message
	Message ChatMessage
}

type WitchTargetImmune struct{ message }

type Silenced struct{ message }

type PlayerRoleAndWill struct {
	message
	Role Role
	Will string
}

type DetectiveResult struct {
	message
	Suspicious bool
}

type LookoutResult struct {
	message
	Players []PlayerRef
}

type SpyMafiaVisit struct {
	message
	Players []PlayerRef
}

// SpyBug carries what the bugged player was told
type SpyBug struct {
	message
	Message ChatMessage
}

type VeteranAttackedYou struct{ message }

type VeteranAttackedVisitor struct{ message }

type VigilanteSuicide struct{ message }

type JesterHaunted struct{ message }

type GodfatherBackup struct {
	message
	Backup PlayerRef // NoPlayer if the backup was removed
}

type GodfatherBackupKilled struct {
	message
	Backup PlayerRef
}
