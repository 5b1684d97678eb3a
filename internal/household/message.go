// Package household implements the four fixed personas of Westmarch House:
// Jeeves the butler, Perkins the research footman, Miss Pennington the scribe
// and archivist, and Lady Hawthorne the critic. Each persona pairs a system
// prompt with a content-assembly rule and hands the result to a model
// provider; the scribe additionally owns the memory ledger.
package household

// TaskType categorizes the work a persona is asked to do. Personas may use it
// to select a system-prompt variant; it never drives routing.
type TaskType string

const (
	TaskConversation TaskType = "conversation"
	TaskPlanning     TaskType = "planning"
	TaskResearch     TaskType = "research"
	TaskDrafting     TaskType = "drafting"
	TaskCritique     TaskType = "critique"
	TaskMixed        TaskType = "mixed"
	TaskUnknown      TaskType = "unknown"
)

// Mode is the active conversational register. It is a closed enumeration so
// prompt selection is checked at compile time instead of falling through on
// an unrecognized string.
type Mode int

const (
	// ModeStructured is the default orchestration register: the butler
	// commands staff and frames workflows.
	ModeStructured Mode = iota
	// ModeParlour is free conversation with the user.
	ModeParlour
)

func (m Mode) String() string {
	switch m {
	case ModeParlour:
		return "parlour"
	default:
		return "structured"
	}
}

// StageOutput is one prior pipeline stage's result, carried forward so later
// personas can build on it.
type StageOutput struct {
	Source  string `json:"source"`
	Summary string `json:"summary"`
}

// Context bundles everything a persona may need beyond the instruction
// itself.
type Context struct {
	OriginalRequest string
	PreviousOutputs []StageOutput
	Mode            Mode
}

// Constraints carries soft shaping hints appended to instructions.
type Constraints struct {
	LengthLimit         string
	Style               string
	SpecialInstructions string
}

// DefaultConstraints mirrors the unconstrained request shape.
func DefaultConstraints() Constraints {
	return Constraints{LengthLimit: "medium", Style: "neutral"}
}

// Message is one request to a persona. Constructed fresh per orchestration
// step and never persisted; personas share no state through it.
type Message struct {
	Sender      string
	Recipient   string
	Task        TaskType
	Content     string
	Context     Context
	Constraints Constraints
}
