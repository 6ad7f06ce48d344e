package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the coarse state of a run as seen by the host.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseIntro
	PhasePlaying
	PhasePaused
	PhaseCrashed
)

// String returns the upper-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "WAITING"
	case PhaseIntro:
		return "INTRO"
	case PhasePlaying:
		return "PLAYING"
	case PhasePaused:
		return "PAUSED"
	case PhaseCrashed:
		return "CRASHED"
	default:
		return "UNKNOWN"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase     Phase
	Score     int     // Displayed distance of the current run
	HighScore int     // Best displayed distance this session
	Distance  float64 // Raw distance ran in logical pixels
	Speed     float64
	Inverted  bool // Night mode colours active
	PlayCount int
	GameOver  bool // Whether the run has crashed
	Paused    bool
	Running   bool // Simulation advancing, including the jump that starts the first run
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Cue names a sound the host should play.
type Cue int

const (
	CueNone Cue = iota
	CueButtonPress
	CueHit
	CueScore
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueButtonPress:
		return "BUTTON_PRESS"
	case CueHit:
		return "HIT"
	case CueScore:
		return "SCORE"
	default:
		return "NONE"
	}
}

// EventKind classifies what happened during a tick.
type EventKind int

const (
	EventSound EventKind = iota
	EventStarted
	EventCrashed
	EventRestarted
	EventMilestone
	EventInvert
	EventPaused
	EventResumed
)

// String returns a short lower-case name for logging.
func (k EventKind) String() string {
	switch k {
	case EventSound:
		return "sound"
	case EventStarted:
		return "started"
	case EventCrashed:
		return "crashed"
	case EventRestarted:
		return "restarted"
	case EventMilestone:
		return "milestone"
	case EventInvert:
		return "invert"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event is a notification from the simulation to its host.
// Cue is set for EventSound; Value carries a score or flag where relevant.
type Event struct {
	Kind  EventKind
	Cue   Cue
	Value int
}
