package core

// RuntimeConfig contains configuration passed to games at initialization.
// The world itself has a fixed size taken from the game config; ScreenW and
// ScreenH describe the output surface of the platform layer.
type RuntimeConfig struct {
	ScreenW  int   // Output width (terminal columns or raster pixels)
	ScreenH  int   // Output height (terminal rows or raster pixels)
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// Outcome describes why a session ended.
type Outcome int

const (
	OutcomeNone   Outcome = iota // Session still running
	OutcomeQuit                  // Player asked to quit
	OutcomeDefeat                // Player collided with an obstacle
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeQuit:
		return "quit"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the game has ended
	Outcome  Outcome // Why the game ended (OutcomeNone while running)
	Tick     int     // Number of simulated frames
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventFire   EventKind = iota // A projectile was spawned
	EventKill                    // A projectile destroyed an obstacle
	EventDefeat                  // The player was hit
	EventQuit                    // The player quit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFire:
		return "fire"
	case EventKill:
		return "kill"
	case EventDefeat:
		return "defeat"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a single notable occurrence, positioned in world coordinates.
type Event struct {
	Kind EventKind
	X, Y int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
