package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current wave, for games with level progression
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is a discrete signal emitted by a game during one tick, for the
// platform to react to (sound effects). Games never wait on the reaction.
type Event int

const (
	// EventShotFired is emitted when the player launches a shot.
	EventShotFired Event = iota

	// EventRockHit is emitted when a shot destroys a rock.
	EventRockHit
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventShotFired:
		return "ShotFired"
	case EventRockHit:
		return "RockHit"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
