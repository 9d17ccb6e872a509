package core

import "time"

// RuntimeConfig is what a host hands to a game when it starts or restarts it.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in cells
	ScreenH    int           // Screen height in cells
	TickPeriod time.Duration // Interval between simulation ticks
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal ticking every 5ms.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickPeriod: 5 * time.Millisecond,
	}
}

// Status is the summary a game reports to its host after a tick or key event.
type Status struct {
	Score      int
	BricksLeft int
	Tick       uint64
}

// StepResult is returned by TickHandler.Tick.
type StepResult struct {
	Status Status
	Redraw bool // Something visible changed
}
