package breakout

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Registry IDs of the two variants.
const (
	IDClassic = "breakout"
	IDDemo    = "breakout_demo"
)

// IDForVariant returns the registry ID of a variant.
func IDForVariant(v config.Variant) string {
	if v == config.VariantDemo {
		return IDDemo
	}
	return IDClassic
}

// VariantForID returns the variant registered under id.
func VariantForID(id string) (config.Variant, bool) {
	switch id {
	case IDClassic:
		return config.VariantClassic, true
	case IDDemo:
		return config.VariantDemo, true
	}
	return "", false
}

// Game wires GameState, Advance and InputController together behind a mutex,
// so a host may deliver ticks and key events from different goroutines.
type Game struct {
	mu sync.Mutex

	cfg    config.BreakoutConfig
	layout Layout
	state  *GameState
	input  InputController
	tick   uint64
	logger *log.Logger
}

// New creates a game for a validated configuration.
func New(cfg config.BreakoutConfig) *Game {
	g := &Game{
		cfg:    cfg,
		layout: NewLayout(cfg),
		input:  NewInputController(cfg.Paddle.Step),
		logger: logging.Discard(),
	}
	g.state = NewGameState(cfg)
	return g
}

// ID returns the registry identifier of this game's variant.
func (g *Game) ID() string {
	return IDForVariant(g.cfg.Variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.cfg.Variant == config.VariantDemo {
		return "Breakout (Demo)"
	}
	return "Breakout"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Layout returns the fixed geometry.
func (g *Game) Layout() Layout {
	return g.layout
}

// SetLogger sets the logger used for brick and miss events.
func (g *Game) SetLogger(l *log.Logger) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if l == nil {
		l = logging.Discard()
	}
	g.logger = l
}

// SetRedrawHook sets the function called after every paddle move. It runs
// while the game is locked and must not call back into the game.
// Bubble Tea repaints after every Update on its own; the play command uses
// the hook to trace paddle moves.
func (g *Game) SetRedrawHook(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.input.Redraw = fn
}

// Reset starts a new game with all bricks alive.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = NewGameState(g.cfg)
	g.tick = 0
	g.logger.Debug("game reset",
		"variant", g.cfg.Variant,
		"screen_w", runtime.ScreenW,
		"screen_h", runtime.ScreenH,
		"tick_period", runtime.TickPeriod)
}

// Tick advances the simulation by one step.
func (g *Game) Tick() core.StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.tick++
	ev := Advance(g.state, g.layout, g.cfg.Rules)

	if ev.BrickDestroyed() {
		g.logger.Debug("brick destroyed", "tick", g.tick, "row", ev.BrickRow, "col", ev.BrickCol, "score", g.state.Score)
	}
	if ev.Missed {
		g.logger.Debug("ball missed", "tick", g.tick, "paddle_x", g.state.Paddle.X)
	}

	// The ball moves every tick, so every tick needs a repaint.
	return core.StepResult{Status: g.statusLocked(), Redraw: true}
}

// HandleKey applies a paddle move for Left/Right actions and ignores the rest.
func (g *Game) HandleKey(a core.Action) bool {
	d, ok := DirectionForAction(a)
	if !ok {
		return false
	}
	g.Move(d)
	return true
}

// Move shifts the paddle one step in direction d.
func (g *Game) Move(d Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.input.OnKey(g.state, d)
}

// Status returns the score summary.
func (g *Game) Status() core.Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.statusLocked()
}

func (g *Game) statusLocked() core.Status {
	return core.Status{
		Score:      g.state.Score,
		BricksLeft: g.state.Bricks.CountAlive(),
		Tick:       g.tick,
	}
}

// State returns a deep copy of the current game state.
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	cp := *g.state
	cp.Bricks = g.state.Bricks.Clone()
	return cp
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New(config.DefaultConfig(config.VariantClassic))
	})
	registry.Register(IDDemo, func() registry.Game {
		return New(config.DefaultConfig(config.VariantDemo))
	})
}
