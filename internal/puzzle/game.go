package puzzle

import (
	"context"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vovakirdan/grid2048/internal/core"
)

// State is the interaction loop state.
type State int

const (
	StateRunning State = iota
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

// Game owns the board between input events. It is not safe for concurrent
// use; each frontend drives it from a single event loop.
type Game struct {
	rng   *rand.Rand
	board Board
	state State

	moves    int // accepted moves
	rejected int // moves that left the board unchanged

	logger *log.Logger
	tracer trace.Tracer
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for move events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTracer sets the tracer used to record move spans.
func WithTracer(t trace.Tracer) Option {
	return func(g *Game) {
		if t != nil {
			g.tracer = t
		}
	}
}

// New creates a game. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		logger: log.New(io.Discard),
		tracer: noop.NewTracerProvider().Tracer("grid2048/puzzle"),
		state:  StateStopped,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset starts a new session: the RNG is reseeded from cfg.Seed and the
// board gets its two starting tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = NewBoard(g.rng)
	g.state = StateRunning
	g.moves = 0
	g.rejected = 0

	g.logger.Info("game started", "seed", cfg.Seed, "tiles", TileCount(g.board))
}

// Step handles one input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == StateStopped {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.state = StateStopped
		g.logger.Info("game stopped", "moves", g.moves, "rejected", g.rejected)
		return core.StepResult{State: g.State()}
	}

	var dir Direction
	switch {
	case in.Has(core.ActionUp):
		dir = DirUp
	case in.Has(core.ActionDown):
		dir = DirDown
	case in.Has(core.ActionLeft):
		dir = DirLeft
	case in.Has(core.ActionRight):
		dir = DirRight
	default:
		return core.StepResult{State: g.State()}
	}

	redraw := g.Apply(dir)
	return core.StepResult{State: g.State(), Redraw: redraw}
}

// Apply performs one move. When the board changes a tile is spawned and true
// is returned; otherwise the move is dropped silently.
func (g *Game) Apply(dir Direction) bool {
	if g.state == StateStopped {
		return false
	}

	_, span := g.tracer.Start(context.Background(), "puzzle.move")
	defer span.End()

	newBoard, moved := Move(g.board, dir)
	span.SetAttributes(
		attribute.String("dir", dir.String()),
		attribute.Bool("moved", moved),
	)

	if !moved {
		g.rejected++
		g.logger.Debug("move rejected", "dir", dir)
		return false
	}

	g.board = newBoard
	cell, spawned := AddRandomTile(&g.board, g.rng)
	g.moves++

	span.SetAttributes(attribute.Int("tiles", TileCount(g.board)))
	if spawned {
		g.logger.Debug("move accepted", "dir", dir, "spawn_row", cell.Row, "spawn_col", cell.Col)
	} else {
		g.logger.Debug("move accepted", "dir", dir, "spawn", "board full")
	}
	return true
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Running reports whether the loop still accepts input.
func (g *Game) Running() bool {
	return g.state == StateRunning
}

// State returns the externally visible state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Stopped: g.state == StateStopped,
		Moves:   g.moves,
		Tiles:   TileCount(g.board),
	}
}
