// Package window runs the puzzle in a desktop window through Ebitengine.
package window

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/grid2048/internal/config"
	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/platform/window/layout"
	"github.com/vovakirdan/grid2048/internal/puzzle"
)

// keyActions maps physical keys to puzzle actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyEscape:     core.ActionQuit,
	ebiten.KeyQ:          core.ActionQuit,
}

// Window is an ebiten.Game that owns its drawing surface.
// The board is repainted onto an offscreen canvas only when it changed.
type Window struct {
	game   *puzzle.Game
	theme  config.Theme
	grid   layout.Grid
	font   *text.GoTextFaceSource
	fontSz float64
	logger *log.Logger

	canvas *ebiten.Image
	dirty  bool
}

// New creates a window for game. The font is the embedded Go Regular face.
func New(game *puzzle.Game, cfg config.Config, logger *log.Logger) (*Window, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}

	grid := layout.NewGrid(cfg.Window.TileSize)
	w, h := grid.WindowSize()

	return &Window{
		game:   game,
		theme:  cfg.Theme,
		grid:   grid,
		font:   src,
		fontSz: cfg.Window.FontSize,
		logger: logger,
		canvas: ebiten.NewImage(w, h),
		dirty:  true,
	}, nil
}

// Update polls input once per tick and feeds newly pressed keys to the game.
func (w *Window) Update() error {
	frame := core.NewInputFrame()
	if ebiten.IsWindowBeingClosed() {
		frame.Set(core.ActionQuit)
	}
	for k, action := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			frame.Set(action)
		}
	}
	if frame.Empty() {
		return nil
	}

	result := w.game.Step(frame)
	if result.State.Stopped {
		w.logger.Info("window closed", "moves", result.State.Moves)
		return ebiten.Termination
	}
	if result.Redraw {
		w.dirty = true
	}
	return nil
}

// Draw blits the canvas, repainting it first if the board changed.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.dirty {
		w.paint()
		w.dirty = false
	}
	screen.DrawImage(w.canvas, nil)
}

// Layout keeps the logical size fixed regardless of the outside size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.grid.WindowSize()
}

func (w *Window) paint() {
	w.canvas.Fill(w.theme.RGBA(core.ColorGrid))

	board := w.game.Board()
	for row := 0; row < puzzle.Size; row++ {
		for col := 0; col < puzzle.Size; col++ {
			w.paintTile(row, col, board[row][col])
		}
	}
}

func (w *Window) paintTile(row, col, value int) {
	r := w.grid.TileRect(row, col)
	vector.DrawFilledRect(w.canvas,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		w.theme.RGBA(core.TileColor(value)), false)

	if value == 0 {
		return
	}

	face := &text.GoTextFace{Source: w.font, Size: layout.LabelSize(value, w.fontSz)}
	cx, cy := w.grid.LabelCenter(row, col)

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(w.theme.RGBA(core.ColorText))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(w.canvas, strconv.Itoa(value), face, op)
}

// Run opens the window and blocks until it is closed.
func Run(game *puzzle.Game, cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) error {
	game.Reset(rc)

	win, err := New(game, cfg, logger)
	if err != nil {
		return err
	}

	width, height := win.grid.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowClosingHandled(true)

	logger.Debug("window opened", "width", width, "height", height)
	if err := ebiten.RunGame(win); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
