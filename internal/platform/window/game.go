// Package window runs the screensaver in a desktop window using Ebitengine.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tvstatic/internal/app"
	"github.com/vovakirdan/tvstatic/internal/core"
)

// Options configure the window.
type Options struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	VSync     bool
	FPS       int
}

// Game implements ebiten.Game. Frames are produced in Update, at the tick
// rate, onto an offscreen image that survives between ticks so effects that
// skip clearing accumulate. Draw only presents that image.
type Game struct {
	ctrl   *app.Controller
	logger *log.Logger
	keys   keySource

	frame         *ebiten.Image
	width, height int
}

// NewGame creates a game driving ctrl.
func NewGame(ctrl *app.Controller, logger *log.Logger) *Game {
	return &Game{
		ctrl:   ctrl,
		logger: logger,
		keys:   ebitenKeys{},
	}
}

// Update handles input and renders the next frame.
func (g *Game) Update() error {
	in := readInput(g.keys)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if in.Has(core.ActionFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.ctrl.HandleInput(in)

	if g.frame == nil {
		return nil
	}

	x, y := ebiten.CursorPosition()
	w := widgets{
		c:    canvas{img: g.frame},
		ptr:  pointer{x: x, y: y, clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)},
		keys: g.keys,
	}
	if err := g.ctrl.Frame(w.c, w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Draw presents the last rendered frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
}

// Layout keeps one logical pixel per window pixel and reallocates the frame
// when the window size changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if g.frame == nil || outsideWidth != g.width || outsideHeight != g.height {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(outsideWidth, outsideHeight)
		g.frame.Fill(core.Black)
		g.width, g.height = outsideWidth, outsideHeight
		g.logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or the quit key is
// pressed.
func Run(ctrl *app.Controller, opts Options, logger *log.Logger) error {
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	if opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetVsyncEnabled(opts.VSync)
	ebiten.SetTPS(opts.FPS)

	logger.Info("opening window", "title", opts.Title, "width", opts.Width, "height", opts.Height, "fps", opts.FPS)
	if err := ebiten.RunGame(NewGame(ctrl, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
