package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tvstatic/internal/core"
)

// keySource reports key presses that started this tick.
type keySource interface {
	justPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) justPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

// bindings maps physical keys to actions.
var bindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyF11, core.ActionFullscreen},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyArrowLeft, core.ActionAspectDown},
	{ebiten.KeyArrowRight, core.ActionAspectUp},
	{ebiten.KeyEscape, core.ActionQuit},
}

// readInput collects this tick's actions.
func readInput(keys keySource) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range bindings {
		if keys.justPressed(b.key) {
			in.Set(b.action)
		}
	}
	return in
}
