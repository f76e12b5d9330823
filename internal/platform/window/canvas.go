package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tvstatic/internal/core"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// canvas draws onto an ebiten image.
type canvas struct {
	img *ebiten.Image
}

func (c canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c canvas) Clear(col color.NRGBA) {
	c.img.Fill(col)
}

func (c canvas) FillRect(r core.Rect, col color.NRGBA) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(c.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}

func (c canvas) DrawText(x, y int, s string, col color.NRGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.img, s, face, op)
}

// textWidth returns the width of s in pixels.
func textWidth(s string) int {
	w, _ := text.Measure(s, face, 0)
	return int(w)
}
