package effects

import (
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tvstatic/internal/core"
	"github.com/vovakirdan/tvstatic/internal/prng"
)

// Renderer draws effects and keeps the state some of them carry between
// frames. The zero value is not ready for use; call NewRenderer.
type Renderer struct {
	// Reseed makes every Render call reseed the generator from the clock
	// first. Turn it off to get reproducible frames from a fixed seed.
	Reseed bool

	logger *log.Logger

	// Wash
	wash color.NRGBA

	// Scroll
	buffer []color.NRGBA
	offset int
	last   grid // Grid the buffer was generated for
}

// grid describes the tile layout of one frame.
type grid struct {
	width, height int // Canvas size in pixels
	tile          int // Tile edge in pixels
	cols, rows    int
}

func newGrid(c core.Canvas, tile int) grid {
	w, h := c.Size()
	return grid{
		width:  w,
		height: h,
		tile:   tile,
		cols:   w / tile,
		rows:   h / tile,
	}
}

func (g grid) cells() int {
	return g.cols * g.rows
}

// tileRect returns the rectangle of the tile at column x and row y.
func (g grid) tileRect(x, y int) core.Rect {
	return core.NewRect(x*g.tile, y*g.tile, g.tile, g.tile)
}

// NewRenderer creates a renderer that reseeds every frame. logger may be nil.
func NewRenderer(logger *log.Logger) *Renderer {
	return &Renderer{
		Reseed: true,
		logger: logger,
		wash:   core.Black,
	}
}

// Render draws one frame of e onto c. tile is the tile edge in pixels and is
// raised to 1 if smaller.
func (r *Renderer) Render(e Effect, c core.Canvas, rng *prng.Random, tile int) {
	if tile < 1 {
		tile = 1
	}
	if r.Reseed {
		rng.Reseed()
	}

	g := newGrid(c, tile)
	switch e {
	case Static:
		drawStatic(c, rng, g)
	case Bars:
		drawBars(c, rng, g)
	case Fade:
		drawFade(c, rng, g)
	case Lerp:
		drawLerp(c, rng, g)
	case Spiral:
		drawSpiral(c, rng, g)
	case Wash:
		r.drawWash(c, rng, g)
	case Scroll:
		r.drawScroll(c, rng, g)
	}
}

// WashColor returns the color the next Wash frame blends from.
func (r *Renderer) WashColor() color.NRGBA {
	return r.wash
}

// ScrollState returns the scroll buffer length and view offset.
func (r *Renderer) ScrollState() (length, offset int) {
	return len(r.buffer), r.offset
}

func drawStatic(c core.Canvas, rng *prng.Random, g grid) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			c.FillRect(g.tileRect(x, y), rng.Color())
		}
	}
}

func drawBars(c core.Canvas, rng *prng.Random, g grid) {
	for i := 0; i < g.width; i += g.tile {
		c.FillRect(core.NewRect(i, 0, g.tile, g.height), rng.Color())
	}
}

func drawFade(c core.Canvas, rng *prng.Random, g grid) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			v := uint8(rng.IntRange(0, 255))
			c.FillRect(g.tileRect(x, y), color.NRGBA{R: v, G: v, B: v, A: v})
		}
	}
}

func drawLerp(c core.Canvas, rng *prng.Random, g grid) {
	last := rng.Color()
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			t := rng.FloatRange(0, 1)
			last = core.Lerp(last, rng.Color(), t)
			c.FillRect(g.tileRect(x, y), last)
		}
	}
}

// Spiral legs run right, down, left, up.
var spiralSteps = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

func drawSpiral(c core.Canvas, rng *prng.Random, g grid) {
	bounds := core.NewRect(0, 0, g.width, g.height)
	limit := g.width * g.height

	x, y := g.width/2, g.height/2
	dir, length, drawn := 0, 1, 0
	col := rng.Color()

	for drawn < limit {
		for i := 0; i < length; i++ {
			sq := core.NewRect(x, y, g.tile, g.tile)
			if overlaps(sq, bounds) {
				c.FillRect(sq, col)
			}
			drawn++
			x += spiralSteps[dir][0] * g.tile
			y += spiralSteps[dir][1] * g.tile
		}
		dir = (dir + 1) % 4
		if dir%2 == 0 {
			length++
		}
		col = rng.Color()
	}
}

func overlaps(a, b core.Rect) bool {
	return a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom()
}

func (r *Renderer) drawWash(c core.Canvas, rng *prng.Random, g grid) {
	r.wash = core.Lerp(r.wash, rng.Color(), 0.5)
	c.FillRect(core.NewRect(0, 0, g.width, g.height), r.wash)
}

func (r *Renderer) drawScroll(c core.Canvas, rng *prng.Random, g grid) {
	cells := g.cells()
	if len(r.buffer) != 2*cells || g != r.last {
		r.regenerate(rng, g)
		return
	}
	if cells == 0 {
		return
	}

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			c.FillRect(g.tileRect(x, y), r.buffer[r.offset+y*g.cols+x])
		}
	}
	r.offset = (r.offset + 1) % cells
}

// regenerate discards the scroll buffer and fills a new one sized for g.
func (r *Renderer) regenerate(rng *prng.Random, g grid) {
	n := 2 * g.cells()
	if cap(r.buffer) >= n {
		r.buffer = r.buffer[:n]
	} else {
		r.buffer = make([]color.NRGBA, n)
	}
	for i := range r.buffer {
		r.buffer[i] = rng.Color()
	}
	r.offset = 0
	r.last = g

	if r.logger != nil {
		r.logger.Debug("scroll buffer regenerated", "cols", g.cols, "rows", g.rows, "len", n)
	}
}
