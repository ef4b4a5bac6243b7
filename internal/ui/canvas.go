package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-planetarium/internal/scene"
)

// CellAspect is the height of a terminal cell divided by its width.
const CellAspect = 2.0

// Star glyphs by point size.
const (
	glyphStarBright  = '✶'
	glyphStarMedium  = '✸'
	glyphStarDim     = '∙'
	glyphStarVeryDim = '·'
)

var colorEmptySky = colorful.Color{R: 0.02, G: 0.02, B: 0.04}

type cell struct {
	r  rune
	fg colorful.Color
	bg colorful.Color
}

// Canvas is a grid of terminal cells with per-cell colours.
type Canvas struct {
	width, height int
	cells         [][]cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height, cells: make([][]cell, height)}
	for y := range c.cells {
		c.cells[y] = make([]cell, width)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' ', bg: colorEmptySky}
		}
	}
	return c
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (w, h int) { return c.width, c.height }

// Rune returns the glyph at (x, y), or 0 out of bounds.
func (c *Canvas) Rune(x, y int) rune {
	if !c.in(x, y) {
		return 0
	}
	return c.cells[y][x].r
}

func (c *Canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) set(x, y int, r rune, fg colorful.Color, alpha float64) {
	if !c.in(x, y) {
		return
	}
	cl := &c.cells[y][x]
	cl.r = r
	cl.fg = fadeOver(fg, cl.bg, alpha)
}

func (c *Canvas) setBg(x, y int, bg colorful.Color) {
	if c.in(x, y) {
		c.cells[y][x].bg = bg
	}
}

// fadeOver blends c toward the background as alpha drops.
func fadeOver(c, bg colorful.Color, alpha float64) colorful.Color {
	if alpha >= 1 || math.IsNaN(alpha) {
		return c
	}
	return c.BlendRgb(bg, 1-math.Max(0, alpha)).Clamped()
}

// Rasterize draws a frame onto a canvas. Pixels map to cells one to one;
// the frame's viewport must match the canvas size.
func Rasterize(f *scene.Frame, width, height int) *Canvas {
	c := NewCanvas(width, height)
	if f == nil {
		return c
	}
	if f.Backdrop != nil {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				dir := f.View.Ray(float64(x)+0.5, float64(y)+0.5)
				c.setBg(x, y, f.Backdrop.ColorAt(dir))
			}
		}
	}
	for i := range f.Layers {
		l := &f.Layers[i]
		for _, q := range l.Quads {
			c.drawQuad(q)
		}
		for _, ln := range l.Lines {
			c.drawLine(ln)
		}
		for _, p := range l.Points {
			c.drawPoint(p)
		}
		for _, ci := range l.Circles {
			c.drawCircle(ci)
		}
		for _, lb := range l.Labels {
			c.drawLabel(lb)
		}
	}
	return c
}

func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x)), int(math.Floor(y))
}

func (c *Canvas) drawQuad(q scene.Quad) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range q.Corners {
		minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
		minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
	}
	x0, y0 := cellOf(math.Max(0, minX), math.Max(0, minY))
	x1, y1 := cellOf(math.Min(float64(c.width-1), maxX), math.Min(float64(c.height-1), maxY))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			u, v, ok := q.UV(float64(x)+0.5, float64(y)+0.5)
			if !ok {
				continue
			}
			bg := c.cells[y][x].bg
			c.setBg(x, y, bg.BlendRgb(q.Texture.Sample(u, v), q.Alpha).Clamped())
		}
	}
}

func (c *Canvas) drawLine(ln scene.Line) {
	glyph := '·'
	if ln.Emphasis {
		glyph = '─'
	}
	dx, dy := ln.X2-ln.X1, ln.Y2-ln.Y1
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps > 4*(c.width+c.height) {
		return // degenerate near-limb projection
	}
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x, y := cellOf(ln.X1+dx*t, ln.Y1+dy*t)
		if c.Rune(x, y) != ' ' && !ln.Emphasis {
			continue
		}
		c.set(x, y, glyph, ln.Color, ln.Alpha)
	}
}

// starGlyph picks a glyph by point size.
func starGlyph(size float64) rune {
	switch {
	case size >= 4:
		return glyphStarBright
	case size >= 2.5:
		return glyphStarMedium
	case size >= 1:
		return glyphStarDim
	default:
		return glyphStarVeryDim
	}
}

func (c *Canvas) drawPoint(p scene.Point) {
	x, y := cellOf(p.X, p.Y)
	if !c.in(x, y) {
		return
	}
	g := p.Glyph
	if g == 0 {
		g = starGlyph(p.Size)
	}
	if g == '░' {
		// Milky Way tints the background rather than drawing a glyph.
		bg := c.cells[y][x].bg
		c.setBg(x, y, bg.BlendRgb(p.Color, p.Alpha*0.35).Clamped())
		return
	}
	c.set(x, y, g, p.Color, p.Alpha)
}

func (c *Canvas) drawCircle(ci scene.Circle) {
	cx, cy := cellOf(ci.X, ci.Y)
	// Radius is in rows; columns are narrower by the cell aspect.
	ry := ci.Radius
	rx := ci.Radius * CellAspect
	if ry < 1.5 {
		if ci.Fill {
			c.set(cx, cy, '●', c.spriteColor(ci, 0.5, 0.5), ci.Alpha)
		} else {
			c.set(cx-1, cy, '(', ci.Color, ci.Alpha)
			c.set(cx+1, cy, ')', ci.Color, ci.Alpha)
		}
		return
	}
	if ci.Fill {
		for y := cy - int(ry); y <= cy+int(ry); y++ {
			for x := cx - int(rx); x <= cx+int(rx); x++ {
				nx := (float64(x) + 0.5 - ci.X) / rx
				ny := (float64(y) + 0.5 - ci.Y) / ry
				if nx*nx+ny*ny > 1 {
					continue
				}
				c.set(x, y, '▒', c.spriteColor(ci, (nx+1)/2, (1-ny)/2), ci.Alpha)
			}
		}
		c.set(cx, cy, '●', c.spriteColor(ci, 0.5, 0.5), ci.Alpha)
		return
	}
	n := int(math.Max(12, 2*math.Pi*rx))
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x, y := cellOf(ci.X+rx*math.Cos(a), ci.Y+ry*math.Sin(a))
		c.set(x, y, '·', ci.Color, ci.Alpha)
	}
}

func (c *Canvas) spriteColor(ci scene.Circle, u, v float64) colorful.Color {
	if ci.Sprite == nil {
		return ci.Color
	}
	return ci.Sprite.Sample(u, v)
}

func (c *Canvas) drawLabel(lb scene.Label) {
	x, y := cellOf(lb.X, lb.Y)
	for i, r := range []rune(lb.Text) {
		c.set(x+i, y, r, lb.Color, lb.Alpha)
	}
}

// String renders the canvas with lipgloss colours. Runs of cells sharing a
// style are rendered together.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		row := c.cells[y]
		for x := 0; x < c.width; {
			start := x
			for x < c.width && row[x].fg == row[start].fg && row[x].bg == row[start].bg {
				x++
			}
			var run strings.Builder
			for _, cl := range row[start:x] {
				run.WriteRune(cl.r)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(row[start].fg.Clamped().Hex())).
				Background(lipgloss.Color(row[start].bg.Clamped().Hex()))
			b.WriteString(style.Render(run.String()))
		}
		if y < c.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Plain renders the glyphs only, for non-terminal output.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		for _, cl := range c.cells[y] {
			b.WriteRune(cl.r)
		}
		if y < c.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// drawText writes s with explicit colours, replacing whatever is beneath.
func (c *Canvas) drawText(x, y int, s string, fg, bg colorful.Color) {
	for i, r := range []rune(s) {
		if !c.in(x+i, y) {
			continue
		}
		c.cells[y][x+i] = cell{r: r, fg: fg, bg: bg}
	}
}
