package breakout

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Visual characters for rendering
const (
	BrickChar  = '█'
	PaddleChar = '▀'
	BallChar   = '●'
	LifeChar   = '♥'
)

// Minimum playable terminal size
const (
	minScreenW = 30
	minScreenH = 15
)

// layout maps logical canvas coordinates to terminal cells.
// Row 0 holds the HUD; the playfield uses every row below it.
type layout struct {
	screenW, screenH int
	fieldTop         int
	fieldW, fieldH   int
	sx, sy           float64 // Cells per canvas unit
	tooSmall         bool
}

func newLayout(screenW, screenH int, canvasW, canvasH float64) layout {
	l := layout{
		screenW:  screenW,
		screenH:  screenH,
		fieldTop: 1,
		fieldW:   screenW,
		fieldH:   screenH - 1,
		tooSmall: screenW < minScreenW || screenH < minScreenH,
	}
	if l.fieldW > 0 && l.fieldH > 0 {
		l.sx = float64(l.fieldW) / canvasW
		l.sy = float64(l.fieldH) / canvasH
	}
	return l
}

// cellX maps a logical x coordinate to a column.
func (l layout) cellX(x float64) int {
	return int(math.Floor(x * l.sx))
}

// cellY maps a logical y coordinate to a row.
func (l layout) cellY(y float64) int {
	return l.fieldTop + int(math.Floor(y*l.sy))
}

// span maps a logical interval to a half-open cell range, never empty.
func span(from, to, scale float64) (int, int) {
	a := int(math.Round(from * scale))
	b := int(math.Round(to * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// logicalX maps a column back to the logical x at the center of that cell.
func (l layout) logicalX(col int) float64 {
	if l.sx == 0 {
		return 0
	}
	return (float64(col) + 0.5) / l.sx
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderParticles(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, level, lives and remaining bricks on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorCyan)

	level := fmt.Sprintf("Level: %d", g.level)
	dst.DrawTextColor(dst.Width()/3, 0, level, core.ColorYellow)

	lives := "Lives: " + strings.Repeat(string(LifeChar), min(g.lives, 5))
	if g.lives > 5 {
		lives = fmt.Sprintf("Lives: %c×%d", LifeChar, g.lives)
	}
	dst.DrawTextColor(dst.Width()/2+2, 0, lives, core.ColorPink)

	bricks := fmt.Sprintf("Bricks: %d", g.RemainingBricks())
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(bricks)-1, 0, bricks, core.ColorGreen)
}

func (g *Game) renderBricks(dst *core.Screen) {
	l := g.layout
	for _, b := range g.bricks {
		if b.Destroyed {
			continue
		}
		x0, x1 := span(b.X, b.X+b.Width, l.sx)
		y0, y1 := span(b.Y, b.Y+b.Height, l.sy)
		dst.DrawRect(x0, l.fieldTop+y0, x1-x0, y1-y0, BrickChar, b.Color)
	}
}

// renderPaddle draws the paddle with a cyan-purple-cyan gradient.
func (g *Game) renderPaddle(dst *core.Screen) {
	l := g.layout
	p := g.paddle
	x0, x1 := span(p.X, p.X+p.Width, l.sx)
	y := l.cellY(p.Y)
	width := x1 - x0
	for i := range width {
		t := (float64(i) + 0.5) / float64(width)
		color := core.ColorCyan
		if t > 0.25 && t < 0.75 {
			color = core.ColorPurple
		}
		dst.SetCell(x0+i, y, PaddleChar, color)
	}
}

func (g *Game) renderBall(dst *core.Screen) {
	l := g.layout
	dst.SetCell(l.cellX(g.ball.X), l.cellY(g.ball.Y), BallChar, core.ColorWhite)
}

func (g *Game) renderParticles(dst *core.Screen) {
	l := g.layout
	for _, p := range g.particles.Particles {
		y := l.cellY(p.Y)
		if y < l.fieldTop {
			continue
		}
		dst.SetCell(l.cellX(p.X), y, particleGlyph(p.Life), p.Color)
	}
}

// renderOverlay draws the message box for non-playing states.
func (g *Game) renderOverlay(dst *core.Screen) {
	const hint = "Press R to restart or Space to continue"

	switch g.state {
	case StateTitle:
		drawCenteredBox(dst, "Breakout", "Press Space to launch the ball!")
	case StateServe:
		dst.DrawTextCenteredColor(dst.Height()-1, "Press SPACE to launch", core.ColorGray)
	case StatePaused:
		drawCenteredBox(dst, "Paused", "Press P or ESC to resume")
	case StateLevelComplete:
		drawCenteredBox(dst, "Level Complete!", fmt.Sprintf("Score: %d", g.score), hint)
	case StateGameOver:
		drawCenteredBox(dst, "Game Over!", fmt.Sprintf("Final Score: %d", g.score), hint)
	}
}

// drawCenteredBox draws a centered message box with a title and message lines.
func drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	inner := utf8.RuneCountInString(title)
	for _, line := range lines {
		inner = max(inner, utf8.RuneCountInString(line))
	}

	boxW := min(inner+4, w)
	boxH := 4 + len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorCyan)

	centered := func(y int, text string, c core.Color) {
		x := boxX + (boxW-utf8.RuneCountInString(text))/2
		dst.DrawTextColor(x, y, text, c)
	}

	centered(boxY+1, title, core.ColorPurple)
	for i, line := range lines {
		centered(boxY+3+i, line, core.ColorDefault)
	}
}
