package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Layout in screen cells. Each board cell is two characters wide.
const (
	cellW   = 2
	wellW   = engine.Width*cellW + 2
	wellH   = engine.VisibleHeight + 2
	panelW  = 12
	gap     = 2
	layoutW = wellW + gap + panelW
	layoutH = wellH

	hiddenRows = engine.Height - engine.VisibleHeight
)

// shapeLetters names shape codes (1-7) in config files.
const shapeLetters = " IOTSZJL"

// defaultPalette maps shape codes (1-7) to colors.
var defaultPalette = [engine.ShapeCount + 1]core.Color{
	core.ColorDefault,
	core.ColorCyan,    // I
	core.ColorYellow,  // O
	core.ColorMagenta, // T
	core.ColorGreen,   // S
	core.ColorRed,     // Z
	core.ColorBlue,    // J
	core.ColorOrange,  // L
}

// buildPalette applies config overrides on top of defaultPalette.
func buildPalette(overrides map[string]string) [engine.ShapeCount + 1]core.Color {
	p := defaultPalette
	for letter, name := range overrides {
		key := strings.ToUpper(strings.TrimSpace(letter))
		if len(key) != 1 {
			continue
		}
		i := strings.Index(shapeLetters[1:], key) + 1
		if i < 1 {
			continue
		}
		if c, ok := core.ParseColor(name); ok {
			p[i] = c
		}
	}
	return p
}

func (g *Game) codeColor(code uint8) core.Color {
	if int(code) < len(g.palette) {
		return g.palette[code]
	}
	return core.ColorWhite
}

// Render draws the well, side panel and any overlay centered on dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}

	if dst.Width() < layoutW || dst.Height() < layoutH {
		msg := fmt.Sprintf("Window too small (%dx%d)", layoutW, layoutH)
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}

	area := dst.Bounds().Centered(layoutW, layoutH)
	well := core.NewRect(area.X, area.Y, wellW, wellH)
	panel := core.NewRect(area.X+wellW+gap, area.Y, panelW, layoutH)

	g.renderWell(dst, well)
	g.renderPanel(dst, panel)

	inner := core.NewRect(well.X+1, well.Y+1, well.W-2, well.H-2)
	switch {
	case g.eng.Phase() == engine.PhaseStart:
		overlay(dst, inner, "PRESS START", fmt.Sprintf("STARTING LEVEL: %d", g.eng.StartLevel()))
	case g.eng.Phase() == engine.PhaseGameOver:
		overlay(dst, inner, "GAME OVER", fmt.Sprintf("SCORE: %d", g.eng.Score()))
	case g.paused:
		overlay(dst, inner, "PAUSED", "P TO RESUME")
	}
}

// renderWell draws the border, locked cells, ghost and falling piece.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well)

	// plot draws one board cell; rows in the hidden buffer are skipped.
	plot := func(row, col int, a, b rune, color core.Color) {
		vr := row - hiddenRows
		if vr < 0 || vr >= engine.VisibleHeight {
			return
		}
		x := well.X + 1 + col*cellW
		y := well.Y + 1 + vr
		dst.SetColored(x, y, a, color)
		dst.SetColored(x+1, y, b, color)
	}

	phase := g.eng.Phase()
	for r := hiddenRows; r < engine.Height; r++ {
		marked := phase == engine.PhaseLineClear && g.eng.RowMarked(r)
		for c := 0; c < engine.Width; c++ {
			code := g.eng.Cell(r, c)
			switch {
			case marked:
				plot(r, c, '█', '█', core.ColorBrightWhite)
			case code != 0:
				plot(r, c, '[', ']', g.codeColor(code))
			default:
				plot(r, c, ' ', '.', core.ColorGray)
			}
		}
	}

	if phase != engine.PhasePlay {
		return
	}
	piece := g.eng.Piece()
	if g.cfg.Ghost {
		g.eng.GhostPiece().Each(func(row, col int, _ uint8) {
			plot(row, col, '[', ']', core.ColorGray)
		})
	}
	piece.Each(func(row, col int, code uint8) {
		plot(row, col, '[', ']', g.codeColor(code))
	})
}

// renderPanel draws the next-piece preview and the counters.
func (g *Game) renderPanel(dst *core.Screen, panel core.Rect) {
	preview := core.NewRect(panel.X, panel.Y, 4*cellW+2, 6)
	dst.DrawBox(preview)
	dst.DrawText(preview.X+2, preview.Y, "NEXT")

	if g.eng.Phase() != engine.PhaseStart {
		next := g.eng.NextPiece()
		side := next.Side()
		// Center the shape's square inside the 4x4 preview.
		offX := preview.X + 1 + (4-side)*cellW/2
		offY := preview.Y + 1 + (4-side)/2
		for r := 0; r < side; r++ {
			for c := 0; c < side; c++ {
				if code := engine.ShapeCell(next.Shape, r, c, 0); code != 0 {
					dst.DrawTextColored(offX+c*cellW, offY+r, "[]", g.codeColor(code))
				}
			}
		}
	}

	y := preview.Bottom() + 1
	for _, stat := range []struct {
		label string
		value int
	}{
		{"LEVEL", g.eng.Level()},
		{"SCORE", g.eng.Score()},
		{"LINES", g.eng.Lines()},
	} {
		dst.DrawTextColored(panel.X, y, stat.label, core.ColorGray)
		dst.DrawText(panel.X, y+1, fmt.Sprintf("%d", stat.value))
		y += 3
	}

	help := []string{"←→ move", "↑  rotate", "↓  drop", "SPC slam", "P  pause"}
	y = max(y, panel.Bottom()-len(help))
	for i, line := range help {
		dst.DrawTextColored(panel.X, y+i, line, core.ColorGray)
	}
}

// overlay draws a two-line message box centered in r.
func overlay(dst *core.Screen, r core.Rect, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := r.Centered(core.Clamp(w, 0, r.W), 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	centerText(dst, box, box.Y+1, line1, core.ColorBrightWhite)
	centerText(dst, box, box.Y+3, line2, core.ColorDefault)
}

func centerText(dst *core.Screen, r core.Rect, y int, text string, color core.Color) {
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, color)
}
