package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/wricardo/gridsnake/game/engine"
)

// Screen is the part of tcell.Screen the renderer draws on
type Screen interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// Cell glyphs, two columns per board cell
const (
	cellEmpty = "  "
	cellFood  = "<>"
	cellHead  = "@@"
	cellBody  = "##"
)

// Board origin on screen; row 0 holds the status line
const (
	boardX = 0
	boardY = 1
)

var (
	lightBlue = tcell.NewRGBColor(113, 134, 209)
	darkBlue  = tcell.NewRGBColor(50, 84, 207)
	green     = tcell.NewRGBColor(0, 255, 0)
	darkGreen = tcell.NewRGBColor(2, 191, 2)
	red       = tcell.NewRGBColor(255, 0, 0)

	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	overlayStyle = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	borderStyle  = overlayStyle.Bold(true)
)

// Renderer draws snapshots onto a Screen
type Renderer struct {
	screen Screen
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render redraws the whole frame
func (r *Renderer) Render(snap engine.Snapshot) {
	r.screen.Clear()

	r.drawStatus(snap)
	r.drawBoard(snap)
	if snap.State.Terminal() && snap.OverlayVisible {
		r.drawOverlay(snap)
	}

	r.screen.Show()
}

func (r *Renderer) drawStatus(snap engine.Snapshot) {
	status := fmt.Sprintf("length %d/%d  wasd/arrows move  r reset  q quit", snap.Length(), snap.Capacity())
	if snap.State.Terminal() && !snap.OverlayVisible {
		status = fmt.Sprintf("%s %d/%d  r reset  h show result  q quit", snap.State, snap.Length(), snap.Capacity())
	}
	r.drawText(boardX, 0, status, statusStyle)
}

func (r *Renderer) drawBoard(snap engine.Snapshot) {
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			bg := darkBlue
			if (x+y)%2 == 0 {
				bg = lightBlue
			}
			r.drawCell(engine.Position{X: x, Y: y}, cellEmpty, tcell.StyleDefault.Background(bg))
		}
	}

	if snap.State == engine.Continue {
		r.drawCell(snap.Food, cellFood, tcell.StyleDefault.Background(red).Foreground(tcell.ColorWhite))
	}

	bodyStyle := tcell.StyleDefault.Background(darkGreen).Foreground(tcell.ColorBlack)
	for i := len(snap.Segments) - 1; i >= 1; i-- {
		r.drawCell(snap.Segments[i], cellBody, bodyStyle)
	}
	if head, ok := snap.Head(); ok {
		r.drawCell(head, cellHead, tcell.StyleDefault.Background(green).Foreground(tcell.ColorBlack))
	}
}

// drawCell skips cells off the board, such as a head that left it
func (r *Renderer) drawCell(p engine.Position, glyph string, style tcell.Style) {
	if p.X < 0 || p.Y < 0 {
		return
	}
	r.drawText(boardX+p.X*2, boardY+p.Y, glyph, style)
}

func (r *Renderer) drawOverlay(snap engine.Snapshot) {
	title := fmt.Sprintf("WINNER! %d/%d", snap.Length(), snap.Capacity())
	if snap.State == engine.Loss {
		title = fmt.Sprintf("LOSS! %d/%d", snap.Length(), snap.Capacity())
	}
	lines := []string{title, "", "Press 'r' to reset game.", "Press 'h' to show board."}

	inner := 0
	for _, line := range lines {
		if len(line) > inner {
			inner = len(line)
		}
	}
	boxW, boxH := inner+4, len(lines)+2
	left := boardX + (snap.Width*2-boxW)/2
	top := boardY + (snap.Height-boxH)/2
	if left < 0 {
		left = 0
	}
	if top < boardY {
		top = boardY
	}

	for y := 0; y < boxH; y++ {
		for x := 0; x < boxW; x++ {
			ch, style := ' ', overlayStyle
			switch {
			case (y == 0 || y == boxH-1) && (x == 0 || x == boxW-1):
				ch, style = '+', borderStyle
			case y == 0 || y == boxH-1:
				ch, style = '-', borderStyle
			case x == 0 || x == boxW-1:
				ch, style = '|', borderStyle
			}
			r.screen.SetContent(left+x, top+y, ch, nil, style)
		}
	}

	for i, line := range lines {
		x := left + (boxW-len(line))/2
		style := overlayStyle
		if i == 0 {
			style = style.Bold(true)
		}
		r.drawText(x, top+1+i, line, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	width, height := r.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for i, ch := range []rune(text) {
		if x+i >= width {
			return
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
