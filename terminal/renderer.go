package terminal

import (
	"fmt"

	"grid-snake/game"

	"github.com/gdamore/tcell/v2"
)

const (
	headRune = '@'
	bodyRune = 'o'
	foodRune = '*'
)

// Renderer draws snapshots on a tcell screen: one cell per tile inside a
// box, with a status line above it.
type Renderer struct {
	screen tcell.Screen

	border tcell.Style
	head   tcell.Style
	body   tcell.Style
	food   tcell.Style
	text   tcell.Style
	alert  tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	base := tcell.StyleDefault
	return &Renderer{
		screen: screen,
		border: base.Foreground(tcell.ColorGray),
		head:   base.Foreground(tcell.ColorDarkGreen).Bold(true),
		body:   base.Foreground(tcell.ColorLightGreen),
		food:   base.Foreground(tcell.ColorRed).Bold(true),
		text:   base,
		alert:  base.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true),
	}
}

// Draw renders snap. best is the best score of this process.
func (r *Renderer) Draw(snap game.Snapshot, best int) {
	r.screen.Clear()

	// Row 0 is the status line; the box starts at row 1.
	r.drawText(0, 0, fmt.Sprintf("Score: %d  Best: %d", snap.Score, best), r.text)

	w, h := snap.Grid.Width, snap.Grid.Height
	borderStyle := r.border
	if snap.GameOver {
		borderStyle = r.border.Foreground(tcell.ColorRed)
	}
	r.drawBox(0, 1, w+2, h+2, borderStyle)

	if snap.HasFood {
		r.setTile(snap, snap.Food.X, snap.Food.Y, foodRune, r.food)
	}
	// Tail first so the head wins if segments overlap after a self hit.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		p := snap.Snake[i]
		if i == 0 {
			r.setTile(snap, p.X, p.Y, headRune, r.head)
		} else {
			r.setTile(snap, p.X, p.Y, bodyRune, r.body)
		}
	}

	if snap.GameOver {
		msg := fmt.Sprintf(" GAME OVER  Final Score: %d ", snap.Score)
		r.drawText(max(0, (w+2-len(msg))/2), 1+(h+2)/2, msg, r.alert)
		r.drawText(0, h+3, "r: reset  q: quit", r.text)
	}
	r.screen.Show()
}

// setTile draws at grid coordinates, skipping cells outside the grid.
func (r *Renderer) setTile(snap game.Snapshot, x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= snap.Grid.Width || y >= snap.Grid.Height {
		return
	}
	r.screen.SetContent(x+1, y+2, ch, nil, style)
}

func (r *Renderer) drawBox(x, y, w, h int, style tcell.Style) {
	for i := x + 1; i < x+w-1; i++ {
		r.screen.SetContent(i, y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for j := y + 1; j < y+h-1; j++ {
		r.screen.SetContent(x, j, tcell.RuneVLine, nil, style)
		r.screen.SetContent(x+w-1, j, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
