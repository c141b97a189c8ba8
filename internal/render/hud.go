package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"zombie-dash/internal/sim"
)

// DrawHUD renders the status bar and message log at the bottom of the screen.
// levelName is shown above the status line.
func (r *Renderer) DrawHUD(status sim.Status, levelName string, citizens int, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	title := levelName
	if citizens > 0 {
		title += fmt.Sprintf("  (citizens left: %d)", citizens)
	} else {
		title += "  (exit open)"
	}
	r.drawText(0, hudY+1, title, tcell.StyleDefault.Foreground(tcell.ColorLightCyan))
	r.drawText(0, hudY+2, status.String(), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Message log (last 3 messages).
	start := max(len(messages)-3, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
