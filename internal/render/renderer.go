package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"zombie-dash/internal/component"
	"zombie-dash/internal/ecs"
	"zombie-dash/internal/level"
	"zombie-dash/internal/sim"
)

// hudRows is the number of screen rows reserved under the board.
const hudRows = 6

// Renderer draws a level in play onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	level  int // 1-indexed level number for theme selection
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, lvl int) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(level.Width, level.Height, w, h-hudRows),
		level:  lvl,
	}
}

// SetLevel updates the theme index.
func (r *Renderer) SetLevel(lvl int) { r.level = lvl }

// Resize recenters the board after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(level.Width, level.Height, w, h-hudRows)
}

// WorldToScreen converts a board cell to screen coordinates.
func (r *Renderer) WorldToScreen(cx, cy int) (sx, sy int) {
	return r.camera.WorldToScreen(cx, cy)
}

// DrawFrame renders the floor and every entity of w.
func (r *Renderer) DrawFrame(w *sim.World) {
	r.screen.Clear()
	r.drawFloor()
	r.drawEntities(w.ECS, w.Geometry().Sprite)
}

func (r *Renderer) drawFloor() {
	theme := ThemeFor(r.level)
	style := tcell.StyleDefault.Foreground(theme.Color).Background(tcell.ColorBlack)
	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			sx, sy := r.camera.WorldToScreen(x, y)
			r.putGlyph(sx, sy, theme.Floor, style)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	cx, cy int
	rend   component.Renderable
}

// drawEntities renders all entities with Renderable + Position, ordered by
// RenderOrder. Pixel positions are snapped to the cell they start in.
func (r *Renderer) drawEntities(w *ecs.World, sprite int) {
	if sprite <= 0 {
		sprite = 1
	}
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		cx, cy := floorDiv(pos.X, sprite), floorDiv(pos.Y, sprite)
		if cx < 0 || cx >= level.Width || cy < 0 || cy >= level.Height {
			continue
		}
		entities = append(entities, renderableEntity{cx: cx, cy: cy, rend: rend})
	}

	// Lower order is drawn first, so it ends up behind.
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].rend.RenderOrder < entities[j].rend.RenderOrder
	})

	for _, e := range entities {
		sx, sy := r.camera.WorldToScreen(e.cx, e.cy)
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
