package render

// Camera translates between board cells and screen coordinates.
// Cell X is multiplied by 2 because emoji occupy 2 terminal columns, and
// rows are flipped because the board's y axis points up.
type Camera struct {
	OffsetX int
	OffsetY int
	Rows    int // board height in cells
}

// NewCamera centers a cols×rows board inside a viewW×viewH viewport.
func NewCamera(cols, rows, viewW, viewH int) *Camera {
	return &Camera{
		OffsetX: max((viewW-cols*2)/2, 0),
		OffsetY: max((viewH-rows)/2, 0),
		Rows:    rows,
	}
}

// WorldToScreen converts cell (cx, cy) to screen (sx, sy).
func (c *Camera) WorldToScreen(cx, cy int) (sx, sy int) {
	return c.OffsetX + cx*2, c.OffsetY + (c.Rows - 1 - cy)
}

// ScreenToWorld converts screen (sx, sy) back to a board cell.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return (sx - c.OffsetX) / 2, c.Rows - 1 - (sy - c.OffsetY)
}
