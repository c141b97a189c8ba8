package level

// Width and Height are the fixed level dimensions in cells.
const (
	Width  = 16
	Height = 16
)

// Rect is an axis-aligned rectangle of cells.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Grid is one level's starting layout. Cell (0, 0) is the bottom-left
// corner; y grows upward to match simulation coordinates.
type Grid struct {
	Name          string
	Width, Height int
	Cells         [][]Cell // [y][x]
	Rooms         []Rect   // only set by the procedural generator
}

// New creates an empty grid.
func New(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

// NewWalled creates a grid filled with walls.
func NewWalled(width, height int) *Grid {
	g := New(width, height)
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = Wall
		}
	}
	return g
}

// NewBordered creates an empty grid inside a solid wall border.
func NewBordered(width, height int) *Grid {
	g := New(width, height)
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				g.Cells[y][x] = Wall
			}
		}
	}
	return g
}

// InBounds reports whether (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y). Panics if out of bounds.
func (g *Grid) At(x, y int) Cell {
	return g.Cells[y][x]
}

// Set replaces the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) {
	g.Cells[y][x] = c
}

// IsWalkable returns true when (x, y) is in bounds and not a wall.
func (g *Grid) IsWalkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Cells[y][x].Walkable()
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Find returns the first (x, y) holding c, scanning bottom row first.
func (g *Grid) Find(c Cell) (int, int, bool) {
	for y, row := range g.Cells {
		for x, cell := range row {
			if cell == c {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
