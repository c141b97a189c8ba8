package component

import "zombie-dash/internal/ecs"

const (
	CPosition ecs.ComponentType = 1
	CFacing   ecs.ComponentType = 2
)

// Position is an anchor point in pixels. Y grows upward.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Dir is one of the four cardinal facings.
type Dir uint8

const (
	DirRight Dir = iota
	DirLeft
	DirUp
	DirDown
)

// Cardinals lists every direction in tie-break priority order.
var Cardinals = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the offset of n pixels in direction d.
func (d Dir) Delta(n int) (int, int) {
	switch d {
	case DirLeft:
		return -n, 0
	case DirRight:
		return n, 0
	case DirUp:
		return 0, n
	case DirDown:
		return 0, -n
	}
	return 0, 0
}

func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "?"
}

// Facing is the direction an entity is looking.
type Facing struct {
	Dir Dir
}

func (Facing) Type() ecs.ComponentType { return CFacing }
