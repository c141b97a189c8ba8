package system

import (
	"math/rand"

	"zombie-dash/internal/component"
	"zombie-dash/internal/ecs"
)

// Toward returns the axis directions that close the gap from one point to
// another. Aligned points yield one direction, diagonal points two
// (horizontal first), identical points none.
func Toward(from, to component.Position) []component.Dir {
	var dirs []component.Dir
	switch sign(to.X - from.X) {
	case 1:
		dirs = append(dirs, component.DirRight)
	case -1:
		dirs = append(dirs, component.DirLeft)
	}
	switch sign(to.Y - from.Y) {
	case 1:
		dirs = append(dirs, component.DirUp)
	case -1:
		dirs = append(dirs, component.DirDown)
	}
	return dirs
}

// ChooseToward picks the direction to head for target: the only candidate
// when aligned, otherwise a random one of the two. ok is false when the
// points coincide.
func ChooseToward(from, to component.Position, rng *rand.Rand) (component.Dir, bool) {
	dirs := Toward(from, to)
	switch len(dirs) {
	case 0:
		return 0, false
	case 1:
		return dirs[0], true
	}
	return dirs[rng.Intn(2)], true
}

// Pursue steps id toward target along one axis. When aligned it tries the
// single direction; otherwise it tries a random one of the two candidates
// first and falls back to the other on blockage.
func (g Geometry) Pursue(w *ecs.World, id ecs.EntityID, target component.Position, rng *rand.Rand) bool {
	dirs := Toward(PositionOf(w, id), target)
	if len(dirs) == 2 && rng.Intn(2) == 1 {
		dirs[0], dirs[1] = dirs[1], dirs[0]
	}
	for _, d := range dirs {
		if g.TryMoveSimple(w, id, d) {
			return true
		}
	}
	return false
}

// RandomDir returns one of the four cardinal directions uniformly.
func RandomDir(rng *rand.Rand) component.Dir {
	return component.Cardinals[rng.Intn(len(component.Cardinals))]
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
