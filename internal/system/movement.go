package system

import (
	"zombie-dash/internal/component"
	"zombie-dash/internal/ecs"
)

// MoveResult describes the outcome of an AttemptMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // an impassable entity is in the way
)

// Step returns the number of pixels id covers per move.
func Step(w *ecs.World, id ecs.EntityID) int {
	if c := w.Get(id, component.CAgent); c != nil {
		return c.(component.Agent).Step
	}
	return 0
}

// Destination returns where id would land moving n pixels in dir.
func Destination(w *ecs.World, id ecs.EntityID, dir component.Dir, n int) (int, int) {
	p := PositionOf(w, id)
	dx, dy := dir.Delta(n)
	return p.X + dx, p.Y + dy
}

// AttemptMove turns id to face dir and moves it one step that way unless the
// destination is blocked. On MoveBlocked the first blocker is returned and the
// position is unchanged.
func (g Geometry) AttemptMove(w *ecs.World, id ecs.EntityID, dir component.Dir) (MoveResult, ecs.EntityID) {
	w.Add(id, component.Facing{Dir: dir})
	nx, ny := Destination(w, id, dir, Step(w, id))
	if blockers := g.Blocked(w, nx, ny, id); len(blockers) > 0 {
		return MoveBlocked, blockers[0]
	}
	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}

// TryMoveSimple is a convenience wrapper that reports success only.
func (g Geometry) TryMoveSimple(w *ecs.World, id ecs.EntityID, dir component.Dir) bool {
	r, _ := g.AttemptMove(w, id, dir)
	return r == MoveOK
}

// FacingOf returns the direction id is facing.
func FacingOf(w *ecs.World, id ecs.EntityID) component.Dir {
	if c := w.Get(id, component.CFacing); c != nil {
		return c.(component.Facing).Dir
	}
	return component.DirRight
}
