package system

import (
	"math"

	"zombie-dash/internal/component"
	"zombie-dash/internal/ecs"
)

// Geometry holds the fixed sizes the spatial tests use. Every sprite is a
// Sprite×Sprite box anchored at its bottom-left corner.
type Geometry struct {
	Sprite     int
	Radius     int // proximity overlap radius
	ViewHeight int
}

// DefaultGeometry matches a 16×16 grid of 16px sprites.
func DefaultGeometry() Geometry {
	return Geometry{Sprite: 16, Radius: 10, ViewHeight: 256}
}

// NoneFound is what the distance helpers return when nothing qualifies.
func (g Geometry) NoneFound() float64 { return float64(2 * g.ViewHeight) }

// PositionOf returns the position of id, or the zero Position.
func PositionOf(w *ecs.World, id ecs.EntityID) component.Position {
	if c := w.Get(id, component.CPosition); c != nil {
		return c.(component.Position)
	}
	return component.Position{}
}

// CapsOf returns the capability set of id, or none.
func CapsOf(w *ecs.World, id ecs.EntityID) component.Caps {
	if c := w.Get(id, component.CCaps); c != nil {
		return c.(component.Caps)
	}
	return 0
}

// IsPlayer reports whether id is the player.
func IsPlayer(w *ecs.World, id ecs.EntityID) bool {
	return w.Has(id, component.CTagPlayer)
}

// InBoundary reports whether a sprite box anchored at (x, y) intersects the
// box of target. Any of the four corners landing inside counts. An entity is
// never in its own boundary.
func (g Geometry) InBoundary(w *ecs.World, target ecs.EntityID, x, y int, mover ecs.EntityID) bool {
	if target == mover {
		return false
	}
	p := PositionOf(w, target)
	last := g.Sprite - 1
	corners := [4][2]int{{x, y}, {x + last, y}, {x, y + last}, {x + last, y + last}}
	for _, c := range corners {
		if c[0] >= p.X && c[0] <= p.X+last && c[1] >= p.Y && c[1] <= p.Y+last {
			return true
		}
	}
	return false
}

// Overlapping reports whether (x, y) is within the overlap radius of target's
// anchor. An entity never overlaps itself.
func (g Geometry) Overlapping(w *ecs.World, target ecs.EntityID, x, y int, cmp ecs.EntityID) bool {
	if target == cmp {
		return false
	}
	p := PositionOf(w, target)
	dx, dy := p.X-x, p.Y-y
	return dx*dx+dy*dy <= g.Radius*g.Radius
}

// Blocked returns the impassable entities whose boundary contains a box at
// (x, y), excluding mover. A move is legal iff the result is empty.
func (g Geometry) Blocked(w *ecs.World, x, y int, mover ecs.EntityID) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range w.Query(component.CCaps, component.CPosition) {
		if !CapsOf(w, id).Has(component.CapImpassable) {
			continue
		}
		if g.InBoundary(w, id, x, y, mover) {
			out = append(out, id)
		}
	}
	return out
}

// Overlap returns the entities proximity-overlapping (x, y), excluding cmp.
func (g Geometry) Overlap(w *ecs.World, x, y int, cmp ecs.EntityID) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range w.Query(component.CPosition) {
		if g.Overlapping(w, id, x, y, cmp) {
			out = append(out, id)
		}
	}
	return out
}

// OverlapsAny reports whether something with any of caps overlaps (x, y).
func (g Geometry) OverlapsAny(w *ecs.World, x, y int, cmp ecs.EntityID, caps component.Caps) bool {
	for _, id := range g.Overlap(w, x, y, cmp) {
		if CapsOf(w, id).Any(caps) {
			return true
		}
	}
	return false
}

// Distance is the Euclidean distance between (x, y) and id's anchor.
func Distance(w *ecs.World, id ecs.EntityID, x, y int) float64 {
	p := PositionOf(w, id)
	return math.Hypot(float64(p.X-x), float64(p.Y-y))
}

// Nearest linear-scans the live entities accepted by keep and returns the
// closest one to (x, y). With no match it returns NilEntity and NoneFound.
func (g Geometry) Nearest(w *ecs.World, x, y int, keep func(ecs.EntityID) bool) (ecs.EntityID, float64) {
	best, bestDist := ecs.NilEntity, g.NoneFound()
	for _, id := range w.Query(component.CPosition) {
		if !keep(id) {
			continue
		}
		if d := Distance(w, id, x, y); best == ecs.NilEntity || d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, bestDist
}

// DistanceToNearestZombie returns the distance to the closest brain eater.
func (g Geometry) DistanceToNearestZombie(w *ecs.World, x, y int) float64 {
	_, d := g.Nearest(w, x, y, func(id ecs.EntityID) bool {
		return CapsOf(w, id).Has(component.CapEatsBrains)
	})
	return d
}

// DistanceToPlayer returns the distance to the live player.
func (g Geometry) DistanceToPlayer(w *ecs.World, x, y int) float64 {
	_, d := g.Nearest(w, x, y, func(id ecs.EntityID) bool { return IsPlayer(w, id) })
	return d
}

// DistanceToNearestCitizen returns the distance to the closest infectable
// entity that is not the player.
func (g Geometry) DistanceToNearestCitizen(w *ecs.World, x, y int) float64 {
	_, d := g.Nearest(w, x, y, func(id ecs.EntityID) bool {
		return !IsPlayer(w, id) && CapsOf(w, id).Has(component.CapInfectable)
	})
	return d
}
