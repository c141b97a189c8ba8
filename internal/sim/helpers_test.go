package sim

import (
	"math/rand"

	"zombie-dash/internal/component"
	"zombie-dash/internal/config"
	"zombie-dash/internal/ecs"
	"zombie-dash/internal/factory"
	"zombie-dash/internal/system"
)

type recordSink struct{ cues []Cue }

func (r *recordSink) Play(c Cue) { r.cues = append(r.cues, c) }

func (r *recordSink) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

// scriptInput replays actions, then presses nothing.
type scriptInput []Action

func (s *scriptInput) Poll() Action {
	if len(*s) == 0 {
		return ActionNone
	}
	a := (*s)[0]
	*s = (*s)[1:]
	return a
}

// newTestWorld returns an empty world with stock tunables, a seeded RNG and a
// recording sink. Callers place entities with the factory.
func newTestWorld(seed int64) (*World, *recordSink) {
	return newTestWorldWith(config.DefaultSim(), seed)
}

func newTestWorldWith(cfg config.SimConfig, seed int64) (*World, *recordSink) {
	sink := &recordSink{}
	w := newWorld(cfg, Options{Rand: rand.New(rand.NewSource(seed)), Sink: sink})
	return w, sink
}

func placePlayer(w *World, x, y int) ecs.EntityID {
	w.Player = factory.NewPlayer(w.ECS, x, y, w.cfg.PlayerStep)
	return w.Player
}

func placeCitizen(w *World, x, y int) ecs.EntityID {
	w.citizens++
	return factory.NewCitizen(w.ECS, x, y, w.cfg.CitizenStep)
}

func placeZombie(w *World, x, y int, smart bool) ecs.EntityID {
	return factory.NewZombie(w.ECS, x, y, w.cfg.ZombieStep, smart)
}

// boxIn surrounds the cell at (x, y) with walls on its four sides.
func boxIn(w *World, x, y int) {
	s := w.sprite()
	for _, d := range component.Cardinals {
		dx, dy := d.Delta(s)
		factory.NewWall(w.ECS, x+dx, y+dy)
	}
}

func pos(w *World, id ecs.EntityID) component.Position {
	return system.PositionOf(w.ECS, id)
}

func countKind(w *World, k component.Kind) int {
	n := 0
	for _, id := range w.ECS.Query(component.CKind) {
		if w.kindOf(id) == k {
			n++
		}
	}
	return n
}

func setInventory(w *World, inv component.Inventory) {
	w.ECS.Add(w.Player, inv)
}
