package sim

import (
	"zombie-dash/internal/component"
	"zombie-dash/internal/ecs"
	"zombie-dash/internal/factory"
	"zombie-dash/internal/system"
)

var moveDirs = map[Action]component.Dir{
	ActionMoveLeft:  component.DirLeft,
	ActionMoveRight: component.DirRight,
	ActionMoveUp:    component.DirUp,
	ActionMoveDown:  component.DirDown,
}

// actPlayer runs the player's turn: infection first, then whatever the input
// asks for.
func (w *World) actPlayer() {
	id := w.Player
	if w.advanceInfection(id) {
		return
	}
	a := w.input.Poll()
	if dir, ok := moveDirs[a]; ok {
		w.geo.AttemptMove(w.ECS, id, dir)
		return
	}
	inv := w.inventory()
	switch a {
	case ActionUseFlame:
		if inv.Flames > 0 {
			inv.Flames--
			w.ECS.Add(id, inv)
			w.fireFlames(id)
		}
	case ActionUseLandmine:
		if inv.Mines > 0 {
			inv.Mines--
			w.ECS.Add(id, inv)
			p := system.PositionOf(w.ECS, id)
			factory.NewLandmine(w.ECS, p.X, p.Y, w.cfg.LandmineSafety)
		}
	case ActionUseVaccine:
		if inv.Vaccines > 0 {
			inv.Vaccines--
			w.ECS.Add(id, inv)
			w.ECS.Add(id, component.Infection{})
		}
	}
}

// fireFlames lays a line of flames ahead of id, stopping at the first cell a
// fire blocker overlaps.
func (w *World) fireFlames(id ecs.EntityID) {
	w.sink.Play(CuePlayerFire)
	dir := system.FacingOf(w.ECS, id)
	for i := 1; i <= w.cfg.FlameLength; i++ {
		x, y := system.Destination(w.ECS, id, dir, i*w.sprite())
		if w.geo.OverlapsAny(w.ECS, x, y, id, component.CapBlocksFire) {
			return
		}
		factory.NewFlame(w.ECS, x, y, dir, w.cfg.FlameLifetime)
	}
}

// advanceInfection counts one tick of infection and turns the human when the
// limit is reached. It reports whether the human is gone.
func (w *World) advanceInfection(id ecs.EntityID) bool {
	inf := w.infection(id)
	if !inf.Infected {
		return false
	}
	inf.Count++
	w.ECS.Add(id, inf)
	if inf.Count >= w.cfg.InfectionLimit {
		w.turn(id)
		return true
	}
	return false
}

// paralyzed handles the every-other-tick rhythm of autonomous agents. It
// reports whether id sits this tick out.
func (w *World) paralyzed(id ecs.EntityID) bool {
	a := w.ECS.Get(id, component.CAgent).(component.Agent)
	if a.Paralyzed {
		if w.cfg.AlternateTurns {
			a.Paralyzed = false
			w.ECS.Add(id, a)
		}
		return true
	}
	a.Paralyzed = true
	w.ECS.Add(id, a)
	return false
}

// actCitizen heads for the player when the player is close and nearer than
// any zombie, otherwise runs from a nearby zombie.
func (w *World) actCitizen(id ecs.EntityID) {
	if w.advanceInfection(id) {
		return
	}
	if w.paralyzed(id) {
		return
	}
	p := system.PositionOf(w.ECS, id)
	dp := w.geo.DistanceToPlayer(w.ECS, p.X, p.Y)
	dz := w.geo.DistanceToNearestZombie(w.ECS, p.X, p.Y)

	if dp < dz && dp <= float64(w.cfg.SeekRadius) {
		if w.geo.Pursue(w.ECS, id, system.PositionOf(w.ECS, w.Player), w.rng) {
			return
		}
	}
	if dz <= float64(w.cfg.AlertRadius) {
		if dir, ok := w.fleeDir(id, dz); ok {
			w.geo.AttemptMove(w.ECS, id, dir)
		}
	}
}

// fleeDir picks the unblocked step that leaves id furthest from the nearest
// zombie, provided it is further than now. Ties go to the first direction in
// component.Cardinals.
func (w *World) fleeDir(id ecs.EntityID, current float64) (component.Dir, bool) {
	var (
		best  component.Dir
		bestD = current
		found bool
	)
	step := system.Step(w.ECS, id)
	for _, d := range component.Cardinals {
		x, y := system.Destination(w.ECS, id, d, step)
		if len(w.geo.Blocked(w.ECS, x, y, id)) > 0 {
			continue
		}
		if dist := w.geo.DistanceToNearestZombie(w.ECS, x, y); dist > bestD {
			best, bestD, found = d, dist, true
		}
	}
	return best, found
}

// actZombie vomits on a human straight ahead or keeps walking its plan.
func (w *World) actZombie(id ecs.EntityID) {
	if w.paralyzed(id) {
		return
	}
	if w.tryVomit(id) {
		return
	}
	plan := w.ECS.Get(id, component.CPlan).(component.Plan)
	if plan.Steps <= 0 {
		w.ECS.Add(id, component.Facing{Dir: w.zombieDir(id)})
		plan.Steps = w.cfg.PlanMin + w.rng.Intn(w.cfg.PlanMax-w.cfg.PlanMin+1)
	}
	if res, _ := w.geo.AttemptMove(w.ECS, id, system.FacingOf(w.ECS, id)); res == system.MoveBlocked {
		plan.Steps = 0
	} else {
		plan.Steps--
	}
	w.ECS.Add(id, plan)
}

// tryVomit spawns vomit one cell ahead when a human is there, one time in
// VomitOdds. It reports whether the zombie spent its turn.
func (w *World) tryVomit(id ecs.EntityID) bool {
	dir := system.FacingOf(w.ECS, id)
	x, y := system.Destination(w.ECS, id, dir, w.sprite())
	if !w.geo.OverlapsAny(w.ECS, x, y, id, component.CapInfectable) {
		return false
	}
	if w.geo.OverlapsAny(w.ECS, x, y, id, component.CapBlocksVomit) {
		return false
	}
	if w.rng.Intn(w.cfg.VomitOdds) != 0 {
		return false
	}
	factory.NewVomit(w.ECS, x, y, dir, w.cfg.VomitLifetime)
	return true
}

// zombieDir is the direction policy of each zombie kind. Dumb zombies wander;
// smart ones head for the nearest human in sight.
func (w *World) zombieDir(id ecs.EntityID) component.Dir {
	if w.kindOf(id) != component.KindSmartZombie {
		return system.RandomDir(w.rng)
	}
	p := system.PositionOf(w.ECS, id)
	target, d := w.geo.Nearest(w.ECS, p.X, p.Y, func(o ecs.EntityID) bool {
		return system.CapsOf(w.ECS, o).Has(component.CapInfectable)
	})
	if target == ecs.NilEntity || d > float64(w.cfg.SmartSightRange) {
		return system.RandomDir(w.rng)
	}
	if dir, ok := system.ChooseToward(p, system.PositionOf(w.ECS, target), w.rng); ok {
		return dir
	}
	return system.RandomDir(w.rng)
}
