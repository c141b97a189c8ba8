package sim

import (
	"go.uber.org/zap"

	"zombie-dash/internal/component"
	"zombie-dash/internal/ecs"
	"zombie-dash/internal/factory"
	"zombie-dash/internal/system"
)

// Kill marks id dead and runs its kind's dying action. Killing something
// already dead does nothing.
func (w *World) Kill(id ecs.EntityID) {
	if !w.ECS.MarkDead(id) {
		return
	}
	switch w.kindOf(id) {
	case component.KindPlayer:
		w.sink.Play(CuePlayerDied)
		w.log.Info("player died", zap.Int("level", w.Ledger.Level), zap.Int("tick", w.ticks))
	case component.KindCitizen:
		w.citizens--
		w.award(EventCitizenDied)
		w.sink.Play(CueCitizenDied)
	case component.KindDumbZombie:
		w.award(EventDumbZombieDied)
		w.sink.Play(CueZombieDied)
		w.dropVaccine(id)
	case component.KindSmartZombie:
		w.award(EventSmartZombieDied)
		w.sink.Play(CueZombieDied)
	case component.KindLandmine:
		w.explode(id)
	}
}

// Infect starts the infection of a human. Anything else is unaffected.
func (w *World) Infect(id ecs.EntityID) {
	c := w.ECS.Get(id, component.CInfection)
	if c == nil || !w.ECS.Alive(id) {
		return
	}
	inf := c.(component.Infection)
	if inf.Infected {
		return
	}
	inf.Infected = true
	w.ECS.Add(id, inf)
	if w.kindOf(id) == component.KindCitizen {
		w.sink.Play(CueCitizenInfected)
	}
}

// remove takes id out of play without its dying action: a rescued citizen,
// a collected goodie, a burnt-out flame.
func (w *World) remove(id ecs.EntityID) {
	w.ECS.MarkDead(id)
}

// dropVaccine occasionally leaves a vaccine one cell away from a dead dumb
// zombie, if that cell is free.
func (w *World) dropVaccine(id ecs.EntityID) {
	if w.rng.Intn(w.cfg.VaccineDropOdds) != 0 {
		return
	}
	dir := system.RandomDir(w.rng)
	x, y := system.Destination(w.ECS, id, dir, w.sprite())
	if len(w.geo.Overlap(w.ECS, x, y, id)) > 0 {
		return
	}
	factory.NewGoodie(w.ECS, component.KindVaccineGoodie, x, y)
}

// explode fills the landmine's cell and its eight neighbours with flames,
// skipping cells behind fire blockers, and leaves a pit in the middle.
func (w *World) explode(id ecs.EntityID) {
	w.sink.Play(CueLandmineExploded)
	p := system.PositionOf(w.ECS, id)
	s := w.sprite()
	for _, dy := range [3]int{0, -1, 1} {
		for _, dx := range [3]int{0, -1, 1} {
			x, y := p.X+dx*s, p.Y+dy*s
			if w.geo.OverlapsAny(w.ECS, x, y, id, component.CapBlocksFire) {
				continue
			}
			factory.NewFlame(w.ECS, x, y, component.DirUp, w.cfg.FlameLifetime)
		}
	}
	factory.NewPit(w.ECS, p.X, p.Y)
}

// turn replaces an infected human with a zombie once the infection has run
// its course. The player simply dies.
func (w *World) turn(id ecs.EntityID) {
	if id == w.Player {
		w.Kill(id)
		return
	}
	p := system.PositionOf(w.ECS, id)
	w.remove(id)
	w.citizens--
	w.award(EventZombieBorn)
	w.sink.Play(CueZombieBorn)
	smart := w.rng.Intn(100) < w.cfg.SmartZombieOdds
	factory.NewZombie(w.ECS, p.X, p.Y, w.cfg.ZombieStep, smart)
	w.log.Debug("citizen turned", zap.Bool("smart", smart), zap.Int("tick", w.ticks))
}
