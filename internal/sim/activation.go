package sim

import (
	"zombie-dash/internal/component"
	"zombie-dash/internal/ecs"
	"zombie-dash/internal/system"
)

// activate runs one activating entity's turn: its own countdown, then its
// contact effect on everything overlapping it.
func (w *World) activate(id ecs.EntityID) {
	if !w.tickSelf(id) {
		return
	}
	p := system.PositionOf(w.ECS, id)
	for _, other := range w.geo.Overlap(w.ECS, p.X, p.Y, id) {
		if !w.ECS.Alive(id) {
			return
		}
		if !w.ECS.Alive(other) {
			continue
		}
		w.tryActivate(id, other)
	}
}

// tickSelf advances the internal counter of id and reports whether it may
// act on contacts this tick.
func (w *World) tickSelf(id ecs.EntityID) bool {
	act := w.ECS.Get(id, component.CActivator).(component.Activator)
	switch w.kindOf(id) {
	case component.KindFlame, component.KindVomit:
		act.Counter--
		w.ECS.Add(id, act)
		if act.Counter <= 0 {
			w.remove(id)
			return false
		}
	case component.KindLandmine:
		if !act.Armed {
			act.Counter--
			if act.Counter <= 0 {
				act.Armed = true
			}
			w.ECS.Add(id, act)
		}
	}
	return act.Armed && w.ECS.Alive(id)
}

// tryActivate applies self's contact effect to other.
func (w *World) tryActivate(self, other ecs.EntityID) {
	caps := system.CapsOf(w.ECS, other)
	if system.CapsOf(w.ECS, self).Has(component.CapSavesCitizens) {
		w.rescue(other, caps)
		return
	}
	switch kind := w.kindOf(self); kind {
	case component.KindPit, component.KindFlame:
		if caps.Has(component.CapDiesFromHazard) {
			w.Kill(other)
		}
	case component.KindVomit:
		if caps.Has(component.CapInfectable) {
			w.Infect(other)
		}
	case component.KindLandmine:
		if caps.Any(component.CapInfectable | component.CapEatsBrains | component.CapBurns) {
			w.Kill(self)
		}
	case component.KindVaccineGoodie, component.KindGasCanGoodie, component.KindLandmineGoodie:
		if other == w.Player {
			w.collect(self, kind)
		}
	}
}

// rescue lets a citizen out, or ends the level when the player arrives with
// nobody left behind.
func (w *World) rescue(other ecs.EntityID, caps component.Caps) {
	if other == w.Player {
		if w.citizens == 0 {
			w.finished = true
		}
		return
	}
	if caps.Has(component.CapInfectable) {
		w.remove(other)
		w.citizens--
		w.award(EventCitizenSaved)
		w.sink.Play(CueCitizenSaved)
	}
}

// collect hands a goodie's charges to the player.
func (w *World) collect(goodie ecs.EntityID, kind component.Kind) {
	w.remove(goodie)
	w.award(EventGoodieCollected)
	w.sink.Play(CueGoodieCollected)
	inv := w.inventory()
	switch kind {
	case component.KindVaccineGoodie:
		inv.Vaccines += w.cfg.VaccineCharges
	case component.KindGasCanGoodie:
		inv.Flames += w.cfg.GasCanCharges
	case component.KindLandmineGoodie:
		inv.Mines += w.cfg.LandmineCharges
	}
	w.ECS.Add(w.Player, inv)
}
