package factory

import (
	"zombie-dash/assets"
	"zombie-dash/internal/component"
	"zombie-dash/internal/ecs"
)

// capsByKind is the capability table. It is the only place capabilities are
// decided; everything else asks component.Caps.
var capsByKind = map[component.Kind]component.Caps{
	component.KindPlayer:         component.CapImpassable | component.CapDiesFromHazard | component.CapInfectable,
	component.KindCitizen:        component.CapImpassable | component.CapDiesFromHazard | component.CapInfectable,
	component.KindDumbZombie:     component.CapImpassable | component.CapDiesFromHazard | component.CapEatsBrains,
	component.KindSmartZombie:    component.CapImpassable | component.CapDiesFromHazard | component.CapEatsBrains,
	component.KindWall:           component.CapImpassable | component.CapBlocksFire | component.CapBlocksVomit,
	component.KindExit:           component.CapBlocksFire | component.CapSavesCitizens,
	component.KindPit:            0,
	component.KindFlame:          component.CapBurns,
	component.KindVomit:          0,
	component.KindLandmine:       component.CapDiesFromHazard,
	component.KindVaccineGoodie:  component.CapDiesFromHazard,
	component.KindGasCanGoodie:   component.CapDiesFromHazard,
	component.KindLandmineGoodie: component.CapDiesFromHazard,
}

// CapsOf returns the fixed capability set of a kind.
func CapsOf(k component.Kind) component.Caps { return capsByKind[k] }

// spawn creates the parts every entity shares: kind, position, facing,
// capabilities and look.
func spawn(w *ecs.World, kind component.Kind, x, y int, dir component.Dir) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, kind)
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Facing{Dir: dir})
	w.Add(id, CapsOf(kind))
	look := assets.Looks[kind]
	w.Add(id, component.Renderable{Glyph: look.Glyph, FGColor: look.Color, RenderOrder: look.Order})
	return id
}

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y, step int) ecs.EntityID {
	id := spawn(w, component.KindPlayer, x, y, component.DirRight)
	w.Add(id, component.Agent{Step: step})
	w.Add(id, component.Infection{})
	w.Add(id, component.Inventory{})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewCitizen creates a citizen waiting to be rescued.
func NewCitizen(w *ecs.World, x, y, step int) ecs.EntityID {
	id := spawn(w, component.KindCitizen, x, y, component.DirRight)
	w.Add(id, component.Agent{Step: step})
	w.Add(id, component.Infection{})
	return id
}

// NewZombie creates a dumb or smart zombie with no plan.
func NewZombie(w *ecs.World, x, y, step int, smart bool) ecs.EntityID {
	kind := component.KindDumbZombie
	if smart {
		kind = component.KindSmartZombie
	}
	id := spawn(w, kind, x, y, component.DirRight)
	w.Add(id, component.Agent{Step: step})
	w.Add(id, component.Plan{})
	return id
}

// NewWall creates an impassable wall segment.
func NewWall(w *ecs.World, x, y int) ecs.EntityID {
	return spawn(w, component.KindWall, x, y, component.DirRight)
}

// NewExit creates the level exit.
func NewExit(w *ecs.World, x, y int) ecs.EntityID {
	id := spawn(w, component.KindExit, x, y, component.DirRight)
	w.Add(id, component.Activator{Armed: true})
	return id
}

// NewPit creates a pit that kills whatever falls in.
func NewPit(w *ecs.World, x, y int) ecs.EntityID {
	id := spawn(w, component.KindPit, x, y, component.DirRight)
	w.Add(id, component.Activator{Armed: true})
	return id
}

// NewFlame creates a flame that burns out after lifetime ticks.
func NewFlame(w *ecs.World, x, y int, dir component.Dir, lifetime int) ecs.EntityID {
	id := spawn(w, component.KindFlame, x, y, dir)
	w.Add(id, component.Activator{Counter: lifetime, Armed: true})
	return id
}

// NewVomit creates a vomit splash that dries up after lifetime ticks.
func NewVomit(w *ecs.World, x, y int, dir component.Dir, lifetime int) ecs.EntityID {
	id := spawn(w, component.KindVomit, x, y, dir)
	w.Add(id, component.Activator{Counter: lifetime, Armed: true})
	return id
}

// NewLandmine creates a landmine that arms itself after safety ticks.
func NewLandmine(w *ecs.World, x, y, safety int) ecs.EntityID {
	id := spawn(w, component.KindLandmine, x, y, component.DirRight)
	w.Add(id, component.Activator{Counter: safety, Armed: safety <= 0})
	return id
}

// NewGoodie creates a pickup of the given goodie kind.
func NewGoodie(w *ecs.World, kind component.Kind, x, y int) ecs.EntityID {
	switch kind {
	case component.KindVaccineGoodie, component.KindGasCanGoodie, component.KindLandmineGoodie:
	default:
		panic("factory: not a goodie kind: " + kind.String())
	}
	id := spawn(w, kind, x, y, component.DirRight)
	w.Add(id, component.Activator{Armed: true})
	return id
}
