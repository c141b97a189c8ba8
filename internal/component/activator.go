package component

import "zombie-dash/internal/ecs"

const CActivator ecs.ComponentType = 9

// Activator is attached to entities that act on whatever they touch: exits,
// pits, flames, vomit, landmines and goodies.
type Activator struct {
	Counter int  // remaining lifetime (flame, vomit) or safety ticks (landmine)
	Armed   bool // landmines only activate once armed
}

func (Activator) Type() ecs.ComponentType { return CActivator }
