package component

import "zombie-dash/internal/ecs"

const CInfection ecs.ComponentType = 8

// Infection tracks a human's infection. Count only grows while Infected.
type Infection struct {
	Infected bool
	Count    int
}

func (Infection) Type() ecs.ComponentType { return CInfection }
