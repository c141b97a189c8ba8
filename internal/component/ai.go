package component

import "zombie-dash/internal/ecs"

const (
	CAgent ecs.ComponentType = 6
	CPlan  ecs.ComponentType = 7
)

// Agent is attached to everything that moves on its own turn.
type Agent struct {
	Step      int  // pixels per move
	Paralyzed bool // already acted; cleared before the next turn
}

func (Agent) Type() ecs.ComponentType { return CAgent }

// Plan is a zombie's remaining steps in its current direction.
type Plan struct {
	Steps int
}

func (Plan) Type() ecs.ComponentType { return CPlan }
