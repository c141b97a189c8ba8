package component

import "zombie-dash/internal/ecs"

const CCaps ecs.ComponentType = 5

// Caps is the fixed capability set of an entity. It is attached once, when the
// entity is built, and never replaced.
type Caps uint16

const (
	CapImpassable Caps = 1 << iota
	CapBlocksFire
	CapBlocksVomit
	CapDiesFromHazard
	CapInfectable
	CapEatsBrains
	CapSavesCitizens
	CapBurns
)

// Has reports whether every bit of c is set.
func (cs Caps) Has(c Caps) bool { return cs&c == c }

// Any reports whether at least one bit of c is set.
func (cs Caps) Any(c Caps) bool { return cs&c != 0 }

func (Caps) Type() ecs.ComponentType { return CCaps }
