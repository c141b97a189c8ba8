package component

import "zombie-dash/internal/ecs"

const CInventory ecs.ComponentType = 10

// Inventory holds the player's item charges.
type Inventory struct {
	Vaccines int
	Flames   int
	Mines    int
}

func (Inventory) Type() ecs.ComponentType { return CInventory }
