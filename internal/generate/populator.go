package generate

import (
	"zombie-dash/internal/level"
)

// Spawn places one starting cell.
type Spawn struct {
	Cell level.Cell
	X, Y int
}

// PopulateResult is returned by Populate with the cells to place.
type PopulateResult struct {
	Zombies  []Spawn
	Citizens []Spawn
	Goodies  []Spawn
	Pits     []Spawn
}

// All returns every spawn in placement order.
func (r PopulateResult) All() []Spawn {
	out := make([]Spawn, 0, len(r.Zombies)+len(r.Citizens)+len(r.Goodies)+len(r.Pits))
	out = append(out, r.Pits...)
	out = append(out, r.Goodies...)
	out = append(out, r.Citizens...)
	out = append(out, r.Zombies...)
	return out
}

// Populate chooses positions for zombies, citizens, goodies and pits. It never
// picks a cell that is not empty in g, so the player start and exit survive.
func Populate(g *level.Grid, cfg *Config) PopulateResult {
	var result PopulateResult

	rooms := g.Rooms
	if len(rooms) == 0 {
		return result
	}
	// Zombies and pits stay out of the player's room when there is another.
	placeable := rooms
	if len(rooms) > 1 {
		placeable = rooms[1:]
	}

	type pt = [2]int
	occupied := make(map[pt]bool)
	pick := func(room level.Rect) (int, int, bool) {
		return pickFreeInRoom(g, room, cfg, occupied)
	}
	claim := func(x, y int) { occupied[pt{x, y}] = true }

	budget := cfg.ZombieBudget

	// Phase 1: one zombie per placeable room, cheapest that fits the budget.
	if len(cfg.ZombieTable) > 0 {
		for _, room := range placeable {
			aff := affordableZombies(cfg.ZombieTable, budget)
			if len(aff) == 0 {
				break
			}
			entry := cheapestEntry(aff)
			x, y, ok := pick(room)
			if !ok {
				continue
			}
			claim(x, y)
			result.Zombies = append(result.Zombies, Spawn{Cell: entry.Cell, X: x, Y: y})
			budget -= entry.ThreatCost
		}
	}

	// Phase 2: spend what is left on random rooms.
	for budget > 0 && len(cfg.ZombieTable) > 0 {
		affordable := affordableZombies(cfg.ZombieTable, budget)
		if len(affordable) == 0 {
			break
		}
		room := placeable[cfg.Rand.Intn(len(placeable))]
		entry := affordable[cfg.Rand.Intn(len(affordable))]
		budget -= entry.ThreatCost
		x, y, ok := pick(room)
		if !ok {
			continue
		}
		claim(x, y)
		result.Zombies = append(result.Zombies, Spawn{Cell: entry.Cell, X: x, Y: y})
	}

	for range cfg.CitizenCount {
		room := rooms[cfg.Rand.Intn(len(rooms))]
		if x, y, ok := pick(room); ok {
			claim(x, y)
			result.Citizens = append(result.Citizens, Spawn{Cell: level.Citizen, X: x, Y: y})
		}
	}

	for i := 0; i < cfg.GoodieCount && len(cfg.GoodieTable) > 0; i++ {
		room := rooms[cfg.Rand.Intn(len(rooms))]
		cell := cfg.GoodieTable[cfg.Rand.Intn(len(cfg.GoodieTable))]
		if x, y, ok := pick(room); ok {
			claim(x, y)
			result.Goodies = append(result.Goodies, Spawn{Cell: cell, X: x, Y: y})
		}
	}

	for range cfg.PitCount {
		room := placeable[cfg.Rand.Intn(len(placeable))]
		if x, y, ok := pick(room); ok {
			claim(x, y)
			result.Pits = append(result.Pits, Spawn{Cell: level.Pit, X: x, Y: y})
		}
	}

	return result
}

func affordableZombies(table []ZombieSpawnEntry, budget int) []ZombieSpawnEntry {
	var out []ZombieSpawnEntry
	for _, e := range table {
		if e.ThreatCost <= budget {
			out = append(out, e)
		}
	}
	return out
}

// cheapestEntry returns the entry with the lowest ThreatCost from a non-empty slice.
func cheapestEntry(entries []ZombieSpawnEntry) ZombieSpawnEntry {
	best := entries[0]
	for _, e := range entries[1:] {
		if e.ThreatCost < best.ThreatCost {
			best = e
		}
	}
	return best
}

// pickFreeInRoom tries up to 20 times to find an empty, unclaimed cell inside
// room. It reports false when every attempt hits something.
func pickFreeInRoom(g *level.Grid, room level.Rect, cfg *Config, occupied map[[2]int]bool) (int, int, bool) {
	const maxAttempts = 20
	for range maxAttempts {
		x, y := randomInRoom(room, cfg)
		if !occupied[[2]int{x, y}] && g.At(x, y) == level.Empty {
			return x, y, true
		}
	}
	return 0, 0, false
}

func randomInRoom(room level.Rect, cfg *Config) (int, int) {
	w := room.X2 - room.X1 + 1
	h := room.Y2 - room.Y1 + 1
	x := room.X1 + cfg.Rand.Intn(max(1, w))
	y := room.Y1 + cfg.Rand.Intn(max(1, h))
	return x, y
}
