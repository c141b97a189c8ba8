package generate

import (
	"fmt"
	"math/rand"

	"zombie-dash/internal/level"
)

// ForLevel returns the generation settings for level n. Later levels get more
// zombies and fewer goodies.
func ForLevel(n int, rng *rand.Rand) *Config {
	return &Config{
		Width:         level.Width,
		Height:        level.Height,
		MinLeafSize:   5,
		MaxLeafSize:   8,
		MinRoomSize:   3,
		RoomPadding:   1,
		CorridorStyle: CorridorStyle(rng.Intn(3)),
		Level:         n,
		ZombieBudget:  2 + n,
		ZombieTable: []ZombieSpawnEntry{
			{Cell: level.DumbZombie, ThreatCost: 1},
			{Cell: level.SmartZombie, ThreatCost: 2},
		},
		CitizenCount: min(1+n/2, 6),
		GoodieCount:  max(3-n/3, 1),
		GoodieTable:  []level.Cell{level.VaccineGoodie, level.GasCanGoodie, level.LandmineGoodie},
		PitCount:     min(n/2, 3),
		Rand:         rng,
	}
}

// Fallback returns a level source that generates level n from seed+n, so a
// given seed always yields the same run.
func Fallback(seed int64) func(n int) (*level.Grid, error) {
	return func(n int) (*level.Grid, error) {
		rng := rand.New(rand.NewSource(seed + int64(n)))
		g := Generate(ForLevel(n, rng))
		g.Name = fmt.Sprintf("Outskirts %d", n)
		if err := g.Validate(); err != nil {
			return nil, err
		}
		return g, nil
	}
}
