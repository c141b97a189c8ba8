package generate

import (
	"math/rand"
	"testing"

	"zombie-dash/internal/level"
)

func defaultTestConfig(seed int64) *Config {
	return ForLevel(3, rand.New(rand.NewSource(seed)))
}

// TestGenerateAllRoomsConnected verifies that every walkable cell is reachable
// from the player start.
func TestGenerateAllRoomsConnected(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := Generate(defaultTestConfig(seed))
		reach := level.Reachable(g)

		walkable := 0
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.IsWalkable(x, y) {
					walkable++
				}
			}
		}
		if reach.Size() != walkable {
			t.Errorf("seed=%d: %d of %d walkable cells reachable", seed, reach.Size(), walkable)
		}
	}
}

func TestGenerateProducesValidLevels(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := Generate(defaultTestConfig(seed))
		if err := g.Validate(); err != nil {
			t.Fatalf("seed=%d: %v\n%s", seed, err, g.Format())
		}
		if g.Count(level.Exit) != 1 {
			t.Errorf("seed=%d: expected one exit\n%s", seed, g.Format())
		}
		if problems := level.Lint(g); len(problems) != 0 {
			t.Errorf("seed=%d: lint problems %v\n%s", seed, problems, g.Format())
		}
	}
}

// TestGenerateRoomsDoNotOverlap verifies that no two rooms share interior cells.
func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := Generate(defaultTestConfig(seed))
		rooms := g.Rooms
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Errorf("seed=%d: room %d %v overlaps room %d %v",
						seed, i, rooms[i], j, rooms[j])
				}
			}
		}
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	src := Fallback(99)
	a, err := src(4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := src(4)
	if err != nil {
		t.Fatal(err)
	}
	if a.Format() != b.Format() {
		t.Error("same seed and level should generate the same grid")
	}
	if a.Name != "Outskirts 4" {
		t.Errorf("name = %q", a.Name)
	}
}
