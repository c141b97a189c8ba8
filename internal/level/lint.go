package level

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

type point struct{ X, Y int }

// Reachable returns the walkable cells connected to the player start.
func Reachable(g *Grid) mapset.Set[point] {
	visited := mapset.New[point]()
	sx, sy, ok := g.Find(PlayerStart)
	if !ok {
		return visited
	}
	queue := []point{{sx, sy}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited.Has(cur) || !g.IsWalkable(cur.X, cur.Y) {
			continue
		}
		visited.Put(cur)
		for _, d := range [4]point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := point{cur.X + d.X, cur.Y + d.Y}
			if !visited.Has(n) && g.IsWalkable(n.X, n.Y) {
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Lint reports gameplay problems a structurally valid grid can still have:
// no exit, or an exit or citizen the player cannot walk to.
func Lint(g *Grid) []string {
	var problems []string
	if g.Count(Exit) == 0 {
		problems = append(problems, "level has no exit")
	}
	reach := Reachable(g)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.At(x, y)
			if c != Exit && c != Citizen {
				continue
			}
			if !reach.Has(point{x, y}) {
				problems = append(problems, fmt.Sprintf("%s at column %d row %d is unreachable", c, x+1, g.Height-y))
			}
		}
	}
	return problems
}
