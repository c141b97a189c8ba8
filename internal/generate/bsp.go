package generate

import (
	"math/rand"

	"zombie-dash/internal/level"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// ZombieSpawnEntry describes one possible zombie spawn with its threat cost.
type ZombieSpawnEntry struct {
	Cell       level.Cell
	ThreatCost int
}

// Config drives procedural generation for one level.
type Config struct {
	Width, Height int
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	CorridorStyle CorridorStyle
	Level         int
	ZombieBudget  int
	ZombieTable   []ZombieSpawnEntry
	CitizenCount  int
	GoodieCount   int
	GoodieTable   []level.Cell
	PitCount      int
	Rand          *rand.Rand
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *level.Rect
}

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	maxSize := l.H
	if !splitH {
		maxSize = l.W
	}
	if maxSize <= cfg.MinLeafSize*2 {
		return false
	}

	lo := cfg.MinLeafSize
	hi := maxSize - cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	split := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: split}
		l.right = &bspLeaf{X: l.X, Y: l.Y + split, W: l.W, H: l.H - split}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: split, H: l.H}
		l.right = &bspLeaf{X: l.X + split, Y: l.Y, W: l.W - split, H: l.H}
	}
	return true
}

// createRooms recursively carves rooms inside terminal leaves.
func (l *bspLeaf) createRooms(g *level.Grid, cfg *Config) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.createRooms(g, cfg)
		}
		if l.right != nil {
			l.right.createRooms(g, cfg)
		}
		return
	}
	pad := cfg.RoomPadding
	minSize := cfg.MinRoomSize

	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)

	rw := minSize + cfg.Rand.Intn(max(1, availW-minSize+1))
	rh := minSize + cfg.Rand.Intn(max(1, availH-minSize+1))
	rw = max(min(rw, l.W-2*pad), 2)
	rh = max(min(rh, l.H-2*pad), 2)

	rx := l.X + pad + cfg.Rand.Intn(max(1, l.W-rw-2*pad+1))
	ry := l.Y + pad + cfg.Rand.Intn(max(1, l.H-rh-2*pad+1))

	// Keep the outer ring solid.
	rx = max(rx, 1)
	ry = max(ry, 1)
	if rx+rw >= g.Width {
		rw = g.Width - rx - 1
	}
	if ry+rh >= g.Height {
		rh = g.Height - ry - 1
	}
	if rw < 2 || rh < 2 {
		return
	}

	room := level.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			g.Set(x, y, level.Empty)
		}
	}
	g.Rooms = append(g.Rooms, room)
}

// getRoom returns a room from this leaf or its children.
func (l *bspLeaf) getRoom() *level.Rect {
	if l.room != nil {
		return l.room
	}
	var lRoom, rRoom *level.Rect
	if l.left != nil {
		lRoom = l.left.getRoom()
	}
	if l.right != nil {
		rRoom = l.right.getRoom()
	}
	if lRoom == nil {
		return rRoom
	}
	return lRoom
}

// connectChildren carves corridors between the two children of a split leaf.
func (l *bspLeaf) connectChildren(g *level.Grid, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(g, cfg)
	l.right.connectChildren(g, cfg)

	lRoom := l.left.getRoom()
	rRoom := l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lCX, lCY := lRoom.Center()
	rCX, rCY := rRoom.Center()
	carveCorridor(g, lCX, lCY, rCX, rCY, cfg)
}

// Generate runs BSP generation and returns a populated level. The player
// starts in the first room and the exit sits in the last one.
func Generate(cfg *Config) *level.Grid {
	g := level.NewWalled(cfg.Width, cfg.Height)

	root := &bspLeaf{X: 0, Y: 0, W: cfg.Width, H: cfg.Height}

	leaves := []*bspLeaf{root}
	splitAny := true
	for splitAny {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize ||
				cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.createRooms(g, cfg)
	root.connectChildren(g, cfg)

	if len(g.Rooms) == 0 {
		// Degenerate split: fall back to one open room.
		room := level.Rect{X1: 1, Y1: 1, X2: cfg.Width - 2, Y2: cfg.Height - 2}
		for y := room.Y1; y <= room.Y2; y++ {
			for x := room.X1; x <= room.X2; x++ {
				g.Set(x, y, level.Empty)
			}
		}
		g.Rooms = append(g.Rooms, room)
	}

	first := g.Rooms[0]
	px, py := first.Center()
	g.Set(px, py, level.PlayerStart)

	last := g.Rooms[len(g.Rooms)-1]
	ex, ey := last.Center()
	if len(g.Rooms) == 1 {
		ex, ey = last.X2, last.Y2
	}
	g.Set(ex, ey, level.Exit)

	for _, s := range Populate(g, cfg).All() {
		g.Set(s.X, s.Y, s.Cell)
	}
	return g
}
