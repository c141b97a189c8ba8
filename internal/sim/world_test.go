package sim

import (
	"strings"
	"testing"

	"zombie-dash/internal/component"
	"zombie-dash/internal/config"
	"zombie-dash/internal/factory"
	"zombie-dash/internal/level"
)

var testLevel = []string{
	"################",
	"#.............X#",
	"#..............#",
	"#..............#",
	"#....c.........#",
	"#..............#",
	"#..........D...#",
	"#..............#",
	"#...c....S.....#",
	"#..............#",
	"#..v..g..l.....#",
	"#..............#",
	"#.......O......#",
	"#..............#",
	"#@.............#",
	"################",
}

func TestNewWorldBootstrap(t *testing.T) {
	g, err := level.ParseLines(testLevel)
	if err != nil {
		t.Fatal(err)
	}
	w := NewWorld(g, config.DefaultSim(), Options{})

	if got := pos(w, w.Player); got != (component.Position{X: 16, Y: 16}) {
		t.Errorf("player at %v; want (16,16)", got)
	}
	if w.Citizens() != 2 {
		t.Errorf("citizens = %d; want 2", w.Citizens())
	}
	cases := []struct {
		kind component.Kind
		want int
	}{
		{component.KindWall, 60},
		{component.KindCitizen, 2},
		{component.KindDumbZombie, 1},
		{component.KindSmartZombie, 1},
		{component.KindExit, 1},
		{component.KindPit, 1},
		{component.KindVaccineGoodie, 1},
		{component.KindGasCanGoodie, 1},
		{component.KindLandmineGoodie, 1},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := countKind(w, tc.kind); got != tc.want {
				t.Errorf("%d of %s; want %d", got, tc.kind, tc.want)
			}
		})
	}
	// Top row of the text is the highest y.
	for _, id := range w.ECS.Query(component.CKind) {
		if w.kindOf(id) == component.KindExit {
			if p := pos(w, id); p != (component.Position{X: 14 * 16, Y: 14 * 16}) {
				t.Errorf("exit at %v", p)
			}
		}
	}
}

func TestNewWorldPanicsWithoutPlayer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a level without a player")
		}
	}()
	NewWorld(level.NewWalled(level.Width, level.Height), config.DefaultSim(), Options{})
}

func TestSpawnsWaitForNextTick(t *testing.T) {
	w, _ := newTestWorld(1)
	placePlayer(w, 100, 100)
	z := placeZombie(w, 116, 100, false)
	setInventory(w, component.Inventory{Flames: 1})
	in := scriptInput{ActionUseFlame}
	w.input = &in

	if r := w.Tick(); r != Continue {
		t.Fatalf("tick 1 = %v", r)
	}
	if !w.ECS.Alive(z) {
		t.Fatal("flame acted during the tick it was spawned in")
	}
	if r := w.Tick(); r != Continue {
		t.Fatalf("tick 2 = %v", r)
	}
	if w.ECS.Exists(z) {
		t.Error("zombie should have burnt on the tick after the flame appeared")
	}
	if w.Ledger.Score != 1000 {
		t.Errorf("score = %d; want 1000", w.Ledger.Score)
	}
}

func TestTickLeavesNoDeadEntities(t *testing.T) {
	w, _ := newTestWorld(2)
	placePlayer(w, 16, 16)
	// A dumb zombie walking into a pit, and a goodie under a flame.
	placeZombie(w, 100, 100, false)
	factory.NewPit(w.ECS, 100, 100)
	factory.NewGoodie(w.ECS, component.KindGasCanGoodie, 200, 200)
	factory.NewFlame(w.ECS, 200, 200, component.DirUp, 5)

	if r := w.Tick(); r != Continue {
		t.Fatalf("tick = %v", r)
	}
	for _, id := range w.ECS.Entities() {
		if !w.ECS.Alive(id) {
			t.Errorf("entity %d is dead but still stored after the tick", id)
		}
	}
	if countKind(w, component.KindDumbZombie) != 0 || countKind(w, component.KindGasCanGoodie) != 0 {
		t.Error("pit and flame victims should be gone")
	}
}

func TestTickStopsWhenPlayerDies(t *testing.T) {
	w, sink := newTestWorld(3)
	placePlayer(w, 100, 100)
	factory.NewPit(w.ECS, 100, 100)
	z := placeZombie(w, 200, 200, false)

	if r := w.Tick(); r != PlayerDied {
		t.Fatalf("tick = %v; want player-died", r)
	}
	if sink.count(CuePlayerDied) != 1 {
		t.Error("expected the player-died cue")
	}
	if pos(w, z) != (component.Position{X: 200, Y: 200}) {
		t.Error("entities after the fatal one must not act")
	}
	if p := w.ECS.Get(z, component.CPlan).(component.Plan); p.Steps != 0 {
		t.Error("zombie planned although the tick was over")
	}
}

func TestAlternateTurns(t *testing.T) {
	cfg := config.DefaultSim()
	cfg.AlternateTurns = true
	w, _ := newTestWorldWith(cfg, 4)
	placePlayer(w, 160, 100)
	c := placeCitizen(w, 100, 100)

	var xs []int
	for range 4 {
		w.Tick()
		xs = append(xs, pos(w, c).X)
	}
	want := []int{102, 102, 104, 104}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("citizen x over ticks = %v; want %v", xs, want)
		}
	}
}

func TestEveryTurnByDefault(t *testing.T) {
	w, _ := newTestWorld(4)
	placePlayer(w, 160, 100)
	c := placeCitizen(w, 100, 100)
	for range 3 {
		w.Tick()
	}
	if got := pos(w, c).X; got != 106 {
		t.Errorf("citizen x = %d after 3 ticks; want 106", got)
	}
}

func TestDeadEntitiesLeaveQueriesAtOnce(t *testing.T) {
	w, _ := newTestWorld(5)
	wall := factory.NewWall(w.ECS, 116, 100)
	if len(w.geo.Blocked(w.ECS, 110, 100, 0)) != 1 {
		t.Fatal("wall should block")
	}
	w.ECS.MarkDead(wall)
	if len(w.geo.Blocked(w.ECS, 110, 100, 0)) != 0 {
		t.Error("a dead wall still blocks")
	}
	if !w.ECS.Exists(wall) {
		t.Error("dead entity should stay stored until purged")
	}
}

func TestStatusLine(t *testing.T) {
	w, _ := newTestWorld(6)
	placePlayer(w, 16, 16)
	w.Ledger = &Ledger{Score: 1550, Lives: 2, Level: 4}
	setInventory(w, component.Inventory{Vaccines: 1, Flames: 5, Mines: 2})
	w.Infect(w.Player)
	w.Tick()

	got := w.Status().String()
	want := "Score: 001550  Level: 4  Lives: 2  Vaccines: 1  Flames: 5  Mines: 2  Infected: 1"
	if got != want {
		t.Errorf("status = %q\nwant     %q", got, want)
	}
	if !strings.HasPrefix(Status{}.String(), "Score: 000000  Level: 0") {
		t.Error("zero status should pad the score")
	}
}
