package sim

import (
	"testing"

	"zombie-dash/internal/component"
	"zombie-dash/internal/factory"
)

func TestExitWaitsForCitizens(t *testing.T) {
	w, sink := newTestWorld(1)
	placePlayer(w, 100, 100)
	factory.NewExit(w.ECS, 100, 100)
	c := placeCitizen(w, 200, 200) // out of seek range, no zombies: stays put

	for range 3 {
		if r := w.Tick(); r != Continue {
			t.Fatalf("tick = %v with a citizen left", r)
		}
	}
	if w.Finished() {
		t.Fatal("level finished with a citizen left")
	}

	w.Kill(c)
	if r := w.Tick(); r != LevelFinished {
		t.Fatalf("tick = %v; want level-finished", r)
	}
	if sink.count(CueLevelFinished) != 1 {
		t.Error("expected the level-finished cue")
	}
}

func TestExitSavesCitizen(t *testing.T) {
	w, sink := newTestWorld(1)
	placePlayer(w, 16, 16)
	exit := factory.NewExit(w.ECS, 100, 100)
	c := placeCitizen(w, 100, 100)

	w.activate(exit)

	if w.ECS.Alive(c) {
		t.Error("citizen should have left through the exit")
	}
	if w.Citizens() != 0 {
		t.Errorf("citizens = %d; want 0", w.Citizens())
	}
	if w.Ledger.Score != 500 {
		t.Errorf("score = %d; want 500", w.Ledger.Score)
	}
	if sink.count(CueCitizenSaved) != 1 || sink.count(CueCitizenDied) != 0 {
		t.Errorf("cues = %v", sink.cues)
	}
}

func TestRescueNeedsSavesCitizens(t *testing.T) {
	tests := []struct {
		name  string
		caps  component.Caps
		saved bool
	}{
		{"exit", factory.CapsOf(component.KindExit), true},
		{"without the capability", component.CapBlocksFire, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(1)
			placePlayer(w, 16, 16)
			exit := factory.NewExit(w.ECS, 100, 100)
			w.ECS.Add(exit, tt.caps)
			c := placeCitizen(w, 100, 100)

			w.activate(exit)

			if saved := !w.ECS.Alive(c); saved != tt.saved {
				t.Errorf("citizen saved = %v; want %v", saved, tt.saved)
			}
		})
	}
}

func TestLandmineInertUntilArmed(t *testing.T) {
	w, sink := newTestWorld(1)
	placePlayer(w, 16, 16)
	mine := factory.NewLandmine(w.ECS, 100, 100, 3)
	placeCitizen(w, 100, 100)

	for i := 1; i <= 2; i++ {
		w.activate(mine)
		if !w.ECS.Alive(mine) {
			t.Fatalf("landmine fired after %d ticks of a 3 tick countdown", i)
		}
	}
	w.activate(mine)
	if w.ECS.Alive(mine) {
		t.Fatal("armed landmine ignored a citizen standing on it")
	}
	if sink.count(CueLandmineExploded) != 1 {
		t.Error("expected one explosion")
	}
}

func TestArmedLandmineFiresOnAnyTrigger(t *testing.T) {
	cases := []struct {
		name  string
		place func(w *World)
		fires bool
	}{
		{"citizen", func(w *World) { placeCitizen(w, 100, 100) }, true},
		{"zombie", func(w *World) { placeZombie(w, 100, 100, false) }, true},
		{"flame", func(w *World) { factory.NewFlame(w.ECS, 100, 100, component.DirUp, 2) }, true},
		{"goodie", func(w *World) { factory.NewGoodie(w.ECS, component.KindVaccineGoodie, 100, 100) }, false},
		{"wall", func(w *World) { factory.NewWall(w.ECS, 100, 100) }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(1)
			placePlayer(w, 16, 16)
			mine := factory.NewLandmine(w.ECS, 100, 100, 0)
			tc.place(w)
			w.activate(mine)
			if fired := !w.ECS.Alive(mine); fired != tc.fires {
				t.Errorf("fired = %v; want %v", fired, tc.fires)
			}
		})
	}
}

func TestLandmineExplosion(t *testing.T) {
	w, _ := newTestWorld(1)
	placePlayer(w, 16, 16)
	mine := factory.NewLandmine(w.ECS, 100, 100, 0)
	factory.NewWall(w.ECS, 116, 100) // blocks the east flame

	w.Kill(mine)

	if n := countKind(w, component.KindFlame); n != 8 {
		t.Errorf("flames = %d; want 8 with one neighbour walled", n)
	}
	if n := countKind(w, component.KindPit); n != 1 {
		t.Errorf("pits = %d; want 1", n)
	}
	for _, id := range w.ECS.Query(component.CKind) {
		if w.kindOf(id) == component.KindFlame && pos(w, id) == (component.Position{X: 116, Y: 100}) {
			t.Error("flame spawned inside the wall")
		}
	}
}

func TestFlameContacts(t *testing.T) {
	cases := []struct {
		name   string
		kind   component.Kind
		place  func(w *World)
		killed bool
	}{
		{"dumb zombie", component.KindDumbZombie, func(w *World) { placeZombie(w, 100, 100, false) }, true},
		{"citizen", component.KindCitizen, func(w *World) { placeCitizen(w, 100, 100) }, true},
		{"goodie", component.KindGasCanGoodie, func(w *World) { factory.NewGoodie(w.ECS, component.KindGasCanGoodie, 100, 100) }, true},
		{"wall", component.KindWall, func(w *World) { factory.NewWall(w.ECS, 100, 100) }, false},
		{"exit", component.KindExit, func(w *World) { factory.NewExit(w.ECS, 100, 100) }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(1)
			placePlayer(w, 16, 16)
			tc.place(w)
			flame := factory.NewFlame(w.ECS, 100, 100, component.DirUp, 2)
			w.activate(flame)
			if gone := countKind(w, tc.kind) == 0; gone != tc.killed {
				t.Errorf("killed = %v; want %v", gone, tc.killed)
			}
		})
	}
}

func TestFlameChainsLandmines(t *testing.T) {
	w, sink := newTestWorld(1)
	placePlayer(w, 16, 16)
	mine := factory.NewLandmine(w.ECS, 100, 100, 30)
	flame := factory.NewFlame(w.ECS, 100, 100, component.DirUp, 2)

	w.activate(flame)
	if w.ECS.Alive(mine) {
		t.Fatal("flame should set off even an unarmed landmine")
	}
	if sink.count(CueLandmineExploded) != 1 {
		t.Error("expected an explosion")
	}
}

func TestFlameBurnsOut(t *testing.T) {
	w, _ := newTestWorld(1)
	placePlayer(w, 16, 16)
	flame := factory.NewFlame(w.ECS, 100, 100, component.DirUp, 2)
	w.activate(flame)
	if !w.ECS.Alive(flame) {
		t.Fatal("flame died a tick early")
	}
	w.activate(flame)
	if w.ECS.Alive(flame) {
		t.Error("flame outlived its lifetime")
	}
}

func TestVomitInfectsHumansOnly(t *testing.T) {
	w, sink := newTestWorld(1)
	placePlayer(w, 16, 16)
	c := placeCitizen(w, 100, 100)
	z := placeZombie(w, 104, 100, false)
	vomit := factory.NewVomit(w.ECS, 100, 100, component.DirRight, 2)

	w.activate(vomit)

	if !w.infection(c).Infected {
		t.Error("citizen should be infected")
	}
	if w.ECS.Has(z, component.CInfection) {
		t.Error("zombies cannot be infected")
	}
	if sink.count(CueCitizenInfected) != 1 {
		t.Error("expected the citizen-infected cue")
	}
}

func TestPitKillsHazardVictims(t *testing.T) {
	w, _ := newTestWorld(1)
	placePlayer(w, 16, 16)
	z := placeZombie(w, 100, 100, true)
	pit := factory.NewPit(w.ECS, 100, 100)
	w.activate(pit)
	if w.ECS.Alive(z) {
		t.Error("zombie should fall in")
	}
	if w.Ledger.Score != 2000 {
		t.Errorf("score = %d; want 2000 for a smart zombie", w.Ledger.Score)
	}
}

func TestGoodiesGrantCharges(t *testing.T) {
	cases := []struct {
		kind component.Kind
		want component.Inventory
	}{
		{component.KindVaccineGoodie, component.Inventory{Vaccines: 1}},
		{component.KindGasCanGoodie, component.Inventory{Flames: 5}},
		{component.KindLandmineGoodie, component.Inventory{Mines: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			w, sink := newTestWorld(1)
			placePlayer(w, 100, 100)
			goodie := factory.NewGoodie(w.ECS, tc.kind, 104, 100)
			w.activate(goodie)
			if w.ECS.Alive(goodie) {
				t.Error("goodie should be picked up")
			}
			if got := w.inventory(); got != tc.want {
				t.Errorf("inventory = %+v; want %+v", got, tc.want)
			}
			if w.Ledger.Score != 50 || sink.count(CueGoodieCollected) != 1 {
				t.Errorf("score = %d, cues = %v", w.Ledger.Score, sink.cues)
			}
		})
	}
}

func TestGoodieIgnoresCitizens(t *testing.T) {
	w, _ := newTestWorld(1)
	placePlayer(w, 16, 16)
	placeCitizen(w, 100, 100)
	goodie := factory.NewGoodie(w.ECS, component.KindVaccineGoodie, 100, 100)
	w.activate(goodie)
	if !w.ECS.Alive(goodie) {
		t.Error("only the player picks up goodies")
	}
}
