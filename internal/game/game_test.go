package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"zombie-dash/internal/config"
	"zombie-dash/internal/level"
	"zombie-dash/internal/sim"
)

type recordSink struct{ cues []sim.Cue }

func (r *recordSink) Play(c sim.Cue) { r.cues = append(r.cues, c) }

// writeLevel writes a walled level with the player at (1,1) and the exit
// right next to it at (2,1).
func writeLevel(t *testing.T, dir string, n int, extra ...func(*level.Grid)) {
	t.Helper()
	g := level.NewBordered(level.Width, level.Height)
	g.Set(1, 1, level.PlayerStart)
	g.Set(2, 1, level.Exit)
	for _, f := range extra {
		f(g)
	}
	if err := os.WriteFile(filepath.Join(dir, level.FileName(n)), []byte(g.Format()), 0o644); err != nil {
		t.Fatalf("write level: %v", err)
	}
}

// newTestGame builds a Game on a simulation screen reading levels from dir.
func newTestGame(t *testing.T, dir string, tweak func(*config.Config)) (*Game, *recordSink) {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 30)
	t.Cleanup(ss.Fini)

	cfg := config.Default()
	cfg.Game.LevelsDir = dir
	cfg.Game.Seed = 42
	if tweak != nil {
		tweak(cfg)
	}
	sink := &recordSink{}
	g, err := New(cfg, Options{Screen: ss, Sound: sink})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, sink
}

func TestMissingFirstLevelIsLoadError(t *testing.T) {
	g, _ := newTestGame(t, t.TempDir(), nil)
	g.ledger.Score = 40
	g.handle(g.loadLevel(1))
	if g.state != StateError {
		t.Fatalf("state = %d, want StateError", g.state)
	}
	if g.runLog.FinalScore != 40 {
		t.Errorf("FinalScore = %d, want 40", g.runLog.FinalScore)
	}
	if g.err == nil {
		t.Error("load error not recorded")
	}
}

func TestBadLevelIsLoadError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, level.FileName(1)), []byte("###\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, _ := newTestGame(t, dir, nil)
	if res := g.loadLevel(1); res != sim.LevelLoadError {
		t.Errorf("loadLevel = %v, want level-load-error", res)
	}
}

func TestLevelFinishedAdvancesThenWins(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, 1)
	writeLevel(t, dir, 2)
	g, _ := newTestGame(t, dir, nil)

	g.handle(g.loadLevel(1))
	g.handle(sim.LevelFinished)
	if g.state != StatePlaying || g.ledger.Level != 2 {
		t.Fatalf("after first finish: state %d level %d, want playing on 2", g.state, g.ledger.Level)
	}
	g.ledger.Score = 2500
	g.handle(sim.LevelFinished)
	if g.state != StateVictory {
		t.Errorf("state = %d, want StateVictory when level 3 is missing", g.state)
	}
	if g.runLog.FinalScore != 2500 {
		t.Errorf("FinalScore = %d, want 2500", g.runLog.FinalScore)
	}
	if g.runLog.LevelReached != 2 {
		t.Errorf("LevelReached = %d, want 2", g.runLog.LevelReached)
	}
}

func TestMaxLevelEndsRun(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, 1)
	writeLevel(t, dir, 2)
	g, _ := newTestGame(t, dir, func(c *config.Config) { c.Game.MaxLevel = 1 })

	g.handle(g.loadLevel(1))
	g.handle(sim.LevelFinished)
	if g.state != StateVictory {
		t.Errorf("state = %d, want StateVictory", g.state)
	}
}

func TestPlayerDiedCostsALifeAndReloads(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, 1)
	g, _ := newTestGame(t, dir, func(c *config.Config) { c.Game.Lives = 2 })

	g.handle(g.loadLevel(1))
	first := g.world
	g.handle(sim.PlayerDied)
	if g.ledger.Lives != 1 {
		t.Fatalf("lives = %d, want 1", g.ledger.Lives)
	}
	if g.world == first {
		t.Error("level was not rebuilt after death")
	}
	if g.state != StatePlaying {
		t.Fatalf("state = %d, want StatePlaying", g.state)
	}

	g.ledger.Score = 750
	g.handle(sim.PlayerDied)
	if g.state != StateDead {
		t.Errorf("state = %d, want StateDead", g.state)
	}
	if g.runLog.FinalScore != 750 {
		t.Errorf("FinalScore = %d, want 750", g.runLog.FinalScore)
	}
}

func TestProceduralFallbackGeneratesMissingLevels(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, 1)
	g, _ := newTestGame(t, dir, func(c *config.Config) { c.Game.Procedural = true })

	g.handle(g.loadLevel(1))
	g.handle(sim.LevelFinished)
	if g.state != StatePlaying {
		t.Fatalf("state = %d, want StatePlaying", g.state)
	}
	if g.grid.Name != "Outskirts 2" {
		t.Errorf("level 2 name = %q, want a generated level", g.grid.Name)
	}
}

func TestWalkingOntoExitFinishesLevel(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, 1)
	writeLevel(t, dir, 2)
	g, sink := newTestGame(t, dir, nil)

	g.handle(g.loadLevel(1))
	g.input.Press(sim.ActionMoveRight)
	for i := 0; i < 10 && g.ledger.Level == 1; i++ {
		g.handle(g.world.Tick())
	}
	if g.ledger.Level != 2 {
		t.Fatalf("still on level %d after walking into the exit", g.ledger.Level)
	}
	if g.runLog.LevelsCleared != 1 {
		t.Errorf("LevelsCleared = %d, want 1", g.runLog.LevelsCleared)
	}
	if len(sink.cues) == 0 || sink.cues[len(sink.cues)-1] != sim.CueLevelFinished {
		t.Errorf("cues = %v, want level-finished last", sink.cues)
	}
}

func TestPlayTalliesAndForwardsCues(t *testing.T) {
	g, sink := newTestGame(t, t.TempDir(), nil)
	for _, c := range []sim.Cue{sim.CueCitizenSaved, sim.CueZombieBorn, sim.CueCitizenDied, sim.CueZombieDied, sim.CuePlayerFire} {
		g.Play(c)
	}
	if g.runLog.CitizensSaved != 1 || g.runLog.CitizensLost != 2 || g.runLog.ZombiesKilled != 1 {
		t.Errorf("runLog = %+v", g.runLog)
	}
	if len(sink.cues) != 5 {
		t.Errorf("forwarded %d cues, want 5", len(sink.cues))
	}
	// player-fire is too frequent to log.
	if len(g.messages) != 3 {
		t.Errorf("messages = %q, want 3", g.messages)
	}
}

func TestDrainFeedsInputAndQuits(t *testing.T) {
	g, _ := newTestGame(t, t.TempDir(), nil)

	events := make(chan tcell.Event, 4)
	events <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	if g.drain(events) {
		t.Fatal("arrow key should not quit")
	}
	if a := g.input.Poll(); a != sim.ActionMoveRight {
		t.Errorf("Poll = %v, want move right", a)
	}

	events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	if !g.drain(events) {
		t.Error("q should quit")
	}

	close(events)
	if !g.drain(events) {
		t.Error("closed screen should quit")
	}
}

func TestDrawShowsStatus(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, 1)
	g, _ := newTestGame(t, dir, nil)
	g.handle(g.loadLevel(1))
	g.draw()

	_, h := g.screen.Size()
	want := g.world.Status().String()
	for y := 0; y < h; y++ {
		got := make([]rune, 0, len(want))
		for x := 0; x < len(want); x++ {
			mainc, _, _, _ := g.screen.GetContent(x, y)
			got = append(got, mainc)
		}
		if string(got) == want {
			return
		}
	}
	t.Errorf("status line %q not found on screen", want)
}
