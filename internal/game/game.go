package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"zombie-dash/internal/config"
	"zombie-dash/internal/level"
	"zombie-dash/internal/render"
	"zombie-dash/internal/sim"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateDead
	StateVictory
	StateError
)

// Options carries the optional collaborators of a Game.
type Options struct {
	Screen tcell.Screen // nil opens the terminal
	Sound  sim.Sink
	Scorer sim.Scorer
	Log    *zap.Logger
}

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      *config.Config
	loader   *level.Loader
	world    *sim.World
	grid     *level.Grid
	ledger   sim.Ledger
	rng      *rand.Rand
	input    *keyInput
	sound    sim.Sink
	scorer   sim.Scorer
	log      *zap.Logger
	state    GameState
	messages []string
	runLog   RunLog
	err      error
}

// New creates and returns a Game with screen initialized.
func New(cfg *config.Config, opts Options) (*Game, error) {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	loader, err := newLoader(cfg.Game, seed)
	if err != nil {
		return nil, err
	}

	screen := opts.Screen
	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return nil, fmt.Errorf("init screen: %w", err)
		}
	}

	hold := 1
	if cfg.Sim.PlayerStep > 0 {
		hold = cfg.Sim.SpriteSize / cfg.Sim.PlayerStep
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, 1),
		cfg:      cfg,
		loader:   loader,
		rng:      rand.New(rand.NewSource(seed)),
		input:    newKeyInput(hold),
		sound:    opts.Sound,
		scorer:   opts.Scorer,
		log:      log,
	}
	g.resetForRun()
	log.Info("game ready", zap.Int64("seed", seed), zap.String("levels", cfg.Game.LevelsDir))
	return g, nil
}

// resetForRun clears all per-run state in preparation for a fresh start.
func (g *Game) resetForRun() {
	g.ledger = sim.Ledger{Lives: g.cfg.Game.Lives, Level: 1}
	g.state = StatePlaying
	g.messages = nil
	g.world = nil
	g.grid = nil
	g.err = nil
	g.runLog = RunLog{}
}

// Run plays until the player quits. The error is the level load failure
// that stopped a run, if any.
func (g *Game) Run() error {
	defer g.screen.Fini()
	events := g.pollEvents()

	for {
		g.resetForRun()
		g.addMessage("Arrows or hjkl move. Space burns, Tab mines, Enter vaccinates. Q quits.")
		g.handle(g.loadLevel(1))

		if g.play(events) {
			return nil
		}
		if g.state == StateError {
			return g.err
		}
		if !g.showEndScreen(events) {
			return nil
		}
	}
}

// pollEvents reads the screen on its own goroutine. The channel closes when
// the screen does.
func (g *Game) pollEvents() <-chan tcell.Event {
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()
	return eventCh
}

// play runs ticks until the run ends. It reports whether the player quit.
func (g *Game) play(events <-chan tcell.Event) bool {
	ticker := time.NewTicker(g.cfg.Game.TickRate)
	defer ticker.Stop()

	for g.state == StatePlaying {
		g.draw()
		<-ticker.C
		if g.drain(events) {
			return true
		}
		g.runLog.TicksPlayed++
		g.handle(g.world.Tick())
	}
	return false
}

// drain handles every event queued since the last tick without blocking.
// It reports whether the player asked to quit.
func (g *Game) drain(events <-chan tcell.Event) bool {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return true // screen closed
			}
			if g.handleEvent(ev) {
				return true
			}
		default:
			return false
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		action, quit := keyToAction(ev)
		if quit {
			return true
		}
		g.input.Press(action)
	}
	return false
}

// handle advances the lives and levels state machine by one tick result.
// Every result that ends the run falls through to record the final score.
func (g *Game) handle(res sim.Result) {
	switch res {
	case sim.PlayerDied:
		g.ledger.Lives--
		if g.ledger.Lives <= 0 {
			g.log.Info("game over", zap.Int("score", g.ledger.Score), zap.Int("level", g.ledger.Level))
			g.state = StateDead
		} else {
			g.addMessage(fmt.Sprintf("%d lives left. Try again.", g.ledger.Lives))
			g.handle(g.loadLevel(g.ledger.Level))
		}
	case sim.LevelFinished:
		g.handle(g.loadLevel(g.ledger.Level + 1))
	case sim.GameWon:
		g.log.Info("game won", zap.Int("score", g.ledger.Score))
		g.state = StateVictory
	case sim.LevelLoadError:
		g.state = StateError
	}
	if g.state != StatePlaying {
		g.runLog.FinalScore = g.ledger.Score
	}
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.world)
	g.renderer.DrawHUD(g.world.Status(), g.grid.Name, g.world.Citizens(), g.messages)
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > 50 {
		g.messages = g.messages[len(g.messages)-50:]
	}
}

func (g *Game) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// showEndScreen shows the run summary. It returns true to play again.
func (g *Game) showEndScreen(events <-chan tcell.Event) bool {
	won := g.state == StateVictory

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		// label prints a left-aligned key at column 2 and value at column 22.
		label := func(y int, l string, v int) {
			g.putText(2, y, l, dim)
			g.putText(22, y, fmt.Sprintf("%d", v), white)
		}

		y := 1
		sep(y)
		y += 2

		if won {
			g.putText(2, y, "THE CITY IS QUIET", gold)
			badge := "[VICTORY]"
			g.putText(sw-len(badge)-1, y, badge, green)
		} else {
			g.putText(2, y, "THE DEAD WALK ON", gold)
			badge := "[DEFEAT]"
			g.putText(sw-len(badge)-1, y, badge, red)
		}
		y += 2

		label(y, "Final Score:", g.runLog.FinalScore)
		y++
		label(y, "Level Reached:", g.runLog.LevelReached)
		y++
		label(y, "Levels Cleared:", g.runLog.LevelsCleared)
		y++
		label(y, "Ticks Survived:", g.runLog.TicksPlayed)
		y += 2

		label(y, "Citizens Saved:", g.runLog.CitizensSaved)
		y++
		label(y, "Citizens Lost:", g.runLog.CitizensLost)
		y++
		label(y, "Zombies Killed:", g.runLog.ZombiesKilled)
		y++
		label(y, "Mines Exploded:", g.runLog.MinesExploded)
		y++
		label(y, "Goodies Taken:", g.runLog.GoodiesTaken)
		y++
		label(y, "Deaths:", g.runLog.Deaths)
		y += 2

		sep(y)
		y += 2

		g.putText(2, y, "[R] Try Again", green)
		g.putText(18, y, "[Q] Quit", red)

		g.screen.Show()

		ev, ok := <-events
		if !ok {
			return false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			continue // redraw on resize
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape:
				return false
			}
		}
	}
}
