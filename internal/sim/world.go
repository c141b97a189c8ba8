package sim

import (
	"math/rand"

	"go.uber.org/zap"

	"zombie-dash/internal/component"
	"zombie-dash/internal/config"
	"zombie-dash/internal/ecs"
	"zombie-dash/internal/factory"
	"zombie-dash/internal/level"
	"zombie-dash/internal/system"
)

// Options carries the collaborators of a World. Nil fields get harmless
// defaults: no input, no sound, the stock point table, a nop logger.
type Options struct {
	Rand   *rand.Rand
	Input  Input
	Sink   Sink
	Scorer Scorer
	Ledger *Ledger
	Log    *zap.Logger
}

// World is one level in play. It owns every entity and runs the ticks.
type World struct {
	ECS    *ecs.World
	Player ecs.EntityID
	Ledger *Ledger

	cfg    config.SimConfig
	geo    system.Geometry
	rng    *rand.Rand
	input  Input
	sink   Sink
	scorer Scorer
	log    *zap.Logger

	citizens int
	finished bool
	ticks    int
}

// NewWorld builds the starting entities of g. It panics if g has no player
// start, which level.Validate rules out.
func NewWorld(g *level.Grid, cfg config.SimConfig, opts Options) *World {
	w := newWorld(cfg, opts)
	w.bootstrap(g)
	if w.Player == ecs.NilEntity {
		panic("sim: level has no player start")
	}
	w.log.Debug("level built",
		zap.String("level", g.Name),
		zap.Int("entities", w.ECS.Len()),
		zap.Int("citizens", w.citizens))
	return w
}

func newWorld(cfg config.SimConfig, opts Options) *World {
	w := &World{
		ECS:    ecs.NewWorld(),
		Ledger: opts.Ledger,
		cfg:    cfg,
		geo: system.Geometry{
			Sprite:     cfg.SpriteSize,
			Radius:     cfg.OverlapRadius,
			ViewHeight: cfg.ViewHeight,
		},
		rng:    opts.Rand,
		input:  opts.Input,
		sink:   opts.Sink,
		scorer: opts.Scorer,
		log:    opts.Log,
	}
	if w.Ledger == nil {
		w.Ledger = &Ledger{Lives: 3, Level: 1}
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(1))
	}
	if w.input == nil {
		w.input = NoInput
	}
	if w.sink == nil {
		w.sink = nopSink{}
	}
	if w.scorer == nil {
		w.scorer = DefaultPoints
	}
	if w.log == nil {
		w.log = zap.NewNop()
	}
	return w
}

// bootstrap creates one entity per populated cell. Cell (x, y) becomes the
// pixel anchor (x*sprite, y*sprite).
func (w *World) bootstrap(g *level.Grid) {
	s := w.cfg.SpriteSize
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			px, py := x*s, y*s
			switch g.At(x, y) {
			case level.Wall:
				factory.NewWall(w.ECS, px, py)
			case level.PlayerStart:
				w.Player = factory.NewPlayer(w.ECS, px, py, w.cfg.PlayerStep)
			case level.Citizen:
				factory.NewCitizen(w.ECS, px, py, w.cfg.CitizenStep)
				w.citizens++
			case level.DumbZombie:
				factory.NewZombie(w.ECS, px, py, w.cfg.ZombieStep, false)
			case level.SmartZombie:
				factory.NewZombie(w.ECS, px, py, w.cfg.ZombieStep, true)
			case level.Exit:
				factory.NewExit(w.ECS, px, py)
			case level.Pit:
				factory.NewPit(w.ECS, px, py)
			case level.VaccineGoodie:
				factory.NewGoodie(w.ECS, component.KindVaccineGoodie, px, py)
			case level.GasCanGoodie:
				factory.NewGoodie(w.ECS, component.KindGasCanGoodie, px, py)
			case level.LandmineGoodie:
				factory.NewGoodie(w.ECS, component.KindLandmineGoodie, px, py)
			}
		}
	}
}

// Tick runs one turn: the player first, then every entity that existed when
// the tick began, in creation order. Entities spawned during the tick wait
// for the next one. The tick stops as soon as the player dies or the level
// is finished.
func (w *World) Tick() Result {
	w.ticks++
	if !w.cfg.AlternateTurns {
		w.clearParalysis()
	}
	order := w.ECS.Entities()

	w.actPlayer()
	if !w.ECS.Alive(w.Player) {
		return PlayerDied
	}

	for _, id := range order {
		if id == w.Player || !w.ECS.Exists(id) {
			continue
		}
		if !w.ECS.Alive(id) {
			w.ECS.DestroyEntity(id)
			continue
		}
		w.act(id)
		if !w.ECS.Alive(w.Player) {
			return PlayerDied
		}
		if w.finished {
			w.sink.Play(CueLevelFinished)
			w.log.Info("level finished", zap.Int("level", w.Ledger.Level), zap.Int("ticks", w.ticks))
			return LevelFinished
		}
	}

	// Entities killed after their own turn are still around.
	w.ECS.Purge()
	return Continue
}

// act runs one non-player entity's turn.
func (w *World) act(id ecs.EntityID) {
	switch w.kindOf(id) {
	case component.KindCitizen:
		w.actCitizen(id)
	case component.KindDumbZombie, component.KindSmartZombie:
		w.actZombie(id)
	default:
		if w.ECS.Has(id, component.CActivator) {
			w.activate(id)
		}
	}
}

func (w *World) clearParalysis() {
	for _, id := range w.ECS.Query(component.CAgent) {
		a := w.ECS.Get(id, component.CAgent).(component.Agent)
		if a.Paralyzed {
			a.Paralyzed = false
			w.ECS.Add(id, a)
		}
	}
}

// Citizens returns how many citizens still need rescuing.
func (w *World) Citizens() int { return w.citizens }

// Finished reports whether the player has reached the exit with nobody left.
func (w *World) Finished() bool { return w.finished }

// Ticks returns how many ticks have run.
func (w *World) Ticks() int { return w.ticks }

// Geometry returns the spatial settings in use.
func (w *World) Geometry() system.Geometry { return w.geo }

// Status reports the current status line values.
func (w *World) Status() Status {
	inv := w.inventory()
	return Status{
		Score:    w.Ledger.Score,
		Level:    w.Ledger.Level,
		Lives:    w.Ledger.Lives,
		Vaccines: inv.Vaccines,
		Flames:   inv.Flames,
		Mines:    inv.Mines,
		Infected: w.infection(w.Player).Count,
	}
}

func (w *World) kindOf(id ecs.EntityID) component.Kind {
	return w.ECS.Get(id, component.CKind).(component.Kind)
}

func (w *World) inventory() component.Inventory {
	if c := w.ECS.Get(w.Player, component.CInventory); c != nil {
		return c.(component.Inventory)
	}
	return component.Inventory{}
}

func (w *World) infection(id ecs.EntityID) component.Infection {
	if c := w.ECS.Get(id, component.CInfection); c != nil {
		return c.(component.Infection)
	}
	return component.Infection{}
}

func (w *World) award(e Event) {
	w.Ledger.Score += w.scorer.Points(e)
}

// sprite is the length of one cell in pixels.
func (w *World) sprite() int { return w.cfg.SpriteSize }
