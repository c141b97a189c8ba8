package game

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"zombie-dash/assets"
	"zombie-dash/internal/config"
	"zombie-dash/internal/generate"
	"zombie-dash/internal/level"
	"zombie-dash/internal/sim"
)

// newLoader opens the levels directory. With procedural play on, levels that
// have no file are generated from seed.
func newLoader(cfg config.GameConfig, seed int64) (*level.Loader, error) {
	l, err := level.NewLoader(cfg.LevelsDir)
	if err != nil {
		return nil, fmt.Errorf("levels %s: %w", cfg.LevelsDir, err)
	}
	if cfg.Procedural {
		l.Fallback = generate.Fallback(seed)
	}
	return l, nil
}

// loadLevel builds level n and makes it the one in play. Running out of
// levels after the first is a win; anything else that stops a load is an
// error.
func (g *Game) loadLevel(n int) sim.Result {
	if n > g.cfg.Game.MaxLevel {
		return sim.GameWon
	}
	grid, err := g.loader.Load(n)
	switch {
	case errors.Is(err, level.ErrNotFound) && n > 1:
		g.log.Info("no more levels", zap.Int("level", n))
		return sim.GameWon
	case err != nil:
		g.err = fmt.Errorf("load level %d: %w", n, err)
		g.log.Error("level load failed", zap.Int("level", n), zap.Error(err))
		return sim.LevelLoadError
	}

	g.ledger.Level = n
	g.grid = grid
	g.input.Reset()
	g.world = sim.NewWorld(grid, g.cfg.Sim, sim.Options{
		Rand:   g.rng,
		Input:  g.input,
		Sink:   g,
		Scorer: g.scorer,
		Ledger: &g.ledger,
		Log:    g.log,
	})
	g.runLog.LevelReached = max(g.runLog.LevelReached, n)
	g.renderer.SetLevel(n)

	g.addMessage(fmt.Sprintf("%s: save %d citizens, then find the exit.", grid.Name, g.world.Citizens()))
	if lore := assets.Lore(n); len(lore) > 0 {
		g.addMessage(lore[g.rng.Intn(len(lore))])
	}
	g.log.Info("level loaded", zap.Int("level", n), zap.String("name", grid.Name))
	return sim.Continue
}
