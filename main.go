// zombie-dash is a terminal zombie survival game: rescue the citizens, reach
// the exit, and try not to turn. Build:
//
//	go build -o zombie-dash .
//
// Usage:
//
//	./zombie-dash [-config zombie-dash.toml] [-levels dir] [-seed n] [-procedural]
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"zombie-dash/internal/audio"
	"zombie-dash/internal/config"
	"zombie-dash/internal/game"
	"zombie-dash/internal/scripting"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "zombie-dash.toml", "Path to the TOML config (defaults are used if absent)")
	levels := flag.String("levels", "", "Override the levels directory")
	seed := flag.Int64("seed", 0, "Override the random seed (0 keeps the config value)")
	procedural := flag.Bool("procedural", false, "Generate levels that have no file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *levels != "" {
		cfg.Game.LevelsDir = *levels
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *procedural {
		cfg.Game.Procedural = true
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	scorer, err := scripting.NewEngine(cfg.Scripting.ScoringScript, log.Named("scoring"))
	if err != nil {
		return err
	}
	defer scorer.Close()

	sound := audio.NewSoundManager(cfg.Audio, log.Named("audio"))
	if err := sound.Initialize(); err != nil {
		// The game is playable without a sound device.
		log.Warn("audio disabled", zap.Error(err))
	}
	defer sound.Cleanup()

	g, err := game.New(cfg, game.Options{
		Sound:  sound,
		Scorer: scorer,
		Log:    log.Named("game"),
	})
	if err != nil {
		return err
	}
	return g.Run()
}

// newLogger builds the zap logger. The terminal belongs to the game, so
// output goes to the configured file.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}
