package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game      GameConfig      `toml:"game"`
	Sim       SimConfig       `toml:"sim"`
	Audio     AudioConfig     `toml:"audio"`
	Scripting ScriptingConfig `toml:"scripting"`
	Logging   LoggingConfig   `toml:"logging"`
}

type GameConfig struct {
	TickRate   time.Duration `toml:"tick_rate"`
	Lives      int           `toml:"lives"`
	LevelsDir  string        `toml:"levels_dir"`
	MaxLevel   int           `toml:"max_level"`
	Seed       int64         `toml:"seed"`       // 0 = seed from the clock
	Procedural bool          `toml:"procedural"` // generate levels that have no file
}

// SimConfig holds every tunable of the simulation. Distances are in pixels.
type SimConfig struct {
	SpriteSize      int  `toml:"sprite_size"`
	ViewHeight      int  `toml:"view_height"`
	OverlapRadius   int  `toml:"overlap_radius"`
	PlayerStep      int  `toml:"player_step"`
	CitizenStep     int  `toml:"citizen_step"`
	ZombieStep      int  `toml:"zombie_step"`
	InfectionLimit  int  `toml:"infection_limit"`
	SeekRadius      int  `toml:"seek_radius"`
	AlertRadius     int  `toml:"alert_radius"`
	SmartSightRange int  `toml:"smart_sight_range"`
	PlanMin         int  `toml:"plan_min"`
	PlanMax         int  `toml:"plan_max"`
	VomitOdds       int  `toml:"vomit_odds"`        // 1 in N
	SmartZombieOdds int  `toml:"smart_zombie_odds"` // percent of new zombies that are smart
	VaccineDropOdds int  `toml:"vaccine_drop_odds"` // 1 in N for dying dumb zombies
	FlameLength     int  `toml:"flame_length"`
	FlameLifetime   int  `toml:"flame_lifetime"`
	VomitLifetime   int  `toml:"vomit_lifetime"`
	LandmineSafety  int  `toml:"landmine_safety"`
	GasCanCharges   int  `toml:"gas_can_charges"`
	LandmineCharges int  `toml:"landmine_charges"`
	VaccineCharges  int  `toml:"vaccine_charges"`
	AlternateTurns  bool `toml:"alternate_turns"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type ScriptingConfig struct {
	ScoringScript string `toml:"scoring_script"` // empty = built-in table
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // the terminal belongs to the game
}

// Load reads a TOML config on top of the defaults. A missing file yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	s := c.Sim
	switch {
	case s.SpriteSize <= 0:
		return errors.New("sim.sprite_size must be positive")
	case s.PlanMin <= 0 || s.PlanMax < s.PlanMin:
		return fmt.Errorf("sim.plan_min/plan_max: bad range [%d,%d]", s.PlanMin, s.PlanMax)
	case s.VomitOdds <= 0 || s.VaccineDropOdds <= 0:
		return errors.New("sim.vomit_odds and sim.vaccine_drop_odds must be positive")
	case s.SmartZombieOdds < 0 || s.SmartZombieOdds > 100:
		return fmt.Errorf("sim.smart_zombie_odds %d out of [0,100]", s.SmartZombieOdds)
	case s.InfectionLimit <= 0:
		return errors.New("sim.infection_limit must be positive")
	case c.Game.TickRate <= 0:
		return errors.New("game.tick_rate must be positive")
	}
	return nil
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			TickRate:  50 * time.Millisecond,
			Lives:     3,
			LevelsDir: "levels",
			MaxLevel:  99,
		},
		Sim: DefaultSim(),
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "zombie-dash.log",
		},
	}
}

// DefaultSim returns the stock simulation tunables.
func DefaultSim() SimConfig {
	return SimConfig{
		SpriteSize:      16,
		ViewHeight:      256,
		OverlapRadius:   10,
		PlayerStep:      4,
		CitizenStep:     2,
		ZombieStep:      1,
		InfectionLimit:  500,
		SeekRadius:      80,
		AlertRadius:     80,
		SmartSightRange: 80,
		PlanMin:         3,
		PlanMax:         10,
		VomitOdds:       3,
		SmartZombieOdds: 30,
		VaccineDropOdds: 10,
		FlameLength:     8,
		FlameLifetime:   2,
		VomitLifetime:   2,
		LandmineSafety:  30,
		GasCanCharges:   5,
		LandmineCharges: 2,
		VaccineCharges:  1,
	}
}
