package sim

import "fmt"

// Action is one polled player input.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionUseFlame
	ActionUseLandmine
	ActionUseVaccine
)

// Input is polled once per tick and must not block.
type Input interface {
	Poll() Action
}

// InputFunc adapts a function to Input.
type InputFunc func() Action

func (f InputFunc) Poll() Action { return f() }

// NoInput never presses anything.
var NoInput Input = InputFunc(func() Action { return ActionNone })

// Cue is a sound event keyed by name.
type Cue uint8

const (
	CueCitizenSaved Cue = iota
	CueCitizenInfected
	CueCitizenDied
	CueZombieBorn
	CueZombieDied
	CuePlayerDied
	CueLandmineExploded
	CueGoodieCollected
	CuePlayerFire
	CueLevelFinished
)

var cueNames = [...]string{
	CueCitizenSaved:     "citizen-saved",
	CueCitizenInfected:  "citizen-infected",
	CueCitizenDied:      "citizen-died",
	CueZombieBorn:       "zombie-born",
	CueZombieDied:       "zombie-died",
	CuePlayerDied:       "player-died",
	CueLandmineExploded: "landmine-exploded",
	CueGoodieCollected:  "goodie-collected",
	CuePlayerFire:       "player-fire",
	CueLevelFinished:    "level-finished",
}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return fmt.Sprintf("cue(%d)", uint8(c))
}

// Sink receives sound cues. Play must not block the tick.
type Sink interface {
	Play(Cue)
}

type nopSink struct{}

func (nopSink) Play(Cue) {}

// Result tells the driver what to do after a tick.
type Result uint8

const (
	Continue Result = iota
	PlayerDied
	LevelFinished
	LevelLoadError
	GameWon
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case PlayerDied:
		return "player-died"
	case LevelFinished:
		return "level-finished"
	case LevelLoadError:
		return "level-load-error"
	case GameWon:
		return "game-won"
	}
	return fmt.Sprintf("result(%d)", uint8(r))
}

// Event names a scoring occasion.
type Event string

const (
	EventCitizenSaved    Event = "citizen_saved"
	EventCitizenDied     Event = "citizen_died"
	EventZombieBorn      Event = "zombie_born"
	EventDumbZombieDied  Event = "dumb_zombie_died"
	EventSmartZombieDied Event = "smart_zombie_died"
	EventGoodieCollected Event = "goodie_collected"
)

// Scorer decides how many points an event is worth.
type Scorer interface {
	Points(Event) int
}

// PointTable is a fixed Scorer.
type PointTable map[Event]int

func (t PointTable) Points(e Event) int { return t[e] }

// DefaultPoints is the stock scoring.
var DefaultPoints = PointTable{
	EventCitizenSaved:    500,
	EventCitizenDied:     -1000,
	EventZombieBorn:      -1000,
	EventDumbZombieDied:  1000,
	EventSmartZombieDied: 2000,
	EventGoodieCollected: 50,
}

// Ledger is the bookkeeping that outlives a single level.
type Ledger struct {
	Score int
	Lives int
	Level int
}

// Status is the per-tick status line.
type Status struct {
	Score, Level, Lives     int
	Vaccines, Flames, Mines int
	Infected                int
}

func (s Status) String() string {
	return fmt.Sprintf("Score: %06d  Level: %d  Lives: %d  Vaccines: %d  Flames: %d  Mines: %d  Infected: %d",
		s.Score, s.Level, s.Lives, s.Vaccines, s.Flames, s.Mines, s.Infected)
}
