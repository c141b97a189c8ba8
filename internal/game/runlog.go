package game

import "zombie-dash/internal/sim"

// RunLog records statistics gathered during one run.
type RunLog struct {
	LevelReached  int
	LevelsCleared int
	TicksPlayed   int
	CitizensSaved int
	CitizensLost  int // died or turned
	ZombiesKilled int
	MinesExploded int
	GoodiesTaken  int
	Deaths        int
	FinalScore    int
}

// cueMessages are the log lines shown for cues worth telling the player about.
var cueMessages = map[sim.Cue]string{
	sim.CueCitizenSaved:     "A citizen made it out.",
	sim.CueCitizenInfected:  "A citizen has been infected!",
	sim.CueCitizenDied:      "A citizen is dead.",
	sim.CueZombieBorn:       "A citizen turned.",
	sim.CuePlayerDied:       "You died.",
	sim.CueLandmineExploded: "Boom.",
	sim.CueLevelFinished:    "Level clear.",
}

// record tallies one cue.
func (r *RunLog) record(c sim.Cue) {
	switch c {
	case sim.CueCitizenSaved:
		r.CitizensSaved++
	case sim.CueCitizenDied, sim.CueZombieBorn:
		r.CitizensLost++
	case sim.CueZombieDied:
		r.ZombiesKilled++
	case sim.CueLandmineExploded:
		r.MinesExploded++
	case sim.CueGoodieCollected:
		r.GoodiesTaken++
	case sim.CuePlayerDied:
		r.Deaths++
	case sim.CueLevelFinished:
		r.LevelsCleared++
	}
}

// Play implements sim.Sink. The game sits between the world and the sound
// system so every cue is also counted and, where it matters, logged on screen.
func (g *Game) Play(c sim.Cue) {
	g.runLog.record(c)
	if msg, ok := cueMessages[c]; ok {
		g.addMessage(msg)
	}
	if g.sound != nil {
		g.sound.Play(c)
	}
}
