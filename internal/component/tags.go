package component

import "zombie-dash/internal/ecs"

const (
	CKind      ecs.ComponentType = 3
	CTagPlayer ecs.ComponentType = 4
)

// Kind names what an entity is. Interaction logic asks Caps instead of
// switching on Kind; Kind only picks the per-turn behavior and the glyph.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindCitizen
	KindDumbZombie
	KindSmartZombie
	KindWall
	KindExit
	KindPit
	KindFlame
	KindVomit
	KindLandmine
	KindVaccineGoodie
	KindGasCanGoodie
	KindLandmineGoodie
)

var kindNames = [...]string{
	KindPlayer:         "player",
	KindCitizen:        "citizen",
	KindDumbZombie:     "dumb zombie",
	KindSmartZombie:    "smart zombie",
	KindWall:           "wall",
	KindExit:           "exit",
	KindPit:            "pit",
	KindFlame:          "flame",
	KindVomit:          "vomit",
	KindLandmine:       "landmine",
	KindVaccineGoodie:  "vaccine goodie",
	KindGasCanGoodie:   "gas can goodie",
	KindLandmineGoodie: "landmine goodie",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (Kind) Type() ecs.ComponentType { return CKind }

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }
