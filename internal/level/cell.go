package level

import "fmt"

// Cell identifies what starts in one grid square.
type Cell uint8

const (
	Empty Cell = iota
	Wall
	PlayerStart
	Citizen
	DumbZombie
	SmartZombie
	Exit
	Pit
	VaccineGoodie
	GasCanGoodie
	LandmineGoodie
)

// cellRunes is the text form of each cell, shared by the parser and Format.
var cellRunes = map[Cell]rune{
	Empty:          '.',
	Wall:           '#',
	PlayerStart:    '@',
	Citizen:        'c',
	DumbZombie:     'D',
	SmartZombie:    'S',
	Exit:           'X',
	Pit:            'O',
	VaccineGoodie:  'v',
	GasCanGoodie:   'g',
	LandmineGoodie: 'l',
}

var runeCells = func() map[rune]Cell {
	m := make(map[rune]Cell, len(cellRunes)+1)
	for c, r := range cellRunes {
		m[r] = c
	}
	m[' '] = Empty
	return m
}()

// Rune returns the character used for c in level files.
func (c Cell) Rune() rune {
	if r, ok := cellRunes[c]; ok {
		return r
	}
	return '?'
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case PlayerStart:
		return "player"
	case Citizen:
		return "citizen"
	case DumbZombie:
		return "dumb zombie"
	case SmartZombie:
		return "smart zombie"
	case Exit:
		return "exit"
	case Pit:
		return "pit"
	case VaccineGoodie:
		return "vaccine goodie"
	case GasCanGoodie:
		return "gas can goodie"
	case LandmineGoodie:
		return "landmine goodie"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Walkable reports whether agents can stand on the cell at load time.
func (c Cell) Walkable() bool { return c != Wall }
