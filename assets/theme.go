package assets

import (
	"zombie-dash/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Emoji constants used as entity glyphs.
const (
	GlyphPlayer         = "🧍"
	GlyphCitizen        = "🧑"
	GlyphDumbZombie     = "🧟"
	GlyphSmartZombie    = "🧠"
	GlyphWall           = "🧱"
	GlyphExit           = "🚪"
	GlyphPit            = "🕳"
	GlyphFlame          = "🔥"
	GlyphVomit          = "🤮"
	GlyphLandmine       = "💣"
	GlyphVaccineGoodie  = "💉"
	GlyphGasCanGoodie   = "⛽"
	GlyphLandmineGoodie = "🧨"
)

// Look is how one entity kind is drawn.
type Look struct {
	Glyph string
	Color tcell.Color
	Order int // higher is drawn on top
}

// Looks maps each kind to its glyph, color and render order.
var Looks = map[component.Kind]Look{
	component.KindPlayer:         {GlyphPlayer, tcell.ColorYellow, 10},
	component.KindCitizen:        {GlyphCitizen, tcell.ColorGreen, 8},
	component.KindDumbZombie:     {GlyphDumbZombie, tcell.ColorRed, 8},
	component.KindSmartZombie:    {GlyphSmartZombie, tcell.ColorFuchsia, 8},
	component.KindWall:           {GlyphWall, tcell.ColorGray, 0},
	component.KindExit:           {GlyphExit, tcell.ColorWhite, 1},
	component.KindPit:            {GlyphPit, tcell.ColorDarkGray, 1},
	component.KindFlame:          {GlyphFlame, tcell.ColorOrange, 9},
	component.KindVomit:          {GlyphVomit, tcell.ColorOlive, 9},
	component.KindLandmine:       {GlyphLandmine, tcell.ColorSilver, 2},
	component.KindVaccineGoodie:  {GlyphVaccineGoodie, tcell.ColorAqua, 2},
	component.KindGasCanGoodie:   {GlyphGasCanGoodie, tcell.ColorOrange, 2},
	component.KindLandmineGoodie: {GlyphLandmineGoodie, tcell.ColorSilver, 2},
}
